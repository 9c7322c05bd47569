package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"medtour/internal/model"
	"medtour/internal/repository"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := repository.DefaultCatalog()
	require.NoError(t, err)
	repo := repository.NewMemoryRepository(catalog)

	dispatcher := service.NewContactDispatcher("+91 98765 43210", "About {service} at {provider}")
	svc := service.NewCatalogService(repo, dispatcher, nil, service.CatalogOptions{PageSize: 3, MaxPageSize: 24})

	router := gin.New()
	h := NewHandler(svc, "MedTour")
	h.Register(router)
	router.NoRoute(h.NotFound)
	return router, repo
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestListingURL(t *testing.T) {
	tests := []struct {
		name  string
		state model.FilterState
		want  string
	}{
		{name: "defaults", state: model.DefaultFilterState(), want: "/providers"},
		{name: "page only", state: model.DefaultFilterState().WithPage(3), want: "/providers?page=3"},
		{
			name:  "tags sort and page",
			state: model.FilterState{SelectedTags: []string{"Angioplasty", "IVF"}, SortKey: model.SortPriceAsc, Page: 2},
			want:  "/providers?page=2&sort=price_asc&tag=Angioplasty&tag=IVF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ListingURL(tt.state))
		})
	}
}

func TestHomePage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/?width=500")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "<title>MedTour</title>")
	assert.Contains(t, body, "Apollo Hospitals Greams Road")
	assert.Contains(t, body, "Meet our doctors")
	assert.Contains(t, body, `href="/hospitals/apollo-chennai/cardiology"`)
	// one doctor per slide at 500px, first slide wraps back to the last
	assert.Contains(t, body, "Dr. Ramesh Iyer")
	assert.NotContains(t, body, "Dr. Anita Menon")
	assert.Contains(t, body, "doctors=8")
}

func TestProvidersPage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/providers?tag=cabg&sort=price_desc")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "4 providers")
	assert.Contains(t, body, `class="chip selected"`)
	assert.Contains(t, body, "Bypass Surgery (4)")
	assert.Contains(t, body, `<option value="price_desc" selected>`)
	assert.Contains(t, body, `<input type="hidden" name="tag" value="Bypass Surgery">`)
	assert.Contains(t, body, `<span class="page-link disabled" aria-disabled="true">Previous</span>`)
	assert.Contains(t, body, `href="/providers?page=2&amp;sort=price_desc&amp;tag=Bypass+Surgery"`)
	assert.Contains(t, body, `target="_blank"`)
}

func TestProvidersPage_LastPageDisablesNext(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/providers?page=3")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, `<span class="page-link disabled" aria-disabled="true">Next</span>`)
	assert.Contains(t, body, `<a href="/providers?page=2" class="page-link">Previous</a>`)
}

func TestProvidersPage_EmptyState(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/providers?tag=Dentistry")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "No providers match the selected services.")
	assert.Contains(t, body, "Clear filters")
	assert.NotContains(t, body, `class="pagination"`)
}

func TestProvidersPage_BadSort(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/providers?sort=cheapest")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Back to home")
}

func TestHospitalPage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := get(router, "/hospitals/apollo-chennai/cardiology?width=1024&stories=2")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Cardiology at Apollo Hospitals Greams Road")
	assert.Contains(t, body, "Dr. Ramesh Iyer")
	assert.Contains(t, body, "Bypass Surgery")
	assert.Contains(t, body, "USD 5500 - 6500")
	// three stories per slide: one slide, both controls disabled
	assert.Contains(t, body, "Amina Yusuf")
	assert.Contains(t, body, `<span class="carousel-control disabled" aria-disabled="true">›</span>`)
	assert.Contains(t, body, `action="/hospitals/apollo-chennai/cardiology/quote"`)
	assert.Contains(t, body, `<input id="phone" name="phone" type="tel" required>`)
	assert.Contains(t, body, `href="/api/v1/contact/whatsapp?hospital=apollo-chennai&amp;specialty=cardiology" target="_blank"`)
}

func TestHospitalPage_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, target := range []string{"/hospitals/apollo-chennai/dermatology", "/hospitals/nowhere/cardiology", "/no/such/page"} {
		w := get(router, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		body := w.Body.String()
		assert.Contains(t, body, "Page not found")
		assert.Contains(t, body, `href="/"`)
		assert.Contains(t, body, `href="/providers"`)
	}
}

func TestSubmitQuotePage(t *testing.T) {
	router, repo := newTestRouter(t)

	form := url.Values{"name": {"Amina"}, "country": {"Nigeria"}, "phone": {"+234 803 000 0000"}}
	req := httptest.NewRequest(http.MethodPost, "/hospitals/apollo-chennai/cardiology/quote", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Continue on WhatsApp")
	assert.Contains(t, w.Body.String(), "https://wa.me/919876543210?text=")

	n, err := repo.CountQuotes(req.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	req = httptest.NewRequest(http.MethodPost, "/hospitals/apollo-chennai/cardiology/quote", strings.NewReader("name=Amina"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in your name, country and phone number.")
}
