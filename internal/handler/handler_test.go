package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"medtour/internal/cache"
	"medtour/internal/model"
	"medtour/internal/repository"
	"medtour/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	repo   *repository.MemoryRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog, err := repository.DefaultCatalog()
	require.NoError(t, err)
	repo := repository.NewMemoryRepository(catalog)

	dispatcher := service.NewContactDispatcher("+91 98765 43210", "About {service} at {provider}")
	svc := service.NewCatalogService(repo, dispatcher, cache.NewMemoryCache(), service.CatalogOptions{
		PageSize: 3, MaxPageSize: 24, DefaultWidth: 1280, CacheTTL: time.Minute,
	})

	limiter := NewRateLimiter(60, 2)
	t.Cleanup(limiter.Stop)

	router := gin.New()
	catalogHandler := NewCatalogHandler(svc)
	carouselHandler := NewCarouselHandler(svc)
	contactHandler := NewContactHandler(svc, dispatcher)
	quoteHandler := NewQuoteHandler(svc)

	api := router.Group("/api/v1")
	api.GET("/providers", catalogHandler.ListProviders)
	api.GET("/providers/:id", catalogHandler.GetProvider)
	api.GET("/hospitals", catalogHandler.ListHospitals)
	api.GET("/specialties", catalogHandler.ListSpecialties)
	api.GET("/hospitals/:hospital/:specialty", catalogHandler.HospitalSpecialty)
	api.GET("/stats", catalogHandler.Stats)
	api.GET("/carousels/:kind", carouselHandler.Get)
	api.GET("/contact/whatsapp", limiter.Middleware(), contactHandler.WhatsApp)
	api.POST("/quotes", limiter.Middleware(), quoteHandler.Submit)

	return &testServer{router: router, repo: repo}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func TestListProviders(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/providers?tag=Angioplasty&tag=ivf&sort=rating_desc")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.True(t, resp.HasMore)
	assert.Equal(t, []string{"Angioplasty", "IVF"}, resp.Filter.SelectedTags)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "apollo-chennai", resp.Results[0].ID)
}

func TestListProviders_BadInput(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/providers?sort=cheapest")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown sort key")

	w = s.get("/api/v1/providers?page=two")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProvider(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/providers/max-saket")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Max Super Speciality Saket"`)

	w = s.get("/api/v1/providers/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListHospitalsAndSpecialties(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/hospitals")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":4`)

	w = s.get("/api/v1/specialties")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":5`)
}

func TestHospitalSpecialty(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/hospitals/apollo-chennai/cardiology")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.HospitalSpecialtyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Len(t, resp.Data.Doctors, 5)

	w = s.get("/api/v1/hospitals/apollo-chennai/dermatology")
	assert.Equal(t, http.StatusNotFound, w.Code)
	resp = model.HospitalSpecialtyResponse{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.NotEmpty(t, resp.Error)
}

func TestCarousel(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/carousels/doctors?hospital=apollo-chennai&specialty=cardiology&width=800")
	require.Equal(t, http.StatusOK, w.Code)

	var page model.CarouselPage[model.Doctor]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.ItemsPerSlide)
	assert.Equal(t, 3, page.TotalSlides)
	assert.Equal(t, model.NavigationWrap, page.Mode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/carousels/testimonials?slide=1", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "1100")
	w = s.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var testimonials model.CarouselPage[model.Testimonial]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &testimonials))
	assert.Equal(t, 3, testimonials.ItemsPerSlide)
	assert.Equal(t, 1, testimonials.Index)
	assert.Equal(t, model.NavigationBounded, testimonials.Mode)
	assert.False(t, testimonials.CanNext)

	w = s.get("/api/v1/carousels/hospitals")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWhatsApp(t *testing.T) {
	s := newTestServer(t)

	w := s.get("/api/v1/contact/whatsapp?provider=narayana-bangalore&service=Oncology")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://wa.me/919876543210?text=About%20Oncology%20at%20Narayana%20Health%20City", w.Header().Get("Location"))
	assert.Len(t, s.repo.ContactEvents(), 1)

	w = s.get("/api/v1/contact/whatsapp?hospital=apollo-chennai&format=json")
	require.Equal(t, http.StatusOK, w.Code)
	var link model.ContactLinkResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &link))
	assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/919876543210?text="))
	assert.NotEmpty(t, link.EventID)
}

func TestSubmitQuote(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"name": {"Amina"}, "country": {"Nigeria"}, "phone": {"+234 803 000 0000"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := s.do(req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp model.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/919876543210")

	req = httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{"name":"Amina"}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimiter(t *testing.T) {
	s := newTestServer(t)

	body := `{"name":"A","country":"B","phone":"1"}`
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "203.0.113.7:5000"
		codes = append(codes, s.do(req).Code)
	}
	assert.Equal(t, []int{http.StatusCreated, http.StatusCreated, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "198.51.100.1:5000"
	assert.Equal(t, http.StatusCreated, s.do(req).Code)
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(10, 1)
	defer rl.Stop()

	router := gin.New()
	router.GET("/", rl.Middleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "6", second.Header().Get("Retry-After"))
}

func TestRequestViewport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		target string
		header string
		want   int
	}{
		{name: "query wins", target: "/?width=600", header: "1400", want: 600},
		{name: "client hint", target: "/", header: "1400", want: 1400},
		{name: "invalid query falls through", target: "/?width=wide", header: "900", want: 900},
		{name: "fallback", target: "/", want: 1280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				c.Request.Header.Set("Viewport-Width", tt.header)
			}
			assert.Equal(t, tt.want, RequestViewport(c, 1280).Width())
		})
	}
}
