package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"medtour/internal/handler"
	"medtour/internal/model"
	"medtour/internal/service"
	"medtour/internal/utils"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Slide query parameters, one per carousel on a page
const (
	doctorSlideParam = "doctors"
	storySlideParam  = "stories"
)

// Handler serves the server-rendered pages
type Handler struct {
	catalog *service.CatalogService
	site    string
}

// NewHandler creates a page handler
func NewHandler(catalog *service.CatalogService, site string) *Handler {
	return &Handler{
		catalog: catalog,
		site:    site,
	}
}

// Register mounts the page routes
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/", h.Home)
	r.GET("/providers", h.Providers)
	r.GET("/hospitals/:hospital/:specialty", h.HospitalSpecialty)
	r.POST("/hospitals/:hospital/:specialty/quote", h.SubmitQuote)
}

func (h *Handler) render(c *gin.Context, status int, title string, content g.Node) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := PageLayout(h.site, title, c.Request.URL.Path, content).Render(c.Writer); err != nil {
		utils.Log.WithError(err).WithField("path", c.Request.URL.Path).Warn("failed to render page")
	}
}

func (h *Handler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong while loading this page."
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
		message = "We could not understand that request."
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = "We could not find the page you were looking for."
	case errors.Is(err, service.ErrDataUnavailable):
		status = http.StatusServiceUnavailable
		message = "This information is unavailable right now. Please try again shortly."
	}
	if status >= http.StatusInternalServerError {
		utils.Log.WithError(err).WithField("path", c.Request.URL.Path).Warn("page data unavailable")
	}
	h.render(c, status, "Not found", NotFoundPanel(message))
}

// NotFound renders the not-found panel for unknown pages
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "Not found", NotFoundPanel("We could not find the page you were looking for."))
}

// slideHref returns a link to the current page with param set to the slide
func slideHref(c *gin.Context, param string) func(int) string {
	base := c.Request.URL.Query()
	path := c.Request.URL.Path
	return func(i int) string {
		q := url.Values{}
		for k, v := range base {
			q[k] = v
		}
		q.Set(param, strconv.Itoa(i))
		return path + "?" + q.Encode()
	}
}

func (h *Handler) carouselRequest(c *gin.Context, param, hospital, specialty string) *model.CarouselRequest {
	slide, _ := strconv.Atoi(c.Query(param))
	return &model.CarouselRequest{
		Width:     handler.RequestViewport(c, h.catalog.DefaultWidth()).Width(),
		Slide:     slide,
		Hospital:  hospital,
		Specialty: specialty,
	}
}

// Home handles GET /
func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	featured, err := h.catalog.ListProviders(ctx, &model.ListingRequest{})
	if err != nil {
		h.renderError(c, err)
		return
	}
	hospitals, err := h.catalog.ListHospitals(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	specialties, err := h.catalog.ListSpecialties(ctx)
	if err != nil {
		h.renderError(c, err)
		return
	}
	doctors, err := h.catalog.DoctorCarousel(ctx, h.carouselRequest(c, doctorSlideParam, "", ""))
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "", HomeContent(h.site, featured.Results, hospitals, specialties,
		doctors.Items, ControlsFor(doctors, slideHref(c, doctorSlideParam))))
}

// Providers handles GET /providers
func (h *Handler) Providers(c *gin.Context) {
	var req model.ListingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderError(c, service.ErrInvalidInput)
		return
	}

	resp, err := h.catalog.ListProviders(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "Hospitals & Doctors", ProvidersContent(resp))
}

// HospitalSpecialty handles GET /hospitals/:hospital/:specialty
func (h *Handler) HospitalSpecialty(c *gin.Context) {
	ctx := c.Request.Context()
	hospital, specialty := c.Param("hospital"), c.Param("specialty")

	data, err := h.catalog.HospitalSpecialty(ctx, hospital, specialty)
	if err != nil {
		h.renderError(c, err)
		return
	}
	doctors, err := h.catalog.DoctorCarousel(ctx, h.carouselRequest(c, doctorSlideParam, hospital, specialty))
	if err != nil {
		h.renderError(c, err)
		return
	}
	stories, err := h.catalog.TestimonialCarousel(ctx, h.carouselRequest(c, storySlideParam, hospital, specialty))
	if err != nil {
		h.renderError(c, err)
		return
	}

	contact := url.Values{"hospital": {hospital}, "specialty": {specialty}}
	h.render(c, http.StatusOK, data.Specialty.Name+" at "+data.Hospital.Name, HospitalContent(HospitalPageData{
		Data:         data,
		Doctors:      doctors.Items,
		DoctorNav:    ControlsFor(doctors, slideHref(c, doctorSlideParam)),
		Stories:      stories.Items,
		StoryNav:     ControlsFor(stories, slideHref(c, storySlideParam)),
		WhatsAppHref: "/api/v1/contact/whatsapp?" + contact.Encode(),
		QuoteAction:  HospitalPath(hospital, specialty) + "/quote",
	}))
}

// SubmitQuote handles POST /hospitals/:hospital/:specialty/quote
func (h *Handler) SubmitQuote(c *gin.Context) {
	back := HospitalPath(c.Param("hospital"), c.Param("specialty"))

	var req model.QuoteRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, "Get a free quote", g.Group([]g.Node{
			P(Class("form-error"), g.Text("Please fill in your name, country and phone number.")),
			QuoteForm(back+"/quote", c.Param("hospital"), c.Param("specialty")),
		}))
		return
	}
	req.Hospital, req.Specialty = c.Param("hospital"), c.Param("specialty")

	resp, err := h.catalog.SubmitQuote(c.Request.Context(), &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.render(c, http.StatusOK, "Thank you", QuoteThanksContent(resp, back))
}
