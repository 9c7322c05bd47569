package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"medtour/internal/cache"
	"medtour/internal/model"
	"medtour/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDataUnavailable means the store failed or the requested data is absent
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrNotFound is the absent-data case of ErrDataUnavailable
	ErrNotFound = fmt.Errorf("%w: not found", ErrDataUnavailable)
	// ErrInvalidInput marks a request the caller must correct
	ErrInvalidInput = errors.New("invalid input")
)

// CatalogRepository is the store behind CatalogService. Lookups return
// (nil, nil) when the key is unknown.
type CatalogRepository interface {
	ListProviders(ctx context.Context) ([]model.Provider, error)
	GetProvider(ctx context.Context, id string) (*model.Provider, error)
	ListHospitals(ctx context.Context) ([]model.Hospital, error)
	GetHospital(ctx context.Context, slug string) (*model.Hospital, error)
	ListSpecialties(ctx context.Context) ([]model.Specialty, error)
	GetSpecialty(ctx context.Context, slug string) (*model.Specialty, error)
	ListDoctors(ctx context.Context, hospital, specialty string) ([]model.Doctor, error)
	ListTreatments(ctx context.Context, hospital, specialty string) ([]model.Treatment, error)
	ListTestimonials(ctx context.Context, hospital, specialty string) ([]model.Testimonial, error)
	SaveQuote(ctx context.Context, q *model.Quote) error
	CountQuotes(ctx context.Context) (int, error)
	LogContact(ctx context.Context, e *model.ContactEvent) error
}

// Carousel navigation per use site
const (
	DoctorCarouselMode      = model.NavigationWrap
	TestimonialCarouselMode = model.NavigationBounded
)

const quoteFollowUpTemplate = "Hello, I am {name} from {country}. I just requested a quote for {service} at {hospital}."

// CatalogOptions tunes a CatalogService
type CatalogOptions struct {
	PageSize     int
	MaxPageSize  int
	Breakpoints  []int
	DefaultWidth int
	CacheTTL     time.Duration
}

// CatalogService handles catalog business logic
type CatalogService struct {
	repo         CatalogRepository
	listing      *ListingEngine
	contact      *ContactDispatcher
	cache        cache.Cache
	maxPageSize  int
	breakpoints  []int
	defaultWidth int
	cacheTTL     time.Duration
	now          func() time.Time
}

// NewCatalogService creates a catalog service. cache may be nil.
func NewCatalogService(repo CatalogRepository, contact *ContactDispatcher, c cache.Cache, opts CatalogOptions) *CatalogService {
	listing := NewListingEngine(opts.PageSize)
	if opts.MaxPageSize < listing.PageSize() {
		opts.MaxPageSize = listing.PageSize()
	}
	if opts.Breakpoints == nil {
		opts.Breakpoints = DefaultBreakpoints
	}
	if opts.DefaultWidth <= 0 {
		opts.DefaultWidth = 1280
	}
	return &CatalogService{
		repo:         repo,
		listing:      listing,
		contact:      contact,
		cache:        c,
		maxPageSize:  opts.MaxPageSize,
		breakpoints:  opts.Breakpoints,
		defaultWidth: opts.DefaultWidth,
		cacheTTL:     opts.CacheTTL,
		now:          time.Now,
	}
}

// PageSize returns the default listing page size
func (s *CatalogService) PageSize() int {
	return s.listing.PageSize()
}

// DefaultWidth returns the viewport width used when the client sends none
func (s *CatalogService) DefaultWidth() int {
	return s.defaultWidth
}

// ListProviders filters, sorts and pages the provider directory
func (s *CatalogService) ListProviders(ctx context.Context, req *model.ListingRequest) (*model.ListingResponse, error) {
	startTime := time.Now()

	key, err := model.ParseSortKey(req.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = s.listing.PageSize()
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	state := model.DefaultFilterState().
		WithTags(utils.NormalizeTags(req.Tags)).
		WithSort(key).
		WithPage(req.Page)

	records, err := s.repo.ListProviders(ctx)
	if err != nil {
		utils.Log.WithError(err).Warn("provider listing unavailable")
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	records = filterByLocation(records, req.Location)

	page := s.listing.Apply(records, state, pageSize)

	return &model.ListingResponse{
		Results:    page.Results,
		Total:      page.Total,
		Page:       state.Page,
		PageSize:   pageSize,
		TotalPages: page.TotalPages,
		HasMore:    state.Page < page.TotalPages,
		Filter:     state,
		Facets:     buildFacets(records, page.Matched, state),
		Took:       time.Since(startTime).Milliseconds(),
	}, nil
}

// filterByLocation keeps providers whose location or country contains q
func filterByLocation(records []model.Provider, q string) []model.Provider {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return records
	}
	out := make([]model.Provider, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Location), q) || strings.Contains(strings.ToLower(r.Country), q) {
			out = append(out, r)
		}
	}
	return out
}

// buildFacets counts tags over the unfiltered records so every chip stays
// visible, and takes the price range from the matched records.
func buildFacets(records, matched []model.Provider, state model.FilterState) model.ListingFacets {
	counts := make(map[string]int)
	names := make(map[string]string)
	for _, r := range records {
		seen := make(map[string]bool, len(r.ServiceTags))
		for _, t := range r.ServiceTags {
			norm := utils.NormalizeTag(t)
			k := strings.ToLower(norm)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			counts[k]++
			if _, ok := names[k]; !ok {
				names[k] = t
			}
		}
	}
	for _, t := range state.SelectedTags {
		k := strings.ToLower(t)
		if _, ok := names[k]; !ok {
			names[k] = t
		}
	}

	facets := model.ListingFacets{Tags: make([]model.TagCount, 0, len(names))}
	for k, name := range names {
		facets.Tags = append(facets.Tags, model.TagCount{
			Tag:      name,
			Count:    counts[k],
			Selected: state.HasTag(name),
		})
	}
	sort.Slice(facets.Tags, func(i, j int) bool {
		a, b := facets.Tags[i], facets.Tags[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Tag < b.Tag
	})

	for i := range matched {
		p := matched[i].PriceFrom
		if facets.PriceMin == nil || p < *facets.PriceMin {
			v := p
			facets.PriceMin = &v
		}
		if facets.PriceMax == nil || p > *facets.PriceMax {
			v := p
			facets.PriceMax = &v
		}
	}
	return facets
}

// GetProvider returns one provider
func (s *CatalogService) GetProvider(ctx context.Context, id string) (*model.Provider, error) {
	p, err := s.repo.GetProvider(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: provider %q", ErrNotFound, id)
	}
	return p, nil
}

// ListHospitals returns every partner hospital
func (s *CatalogService) ListHospitals(ctx context.Context) ([]model.Hospital, error) {
	hospitals, err := s.repo.ListHospitals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return hospitals, nil
}

// ListSpecialties returns every specialty
func (s *CatalogService) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	specialties, err := s.repo.ListSpecialties(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return specialties, nil
}

// HospitalSpecialty assembles the page payload for a hospital and specialty.
// Results are cached by slug pair; cache failures only cost a store read.
func (s *CatalogService) HospitalSpecialty(ctx context.Context, hospital, specialty string) (*model.HospitalSpecialtyData, error) {
	key := "hospital:" + hospital + ":" + specialty
	if data, ok := s.cachedPayload(ctx, key); ok {
		return data, nil
	}

	h, err := s.repo.GetHospital(ctx, hospital)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if h == nil {
		return nil, fmt.Errorf("%w: hospital %q", ErrNotFound, hospital)
	}
	sp, err := s.repo.GetSpecialty(ctx, specialty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if sp == nil {
		return nil, fmt.Errorf("%w: specialty %q", ErrNotFound, specialty)
	}

	data := &model.HospitalSpecialtyData{Hospital: *h, Specialty: *sp}
	if data.Doctors, err = s.repo.ListDoctors(ctx, hospital, specialty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if data.Treatments, err = s.repo.ListTreatments(ctx, hospital, specialty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if data.Testimonials, err = s.repo.ListTestimonials(ctx, hospital, specialty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	s.storePayload(ctx, key, data)
	return data, nil
}

func (s *CatalogService) cachedPayload(ctx context.Context, key string) (*model.HospitalSpecialtyData, bool) {
	if s.cache == nil {
		return nil, false
	}
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		utils.Log.WithError(err).WithField("key", key).Warn("cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var data model.HospitalSpecialtyData
	if err := json.Unmarshal(b, &data); err != nil {
		utils.Log.WithError(err).WithField("key", key).Warn("discarding malformed cache entry")
		return nil, false
	}
	return &data, true
}

func (s *CatalogService) storePayload(ctx context.Context, key string, data *model.HospitalSpecialtyData) {
	if s.cache == nil {
		return
	}
	b, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, b, s.cacheTTL); err != nil {
		utils.Log.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (s *CatalogService) carouselState(mode model.NavigationMode, req *model.CarouselRequest, count int) *CarouselState {
	width := req.Width
	if width <= 0 {
		width = s.defaultWidth
	}
	state := NewCarouselState(mode, s.breakpoints, FixedViewport(width), count)
	state.GoTo(req.Slide)
	return state
}

// DoctorCarousel returns the requested slide of doctors. It wraps at both ends.
func (s *CatalogService) DoctorCarousel(ctx context.Context, req *model.CarouselRequest) (*model.CarouselPage[model.Doctor], error) {
	doctors, err := s.repo.ListDoctors(ctx, req.Hospital, req.Specialty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	page := BuildCarouselPage(model.CarouselDoctors, doctors, s.carouselState(DoctorCarouselMode, req, len(doctors)))
	return &page, nil
}

// TestimonialCarousel returns the requested slide of testimonials. It stops at
// both ends.
func (s *CatalogService) TestimonialCarousel(ctx context.Context, req *model.CarouselRequest) (*model.CarouselPage[model.Testimonial], error) {
	testimonials, err := s.repo.ListTestimonials(ctx, req.Hospital, req.Specialty)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	page := BuildCarouselPage(model.CarouselTestimonials, testimonials, s.carouselState(TestimonialCarouselMode, req, len(testimonials)))
	return &page, nil
}

// Carousel dispatches on req.Kind
func (s *CatalogService) Carousel(ctx context.Context, req *model.CarouselRequest) (any, error) {
	switch req.Kind {
	case model.CarouselDoctors:
		return s.DoctorCarousel(ctx, req)
	case model.CarouselTestimonials:
		return s.TestimonialCarousel(ctx, req)
	default:
		return nil, fmt.Errorf("%w: carousel %q", ErrNotFound, req.Kind)
	}
}

// ContactLink builds the WhatsApp link for a provider or hospital and records
// the event. A failed event write does not fail the link.
func (s *CatalogService) ContactLink(ctx context.Context, req *model.ContactRequest) (*model.ContactLinkResponse, error) {
	vars := map[string]string{
		"service": strings.TrimSpace(req.Service),
		"name":    strings.TrimSpace(req.Name),
	}

	if req.ProviderID != "" {
		p, err := s.GetProvider(ctx, req.ProviderID)
		if err != nil {
			return nil, err
		}
		vars["provider"] = p.Name
	}
	if req.Hospital != "" {
		h, err := s.repo.GetHospital(ctx, req.Hospital)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		if h == nil {
			return nil, fmt.Errorf("%w: hospital %q", ErrNotFound, req.Hospital)
		}
		vars["hospital"] = h.Name
		if vars["provider"] == "" {
			vars["provider"] = h.Name
		}
	}
	if req.Specialty != "" {
		sp, err := s.repo.GetSpecialty(ctx, req.Specialty)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
		}
		if sp == nil {
			return nil, fmt.Errorf("%w: specialty %q", ErrNotFound, req.Specialty)
		}
		vars["specialty"] = sp.Name
		if vars["service"] == "" {
			vars["service"] = sp.Name
		}
	}
	if vars["service"] == "" {
		vars["service"] = "treatment options"
	}
	if vars["provider"] == "" {
		vars["provider"] = "your partner hospitals"
	}

	url := s.contact.Link(s.contact.Intent("", ""), vars)

	event := &model.ContactEvent{
		ID:            uuid.NewString(),
		ProviderID:    req.ProviderID,
		HospitalSlug:  req.Hospital,
		SpecialtySlug: req.Specialty,
		Service:       vars["service"],
		URL:           url,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repo.LogContact(ctx, event); err != nil {
		utils.Log.WithError(err).WithField("url", url).Warn("failed to log contact event")
	}

	return &model.ContactLinkResponse{URL: url, EventID: event.ID}, nil
}

// SubmitQuote stores a quote request and returns a WhatsApp follow-up link
func (s *CatalogService) SubmitQuote(ctx context.Context, req *model.QuoteRequest) (*model.QuoteResponse, error) {
	q := &model.Quote{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Country:       strings.TrimSpace(req.Country),
		Phone:         strings.TrimSpace(req.Phone),
		HospitalSlug:  strings.TrimSpace(req.Hospital),
		SpecialtySlug: strings.TrimSpace(req.Specialty),
		Service:       strings.TrimSpace(req.Service),
		CreatedAt:     s.now().UTC(),
	}
	var missing []string
	for field, v := range map[string]string{"name": q.Name, "country": q.Country, "phone": q.Phone} {
		if v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	vars := map[string]string{
		"name":     q.Name,
		"country":  q.Country,
		"service":  q.Service,
		"hospital": q.HospitalSlug,
	}
	if q.HospitalSlug != "" {
		if h, err := s.repo.GetHospital(ctx, q.HospitalSlug); err == nil && h != nil {
			vars["hospital"] = h.Name
		}
	}
	if vars["service"] == "" && q.SpecialtySlug != "" {
		if sp, err := s.repo.GetSpecialty(ctx, q.SpecialtySlug); err == nil && sp != nil {
			vars["service"] = sp.Name
		}
	}
	if vars["service"] == "" {
		vars["service"] = "treatment"
	}
	if vars["hospital"] == "" {
		vars["hospital"] = "your partner hospitals"
	}

	if err := s.repo.SaveQuote(ctx, q); err != nil {
		utils.Log.WithError(err).Warn("failed to save quote")
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	utils.Log.WithFields(logrus.Fields{
		"quote_id": q.ID,
		"country":  q.Country,
		"hospital": q.HospitalSlug,
	}).Info("quote request received")

	return &model.QuoteResponse{
		ID:          q.ID,
		Message:     "Thank you, our team will contact you shortly.",
		WhatsAppURL: s.contact.Link(s.contact.Intent("", quoteFollowUpTemplate), vars),
	}, nil
}

// Stats counts catalog records and stored quotes
func (s *CatalogService) Stats(ctx context.Context) (*model.CatalogStats, error) {
	var stats model.CatalogStats
	var err error
	count := func(n int, e error) int {
		if e != nil && err == nil {
			err = e
		}
		return n
	}

	providers, e := s.repo.ListProviders(ctx)
	stats.Providers = count(len(providers), e)
	hospitals, e := s.repo.ListHospitals(ctx)
	stats.Hospitals = count(len(hospitals), e)
	specialties, e := s.repo.ListSpecialties(ctx)
	stats.Specialties = count(len(specialties), e)
	doctors, e := s.repo.ListDoctors(ctx, "", "")
	stats.Doctors = count(len(doctors), e)
	treatments, e := s.repo.ListTreatments(ctx, "", "")
	stats.Treatments = count(len(treatments), e)
	testimonials, e := s.repo.ListTestimonials(ctx, "", "")
	stats.Testimonials = count(len(testimonials), e)
	stats.Quotes = count(s.repo.CountQuotes(ctx))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	return &stats, nil
}
