package repository

import (
	"context"
	"sync"

	"medtour/internal/model"
)

// MemoryRepository keeps the catalog and captured leads in process memory
type MemoryRepository struct {
	mu       sync.RWMutex
	catalog  model.Catalog
	quotes   []model.Quote
	contacts []model.ContactEvent
}

// NewMemoryRepository creates a repository holding catalog (which may be nil)
func NewMemoryRepository(catalog *model.Catalog) *MemoryRepository {
	r := &MemoryRepository{}
	if catalog != nil {
		r.catalog = *catalog
	}
	return r
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}

// Seed replaces the catalog
func (r *MemoryRepository) Seed(ctx context.Context, catalog *model.Catalog) error {
	if err := ValidateCatalog(catalog); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catalog = *catalog
	return nil
}

// ListProviders returns providers in catalog order
func (r *MemoryRepository) ListProviders(ctx context.Context) ([]model.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Provider{}, r.catalog.Providers...), nil
}

// GetProvider returns nil when id is unknown
func (r *MemoryRepository) GetProvider(ctx context.Context, id string) (*model.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.catalog.Providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

// ListHospitals returns hospitals in catalog order
func (r *MemoryRepository) ListHospitals(ctx context.Context) ([]model.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Hospital{}, r.catalog.Hospitals...), nil
}

// GetHospital returns nil when slug is unknown
func (r *MemoryRepository) GetHospital(ctx context.Context, slug string) (*model.Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.catalog.Hospitals {
		if h.Slug == slug {
			return &h, nil
		}
	}
	return nil, nil
}

// ListSpecialties returns specialties in catalog order
func (r *MemoryRepository) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Specialty{}, r.catalog.Specialties...), nil
}

// GetSpecialty returns nil when slug is unknown
func (r *MemoryRepository) GetSpecialty(ctx context.Context, slug string) (*model.Specialty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.catalog.Specialties {
		if s.Slug == slug {
			return &s, nil
		}
	}
	return nil, nil
}

func matchesScope(hospital, specialty, wantHospital, wantSpecialty string) bool {
	return (wantHospital == "" || hospital == wantHospital) &&
		(wantSpecialty == "" || specialty == wantSpecialty)
}

// ListDoctors returns doctors, optionally narrowed by hospital and specialty
func (r *MemoryRepository) ListDoctors(ctx context.Context, hospital, specialty string) ([]model.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Doctor{}
	for _, d := range r.catalog.Doctors {
		if matchesScope(d.HospitalSlug, d.SpecialtySlug, hospital, specialty) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListTreatments returns treatments, optionally narrowed by hospital and specialty
func (r *MemoryRepository) ListTreatments(ctx context.Context, hospital, specialty string) ([]model.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Treatment{}
	for _, t := range r.catalog.Treatments {
		if matchesScope(t.HospitalSlug, t.SpecialtySlug, hospital, specialty) {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListTestimonials returns testimonials, optionally narrowed by hospital and specialty
func (r *MemoryRepository) ListTestimonials(ctx context.Context, hospital, specialty string) ([]model.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Testimonial{}
	for _, t := range r.catalog.Testimonials {
		if matchesScope(t.HospitalSlug, t.SpecialtySlug, hospital, specialty) {
			out = append(out, t)
		}
	}
	return out, nil
}

// SaveQuote stores a quote request
func (r *MemoryRepository) SaveQuote(ctx context.Context, q *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = append(r.quotes, *q)
	return nil
}

// CountQuotes returns the number of stored quotes
func (r *MemoryRepository) CountQuotes(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.quotes), nil
}

// LogContact records a dispatched contact link
func (r *MemoryRepository) LogContact(ctx context.Context, e *model.ContactEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, *e)
	return nil
}

// ContactEvents returns a snapshot of logged contact events
func (r *MemoryRepository) ContactEvents() []model.ContactEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ContactEvent{}, r.contacts...)
}
