package repository

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"medtour/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed seed/catalog.yaml
var defaultCatalogYAML []byte

// DefaultCatalog returns the catalog bundled with the binary
func DefaultCatalog() (*model.Catalog, error) {
	return LoadCatalog(bytes.NewReader(defaultCatalogYAML))
}

// LoadCatalogFile reads and validates a YAML catalog from disk
func LoadCatalogFile(path string) (*model.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog decodes and validates a YAML catalog
func LoadCatalog(r io.Reader) (*model.Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var catalog model.Catalog
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := ValidateCatalog(&catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// ValidateCatalog checks record invariants, unique keys and slug references
func ValidateCatalog(c *model.Catalog) error {
	hospitals := make(map[string]bool, len(c.Hospitals))
	for _, h := range c.Hospitals {
		if h.Slug == "" || hospitals[h.Slug] {
			return fmt.Errorf("hospital %q: empty or duplicate slug", h.Name)
		}
		hospitals[h.Slug] = true
	}
	specialties := make(map[string]bool, len(c.Specialties))
	for _, s := range c.Specialties {
		if s.Slug == "" || specialties[s.Slug] {
			return fmt.Errorf("specialty %q: empty or duplicate slug", s.Name)
		}
		specialties[s.Slug] = true
	}

	seen := make(map[string]bool, len(c.Providers))
	for i := range c.Providers {
		p := &c.Providers[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.ID] {
			return fmt.Errorf("provider %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
		if p.HospitalSlug != "" && !hospitals[p.HospitalSlug] {
			return fmt.Errorf("provider %s: unknown hospital %q", p.ID, p.HospitalSlug)
		}
	}

	checkRef := func(kind, id, hospital, specialty string) error {
		if !hospitals[hospital] {
			return fmt.Errorf("%s %s: unknown hospital %q", kind, id, hospital)
		}
		if !specialties[specialty] {
			return fmt.Errorf("%s %s: unknown specialty %q", kind, id, specialty)
		}
		return nil
	}
	for _, d := range c.Doctors {
		if err := checkRef("doctor", d.ID, d.HospitalSlug, d.SpecialtySlug); err != nil {
			return err
		}
	}
	for _, t := range c.Treatments {
		if err := checkRef("treatment", t.ID, t.HospitalSlug, t.SpecialtySlug); err != nil {
			return err
		}
		if t.PriceFrom > t.PriceTo {
			return fmt.Errorf("treatment %s: price_from %.2f exceeds price_to %.2f", t.ID, t.PriceFrom, t.PriceTo)
		}
	}
	for _, t := range c.Testimonials {
		if err := checkRef("testimonial", t.ID, t.HospitalSlug, t.SpecialtySlug); err != nil {
			return err
		}
		if t.Rating < 0 || t.Rating > 5 {
			return fmt.Errorf("testimonial %s: rating %.2f outside [0,5]", t.ID, t.Rating)
		}
	}
	return nil
}

// Stats counts the records in a catalog
func Stats(c *model.Catalog) model.CatalogStats {
	return model.CatalogStats{
		Providers:    len(c.Providers),
		Hospitals:    len(c.Hospitals),
		Specialties:  len(c.Specialties),
		Doctors:      len(c.Doctors),
		Treatments:   len(c.Treatments),
		Testimonials: len(c.Testimonials),
	}
}
