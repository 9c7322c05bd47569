package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Provider represents a hospital, clinic or doctor listing
type Provider struct {
	ID           string    `json:"id" db:"id" yaml:"id"`
	Name         string    `json:"name" db:"name" yaml:"name"`
	Kind         string    `json:"kind" db:"kind" yaml:"kind"`
	Location     string    `json:"location" db:"location" yaml:"location"`
	Country      string    `json:"country" db:"country" yaml:"country"`
	HospitalSlug string    `json:"hospital_slug,omitempty" db:"hospital_slug" yaml:"hospital_slug"`
	Rating       float64   `json:"rating" db:"rating" yaml:"rating"`
	ReviewCount  int       `json:"review_count" db:"review_count" yaml:"review_count"`
	PriceFrom    float64   `json:"price_from" db:"price_from" yaml:"price_from"`
	PriceTo      float64   `json:"price_to" db:"price_to" yaml:"price_to"`
	Currency     string    `json:"currency" db:"currency" yaml:"currency"`
	ServiceTags  JSONArray `json:"service_tags" db:"service_tags" yaml:"service_tags"`
	IsFeatured   bool      `json:"is_featured" db:"is_featured" yaml:"is_featured"`
	Description  string    `json:"description,omitempty" db:"description" yaml:"description"`
}

// Validate checks the invariants of a provider record
func (p *Provider) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("provider %q: missing id", p.Name)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return fmt.Errorf("provider %s: rating %.2f outside [0,5]", p.ID, p.Rating)
	}
	if p.ReviewCount < 0 {
		return fmt.Errorf("provider %s: negative review count", p.ID)
	}
	if p.PriceFrom > p.PriceTo {
		return fmt.Errorf("provider %s: price_from %.2f exceeds price_to %.2f", p.ID, p.PriceFrom, p.PriceTo)
	}
	return nil
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return fmt.Errorf("unsupported JSONArray source %T", value)
	}
}
