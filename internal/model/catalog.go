package model

// Hospital represents a partner hospital
type Hospital struct {
	Slug           string    `json:"slug" db:"slug" yaml:"slug"`
	Name           string    `json:"name" db:"name" yaml:"name"`
	City           string    `json:"city" db:"city" yaml:"city"`
	Country        string    `json:"country" db:"country" yaml:"country"`
	Description    string    `json:"description,omitempty" db:"description" yaml:"description"`
	Accreditations JSONArray `json:"accreditations,omitempty" db:"accreditations" yaml:"accreditations"`
}

// Specialty represents a medical specialty offered by hospitals
type Specialty struct {
	Slug        string `json:"slug" db:"slug" yaml:"slug"`
	Name        string `json:"name" db:"name" yaml:"name"`
	Description string `json:"description,omitempty" db:"description" yaml:"description"`
}

// Doctor represents a doctor shown in carousels
type Doctor struct {
	ID            string    `json:"id" db:"id" yaml:"id"`
	Name          string    `json:"name" db:"name" yaml:"name"`
	Title         string    `json:"title" db:"title" yaml:"title"`
	HospitalSlug  string    `json:"hospital_slug" db:"hospital_slug" yaml:"hospital_slug"`
	SpecialtySlug string    `json:"specialty_slug" db:"specialty_slug" yaml:"specialty_slug"`
	Experience    int       `json:"experience_years" db:"experience_years" yaml:"experience_years"`
	Languages     JSONArray `json:"languages,omitempty" db:"languages" yaml:"languages"`
}

// Treatment represents a priced procedure at a hospital
type Treatment struct {
	ID            string  `json:"id" db:"id" yaml:"id"`
	HospitalSlug  string  `json:"hospital_slug" db:"hospital_slug" yaml:"hospital_slug"`
	SpecialtySlug string  `json:"specialty_slug" db:"specialty_slug" yaml:"specialty_slug"`
	Name          string  `json:"name" db:"name" yaml:"name"`
	PriceFrom     float64 `json:"price_from" db:"price_from" yaml:"price_from"`
	PriceTo       float64 `json:"price_to" db:"price_to" yaml:"price_to"`
	Currency      string  `json:"currency" db:"currency" yaml:"currency"`
	StayDays      int     `json:"stay_days" db:"stay_days" yaml:"stay_days"`
}

// Testimonial represents a patient story
type Testimonial struct {
	ID            string  `json:"id" db:"id" yaml:"id"`
	HospitalSlug  string  `json:"hospital_slug" db:"hospital_slug" yaml:"hospital_slug"`
	SpecialtySlug string  `json:"specialty_slug" db:"specialty_slug" yaml:"specialty_slug"`
	PatientName   string  `json:"patient_name" db:"patient_name" yaml:"patient_name"`
	Country       string  `json:"country" db:"country" yaml:"country"`
	Treatment     string  `json:"treatment" db:"treatment" yaml:"treatment"`
	Quote         string  `json:"quote" db:"quote" yaml:"quote"`
	Rating        float64 `json:"rating" db:"rating" yaml:"rating"`
}

// Catalog is the full reference data set loaded into a store
type Catalog struct {
	Providers    []Provider    `json:"providers" yaml:"providers"`
	Hospitals    []Hospital    `json:"hospitals" yaml:"hospitals"`
	Specialties  []Specialty   `json:"specialties" yaml:"specialties"`
	Doctors      []Doctor      `json:"doctors" yaml:"doctors"`
	Treatments   []Treatment   `json:"treatments" yaml:"treatments"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
}

// HospitalSpecialtyData is the payload behind a hospital specialty page
type HospitalSpecialtyData struct {
	Hospital     Hospital      `json:"hospital"`
	Specialty    Specialty     `json:"specialty"`
	Doctors      []Doctor      `json:"doctors"`
	Treatments   []Treatment   `json:"treatments"`
	Testimonials []Testimonial `json:"testimonials"`
}

// HospitalSpecialtyResponse is the success envelope for hospital specialty data
type HospitalSpecialtyResponse struct {
	Success bool                   `json:"success"`
	Data    *HospitalSpecialtyData `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
	Took    int64                  `json:"took_ms"`
}

// CatalogStats summarizes store contents
type CatalogStats struct {
	Providers    int `json:"providers"`
	Hospitals    int `json:"hospitals"`
	Specialties  int `json:"specialties"`
	Doctors      int `json:"doctors"`
	Treatments   int `json:"treatments"`
	Testimonials int `json:"testimonials"`
	Quotes       int `json:"quotes"`
}
