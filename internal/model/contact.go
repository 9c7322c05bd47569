package model

import "time"

// ContactIntent is a recipient and message template consumed by the dispatcher
type ContactIntent struct {
	RecipientPhone  string
	MessageTemplate string
}

// ContactRequest represents a WhatsApp link request
type ContactRequest struct {
	ProviderID string `form:"provider" json:"provider,omitempty"`
	Service    string `form:"service" json:"service,omitempty"`
	Hospital   string `form:"hospital" json:"hospital,omitempty"`
	Specialty  string `form:"specialty" json:"specialty,omitempty"`
	Name       string `form:"name" json:"name,omitempty"`
	Format     string `form:"format" json:"-"`
}

// ContactLinkResponse carries a built deep link
type ContactLinkResponse struct {
	URL     string `json:"url"`
	EventID string `json:"event_id"`
}

// ContactEvent records a dispatched contact link
type ContactEvent struct {
	ID            string    `json:"id" db:"id"`
	ProviderID    string    `json:"provider_id,omitempty" db:"provider_id"`
	HospitalSlug  string    `json:"hospital_slug,omitempty" db:"hospital_slug"`
	SpecialtySlug string    `json:"specialty_slug,omitempty" db:"specialty_slug"`
	Service       string    `json:"service,omitempty" db:"service"`
	URL           string    `json:"url" db:"url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// QuoteRequest represents the quote form
type QuoteRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`
	Country   string `json:"country" form:"country" binding:"required"`
	Phone     string `json:"phone" form:"phone" binding:"required"`
	Hospital  string `json:"hospital,omitempty" form:"hospital"`
	Specialty string `json:"specialty,omitempty" form:"specialty"`
	Service   string `json:"service,omitempty" form:"service"`
}

// Quote is a stored quote request
type Quote struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Country       string    `json:"country" db:"country"`
	Phone         string    `json:"phone" db:"phone"`
	HospitalSlug  string    `json:"hospital_slug,omitempty" db:"hospital_slug"`
	SpecialtySlug string    `json:"specialty_slug,omitempty" db:"specialty_slug"`
	Service       string    `json:"service,omitempty" db:"service"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// QuoteResponse confirms a stored quote
type QuoteResponse struct {
	ID          string `json:"id"`
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
