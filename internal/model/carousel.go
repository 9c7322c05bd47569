package model

// NavigationMode decides what happens at the ends of a carousel
type NavigationMode string

// Navigation modes
const (
	// NavigationWrap moves circularly past either end
	NavigationWrap NavigationMode = "wrap"
	// NavigationBounded stops at the ends and disables the control
	NavigationBounded NavigationMode = "bounded"
)

// Carousel kinds served by the API
const (
	CarouselDoctors      = "doctors"
	CarouselTestimonials = "testimonials"
)

// CarouselRequest represents a slide query
type CarouselRequest struct {
	Kind      string `json:"kind"`
	Width     int    `form:"width" json:"width,omitempty"`
	Slide     int    `form:"slide" json:"slide,omitempty"`
	Hospital  string `form:"hospital" json:"hospital,omitempty"`
	Specialty string `form:"specialty" json:"specialty,omitempty"`
}

// CarouselPage is the visible slide plus navigation targets
type CarouselPage[T any] struct {
	Kind          string         `json:"kind"`
	Mode          NavigationMode `json:"mode"`
	Items         []T            `json:"items"`
	Index         int            `json:"index"`
	TotalSlides   int            `json:"total_slides"`
	ItemsPerSlide int            `json:"items_per_slide"`
	TotalItems    int            `json:"total_items"`
	Next          int            `json:"next"`
	Prev          int            `json:"prev"`
	CanNext       bool           `json:"can_next"`
	CanPrev       bool           `json:"can_prev"`
}
