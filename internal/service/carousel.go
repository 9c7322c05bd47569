package service

import "medtour/internal/model"

// DefaultBreakpoints are the widths at which a slide gains one more item:
// <768 shows 1, <1024 shows 2, <1280 shows 3, anything wider shows 4.
var DefaultBreakpoints = []int{768, 1024, 1280}

// Viewport reports the current viewport width in CSS pixels
type Viewport interface {
	Width() int
}

// FixedViewport is a Viewport with a known width
type FixedViewport int

// Width implements Viewport
func (v FixedViewport) Width() int { return int(v) }

// ItemsPerSlide maps a viewport width onto a slide size using ascending
// breakpoints. The result is at least 1 and never decreases as width grows.
func ItemsPerSlide(width int, breakpoints []int) int {
	n := 1
	for _, bp := range breakpoints {
		if width < bp {
			break
		}
		n++
	}
	return n
}

// SlideCount is max(1, ceil(itemCount/perSlide))
func SlideCount(itemCount, perSlide int) int {
	if perSlide <= 0 || itemCount <= 0 {
		return 1
	}
	return (itemCount + perSlide - 1) / perSlide
}

// ComputeSlides splits items into contiguous windows of perSlide items. The
// last window may be shorter; an empty input yields a single empty slide.
func ComputeSlides[T any](items []T, perSlide int) [][]T {
	if perSlide <= 0 {
		perSlide = 1
	}
	total := SlideCount(len(items), perSlide)
	slides := make([][]T, 0, total)
	if len(items) == 0 {
		return append(slides, []T{})
	}
	for start := 0; start < len(items); start += perSlide {
		end := start + perSlide
		if end > len(items) {
			end = len(items)
		}
		slides = append(slides, items[start:end])
	}
	return slides
}

// NextSlide is (i+1) mod total
func NextSlide(i, total int) int {
	if total <= 0 {
		return 0
	}
	return (i + 1) % total
}

// PrevSlide is (i-1+total) mod total
func PrevSlide(i, total int) int {
	if total <= 0 {
		return 0
	}
	return (i - 1 + total) % total
}

// CarouselState tracks slide size and position for one carousel instance
type CarouselState struct {
	mode          model.NavigationMode
	breakpoints   []int
	itemsPerSlide int
	itemCount     int
	current       int
}

// NewCarouselState creates a carousel sized for the viewport and positioned on
// the first slide
func NewCarouselState(mode model.NavigationMode, breakpoints []int, viewport Viewport, itemCount int) *CarouselState {
	if mode == "" {
		mode = model.NavigationWrap
	}
	if breakpoints == nil {
		breakpoints = DefaultBreakpoints
	}
	return &CarouselState{
		mode:          mode,
		breakpoints:   breakpoints,
		itemsPerSlide: ItemsPerSlide(viewport.Width(), breakpoints),
		itemCount:     itemCount,
	}
}

// Observe re-reads the viewport. A change in slide size returns to slide 0.
func (s *CarouselState) Observe(viewport Viewport) {
	perSlide := ItemsPerSlide(viewport.Width(), s.breakpoints)
	if perSlide != s.itemsPerSlide {
		s.itemsPerSlide = perSlide
		s.current = 0
	}
}

// SetItems replaces the collection with a list of n items and returns to
// slide 0, even when n equals the previous count.
func (s *CarouselState) SetItems(n int) {
	s.itemCount = n
	s.current = 0
}

// Mode returns the navigation mode
func (s *CarouselState) Mode() model.NavigationMode { return s.mode }

// ItemsPerSlide returns the current slide size
func (s *CarouselState) ItemsPerSlide() int { return s.itemsPerSlide }

// Index returns the current slide index
func (s *CarouselState) Index() int { return s.current }

// TotalSlides returns the number of slides
func (s *CarouselState) TotalSlides() int { return SlideCount(s.itemCount, s.itemsPerSlide) }

// NextIndex is the slide Next would move to
func (s *CarouselState) NextIndex() int {
	total := s.TotalSlides()
	if s.mode == model.NavigationBounded {
		if s.current+1 >= total {
			return s.current
		}
		return s.current + 1
	}
	return NextSlide(s.current, total)
}

// PrevIndex is the slide Prev would move to
func (s *CarouselState) PrevIndex() int {
	if s.mode == model.NavigationBounded {
		if s.current == 0 {
			return 0
		}
		return s.current - 1
	}
	return PrevSlide(s.current, s.TotalSlides())
}

// CanNext reports whether the next control is enabled
func (s *CarouselState) CanNext() bool {
	if s.mode == model.NavigationBounded {
		return s.current < s.TotalSlides()-1
	}
	return s.TotalSlides() > 1
}

// CanPrev reports whether the previous control is enabled
func (s *CarouselState) CanPrev() bool {
	if s.mode == model.NavigationBounded {
		return s.current > 0
	}
	return s.TotalSlides() > 1
}

// Next advances one slide
func (s *CarouselState) Next() { s.current = s.NextIndex() }

// Prev goes back one slide
func (s *CarouselState) Prev() { s.current = s.PrevIndex() }

// GoTo jumps to slide i. Wrapping carousels reduce i modulo the slide count,
// bounded ones clamp it.
func (s *CarouselState) GoTo(i int) {
	total := s.TotalSlides()
	if s.mode == model.NavigationBounded {
		switch {
		case i < 0:
			i = 0
		case i >= total:
			i = total - 1
		}
		s.current = i
		return
	}
	s.current = ((i % total) + total) % total
}

// BuildCarouselPage renders the current slide of items for the state. The
// state is expected to track items already; a count mismatch is treated as a
// new list.
func BuildCarouselPage[T any](kind string, items []T, s *CarouselState) model.CarouselPage[T] {
	if len(items) != s.itemCount {
		s.SetItems(len(items))
	}
	slides := ComputeSlides(items, s.ItemsPerSlide())
	return model.CarouselPage[T]{
		Kind:          kind,
		Mode:          s.Mode(),
		Items:         slides[s.Index()],
		Index:         s.Index(),
		TotalSlides:   s.TotalSlides(),
		ItemsPerSlide: s.ItemsPerSlide(),
		TotalItems:    len(items),
		Next:          s.NextIndex(),
		Prev:          s.PrevIndex(),
		CanNext:       s.CanNext(),
		CanPrev:       s.CanPrev(),
	}
}
