package service

import (
	"testing"

	"medtour/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsPerSlide(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 0, want: 1},
		{width: 375, want: 1},
		{width: 767, want: 1},
		{width: 768, want: 2},
		{width: 1023, want: 2},
		{width: 1024, want: 3},
		{width: 1279, want: 3},
		{width: 1280, want: 4},
		{width: 2560, want: 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ItemsPerSlide(tt.width, DefaultBreakpoints), "width %d", tt.width)
	}

	assert.Equal(t, 1, ItemsPerSlide(5000, nil))
}

func TestComputeSlides(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	slides := ComputeSlides(items, 3)
	assert.Len(t, slides, 3)
	assert.Equal(t, 3, SlideCount(len(items), 3))
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g"}}, slides)

	lengths := []int{}
	for _, s := range slides {
		lengths = append(lengths, len(s))
	}
	assert.Equal(t, []int{3, 3, 1}, lengths)
}

func TestComputeSlides_Empty(t *testing.T) {
	slides := ComputeSlides([]string{}, 4)
	assert.Len(t, slides, 1)
	assert.Empty(t, slides[0])
	assert.Equal(t, 1, SlideCount(0, 4))
}

func TestNextPrevSlide(t *testing.T) {
	assert.Equal(t, 1, NextSlide(0, 3))
	assert.Equal(t, 0, NextSlide(2, 3))
	assert.Equal(t, 2, PrevSlide(0, 3))
	assert.Equal(t, 0, PrevSlide(1, 3))
	assert.Equal(t, 0, NextSlide(0, 1))
	assert.Equal(t, 0, PrevSlide(0, 1))
	assert.Equal(t, 0, NextSlide(5, 0))
}

func TestCarouselState_Wrap(t *testing.T) {
	s := NewCarouselState(model.NavigationWrap, nil, FixedViewport(1100), 7)
	assert.Equal(t, 3, s.ItemsPerSlide())
	assert.Equal(t, 3, s.TotalSlides())
	assert.True(t, s.CanPrev())
	assert.True(t, s.CanNext())

	s.Prev()
	assert.Equal(t, 2, s.Index())
	s.Next()
	assert.Equal(t, 0, s.Index())

	s.GoTo(-1)
	assert.Equal(t, 2, s.Index())
	s.GoTo(7)
	assert.Equal(t, 1, s.Index())
}

func TestCarouselState_Bounded(t *testing.T) {
	s := NewCarouselState(model.NavigationBounded, nil, FixedViewport(800), 5)
	assert.Equal(t, 2, s.ItemsPerSlide())
	assert.Equal(t, 3, s.TotalSlides())

	assert.False(t, s.CanPrev())
	s.Prev()
	assert.Equal(t, 0, s.Index())

	s.Next()
	s.Next()
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.CanNext())
	s.Next()
	assert.Equal(t, 2, s.Index())

	s.GoTo(10)
	assert.Equal(t, 2, s.Index())
	s.GoTo(-3)
	assert.Equal(t, 0, s.Index())
}

func TestCarouselState_ResetsOnResizeAndItemChange(t *testing.T) {
	s := NewCarouselState(model.NavigationWrap, nil, FixedViewport(500), 6)
	s.GoTo(4)
	assert.Equal(t, 4, s.Index())

	s.Observe(FixedViewport(600))
	assert.Equal(t, 4, s.Index(), "same tier keeps position")

	s.Observe(FixedViewport(1300))
	assert.Equal(t, 4, s.ItemsPerSlide())
	assert.Equal(t, 0, s.Index())

	s.Next()
	s.SetItems(9)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 3, s.TotalSlides())
}

func TestCarouselState_ResetsOnSameLengthListSwap(t *testing.T) {
	s := NewCarouselState(model.NavigationWrap, nil, FixedViewport(500), 4)
	s.Next()
	require.Equal(t, 1, s.Index())

	s.SetItems(4)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 4, s.TotalSlides())

	filtered := []string{"e", "f", "g", "h"}
	s.GoTo(2)
	s.SetItems(len(filtered))
	page := BuildCarouselPage("doctors", filtered, s)
	assert.Equal(t, 0, page.Index)
	assert.Equal(t, []string{"e"}, page.Items)
}

func TestBuildCarouselPage_KeepsPositionForSameList(t *testing.T) {
	items := []int{1, 2, 3, 4}
	s := NewCarouselState(model.NavigationBounded, nil, FixedViewport(500), len(items))
	s.GoTo(2)

	page := BuildCarouselPage("testimonials", items, s)
	assert.Equal(t, 2, page.Index)
	assert.Equal(t, []int{3}, page.Items)

	page = BuildCarouselPage("testimonials", items[:2], s)
	assert.Equal(t, 0, page.Index, "a different count is a new list")
}

func TestCarouselState_EmptyIsNoop(t *testing.T) {
	for _, mode := range []model.NavigationMode{model.NavigationWrap, model.NavigationBounded} {
		s := NewCarouselState(mode, nil, FixedViewport(1400), 0)
		assert.Equal(t, 1, s.TotalSlides())
		s.Next()
		assert.Equal(t, 0, s.Index())
		s.Prev()
		assert.Equal(t, 0, s.Index())
		assert.False(t, s.CanNext())
		assert.False(t, s.CanPrev())
	}
}

func TestBuildCarouselPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}
	s := NewCarouselState(model.NavigationWrap, nil, FixedViewport(1100), len(items))
	s.GoTo(2)

	page := BuildCarouselPage("doctors", items, s)
	assert.Equal(t, []int{7}, page.Items)
	assert.Equal(t, 2, page.Index)
	assert.Equal(t, 3, page.TotalSlides)
	assert.Equal(t, 0, page.Next)
	assert.Equal(t, 1, page.Prev)
	assert.Equal(t, model.NavigationWrap, page.Mode)
	assert.Equal(t, 7, page.TotalItems)

	empty := BuildCarouselPage("testimonials", []int{}, NewCarouselState(model.NavigationBounded, nil, FixedViewport(300), 0))
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.TotalSlides)
	assert.False(t, empty.CanNext)
}
