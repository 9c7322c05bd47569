package web

import (
	"fmt"
	"strconv"
	"strings"

	"medtour/internal/model"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CarouselControls describes the navigation of one rendered carousel
type CarouselControls struct {
	Index       int
	TotalSlides int
	Prev        int
	Next        int
	CanPrev     bool
	CanNext     bool
	// HrefFor builds the link that shows slide i
	HrefFor func(i int) string
}

// ControlsFor extracts the navigation of a carousel page
func ControlsFor[T any](page *model.CarouselPage[T], hrefFor func(int) string) CarouselControls {
	return CarouselControls{
		Index:       page.Index,
		TotalSlides: page.TotalSlides,
		Prev:        page.Prev,
		Next:        page.Next,
		CanPrev:     page.CanPrev,
		CanNext:     page.CanNext,
		HrefFor:     hrefFor,
	}
}

// Carousel renders a slide of cards with prev/next controls and slide dots
func Carousel(title string, slide []g.Node, nav CarouselControls, emptyText string) g.Node {
	control := func(label string, target int, enabled bool) g.Node {
		if !enabled {
			return Span(Class("carousel-control disabled"), g.Attr("aria-disabled", "true"), g.Text(label))
		}
		return A(Href(nav.HrefFor(target)), Class("carousel-control"), g.Attr("aria-label", label), g.Text(label))
	}

	var body g.Node
	if len(slide) == 0 {
		body = P(Class("empty-state"), g.Text(emptyText))
	} else {
		body = Div(Class("carousel-slide"), g.Group(slide))
	}

	dots := make([]g.Node, 0, nav.TotalSlides)
	for i := 0; i < nav.TotalSlides; i++ {
		class := "dot"
		if i == nav.Index {
			class += " active"
		}
		dots = append(dots, A(Href(nav.HrefFor(i)), Class(class), g.Attr("aria-label", fmt.Sprintf("Slide %d", i+1))))
	}

	return Section(Class("carousel"),
		H2(g.Text(title)),
		Div(Class("carousel-track"),
			control("‹", nav.Prev, nav.CanPrev),
			body,
			control("›", nav.Next, nav.CanNext),
		),
		g.If(nav.TotalSlides > 1, Div(Class("carousel-dots"), g.Group(dots))),
	)
}

// DoctorCard renders one doctor
func DoctorCard(d model.Doctor) g.Node {
	return Article(Class("card doctor"),
		H3(g.Text(d.Name)),
		P(g.Text(d.Title)),
		P(Class("muted"), g.Textf("%d years experience", d.Experience)),
		g.If(len(d.Languages) > 0, P(Class("muted"), g.Text("Speaks "+strings.Join(d.Languages, ", ")))),
	)
}

// TestimonialCard renders one patient story
func TestimonialCard(t model.Testimonial) g.Node {
	return Article(Class("card testimonial"),
		BlockQuote(g.Text(t.Quote)),
		P(Strong(g.Text(t.PatientName)), g.Text(", "+t.Country)),
		P(Class("muted"), g.Textf("%s · ★ %.1f", t.Treatment, t.Rating)),
	)
}

// HospitalPageData is everything the hospital specialty page shows
type HospitalPageData struct {
	Data         *model.HospitalSpecialtyData
	Doctors      []model.Doctor
	DoctorNav    CarouselControls
	Stories      []model.Testimonial
	StoryNav     CarouselControls
	WhatsAppHref string
	QuoteAction  string
}

// HospitalContent renders a hospital's specialty page
func HospitalContent(p HospitalPageData) g.Node {
	h, s := p.Data.Hospital, p.Data.Specialty

	doctorCards := make([]g.Node, len(p.Doctors))
	for i, d := range p.Doctors {
		doctorCards[i] = DoctorCard(d)
	}
	storyCards := make([]g.Node, len(p.Stories))
	for i, t := range p.Stories {
		storyCards[i] = TestimonialCard(t)
	}

	return g.Group([]g.Node{
		Section(Class("hero"),
			H1(g.Textf("%s at %s", s.Name, h.Name)),
			P(Class("muted"), g.Textf("%s, %s", h.City, h.Country)),
			g.If(h.Description != "", P(g.Text(h.Description))),
			g.If(len(h.Accreditations) > 0, P(Class("muted"), g.Text("Accredited: "+strings.Join(h.Accreditations, ", ")))),
			WhatsAppButton(p.WhatsAppHref, "Ask on WhatsApp"),
		),
		Carousel("Our doctors", doctorCards, p.DoctorNav, "Doctor profiles are coming soon."),
		treatmentsTable(p.Data.Treatments),
		Carousel("Patient stories", storyCards, p.StoryNav, "No patient stories yet."),
		QuoteForm(p.QuoteAction, h.Slug, s.Slug),
	})
}

func treatmentsTable(treatments []model.Treatment) g.Node {
	if len(treatments) == 0 {
		return Section(Class("treatments"),
			H2(g.Text("Treatments")),
			P(Class("empty-state"), g.Text("Ask us for a personalised estimate.")),
		)
	}
	return Section(Class("treatments"),
		H2(g.Text("Treatments")),
		Table(
			THead(Tr(Th(g.Text("Treatment")), Th(g.Text("Estimated cost")), Th(g.Text("Hospital stay")))),
			TBody(g.Map(treatments, func(t model.Treatment) g.Node {
				return Tr(
					Td(g.Text(t.Name)),
					Td(g.Text(priceRange(t.PriceFrom, t.PriceTo, t.Currency))),
					Td(g.Text(strconv.Itoa(t.StayDays)+" days")),
				)
			})),
		),
	)
}

// QuoteForm renders the lead form; name, country and phone are required
func QuoteForm(action, hospital, specialty string) g.Node {
	field := func(id, label, typ string) g.Node {
		return Div(Class("field"),
			Label(For(id), g.Text(label)),
			Input(ID(id), Name(id), Type(typ), Required()),
		)
	}
	return Section(Class("quote"),
		H2(g.Text("Get a free quote")),
		Form(Method("post"), Action(action),
			Input(Type("hidden"), Name("hospital"), Value(hospital)),
			Input(Type("hidden"), Name("specialty"), Value(specialty)),
			field("name", "Full name", "text"),
			field("country", "Country", "text"),
			field("phone", "Phone (with country code)", "tel"),
			Button(Type("submit"), Class("button"), g.Text("Request quote")),
		),
	)
}
