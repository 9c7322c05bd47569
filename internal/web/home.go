package web

import (
	"medtour/internal/model"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// HomeContent renders the landing page
func HomeContent(site string, featured []model.Provider, hospitals []model.Hospital, specialties []model.Specialty, doctors []model.Doctor, doctorNav CarouselControls) g.Node {
	doctorCards := make([]g.Node, len(doctors))
	for i, d := range doctors {
		doctorCards[i] = DoctorCard(d)
	}

	return g.Group([]g.Node{
		Section(Class("hero"),
			H1(g.Text("World-class treatment, planned with "+site)),
			P(g.Text("Compare accredited hospitals and doctors, get a free quote and talk to us on WhatsApp.")),
			A(Href("/providers"), Class("button"), g.Text("Find a hospital")),
		),
		Section(Class("featured"),
			H2(g.Text("Top providers")),
			Div(Class("provider-grid"), g.Map(featured, ProviderCard)),
		),
		Carousel("Meet our doctors", doctorCards, doctorNav, "Doctor profiles are coming soon."),
		Section(Class("hospitals"),
			H2(g.Text("Partner hospitals")),
			Ul(Class("hospital-list"), g.Map(hospitals, func(h model.Hospital) g.Node {
				return Li(
					Strong(g.Text(h.Name)),
					g.Text(" · "+h.City),
					Ul(Class("specialty-links"), g.Map(specialties, func(s model.Specialty) g.Node {
						return Li(A(Href(HospitalPath(h.Slug, s.Slug)), g.Text(s.Name)))
					})),
				)
			})),
		),
	})
}

// HospitalPath is the page URL of a hospital specialty
func HospitalPath(hospital, specialty string) string {
	return "/hospitals/" + hospital + "/" + specialty
}

// QuoteThanksContent confirms a quote request
func QuoteThanksContent(resp *model.QuoteResponse, backHref string) g.Node {
	return Section(Class("quote-thanks"),
		H1(g.Text("Thank you")),
		P(g.Text(resp.Message)),
		P(Class("muted"), g.Text("Reference: "+resp.ID)),
		Div(Class("actions"),
			WhatsAppButton(resp.WhatsAppURL, "Continue on WhatsApp"),
			A(Href(backHref), Class("button secondary"), g.Text("Back")),
		),
	)
}
