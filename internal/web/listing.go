package web

import (
	"fmt"
	"net/url"
	"strconv"

	"medtour/internal/model"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ListingURL encodes a filter state as a /providers link. Defaults are left
// out so the plain directory link stays /providers.
func ListingURL(state model.FilterState) string {
	q := url.Values{}
	for _, t := range state.SelectedTags {
		q.Add("tag", t)
	}
	if state.SortKey != "" && state.SortKey != model.SortPopularity {
		q.Set("sort", string(state.SortKey))
	}
	if state.Page > 1 {
		q.Set("page", strconv.Itoa(state.Page))
	}
	if len(q) == 0 {
		return "/providers"
	}
	return "/providers?" + q.Encode()
}

// ProvidersContent renders the filterable provider directory
func ProvidersContent(resp *model.ListingResponse) g.Node {
	state := resp.Filter

	var results g.Node
	if len(resp.Results) == 0 {
		results = Div(Class("empty-state"),
			P(g.Text("No providers match the selected services.")),
			A(Href(ListingURL(state.WithTags(nil))), g.Text("Clear filters")),
		)
	} else {
		results = Div(Class("provider-grid"), g.Map(resp.Results, ProviderCard))
	}

	return Section(Class("providers"),
		H1(g.Text("Hospitals & Doctors")),
		filterChips(resp.Facets.Tags, state),
		sortForm(state),
		P(Class("result-count"), g.Text(fmt.Sprintf("%d providers", resp.Total))),
		results,
		Pagination(state, resp.TotalPages),
	)
}

func filterChips(tags []model.TagCount, state model.FilterState) g.Node {
	return Div(Class("chips"),
		g.Map(tags, func(t model.TagCount) g.Node {
			class := "chip"
			if t.Selected {
				class += " selected"
			}
			return A(Href(ListingURL(state.ToggleTag(t.Tag))), Class(class),
				g.Textf("%s (%d)", t.Tag, t.Count),
			)
		}),
	)
}

func sortForm(state model.FilterState) g.Node {
	return Form(Method("get"), Action("/providers"), Class("sort-form"),
		g.Map(state.SelectedTags, func(t string) g.Node {
			return Input(Type("hidden"), Name("tag"), Value(t))
		}),
		Label(For("sort"), g.Text("Sort by")),
		Select(ID("sort"), Name("sort"),
			g.Map(model.SortKeys, func(k model.SortKey) g.Node {
				return Option(Value(string(k)), g.If(k == state.SortKey, Selected()), g.Text(k.Label()))
			}),
		),
		Button(Type("submit"), g.Text("Apply")),
	)
}

// ProviderCard renders one provider summary
func ProviderCard(p model.Provider) g.Node {
	contact := "/api/v1/contact/whatsapp?" + url.Values{"provider": {p.ID}}.Encode()
	return Article(Class("card"),
		g.If(p.IsFeatured, Span(Class("badge"), g.Text("Featured"))),
		H3(g.Text(p.Name)),
		P(Class("muted"), g.Text(p.Location)),
		P(g.Textf("★ %.1f (%d reviews)", p.Rating, p.ReviewCount)),
		P(g.Text(priceRange(p.PriceFrom, p.PriceTo, p.Currency))),
		Ul(Class("tags"), g.Map([]string(p.ServiceTags), func(t string) g.Node { return Li(g.Text(t)) })),
		WhatsAppButton(contact, "Chat on WhatsApp"),
	)
}

// Pagination renders page links; prev and next are disabled at the ends
func Pagination(state model.FilterState, totalPages int) g.Node {
	if totalPages <= 1 {
		return g.Group(nil)
	}

	control := func(label string, target int, enabled bool) g.Node {
		if !enabled {
			return Span(Class("page-link disabled"), g.Attr("aria-disabled", "true"), g.Text(label))
		}
		return A(Href(ListingURL(state.WithPage(target))), Class("page-link"), g.Text(label))
	}

	items := []g.Node{control("Previous", state.Page-1, state.Page > 1)}
	for i := 1; i <= totalPages; i++ {
		if i == state.Page {
			items = append(items, Span(Class("page-link current"), g.Attr("aria-current", "page"), g.Text(strconv.Itoa(i))))
			continue
		}
		items = append(items, A(Href(ListingURL(state.WithPage(i))), Class("page-link"), g.Text(strconv.Itoa(i))))
	}
	items = append(items, control("Next", state.Page+1, state.Page < totalPages))

	return Nav(Class("pagination"), g.Group(items))
}
