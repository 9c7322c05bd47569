package web

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageLayout wraps content in the shared document shell
func PageLayout(site, title, currentPath string, content g.Node) g.Node {
	fullTitle := site
	if title != "" {
		fullTitle = title + " - " + site
	}
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(Lang("en"),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(fullTitle)),
				Link(Rel("stylesheet"), Href("/static/site.css")),
			),
			Body(
				Navbar(site, currentPath),
				Main(Class("container"), content),
				FooterEl(site),
			),
		),
	})
}

// Navbar renders the top navigation
func Navbar(site, currentPath string) g.Node {
	navLink := func(href, label string) g.Node {
		class := "nav-link"
		if currentPath == href {
			class += " active"
		}
		return A(Href(href), Class(class), g.Text(label))
	}

	return Nav(Class("navbar"),
		A(Href("/"), Class("brand"), g.Text(site)),
		Div(Class("nav-links"),
			navLink("/", "Home"),
			navLink("/providers", "Hospitals & Doctors"),
		),
	)
}

// FooterEl renders the page footer
func FooterEl(site string) g.Node {
	return Footer(Class("footer"),
		P(g.Text(fmt.Sprintf("© %d %s", time.Now().Year(), site))),
	)
}

// NotFoundPanel is shown when requested data is missing or the store failed
func NotFoundPanel(message string) g.Node {
	return Section(Class("not-found"),
		H1(g.Text("Page not found")),
		P(g.Text(message)),
		Div(Class("actions"),
			A(Href("/"), Class("button"), g.Text("Back to home")),
			A(Href("/providers"), Class("button secondary"), g.Text("Browse hospitals")),
		),
	)
}

// WhatsAppButton opens a chat in a new browsing context
func WhatsAppButton(href, label string) g.Node {
	return A(Href(href), Target("_blank"), Rel("noopener noreferrer"), Class("button whatsapp"), g.Text(label))
}

func priceRange(from, to float64, currency string) string {
	if from == to {
		return fmt.Sprintf("%s %.0f", currency, from)
	}
	return fmt.Sprintf("%s %.0f - %.0f", currency, from, to)
}
