package service

import (
	"net/url"
	"strings"

	"medtour/internal/model"
	"medtour/internal/utils"
)

const whatsAppBaseURL = "https://wa.me/"

// NormalizePhone strips everything except ASCII digits
func NormalizePhone(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PercentEncode escapes s for a query value, encoding spaces as %20
func PercentEncode(s string) string {
	// QueryEscape turns a literal '+' into %2B, so any remaining '+' is a space
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// BuildWhatsAppURL builds a click-to-chat link
func BuildWhatsAppURL(phone, message string) string {
	return whatsAppBaseURL + NormalizePhone(phone) + "?text=" + PercentEncode(message)
}

// RenderMessage fills {key} placeholders in template. Unknown placeholders are
// left as written; empty values collapse to nothing. Line breaks are kept,
// runs of spaces within a line become one.
func RenderMessage(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	msg := strings.NewReplacer(pairs...).Replace(template)

	lines := strings.Split(strings.ReplaceAll(msg, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// Opener opens a URL in a new browsing context
type Opener interface {
	Open(url string)
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(url string)

// Open implements Opener
func (f OpenerFunc) Open(url string) { f(url) }

// ContactDispatcher builds messaging links and hands them to an opener
type ContactDispatcher struct {
	defaultPhone    string
	defaultTemplate string
}

// NewContactDispatcher creates a dispatcher with fallback phone and template
func NewContactDispatcher(defaultPhone, defaultTemplate string) *ContactDispatcher {
	return &ContactDispatcher{
		defaultPhone:    defaultPhone,
		defaultTemplate: defaultTemplate,
	}
}

// Intent returns the default intent with blanks filled from the dispatcher
func (d *ContactDispatcher) Intent(phone, template string) model.ContactIntent {
	if strings.TrimSpace(phone) == "" {
		phone = d.defaultPhone
	}
	if strings.TrimSpace(template) == "" {
		template = d.defaultTemplate
	}
	return model.ContactIntent{RecipientPhone: phone, MessageTemplate: template}
}

// Link renders the intent's template with vars and builds the WhatsApp URL
func (d *ContactDispatcher) Link(intent model.ContactIntent, vars map[string]string) string {
	return BuildWhatsAppURL(intent.RecipientPhone, RenderMessage(intent.MessageTemplate, vars))
}

// Dispatch hands url to opener. It never reports failure and never retries.
func (d *ContactDispatcher) Dispatch(opener Opener, url string) {
	if opener == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			utils.Log.WithField("url", url).Warnf("contact opener failed: %v", r)
		}
	}()
	opener.Open(url)
}
