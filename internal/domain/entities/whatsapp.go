package entities

import (
	"net/url"
	"strings"
)

const whatsappBaseURL = "https://wa.me/"

// WhatsAppLink builds a wa.me deep link for phone, keeping only digits and '+'.
// It returns "" when phone has no digits.
func WhatsAppLink(phone, text string) string {
	var b strings.Builder
	hasDigit := false
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
			b.WriteRune(r)
		case r == '+':
			b.WriteRune(r)
		}
	}
	if !hasDigit {
		return ""
	}
	link := whatsappBaseURL + b.String()
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
