// Package whatsapp builds wa.me deep links for staff-to-customer messaging.
// The service never dispatches messages itself; staff open the link from
// the dashboard.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://wa.me"

// Link builds a wa.me link for the given phone number with a pre-filled
// message. Phone numbers are normalized to international format without
// the plus sign (0812... becomes 62812...).
func Link(phone, message string) string {
	normalized := NormalizePhone(phone)
	if message == "" {
		return fmt.Sprintf("%s/%s", baseURL, normalized)
	}
	return fmt.Sprintf("%s/%s?text=%s", baseURL, normalized, url.QueryEscape(message))
}

// NormalizePhone converts Indonesian phone numbers to the 62-prefixed
// international form wa.me expects.
func NormalizePhone(phone string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(cleaned, "62"):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return "62" + cleaned[1:]
	default:
		return cleaned
	}
}
