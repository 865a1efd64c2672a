// Package device derives a human-readable session label from the signin
// request's User-Agent so users can recognize their sessions.
package device

import "github.com/mssola/useragent"

// ParseUserAgent returns a "Browser on OS" label. Unknown agents still get a
// usable string rather than raw header text.
func ParseUserAgent(rawUA string) string {
	if rawUA == "" {
		return "Unknown Device"
	}

	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}
	os := ua.OSInfo().Name
	if os == "" {
		os = "Unknown OS"
	}
	return browser + " on " + os
}
