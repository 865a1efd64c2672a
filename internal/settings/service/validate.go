package service

import (
	"net/mail"
	"net/url"
	"strings"
)

const (
	maxAboutLen    = 500
	maxNameLen     = 100
	maxLocationLen = 100
	maxTitleLen    = 100
	maxURLLen      = 2048
	maxPortfolio   = 20
)

func validEmail(address string) bool {
	if address == "" || len(address) > 255 {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	// Reject the "Name <addr>" form; settings only accept a bare address.
	return err == nil && parsed.Address == address
}

// validHTTPURL accepts absolute http(s) URLs with a host.
func validHTTPURL(raw string) bool {
	if raw == "" || len(raw) > maxURLLen {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// optionalHTTPURL treats empty as valid, for clearable URL fields.
func optionalHTTPURL(raw string) bool {
	return strings.TrimSpace(raw) == "" || validHTTPURL(raw)
}
