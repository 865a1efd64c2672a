package service

import "regexp"

// usernamePattern enforces the public handle rules: lowercase alphanumerics
// with interior hyphens, 3 to 20 characters.
var usernamePattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,18}[a-z0-9])$`)

// reservedUsernames are route segments and brand names a handle may not
// shadow, since profiles are served at /<username>.
var reservedUsernames = map[string]bool{
	"about":         true,
	"account":       true,
	"admin":         true,
	"api":           true,
	"certification": true,
	"challenges":    true,
	"curriculum":    true,
	"donate":        true,
	"learn":         true,
	"news":          true,
	"profile":       true,
	"settings":      true,
	"signin":        true,
	"signout":       true,
	"signup":        true,
	"status":        true,
	"user":          true,
	"users":         true,
}

// validUsername reports whether the handle is acceptable before any
// uniqueness check hits the store.
func validUsername(username string) bool {
	if !usernamePattern.MatchString(username) {
		return false
	}
	return !reservedUsernames[username]
}
