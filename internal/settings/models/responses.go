package models

// Flash is the short-lived localized status payload every settings endpoint
// returns. Message is a translation lookup key, never display text; the
// client resolves it against its locale catalog.
type Flash struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashInfo    = "info"
)

// Success builds a success flash for the given message key.
func Success(key string) Flash {
	return Flash{Type: FlashSuccess, Message: key}
}

// Danger builds a failure flash for the given message key.
func Danger(key string) Flash {
	return Flash{Type: FlashDanger, Message: key}
}
