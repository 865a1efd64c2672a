package i18n

// Flash message keys returned by the settings endpoints. The client resolves
// them against its locale catalog; the English fallbacks below are also the
// values in locales/en.yml so the catalogs stay shape-checked against code.
const (
	KeyUpdatedEmail       = "flash.updated-email"
	KeyEmailInvalid       = "flash.email-invalid"
	KeyEmailSame          = "flash.email-same"
	KeyUsernameUpdated    = "flash.username-updated"
	KeyUsernameTaken      = "flash.username-taken"
	KeyUsernameInvalid    = "flash.username-invalid"
	KeyUpdatedAboutMe     = "flash.updated-about-me"
	KeyUpdatedPrivacy     = "flash.updated-privacy"
	KeyUpdatedPortfolio   = "flash.updated-portfolio"
	KeyUpdatedSocials     = "flash.updated-socials"
	KeyUpdatedPreferences = "flash.updated-preferences"
	KeyHonestyAccepted    = "flash.honesty-accepted"
	KeySubscribed         = "flash.subscribed"
	KeyUnsubscribed       = "flash.unsubscribed"
	KeyWrongUpdating      = "flash.wrong-updating"
	KeyProgressReset      = "flash.progress-reset"
	KeyAccountDeleted     = "flash.account-deleted"
)

// fallbacks is the compiled-in English catalog. Translate falls back here
// when no catalog is loaded, so the API never returns an empty message.
var fallbacks = map[string]string{
	KeyUpdatedEmail:       "Your email has been updated. Please check it for a confirmation link.",
	KeyEmailInvalid:       "That does not look like a valid email address.",
	KeyEmailSame:          "This email is the same as your current email.",
	KeyUsernameUpdated:    "Your username has been updated.",
	KeyUsernameTaken:      "That username is already taken.",
	KeyUsernameInvalid:    "That username is not valid.",
	KeyUpdatedAboutMe:     "Your about me has been updated.",
	KeyUpdatedPrivacy:     "Your privacy settings have been updated.",
	KeyUpdatedPortfolio:   "Your portfolio has been updated.",
	KeyUpdatedSocials:     "Your social links have been updated.",
	KeyUpdatedPreferences: "Your preferences have been updated.",
	KeyHonestyAccepted:    "Academic Honesty Policy accepted.",
	KeySubscribed:         "You are now subscribed to the newsletter.",
	KeyUnsubscribed:       "You are now unsubscribed from the newsletter.",
	KeyWrongUpdating:      "Something went wrong updating your account. Please try again.",
	KeyProgressReset:      "Your progress has been reset.",
	KeyAccountDeleted:     "Your account has been deleted.",
}
