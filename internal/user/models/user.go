package models

import "time"

// Theme selects the client color scheme.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeNight   Theme = "night"
)

// Valid reports whether t is one of the supported themes.
func (t Theme) Valid() bool {
	return t == ThemeDefault || t == ThemeNight
}

// ProfileUI holds the visibility flags controlling which sections of a
// public profile are rendered. IsLocked short-circuits everything else.
type ProfileUI struct {
	IsLocked      bool `json:"isLocked"`
	ShowAbout     bool `json:"showAbout"`
	ShowCerts     bool `json:"showCerts"`
	ShowDonation  bool `json:"showDonation"`
	ShowHeatMap   bool `json:"showHeatMap"`
	ShowLocation  bool `json:"showLocation"`
	ShowName      bool `json:"showName"`
	ShowPoints    bool `json:"showPoints"`
	ShowPortfolio bool `json:"showPortfolio"`
	ShowTimeLine  bool `json:"showTimeLine"`
}

// PortfolioItem is one project on a user's portfolio.
type PortfolioItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// SocialLinks are the external profile URLs a user may publish.
type SocialLinks struct {
	GitHub   string `json:"githubProfile"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// User is the account record. Settings endpoints mutate subsets of it; the
// store persists it across users and portfolio_items tables.
type User struct {
	ID               string
	Email            string
	NewEmail         string // pending address from an email change, unverified
	EmailVerified    bool
	EmailRequestedAt *time.Time

	Username string // canonical lowercase
	Name     string
	About    string
	Location string
	Picture  string

	Theme             Theme
	SoundEnabled      bool
	KeyboardShortcuts bool
	IsHonest          bool
	SendQuincyEmail   bool

	Socials   SocialLinks
	ProfileUI ProfileUI
	Portfolio []PortfolioItem

	Points       int
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}
