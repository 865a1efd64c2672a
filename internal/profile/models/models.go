package models

import (
	"time"

	usermodels "github.com/tiyodv/freeCodeCamp/internal/user/models"
)

// SessionUser is the full account view returned to the signed-in owner.
// Unlike the public profile it ignores the visibility flags.
type SessionUser struct {
	ID                string                     `json:"id"`
	Email             string                     `json:"email"`
	EmailVerified     bool                       `json:"emailVerified"`
	Username          string                     `json:"username"`
	Name              string                     `json:"name"`
	About             string                     `json:"about"`
	Location          string                     `json:"location"`
	Picture           string                     `json:"picture"`
	Theme             usermodels.Theme           `json:"theme"`
	SoundEnabled      bool                       `json:"sound"`
	KeyboardShortcuts bool                       `json:"keyboardShortcuts"`
	IsHonest          bool                       `json:"isHonest"`
	SendQuincyEmail   bool                       `json:"sendQuincyEmail"`
	Socials           usermodels.SocialLinks     `json:"socials"`
	ProfileUI         usermodels.ProfileUI       `json:"profileUI"`
	Portfolio         []usermodels.PortfolioItem `json:"portfolio"`
	Points            int                        `json:"points"`
	CompletedCount    int                        `json:"completedCount"`
	CurrentStreak     int                        `json:"currentStreak"`
	LongestStreak     int                        `json:"longestStreak"`
	JoinDate          time.Time                  `json:"joinDate"`
}

// PublicProfile is the view other visitors see. Every optional field is a
// pointer so hidden sections are absent from the JSON rather than zeroed.
type PublicProfile struct {
	IsLocked  bool                        `json:"isLocked"`
	Username  string                      `json:"username"`
	Name      *string                     `json:"name,omitempty"`
	About     *string                     `json:"about,omitempty"`
	Location  *string                     `json:"location,omitempty"`
	Picture   *string                     `json:"picture,omitempty"`
	Socials   *usermodels.SocialLinks     `json:"socials,omitempty"`
	Portfolio []usermodels.PortfolioItem  `json:"portfolio,omitempty"`
	Points    *int                        `json:"points,omitempty"`
	Timeline  []CompletedChallengeSummary `json:"timeline,omitempty"`
	JoinDate  *time.Time                  `json:"joinDate,omitempty"`
}

// CompletedChallengeSummary is a timeline entry on a public profile. The
// solution stays private.
type CompletedChallengeSummary struct {
	ChallengeID string    `json:"id"`
	CompletedAt time.Time `json:"completedDate"`
}
