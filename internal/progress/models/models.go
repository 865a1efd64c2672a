package models

import "time"

// CompletedChallenge is one recorded completion. Completing the same
// challenge again refreshes the timestamp but never double-counts.
type CompletedChallenge struct {
	ChallengeID string    `json:"id"`
	CompletedAt time.Time `json:"completedDate"`
	Solution    string    `json:"solution,omitempty"`
}

// Overview is the progress summary shown on the user's dashboard.
type Overview struct {
	Points         int `json:"points"`
	CompletedCount int `json:"completedCount"`
	CurrentStreak  int `json:"currentStreak"`
	LongestStreak  int `json:"longestStreak"`
}

// CompleteResult reports what a completion did.
type CompleteResult struct {
	AlreadyCompleted bool `json:"alreadyCompleted"`
	Points           int  `json:"points"`
}
