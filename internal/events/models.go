package events

import "time"

// Event is emitted from domain logic to capture key account actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	UserID    string            `json:"user_id"`
	Action    string            `json:"action"`
	Detail    map[string]string `json:"detail,omitempty"`
}

// Actions recorded on the user-events stream.
const (
	ActionUserCreated        = "user.created"
	ActionUserDeleted        = "user.deleted"
	ActionSettingsUpdated    = "settings.updated"
	ActionProgressReset      = "progress.reset"
	ActionChallengeCompleted = "challenge.completed"
)

// Emitter is the producer seam. Services call Emit and never block on the
// broker; the Kafka publisher is best-effort and drops on overflow.
type Emitter interface {
	Emit(event Event)
}

// Nop discards events. Used when no broker is configured and in tests.
type Nop struct{}

func (Nop) Emit(Event) {}
