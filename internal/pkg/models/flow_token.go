package models

import "time"

// FlowType identifies which flow screen bundle a correlation token was minted for.
// The set is closed: the dispatch table in the onboarding usecase is the single
// authority on recognized values.
type FlowType string

const (
	FlowTrainerOnboarding  FlowType = "trainer_onboarding"
	FlowClientOnboarding   FlowType = "client_onboarding"
	FlowTrainerHabitSetup  FlowType = "trainer_habit_setup"
	FlowClientHabitLogging FlowType = "client_habit_logging"
	FlowHabitProgress      FlowType = "habit_progress"
	FlowProfileEditTrainer FlowType = "profile_edit_trainer"
	FlowProfileEditClient  FlowType = "profile_edit_client"
)

// FlowToken links a flow-send event to its later completion callback.
// Stored in Redis as a JSON blob under flow:token:{token} with a TTL;
// ExpiresAt is additionally checked at read time so a physically present
// but stale row is still treated as absent.
type FlowToken struct {
	Token       string            `json:"token"`
	PhoneNumber string            `json:"phone_number"`
	FlowType    FlowType          `json:"flow_type"`
	Payload     map[string]string `json:"payload,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// Expired reports whether the token is past its lifetime at the given instant
func (t *FlowToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
