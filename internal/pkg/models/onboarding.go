package models

import (
	"time"

	"github.com/google/uuid"
)

// StatusPendingApproval is the fixed initial status of every onboarding record.
// Client-supplied status values are never honored.
const StatusPendingApproval = "pending_approval"

// Trainer is the canonical record produced by a completed trainer onboarding flow
type Trainer struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	PhoneNumber        string    `json:"phone_number" db:"phone_number"`
	FullName           string    `json:"full_name" db:"full_name"`
	Email              string    `json:"email" db:"email"`
	Specializations    string    `json:"specializations" db:"specializations"`
	ServicesOffered    string    `json:"services_offered" db:"services_offered"`
	PricingPerSession  float64   `json:"pricing_per_session" db:"pricing_per_session"`
	PricingFlexibility string    `json:"pricing_flexibility" db:"pricing_flexibility"`
	Availability       string    `json:"availability" db:"availability"`
	TermsAccepted      bool      `json:"terms_accepted" db:"terms_accepted"`
	MarketingConsent   bool      `json:"marketing_consent" db:"marketing_consent"`
	Status             string    `json:"status" db:"status"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// Client is the canonical record produced by a completed client onboarding flow
type Client struct {
	ID               uuid.UUID `json:"id" db:"id"`
	PhoneNumber      string    `json:"phone_number" db:"phone_number"`
	FullName         string    `json:"full_name" db:"full_name"`
	Email            string    `json:"email" db:"email"`
	FitnessGoals     string    `json:"fitness_goals" db:"fitness_goals"`
	ActivityLevel    string    `json:"activity_level" db:"activity_level"`
	PreferredTimes   string    `json:"preferred_times" db:"preferred_times"`
	TermsAccepted    bool      `json:"terms_accepted" db:"terms_accepted"`
	MarketingConsent bool      `json:"marketing_consent" db:"marketing_consent"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Habit is a trainer-defined habit plan assigned to a client
type Habit struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TrainerPhone string    `json:"trainer_phone" db:"trainer_phone"`
	ClientPhone  string    `json:"client_phone" db:"client_phone"`
	Name         string    `json:"name" db:"name"`
	Schedule     string    `json:"schedule" db:"schedule"`
	TargetPerWeek int      `json:"target_per_week" db:"target_per_week"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// HabitEntry is a single client-logged completion of a habit
type HabitEntry struct {
	ID          uuid.UUID `json:"id" db:"id"`
	HabitID     uuid.UUID `json:"habit_id" db:"habit_id"`
	ClientPhone string    `json:"client_phone" db:"client_phone"`
	Note        string    `json:"note" db:"note"`
	LoggedAt    time.Time `json:"logged_at" db:"logged_at"`
}

// HabitProgress aggregates a client's logging history for one habit
type HabitProgress struct {
	HabitID      uuid.UUID  `json:"habit_id" db:"habit_id"`
	HabitName    string     `json:"habit_name" db:"habit_name"`
	TargetPerWeek int       `json:"target_per_week" db:"target_per_week"`
	TotalEntries int        `json:"total_entries" db:"total_entries"`
	LastLoggedAt *time.Time `json:"last_logged_at,omitempty" db:"last_logged_at"`
}
