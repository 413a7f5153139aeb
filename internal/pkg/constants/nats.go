package constants

// NATS Subjects
const (
	// Onboarding events consumed by the approval pipeline
	SubjectTrainerRegistered = "onboarding.trainer.registered"
	SubjectClientRegistered  = "onboarding.client.registered"

	// Habit events
	SubjectHabitLogged = "habit.entry.logged"
)
