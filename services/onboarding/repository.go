package onboarding

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fitlink/fitlink/services/onboarding OnboardingRepo

// OnboardingRepo represents the onboarding persistence interface: the flow
// token store (Redis) plus the trainer/client/habit collections (Postgres).
type OnboardingRepo interface {
	// Flow token store
	IssueFlowToken(ctx context.Context, phoneNumber string, flowType models.FlowType, payload map[string]string, ttl time.Duration) (string, error)
	ResolveFlowToken(ctx context.Context, token string) (*models.FlowToken, error)
	ConsumeFlowToken(ctx context.Context, token string) (bool, error)

	// Text registration fallback sessions
	StoreTextRegistration(ctx context.Context, session *models.TextRegistrationSession, ttl time.Duration) error

	// Trainer collection
	GetTrainerByPhone(ctx context.Context, phoneNumber string) (*models.Trainer, error)
	CreateTrainer(ctx context.Context, trainer *models.Trainer) error
	UpdateTrainerFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Client collection
	GetClientByPhone(ctx context.Context, phoneNumber string) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClientFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error

	// Habit collections
	CreateHabit(ctx context.Context, habit *models.Habit) error
	CreateHabitEntry(ctx context.Context, entry *models.HabitEntry) error
	GetHabitProgress(ctx context.Context, clientPhone string) ([]models.HabitProgress, error)
}
