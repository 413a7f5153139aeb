package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// CreateHabit inserts a trainer-defined habit plan
func (r *OnboardingRepo) CreateHabit(ctx context.Context, habit *models.Habit) error {
	habit.ID = uuid.New()
	habit.CreatedAt = time.Now()

	query := `
		INSERT INTO habits (id, trainer_phone, client_phone, name, schedule,
			target_per_week, created_at
		) VALUES (:id, :trainer_phone, :client_phone, :name, :schedule,
			:target_per_week, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, habit); err != nil {
		return fmt.Errorf("%w: failed to insert habit: %v", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}

// CreateHabitEntry inserts a client-logged habit completion
func (r *OnboardingRepo) CreateHabitEntry(ctx context.Context, entry *models.HabitEntry) error {
	entry.ID = uuid.New()
	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now()
	}

	query := `
		INSERT INTO habit_entries (id, habit_id, client_phone, note, logged_at)
		VALUES (:id, :habit_id, :client_phone, :note, :logged_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("%w: failed to insert habit entry: %v", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}

// GetHabitProgress aggregates a client's logging history per habit
func (r *OnboardingRepo) GetHabitProgress(ctx context.Context, clientPhone string) ([]models.HabitProgress, error) {
	query := `
		SELECT h.id AS habit_id, h.name AS habit_name, h.target_per_week,
			COUNT(e.id) AS total_entries, MAX(e.logged_at) AS last_logged_at
		FROM habits h
		LEFT JOIN habit_entries e ON e.habit_id = h.id
		WHERE h.client_phone = $1
		GROUP BY h.id, h.name, h.target_per_week
		ORDER BY h.created_at
	`

	var progress []models.HabitProgress
	if err := r.db.SelectContext(ctx, &progress, query, clientPhone); err != nil {
		return nil, fmt.Errorf("%w: failed to get habit progress: %v", apperrors.ErrStorageUnavailable, err)
	}

	return progress, nil
}
