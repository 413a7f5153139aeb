package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

const pgUniqueViolation = "23505"

// trainerUpdatableColumns is the allowlist for profile-edit updates
var trainerUpdatableColumns = map[string]bool{
	"full_name":           true,
	"email":               true,
	"specializations":     true,
	"services_offered":    true,
	"pricing_per_session": true,
	"pricing_flexibility": true,
	"availability":        true,
	"marketing_consent":   true,
}

// GetTrainerByPhone retrieves a trainer by phone number; absent rows return
// (nil, nil) so the idempotency guard can distinguish "not registered" from
// a storage failure.
func (r *OnboardingRepo) GetTrainerByPhone(ctx context.Context, phoneNumber string) (*models.Trainer, error) {
	query := `
		SELECT id, phone_number, full_name, email, specializations, services_offered,
			pricing_per_session, pricing_flexibility, availability,
			terms_accepted, marketing_consent, status, created_at, updated_at
		FROM trainers
		WHERE phone_number = $1
	`

	var trainer models.Trainer
	err := r.db.GetContext(ctx, &trainer, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get trainer: %v", apperrors.ErrStorageUnavailable, err)
	}

	return &trainer, nil
}

// CreateTrainer inserts a new trainer row. The unique constraint on
// phone_number turns a lost first-registration race into an explicit
// conflict rather than a duplicate row.
func (r *OnboardingRepo) CreateTrainer(ctx context.Context, trainer *models.Trainer) error {
	trainer.ID = uuid.New()
	now := time.Now()
	trainer.CreatedAt = now
	trainer.UpdatedAt = now

	query := `
		INSERT INTO trainers (id, phone_number, full_name, email, specializations,
			services_offered, pricing_per_session, pricing_flexibility, availability,
			terms_accepted, marketing_consent, status, created_at, updated_at
		) VALUES (:id, :phone_number, :full_name, :email, :specializations,
			:services_offered, :pricing_per_session, :pricing_flexibility, :availability,
			:terms_accepted, :marketing_consent, :status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, trainer)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: trainer %s", apperrors.ErrDuplicateRecord, trainer.PhoneNumber)
		}
		return fmt.Errorf("%w: failed to insert trainer: %v", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}

// UpdateTrainerFields applies a partial update limited to allowlisted columns
func (r *OnboardingRepo) UpdateTrainerFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.updateFields(ctx, "trainers", trainerUpdatableColumns, id, fields)
}

// updateFields builds a SET clause from an allowlisted field map. Shared by
// the trainer and client profile-edit paths.
func (r *OnboardingRepo) updateFields(ctx context.Context, table string, allowed map[string]bool, id uuid.UUID, fields map[string]interface{}) error {
	setClauses := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)

	i := 1
	for column, value := range fields {
		if !allowed[column] {
			continue
		}
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	if len(setClauses) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", i))
	args = append(args, time.Now())
	i++
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(setClauses, ", "), i)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: failed to update %s: %v", apperrors.ErrStorageUnavailable, table, err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("no %s row found for id %s", table, id)
	}

	return nil
}
