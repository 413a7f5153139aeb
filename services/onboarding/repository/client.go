package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

var clientUpdatableColumns = map[string]bool{
	"full_name":         true,
	"email":             true,
	"fitness_goals":     true,
	"activity_level":    true,
	"preferred_times":   true,
	"marketing_consent": true,
}

// GetClientByPhone retrieves a client by phone number; absent rows return (nil, nil)
func (r *OnboardingRepo) GetClientByPhone(ctx context.Context, phoneNumber string) (*models.Client, error) {
	query := `
		SELECT id, phone_number, full_name, email, fitness_goals, activity_level,
			preferred_times, terms_accepted, marketing_consent, status, created_at, updated_at
		FROM clients
		WHERE phone_number = $1
	`

	var client models.Client
	err := r.db.GetContext(ctx, &client, query, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get client: %v", apperrors.ErrStorageUnavailable, err)
	}

	return &client, nil
}

// CreateClient inserts a new client row, with the same phone_number
// uniqueness handling as trainers
func (r *OnboardingRepo) CreateClient(ctx context.Context, client *models.Client) error {
	client.ID = uuid.New()
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	query := `
		INSERT INTO clients (id, phone_number, full_name, email, fitness_goals,
			activity_level, preferred_times, terms_accepted, marketing_consent,
			status, created_at, updated_at
		) VALUES (:id, :phone_number, :full_name, :email, :fitness_goals,
			:activity_level, :preferred_times, :terms_accepted, :marketing_consent,
			:status, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, client)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: client %s", apperrors.ErrDuplicateRecord, client.PhoneNumber)
		}
		return fmt.Errorf("%w: failed to insert client: %v", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}

// UpdateClientFields applies a partial update limited to allowlisted columns
func (r *OnboardingRepo) UpdateClientFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.updateFields(ctx, "clients", clientUpdatableColumns, id, fields)
}
