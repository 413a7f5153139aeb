package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

func setupSQLRepoTest(t *testing.T) (*OnboardingRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &OnboardingRepo{
		db: sqlx.NewDb(db, "sqlmock"),
	}

	return repo, mock
}

func trainerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "phone_number", "full_name", "email", "specializations",
		"services_offered", "pricing_per_session", "pricing_flexibility",
		"availability", "terms_accepted", "marketing_consent", "status",
		"created_at", "updated_at",
	})
}

func TestGetTrainerByPhone(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	id := uuid.New()
	now := time.Now()
	rows := trainerRows().AddRow(
		id, "+27821234567", "Thabo Mokoena", "thabo@example.com",
		"Strength Training", "One-on-one sessions", 350.0, "Negotiable",
		"Weekday mornings", true, false, models.StatusPendingApproval, now, now,
	)

	mock.ExpectQuery("SELECT (.+) FROM trainers").
		WithArgs("+27821234567").
		WillReturnRows(rows)

	trainer, err := repo.GetTrainerByPhone(context.Background(), "+27821234567")

	assert.NoError(t, err)
	require.NotNil(t, trainer)
	assert.Equal(t, id, trainer.ID)
	assert.Equal(t, "Thabo Mokoena", trainer.FullName)
	assert.Equal(t, models.StatusPendingApproval, trainer.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrainerByPhone_NotFound(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM trainers").
		WithArgs("+27829999999").
		WillReturnRows(trainerRows())

	trainer, err := repo.GetTrainerByPhone(context.Background(), "+27829999999")

	// Absent rows are not an error; the guard relies on this
	assert.NoError(t, err)
	assert.Nil(t, trainer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTrainerByPhone_StorageError(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM trainers").
		WithArgs("+27821234567").
		WillReturnError(errors.New("connection refused"))

	trainer, err := repo.GetTrainerByPhone(context.Background(), "+27821234567")

	assert.Nil(t, trainer)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestCreateTrainer(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectExec("INSERT INTO trainers").
		WillReturnResult(sqlmock.NewResult(0, 1))

	trainer := &models.Trainer{
		PhoneNumber:       "+27821234567",
		FullName:          "Thabo Mokoena",
		Email:             "thabo@example.com",
		PricingPerSession: 350,
		TermsAccepted:     true,
		Status:            models.StatusPendingApproval,
	}

	err := repo.CreateTrainer(context.Background(), trainer)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trainer.ID)
	assert.False(t, trainer.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrainer_DuplicatePhone(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectExec("INSERT INTO trainers").
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	trainer := &models.Trainer{
		PhoneNumber: "+27821234567",
		FullName:    "Thabo Mokoena",
	}

	err := repo.CreateTrainer(context.Background(), trainer)

	assert.ErrorIs(t, err, apperrors.ErrDuplicateRecord)
}

func TestUpdateTrainerFields(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE trainers SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateTrainerFields(context.Background(), id, map[string]interface{}{
		"full_name": "Thabo M. Mokoena",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateTrainerFields_IgnoresUnknownColumns(t *testing.T) {
	repo, _ := setupSQLRepoTest(t)

	// status is deliberately absent from the allowlist; an update carrying
	// only disallowed columns never reaches the database
	err := repo.UpdateTrainerFields(context.Background(), uuid.New(), map[string]interface{}{
		"status": "approved",
	})

	assert.Error(t, err)
}

func TestUpdateTrainerFields_NoRowMatched(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectExec("UPDATE trainers SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateTrainerFields(context.Background(), uuid.New(), map[string]interface{}{
		"full_name": "Nobody",
	})

	assert.Error(t, err)
}
