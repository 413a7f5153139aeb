package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

func TestCreateHabit(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectExec("INSERT INTO habits").
		WillReturnResult(sqlmock.NewResult(0, 1))

	habit := &models.Habit{
		TrainerPhone:  "+27821234567",
		ClientPhone:   "+27731234567",
		Name:          "Morning run",
		Schedule:      "Mon, Wed, Fri",
		TargetPerWeek: 3,
	}

	err := repo.CreateHabit(context.Background(), habit)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, habit.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHabitEntry_DefaultsLoggedAt(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	mock.ExpectExec("INSERT INTO habit_entries").
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &models.HabitEntry{
		HabitID:     uuid.New(),
		ClientPhone: "+27731234567",
		Note:        "5km, felt good",
	}

	err := repo.CreateHabitEntry(context.Background(), entry)

	assert.NoError(t, err)
	assert.False(t, entry.LoggedAt.IsZero())
}

func TestGetHabitProgress(t *testing.T) {
	repo, mock := setupSQLRepoTest(t)

	habitID := uuid.New()
	lastLogged := time.Now()
	rows := sqlmock.NewRows([]string{
		"habit_id", "habit_name", "target_per_week", "total_entries", "last_logged_at",
	}).AddRow(habitID, "Morning run", 3, 5, lastLogged)

	mock.ExpectQuery("SELECT (.+) FROM habits h").
		WithArgs("+27731234567").
		WillReturnRows(rows)

	progress, err := repo.GetHabitProgress(context.Background(), "+27731234567")

	assert.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, habitID, progress[0].HabitID)
	assert.Equal(t, "Morning run", progress[0].HabitName)
	assert.Equal(t, 5, progress[0].TotalEntries)
	require.NotNil(t, progress[0].LastLoggedAt)
}
