package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

func TestHandleClientHabitLogging(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	habitID := uuid.New()
	token := &models.FlowToken{
		Token:       "token-1",
		PhoneNumber: "+27731234567",
		FlowType:    models.FlowClientHabitLogging,
		Payload:     map[string]string{"habit_id": habitID.String()},
	}

	repo.EXPECT().CreateHabitEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.HabitEntry) error {
			assert.Equal(t, habitID, entry.HabitID)
			assert.Equal(t, "+27731234567", entry.ClientPhone)
			assert.Equal(t, "5km, felt good", entry.Note)
			entry.ID = uuid.New()
			return nil
		})
	gw.EXPECT().PublishHabitLogged(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.handleClientHabitLogging(context.Background(), models.RawFlowPayload{
		"note": "5km, felt good",
	}, token)

	assert.NoError(t, err)
	assert.Equal(t, models.FlowClientHabitLogging, result.FlowType)
}

func TestHandleClientHabitLogging_MissingHabitID(t *testing.T) {
	uc, _, _ := setupUsecaseTest(t)

	token := &models.FlowToken{
		Token:       "token-1",
		PhoneNumber: "+27731234567",
		FlowType:    models.FlowClientHabitLogging,
	}

	_, err := uc.handleClientHabitLogging(context.Background(), models.RawFlowPayload{}, token)

	require.Error(t, err)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "habit_id", vErr.Fields[0].Field)
}

func TestHandleHabitProgress(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	lastLogged := time.Now()
	token := &models.FlowToken{
		Token:       "token-1",
		PhoneNumber: "+27731234567",
		FlowType:    models.FlowHabitProgress,
	}

	repo.EXPECT().GetHabitProgress(gomock.Any(), "+27731234567").
		Return([]models.HabitProgress{
			{HabitName: "Morning run", TargetPerWeek: 3, TotalEntries: 5, LastLoggedAt: &lastLogged},
			{HabitName: "Stretching", TotalEntries: 0},
		}, nil)
	gw.EXPECT().SendTextMessage(gomock.Any(), "+27731234567", gomock.Any()).Return(nil)

	result, err := uc.handleHabitProgress(context.Background(), models.RawFlowPayload{}, token)

	assert.NoError(t, err)
	assert.Contains(t, result.Message, "Morning run: 5 entries logged (target 3/week)")
	assert.Contains(t, result.Message, "Stretching: 0 entries logged")
}

func TestHandleHabitProgress_NoHabits(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	token := &models.FlowToken{
		Token:       "token-1",
		PhoneNumber: "+27731234567",
		FlowType:    models.FlowHabitProgress,
	}

	repo.EXPECT().GetHabitProgress(gomock.Any(), "+27731234567").
		Return(nil, nil)
	gw.EXPECT().SendTextMessage(gomock.Any(), "+27731234567", gomock.Any()).Return(nil)

	result, err := uc.handleHabitProgress(context.Background(), models.RawFlowPayload{}, token)

	assert.NoError(t, err)
	assert.Contains(t, result.Message, "no habit plans yet")
}

func TestHandleTrainerHabitSetup_InvalidTarget(t *testing.T) {
	uc, _, _ := setupUsecaseTest(t)

	token := &models.FlowToken{
		Token:       "token-1",
		PhoneNumber: "+27821234567",
		FlowType:    models.FlowTrainerHabitSetup,
		Payload:     map[string]string{"client_phone": "+27731234567"},
	}

	_, err := uc.handleTrainerHabitSetup(context.Background(), models.RawFlowPayload{
		"habit_name":      "Morning run",
		"target_per_week": "-2",
	}, token)

	require.Error(t, err)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "target_per_week", vErr.Fields[0].Field)
}
