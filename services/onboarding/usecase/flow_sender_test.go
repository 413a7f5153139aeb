package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/config"
	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/services/onboarding/mocks"
)

func setupUsecaseTest(t *testing.T) (*OnboardingUC, *mocks.MockOnboardingRepo, *mocks.MockOnboardingGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockOnboardingRepo(ctrl)
	gw := mocks.NewMockOnboardingGW(ctrl)

	cfg := &models.Config{
		WhatsApp: models.WhatsAppConfig{
			TrainerOnboardingFlowID: "flow-trainer-1",
			ClientOnboardingFlowID:  "flow-client-1",
			HabitSetupFlowID:        "flow-habit-setup-1",
			HabitLoggingFlowID:      "flow-habit-log-1",
			HabitProgressFlowID:     "flow-habit-progress-1",
			ProfileEditFlowID:       "flow-profile-1",
		},
		Onboarding: models.OnboardingConfig{
			PricingFloor:           100,
			TokenTTLSeconds:        600,
			TrainerFallbackEnabled: false,
			ClientFallbackEnabled:  true,
		},
	}

	uc := NewOnboardingUC(cfg, config.DefaultLabelConfig(), repo, gw)
	return uc, repo, gw
}

func TestStartTrainerOnboarding_FlowSent(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").Return(nil, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27821234567", models.FlowTrainerOnboarding, nil, gomock.Any()).
		Return("token-1", nil)
	gw.EXPECT().SendFlowMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg *models.FlowMessage) error {
			assert.Equal(t, "+27821234567", msg.To)
			assert.Equal(t, "flow-trainer-1", msg.FlowID)
			assert.Equal(t, "token-1", msg.FlowToken)
			assert.NotEmpty(t, msg.CTAText)
			return nil
		})

	result, err := uc.StartTrainerOnboarding(context.Background(), "0821234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFlowSent, result.Outcome)
	assert.Equal(t, "token-1", result.FlowToken)
}

func TestStartTrainerOnboarding_AlreadyRegistered(t *testing.T) {
	uc, repo, _ := setupUsecaseTest(t)

	existing := &models.Trainer{PhoneNumber: "+27821234567"}
	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").Return(existing, nil)
	// No token is minted and nothing is sent for an already-registered user

	result, err := uc.StartTrainerOnboarding(context.Background(), "+27821234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeAlreadyRegistered, result.Outcome)
	assert.Empty(t, result.FlowToken)
}

func TestStartTrainerOnboarding_InvalidPhone(t *testing.T) {
	uc, _, _ := setupUsecaseTest(t)

	_, err := uc.StartTrainerOnboarding(context.Background(), "12345")

	require.Error(t, err)
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "phone_number", vErr.Fields[0].Field)
}

func TestStartTrainerOnboarding_DeliveryFailedNoFallback(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").Return(nil, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27821234567", models.FlowTrainerOnboarding, nil, gomock.Any()).
		Return("token-1", nil)
	gw.EXPECT().SendFlowMessage(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrGatewayDeliveryFailed)
	// The stranded token is released
	repo.EXPECT().ConsumeFlowToken(gomock.Any(), "token-1").Return(true, nil)
	// Exactly one plain-text notification, no fallback conversation
	gw.EXPECT().SendTextMessage(gomock.Any(), "+27821234567", gomock.Any()).Return(nil).Times(1)

	result, err := uc.StartTrainerOnboarding(context.Background(), "+27821234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFailed, result.Outcome)
	assert.NotEmpty(t, result.FailureReason)
	assert.Empty(t, result.FallbackState)
}

func TestStartClientOnboarding_DeliveryFailedFallsBackToText(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	repo.EXPECT().GetClientByPhone(gomock.Any(), "+27731234567").Return(nil, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27731234567", models.FlowClientOnboarding, nil, gomock.Any()).
		Return("token-2", nil)
	gw.EXPECT().SendFlowMessage(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrGatewayDeliveryFailed)
	repo.EXPECT().ConsumeFlowToken(gomock.Any(), "token-2").Return(true, nil)
	repo.EXPECT().
		StoreTextRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, session *models.TextRegistrationSession, _ interface{}) error {
			assert.Equal(t, "client", session.Domain)
			assert.Equal(t, models.TextStepAwaitingFullName, session.Step)
			return nil
		})
	gw.EXPECT().SendTextMessage(gomock.Any(), "+27731234567", gomock.Any()).Return(nil)

	result, err := uc.StartClientOnboarding(context.Background(), "+27731234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeTextFallback, result.Outcome)
	assert.Equal(t, models.TextStepAwaitingFullName, result.FallbackState)
	assert.NotEmpty(t, result.FailureReason)
}

func TestStartClientOnboarding_FallbackStoreFailureDegradesToFailed(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	repo.EXPECT().GetClientByPhone(gomock.Any(), "+27731234567").Return(nil, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27731234567", models.FlowClientOnboarding, nil, gomock.Any()).
		Return("token-3", nil)
	gw.EXPECT().SendFlowMessage(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrGatewayDeliveryFailed)
	repo.EXPECT().ConsumeFlowToken(gomock.Any(), "token-3").Return(true, nil)
	repo.EXPECT().
		StoreTextRegistration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(apperrors.ErrStorageUnavailable)

	result, err := uc.StartClientOnboarding(context.Background(), "+27731234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFailed, result.Outcome)
	// The reason reports the original delivery failure, not the storage one
	assert.Contains(t, result.FailureReason, "gateway delivery failed")
}

func TestStartHabitSetupFlow_UnregisteredTrainer(t *testing.T) {
	uc, repo, _ := setupUsecaseTest(t)

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").Return(nil, nil)

	_, err := uc.StartHabitSetupFlow(context.Background(), "+27821234567", "+27731234567")

	assert.Error(t, err)
}

func TestStartHabitSetupFlow_CarriesClientPhoneInToken(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").
		Return(&models.Trainer{PhoneNumber: "+27821234567"}, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27821234567", models.FlowTrainerHabitSetup,
			map[string]string{"client_phone": "+27731234567"}, gomock.Any()).
		Return("token-4", nil)
	gw.EXPECT().SendFlowMessage(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.StartHabitSetupFlow(context.Background(), "+27821234567", "+27731234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFlowSent, result.Outcome)
}

func TestDeliverFlow_MissingFlowIDFailsWithoutSending(t *testing.T) {
	uc, repo, gw := setupUsecaseTest(t)
	uc.cfg.WhatsApp.TrainerOnboardingFlowID = ""

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").Return(nil, nil)
	repo.EXPECT().
		IssueFlowToken(gomock.Any(), "+27821234567", models.FlowTrainerOnboarding, nil, gomock.Any()).
		Return("token-5", nil)
	repo.EXPECT().ConsumeFlowToken(gomock.Any(), "token-5").Return(true, nil)
	gw.EXPECT().SendTextMessage(gomock.Any(), "+27821234567", gomock.Any()).Return(nil)

	result, err := uc.StartTrainerOnboarding(context.Background(), "+27821234567")

	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeFailed, result.Outcome)
	assert.Contains(t, result.FailureReason, "no flow ID configured")
}

func TestStartTrainerOnboarding_GuardStorageError(t *testing.T) {
	uc, repo, _ := setupUsecaseTest(t)

	repo.EXPECT().GetTrainerByPhone(gomock.Any(), "+27821234567").
		Return(nil, errors.New("storage unavailable: connection refused"))

	_, err := uc.StartTrainerOnboarding(context.Background(), "+27821234567")

	assert.Error(t, err)
}
