package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
	"github.com/fitlink/fitlink/internal/utils"
)

const (
	domainTrainer = "trainer"
	domainClient  = "client"

	// Sent best-effort when a flow cannot be delivered and no text fallback
	// exists for the domain
	flowUnavailableText = "Sorry, our registration form is temporarily unavailable. Please try again in a few minutes."

	// First prompt of the text-based registration conversation
	textRegistrationPrompt = "We couldn't open the registration form on your device, so let's do it over chat instead. What is your full name?"
)

// flowCopy is the static header/body/footer text of one flow message
type flowCopy struct {
	header string
	body   string
	footer string
	cta    string
	screen string
}

var flowCopyByType = map[models.FlowType]flowCopy{
	models.FlowTrainerOnboarding: {
		header: "Become a FitLink Trainer",
		body:   "Tell us about your coaching business and we'll get your profile in front of clients near you.",
		footer: "Takes about 3 minutes",
		cta:    "Start registration",
		screen: "TRAINER_DETAILS",
	},
	models.FlowClientOnboarding: {
		header: "Find Your Trainer",
		body:   "Answer a few quick questions about your goals and we'll match you with the right coach.",
		footer: "Takes about 2 minutes",
		cta:    "Get started",
		screen: "CLIENT_GOALS",
	},
	models.FlowTrainerHabitSetup: {
		header: "Set Up a Habit Plan",
		body:   "Define a habit for your client to track between sessions.",
		footer: "",
		cta:    "Create habit",
		screen: "HABIT_DETAILS",
	},
	models.FlowClientHabitLogging: {
		header: "Log Your Habit",
		body:   "Record today's progress on your habit plan.",
		footer: "",
		cta:    "Log now",
		screen: "HABIT_LOG",
	},
	models.FlowHabitProgress: {
		header: "Your Progress",
		body:   "Review how your habits are tracking this week.",
		footer: "",
		cta:    "View progress",
		screen: "PROGRESS_SUMMARY",
	},
	models.FlowProfileEditTrainer: {
		header: "Update Your Profile",
		body:   "Change the details clients see on your trainer profile.",
		footer: "",
		cta:    "Edit profile",
		screen: "PROFILE_EDIT",
	},
	models.FlowProfileEditClient: {
		header: "Update Your Profile",
		body:   "Change your goals and preferences.",
		footer: "",
		cta:    "Edit profile",
		screen: "PROFILE_EDIT",
	},
}

// StartTrainerOnboarding delivers the trainer onboarding entry point.
// Trainer onboarding is fallback-disabled by default: a delivery failure is
// reported as such, with one best-effort notification to the user.
func (u *OnboardingUC) StartTrainerOnboarding(ctx context.Context, phoneNumber string) (*models.FlowSendResult, error) {
	valid, phone, err := utils.ValidatePhoneNumber(phoneNumber)
	if err != nil || !valid {
		result := models.ValidationResult{Valid: true}
		result.AddError("phone_number", "phone_number must be a valid South African mobile number")
		return nil, apperrors.NewValidationError(result)
	}

	// The guard runs before any token mint so a failed send never strands a
	// token for an already-registered user.
	trainer, err := u.repo.GetTrainerByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if trainer != nil {
		return &models.FlowSendResult{Outcome: models.OutcomeAlreadyRegistered}, nil
	}

	return u.deliverFlow(ctx, phone, models.FlowTrainerOnboarding, u.cfg.WhatsApp.TrainerOnboardingFlowID,
		nil, domainTrainer, u.cfg.Onboarding.TrainerFallbackEnabled)
}

// StartClientOnboarding delivers the client onboarding entry point.
// Client onboarding is fallback-enabled by default: a delivery failure
// degrades to a text-based registration conversation.
func (u *OnboardingUC) StartClientOnboarding(ctx context.Context, phoneNumber string) (*models.FlowSendResult, error) {
	valid, phone, err := utils.ValidatePhoneNumber(phoneNumber)
	if err != nil || !valid {
		result := models.ValidationResult{Valid: true}
		result.AddError("phone_number", "phone_number must be a valid South African mobile number")
		return nil, apperrors.NewValidationError(result)
	}

	client, err := u.repo.GetClientByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if client != nil {
		return &models.FlowSendResult{Outcome: models.OutcomeAlreadyRegistered}, nil
	}

	return u.deliverFlow(ctx, phone, models.FlowClientOnboarding, u.cfg.WhatsApp.ClientOnboardingFlowID,
		nil, domainClient, u.cfg.Onboarding.ClientFallbackEnabled)
}

// StartHabitSetupFlow delivers the habit setup flow to a registered trainer,
// carrying the target client in the token context.
func (u *OnboardingUC) StartHabitSetupFlow(ctx context.Context, trainerPhone, clientPhone string) (*models.FlowSendResult, error) {
	trainer, err := u.repo.GetTrainerByPhone(ctx, trainerPhone)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, fmt.Errorf("trainer %s is not registered", trainerPhone)
	}

	payload := map[string]string{"client_phone": clientPhone}
	return u.deliverFlow(ctx, trainerPhone, models.FlowTrainerHabitSetup, u.cfg.WhatsApp.HabitSetupFlowID,
		payload, domainTrainer, false)
}

// StartHabitLoggingFlow delivers the habit logging flow to a registered
// client, carrying the habit being logged in the token context.
func (u *OnboardingUC) StartHabitLoggingFlow(ctx context.Context, clientPhone, habitID string) (*models.FlowSendResult, error) {
	client, err := u.repo.GetClientByPhone(ctx, clientPhone)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s is not registered", clientPhone)
	}

	payload := map[string]string{"habit_id": habitID}
	return u.deliverFlow(ctx, clientPhone, models.FlowClientHabitLogging, u.cfg.WhatsApp.HabitLoggingFlowID,
		payload, domainClient, false)
}

// StartHabitProgressFlow delivers the progress review flow to a registered client
func (u *OnboardingUC) StartHabitProgressFlow(ctx context.Context, clientPhone string) (*models.FlowSendResult, error) {
	client, err := u.repo.GetClientByPhone(ctx, clientPhone)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client %s is not registered", clientPhone)
	}

	return u.deliverFlow(ctx, clientPhone, models.FlowHabitProgress, u.cfg.WhatsApp.HabitProgressFlowID,
		nil, domainClient, false)
}

// StartProfileEditFlow delivers a profile-edit flow, recording the target
// record ID in the token context so the completion handler knows which row
// is being edited.
func (u *OnboardingUC) StartProfileEditFlow(ctx context.Context, phoneNumber string, flowType models.FlowType) (*models.FlowSendResult, error) {
	var recordID, domain string
	switch flowType {
	case models.FlowProfileEditTrainer:
		trainer, err := u.repo.GetTrainerByPhone(ctx, phoneNumber)
		if err != nil {
			return nil, err
		}
		if trainer == nil {
			return nil, fmt.Errorf("trainer %s is not registered", phoneNumber)
		}
		recordID, domain = trainer.ID.String(), domainTrainer
	case models.FlowProfileEditClient:
		client, err := u.repo.GetClientByPhone(ctx, phoneNumber)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, fmt.Errorf("client %s is not registered", phoneNumber)
		}
		recordID, domain = client.ID.String(), domainClient
	default:
		return nil, fmt.Errorf("%s is not a profile edit flow type", flowType)
	}

	payload := map[string]string{"record_id": recordID}
	return u.deliverFlow(ctx, phoneNumber, flowType, u.cfg.WhatsApp.ProfileEditFlowID,
		payload, domain, false)
}

// deliverFlow mints a token, attempts structured delivery, and applies the
// domain's failure policy. All outcomes are mutually exclusive.
func (u *OnboardingUC) deliverFlow(
	ctx context.Context,
	phone string,
	flowType models.FlowType,
	flowID string,
	payload map[string]string,
	domain string,
	fallbackEnabled bool,
) (*models.FlowSendResult, error) {
	msgCopy, ok := flowCopyByType[flowType]
	if !ok {
		return nil, apperrors.ErrUnknownFlowType
	}

	ttl := time.Duration(u.cfg.Onboarding.TokenTTLSeconds) * time.Second
	token, err := u.repo.IssueFlowToken(ctx, phone, flowType, payload, ttl)
	if err != nil {
		return nil, err
	}

	var sendErr error
	if flowID == "" {
		sendErr = fmt.Errorf("%w: no flow ID configured for %s", apperrors.ErrGatewayDeliveryFailed, flowType)
	} else {
		sendErr = u.gw.SendFlowMessage(ctx, &models.FlowMessage{
			To:            phone,
			HeaderText:    msgCopy.header,
			BodyText:      msgCopy.body,
			FooterText:    msgCopy.footer,
			CTAText:       msgCopy.cta,
			FlowID:        flowID,
			FlowToken:     token,
			InitialScreen: msgCopy.screen,
		})
	}

	if sendErr == nil {
		logger.Info("Flow message sent",
			logger.String("flow_type", string(flowType)),
			logger.String("phone_number", phone))
		return &models.FlowSendResult{
			Outcome:   models.OutcomeFlowSent,
			FlowToken: token,
		}, nil
	}

	logger.Warn("Flow delivery failed",
		logger.String("flow_type", string(flowType)),
		logger.String("phone_number", phone),
		logger.Err(sendErr))

	// The minted token can never complete; release it.
	if _, err := u.repo.ConsumeFlowToken(ctx, token); err != nil {
		logger.Warn("Failed to release token after delivery failure",
			logger.String("token", token),
			logger.Err(err))
	}

	if fallbackEnabled {
		return u.startTextRegistration(ctx, phone, domain, sendErr)
	}

	// Best-effort notification; its own failure does not change the result
	if err := u.gw.SendTextMessage(ctx, phone, flowUnavailableText); err != nil {
		logger.Warn("Failed to notify user of flow unavailability",
			logger.String("phone_number", phone),
			logger.Err(err))
	}

	return &models.FlowSendResult{
		Outcome:       models.OutcomeFailed,
		FailureReason: sendErr.Error(),
	}, nil
}

// startTextRegistration opens the plain-text conversational registration
// path in place of the undeliverable flow
func (u *OnboardingUC) startTextRegistration(ctx context.Context, phone, domain string, cause error) (*models.FlowSendResult, error) {
	session := &models.TextRegistrationSession{
		PhoneNumber: phone,
		Domain:      domain,
		Step:        models.TextStepAwaitingFullName,
		Reason:      cause.Error(),
	}

	ttl := time.Duration(u.cfg.Onboarding.TokenTTLSeconds) * time.Second
	if err := u.repo.StoreTextRegistration(ctx, session, ttl); err != nil {
		return &models.FlowSendResult{
			Outcome:       models.OutcomeFailed,
			FailureReason: cause.Error(),
		}, nil
	}

	if err := u.gw.SendTextMessage(ctx, phone, textRegistrationPrompt); err != nil {
		logger.Warn("Failed to send text registration prompt",
			logger.String("phone_number", phone),
			logger.Err(err))
		return &models.FlowSendResult{
			Outcome:       models.OutcomeFailed,
			FailureReason: cause.Error(),
		}, nil
	}

	logger.Info("Started text registration fallback",
		logger.String("phone_number", phone),
		logger.String("domain", domain))

	return &models.FlowSendResult{
		Outcome:       models.OutcomeTextFallback,
		FallbackState: session.Step,
		FailureReason: cause.Error(),
	}, nil
}
