package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// handleTrainerHabitSetup creates a habit plan from a completed habit setup
// flow. The target client was captured in the token payload at send time.
func (u *OnboardingUC) handleTrainerHabitSetup(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	result := models.ValidationResult{Valid: true}
	requireField(&result, payload, "habit_name")

	clientPhone := token.Payload["client_phone"]
	if clientPhone == "" {
		clientPhone = payload.String("client_phone")
	}
	if clientPhone == "" {
		result.AddError("client_phone", "client_phone is required")
	}

	target := 0
	if raw := payload.String("target_per_week"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			result.AddError("target_per_week", "target_per_week must be a positive number")
		} else {
			target = parsed
		}
	}

	if !result.Valid {
		return nil, apperrors.NewValidationError(result)
	}

	habit := &models.Habit{
		TrainerPhone:  token.PhoneNumber,
		ClientPhone:   clientPhone,
		Name:          payload.String("habit_name"),
		Schedule:      strings.Join(payload.StringList("schedule"), ", "),
		TargetPerWeek: target,
	}

	if err := u.repo.CreateHabit(ctx, habit); err != nil {
		return nil, err
	}

	logger.Info("Habit plan created",
		logger.String("habit_id", habit.ID.String()),
		logger.String("trainer_phone", habit.TrainerPhone),
		logger.String("client_phone", habit.ClientPhone))

	return &models.FlowCompletionResult{
		FlowType: models.FlowTrainerHabitSetup,
		RecordID: habit.ID.String(),
		Message:  "Habit plan created",
	}, nil
}

// handleClientHabitLogging records a habit completion entry
func (u *OnboardingUC) handleClientHabitLogging(ctx context.Context, payload models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	habitIDRaw := token.Payload["habit_id"]
	if habitIDRaw == "" {
		habitIDRaw = payload.String("habit_id")
	}

	habitID, err := uuid.Parse(habitIDRaw)
	if err != nil {
		result := models.ValidationResult{Valid: true}
		result.AddError("habit_id", "a valid habit_id is required")
		return nil, apperrors.NewValidationError(result)
	}

	entry := &models.HabitEntry{
		HabitID:     habitID,
		ClientPhone: token.PhoneNumber,
		Note:        payload.String("note"),
	}

	if err := u.repo.CreateHabitEntry(ctx, entry); err != nil {
		return nil, err
	}

	if err := u.gw.PublishHabitLogged(ctx, entry); err != nil {
		logger.Warn("Failed to publish habit logged event",
			logger.String("entry_id", entry.ID.String()),
			logger.Err(err))
	}

	return &models.FlowCompletionResult{
		FlowType: models.FlowClientHabitLogging,
		RecordID: entry.ID.String(),
		Message:  "Habit entry logged",
	}, nil
}

// handleHabitProgress builds a progress summary and sends it back to the
// client over text. The summary send is best-effort; the completion result
// carries the same information.
func (u *OnboardingUC) handleHabitProgress(ctx context.Context, _ models.RawFlowPayload, token *models.FlowToken) (*models.FlowCompletionResult, error) {
	progress, err := u.repo.GetHabitProgress(ctx, token.PhoneNumber)
	if err != nil {
		return nil, err
	}

	summary := formatProgressSummary(progress)
	if err := u.gw.SendTextMessage(ctx, token.PhoneNumber, summary); err != nil {
		logger.Warn("Failed to send progress summary",
			logger.String("phone_number", token.PhoneNumber),
			logger.Err(err))
	}

	return &models.FlowCompletionResult{
		FlowType: models.FlowHabitProgress,
		Message:  summary,
	}, nil
}

func formatProgressSummary(progress []models.HabitProgress) string {
	if len(progress) == 0 {
		return "You have no habit plans yet. Ask your trainer to set one up!"
	}

	var b strings.Builder
	b.WriteString("Your habit progress:\n")
	for _, p := range progress {
		fmt.Fprintf(&b, "- %s: %d entries logged", p.HabitName, p.TotalEntries)
		if p.TargetPerWeek > 0 {
			fmt.Fprintf(&b, " (target %d/week)", p.TargetPerWeek)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
