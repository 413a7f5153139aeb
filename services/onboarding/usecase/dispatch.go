package usecase

import (
	"context"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// HandleFlowCompletion is the entry point for a flow-completion callback:
// resolve the token, dispatch to the handler recorded for its flow type, and
// consume the token only after the handler succeeds. A failed handler leaves
// the token live so the user can resubmit the same session instead of
// restarting the whole form.
func (u *OnboardingUC) HandleFlowCompletion(ctx context.Context, payload models.RawFlowPayload) (*models.FlowCompletionResult, error) {
	token := payload.String("flow_token")
	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	record, err := u.repo.ResolveFlowToken(ctx, token)
	if err != nil {
		return nil, err
	}

	handler, ok := u.handlers[record.FlowType]
	if !ok {
		// A token with an unrecognized flow type means a stale client or a
		// corrupted record; surface it, never swallow it.
		logger.Error("No handler registered for flow type",
			logger.String("flow_type", string(record.FlowType)),
			logger.String("phone_number", record.PhoneNumber))
		return nil, apperrors.ErrUnknownFlowType
	}

	result, err := handler(ctx, payload, record)
	if err != nil {
		return nil, err
	}

	consumed, err := u.repo.ConsumeFlowToken(ctx, token)
	if err != nil {
		// The domain work is already committed; a failed delete only risks a
		// replay, which the duplicate guard at the store closes.
		logger.Warn("Failed to consume flow token after successful completion",
			logger.String("token", token),
			logger.Err(err))
	} else if !consumed {
		logger.Warn("Flow token was already consumed",
			logger.String("token", token))
	}

	return result, nil
}
