package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/constants"
	"github.com/fitlink/fitlink/internal/pkg/logger"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// IssueFlowToken generates a high-entropy flow token and durably stores its
// record with a TTL. UUIDv4 tokens make collisions and guessing infeasible;
// two sessions can never silently merge.
func (r *OnboardingRepo) IssueFlowToken(ctx context.Context, phoneNumber string, flowType models.FlowType, payload map[string]string, ttl time.Duration) (string, error) {
	now := time.Now()
	record := models.FlowToken{
		Token:       uuid.New().String(),
		PhoneNumber: phoneNumber,
		FlowType:    flowType,
		Payload:     payload,
		CreatedAt:   now,
		ExpiresAt:   now.Add(ttl),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal flow token: %w", err)
	}

	key := fmt.Sprintf(constants.KeyFlowToken, record.Token)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return "", fmt.Errorf("%w: failed to store flow token: %v", apperrors.ErrStorageUnavailable, err)
	}

	return record.Token, nil
}

// ResolveFlowToken returns the token record only while it is live. A missing
// row and an expired-but-present row both resolve to ErrInvalidOrExpiredToken;
// storage failures surface distinctly so callers can tell "not found" from
// "could not check". Resolve never mutates state.
func (r *OnboardingRepo) ResolveFlowToken(ctx context.Context, token string) (*models.FlowToken, error) {
	key := fmt.Sprintf(constants.KeyFlowToken, token)

	data, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrInvalidOrExpiredToken
		}
		return nil, fmt.Errorf("%w: failed to read flow token: %v", apperrors.ErrStorageUnavailable, err)
	}

	var record models.FlowToken
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("%w: corrupt flow token record: %v", apperrors.ErrStorageUnavailable, err)
	}

	// The Redis TTL already evicts stale rows; the explicit check guards a
	// row that physically survived past its lifetime.
	if record.Expired(time.Now()) {
		logger.Debug("Flow token past expiry at read time",
			logger.String("token", token))
		return nil, apperrors.ErrInvalidOrExpiredToken
	}

	return &record, nil
}

// ConsumeFlowToken deletes the token record, returning whether it still
// existed. The DEL is atomic, so two near-simultaneous completions of the
// same token see exactly one true. Safe to call repeatedly.
func (r *OnboardingRepo) ConsumeFlowToken(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf(constants.KeyFlowToken, token)

	existed, err := r.redisClient.Delete(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%w: failed to consume flow token: %v", apperrors.ErrStorageUnavailable, err)
	}

	return existed, nil
}

// StoreTextRegistration persists the conversational state of a text-based
// registration fallback for the duration of the conversation window.
func (r *OnboardingRepo) StoreTextRegistration(ctx context.Context, session *models.TextRegistrationSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal registration session: %w", err)
	}

	key := fmt.Sprintf(constants.KeyTextRegistration, session.PhoneNumber)
	if err := r.redisClient.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("%w: failed to store registration session: %v", apperrors.ErrStorageUnavailable, err)
	}

	return nil
}
