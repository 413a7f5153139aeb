package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlink/fitlink/internal/pkg/apperrors"
	"github.com/fitlink/fitlink/internal/pkg/constants"
	"github.com/fitlink/fitlink/internal/pkg/database"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupTokenRepoTest(t *testing.T) (*OnboardingRepo, *miniredis.Miniredis) {
	mr, client := setupMiniredis(t)

	repo := &OnboardingRepo{
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mr
}

func TestIssueFlowToken(t *testing.T) {
	// Setup
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	payload := map[string]string{"client_phone": "+27731234567"}

	// Execute
	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowTrainerHabitSetup, payload, 10*time.Minute)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	key := fmt.Sprintf(constants.KeyFlowToken, token)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var record models.FlowToken
	err = json.Unmarshal([]byte(val), &record)
	assert.NoError(t, err)
	assert.Equal(t, token, record.Token)
	assert.Equal(t, "+27821234567", record.PhoneNumber)
	assert.Equal(t, models.FlowTrainerHabitSetup, record.FlowType)
	assert.Equal(t, payload, record.Payload)

	ttl := mr.TTL(key)
	assert.True(t, ttl > 0)
}

func TestIssueFlowToken_TokensAreUnique(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	first, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowTrainerOnboarding, nil, time.Minute)
	require.NoError(t, err)
	second, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowTrainerOnboarding, nil, time.Minute)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestIssueFlowToken_RedisError(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)

	// Force Redis to fail by closing the connection
	mr.Close()

	_, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowTrainerOnboarding, nil, time.Minute)

	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestResolveFlowToken(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowClientOnboarding, nil, 10*time.Minute)
	require.NoError(t, err)

	record, err := repo.ResolveFlowToken(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, token, record.Token)
	assert.Equal(t, "+27821234567", record.PhoneNumber)
	assert.Equal(t, models.FlowClientOnboarding, record.FlowType)
}

func TestResolveFlowToken_DoesNotConsume(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowClientOnboarding, nil, 10*time.Minute)
	require.NoError(t, err)

	// Resolving twice must return the same live record both times
	_, err = repo.ResolveFlowToken(context.Background(), token)
	require.NoError(t, err)
	record, err := repo.ResolveFlowToken(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, token, record.Token)
}

func TestResolveFlowToken_Unknown(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	_, err := repo.ResolveFlowToken(context.Background(), "e4b6f1cb-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
}

func TestResolveFlowToken_Expired(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowClientOnboarding, nil, time.Minute)
	require.NoError(t, err)

	// Advance past the TTL so Redis evicts the row
	mr.FastForward(2 * time.Minute)

	_, err = repo.ResolveFlowToken(context.Background(), token)

	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
}

func TestResolveFlowToken_RedisError(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	mr.Close()

	_, err := repo.ResolveFlowToken(context.Background(), "any-token")

	// Storage failure must stay distinct from "not found"
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
}

func TestConsumeFlowToken(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowClientOnboarding, nil, 10*time.Minute)
	require.NoError(t, err)

	existed, err := repo.ConsumeFlowToken(context.Background(), token)

	assert.NoError(t, err)
	assert.True(t, existed)

	// The record is gone afterwards
	_, err = repo.ResolveFlowToken(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpiredToken)
}

func TestConsumeFlowToken_SecondConsumeReportsMissing(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	token, err := repo.IssueFlowToken(context.Background(), "+27821234567", models.FlowClientOnboarding, nil, 10*time.Minute)
	require.NoError(t, err)

	existed, err := repo.ConsumeFlowToken(context.Background(), token)
	require.NoError(t, err)
	require.True(t, existed)

	existed, err = repo.ConsumeFlowToken(context.Background(), token)

	assert.NoError(t, err)
	assert.False(t, existed)
}

func TestStoreTextRegistration(t *testing.T) {
	repo, mr := setupTokenRepoTest(t)
	defer mr.Close()

	session := &models.TextRegistrationSession{
		PhoneNumber: "+27731234567",
		Domain:      "client",
		Step:        models.TextStepAwaitingFullName,
		Reason:      "gateway delivery failed",
	}

	err := repo.StoreTextRegistration(context.Background(), session, 10*time.Minute)

	assert.NoError(t, err)

	key := fmt.Sprintf(constants.KeyTextRegistration, session.PhoneNumber)
	val, err := mr.Get(key)
	assert.NoError(t, err)

	var stored models.TextRegistrationSession
	err = json.Unmarshal([]byte(val), &stored)
	assert.NoError(t, err)
	assert.Equal(t, models.TextStepAwaitingFullName, stored.Step)
	assert.Equal(t, "client", stored.Domain)
}
