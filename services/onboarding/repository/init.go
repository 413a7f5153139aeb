package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/fitlink/fitlink/internal/pkg/database"
	"github.com/fitlink/fitlink/internal/pkg/models"
)

// OnboardingRepo implements the onboarding repository interface
type OnboardingRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewOnboardingRepo creates a new onboarding repository instance
func NewOnboardingRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *OnboardingRepo {
	return &OnboardingRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
