package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/fitlink/fitlink/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "fitlink-api")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// WhatsApp config
	configs.WhatsApp.BaseURL = GetEnv("WHATSAPP_BASE_URL", "https://graph.facebook.com")
	configs.WhatsApp.APIVersion = GetEnv("WHATSAPP_API_VERSION", "v21.0")
	configs.WhatsApp.PhoneNumberID = GetEnv("WHATSAPP_PHONE_NUMBER_ID", "")
	configs.WhatsApp.AccessToken = GetEnv("WHATSAPP_ACCESS_TOKEN", "")
	configs.WhatsApp.AppSecret = GetEnv("WHATSAPP_APP_SECRET", "")
	configs.WhatsApp.VerifyToken = GetEnv("WHATSAPP_VERIFY_TOKEN", "")
	configs.WhatsApp.TrainerOnboardingFlowID = GetEnv("WHATSAPP_TRAINER_ONBOARDING_FLOW_ID", "")
	configs.WhatsApp.ClientOnboardingFlowID = GetEnv("WHATSAPP_CLIENT_ONBOARDING_FLOW_ID", "")
	configs.WhatsApp.HabitSetupFlowID = GetEnv("WHATSAPP_HABIT_SETUP_FLOW_ID", "")
	configs.WhatsApp.HabitLoggingFlowID = GetEnv("WHATSAPP_HABIT_LOGGING_FLOW_ID", "")
	configs.WhatsApp.HabitProgressFlowID = GetEnv("WHATSAPP_HABIT_PROGRESS_FLOW_ID", "")
	configs.WhatsApp.ProfileEditFlowID = GetEnv("WHATSAPP_PROFILE_EDIT_FLOW_ID", "")

	// Onboarding config
	configs.Onboarding.PricingFloor = GetEnvAsFloat("ONBOARDING_PRICING_FLOOR", 100.0)
	configs.Onboarding.TokenTTLSeconds = GetEnvAsInt("ONBOARDING_TOKEN_TTL_SECONDS", 600)
	configs.Onboarding.TrainerFallbackEnabled = GetEnvAsBool("ONBOARDING_TRAINER_FALLBACK_ENABLED", false)
	configs.Onboarding.ClientFallbackEnabled = GetEnvAsBool("ONBOARDING_CLIENT_FALLBACK_ENABLED", true)
	configs.Onboarding.LabelConfigPath = GetEnv("ONBOARDING_LABEL_CONFIG_PATH", "")

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
