package models

// Config holds all configuration for the application
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	WhatsApp   WhatsAppConfig
	Onboarding OnboardingConfig
	NewRelic   NewRelicConfig
	Logger     LoggerConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name        string `json:"name" mapstructure:"name"`
	Environment string `json:"environment" mapstructure:"environment"`
	Debug       bool   `json:"debug" mapstructure:"debug"`
	Version     string `json:"version" mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string `json:"host" mapstructure:"host"`
	Port            int    `json:"port" mapstructure:"port"`
	ReadTimeout     int    `json:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout    int    `json:"write_timeout" mapstructure:"write_timeout"`
	ShutdownTimeout int    `json:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host      string `json:"host" mapstructure:"host"`
	Port      int    `json:"port" mapstructure:"port"`
	Username  string `json:"username" mapstructure:"username"`
	Password  string `json:"password" mapstructure:"password"`
	Database  string `json:"database" mapstructure:"database"`
	SSLMode   string `json:"ssl_mode" mapstructure:"ssl_mode"`
	MaxConns  int    `json:"max_conns" mapstructure:"max_conns"`
	IdleConns int    `json:"idle_conns" mapstructure:"idle_conns"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	Password string `json:"password" mapstructure:"password"`
	DB       int    `json:"db" mapstructure:"db"`
	PoolSize int    `json:"pool_size" mapstructure:"pool_size"`
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string `json:"url" mapstructure:"url"`
}

// WhatsAppConfig holds WhatsApp Business Platform configuration
type WhatsAppConfig struct {
	BaseURL       string `json:"base_url" mapstructure:"base_url"`
	APIVersion    string `json:"api_version" mapstructure:"api_version"`
	PhoneNumberID string `json:"phone_number_id" mapstructure:"phone_number_id"`
	AccessToken   string `json:"access_token" mapstructure:"access_token"`
	AppSecret     string `json:"app_secret" mapstructure:"app_secret"`
	VerifyToken   string `json:"verify_token" mapstructure:"verify_token"`

	// Published flow IDs, one per flow screen bundle
	TrainerOnboardingFlowID string `json:"trainer_onboarding_flow_id" mapstructure:"trainer_onboarding_flow_id"`
	ClientOnboardingFlowID  string `json:"client_onboarding_flow_id" mapstructure:"client_onboarding_flow_id"`
	HabitSetupFlowID        string `json:"habit_setup_flow_id" mapstructure:"habit_setup_flow_id"`
	HabitLoggingFlowID      string `json:"habit_logging_flow_id" mapstructure:"habit_logging_flow_id"`
	HabitProgressFlowID     string `json:"habit_progress_flow_id" mapstructure:"habit_progress_flow_id"`
	ProfileEditFlowID       string `json:"profile_edit_flow_id" mapstructure:"profile_edit_flow_id"`
}

// OnboardingConfig holds the tunable onboarding policy knobs
type OnboardingConfig struct {
	// PricingFloor is the minimum accepted per-session rate in Rand
	PricingFloor float64 `json:"pricing_floor" mapstructure:"pricing_floor"`
	// TokenTTLSeconds bounds the lifetime of a flow correlation token
	TokenTTLSeconds int `json:"token_ttl_seconds" mapstructure:"token_ttl_seconds"`
	// Per-domain policy on gateway delivery failure
	TrainerFallbackEnabled bool `json:"trainer_fallback_enabled" mapstructure:"trainer_fallback_enabled"`
	ClientFallbackEnabled  bool `json:"client_fallback_enabled" mapstructure:"client_fallback_enabled"`
	// LabelConfigPath optionally overrides the built-in label dictionaries
	LabelConfigPath string `json:"label_config_path" mapstructure:"label_config_path"`
}

// NewRelicConfig holds New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string `json:"license_key" mapstructure:"license_key"`
	AppName     string `json:"app_name" mapstructure:"app_name"`
	Enabled     bool   `json:"enabled" mapstructure:"enabled"`
	ForwardLogs bool   `json:"forward_logs" mapstructure:"forward_logs"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level    string `json:"level" mapstructure:"level"`
	FilePath string `json:"file_path" mapstructure:"file_path"`
}

// FlowLabelConfig maps raw flow-screen option IDs to canonical display labels.
// Loaded once at startup and passed explicitly to the payload normalizer.
type FlowLabelConfig struct {
	Specializations map[string]string `json:"specializations"`
	ServicesOffered map[string]string `json:"services_offered"`
	PricingOptions  map[string]string `json:"pricing_options"`
	FitnessGoals    map[string]string `json:"fitness_goals"`
	ActivityLevels  map[string]string `json:"activity_levels"`
}
