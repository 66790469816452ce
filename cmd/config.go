package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string
	LogLevel string
	HTTPPort string

	GeminiAPIKey string
	GeminiModel  string

	EstimateTimeout         time.Duration
	EstimateMaxRetries      uint64
	EstimateDefaultDistance string
	QuoteTTL                time.Duration
	QuoteExpirySchedule     string

	VerificationDelay   time.Duration
	VerificationTimeout time.Duration

	DemoUserID   string
	SeedDemoData bool
}

var defaults = map[string]any{
	"APP_ENV":                   "development",
	"LOG_LEVEL":                 "info",
	"HTTP_PORT":                 "8080",
	"GEMINI_API_KEY":            "",
	"GEMINI_MODEL":              "gemini-1.5-flash",
	"ESTIMATE_TIMEOUT":          "10s",
	"ESTIMATE_MAX_RETRIES":      2,
	"ESTIMATE_DEFAULT_DISTANCE": "5.2km",
	"QUOTE_TTL":                 "15m",
	"QUOTE_EXPIRY_SCHEDULE":     "0 * * * * *",
	"VERIFICATION_DELAY":        "2s",
	"VERIFICATION_TIMEOUT":      "30s",
	"DEMO_USER_ID":              "u1",
	"SEED_DEMO_DATA":            true,
}

// LoadConfig reads envFile when it exists, then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := Config{
		AppEnv:                  v.GetString("APP_ENV"),
		LogLevel:                v.GetString("LOG_LEVEL"),
		HTTPPort:                v.GetString("HTTP_PORT"),
		GeminiAPIKey:            v.GetString("GEMINI_API_KEY"),
		GeminiModel:             v.GetString("GEMINI_MODEL"),
		EstimateTimeout:         v.GetDuration("ESTIMATE_TIMEOUT"),
		EstimateMaxRetries:      v.GetUint64("ESTIMATE_MAX_RETRIES"),
		EstimateDefaultDistance: v.GetString("ESTIMATE_DEFAULT_DISTANCE"),
		QuoteTTL:                v.GetDuration("QUOTE_TTL"),
		QuoteExpirySchedule:     v.GetString("QUOTE_EXPIRY_SCHEDULE"),
		VerificationDelay:       v.GetDuration("VERIFICATION_DELAY"),
		VerificationTimeout:     v.GetDuration("VERIFICATION_TIMEOUT"),
		DemoUserID:              strings.TrimSpace(v.GetString("DEMO_USER_ID")),
		SeedDemoData:            v.GetBool("SEED_DEMO_DATA"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.HTTPPort == "" {
		errs = append(errs, errors.New("HTTP_PORT is required"))
	}
	if c.EstimateTimeout <= 0 {
		errs = append(errs, errors.New("ESTIMATE_TIMEOUT must be a positive duration"))
	}
	if c.QuoteTTL <= 0 {
		errs = append(errs, errors.New("QUOTE_TTL must be a positive duration"))
	}
	if c.VerificationDelay < 0 {
		errs = append(errs, errors.New("VERIFICATION_DELAY must not be negative"))
	}
	if c.VerificationTimeout <= 0 {
		errs = append(errs, errors.New("VERIFICATION_TIMEOUT must be a positive duration"))
	}
	if c.DemoUserID == "" {
		errs = append(errs, errors.New("DEMO_USER_ID is required"))
	}
	return errors.Join(errs...)
}
