package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	CORSOrigins []string

	// Token economy.
	SignupTokens      int
	ReferralApplyCost int
	ResumeReward      int

	ResumeMaxChars       int
	ResumeMaxUploadBytes int64
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTIssuer:   fallback(os.Getenv("JWT_ISSUER"), "skillbit-api"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
	}

	cfg.JWTTTL = time.Duration(positiveInt("JWT_TTL_MINUTES", 60)) * time.Minute
	cfg.SignupTokens = nonNegativeInt("SIGNUP_TOKENS", 50)
	cfg.ReferralApplyCost = nonNegativeInt("REFERRAL_APPLY_COST", 6)
	cfg.ResumeReward = nonNegativeInt("RESUME_REWARD", 20)
	cfg.ResumeMaxChars = positiveInt("RESUME_MAX_CHARS", 5000)
	cfg.ResumeMaxUploadBytes = int64(positiveInt("RESUME_MAX_UPLOAD_MB", 10)) << 20

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}

// Defaults returns a configuration with every tunable at its default value and no database.
func Defaults() Config {
	return Config{
		Port:                 "8080",
		JWTIssuer:            "skillbit-api",
		JWTTTL:               60 * time.Minute,
		CORSOrigins:          []string{"*"},
		SignupTokens:         50,
		ReferralApplyCost:    6,
		ResumeReward:         20,
		ResumeMaxChars:       5000,
		ResumeMaxUploadBytes: 10 << 20,
	}
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// TokensEnabled reports whether login should issue a signed session token.
func (c Config) TokensEnabled() bool {
	return c.JWTSecret != ""
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(key string, def int) int {
	if n, err := strconv.Atoi(fallback(os.Getenv(key), "")); err == nil && n > 0 {
		return n
	}
	return def
}

func nonNegativeInt(key string, def int) int {
	if n, err := strconv.Atoi(fallback(os.Getenv(key), "")); err == nil && n >= 0 {
		return n
	}
	return def
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
