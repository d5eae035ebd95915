package config

import (
	"fmt"
	"os"
	"strconv"
)

// JWTConfig holds configuration for JWT token signing and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a JWT configuration from the environment. JWT_SECRET
// is required; JWT_EXPIRATION_HOURS defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	hoursStr := os.Getenv("JWT_EXPIRATION_HOURS")
	if hoursStr == "" {
		hoursStr = "24"
	}
	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %s", hoursStr)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
