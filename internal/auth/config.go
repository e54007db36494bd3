package auth

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds the process-wide token configuration. It is read once at
// startup and injected into the token service; rotating the secret
// invalidates every previously issued token.
type Config struct {
	JWTSecret       string `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes" json:"token_ttl_minutes"`
}

// DefaultTokenTTLMinutes is the token lifetime used when none is configured.
const DefaultTokenTTLMinutes = 240

// LoadConfig loads and validates token configuration from an optional YAML
// file with environment variable overrides.
func LoadConfig(configPath string) (*Config, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	v.SetDefault("token_ttl_minutes", DefaultTokenTTLMinutes)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else if os.IsNotExist(err) {
			// Explicit path that does not exist, same treatment
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %w", err)
		}
		config.TokenTTLMinutes = minutes
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the token configuration
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}

	return nil
}
