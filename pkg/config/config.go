package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"go.uber.org/zap"
)

var ErrInsecureJwtConfig = errors.New("insecure jwt configuration")

func ReadConfig() *Config {
	serverPort := os.Getenv(ServerPort)
	if serverPort == "" {
		serverPort = ServerPortDefault
		fmt.Println("server port environment variable is empty its declared 8080 by default")
	}

	return &Config{
		ServerPort:  serverPort,
		IsAtRemote:  os.Getenv(IsAtRemote) != "",
		Environment: os.Getenv(Environment),
		Jwt:         ReadJwtConfig(),

		TokenIssuerApiKey: os.Getenv(TokenIssuerApiKey),
	}
}

// Print writes the config to stdout with the jwt secrets and the issuer api
// key masked.
func (c *Config) Print() {
	printable := *c
	printable.Jwt.AccessTokenSecret = maskedSecret
	printable.Jwt.RefreshTokenSecret = maskedSecret
	if printable.TokenIssuerApiKey != "" {
		printable.TokenIssuerApiKey = maskedSecret
	}
	_, _ = pretty.Println(printable)
}

// ReadJwtConfig reads the current environment on every call. Unset or empty
// variables fall back to their defaults.
func ReadJwtConfig() JwtConfig {
	return JwtConfig{
		AccessTokenSecret:  getEnv(JwtAccessSecret, JwtAccessSecretDefault),
		RefreshTokenSecret: getEnv(JwtRefreshSecret, JwtRefreshSecretDefault),
		AccessTokenExpiry:  getEnv(JwtAccessExpiry, JwtAccessExpiryDefault),
		RefreshTokenExpiry: getEnv(JwtRefreshExpiry, JwtRefreshExpiryDefault),
		Issuer:             getEnv(JwtIssuer, JwtIssuerDefault),
	}
}

// ValidateJwtConfig is meant to run once at startup. Missing secrets only
// produce a warning, except in production where missing or default secrets
// are reported as ErrInsecureJwtConfig.
func ValidateJwtConfig(log *zap.SugaredLogger) error {
	var missingVariables []string
	for _, key := range []string{JwtAccessSecret, JwtRefreshSecret} {
		if os.Getenv(key) == "" {
			missingVariables = append(missingVariables, key)
		}
	}

	if len(missingVariables) > 0 {
		log.Warnw(
			"missing jwt environment variables, default values are not secure for production",
			zap.Strings("variables", missingVariables),
		)
	}

	if os.Getenv(Environment) != EnvironmentProduction {
		return nil
	}

	if len(missingVariables) > 0 {
		return fmt.Errorf(
			"%w: %s must be set in production",
			ErrInsecureJwtConfig,
			strings.Join(missingVariables, ", "),
		)
	}

	jwtConfig := ReadJwtConfig()
	if jwtConfig.AccessTokenSecret == JwtAccessSecretDefault ||
		jwtConfig.RefreshTokenSecret == JwtRefreshSecretDefault {
		return fmt.Errorf("%w: default jwt secrets cannot be used in production", ErrInsecureJwtConfig)
	}

	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}
