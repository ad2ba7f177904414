package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		HTTPPort:         "9446",
		JWTSecret:        "dev-only-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}

	envPostgresAddress := os.Getenv("POSTGRES_ADDRESS")
	envPostgresPort := os.Getenv("POSTGRES_PORT")
	envPostgresDB := os.Getenv("POSTGRES_DB")
	envPostgresUsername := os.Getenv("POSTGRES_USERNAME")
	envPostgresPassword := os.Getenv("POSTGRES_PASSWORD")
	envHTTPPort := os.Getenv("HTTP_PORT")
	envJWTSecret := os.Getenv("JWT_SECRET")
	envAccessTTL := os.Getenv("ACCESS_TOKEN_TTL_MINUTES")
	envRefreshTTL := os.Getenv("REFRESH_TOKEN_TTL_HOURS")

	if len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	if len(envHTTPPort) != 0 {
		env.HTTPPort = envHTTPPort
	}

	if len(envJWTSecret) != 0 {
		env.JWTSecret = envJWTSecret
	}

	if len(envAccessTTL) != 0 {
		minutes, err := strconv.Atoi(envAccessTTL)
		if err != nil {
			return nil, err
		}
		env.AccessTokenTTL = time.Duration(minutes) * time.Minute
	}

	if len(envRefreshTTL) != 0 {
		hours, err := strconv.Atoi(envRefreshTTL)
		if err != nil {
			return nil, err
		}
		env.RefreshTokenTTL = time.Duration(hours) * time.Hour
	}

	return &env, nil
}
