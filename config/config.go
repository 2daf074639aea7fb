package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type ServerConfig struct {
	Port           int
	GinMode        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	User string
	Pass string
	Host string
	Name string
	TLS  bool
}

// DSN builds the go-sql-driver connection string. parseTime is required so
// created_at columns scan into time.Time.
func (dc *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?tls=%v&parseTime=true",
		dc.User, dc.Pass, dc.Host, dc.Name, dc.TLS)
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Config struct {
	Server   *ServerConfig
	Database *DatabaseConfig
	Auth     *AuthConfig
}

// Load reads configuration from the environment, with an optional .env file.
// A missing .env is fine; missing required variables are not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	server := &ServerConfig{
		Port:    8080,
		GinMode: os.Getenv("GIN_MODE"),
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.Wrap(err, "parsing PORT")
		}
		server.Port = port
	}
	if origins := os.Getenv("FE_ORIGINS"); origins != "" {
		server.AllowedOrigins = strings.Split(origins, ";")
	}

	database := &DatabaseConfig{
		User: os.Getenv("DB_USER"),
		Pass: os.Getenv("DB_PASS"),
		Host: os.Getenv("DB_HOST"),
		Name: os.Getenv("DB_NAME"),
		TLS:  os.Getenv("DB_TLS") == "true",
	}
	if database.Name == "" {
		database.Name = "senopost"
	}
	if database.User == "" || database.Host == "" {
		return nil, errors.New("DB_USER and DB_HOST must be set")
	}

	auth := &AuthConfig{
		JWTSecret: os.Getenv("JWT_SECRET"),
		TokenTTL:  24 * time.Hour,
	}
	if auth.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	if ttlStr := os.Getenv("TOKEN_TTL_HOURS"); ttlStr != "" {
		hours, err := strconv.Atoi(ttlStr)
		if err != nil {
			return nil, errors.Wrap(err, "parsing TOKEN_TTL_HOURS")
		}
		auth.TokenTTL = time.Duration(hours) * time.Hour
	}

	return &Config{
		Server:   server,
		Database: database,
		Auth:     auth,
	}, nil
}
