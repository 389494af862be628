package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	Books     IntegrationConfig
	PeopleHub IntegrationConfig
	Sync      SyncConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// IntegrationConfig holds OAuth2 credentials for an external platform.
type IntegrationConfig struct {
	ClientID       string
	ClientSecret   string
	RedirectURL    string
	AuthURL        string
	TokenURL       string
	APIDomain      string
	OrganizationID string
}

// SyncConfig controls the periodic integration sync jobs.
type SyncConfig struct {
	Enabled  bool
	Interval time.Duration
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "margindesk"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Accounting (books) integration
	config.Books = IntegrationConfig{
		ClientID:     getEnv("BOOKS_CLIENT_ID", ""),
		ClientSecret: getEnv("BOOKS_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("BOOKS_REDIRECT_URL", ""),
		AuthURL:      getEnv("BOOKS_AUTH_URL", "https://accounts.zoho.com/oauth/v2/auth"),
		TokenURL:     getEnv("BOOKS_TOKEN_URL", "https://accounts.zoho.com/oauth/v2/token"),
		APIDomain:    getEnv("BOOKS_API_DOMAIN", "https://www.zohoapis.com"),
	}
	config.Books.OrganizationID = getEnv("BOOKS_ORGANIZATION_ID", "")

	// HR (peoplehub) integration
	config.PeopleHub = IntegrationConfig{
		ClientID:     getEnv("PEOPLEHUB_CLIENT_ID", ""),
		ClientSecret: getEnv("PEOPLEHUB_CLIENT_SECRET", ""),
		RedirectURL:  getEnv("PEOPLEHUB_REDIRECT_URL", ""),
		AuthURL:      getEnv("PEOPLEHUB_AUTH_URL", "https://accounts.zoho.com/oauth/v2/auth"),
		TokenURL:     getEnv("PEOPLEHUB_TOKEN_URL", "https://accounts.zoho.com/oauth/v2/token"),
		APIDomain:    getEnv("PEOPLEHUB_API_DOMAIN", "https://people.zoho.com"),
	}

	syncInterval, err := time.ParseDuration(getEnv("SYNC_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_INTERVAL: %w", err)
	}
	config.Sync = SyncConfig{
		Enabled:  getEnv("SYNC_ENABLED", "true") == "true",
		Interval: syncInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
