package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DatabaseDSN builds the postgres DSN from the environment.
func DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "newsroom"),
	)
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SMTP() SMTPConfig {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return SMTPConfig{
		Host:     getEnv("SMTP_HOST", "localhost"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getEnv("SMTP_FROM", "no-reply@newsroom.local"),
	}
}

type SocialConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	// TokenFile holds the access token persisted by the one-time
	// OAuth handshake.
	TokenFile string
}

func Social() SocialConfig {
	return SocialConfig{
		ConsumerKey:    os.Getenv("SOCIAL_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("SOCIAL_CONSUMER_SECRET"),
		TokenFile:      getEnv("SOCIAL_TOKEN_FILE", "twitter_token.json"),
	}
}
