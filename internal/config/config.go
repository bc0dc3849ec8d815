package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LeadStore selects the backend: "xlsx" (default) or "sqlite".
	LeadStore string
	LeadFile  string
	SQLiteDSN string
	UserFile  string

	MailHost   string
	MailPort   int
	MailUser   string
	MailPass   string
	MailDomain string

	AllowedOrigins []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		GetLogger().Info("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:       os.Getenv("PORT"),
		LeadStore:  os.Getenv("LEAD_STORE"),
		LeadFile:   os.Getenv("LEAD_FILE"),
		SQLiteDSN:  os.Getenv("SQLITE_DSN"),
		UserFile:   os.Getenv("USER_FILE"),
		MailHost:   os.Getenv("MAIL_HOST"),
		MailUser:   os.Getenv("MAIL_USER"),
		MailPass:   os.Getenv("MAIL_PASS"),
		MailDomain: os.Getenv("MAIL_DOMAIN"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.LeadStore == "" {
		cfg.LeadStore = "xlsx"
	}
	if cfg.LeadFile == "" {
		cfg.LeadFile = "Database.xlsx"
	}
	if cfg.SQLiteDSN == "" {
		cfg.SQLiteDSN = "file:leads.db"
	}
	if cfg.UserFile == "" {
		cfg.UserFile = "users.json"
	}

	cfg.MailPort = 587
	if p := os.Getenv("MAIL_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.MailPort = port
		}
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = []string{origins}
	} else {
		cfg.AllowedOrigins = []string{"*"}
	}

	return cfg
}
