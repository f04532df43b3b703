package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Persisted booking state (whole-file JSON document).
	DataFile   string `mapstructure:"DATA_FILE"`
	InvoiceDir string `mapstructure:"INVOICE_DIR"`

	// Analytics database (SQLite file; ":memory:" for ephemeral runs).
	AnalyticsDB string `mapstructure:"ANALYTICS_DB"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// LLM backends.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`

	// Request extraction strategy: "heuristic" or "gemini".
	Extractor string `mapstructure:"EXTRACTOR"`

	// Outbound mail (SMTP).
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	FromEmail    string `mapstructure:"FROM_EMAIL"`

	// Inbound mail (IMAP). Leave IMAP_ADDR empty to disable the inbox poller.
	IMAPAddr     string `mapstructure:"IMAP_ADDR"`
	IMAPUsername string `mapstructure:"IMAP_USERNAME"`
	IMAPPassword string `mapstructure:"IMAP_PASSWORD"`

	// Inbox poll interval, e.g. "5m".
	PollInterval string `mapstructure:"POLL_INTERVAL"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DATA_FILE", "events_database.json")
	viper.SetDefault("INVOICE_DIR", "generated_invoices")
	viper.SetDefault("ANALYTICS_DB", "purchases.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 1)
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("EXTRACTOR", "heuristic")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("IMAP_ADDR", "")
	viper.SetDefault("POLL_INTERVAL", "5m")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
