package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Remote    RemoteConfig
	Printing  PrintingConfig
	Session   SessionConfig
	Journal   JournalConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// RemoteConfig points the terminal at the billing backend.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PrintingConfig describes the artifact folder and the helper process.
// Candidates are tried in order until one starts.
type PrintingConfig struct {
	Enabled    bool
	Dir        string
	JSONFile   string
	PDFFile    string
	LogoFile   string
	Candidates []string
	Timeout    time.Duration
}

type SessionConfig struct {
	DataDir           string
	DefaultLocationID int64
}

type JournalConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "pos-terminal")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "7070")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("REMOTE_BASE_URL", "http://localhost:8080/api")
	viper.SetDefault("REMOTE_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PRINTING_ENABLED", true)
	viper.SetDefault("PRINTING_DIR", "./printing")
	viper.SetDefault("PRINTING_JSON_FILE", "last_bill.json")
	viper.SetDefault("PRINTING_PDF_FILE", "last_python_bill.pdf")
	viper.SetDefault("PRINTING_LOGO_FILE", "logo.png")
	viper.SetDefault("PRINTING_CANDIDATES", []string{"print.exe", "print"})
	viper.SetDefault("PRINTING_TIMEOUT_SECONDS", 120)
	viper.SetDefault("SESSION_DATA_DIR", "./data")
	viper.SetDefault("SESSION_DEFAULT_LOCATION_ID", 1)
	viper.SetDefault("JOURNAL_PATH", "./data/journal.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Remote: RemoteConfig{
			BaseURL: viper.GetString("REMOTE_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("REMOTE_TIMEOUT_SECONDS")) * time.Second,
		},
		Printing: PrintingConfig{
			Enabled:    viper.GetBool("PRINTING_ENABLED"),
			Dir:        viper.GetString("PRINTING_DIR"),
			JSONFile:   viper.GetString("PRINTING_JSON_FILE"),
			PDFFile:    viper.GetString("PRINTING_PDF_FILE"),
			LogoFile:   viper.GetString("PRINTING_LOGO_FILE"),
			Candidates: viper.GetStringSlice("PRINTING_CANDIDATES"),
			Timeout:    time.Duration(viper.GetInt("PRINTING_TIMEOUT_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			DataDir:           viper.GetString("SESSION_DATA_DIR"),
			DefaultLocationID: viper.GetInt64("SESSION_DEFAULT_LOCATION_ID"),
		},
		Journal: JournalConfig{
			Path: viper.GetString("JOURNAL_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
}
