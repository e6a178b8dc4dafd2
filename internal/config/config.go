package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Providers  ProvidersConfig  `mapstructure:"providers"`
	Generation GenerationConfig `mapstructure:"generation"`
	Cleanup    CleanupConfig    `mapstructure:"cleanup"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

type DatabaseConfig struct {
	Driver       string `mapstructure:"driver"` // sqlite or postgres
	Path         string `mapstructure:"path"`   // sqlite file path
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	AutoMigrate  bool   `mapstructure:"auto_migrate"`
}

// DSN builds the postgres connection string. Only meaningful when Driver
// is postgres.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// ProviderConfig holds credentials for one LLM backend. An empty APIKey
// disables the backend.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

type ProvidersConfig struct {
	Gemini ProviderConfig `mapstructure:"gemini"`
	OpenAI ProviderConfig `mapstructure:"openai"`
	Grok   ProviderConfig `mapstructure:"grok"`
}

type GenerationConfig struct {
	DefaultModel   string  `mapstructure:"default_model"`
	Temperature    float64 `mapstructure:"temperature"`
	Intensity      int     `mapstructure:"intensity"`
	MaxBatchSize   int     `mapstructure:"max_batch_size"`
	SampleKeywords int     `mapstructure:"sample_keywords"`
}

type CleanupConfig struct {
	Secret        string `mapstructure:"secret"`
	RetentionDays int    `mapstructure:"retention_days"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	// Set config file path
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/captionforge.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "captionforge")
	v.SetDefault("database.name", "captionforge")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("providers.gemini.base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("providers.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("providers.grok.base_url", "https://api.x.ai/v1")
	v.SetDefault("generation.default_model", "gemini-3-flash-preview")
	v.SetDefault("generation.temperature", 0.9)
	v.SetDefault("generation.intensity", 3)
	v.SetDefault("generation.max_batch_size", 20)
	v.SetDefault("generation.sample_keywords", 3)
	v.SetDefault("cleanup.retention_days", 7)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables explicitly for sensitive data
	v.BindEnv("database.driver", "DB_DRIVER")
	v.BindEnv("database.path", "DB_PATH")
	v.BindEnv("database.host", "DB_HOST")
	v.BindEnv("database.port", "DB_PORT")
	v.BindEnv("database.user", "DB_USER")
	v.BindEnv("database.password", "DB_PASSWORD")
	v.BindEnv("database.name", "DB_NAME")
	v.BindEnv("providers.gemini.api_key", "GEMINI_API_KEY")
	v.BindEnv("providers.gemini.base_url", "GEMINI_BASE_URL")
	v.BindEnv("providers.openai.api_key", "OPENAI_API_KEY")
	v.BindEnv("providers.openai.base_url", "OPENAI_BASE_URL")
	v.BindEnv("providers.grok.api_key", "GROK_API_KEY")
	v.BindEnv("providers.grok.base_url", "GROK_BASE_URL")
	v.BindEnv("generation.default_model", "DEFAULT_MODEL")
	v.BindEnv("cleanup.secret", "CRON_SECRET")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
