package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"homework_status_bot/internal/domain/failure"
)

const (
	DefaultEndpoint       = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultPollSchedule   = "@every 600s"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogFile        = "log.txt"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string // Opaque, may be a numeric ID or @channel
	TelegramAPIURL string // Empty means the public Bot API

	Endpoint       string
	PollSchedule   string        // cron spec, e.g. "@every 600s"
	RequestTimeout time.Duration // 0 disables the client timeout
	LogLevel       string
	Environment    string
	LogFile        string
}

// fileConfig is the shape of the optional YAML settings file.
// Credentials are never read from it.
type fileConfig struct {
	Endpoint       string         `yaml:"endpoint"`
	TelegramAPIURL string         `yaml:"telegram_api_url"`
	PollSchedule   string         `yaml:"poll_schedule"`
	RequestTimeout *time.Duration `yaml:"request_timeout"`
	LogLevel       string         `yaml:"log_level"`
	Environment    string         `yaml:"environment"`
	LogFile        string         `yaml:"log_file"`
}

// Load reads configuration from an optional YAML file, the environment and .env file (if present).
// Missing credentials are not reported here, see CheckTokens.
func Load(path string) (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	fc, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		Endpoint:       fc.Endpoint,
		TelegramAPIURL: fc.TelegramAPIURL,
		PollSchedule:   fc.PollSchedule,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       fc.LogLevel,
		Environment:    fc.Environment,
		LogFile:        fc.LogFile,
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = *fc.RequestTimeout
	}

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	cfg.TelegramChatID = os.Getenv("TELEGRAM_CHAT_ID")

	overrideString(&cfg.Endpoint, "PRACTICUM_ENDPOINT")
	overrideString(&cfg.TelegramAPIURL, "TELEGRAM_API_URL")
	overrideString(&cfg.PollSchedule, "POLL_SCHEDULE")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")
	overrideString(&cfg.Environment, "ENVIRONMENT")
	overrideString(&cfg.LogFile, "LOG_FILE")

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}

	cfg.setDefaults()
	return cfg, nil
}

func loadFile(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if path == "" {
		return fc, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), fc); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

func (c *AppConfig) setDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.PollSchedule == "" {
		c.PollSchedule = DefaultPollSchedule
	}
	if c.RequestTimeout < 0 {
		c.RequestTimeout = 0
	}

	c.LogLevel = strings.ToLower(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = "info" // Default log level
	}

	c.Environment = strings.ToLower(c.Environment)
	if c.Environment == "" {
		c.Environment = "development" // Default environment
	}

	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
}

// CheckTokens verifies that every credential is present.
func (c *AppConfig) CheckTokens() error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return failure.New(failure.KindMissingCredentials, "missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
