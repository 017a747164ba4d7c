package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"busrent/pkg/logger"
)

type Config struct {
	Port string

	ClickUpToken     string
	ClickUpListID    string
	ClickUpBaseURL   string
	OccupiedStatuses []string
	DepositPLN       int

	WebhookURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	OwnerEmail   string
	NotifyPhone  string

	KafkaBrokers []string
	KafkaTopic   string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	StoreTimeout   time.Duration
	NotifyTimeout  time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		ClickUpToken:     getEnvStr(EnvClickUpToken, ""),
		ClickUpListID:    getEnvStr(EnvClickUpListID, DefaultClickUpListID),
		ClickUpBaseURL:   getEnvStr(EnvClickUpBaseURL, DefaultClickUpBaseURL),
		OccupiedStatuses: DefaultOccupiedStatuses,
		DepositPLN:       DefaultDepositPLN,

		WebhookURL: getEnvStr(EnvWebhookURL, ""),

		SMTPHost:     getEnvStr(EnvSMTPHost, ""),
		SMTPPort:     getEnvNum(EnvSMTPPort, 587),
		SMTPUser:     getEnvStr(EnvSMTPUser, ""),
		SMTPPassword: getEnvStr(EnvSMTPPassword, ""),
		OwnerEmail:   getEnvStr(EnvOwnerEmail, ""),
		NotifyPhone:  getEnvStr(EnvNotifyPhone, ""),

		KafkaBrokers: getEnvStrSlice(EnvKafkaBrokers),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		StoreTimeout:   getEnvDuration(EnvStoreTimeout, DefaultStoreTimeout),
		NotifyTimeout:  getEnvDuration(EnvNotifyTimeout, DefaultNotifyTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.ClickUpToken == "" {
		errs = append(errs, "ClickUpToken cannot be empty")
	}
	if cfg.ClickUpListID == "" {
		errs = append(errs, "ClickUpListID cannot be empty")
	}
	if !strings.HasPrefix(cfg.ClickUpBaseURL, "http://") && !strings.HasPrefix(cfg.ClickUpBaseURL, "https://") {
		errs = append(errs, fmt.Sprintf("ClickUpBaseURL must be an http(s) URL, got: %s", cfg.ClickUpBaseURL))
	}

	if cfg.SMTPHost != "" {
		if cfg.SMTPPort < 1 || cfg.SMTPPort > 65535 {
			errs = append(errs, fmt.Sprintf("SMTPPort must be between 1 and 65535, got: %d", cfg.SMTPPort))
		}
		if cfg.OwnerEmail == "" {
			errs = append(errs, "OwnerEmail cannot be empty when SMTPHost is set")
		}
	}

	if cfg.DepositPLN <= 0 {
		errs = append(errs, fmt.Sprintf("DepositPLN must be positive, got: %d", cfg.DepositPLN))
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.StoreTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("StoreTimeout must be positive, got: %s", cfg.StoreTimeout))
	}
	if cfg.NotifyTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("NotifyTimeout must be positive, got: %s", cfg.NotifyTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded successfully",
		"port", cfg.Port,
		"clickup_token_set", cfg.ClickUpToken != "",
		"clickup_list_id", cfg.ClickUpListID,
		"clickup_base_url", cfg.ClickUpBaseURL,
		"occupied_statuses", cfg.OccupiedStatuses,
		"deposit_pln", cfg.DepositPLN,
		"webhook_enabled", cfg.WebhookURL != "",
		"email_enabled", cfg.SMTPHost != "",
		"owner_email_set", cfg.OwnerEmail != "",
		"notify_phone_set", cfg.NotifyPhone != "",
		"kafka_enabled", len(cfg.KafkaBrokers) > 0,
		"kafka_topic", cfg.KafkaTopic,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"store_timeout", cfg.StoreTimeout,
		"notify_timeout", cfg.NotifyTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvStrSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
