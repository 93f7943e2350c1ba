package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Flow      FlowConfig
	Security  SecurityConfig
	Kafka     KafkaConfig
	Theme     ThemeConfig
	Websocket WebsocketConfig
}

type ServerConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

type LoggingConfig struct {
	Directory string
	Level     string
	Format    string
}

// FlowConfig holds the artificial latencies of the reservation flow.
type FlowConfig struct {
	SubmitDelay time.Duration
	ClearDelay  time.Duration
}

type SecurityConfig struct {
	SessionSecret string
	SessionTTL    time.Duration
}

type KafkaConfig struct {
	Brokers     []string
	GroupID     string
	MenuTopic   string
	EventsTopic string
}

// Enabled reports whether at least one broker address is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type ThemeConfig struct {
	StorePath  string
	SystemHint string
}

type WebsocketConfig struct {
	SendBuffer int
}

const (
	defaultPort        = "8080"
	defaultSubmitDelay = 1500 * time.Millisecond
	defaultClearDelay  = 8 * time.Second
)

// Load builds the configuration from environment variables, applying defaults for
// anything left unset.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envString("PORT", defaultPort),
		},
		Logging: LoggingConfig{
			Directory: envString("LOG_DIR", "./logs"),
			Level:     envString("LOG_LEVEL", "info"),
			Format:    envString("LOG_FORMAT", "text"),
		},
		Security: SecurityConfig{
			SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		},
		Kafka: KafkaConfig{
			Brokers:     envList("KAFKA_BROKERS", envString("KAFKA_BROKER", "")),
			GroupID:     envString("KAFKA_GROUP_ID", "dinesync"),
			MenuTopic:   envString("KAFKA_MENU_TOPIC", "menu.item-updated"),
			EventsTopic: envString("KAFKA_EVENTS_TOPIC", "dinesync.flow-events"),
		},
		Theme: ThemeConfig{
			StorePath:  envString("THEME_STORE_PATH", "./data/theme.json"),
			SystemHint: envString("THEME_SYSTEM_HINT", "light"),
		},
	}

	var err error
	if cfg.Server.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Flow.SubmitDelay, err = envDuration("FLOW_SUBMIT_DELAY", defaultSubmitDelay); err != nil {
		return nil, err
	}
	if cfg.Flow.ClearDelay, err = envDuration("FLOW_CLEAR_DELAY", defaultClearDelay); err != nil {
		return nil, err
	}
	if cfg.Security.SessionTTL, err = envDuration("SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Websocket.SendBuffer, err = envInt("WS_SEND_BUFFER", 16); err != nil {
		return nil, err
	}

	if cfg.Security.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.Flow.SubmitDelay < 0 || cfg.Flow.ClearDelay < 0 {
		return nil, fmt.Errorf("flow delays must not be negative")
	}
	if cfg.Websocket.SendBuffer <= 0 {
		return nil, fmt.Errorf("WS_SEND_BUFFER must be positive, got %d", cfg.Websocket.SendBuffer)
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// envList splits a comma separated variable, falling back to a single value.
func envList(key, fallback string) []string {
	raw := envString(key, fallback)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
