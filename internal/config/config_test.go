package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("KAFKA_BROKER", "")
	t.Setenv("FLOW_SUBMIT_DELAY", "")
	t.Setenv("FLOW_CLEAR_DELAY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Flow.SubmitDelay != 1500*time.Millisecond {
		t.Fatalf("expected 1.5s submit delay, got %v", cfg.Flow.SubmitDelay)
	}
	if cfg.Flow.ClearDelay != 8*time.Second {
		t.Fatalf("expected 8s clear delay, got %v", cfg.Flow.ClearDelay)
	}
	if cfg.Kafka.Enabled() {
		t.Fatalf("expected kafka disabled without brokers, got %v", cfg.Kafka.Brokers)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("FLOW_SUBMIT_DELAY", "10ms")
	t.Setenv("WS_SEND_BUFFER", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.Port)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "kafka-2:9092" {
		t.Fatalf("unexpected brokers: %v", cfg.Kafka.Brokers)
	}
	if cfg.Flow.SubmitDelay != 10*time.Millisecond {
		t.Fatalf("unexpected submit delay: %v", cfg.Flow.SubmitDelay)
	}
	if cfg.Websocket.SendBuffer != 4 {
		t.Fatalf("unexpected send buffer: %d", cfg.Websocket.SendBuffer)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{"SESSION_SECRET": ""}},
		{name: "bad duration", env: map[string]string{"SESSION_SECRET": "s", "FLOW_CLEAR_DELAY": "soon"}},
		{name: "negative delay", env: map[string]string{"SESSION_SECRET": "s", "FLOW_SUBMIT_DELAY": "-1s"}},
		{name: "bad buffer", env: map[string]string{"SESSION_SECRET": "s", "WS_SEND_BUFFER": "0"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
