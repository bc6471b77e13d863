package infra

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	for _, k := range []string{"SERVER_PORT", "SIMAI_API_URL", "POLL_INTERVAL", "NOTIFICATION_INTERVAL", "HTTP_TIMEOUT", "REDIS_ALERT_CHANNEL"} {
		t.Setenv(k, "")
	}

	cfg := NewConfig()

	if cfg.ServerPort != ":8090" {
		t.Errorf("ServerPort = %q", cfg.ServerPort)
	}
	if cfg.ApiBaseURL != "http://localhost:5000" {
		t.Errorf("ApiBaseURL = %q", cfg.ApiBaseURL)
	}
	if cfg.PollInterval != 5*time.Second || cfg.NotificationInterval != 5*time.Second {
		t.Errorf("intervals = %v / %v", cfg.PollInterval, cfg.NotificationInterval)
	}
	if cfg.HttpTimeout != 30*time.Second {
		t.Errorf("HttpTimeout = %v", cfg.HttpTimeout)
	}
	if cfg.RedisAlertChannel != "simai:alertas" {
		t.Errorf("RedisAlertChannel = %q", cfg.RedisAlertChannel)
	}
}

func TestNewConfigOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("POLL_INTERVAL", "2s")
	t.Setenv("NOTIFICATION_INTERVAL", "nope")
	t.Setenv("SEARCH_PLATE", "abc")

	cfg := NewConfig()

	if cfg.PollInterval != 2*time.Second {
		t.Errorf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.NotificationInterval != 5*time.Second {
		t.Errorf("invalid duration should fall back, got %v", cfg.NotificationInterval)
	}
	if cfg.SearchPlate != "abc" {
		t.Errorf("SearchPlate = %q", cfg.SearchPlate)
	}
}
