package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":        "secret",
		"LAPOSTE_OKAPI_KEY": "okapi",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || !cfg.IsDevelopment() {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.LaPoste.BaseURL != "https://api.laposte.fr/suivi/v2" || cfg.LaPoste.Timeout != 10*time.Second {
		t.Errorf("unexpected carrier defaults: %+v", cfg.LaPoste)
	}
	if !cfg.Tracking.StrictCodes || cfg.Tracking.BatchConcurrency != 4 {
		t.Errorf("unexpected tracking defaults: %+v", cfg.Tracking)
	}
	if cfg.Refresh.Schedule != "@every 15m" || cfg.Refresh.Workers != 4 {
		t.Errorf("unexpected refresh defaults: %+v", cfg.Refresh)
	}
	if cfg.Mongo.Database != "tracking_system" || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected storage defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           "secret",
		"LAPOSTE_OKAPI_KEY":    "okapi",
		"ENV":                  "production",
		"CARRIER_STRICT_CODES": "false",
		"LAPOSTE_TIMEOUT":      "3s",
		"REFRESH_WORKERS":      "16",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IsDevelopment() || cfg.Tracking.StrictCodes || cfg.LaPoste.Timeout != 3*time.Second || cfg.Refresh.Workers != 16 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_MissingOkapiKey(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{"JWT_SECRET": "secret"}))
	if err == nil {
		t.Fatal("expected error when LAPOSTE_OKAPI_KEY is missing")
	}
}
