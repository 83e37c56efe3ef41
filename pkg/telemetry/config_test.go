package telemetry

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Enabled {
		t.Error("expected Enabled to be false by default")
	}
	if cfg.ServiceName != "kclique" {
		t.Errorf("expected ServiceName 'kclique', got %q", cfg.ServiceName)
	}
	if cfg.ServiceVersion != "unknown" {
		t.Errorf("expected ServiceVersion 'unknown', got %q", cfg.ServiceVersion)
	}
	if cfg.Sampler != "always_on" {
		t.Errorf("expected Sampler 'always_on', got %q", cfg.Sampler)
	}
}
