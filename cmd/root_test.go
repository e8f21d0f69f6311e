package cmd

import (
	"testing"
	"time"

	"mealdeck/internal/catalog"
	"mealdeck/internal/logging"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBase != catalog.DefaultBaseURL {
		t.Fatalf("expected default base, got %q", cfg.APIBase)
	}
	if cfg.SampleSize != catalog.DefaultSampleSize || cfg.Timeout != 10*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogFile != logging.DefaultLogFile || cfg.Debug || !cfg.Thumbnails {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadArgsEnvFallbackAndFlagOverride(t *testing.T) {
	environ := []string{
		"MEALDECK_API_BASE=http://localhost:9999/api",
		"MEALDECK_SAMPLE_SIZE=5",
		"MEALDECK_TIMEOUT=3s",
		"MEALDECK_DEBUG=true",
		"MEALDECK_THUMBNAILS=false",
	}
	cfg, err := LoadArgs([]string{"-sample-size", "8"}, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIBase != "http://localhost:9999/api" {
		t.Fatalf("expected env base, got %q", cfg.APIBase)
	}
	if cfg.SampleSize != 8 {
		t.Fatalf("expected flag to override env, got %d", cfg.SampleSize)
	}
	if cfg.Timeout != 3*time.Second || !cfg.Debug || cfg.Thumbnails {
		t.Fatalf("expected env values, got %+v", cfg)
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		environ []string
	}{
		{"zero sample", []string{"-sample-size", "0"}, nil},
		{"negative timeout", []string{"-timeout", "-1s"}, nil},
		{"bad env duration", nil, []string{"MEALDECK_TIMEOUT=soon"}},
		{"bad env bool", nil, []string{"MEALDECK_DEBUG=maybe"}},
		{"unknown flag", []string{"-verbose"}, nil},
	}
	for _, tt := range tests {
		if _, err := LoadArgs(tt.args, tt.environ); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}
