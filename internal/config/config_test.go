package config

import (
	"errors"
	"testing"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{"JSON format", "json", FormatJSON, false},
		{"Text format", "text", FormatText, false},
		{"Unknown format", "xml", FormatJSON, true},
		{"Empty format", "", FormatJSON, true},
		{"Case sensitive", "JSON", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			if tt.wantErr {
				var argErr *models.ArgumentError
				if !errors.As(err, &argErr) {
					t.Errorf("ParseFormat(%q) error type = %T, want *models.ArgumentError", tt.input, err)
				}
			}
		})
	}
}

func TestGetFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected Format
	}{
		{"JSON format", "json", FormatJSON},
		{"Text format", "text", FormatText},
		{"Default format", "", FormatJSON},
		{"Invalid format", "invalid", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Format: tt.format}
			if got := cfg.GetFormat(); got != tt.expected {
				t.Errorf("GetFormat() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Format != "json" {
		t.Errorf("Default format = %v, want %v", cfg.Format, "json")
	}

	if cfg.OutputFile != "" {
		t.Errorf("Default output_file = %v, want empty", cfg.OutputFile)
	}

	if cfg.Debug != false {
		t.Errorf("Default debug = %v, want false", cfg.Debug)
	}
}

func TestLoadConfigDebugEnv(t *testing.T) {
	t.Setenv("FILESTAT_DEBUG", "1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Debug {
		t.Error("Debug = false, want true with FILESTAT_DEBUG=1")
	}
}

func TestLoadConfigFormatEnv(t *testing.T) {
	t.Setenv("FILESTAT_FORMAT", "text")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}
