package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "stdio" {
		t.Errorf("Expected default mode to be 'stdio', got '%s'", cfg.Mode)
	}

	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected default host to be '127.0.0.1', got '%s'", cfg.Host)
	}

	if cfg.Port != 8080 {
		t.Errorf("Expected default port to be 8080, got %d", cfg.Port)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "paperpilot" {
		t.Errorf("Expected default server name to be 'paperpilot', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 50*1024*1024 {
		t.Errorf("Expected default max file size to be 50MB, got %d", cfg.MaxFileSize)
	}

	if cfg.OCRBinary != "tesseract" {
		t.Errorf("Expected default OCR binary to be 'tesseract', got '%s'", cfg.OCRBinary)
	}

	if cfg.RasterBinary != "pdftoppm" {
		t.Errorf("Expected default raster binary to be 'pdftoppm', got '%s'", cfg.RasterBinary)
	}

	// Document directory defaults to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.DocumentDirectory != currentDir {
		t.Errorf("Expected default document directory to be '%s', got '%s'", currentDir, cfg.DocumentDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	validBase := func(dir string) Config {
		return Config{
			Mode:              "stdio",
			Host:              "127.0.0.1",
			Port:              8080,
			DocumentDirectory: dir,
			MaxFileSize:       1024,
			OCRBinary:         "tesseract",
			RasterBinary:      "pdftoppm",
			LogLevel:          "info",
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name:    "valid config - stdio mode",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name: "valid config - server mode",
			mutate: func(cfg *Config) {
				cfg.Mode = "server"
			},
			wantErr: false,
		},
		{
			name: "invalid mode",
			mutate: func(cfg *Config) {
				cfg.Mode = "invalid"
			},
			wantErr: true,
		},
		{
			name: "invalid port - too low (server mode)",
			mutate: func(cfg *Config) {
				cfg.Mode = "server"
				cfg.Port = 0
			},
			wantErr: true,
		},
		{
			name: "invalid port - too high (server mode)",
			mutate: func(cfg *Config) {
				cfg.Mode = "server"
				cfg.Port = 70000
			},
			wantErr: true,
		},
		{
			name: "invalid port ignored in stdio mode",
			mutate: func(cfg *Config) {
				cfg.Port = 0
			},
			wantErr: false,
		},
		{
			name: "empty document directory",
			mutate: func(cfg *Config) {
				cfg.DocumentDirectory = ""
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			mutate: func(cfg *Config) {
				cfg.LogLevel = "invalid"
			},
			wantErr: true,
		},
		{
			name: "invalid max file size",
			mutate: func(cfg *Config) {
				cfg.MaxFileSize = 0
			},
			wantErr: true,
		},
		{
			name: "empty OCR binary",
			mutate: func(cfg *Config) {
				cfg.OCRBinary = ""
			},
			wantErr: true,
		},
		{
			name: "empty raster binary",
			mutate: func(cfg *Config) {
				cfg.RasterBinary = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validBase(t.TempDir())
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesMissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "uploads", "incoming")

	cfg := Config{
		Mode:              "stdio",
		Host:              "127.0.0.1",
		Port:              8080,
		DocumentDirectory: missing,
		MaxFileSize:       1024,
		OCRBinary:         "tesseract",
		RasterBinary:      "pdftoppm",
		LogLevel:          "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() failed for creatable directory: %v", err)
	}

	if info, err := os.Stat(missing); err != nil || !info.IsDir() {
		t.Errorf("Expected document directory to be created at %s", missing)
	}
}

func TestConfigValidateLogLevels(t *testing.T) {
	validLevels := []string{"debug", "info", "warn", "error"}
	invalidLevels := []string{"DEBUG", "INFO", "trace", "fatal", ""}

	tempDir := t.TempDir()

	for _, level := range validLevels {
		t.Run("valid_"+level, func(t *testing.T) {
			cfg := Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				DocumentDirectory: tempDir,
				MaxFileSize:       1024,
				OCRBinary:         "tesseract",
				RasterBinary:      "pdftoppm",
				LogLevel:          level,
			}

			if err := cfg.Validate(); err != nil {
				t.Errorf("Config.Validate() should accept log level '%s', got error: %v", level, err)
			}
		})
	}

	for _, level := range invalidLevels {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := Config{
				Mode:              "stdio",
				Host:              "127.0.0.1",
				Port:              8080,
				DocumentDirectory: tempDir,
				MaxFileSize:       1024,
				OCRBinary:         "tesseract",
				RasterBinary:      "pdftoppm",
				LogLevel:          level,
			}

			if err := cfg.Validate(); err == nil {
				t.Errorf("Config.Validate() should reject log level '%s'", level)
			}
		})
	}
}

func TestConfigAddress(t *testing.T) {
	cfg := &Config{
		Host: "192.168.1.1",
		Port: 9090,
	}

	expected := "192.168.1.1:9090"
	if got := cfg.Address(); got != expected {
		t.Errorf("Config.Address() = %v, want %v", got, expected)
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     bool
	}{
		{name: "debug level", logLevel: "debug", want: true},
		{name: "info level", logLevel: "info", want: false},
		{name: "warn level", logLevel: "warn", want: false},
		{name: "error level", logLevel: "error", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		Mode:              "server",
		Host:              "localhost",
		Port:              8080,
		DocumentDirectory: "/home/user/uploads",
		LogLevel:          "debug",
		MaxFileSize:       1024,
	}

	result := cfg.String()

	expectedSubstrings := []string{
		"Mode: server",
		"Host: localhost",
		"Port: 8080",
		"DocumentDirectory: /home/user/uploads",
		"LogLevel: debug",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !strings.Contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}

func TestConfigIsServerMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "server mode", mode: "server", want: true},
		{name: "stdio mode", mode: "stdio", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode}
			if got := cfg.IsServerMode(); got != tt.want {
				t.Errorf("Config.IsServerMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigIsStdioMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{name: "stdio mode", mode: "stdio", want: true},
		{name: "server mode", mode: "server", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode}
			if got := cfg.IsStdioMode(); got != tt.want {
				t.Errorf("Config.IsStdioMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
