package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort        = 8080
	DefaultHost        = "127.0.0.1"
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 50 * 1024 * 1024 // 50MB

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the paperwork analysis server
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Document configuration
	DocumentDirectory string
	MaxFileSize       int64 // Maximum document file size in bytes

	// External tool configuration
	OCRBinary    string // tesseract binary name or path
	RasterBinary string // pdftoppm binary name or path

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		Mode:              ModeStdio, // Default to stdio mode for MCP compatibility
		Host:              DefaultHost,
		Port:              DefaultPort,
		DocumentDirectory: currentDir,
		MaxFileSize:       DefaultMaxFileSize,
		OCRBinary:         "tesseract",
		RasterBinary:      "pdftoppm",
		Version:           "1.0.0",
		ServerName:        "paperpilot",
		LogLevel:          DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.DocumentDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.DocumentDirectory); err == nil {
			cfg.DocumentDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PAPERPILOT")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("dir", cfg.DocumentDirectory)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("ocrbinary", cfg.OCRBinary)
	viper.SetDefault("rasterbinary", cfg.RasterBinary)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("dir", cfg.DocumentDirectory, "Directory containing uploaded documents")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
	pflag.String("ocrbinary", cfg.OCRBinary, "Tesseract binary used for OCR fallback")
	pflag.String("rasterbinary", cfg.RasterBinary, "pdftoppm binary used to rasterize PDF pages")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("ocrbinary", pflag.Lookup("ocrbinary"))
	_ = viper.BindPFlag("rasterbinary", pflag.Lookup("rasterbinary"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\npaperpilot - turns official documents into actionable checklists\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                  "+
			"# stdio mode, current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/uploads           "+
			"# stdio mode with custom directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --ocrbinary=/usr/bin/tesseract   # explicit OCR binary\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_MODE         Server mode\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_HOST         Server host\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_PORT         Server port\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_DIR          Document directory\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_LOGLEVEL     Log level\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_MAXFILESIZE  Maximum file size\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_OCRBINARY    Tesseract binary\n")
		fmt.Fprintf(os.Stderr, "  PAPERPILOT_RASTERBINARY pdftoppm binary\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.DocumentDirectory = viper.GetString("dir")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.OCRBinary = viper.GetString("ocrbinary")
	cfg.RasterBinary = viper.GetString("rasterbinary")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate mode
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	// Validate port range (only for server mode)
	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	// Validate document directory
	if c.DocumentDirectory == "" {
		return errors.New("document directory cannot be empty")
	}

	// Check if document directory exists, create if it doesn't
	if _, err := os.Stat(c.DocumentDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.DocumentDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create document directory %s: %w", c.DocumentDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access document directory %s: %w", c.DocumentDirectory, err)
	}

	// Validate max file size
	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	// Validate external tool names
	if c.OCRBinary == "" {
		return errors.New("OCR binary cannot be empty")
	}
	if c.RasterBinary == "" {
		return errors.New("raster binary cannot be empty")
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Address returns the server address as host:port
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, Host: %s, Port: %d, DocumentDirectory: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.Host, c.Port, c.DocumentDirectory, c.LogLevel, c.MaxFileSize)
}

// IsServerMode returns true if the server is running in HTTP server mode
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
