package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	// Input
	DataDir      string
	InputPattern string

	// Output, OutputDir is relative to DataDir unless absolute
	OutputDir  string
	OutputFile string

	// Console
	PreviewRows int
	LogLevel    string
}

// Load reads the configuration from the environment. With nothing set it
// describes the standard layout: Data/Pex Transactions - FY*.csv merged into
// Data/processed/merged_stipends.csv.
func Load() *Config {
	return &Config{
		DataDir:      getEnv("STIPENDS_DATA_DIR", "Data"),
		InputPattern: getEnv("STIPENDS_INPUT_PATTERN", "Pex Transactions - FY*.csv"),
		OutputDir:    getEnv("STIPENDS_OUTPUT_DIR", "processed"),
		OutputFile:   getEnv("STIPENDS_OUTPUT_FILE", "merged_stipends.csv"),
		PreviewRows:  getEnvInt("STIPENDS_PREVIEW_ROWS", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) Validate() error {
	var errors []string

	if c.DataDir == "" {
		errors = append(errors, "data directory cannot be empty")
	}

	if c.InputPattern == "" {
		errors = append(errors, "input pattern cannot be empty")
	} else if _, err := filepath.Match(c.InputPattern, ""); err != nil {
		errors = append(errors, fmt.Sprintf("invalid input pattern '%s': %v", c.InputPattern, err))
	}

	if c.OutputFile == "" {
		errors = append(errors, "output file cannot be empty")
	} else if filepath.Base(c.OutputFile) != c.OutputFile {
		errors = append(errors, fmt.Sprintf("invalid output file '%s': must be a file name, not a path", c.OutputFile))
	}

	if c.PreviewRows < 0 {
		errors = append(errors, fmt.Sprintf("invalid preview rows %d: cannot be negative", c.PreviewRows))
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': %v", c.LogLevel, err))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// InputGlob is the pattern matched against the file system to find input
// files.
func (c *Config) InputGlob() string {
	return filepath.Join(c.DataDir, c.InputPattern)
}

func (c *Config) OutputPath() string {
	dir := c.OutputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(c.DataDir, dir)
	}
	return filepath.Join(dir, c.OutputFile)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
