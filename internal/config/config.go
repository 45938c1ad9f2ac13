// Package config provides configuration loading and validation for the
// screening service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via environment variables.
type Config struct {
	// Service
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RulesPath   string `json:"rules_path,omitempty"`   // Path to hiring rules JSON file

	// Voice-call provider
	VoiceBaseURL string `json:"voice_base_url,omitempty"` // Voice API base URL
	VoiceAPIKey  string `json:"voice_api_key,omitempty"`  // Voice API key
	VoiceAgentID int    `json:"voice_agent_id,omitempty"` // Outbound agent ID

	// Export
	SheetsCredentialsFile string `json:"sheets_credentials_file,omitempty"` // Service account JSON
	SpreadsheetID         string `json:"spreadsheet_id,omitempty"`          // Target Google Sheet
	XLSXOutputPath        string `json:"xlsx_output_path,omitempty"`        // Offline workbook path

	// Behavior
	LogJSON bool `json:"log_json,omitempty"` // Emit JSON logs
	Debug   bool `json:"debug,omitempty"`    // Debug log level
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a configuration from environment variables alone.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		RulesPath:             os.Getenv("HIRING_RULES_PATH"),
		VoiceBaseURL:          os.Getenv("VOICE_API_URL"),
		VoiceAPIKey:           os.Getenv("VOICE_API_KEY"),
		SheetsCredentialsFile: os.Getenv("SHEETS_CREDENTIALS_FILE"),
		SpreadsheetID:         os.Getenv("SPREADSHEET_ID"),
	}
	if agentID, err := strconv.Atoi(os.Getenv("VOICE_AGENT_ID")); err == nil {
		cfg.VoiceAgentID = agentID
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.RulesPath != "" {
		if _, err := os.Stat(c.RulesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.RulesPath)
		}
	}
	if c.SheetsCredentialsFile != "" {
		if _, err := os.Stat(c.SheetsCredentialsFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: sheets credentials file not found: %s", c.SheetsCredentialsFile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply env values as defaults for file config.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RulesPath == "" {
		result.RulesPath = defaults.RulesPath
	}
	if result.VoiceBaseURL == "" {
		result.VoiceBaseURL = defaults.VoiceBaseURL
	}
	if result.VoiceAPIKey == "" {
		result.VoiceAPIKey = defaults.VoiceAPIKey
	}
	if result.SheetsCredentialsFile == "" {
		result.SheetsCredentialsFile = defaults.SheetsCredentialsFile
	}
	if result.SpreadsheetID == "" {
		result.SpreadsheetID = defaults.SpreadsheetID
	}
	if result.XLSXOutputPath == "" {
		result.XLSXOutputPath = defaults.XLSXOutputPath
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.VoiceAgentID == 0 {
		result.VoiceAgentID = defaults.VoiceAgentID
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge.

	return result
}
