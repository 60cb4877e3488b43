package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".pagegen"

//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/page-template.html
var defaultTemplate string

// Settings represents the YAML configuration structure
type Settings struct {
	BaseURL               string `yaml:"base_url"`
	OutputLog             string `yaml:"output_log"`
	FeaturedImageURL      string `yaml:"featured_image_url"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// ClientConfig holds the remote site endpoint and credentials. Built once at
// startup and passed into NewPageClient; never read from globals.
type ClientConfig struct {
	BaseURL     string
	Username    string
	AppPassword string
	Timeout     time.Duration
}

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// loadSettings loads settings from YAML file with fallback to defaults
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		// Return default settings if file doesn't exist
		return &Settings{
			OutputLog:             "output_log.csv",
			FeaturedImageURL:      "http://localpageshub.local/wp-content/uploads/2025/04/images.jpeg",
			RequestTimeoutSeconds: 30,
		}, nil
	}

	var settings Settings
	err = yaml.Unmarshal(data, &settings)
	if err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}

	if settings.OutputLog == "" {
		settings.OutputLog = "output_log.csv"
	}
	if settings.RequestTimeoutSeconds <= 0 {
		settings.RequestTimeoutSeconds = 30
	}

	return &settings, nil
}

// loadClientConfig builds the client configuration from settings and
// environment variables. WP_URL takes precedence over base_url in settings.
// Embedded spaces in the application password are stripped, matching the
// format WordPress displays them in.
func loadClientConfig(settings *Settings) (*ClientConfig, error) {
	baseURL := os.Getenv("WP_URL")
	if baseURL == "" {
		baseURL = settings.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("site URL required: set WP_URL or base_url in %s", GetConfigPath("settings.yaml"))
	}
	baseURL = strings.TrimRight(baseURL, "/")

	username := os.Getenv("WP_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("WP_USERNAME environment variable is required")
	}

	appPassword := strings.ReplaceAll(os.Getenv("WP_APP_PASSWORD"), " ", "")
	if appPassword == "" {
		return nil, fmt.Errorf("WP_APP_PASSWORD environment variable is required")
	}

	return &ClientConfig{
		BaseURL:     baseURL,
		Username:    username,
		AppPassword: appPassword,
		Timeout:     time.Duration(settings.RequestTimeoutSeconds) * time.Second,
	}, nil
}

// ensureConfigExists creates config directory and writes settings.yaml if needed
func ensureConfigExists() error {
	err := os.MkdirAll(defaultConfigDir, 0755)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	// Write settings.yaml - this should be customized by users
	settingsFile := GetConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
		err = os.WriteFile(settingsFile, []byte(defaultSettings), 0644)
		if err != nil {
			return fmt.Errorf("writing settings.yaml: %w", err)
		}
	}

	return nil
}
