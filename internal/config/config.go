// Package config provides centralized configuration for the UI test kit.
// It loads configuration from CLI flags, environment variables, and an
// optional YAML suite file, validates required fields, and provides
// sensible defaults.
//
// CLI flags control the browser mode and artifact upload (--headed, --no-s3);
// environment variables provide the portal URL and S3 credentials.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultProbeTimeout  = 2 * time.Second
	defaultActionTimeout = 5 * time.Second
	defaultNavTimeout    = 10 * time.Second
)

// Config holds all test-kit configuration.
type Config struct {
	// Target portal
	BaseURL string `validate:"required,url"`

	// Browser settings
	Headless bool
	SlowMo   time.Duration

	// Wait budgets
	ProbeTimeout  time.Duration `validate:"gt=0"`
	ActionTimeout time.Duration `validate:"gt=0"`
	NavTimeout    time.Duration `validate:"gt=0"`

	// Artifact locations
	ScreenshotDir string `validate:"required"`
	LogDir        string `validate:"required"`

	// Artifact upload (controlled by --no-s3)
	NoS3 bool

	// S3-compatible storage (AWS_ env vars)
	AWSEndpointS3      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSBucketName      string
	AWSPublicURL       string
}

// ValidationError represents a configuration validation error with multiple issues.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// fileConfig mirrors the YAML suite file. All fields are optional; set fields
// override environment values.
type fileConfig struct {
	BaseURL       string `yaml:"base_url"`
	Headless      *bool  `yaml:"headless"`
	SlowMo        string `yaml:"slow_mo"`
	ProbeTimeout  string `yaml:"probe_timeout"`
	ActionTimeout string `yaml:"action_timeout"`
	NavTimeout    string `yaml:"nav_timeout"`
	ScreenshotDir string `yaml:"screenshot_dir"`
	LogDir        string `yaml:"log_dir"`
}

// ParseFlags parses CLI flags and returns them. Call before LoadConfig.
func ParseFlags() (headed, noS3 bool, url, configFile string) {
	flag.BoolVar(&headed, "headed", false, "Run the browser with a visible window")
	flag.BoolVar(&noS3, "no-s3", false, "Keep artifacts local, skip S3 upload")
	flag.StringVar(&url, "url", "", "Portal base URL (overrides PORTAL_BASE_URL env var)")
	flag.StringVar(&configFile, "config", "", "Optional YAML suite config file")
	flag.Parse()
	return headed, noS3, url, configFile
}

// LoadConfig loads configuration from environment variables, the optional
// YAML file, and CLI flag values. Precedence: flags > file > env > defaults.
func LoadConfig(headed, noS3 bool, url, configFile string) (*Config, error) {
	cfg := &Config{}

	cfg.BaseURL = strings.TrimSpace(os.Getenv("PORTAL_BASE_URL"))
	cfg.Headless = parseBoolOrDefault("HEADLESS", true)
	cfg.SlowMo = parseDurationOrDefault("SLOW_MO", 0)
	cfg.ProbeTimeout = parseDurationOrDefault("PROBE_TIMEOUT", defaultProbeTimeout)
	cfg.ActionTimeout = parseDurationOrDefault("ACTION_TIMEOUT", defaultActionTimeout)
	cfg.NavTimeout = parseDurationOrDefault("NAV_TIMEOUT", defaultNavTimeout)
	cfg.ScreenshotDir = getEnvOrDefault("SCREENSHOT_DIR", "test-results/screenshots")
	cfg.LogDir = getEnvOrDefault("LOG_DIR", "test-logs")

	cfg.NoS3 = noS3
	cfg.AWSEndpointS3 = strings.TrimSpace(os.Getenv("AWS_ENDPOINT_URL_S3"))
	cfg.AWSRegion = getEnvOrDefault("AWS_REGION", "auto")
	cfg.AWSAccessKeyID = strings.TrimSpace(os.Getenv("AWS_ACCESS_KEY_ID"))
	cfg.AWSSecretAccessKey = strings.TrimSpace(os.Getenv("AWS_SECRET_ACCESS_KEY"))
	cfg.AWSBucketName = strings.TrimSpace(os.Getenv("BUCKET_NAME"))
	cfg.AWSPublicURL = strings.TrimSpace(os.Getenv("S3_PUBLIC_URL"))
	if cfg.AWSPublicURL == "" && cfg.AWSEndpointS3 != "" && cfg.AWSBucketName != "" {
		cfg.AWSPublicURL = strings.TrimRight(cfg.AWSEndpointS3, "/") + "/" + cfg.AWSBucketName
	}

	if configFile != "" {
		if err := applyFile(cfg, configFile); err != nil {
			return nil, err
		}
	}

	// Flags win over everything.
	if headed {
		cfg.Headless = false
	}
	if url != "" {
		cfg.BaseURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, err)
	}

	if fc.BaseURL != "" {
		cfg.BaseURL = fc.BaseURL
	}
	if fc.Headless != nil {
		cfg.Headless = *fc.Headless
	}
	if fc.ScreenshotDir != "" {
		cfg.ScreenshotDir = fc.ScreenshotDir
	}
	if fc.LogDir != "" {
		cfg.LogDir = fc.LogDir
	}

	for _, d := range []struct {
		raw  string
		dst  *time.Duration
		name string
	}{
		{fc.SlowMo, &cfg.SlowMo, "slow_mo"},
		{fc.ProbeTimeout, &cfg.ProbeTimeout, "probe_timeout"},
		{fc.ActionTimeout, &cfg.ActionTimeout, "action_timeout"},
		{fc.NavTimeout, &cfg.NavTimeout, "nav_timeout"},
	} {
		if d.raw == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("config file %q: invalid %s: %w", path, d.name, err)
		}
		*d.dst = parsed
	}
	return nil
}

// Validate checks that all required configuration is present and valid.
// When --no-s3 is not set, the S3 credentials are required.
func (c *Config) Validate() error {
	var issues []string

	v := validator.New()
	if err := v.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.Field() {
				case "BaseURL":
					issues = append(issues, "PORTAL_BASE_URL must be a valid URL (set env var or pass --url)")
				default:
					issues = append(issues, fmt.Sprintf("%s failed %q validation", fe.Field(), fe.Tag()))
				}
			}
		} else {
			return err
		}
	}

	if !c.NoS3 {
		if c.AWSEndpointS3 == "" {
			issues = append(issues, "AWS_ENDPOINT_URL_S3 is required (set env var or use --no-s3)")
		}
		if c.AWSBucketName == "" {
			issues = append(issues, "BUCKET_NAME is required (set env var or use --no-s3)")
		}
		if c.AWSAccessKeyID == "" {
			issues = append(issues, "AWS_ACCESS_KEY_ID is required (set env var or use --no-s3)")
		}
		if c.AWSSecretAccessKey == "" {
			issues = append(issues, "AWS_SECRET_ACCESS_KEY is required (set env var or use --no-s3)")
		}
	}

	if c.ProbeTimeout > c.ActionTimeout {
		issues = append(issues, "PROBE_TIMEOUT must not exceed ACTION_TIMEOUT")
	}

	if len(issues) > 0 {
		return &ValidationError{Errors: issues}
	}
	return nil
}

// PrintStartupSummary prints a human-readable summary of the configuration to stderr.
func (c *Config) PrintStartupSummary() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "benefits-e2e runner starting...")
	fmt.Fprintf(os.Stderr, "  Target:   %s\n", c.BaseURL)
	if c.Headless {
		fmt.Fprintln(os.Stderr, "  Browser:  Chromium (headless)")
	} else {
		fmt.Fprintln(os.Stderr, "  Browser:  Chromium (headed)")
	}
	if c.NoS3 {
		fmt.Fprintln(os.Stderr, "  Upload:   disabled (--no-s3)")
	} else {
		fmt.Fprintf(os.Stderr, "  Upload:   S3 (endpoint: %s)\n", c.AWSEndpointS3)
	}
	fmt.Fprintf(os.Stderr, "  Shots:    %s\n", c.ScreenshotDir)
	fmt.Fprintf(os.Stderr, "  Logs:     %s\n", c.LogDir)
	fmt.Fprintln(os.Stderr, "")
}

// Helper functions for parsing environment variables

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func parseBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func parseDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// MustLoadConfig loads configuration and panics if validation fails.
func MustLoadConfig(headed, noS3 bool, url, configFile string) *Config {
	cfg, err := LoadConfig(headed, noS3, url, configFile)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			panic(fmt.Sprintf("Configuration validation failed:\n  - %s", strings.Join(validationErr.Errors, "\n  - ")))
		}
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
	return cfg
}
