package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvironment = "vtexcommercestable"

// DefaultOutputDir is where the exporters drop their CSV files unless
// OUTPUT_DIR says otherwise.
const DefaultOutputDir = "output"

// Config carries everything a single export run needs. It is built once
// at process start and handed to components explicitly; nothing reads
// the environment after Load returns.
type Config struct {
	AccountName    string
	AppKey         string
	AppToken       string
	Environment    string
	IncludeDetails bool
	OutputDir      string
}

// Load reads the VTEX credentials from the environment, honoring a .env
// file when one is present. Missing required values abort the run with a
// message naming them, before any network call is made.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AccountName:    os.Getenv("VTEX_ACCOUNT_NAME"),
		AppKey:         os.Getenv("VTEX_APP_KEY"),
		AppToken:       os.Getenv("VTEX_APP_TOKEN"),
		Environment:    os.Getenv("VTEX_ENVIRONMENT"),
		IncludeDetails: os.Getenv("VTEX_INCLUDE_DETAILS") == "true",
		OutputDir:      os.Getenv("OUTPUT_DIR"),
	}
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironment
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}

	var missing []string
	if cfg.AccountName == "" {
		missing = append(missing, "VTEX_ACCOUNT_NAME")
	}
	if cfg.AppKey == "" {
		missing = append(missing, "VTEX_APP_KEY")
	}
	if cfg.AppToken == "" {
		missing = append(missing, "VTEX_APP_TOKEN")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}

// BaseURL renders the account's API host.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("https://%s.%s.com.br", c.AccountName, c.Environment)
}

// OutputDir resolves the CSV directory for commands that do not need
// VTEX credentials (the loader).
func OutputDir() string {
	_ = godotenv.Load()
	if dir := os.Getenv("OUTPUT_DIR"); dir != "" {
		return dir
	}
	return DefaultOutputDir
}
