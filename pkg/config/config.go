package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the environment file both tools read by default.
const DefaultEnvFile = ".env"

// DefaultDatasetPath is used when DATASET_PATH is not configured.
const DefaultDatasetPath = "./dataset"

// Recognized configuration keys.
const (
	KeyAPIKey         = "ROBOFLOW_API_KEY"
	KeyPublishableKey = "ROBOFLOW_PUBLISHABLE_KEY"
	KeyWorkspaceID    = "ROBOFLOW_WORKSPACE_ID"
	KeyProjectID      = "ROBOFLOW_PROJECT_ID"
	KeyDatasetPath    = "DATASET_PATH"
)

// RequiredKeys must be set before any network activity. The publishable
// key is optional.
var RequiredKeys = []string{
	KeyAPIKey,
	KeyWorkspaceID,
	KeyProjectID,
	KeyDatasetPath,
}

// Config holds all application configuration. It is loaded once at
// startup and never mutated afterwards.
type Config struct {
	APIKey         string
	PublishableKey string
	WorkspaceID    string
	ProjectID      string
	DatasetPath    string

	// EnvFileFound records whether the environment file existed at load time.
	EnvFileFound bool
}

// Load reads configuration from the environment file at path merged with
// process environment variables. A process environment variable wins over
// the file when both define a key. A missing file is not an error; missing
// keys are not an error either, callers decide whether to abort.
func Load(path string) (*Config, error) {
	fileValues := map[string]string{}
	found := false
	if _, err := os.Stat(path); err == nil {
		fileValues, err = godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		found = true
	}

	get := func(key string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return fileValues[key]
	}

	return &Config{
		APIKey:         get(KeyAPIKey),
		PublishableKey: get(KeyPublishableKey),
		WorkspaceID:    get(KeyWorkspaceID),
		ProjectID:      get(KeyProjectID),
		DatasetPath:    get(KeyDatasetPath),
		EnvFileFound:   found,
	}, nil
}

// Get returns the configured value for a recognized key, without defaults.
func (c *Config) Get(key string) string {
	switch key {
	case KeyAPIKey:
		return c.APIKey
	case KeyPublishableKey:
		return c.PublishableKey
	case KeyWorkspaceID:
		return c.WorkspaceID
	case KeyProjectID:
		return c.ProjectID
	case KeyDatasetPath:
		return c.DatasetPath
	}
	return ""
}

// DatasetDir returns the configured dataset path, falling back to the default.
func (c *Config) DatasetDir() string {
	if c.DatasetPath == "" {
		return DefaultDatasetPath
	}
	return c.DatasetPath
}

// MissingKeys reports the required keys that are not set.
func (c *Config) MissingKeys() []string {
	var missing []string
	for _, key := range RequiredKeys {
		if c.Get(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if missing := c.MissingKeys(); len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// MaskKey returns a display-safe form of an API key: the first 8 characters
// followed by an ellipsis, or a fixed placeholder for short keys.
func MaskKey(key string) string {
	if len(key) > 8 {
		return key[:8] + "..."
	}
	return "***"
}
