package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing env file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeEnvFile(t, `# Roboflow credentials
ROBOFLOW_API_KEY=abcdef1234567890

ROBOFLOW_WORKSPACE_ID=acme
ROBOFLOW_PROJECT_ID=face-masks
DATASET_PATH=/data/masks
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.EnvFileFound {
		t.Error("EnvFileFound = false, want true")
	}
	if cfg.APIKey != "abcdef1234567890" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.WorkspaceID != "acme" {
		t.Errorf("WorkspaceID = %q", cfg.WorkspaceID)
	}
	if cfg.ProjectID != "face-masks" {
		t.Errorf("ProjectID = %q", cfg.ProjectID)
	}
	if cfg.DatasetPath != "/data/masks" {
		t.Errorf("DatasetPath = %q", cfg.DatasetPath)
	}
	if cfg.PublishableKey != "" {
		t.Errorf("PublishableKey = %q, want empty", cfg.PublishableKey)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	path := writeEnvFile(t, "ROBOFLOW_API_KEY=from_file\n")

	os.Setenv("ROBOFLOW_API_KEY", "from_env")
	defer os.Unsetenv("ROBOFLOW_API_KEY")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIKey != "from_env" {
		t.Errorf("APIKey = %q, want environment value", cfg.APIKey)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if cfg.EnvFileFound {
		t.Error("EnvFileFound = true, want false")
	}
}

func TestMissingKeys(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want []string
	}{
		{
			name: "all present",
			cfg: Config{
				APIKey:      "key",
				WorkspaceID: "ws",
				ProjectID:   "proj",
				DatasetPath: "./data",
			},
			want: nil,
		},
		{
			name: "workspace and project missing",
			cfg: Config{
				APIKey:      "key",
				DatasetPath: "./data",
			},
			want: []string{KeyWorkspaceID, KeyProjectID},
		},
		{
			name: "nothing set",
			cfg:  Config{},
			want: RequiredKeys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.MissingKeys()
			if len(got) != len(tt.want) {
				t.Fatalf("MissingKeys() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MissingKeys()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{APIKey: "key"}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for incomplete config")
	}

	cfg = &Config{APIKey: "key", WorkspaceID: "ws", ProjectID: "p", DatasetPath: "./d"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestDatasetDir(t *testing.T) {
	cfg := &Config{}
	if got := cfg.DatasetDir(); got != DefaultDatasetPath {
		t.Errorf("DatasetDir() = %q, want %q", got, DefaultDatasetPath)
	}

	cfg = &Config{DatasetPath: "/data/masks"}
	if got := cfg.DatasetDir(); got != "/data/masks" {
		t.Errorf("DatasetDir() = %q, want configured path", got)
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"long key", "abcdef1234567890", "abcdef12..."},
		{"nine characters", "123456789", "12345678..."},
		{"exactly eight", "12345678", "***"},
		{"short key", "abc", "***"},
		{"empty", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskKey(tt.key); got != tt.want {
				t.Errorf("MaskKey(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
