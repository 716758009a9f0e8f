package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"database_url": "postgres://localhost/internships",
		"api_key": "test-key",
		"top_n": 5,
		"high_stipend_threshold": 25000
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/internships", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, 25000, cfg.HighStipendThreshold)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	path := writeConfig(t, "{bad json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"negative top_n", Config{TopN: -1}, true},
		{"negative stipend threshold", Config{HighStipendThreshold: -100}, true},
		{"negative priority cap", Config{MaxPrioritySkills: -1}, true},
		{"port out of range", Config{Port: 99999}, true},
		{"missing catalog file", Config{CatalogFile: "/does/not/exist.json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{TopN: 3, APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 3, merged.TopN)
	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, 20000, merged.HighStipendThreshold)
	assert.Equal(t, "remote", merged.RemoteCategory)
	assert.Equal(t, 6, merged.MaxPrioritySkills)
	assert.Equal(t, 8080, merged.Port)
}
