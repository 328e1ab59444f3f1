package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadConfig("")

	assert.NilError(t, err)
	assert.Equal(t, "time_tracker_save", cfg.SaveFilePath)
	assert.Equal(t, "time_tracker_cache", cfg.CacheFilePath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, true, cfg.Persist)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	os.Setenv("SAVE_FILE_PATH", "/tmp/records.csv")
	os.Setenv("CACHE_FILE_PATH", "/tmp/next_id")
	os.Setenv("LOG_LEVEL", "DEBUG")
	os.Setenv("PERSIST", "false")

	defer func() {
		os.Clearenv()
	}()

	cfg, err := LoadConfig("")

	assert.NilError(t, err)
	assert.Equal(t, "/tmp/records.csv", cfg.SaveFilePath)
	assert.Equal(t, "/tmp/next_id", cfg.CacheFilePath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, false, cfg.Persist)
}

func TestLoadConfig_FromFile(t *testing.T) {
	os.Clearenv()

	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.yaml")
	content := "save_file: from_file_save\ncache_file: from_file_cache\nlog_level: warn\n"
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)

	assert.NilError(t, err)
	assert.Equal(t, "from_file_save", cfg.SaveFilePath)
	assert.Equal(t, "from_file_cache", cfg.CacheFilePath)
	assert.Equal(t, "WARN", cfg.LogLevel)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	os.Clearenv()

	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.yaml")
	assert.NilError(t, os.WriteFile(path, []byte("save_file: from_file\n"), 0o644))

	os.Setenv("SAVE_FILE_PATH", "from_env")
	defer os.Clearenv()

	cfg, err := LoadConfig(path)

	assert.NilError(t, err)
	assert.Equal(t, "from_env", cfg.SaveFilePath)
}

func TestLoadConfig_ExplicitFileMissing(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.Assert(t, cfg == nil)
	assert.Assert(t, err != nil)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"invalid level", "INVALID"},
		{"numeric level", "123"},
		{"random string", "random"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("LOG_LEVEL", tt.logLevel)
			defer os.Clearenv()

			cfg, err := LoadConfig("")

			assert.Assert(t, cfg == nil)
			assert.Assert(t, err != nil)
			assert.Assert(t, strings.Contains(err.Error(), "invalid log level"))
		})
	}
}

func TestLoadConfig_EmptyPathsRejectedWhenPersisting(t *testing.T) {
	tests := []struct {
		name        string
		envKey      string
		errContains string
	}{
		{"empty save path", "SAVE_FILE_PATH", "save file path"},
		{"empty cache path", "CACHE_FILE_PATH", "cache file path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv(tt.envKey, "   ")
			defer os.Clearenv()

			cfg, err := LoadConfig("")

			assert.Assert(t, cfg == nil)
			assert.Assert(t, err != nil)
			assert.Assert(t, strings.Contains(err.Error(), tt.errContains))
		})
	}
}

func TestLoadConfig_SamePathRejected(t *testing.T) {
	os.Clearenv()
	os.Setenv("SAVE_FILE_PATH", "shared_path")
	os.Setenv("CACHE_FILE_PATH", "shared_path")
	defer os.Clearenv()

	cfg, err := LoadConfig("")

	assert.Assert(t, cfg == nil)
	assert.Assert(t, err != nil)
	assert.Assert(t, strings.Contains(err.Error(), "distinct"))
}
