package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestNewConfig_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		errContains string
	}{
		{name: "bad format", cfg: Config{LogFormat: "xml"}, errContains: "invalid log-format"},
		{name: "bad level", cfg: Config{LogLevel: "trace"}, errContains: "invalid log-level"},
		{name: "negative warm limit", cfg: Config{WarmLimit: -1}, errContains: "warm-limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ASSETPATH_TEST_VALUE=from-file\n"), 0644))
	t.Setenv("ASSETPATH_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("ASSETPATH_TEST_VALUE"))

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("ASSETPATH_TEST_VALUE"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ASSETPATH_TEST_VALUE=from-file\n"), 0644))
	t.Setenv("ASSETPATH_TEST_VALUE", "from-env")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("ASSETPATH_TEST_VALUE"))
}

func TestLoadEnvFile_MissingExplicitFile(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
