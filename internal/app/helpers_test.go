package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/assetpath/internal/catalog/hclcatalog"
)

// safeBuffer is a thread-safe buffer for capturing log output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// setupAppTest creates an App with debug logging. An empty catalog source
// selects the built-in catalog.
func setupAppTest(t *testing.T, catalogSrc string, cfg Config) (*App, *bytes.Buffer, *safeBuffer) {
	t.Helper()

	if catalogSrc != "" {
		path := filepath.Join(t.TempDir(), "catalog.hcl")
		require.NoError(t, os.WriteFile(path, []byte(catalogSrc), 0644))
		cfg.CatalogPath = path
	}
	cfg.LogLevel = "debug"

	config, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &safeBuffer{}
	a, err := NewApp(context.Background(), out, logs, config, hclcatalog.NewLoader(hclcatalog.WithEnv(map[string]string{})))
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ASSETPATH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

const testCatalog = `
base_url = "https://example/"

group "MoviestarplanetSwf" {
  entry "SchoolYard" { file = "school_yard.swf" }
}

group "MoviestarplanetComponents" {
  group "Login" {
    entry "CityBackground" { file = "citybackground.svg" }
  }
  group "Preloader" {
    entry "Background" { file = "background.png" }
  }
}
`

func writeTestFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
