package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/assetpath/internal/assets"
	"github.com/specialistvlad/assetpath/internal/catalog"
	"github.com/specialistvlad/assetpath/internal/catalog/hclcatalog"
)

func TestNewApp_BuiltInCatalog(t *testing.T) {
	a, out, _ := setupAppTest(t, "", Config{})

	require.NoError(t, a.Resolve(context.Background(), "SchoolYard", "CityBackground"))
	assert.Equal(t,
		assets.BaseURL+"moviestarplanet-swf/school_yard.swf\n"+
			assets.BaseURL+"moviestarplanet-components/login/citybackground.svg\n",
		out.String())
}

func TestNewApp_HCLCatalog(t *testing.T) {
	a, out, logs := setupAppTest(t, testCatalog, Config{})

	require.NoError(t, a.Resolve(context.Background(), "Background"))
	assert.Equal(t, "https://example/moviestarplanet-components/preloader/background.png\n", out.String())
	assert.Contains(t, logs.String(), "Catalog loaded.")
}

func TestNewApp_BaseURLOverride(t *testing.T) {
	a, _, _ := setupAppTest(t, testCatalog, Config{BaseURL: "https://cdn.example/"})

	url, err := a.ResolveRef("SchoolYard")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/moviestarplanet-swf/school_yard.swf", url)
}

func TestNewApp_MissingBaseURL(t *testing.T) {
	path := t.TempDir() + "/catalog.hcl"
	writeErr := writeTestFile(path, `
group "Login" {
  entry "CityBackground" { file = "citybackground.svg" }
}
`)
	require.NoError(t, writeErr)

	cfg, err := NewConfig(Config{CatalogPath: path})
	require.NoError(t, err)

	_, err = NewApp(context.Background(), &safeBuffer{}, &safeBuffer{}, cfg, hclcatalog.NewLoader(hclcatalog.WithEnv(map[string]string{})))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no base URL")
}

func TestNewApp_CatalogLoadFailure(t *testing.T) {
	cfg, err := NewConfig(Config{CatalogPath: t.TempDir()})
	require.NoError(t, err)

	_, err = NewApp(context.Background(), &safeBuffer{}, &safeBuffer{}, cfg, hclcatalog.NewLoader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestResolveRef_QualifiedAddress(t *testing.T) {
	a, _, _ := setupAppTest(t, testCatalog, Config{})

	url, err := a.ResolveRef("MoviestarplanetComponents.Login.CityBackground")
	require.NoError(t, err)
	assert.Equal(t, "https://example/moviestarplanet-components/login/citybackground.svg", url)

	_, err = a.ResolveRef("MoviestarplanetSwf.CityBackground")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = a.ResolveRef("Bad..Address")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestResolve_UnknownStopsAndLeavesCacheClean(t *testing.T) {
	a, out, _ := setupAppTest(t, testCatalog, Config{})

	err := a.Resolve(context.Background(), "SchoolYard", "DoesNotExist", "Background")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	assert.Equal(t, "https://example/moviestarplanet-swf/school_yard.swf\n", out.String())
	assert.Equal(t, 1, a.Resolver().Len())
}

func TestResolve_CancelledContext(t *testing.T) {
	a, out, _ := setupAppTest(t, testCatalog, Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Resolve(ctx, "SchoolYard")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}
