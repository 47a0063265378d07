package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFromDir(t *testing.T, yml string) error {
	t.Helper()
	origConfig := Config
	origDir, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		Config = origConfig
		_ = os.Chdir(origDir)
	})

	dir := t.TempDir()
	if yml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o644))
	}
	require.NoError(t, os.Chdir(dir))
	return LoadAppConfig()
}

func TestLoadAppConfig(t *testing.T) {
	err := loadFromDir(t, `
server:
  port: 8080
dataset:
  archivePath: ./fares.zip
resolver:
  variantPrefix: "8"
`)
	require.NoError(t, err)
	assert.Equal(t, 8080, Config.Server.Port)
	assert.Equal(t, "./fares.zip", Config.Dataset.ArchivePath)
	assert.Equal(t, "8", Config.Resolver.VariantPrefix)
	// Unset knobs pick up defaults.
	assert.Equal(t, "£", Config.Resolver.CurrencySymbol)
	assert.Equal(t, DefaultFareTypeAliases(), Config.Resolver.FareTypeAliases)
}

func TestLoadAppConfig_Defaults(t *testing.T) {
	err := loadFromDir(t, `
dataset:
  archivePath: ./fares.zip
`)
	require.NoError(t, err)
	assert.Equal(t, 16281, Config.Server.Port)
	assert.Equal(t, "9", Config.Resolver.VariantPrefix)
}

func TestLoadAppConfig_MissingFile(t *testing.T) {
	assert.Error(t, loadFromDir(t, ""))
}

func TestLoadAppConfig_InvalidYAML(t *testing.T) {
	assert.Error(t, loadFromDir(t, "server: [broken"))
}

func TestLoadAppConfig_InvalidURL(t *testing.T) {
	assert.Error(t, loadFromDir(t, `
server:
  port: 8080
dataset:
  archiveURL: not a url
`))
}

func TestDefaultResolver(t *testing.T) {
	cfg := DefaultResolver()
	assert.Equal(t, "9", cfg.VariantPrefix)
	assert.Equal(t, "£", cfg.CurrencySymbol)
	assert.Equal(t, "U19 Single", cfg.FareTypeAliases["igo Single"])
}
