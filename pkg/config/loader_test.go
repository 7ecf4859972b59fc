package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
)

type localeConfig struct {
	Locale string `env:"TEST_LOCALE" envDefault:"en"`
	Pushy  bool   `env:"TEST_PUSHY" envDefault:"true"`
	Limit  int    `env:"TEST_LIMIT" envDefault:"10"`
}

type catalogConfig struct {
	Dir string `env:"TEST_CATALOG_DIR" envDefault:"./locales"`
}

type requiredConfig struct {
	Bucket string `env:"TEST_REQUIRED_BUCKET,required"`
}

type envFileConfig struct {
	Source string `env:"TEST_ENV_SOURCE"`
	Extra  string `env:"TEST_ENV_EXTRA"`
}

// unsetEnv clears key for the test and restores it afterwards, so values
// written by .env loading do not leak into other tests.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_LOCALE", "ru")
		t.Setenv("TEST_PUSHY", "false")
		t.Setenv("TEST_LIMIT", "3")

		var cfg localeConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, localeConfig{Locale: "ru", Pushy: false, Limit: 3}, cfg)
	})

	t.Run("defaults", func(t *testing.T) {
		config.ResetCache()
		unsetEnv(t, "TEST_LOCALE", "TEST_PUSHY", "TEST_LIMIT")

		var cfg localeConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, localeConfig{Locale: "en", Pushy: true, Limit: 10}, cfg)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_CATALOG_DIR", "/first")

		var first catalogConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_CATALOG_DIR", "/second")
		var second catalogConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "/first", second.Dir)

		require.NoError(t, config.ForceReloadConfig(&second))
		assert.Equal(t, "/second", second.Dir)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		unsetEnv(t, "TEST_REQUIRED_BUCKET")

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)

		t.Setenv("TEST_REQUIRED_BUCKET", "translations")
		require.NoError(t, config.Load(&cfg), "a failed load is retried")
		assert.Equal(t, "translations", cfg.Bucket)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[localeConfig](nil), config.ErrNilPointer)
		assert.ErrorIs(t, config.ForceReloadConfig[localeConfig](nil), config.ErrNilPointer)
	})

	t.Run("non-struct config", func(t *testing.T) {
		var dir string
		err := config.Load(&dir)
		require.ErrorIs(t, err, config.ErrInvalidConfigType)
		assert.Contains(t, err.Error(), "string")
	})

	t.Run("concurrent loads", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("TEST_CATALOG_DIR", "/shared")

		var wg sync.WaitGroup
		results := make([]catalogConfig, 20)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = config.Load(&results[i])
			}()
		}
		wg.Wait()

		for _, r := range results {
			assert.Equal(t, "/shared", r.Dir)
		}
	})
}

func TestMustLoad(t *testing.T) {
	config.ResetCache()
	unsetEnv(t, "TEST_REQUIRED_BUCKET")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("TEST_REQUIRED_BUCKET", "b")
	assert.NotPanics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom files, first wins", func(t *testing.T) {
		config.ResetCache()
		unsetEnv(t, "TEST_ENV_SOURCE", "TEST_ENV_EXTRA")

		custom := writeEnvFile(t, ".env.custom", "TEST_ENV_SOURCE=custom\n")
		override := writeEnvFile(t, ".env.override", "TEST_ENV_SOURCE=override\nTEST_ENV_EXTRA=extra\n")

		require.NoError(t, config.LoadEnv(custom, override))

		var cfg envFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Source)
		assert.Equal(t, "extra", cfg.Extra)
	})

	t.Run("process environment wins over files", func(t *testing.T) {
		config.ResetCache()
		unsetEnv(t, "TEST_ENV_EXTRA")
		t.Setenv("TEST_ENV_SOURCE", "process")

		require.NoError(t, config.LoadEnv(writeEnvFile(t, ".env", "TEST_ENV_SOURCE=file\n")))

		var cfg envFileConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "process", cfg.Source)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must variant", func(t *testing.T) {
		unsetEnv(t, "TEST_ENV_SOURCE")
		assert.NotPanics(t, func() { config.MustLoadEnv(writeEnvFile(t, ".env", "TEST_ENV_SOURCE=x\n")) })
		assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
	})
}
