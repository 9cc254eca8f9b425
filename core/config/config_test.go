package config_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/externref/macro/core/config"
)

// Each test uses its own config type: loaded values are cached per type
// for the process lifetime, and t.Setenv forbids t.Parallel.

func TestLoad(t *testing.T) {
	t.Run("reads environment variables", func(t *testing.T) {
		type appConfig struct {
			Name  string `env:"TEST_LOAD_APP_NAME"`
			Port  int    `env:"TEST_LOAD_APP_PORT" envDefault:"8080"`
			Debug bool   `env:"TEST_LOAD_APP_DEBUG" envDefault:"false"`
		}

		t.Setenv("TEST_LOAD_APP_NAME", "macro")
		t.Setenv("TEST_LOAD_APP_DEBUG", "true")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "macro", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.True(t, cfg.Debug)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_LOAD_CACHED_VALUE" envDefault:"first"`
		}

		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// Env change after the first load must not affect cached values.
		t.Setenv("TEST_LOAD_CACHED_VALUE", "second")

		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("required variable missing is an error", func(t *testing.T) {
		type strictConfig struct {
			Secret string `env:"TEST_LOAD_STRICT_SECRET,required"`
		}

		var cfg strictConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load")
	})

	t.Run("concurrent loads agree", func(t *testing.T) {
		type sharedConfig struct {
			Value string `env:"TEST_LOAD_SHARED_VALUE" envDefault:"shared"`
		}

		const workers = 16
		results := make([]sharedConfig, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = config.Load(&results[i])
			}()
		}
		wg.Wait()

		for i := 0; i < workers; i++ {
			assert.Equal(t, "shared", results[i].Value)
		}
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns loaded config", func(t *testing.T) {
		type mustConfig struct {
			Host string `env:"TEST_MUSTLOAD_HOST" envDefault:"localhost"`
		}

		var cfg mustConfig
		require.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("panics on failure", func(t *testing.T) {
		type failingConfig struct {
			Token string `env:"TEST_MUSTLOAD_TOKEN,required"`
		}

		var cfg failingConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})
}
