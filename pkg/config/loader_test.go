package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubkit/pkg/config"
)

type appConfig struct {
	Name  string        `env:"CLUBKIT_APP_NAME" envDefault:"clubui"`
	Delay time.Duration `env:"CLUBKIT_APP_DELAY" envDefault:"300ms"`
}

type requiredConfig struct {
	Secret string `env:"CLUBKIT_REQUIRED_SECRET,required"`
}

type fileConfig struct {
	Name  string   `env:"CLUBKIT_TEST_NAME"`
	Limit int      `env:"CLUBKIT_TEST_LIMIT"`
	Kinds []string `env:"CLUBKIT_TEST_KINDS" envSeparator:","`
}

// These tests mutate the process environment and the package cache, so they
// do not run in parallel.

func TestLoad(t *testing.T) {
	config.ResetCache()
	t.Setenv("CLUBKIT_APP_NAME", "custom")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, 300*time.Millisecond, cfg.Delay)
}

func TestLoadCachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("CLUBKIT_APP_NAME", "first")

	var first appConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CLUBKIT_APP_NAME", "second")
	var second appConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.ResetCache()
	var third appConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoadMissingRequired(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("CLUBKIT_REQUIRED_SECRET")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadNilPointer(t *testing.T) {
	var cfg *appConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	for _, k := range []string{"CLUBKIT_TEST_NAME", "CLUBKIT_TEST_LIMIT", "CLUBKIT_TEST_KINDS"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, 42, cfg.Limit)
	assert.Equal(t, []string{"phone", "cpf"}, cfg.Kinds)
}

func TestLoadEnvMissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.ErrorIs(t, err, config.ErrLoadingEnv)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
