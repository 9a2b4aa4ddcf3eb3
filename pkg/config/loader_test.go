package config_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftbook/gokit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigReload struct {
	TestString string `env:"TEST_STRING_RELOAD" envDefault:"default_value"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type FileConfig struct {
	FileString string `env:"TEST_FILE_STRING"`
	FileInt    int    `env:"TEST_FILE_INT"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.Equal(t, true, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	require.NoError(t, config.Load(&firstConfig))

	// Changing the environment must not affect the cached config.
	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	require.NoError(t, config.Load(&secondConfig))

	assert.Equal(t, "first_value", secondConfig.TestString,
		"second load should be served from the cache")
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess = nil
	err := config.Load(cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestForceReload(t *testing.T) {
	t.Setenv("TEST_STRING_RELOAD", "first_value")

	var cfg TestConfigReload
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first_value", cfg.TestString)

	t.Setenv("TEST_STRING_RELOAD", "second_value")

	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "second_value", cfg.TestString,
		"ForceReload should observe the changed environment")
}

func TestLoadEnv_CustomPath(t *testing.T) {
	os.Unsetenv("TEST_FILE_STRING")
	os.Unsetenv("TEST_FILE_INT")
	config.ResetCache()
	t.Cleanup(func() {
		os.Unsetenv("TEST_FILE_STRING")
		os.Unsetenv("TEST_FILE_INT")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg FileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "file_value", cfg.FileString)
	assert.Equal(t, 1234, cfg.FileInt)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.Error(t, err)
}
