package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_PREFIX", "")
	assert.Equal(t, "", GetEnvString("TEST_PREFIX", "VITE_"))
	assert.Equal(t, "VITE_", GetEnvString("TEST_PREFIX_UNSET", "VITE_"))
}

func TestGetEnvLogLevel(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "WARN")
	assert.Equal(t, zerolog.WarnLevel, GetEnvLogLevel("TEST_LOG_LEVEL", zerolog.InfoLevel))

	t.Setenv("TEST_LOG_LEVEL", "loud")
	assert.Equal(t, zerolog.InfoLevel, GetEnvLogLevel("TEST_LOG_LEVEL", zerolog.InfoLevel))

	t.Setenv("TEST_LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, GetEnvLogLevel("TEST_LOG_LEVEL", zerolog.InfoLevel))
}

func TestEnvironMap(t *testing.T) {
	m := environMap([]string{"A=1", "B=x=y", "C=", "NOEQUALS", "=hidden"})

	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, m)
}
