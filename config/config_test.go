package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetList(t *testing.T) {
	t.Setenv("TEST_LIST", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getList("TEST_LIST", nil))

	t.Setenv("TEST_LIST_EMPTY", " , ")
	assert.Equal(t, []string{"x"}, getList("TEST_LIST_EMPTY", []string{"x"}))

	assert.Equal(t, []string{"y"}, getList("TEST_LIST_UNSET", []string{"y"}))
}

func TestGetBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL_BAD", "nope")
	assert.True(t, getBool("TEST_BOOL_BAD", true))

	assert.False(t, getBool("TEST_BOOL_UNSET", false))
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "90m")
	assert.Equal(t, 90*time.Minute, getDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL_NEG", "-5m")
	assert.Equal(t, time.Hour, getDuration("TEST_TTL_NEG", time.Hour))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DB_URL", "file.db")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("CORS_ORIGINS", "https://site.example")
	t.Setenv("CORS_STRICT", "1")

	LoadEnv()

	assert.Equal(t, "sqlite", DB_DRIVER)
	assert.Equal(t, "file.db", DB_URL)
	assert.Equal(t, "hunter2", ADMIN_PASSWORD)
	assert.Equal(t, []string{"https://site.example"}, CORS_ORIGINS)
	assert.True(t, CORS_STRICT)
	assert.Equal(t, []string{"CF-Connecting-IP"}, IDENTITY_HEADERS)
	assert.Equal(t, 24*time.Hour, ADMIN_TOKEN_TTL)
}
