package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDefaults(t *testing.T) {
	t.Setenv("PAINEL_TEST_SET", "valor")

	assert.Equal(t, "valor", GetEnv("PAINEL_TEST_SET", "x"))
	assert.Equal(t, "x", GetEnv("PAINEL_TEST_UNSET", "x"))
	assert.Equal(t, "", GetEnv("PAINEL_TEST_UNSET"))
}

func TestGetEnvIntAndBool(t *testing.T) {
	t.Setenv("PAINEL_INT", "42")
	t.Setenv("PAINEL_INT_BAD", "abc")
	t.Setenv("PAINEL_BOOL", "false")

	assert.Equal(t, 42, GetEnvInt("PAINEL_INT", 1))
	assert.Equal(t, 7, GetEnvInt("PAINEL_INT_BAD", 7))
	assert.Equal(t, 3, GetEnvInt("PAINEL_INT_MISSING", 3))
	assert.False(t, GetEnvBool("PAINEL_BOOL", true))
	assert.True(t, GetEnvBool("PAINEL_BOOL_MISSING", true))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("PAINEL_LIST", " a.com , ,b.com")
	assert.Equal(t, []string{"a.com", "b.com"}, GetEnvList("PAINEL_LIST"))
	assert.Equal(t, []string{"d"}, GetEnvList("PAINEL_LIST_MISSING", "d"))
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "u")
	t.Setenv("DB_PASSWORD", "p")
	t.Setenv("DB_HOST", "h")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_NAME", "n")
	t.Setenv("DB_SSLMODE", "disable")

	dsn := PostgresDSN()
	assert.Contains(t, dsn, "postgres://u:p@h:6543/n?sslmode=disable")

	t.Setenv("DATABASE_URL", "postgres://direct")
	assert.Equal(t, "postgres://direct", PostgresDSN())
}
