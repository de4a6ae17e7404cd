package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStaticDir(t *testing.T) {
	t.Helper()
	t.Setenv("STATIC_DIR", t.TempDir())
}

func TestLoadConfig_Defaults(t *testing.T) {
	setStaticDir(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	setStaticDir(t)
	t.Setenv("PORT", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_PrivilegedPortRejected(t *testing.T) {
	setStaticDir(t)
	t.Setenv("PORT", "80")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_OriginsParsed(t *testing.T) {
	setStaticDir(t)
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , https://b.example ,, ")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_MissingStaticDir(t *testing.T) {
	t.Setenv("STATIC_DIR", "/definitely/not/a/real/dir")

	_, err := LoadConfig()
	assert.Error(t, err)
}
