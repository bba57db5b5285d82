package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "academy_session", cfg.Session.CookieName)
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	t.Setenv("ENV", EnvProduction)

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_COOKIE_SECRET")
}

func TestLoadAcceptsRealSecretInProduction(t *testing.T) {
	t.Setenv("ENV", EnvProduction)
	t.Setenv("SESSION_COOKIE_SECRET", "f1c5d8e2a94b47c0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "f1c5d8e2a94b47c0", cfg.Session.CookieSecret)
}
