package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, "stiven", cfg.Auth.Username)
	assert.Equal(t, "Jhojan Mosquera", cfg.Auth.DisplayName)
	assert.Equal(t, 480, cfg.Auth.SessionTTLMinutes)
	assert.False(t, cfg.Mailer.Enabled)
	assert.Equal(t, 587, cfg.Mailer.SMTPPort)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[server]
http_port = 9000

[database]
host = "db.internal"
port = 5433
user = "svc"
password = "secret"
dbname = "booking"

[metrics]
enabled = true
`))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=secret dbname=booking sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_InvalidPort(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nhttp_port = -1\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
