package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, int64(10<<20), cfg.Server.BodyLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.CORS.AllowOrigins)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, StoreMySQL, cfg.Store.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "ugcc_app", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "development")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_NodeEnvSetsMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Server.IsDevelopment())
}

func TestLoad_AppEnvOverridesNodeEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("NODE_ENV", "development")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.False(t, cfg.Server.IsDevelopment())
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UGCC_SERVER_PORT", "9090")
	t.Setenv("UGCC_AUTH_BCRYPT_COST", "12")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := strings.Join([]string{
		"server:",
		"  port: 7000",
		"  cors:",
		"    allow_origins: [\"http://localhost:3000\"]",
		"store:",
		"  driver: memory",
		"log:",
		"  format: console",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORS.AllowOrigins)
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad driver", map[string]string{"STORE_DRIVER": "sqlite"}},
		{"bad port", map[string]string{"PORT": "70000"}},
		{"bad cost", map[string]string{"UGCC_AUTH_BCRYPT_COST": "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 3307, Name: "ugcc_app", User: "root", Password: "pw"}
	dsn := c.DSN()

	assert.True(t, strings.HasPrefix(dsn, "root:pw@tcp(db:3307)/ugcc_app?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}
