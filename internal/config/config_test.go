package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "testdb", cfg.Database.Name)
				assert.Equal(t, "testuser", cfg.Database.User)
			},
		},
		{
			name: "defaults applied for optional fields",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "shopee", cfg.Imports.DefaultPlatform)
				assert.Equal(t, 50000, cfg.Imports.MaxRows)
				assert.Equal(t, 10*time.Minute, cfg.Schedule.ScanInterval)
				assert.Equal(t, 30*time.Second, cfg.Schedule.StaggerOffset)
				assert.Equal(t, 1.0, cfg.Notifications.Webhook.PerSecond)
				assert.Equal(t, 3, cfg.Notifications.Webhook.Burst)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
  password: "${TEST_DB_PASSWORD}"
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "secret123",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "secret123", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: testdb
  user: testuser
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: testuser
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: testdb
`,
			wantErr: "database.user is required",
		},
		{
			name: "invalid default platform",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
imports:
  default_platform: amazon
`,
			wantErr: `imports.default_platform must be one of: shopee, tiktok (got "amazon")`,
		},
		{
			name: "webhook enabled without url",
			yaml: `
database:
  host: localhost
  name: testdb
  user: testuser
notifications:
  webhook:
    enabled: true
`,
			wantErr: "notifications.webhook.url is required when enabled",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: stocksync_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
imports:
  watch_dir: /srv/exports
  default_platform: tiktok
  max_rows: 10000
schedule:
  scan_interval: 5m
  stagger_offset: 1m
notifications:
  webhook:
    enabled: true
    url: https://hooks.example.com/stocksync
    headers:
      Authorization: Bearer abc
    per_second: 2
    burst: 5
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "/srv/exports", cfg.Imports.WatchDir)
				assert.Equal(t, "tiktok", cfg.Imports.DefaultPlatform)
				assert.Equal(t, 10000, cfg.Imports.MaxRows)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.ScanInterval)
				assert.True(t, cfg.Notifications.Webhook.Enabled)
				assert.Equal(t, "https://hooks.example.com/stocksync", cfg.Notifications.Webhook.URL)
				assert.Equal(t, "Bearer abc", cfg.Notifications.Webhook.Headers["Authorization"])
				assert.Equal(t, 2.0, cfg.Notifications.Webhook.PerSecond)
				assert.Equal(t, 5, cfg.Notifications.Webhook.Burst)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Name:     "stocksync",
		User:     "stocksync",
		Password: "testpass",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 dbname=stocksync user=stocksync password=testpass sslmode=disable",
		cfg.DSN(),
	)
}
