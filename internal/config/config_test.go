package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadServer_FileAndDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
database:
  path: /var/lib/gophcal/data.db
jwt:
  secret: file-secret
  access_token_ttl: 5m
rate_limit:
  auth_per_minute: 3
log:
  level: debug
  format: json
`)

	cfg, err := LoadServer(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/gophcal/data.db", cfg.Database.Path)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, 5*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 3, cfg.RateLimit.AuthPerMinute)
	assert.Equal(t, "debug", cfg.Log.Level)

	// значения по умолчанию
	assert.Equal(t, 30*24*time.Hour, cfg.JWT.RefreshTokenTTL)
	assert.Equal(t, 10*time.Minute, cfg.JWT.CustomTokenTTL)
	assert.Equal(t, 120, cfg.RateLimit.PerMinute)
	assert.Equal(t, "https://kapi.kakao.com", cfg.Kakao.APIURL)
	assert.Equal(t, time.Hour, cfg.Cleanup)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadServer_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "jwt:\n  secret: file-secret\nserver:\n  addr: \":9090\"\n")
	t.Setenv("GOPHCAL_JWT_SECRET", "env-secret")
	t.Setenv("GOPHCAL_SERVER_ADDR", ":7070")

	cfg, err := LoadServer(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadServer_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := LoadServer(viper.New(), "")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("explicit file does not exist", func(t *testing.T) {
		_, err := LoadServer(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfig(t, "jwt:\n  secret: s\nlog:\n  level: loud\n")
		_, err := LoadServer(viper.New(), path)
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("broken yaml", func(t *testing.T) {
		path := writeConfig(t, "jwt: [unclosed\n")
		_, err := LoadServer(viper.New(), path)
		assert.Error(t, err)
	})
}

func TestLoadClient(t *testing.T) {
	path := writeConfig(t, `
server_url: "https://cal.example.com/"
data_dir: /tmp/gophcal-test
kakao:
  client_id: abc
cache:
  preload_radius: 3
`)
	t.Setenv("GOPHCAL_SESSION_POLL_INTERVAL", "250ms")

	cfg, err := LoadClient(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "https://cal.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/gophcal-test", cfg.DataDir)
	assert.Equal(t, filepath.Join("/tmp/gophcal-test", "gophcal.db"), cfg.DatabasePath())
	assert.Equal(t, "abc", cfg.Kakao.ClientID)
	assert.Equal(t, 3, cfg.Cache.PreloadRadius)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.PollInterval)
	assert.Equal(t, 30*time.Minute, cfg.Session.TokenRefreshInterval)
	assert.Equal(t, time.Minute, cfg.Cache.WatchInterval)
	assert.Equal(t, filepath.Join("/tmp/gophcal-test", "device.key"), cfg.DeviceSecretPath())
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadClient_FlagBinding(t *testing.T) {
	t.Chdir(t.TempDir())
	v := viper.New()
	v.Set("server_url", "http://flag.example:1234")
	v.Set("metrics_addr", "127.0.0.1:9464")

	cfg, err := LoadClient(v, "")
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example:1234", cfg.ServerURL)
	assert.Equal(t, "127.0.0.1:9464", cfg.MetricsAddr)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLogLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(&buf, Log{Level: "warn", Format: "json"})
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"key":"value"`)

	buf.Reset()
	NewLogger(&buf, Log{Level: "bogus"}).Info("text format")
	assert.Contains(t, buf.String(), "msg=\"text format\"")
}
