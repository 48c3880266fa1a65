// Package config загружает настройки сервера и клиента из YAML файла,
// переменных окружения GOPHCAL_* и флагов командной строки.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения: server.addr -> GOPHCAL_SERVER_ADDR
const EnvPrefix = "GOPHCAL"

var (
	// ErrMissingSecret не задан секрет подписи токенов
	ErrMissingSecret = errors.New("jwt secret is required")
	// ErrInvalidLogLevel неизвестный уровень логирования
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Server настройки backend сервера
type Server struct {
	Log       Log           `mapstructure:"log"`
	Server    HTTP          `mapstructure:"server"`
	Database  Database      `mapstructure:"database"`
	Kakao     KakaoAPI      `mapstructure:"kakao"`
	JWT       JWT           `mapstructure:"jwt"`
	RateLimit RateLimit     `mapstructure:"rate_limit"`
	Cleanup   time.Duration `mapstructure:"token_cleanup_interval"`
}

// HTTP адрес и таймауты HTTP сервера
type HTTP struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Database путь к SQLite
type Database struct {
	Path string `mapstructure:"path"`
}

// JWT параметры выпуска токенов
type JWT struct {
	Secret          string        `mapstructure:"secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	RefreshTokenTTL time.Duration `mapstructure:"refresh_token_ttl"`
	CustomTokenTTL  time.Duration `mapstructure:"custom_token_ttl"`
}

// KakaoAPI адрес Kakao user API
type KakaoAPI struct {
	APIURL string `mapstructure:"api_url"`
}

// RateLimit лимиты запросов в минуту с одного IP
type RateLimit struct {
	PerMinute     int `mapstructure:"per_minute"`
	AuthPerMinute int `mapstructure:"auth_per_minute"`
}

// Log настройки логирования
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text | json
}

// Client настройки CLI клиента
type Client struct {
	Log       Log         `mapstructure:"log"`
	ServerURL string      `mapstructure:"server_url"`
	DataDir   string      `mapstructure:"data_dir"`
	Kakao     KakaoOAuth  `mapstructure:"kakao"`
	Cache     ClientCache `mapstructure:"cache"`
	Session   Session     `mapstructure:"session"`

	// MetricsAddr адрес /metrics кэша; пустая строка отключает экспорт
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// KakaoOAuth OAuth приложение Kakao для входа из терминала
type KakaoOAuth struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
	APIURL       string `mapstructure:"api_url"`
}

// ClientCache параметры кеша событий
type ClientCache struct {
	PreloadRadius     int           `mapstructure:"preload_radius"`
	BackgroundTimeout time.Duration `mapstructure:"background_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	WatchInterval     time.Duration `mapstructure:"watch_interval"` // период перезагрузки месяца в watch
}

// Session параметры менеджера сессий
type Session struct {
	TokenRefreshInterval time.Duration `mapstructure:"token_refresh_interval"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
}

// DatabasePath файл BoltDB клиента
func (c *Client) DatabasePath() string {
	return filepath.Join(c.DataDir, "gophcal.db")
}

// DeviceSecretPath файл с секретом устройства, из которого выводится ключ хранилища
func (c *Client) DeviceSecretPath() string {
	return filepath.Join(c.DataDir, "device.key")
}

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.path", "gophcal.db")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.access_token_ttl", 15*time.Minute)
	v.SetDefault("jwt.refresh_token_ttl", 30*24*time.Hour)
	v.SetDefault("jwt.custom_token_ttl", 10*time.Minute)
	v.SetDefault("kakao.api_url", "https://kapi.kakao.com")
	v.SetDefault("rate_limit.per_minute", 120)
	v.SetDefault("rate_limit.auth_per_minute", 10)
	v.SetDefault("token_cleanup_interval", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func setClientDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("data_dir", defaultDataDir())
	v.SetDefault("kakao.client_id", "")
	v.SetDefault("kakao.client_secret", "")
	v.SetDefault("kakao.redirect_url", "http://localhost:8080/oauth/kakao")
	v.SetDefault("kakao.api_url", "https://kapi.kakao.com")
	v.SetDefault("cache.preload_radius", 2)
	v.SetDefault("cache.background_timeout", 15*time.Second)
	v.SetDefault("cache.write_timeout", 10*time.Second)
	v.SetDefault("cache.watch_interval", time.Minute)
	v.SetDefault("session.token_refresh_interval", 30*time.Minute)
	v.SetDefault("session.poll_interval", 5*time.Second)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// LoadServer читает конфигурацию сервера.
// Порядок приоритета: флаги (привязанные к v) > окружение > файл > значения по умолчанию.
func LoadServer(v *viper.Viper, configFile string) (*Server, error) {
	setServerDefaults(v)
	if err := read(v, configFile, "server"); err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode server config: %w", err)
	}

	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, ErrMissingSecret
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient читает конфигурацию клиента
func LoadClient(v *viper.Viper, configFile string) (*Client, error) {
	setClientDefaults(v)
	if err := read(v, configFile, "client"); err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode client config: %w", err)
	}

	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}
	cfg.ServerURL = strings.TrimRight(cfg.ServerURL, "/")
	return &cfg, nil
}

// read подключает окружение и файл конфигурации.
// Явно указанный файл обязан существовать, файл по умолчанию необязателен.
func read(v *viper.Viper, configFile, name string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		return nil
	}

	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "gophcal"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".gophcal"
	}
	return filepath.Join(dir, "gophcal")
}

// ParseLevel переводит строку в уровень slog
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
	return l, nil
}

// NewLogger создает slog логгер по настройкам
func NewLogger(w io.Writer, cfg Log) *slog.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
