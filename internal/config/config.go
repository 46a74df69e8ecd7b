package config

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const devJWTSecret = "photoshare_dev_secret"

var (
	// appConfig holds *Config; reads are lock free.
	appConfig atomic.Value
	configMu  sync.Mutex
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Media     MediaConfig     `mapstructure:"media"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Docs      DocsConfig      `mapstructure:"docs"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // sqlite only
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      bool   `mapstructure:"ssl"`
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

// MediaConfig describes the remote media provider account and the logical
// folder every asset key is prefixed with.
type MediaConfig struct {
	CloudName      string `mapstructure:"cloud_name"`
	APIKey         string `mapstructure:"api_key"`
	APISecret      string `mapstructure:"api_secret"`
	Folder         string `mapstructure:"folder"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

func (m MediaConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled            bool `mapstructure:"enabled"`
	ImagesPerMinute    int  `mapstructure:"images_per_minute"`
	SensitivePerMinute int  `mapstructure:"sensitive_per_minute"`
}

type UploadConfig struct {
	MaxSizeMB int `mapstructure:"max_size_mb"`
}

type DocsConfig struct {
	Path string `mapstructure:"path"`
}

// Get returns a snapshot of the current configuration.
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

// InitConfig loads config.yaml from customConfigDir (or ./config) and applies
// PHOTOSHARE_* environment overrides.
func InitConfig(customConfigDir string) error {
	v, err := initViper(customConfigDir)
	if err != nil {
		return err
	}
	if err := loadAndStore(v); err != nil {
		return err
	}
	if err := enforceJWTSecretSafety(); err != nil {
		return err
	}
	logger.L.Info("config loaded", zap.String("dir", configDir))
	return nil
}

func initViper(customConfigDir string) (*viper.Viper, error) {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/photoshare.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "photoshare")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("media.cloud_name", "")
	v.SetDefault("media.api_key", "")
	v.SetDefault("media.api_secret", "")
	v.SetDefault("media.folder", "photoshare/")
	v.SetDefault("media.timeout_seconds", 15)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "photoshare")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.images_per_minute", 10)
	v.SetDefault("rate_limit.sensitive_per_minute", 2)
	v.SetDefault("upload.max_size_mb", 10)
	v.SetDefault("docs.path", "docs/build/html")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
		logger.L.Warn("config file not found, using environment and defaults")
	}

	// server.port -> PHOTOSHARE_SERVER_PORT
	v.SetEnvPrefix("PHOTOSHARE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v, nil
}

func loadAndStore(v *viper.Viper) error {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		return err
	}

	if tempConfig.Server.Mode != "release" && tempConfig.JWT.Secret == "" {
		logger.L.Warn("jwt secret not set, using development secret")
		tempConfig.JWT.Secret = devJWTSecret
	}

	appConfig.Store(&tempConfig)
	return nil
}

func enforceJWTSecretSafety() error {
	curr := Get()
	if curr.Server.Mode == "release" && (curr.JWT.Secret == "" || curr.JWT.Secret == devJWTSecret) {
		return errors.New("release mode requires a non-default jwt secret (PHOTOSHARE_JWT_SECRET)")
	}
	return nil
}

// Set replaces the active configuration. Tests use it to avoid touching the
// filesystem.
func Set(c Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&c)
}
