package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Unsplash      UnsplashConfig      `mapstructure:"unsplash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Session       SessionConfig       `mapstructure:"session"`
	MinIO         MinIOConfig         `mapstructure:"minio"`
	Kafka         KafkaConfig         `mapstructure:"kafka"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Log           LogConfig           `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
}

// UnsplashConfig 上游图片 API 配置
type UnsplashConfig struct {
	BaseURL     string          `mapstructure:"base_url"`
	OAuthURL    string          `mapstructure:"oauth_url"`
	AccessKey   string          `mapstructure:"access_key"`
	SecretKey   string          `mapstructure:"secret_key"`
	RedirectURI string          `mapstructure:"redirect_uri"`
	PerPage     int             `mapstructure:"per_page"`
	Timeout     int             `mapstructure:"timeout"` // 秒
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

// TimeoutDuration 返回统一的连接/读写超时
func (u *UnsplashConfig) TimeoutDuration() time.Duration {
	return time.Duration(u.Timeout) * time.Second
}

// RateLimitConfig 客户端限流配置，RequestsPerHour 为 0 表示不限流
type RateLimitConfig struct {
	RequestsPerHour int `mapstructure:"requests_per_hour"`
	Burst           int `mapstructure:"burst"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // postgres | sqlite
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	Path            string `mapstructure:"path"` // sqlite 文件路径
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 秒
}

// DSN 返回连接字符串
func (d *DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回Redis地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// SessionConfig 登录态存储配置
type SessionConfig struct {
	Backend string `mapstructure:"backend"` // redis | memory
	Key     string `mapstructure:"key"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Bucket    string `mapstructure:"bucket"`
}

// KafkaConfig Kafka配置
type KafkaConfig struct {
	Brokers []string          `mapstructure:"brokers"`
	Topics  map[string]string `mapstructure:"topics"`
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	Hosts []string          `mapstructure:"hosts"`
	Index map[string]string `mapstructure:"index"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

var globalConfig *Config

// Load 加载配置文件，环境变量优先（如 UNSPLASH_ACCESS_KEY 覆盖 unsplash.access_key）
func Load(configPath string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalConfig = &cfg
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "splash-go")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 8000)
	v.SetDefault("unsplash.base_url", "https://api.unsplash.com")
	v.SetDefault("unsplash.oauth_url", "https://unsplash.com/oauth")
	v.SetDefault("unsplash.per_page", 30)
	v.SetDefault("unsplash.timeout", 30)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "splash.db")
	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.key", "splash:session")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
}

// Validate 校验必填项
func (c *Config) Validate() error {
	if c.Unsplash.AccessKey == "" {
		return errors.New("unsplash.access_key is required")
	}
	if c.Unsplash.PerPage < 1 || c.Unsplash.PerPage > 30 {
		return errors.New("unsplash.per_page must be between 1 and 30")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Session.Backend {
	case "redis", "memory":
	default:
		return fmt.Errorf("unsupported session backend %q", c.Session.Backend)
	}
	return nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}
