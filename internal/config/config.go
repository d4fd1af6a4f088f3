package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	JWT       JWTConfig
	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Quiz      QuizConfig
	CacheTTLs CacheTTLConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// GeminiConfig configures the question source. An empty APIKey disables AI generation.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type QuizConfig struct {
	DefaultCount int
	MaxCount     int
}

type CacheTTLConfig struct {
	Resume time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("db.driver", "oracle")
	v.SetDefault("db.port", 1521)
	v.SetDefault("redis.db", 0)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("jwt.token_ttl", "168h")
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("quiz.default_count", 10)
	v.SetDefault("quiz.max_count", 50)
	v.SetDefault("cache_ttls.resume", "24h")
}

// LoadConfig reads config.yaml (optional) and applies APP_ prefixed environment overrides.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	applyLegacyEnv(cfg)
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		DB: DBConfig{
			Driver:   v.GetString("db.driver"),
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			DBName:   v.GetString("db.name"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		JWT: JWTConfig{
			Secret:   v.GetString("jwt.secret"),
			TokenTTL: v.GetDuration("jwt.token_ttl"),
		},
		Gemini: GeminiConfig{
			APIKey:  v.GetString("gemini.api_key"),
			BaseURL: v.GetString("gemini.base_url"),
			Timeout: v.GetDuration("gemini.timeout"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  v.GetString("openai.api_key"),
			Model:   v.GetString("openai.model"),
			BaseURL: v.GetString("openai.base_url"),
		},
		Quiz: QuizConfig{
			DefaultCount: v.GetInt("quiz.default_count"),
			MaxCount:     v.GetInt("quiz.max_count"),
		},
		CacheTTLs: CacheTTLConfig{
			Resume: v.GetDuration("cache_ttls.resume"),
		},
	}
}

// applyLegacyEnv honours the unprefixed variable names used by existing deployments.
// They only fill values that are still empty.
func applyLegacyEnv(cfg *Config) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" && cfg.Gemini.APIKey == "" {
		cfg.Gemini.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = key
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" && cfg.JWT.Secret == "" {
		cfg.JWT.Secret = secret
	}
	if port := os.Getenv("PORT"); port != "" && os.Getenv("APP_SERVER_PORT") == "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
}

// GetDSN builds the go-ora connection URL.
func (c *Config) GetDSN() string {
	u := url.URL{
		Scheme: "oracle",
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Host:   fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:   "/" + c.DB.DBName,
	}
	return u.String()
}

// GetGodrorDSN builds the godror connect string (user="..." password="..." connectString="host:port/service").
func (c *Config) GetGodrorDSN() string {
	return fmt.Sprintf(`user=%q password=%q connectString="%s:%d/%s"`,
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
