package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	LogFormat   string
	CORSOrigins []string

	Redis   RedisConfig
	MinIO   MinIOConfig
	Coach   CoachConfig
	Fitness FitnessConfig
}

type RedisConfig struct {
	Host       string
	Port       int
	Password   string
	DB         int
	MetricsTTL time.Duration
}

type MinIOConfig struct {
	Host       string
	Port       string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PublicBase string
}

type CoachConfig struct {
	APIKey      string
	Endpoint    string
	Model       string
	Temperature float64
	TopK        int
	TopP        float64
	MaxTokens   int
	Timeout     time.Duration
}

type FitnessConfig struct {
	Days    int
	Timeout time.Duration
}

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		v.AddConfigPath(p)
	}
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Warn("config file not found, using defaults")
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)

	log.Info("config parsed")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 5002)
	v.SetDefault("LogFormat", "text")
	v.SetDefault("CORSOrigins", []string{"http://localhost:5173", "http://localhost:5174"})

	v.SetDefault("Redis.Host", "127.0.0.1")
	v.SetDefault("Redis.Port", 6379)
	v.SetDefault("Redis.MetricsTTL", "10m")

	v.SetDefault("MinIO.Host", "127.0.0.1")
	v.SetDefault("MinIO.Port", "9000")
	v.SetDefault("MinIO.Bucket", "medications")

	v.SetDefault("Coach.Endpoint", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("Coach.Model", "gemini-pro")
	v.SetDefault("Coach.Temperature", 0.7)
	v.SetDefault("Coach.TopK", 40)
	v.SetDefault("Coach.TopP", 0.95)
	v.SetDefault("Coach.MaxTokens", 1024)
	v.SetDefault("Coach.Timeout", "30s")

	v.SetDefault("Fitness.Days", 7)
	v.SetDefault("Fitness.Timeout", "15s")
}

// applyEnv переопределяет секреты и адреса из окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.ServicePort = port
		}
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Redis.Port = port
		}
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}

	// MinIO configuration from environment
	if v := os.Getenv("MINIO_HOST"); v != "" {
		cfg.MinIO.Host = v
	}
	if v := os.Getenv("MINIO_PORT"); v != "" {
		cfg.MinIO.Port = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinIO.AccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinIO.SecretKey = v
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Coach.APIKey = v
	}
}
