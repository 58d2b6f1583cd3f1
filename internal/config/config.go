package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type IdentityConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	SessionKey string `yaml:"session_key"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Identity IdentityConfig `yaml:"identity"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Redis    RedisConfig    `yaml:"redis"`
}

type Config struct {
	Port            string
	GinMode         string
	IdentityBaseURL string
	IdentityAPIKey  string
	IdentityTimeout time.Duration
	MongoURI        string
	MongoDatabase   string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	SessionKey      string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads config/config.yml and applies environment overrides. The
// API key and connection strings are the values most often supplied via
// the environment.
func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	timeout, err := time.ParseDuration(configFile.Identity.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid identity timeout: %w", err)
	}

	return &Config{
		Port:            env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:         env("GIN_MODE", configFile.App.GinMode),
		IdentityBaseURL: env("IDENTITY_BASE_URL", configFile.Identity.BaseURL),
		IdentityAPIKey:  env("IDENTITY_API_KEY", configFile.Identity.APIKey),
		IdentityTimeout: timeout,
		MongoURI:        env("MONGODB_URI", configFile.Mongo.URI),
		MongoDatabase:   env("MONGODB_DATABASE", configFile.Mongo.Database),
		RedisAddr:       env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:         envInt("REDIS_DB", configFile.Redis.DB),
		SessionKey:      env("SESSION_KEY", configFile.Redis.SessionKey),
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
