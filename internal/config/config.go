package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port               int      `mapstructure:"port"`
		CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	} `mapstructure:"server"`

	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`

	JWT struct {
		Secret          string `mapstructure:"secret"`
		ExpirationHours int    `mapstructure:"expiration_hours"`
	} `mapstructure:"jwt"`

	Geolocation struct {
		IPAPIBaseURL   string `mapstructure:"ipapi_base_url"`
		IPInfoBaseURL  string `mapstructure:"ipinfo_base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"geolocation"`

	Queue struct {
		AMQPURL string `mapstructure:"amqp_url"` // empty disables follow-up reminders
	} `mapstructure:"queue"`

	Mail struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		To       string `mapstructure:"to"` // reminder inbox
	} `mapstructure:"mail"`
}

func Load() *Config {
	// .env is optional; in production everything comes from the environment.
	godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile("configs/config.yaml")
	v.AutomaticEnv()

	// Defaults so the binary runs without a config file.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("jwt.expiration_hours", 24)
	v.SetDefault("geolocation.ipapi_base_url", "http://ip-api.com")
	v.SetDefault("geolocation.ipinfo_base_url", "https://ipinfo.io")
	v.SetDefault("geolocation.timeout_seconds", 3)
	v.SetDefault("mail.port", 587)

	if err := v.ReadInConfig(); err != nil {
		log.Printf("[Config] no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("config unmarshal error: %v", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	}
	if cfg.Queue.AMQPURL == "" {
		cfg.Queue.AMQPURL = os.Getenv("AMQP_URL")
	}

	return &cfg
}
