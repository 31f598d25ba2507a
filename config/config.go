package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string        `mapstructure:"port"`
	Environment      string        `mapstructure:"environment"`
	LogLevel         string        `mapstructure:"log_level"`
	DefaultLanguage  string        `mapstructure:"default_language"`
	SentryDSN        string        `mapstructure:"sentry_dsn"`
	SentrySampleRate float64       `mapstructure:"sentry_sample_rate"`
	MongoURI         string        `mapstructure:"mongo_uri"`
	Database         string        `mapstructure:"database"`
	EnquiryColl      string        `mapstructure:"enquiry_collection"`
	KafkaServers     string        `mapstructure:"kafka_bootstrapservers"`
	KafkaTopic       string        `mapstructure:"kafka_topic"`
	RabbitServer     string        `mapstructure:"rabbitmq_server"`
	RabbitPort       string        `mapstructure:"rabbitmq_port"`
	RabbitUser       string        `mapstructure:"rabbitmq_user"`
	RabbitPass       string        `mapstructure:"rabbitmq_pass"`
	RabbitQueue      string        `mapstructure:"rabbitmq_queue"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	SessionTTL       time.Duration `mapstructure:"session_ttl"`
	CloudinaryURL    string        `mapstructure:"cloudinary_url"`
	AdminToken       string        `mapstructure:"admin_token"`
	RateLimit        int           `mapstructure:"contact_rate_limit"`
	RateWindow       time.Duration `mapstructure:"contact_rate_window"`
}

const (
	DefaultPort       = "4000"
	DefaultLanguage   = "es"
	DefaultSessionTTL = 24 * time.Hour
	DefaultRateLimit  = 5
	DefaultRateWindow = time.Minute
)

var defaults = map[string]interface{}{
	"port":                   DefaultPort,
	"environment":            "development",
	"log_level":              "info",
	"default_language":       DefaultLanguage,
	"sentry_dsn":             "",
	"sentry_sample_rate":     1.0,
	"mongo_uri":              "",
	"database":               "brickscapital",
	"enquiry_collection":     "enquiries",
	"kafka_bootstrapservers": "",
	"kafka_topic":            "site-events",
	"rabbitmq_server":        "",
	"rabbitmq_port":          "5672",
	"rabbitmq_user":          "guest",
	"rabbitmq_pass":          "guest",
	"rabbitmq_queue":         "brickscapital",
	"redis_addr":             "",
	"session_ttl":            DefaultSessionTTL,
	"cloudinary_url":         "",
	"admin_token":            "",
	"contact_rate_limit":     DefaultRateLimit,
	"contact_rate_window":    DefaultRateWindow,
}

// Load reads configuration from the optional file named by CONFIG_FILE and
// from the environment. Environment variables use the upper-cased key names,
// e.g. PORT, MONGO_URI, KAFKA_BOOTSTRAPSERVERS.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_FILE"))
}

func LoadFile(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is empty")
	}
	if c.DefaultLanguage != "es" && c.DefaultLanguage != "en" {
		return fmt.Errorf("unsupported default_language %q", c.DefaultLanguage)
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		return errors.New("sentry_sample_rate must be within [0, 1]")
	}
	if c.SessionTTL <= 0 {
		return errors.New("invalid session_ttl")
	}
	if c.RateLimit <= 0 {
		return errors.New("invalid contact_rate_limit")
	}
	if c.RateWindow <= 0 {
		return errors.New("invalid contact_rate_window")
	}
	if c.MongoURI != "" && c.Database == "" {
		return errors.New("database is required when mongo_uri is set")
	}
	if c.KafkaServers != "" && c.KafkaTopic == "" {
		return errors.New("kafka_topic is required when kafka_bootstrapservers is set")
	}
	return nil
}

// RabbitURL builds the AMQP URL, or "" when RabbitMQ is not configured.
func (c *Config) RabbitURL() string {
	if c.RabbitServer == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.RabbitUser, c.RabbitPass, c.RabbitServer, c.RabbitPort)
}
