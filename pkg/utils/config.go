package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Security SecurityConfig
	Kafka    KafkaConfig
}

type AppConfig struct {
	Name      string
	Port      string
	Debug     bool
	LogPath   string
	PublicURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SecurityConfig struct {
	BcryptCost int
}

// KafkaConfig leaves Brokers empty when order events are disabled.
type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "restaurant-ops")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("PUBLIC_URL", "http://localhost:3000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_ORDER_TOPIC", "restaurant.orders")

	// .env is optional, the process environment is enough in containers
	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      v.GetString("APP_NAME"),
			Port:      v.GetString("PORT"),
			Debug:     v.GetBool("DEBUG"),
			LogPath:   v.GetString("LOG_PATH"),
			PublicURL: strings.TrimRight(v.GetString("PUBLIC_URL"), "/"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("KAFKA_BROKERS")),
			OrderTopic: v.GetString("KAFKA_ORDER_TOPIC"),
		},
	}

	return config, nil
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
