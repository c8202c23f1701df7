package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"PORT", "DB_PORT", "DB_MAX_CONNS", "BCRYPT_COST", "CORS_ALLOWED_ORIGINS", "KAFKA_BROKERS", "KAFKA_ORDER_TOPIC"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, 10, config.Security.BcryptCost)
	assert.Equal(t, []string{"*"}, config.CORS.AllowedOrigins)
	assert.Empty(t, config.Kafka.Brokers)
	assert.Equal(t, "restaurant.orders", config.Kafka.OrderTopic)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("PUBLIC_URL", "https://menu.example.com/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("BCRYPT_COST", "12")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "https://menu.example.com", config.App.PublicURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, config.CORS.AllowedOrigins)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.Kafka.Brokers)
	assert.Equal(t, 12, config.Security.BcryptCost)
}
