package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := Load()

	require.NotNil(t, c)
	assert.Equal(t, c.Port, "8080")
	assert.Equal(t, c.DBHost, "127.0.0.1")
	assert.Equal(t, c.DBPort, "3306")
	assert.Equal(t, c.DBUser, "root")
	assert.Equal(t, c.DBName, "planets")
	assert.Equal(t, c.RedisAddr, "localhost:6379")
	assert.Equal(t, c.JWTSecret, "secret")
	assert.Equal(t, c.SMTPPort, "25")
	assert.False(t, c.SeedDB)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASS", "hunter2")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("SEED_DB", "true")

	c := Load()

	assert.Equal(t, c.Port, "9090")
	assert.Equal(t, c.DBHost, "db.internal")
	assert.Equal(t, c.JWTSecret, "prod-secret")
	assert.True(t, c.SeedDB)
	assert.Equal(t, "root:hunter2@tcp(db.internal:3306)/planets?parseTime=true", c.DSN())
}

func TestNewKafkaWriterDisabledWithoutBrokers(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	assert.Nil(t, NewKafkaWriter("catalog-topic"))
}

func TestNewKafkaWriter(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "localhost:9092,localhost:9093")

	w := NewKafkaWriter("catalog-topic")
	require.NotNil(t, w)
	assert.Equal(t, "catalog-topic", w.Topic)
}
