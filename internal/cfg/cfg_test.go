package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/foodie-cart/pkg/e"
	"github.com/DRSN-tech/foodie-cart/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("MINIO_ENDPOINT", "")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, StoreDriverSQLite, c.Store.Driver)
	assert.Equal(t, "foodie", c.Store.Namespace)
	assert.Equal(t, "foodie.db", c.Store.SQLitePath)
	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, "localhost:6379", c.Redis.Addr)
	assert.Equal(t, 3*time.Second, c.Redis.Timeout)
	assert.Nil(t, c.Db)
	assert.Nil(t, c.Kafka)
	assert.Nil(t, c.Minio)
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "localstorage")

	_, err := Load(logger.NewNopLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUnknownStoreDriver)
}

func TestLoad_PostgresRequiresCredentials(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("POSTGRES_USER", "")

	_, err := Load(logger.NewNopLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_USER")
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_USER", "foodie")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "foodie")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)
	require.NotNil(t, c.Db)
	assert.Equal(t, StoreDriverPostgres, c.Store.Driver)
	assert.Equal(t, "localhost", c.Db.Host)
	assert.Equal(t, "disable", c.Db.SSLMode)
}

func TestLoad_OptionalIntegrations(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("KAFKA_TOPIC", "orders")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_USE_SSL", "true")

	c, err := Load(logger.NewNopLogger())
	require.NoError(t, err)

	require.NotNil(t, c.Kafka)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, "orders", c.Kafka.Topic)
	assert.Equal(t, 3, c.Kafka.MaxRetries)

	require.NotNil(t, c.Minio)
	assert.Equal(t, "receipts", c.Minio.BucketName)
	assert.True(t, c.Minio.UseSSL)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"HTTP_READ_TIMEOUT": "fast",
		"REDIS_DB_ID":       "first",
		"MINIO_USE_SSL":     "maybe",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("MINIO_ENDPOINT", "minio:9000")
			t.Setenv(key, value)

			_, err := Load(logger.NewNopLogger())
			assert.Error(t, err)
		})
	}
}
