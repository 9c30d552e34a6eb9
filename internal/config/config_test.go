// AngelaMos | 2026
// config_test.go

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:      AppConfig{Environment: "development"},
		Server:   ServerConfig{ReadTimeout: time.Second, WriteTimeout: time.Second},
		Database: DatabaseConfig{URL: "postgres://localhost/store"},
		Redis:    RedisConfig{URL: "redis://localhost:6379/0"},
		JWT: JWTConfig{
			Secret:            strings.Repeat("s", minJWTSecretLength),
			AccessTokenExpire: 24 * time.Hour,
		},
		Payment:   PaymentConfig{Timeout: 10 * time.Second},
		Bootstrap: BootstrapConfig{AdminPassword: DefaultAdminPassword},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: "DATABASE_URL",
		},
		{
			name:    "short jwt secret",
			mutate:  func(c *Config) { c.JWT.Secret = "short" },
			wantErr: "JWT_SECRET",
		},
		{
			name: "cors wildcard with credentials",
			mutate: func(c *Config) {
				c.CORS.AllowCredentials = true
				c.CORS.AllowedOrigins = []string{"*"}
			},
			wantErr: "wildcard",
		},
		{
			name:    "kafka without brokers",
			mutate:  func(c *Config) { c.Kafka.Enabled = true },
			wantErr: "KAFKA_BROKERS",
		},
		{
			name:    "default admin password in production",
			mutate:  func(c *Config) { c.App.Environment = "production" },
			wantErr: "ADMIN_PASSWORD",
		},
		{
			name:    "non-positive payment timeout",
			mutate:  func(c *Config) { c.Payment.Timeout = 0 },
			wantErr: "payment.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)

			err := validate(c)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvValue(t *testing.T) {
	key, value := envValue("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	assert.Equal(t, "kafka.brokers", key)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, value)

	key, value = envValue("RAZORPAY_KEY_ID", "rzp_test_123")
	assert.Equal(t, "payment.key_id", key)
	assert.Equal(t, "rzp_test_123", value)

	key, value = envValue("REDIS_OP_TIMEOUT", "250ms")
	assert.Equal(t, "redis.op_timeout", key)
	assert.Equal(t, "250ms", value)

	key, _ = envValue("UNRELATED", "x")
	assert.Empty(t, key)
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8001}
	assert.Equal(t, "0.0.0.0:8001", s.Address())
}
