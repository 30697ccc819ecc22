package config_test

import (
	"testing"
	"time"

	"assuredgig/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x?sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/x?sslmode=disable", cfg.DB.DSN())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiration)
	assert.False(t, cfg.Payments.StripeEnabled())
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_RazorpayNeedsWebhookSecret(t *testing.T) {
	cfg := &config.Config{
		DB:    config.DBConfig{Host: "localhost", Name: "db"},
		Redis: config.RedisConfig{Addr: "localhost:6379"},
		JWT:   config.JWTConfig{Secret: "s", Expiration: time.Minute, RefreshDuration: time.Hour},
		Payments: config.PaymentsConfig{
			RazorpayKeyID:     "rzp_test",
			RazorpayKeySecret: "secret",
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RAZORPAY_WEBHOOK_SECRET")

	cfg.Payments.RazorpayWebhookSecret = "whsec"
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", c.DSN())
}
