package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Payments PaymentsConfig `mapstructure:"payments"`
}

// AppConfig holds environment-wide settings.
type AppConfig struct {
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// IsProduction reports whether internal error detail must be hidden from clients.
func (a AppConfig) IsProduction() bool {
	return strings.EqualFold(a.Env, "production")
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DBConfig holds database specific configuration
type DBConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// DSN returns the connection string, preferring an explicit URL.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type JWTConfig struct {
	Secret          string        `mapstructure:"secret"`
	Expiration      time.Duration `mapstructure:"expiration"`
	RefreshDuration time.Duration `mapstructure:"refresh_duration"`
	CookieSecure    bool          `mapstructure:"cookie_secure"`
}

// CORSConfig holds CORS specific configuration
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// PaymentsConfig holds gateway credentials. A provider is enabled only when its keys are set.
type PaymentsConfig struct {
	Currency              string `mapstructure:"currency"`
	RazorpayKeyID         string `mapstructure:"razorpay_key_id"`
	RazorpayKeySecret     string `mapstructure:"razorpay_key_secret"`
	RazorpayWebhookSecret string `mapstructure:"razorpay_webhook_secret"`
	StripeSecretKey       string `mapstructure:"stripe_secret_key"`
	StripeWebhookSecret   string `mapstructure:"stripe_webhook_secret"`
}

func (p PaymentsConfig) RazorpayEnabled() bool {
	return p.RazorpayKeyID != "" && p.RazorpayKeySecret != ""
}

func (p PaymentsConfig) StripeEnabled() bool {
	return p.StripeSecretKey != "" && p.StripeWebhookSecret != ""
}

// Load configuration from .env, an optional config file and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("Error loading .env file: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/app/config")
	v.AddConfigPath("/app")

	// --- Set Default Values ---
	v.SetDefault("app.env", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "assuredgig")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.expiration", 15*time.Minute)
	v.SetDefault("jwt.refresh_duration", 7*24*time.Hour)
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("payments.currency", "INR")

	// --- Read Config File (Optional) ---
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info("Config file not found, using defaults and environment variables.")
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// --- Bind Environment Variables ---
	v.SetEnvPrefix("API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"env":             cfg.App.Env,
		"port":            cfg.Server.Port,
		"db_host":         cfg.DB.Host,
		"redis":           cfg.Redis.Addr,
		"allowed_origins": cfg.CORS.AllowedOrigins,
		"razorpay":        cfg.Payments.RazorpayEnabled(),
		"stripe":          cfg.Payments.StripeEnabled(),
	}).Info("Configuration loaded")

	return &cfg, nil
}

// applyEnvOverrides lets plain environment variables win over everything else.
func applyEnvOverrides(cfg *Config) {
	setString := func(dst *string, key string) {
		if val := os.Getenv(key); val != "" {
			*dst = val
		}
	}
	setInt := func(dst *int, key string) {
		if val := os.Getenv(key); val != "" {
			if n, err := strconv.Atoi(val); err == nil {
				*dst = n
			}
		}
	}

	setString(&cfg.App.Env, "APP_ENV")
	setString(&cfg.App.LogLevel, "LOG_LEVEL")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setString(&cfg.Server.Host, "SERVER_HOST")
	setString(&cfg.DB.URL, "DATABASE_URL")
	setString(&cfg.DB.Host, "DB_HOST")
	setInt(&cfg.DB.Port, "DB_PORT")
	setString(&cfg.DB.User, "DB_USER")
	setString(&cfg.DB.Password, "DB_PASSWORD")
	setString(&cfg.DB.Name, "DB_NAME")
	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.JWT.Secret, "JWT_SECRET")
	if val := os.Getenv("JWT_EXPIRATION"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.JWT.Expiration = d
		}
	}
	setString(&cfg.Payments.Currency, "PAYMENT_CURRENCY")
	setString(&cfg.Payments.RazorpayKeyID, "RAZORPAY_KEY_ID")
	setString(&cfg.Payments.RazorpayKeySecret, "RAZORPAY_KEY_SECRET")
	setString(&cfg.Payments.RazorpayWebhookSecret, "RAZORPAY_WEBHOOK_SECRET")
	setString(&cfg.Payments.StripeSecretKey, "STRIPE_SECRET_KEY")
	setString(&cfg.Payments.StripeWebhookSecret, "STRIPE_WEBHOOK_SECRET")

	// CORS_ALLOWED_ORIGINS is a comma-separated list
	if originsStr := os.Getenv("CORS_ALLOWED_ORIGINS"); originsStr != "" {
		cfg.CORS.AllowedOrigins = strings.Split(originsStr, ",")
		for i, origin := range cfg.CORS.AllowedOrigins {
			cfg.CORS.AllowedOrigins[i] = strings.TrimSpace(origin)
		}
	}
}

// Validate fails fast on settings the server cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.JWT.Secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.DB.URL == "" && (c.DB.Host == "" || c.DB.Name == "") {
		missing = append(missing, "DATABASE_URL or DB_HOST/DB_NAME")
	}
	if c.Redis.Addr == "" {
		missing = append(missing, "REDIS_ADDR")
	}
	if c.Payments.RazorpayEnabled() && c.Payments.RazorpayWebhookSecret == "" {
		missing = append(missing, "RAZORPAY_WEBHOOK_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.JWT.Expiration <= 0 || c.JWT.RefreshDuration <= 0 {
		return errors.New("jwt expiration and refresh duration must be positive")
	}
	return nil
}
