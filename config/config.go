package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Payment   PaymentConfig
}

type AppConfig struct {
	Port               string
	Env                string
	LogLevel           string
	PageSize           int
	CORSAllowedOrigins []string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type RateLimitConfig struct {
	AnonPerHour int
	UserPerHour int
}

type PaymentConfig struct {
	APIURL                   string
	APIKey                   string
	WebhookToken             string
	PlatformWalletID         string
	ProfessionalSplitPercent decimal.Decimal
}

// IsProduction reports whether the service runs with production settings.
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the gorm/pgx connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// MigrationURL returns the pgx5:// URL understood by golang-migrate.
func (c DBConfig) MigrationURL() string {
	u := url.URL{
		Scheme:   "pgx5",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PAGE_SIZE", 20)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "health_scheduling")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("RATE_LIMIT_ANON_PER_HOUR", 50)
	v.SetDefault("RATE_LIMIT_USER_PER_HOUR", 200)

	v.SetDefault("PAYMENT_API_URL", "https://sandbox.asaas.com/api/v3")
	v.SetDefault("PAYMENT_API_KEY", "mock-api-key")
	v.SetDefault("PAYMENT_PLATFORM_WALLET_ID", "wal_platform_mock")
	v.SetDefault("PAYMENT_PROFESSIONAL_SPLIT_PERCENT", "80")
}

// LoadConfig reads the optional env file at path and overlays the process
// environment on top of it.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	accessExpiry, err := time.ParseDuration(v.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 30 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(v.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	splitPercent, err := decimal.NewFromString(v.GetString("PAYMENT_PROFESSIONAL_SPLIT_PERCENT"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_PROFESSIONAL_SPLIT_PERCENT: %w", err)
	}
	if splitPercent.IsNegative() || splitPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("PAYMENT_PROFESSIONAL_SPLIT_PERCENT must be between 0 and 100, got %s", splitPercent)
	}

	pageSize := v.GetInt("PAGE_SIZE")
	if pageSize < 1 {
		pageSize = 20
	}

	config := &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Env:                v.GetString("APP_ENV"),
			LogLevel:           v.GetString("LOG_LEVEL"),
			PageSize:           pageSize,
			CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        v.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		RateLimit: RateLimitConfig{
			AnonPerHour: v.GetInt("RATE_LIMIT_ANON_PER_HOUR"),
			UserPerHour: v.GetInt("RATE_LIMIT_USER_PER_HOUR"),
		},
		Payment: PaymentConfig{
			APIURL:                   v.GetString("PAYMENT_API_URL"),
			APIKey:                   v.GetString("PAYMENT_API_KEY"),
			WebhookToken:             v.GetString("PAYMENT_WEBHOOK_TOKEN"),
			PlatformWalletID:         v.GetString("PAYMENT_PLATFORM_WALLET_ID"),
			ProfessionalSplitPercent: splitPercent,
		},
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
