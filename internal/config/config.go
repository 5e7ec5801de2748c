package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"payvlo/internal/gst"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	CORS    CORSConfig
	Email   EmailConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds object storage settings for rendered invoices.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// InvoiceConfig holds invoice issuing settings.
type InvoiceConfig struct {
	NumberFormat string `mapstructure:"number_format"`
	RoundOff     bool   `mapstructure:"round_off"`
	PDFPrefix    string `mapstructure:"pdf_prefix"`
}

// Load reads configuration from environment variables with the PAYVLO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PAYVLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "payvlo")
	v.SetDefault("db.password", "payvlo_secret")
	v.SetDefault("db.name", "payvlo_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "payvlo-invoices")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 86400)

	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@payvlo.in")
	v.SetDefault("email.from_name", "Payvlo")

	v.SetDefault("invoice.number_format", gst.DefaultInvoiceNumberFormat)
	v.SetDefault("invoice.round_off", true)
	v.SetDefault("invoice.pdf_prefix", "invoices/")

	envBindings := map[string]string{
		"server.port":           "PAYVLO_SERVER_PORT",
		"server.read_timeout":   "PAYVLO_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "PAYVLO_SERVER_WRITE_TIMEOUT",
		"server.environment":    "PAYVLO_SERVER_ENVIRONMENT",
		"db.host":               "PAYVLO_DB_HOST",
		"db.port":               "PAYVLO_DB_PORT",
		"db.user":               "PAYVLO_DB_USER",
		"db.password":           "PAYVLO_DB_PASSWORD",
		"db.name":               "PAYVLO_DB_NAME",
		"db.sslmode":            "PAYVLO_DB_SSLMODE",
		"db.max_open":           "PAYVLO_DB_MAX_OPEN",
		"db.max_idle":           "PAYVLO_DB_MAX_IDLE",
		"s3.region":             "PAYVLO_S3_REGION",
		"s3.bucket":             "PAYVLO_S3_BUCKET",
		"s3.endpoint":           "PAYVLO_S3_ENDPOINT",
		"s3.access_key":         "PAYVLO_S3_ACCESS_KEY",
		"s3.secret_key":         "PAYVLO_S3_SECRET_KEY",
		"s3.presign_expiry":     "PAYVLO_S3_PRESIGN_EXPIRY",
		"log.level":             "PAYVLO_LOG_LEVEL",
		"log.format":            "PAYVLO_LOG_FORMAT",
		"cors.allowed_origins":  "PAYVLO_CORS_ALLOWED_ORIGINS",
		"email.provider":        "PAYVLO_EMAIL_PROVIDER",
		"email.region":          "PAYVLO_EMAIL_REGION",
		"email.from_address":    "PAYVLO_EMAIL_FROM_ADDRESS",
		"email.from_name":       "PAYVLO_EMAIL_FROM_NAME",
		"invoice.number_format": "PAYVLO_INVOICE_NUMBER_FORMAT",
		"invoice.round_off":     "PAYVLO_INVOICE_ROUND_OFF",
		"invoice.pdf_prefix":    "PAYVLO_INVOICE_PDF_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PAYVLO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Invoice = InvoiceConfig{
		NumberFormat: v.GetString("invoice.number_format"),
		RoundOff:     v.GetBool("invoice.round_off"),
		PDFPrefix:    v.GetString("invoice.pdf_prefix"),
	}

	if !strings.Contains(cfg.Invoice.NumberFormat, "{#") {
		return nil, fmt.Errorf("invoice.number_format %q has no counter placeholder", cfg.Invoice.NumberFormat)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
