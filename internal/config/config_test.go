package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payvlo/internal/config"
	"payvlo/internal/gst"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, gst.DefaultInvoiceNumberFormat, cfg.Invoice.NumberFormat)
	assert.True(t, cfg.Invoice.RoundOff)
	assert.Equal(t, "invoices/", cfg.Invoice.PDFPrefix)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PAYVLO_INVOICE_NUMBER_FORMAT", "GST/{YY}/{#####}")
	t.Setenv("PAYVLO_INVOICE_ROUND_OFF", "false")
	t.Setenv("PAYVLO_DB_PORT", "6543")
	t.Setenv("PAYVLO_CORS_ALLOWED_ORIGINS", " https://app.payvlo.in , ,https://admin.payvlo.in")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "GST/{YY}/{#####}", cfg.Invoice.NumberFormat)
	assert.False(t, cfg.Invoice.RoundOff)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, []string{"https://app.payvlo.in", "https://admin.payvlo.in"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYVLO_SERVER_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_RejectsFormatWithoutCounter(t *testing.T) {
	t.Setenv("PAYVLO_INVOICE_NUMBER_FORMAT", "INV-{YYYY}")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{User: "u", Password: "p", Host: "h", Port: 5432, Name: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/n?sslmode=disable", db.DSN())
}
