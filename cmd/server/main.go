// @title           Payvlo GST Invoicing API
// @version         1.0
// @description     GST-compliant invoicing for Indian businesses.
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"

	"payvlo/internal/config"
	"payvlo/internal/email/noop"
	"payvlo/internal/email/ses"
	"payvlo/internal/export"
	"payvlo/internal/handler"
	"payvlo/internal/hsn"
	"payvlo/internal/logger"
	"payvlo/internal/metrics"
	"payvlo/internal/pdf"
	"payvlo/internal/port"
	"payvlo/internal/repository/postgres"
	"payvlo/internal/router"
	"payvlo/internal/service"
	s3storage "payvlo/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	companyRepo := postgres.NewCompanyRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	productRepo := postgres.NewProductRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	stateRepo := postgres.NewStateRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)

	lookup, err := hsn.Load(ctx, hsnRepo, time.Now())
	if err != nil {
		return fmt.Errorf("failed to load HSN master: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize storage
	s3Client, err := s3storage.NewClient(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	sender, err := newEmailSender(ctx, &cfg.Email)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize services
	gstSvc := service.NewGSTService(invoiceRepo, lookup, m, cfg.Invoice.NumberFormat, cfg.Invoice.RoundOff)
	companySvc := service.NewCompanyService(companyRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	productSvc := service.NewProductService(productRepo, lookup)
	stateSvc := service.NewStateService(stateRepo)
	statsSvc := service.NewStatsService(statsRepo)
	invoiceSvc := service.NewInvoiceService(
		invoiceRepo, customerRepo, productRepo, companyRepo,
		pdf.NewRenderer(), s3Client, sender, export.Exporters(), m,
		service.InvoiceConfig{
			NumberFormat:  cfg.Invoice.NumberFormat,
			RoundOff:      cfg.Invoice.RoundOff,
			PDFPrefix:     cfg.Invoice.PDFPrefix,
			Bucket:        cfg.S3.Bucket,
			PresignExpiry: cfg.S3.PresignExpiry,
		},
	)

	// Initialize handlers
	h := router.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.ReadinessCheck{
			"database": db.PingContext,
			"storage":  s3Client.Ping,
		}),
		GST:      handler.NewGSTHandler(gstSvc),
		Company:  handler.NewCompanyHandler(companySvc),
		Customer: handler.NewCustomerHandler(customerSvc),
		Product:  handler.NewProductHandler(productSvc),
		State:    handler.NewStateHandler(stateSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Stats:    handler.NewStatsHandler(statsSvc),
	}

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           router.Setup(h, m, cfg.CORS.AllowedOrigins),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Int("hsn_entries", lookup.Len()).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func newEmailSender(ctx context.Context, cfg *config.EmailConfig) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(ctx, cfg.Region, cfg.FromAddress, cfg.FromName)
	case "", "noop":
		return noop.NewNoopSender(), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
