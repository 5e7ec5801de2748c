// Command backfill renders and stores PDFs for issued invoices that do not
// have a stored document yet, for example after a storage outage.
// Usage: go run ./cmd/backfill --batch 100
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"payvlo/internal/config"
	"payvlo/internal/email/noop"
	"payvlo/internal/export"
	"payvlo/internal/logger"
	"payvlo/internal/metrics"
	"payvlo/internal/pdf"
	"payvlo/internal/repository/postgres"
	"payvlo/internal/service"
	s3storage "payvlo/internal/storage/s3"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("backfill failed")
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("backfill", pflag.ContinueOnError)
	batch := fs.Int("batch", 100, "invoices rendered per pass")
	maxPasses := fs.Int("max-passes", 0, "stop after this many passes (0 = until done)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	store, err := s3storage.NewClient(ctx, &cfg.S3)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	invoiceSvc := service.NewInvoiceService(
		postgres.NewInvoiceRepo(db),
		postgres.NewCustomerRepo(db),
		postgres.NewProductRepo(db),
		postgres.NewCompanyRepo(db),
		pdf.NewRenderer(),
		store,
		noop.NewNoopSender(),
		export.Exporters(),
		metrics.New(prometheus.NewRegistry()),
		service.InvoiceConfig{
			NumberFormat:  cfg.Invoice.NumberFormat,
			RoundOff:      cfg.Invoice.RoundOff,
			PDFPrefix:     cfg.Invoice.PDFPrefix,
			Bucket:        cfg.S3.Bucket,
			PresignExpiry: cfg.S3.PresignExpiry,
		},
	)

	total := 0
	for pass := 1; *maxPasses == 0 || pass <= *maxPasses; pass++ {
		n, err := invoiceSvc.RegeneratePending(ctx, *batch)
		total += n
		if err != nil {
			return fmt.Errorf("pass %d: %w", pass, err)
		}
		log.Info().Int("pass", pass).Int("rendered", n).Msg("backfill pass complete")
		// A short pass means the queue is drained or only failing invoices remain.
		if n < *batch {
			break
		}
	}

	log.Info().Int("total", total).Msg("backfill finished")
	return nil
}
