package noop

import (
	"context"

	"github.com/rs/zerolog/log"

	"payvlo/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that only logs what it would send.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceEmail(_ context.Context, msg port.InvoiceEmail) error {
	log.Info().
		Str("to", msg.ToEmail).
		Str("invoice_number", msg.InvoiceNumber).
		Str("amount", msg.Amount).
		Str("download_url", msg.DownloadURL).
		Msg("noopSender.SendInvoiceEmail: email not sent, provider is noop")
	return nil
}
