package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/port"
)

// MockEmailSender records invoice delivery e-mails.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendInvoiceEmail(ctx context.Context, msg port.InvoiceEmail) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
