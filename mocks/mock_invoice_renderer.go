package mocks

import (
	"github.com/stretchr/testify/mock"

	"payvlo/internal/port"
)

// MockInvoiceRenderer is a mock implementation of port.InvoiceRenderer.
type MockInvoiceRenderer struct {
	mock.Mock
}

func (m *MockInvoiceRenderer) Render(doc port.InvoiceDocument) ([]byte, error) {
	args := m.Called(doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockInvoiceRenderer) ContentType() string {
	return m.Called().String(0)
}

func (m *MockInvoiceRenderer) Extension() string {
	return m.Called().String(0)
}
