package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"

	"payvlo/internal/port"
)

// MockRegisterExporter is a mock implementation of port.RegisterExporter.
type MockRegisterExporter struct {
	mock.Mock
}

func (m *MockRegisterExporter) Export(w io.Writer, entries []port.RegisterEntry) error {
	args := m.Called(w, entries)
	return args.Error(0)
}

func (m *MockRegisterExporter) ContentType() string {
	return m.Called().String(0)
}

func (m *MockRegisterExporter) Extension() string {
	return m.Called().String(0)
}
