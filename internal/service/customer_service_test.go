package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"payvlo/internal/domain"
	"payvlo/internal/service"
	"payvlo/mocks"
)

func TestCustomerService_Create_DerivesFromGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.Create(context.Background(), service.CreateCustomerInput{
		CustomerName: "  Acme Corp ",
		GSTIN:        "27aapfu0939f1z2",
		Email:        " billing@acme.test ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", customer.CustomerName)
	assert.Equal(t, domain.CustomerTypeB2B, customer.CustomerType)
	assert.Equal(t, "27AAPFU0939F1Z2", customer.GSTIN)
	assert.Equal(t, "AAPFU0939F", customer.PAN)
	assert.Equal(t, "27", customer.StateCode)
	assert.Equal(t, "Maharashtra", customer.State)
	assert.Equal(t, "billing@acme.test", customer.Email)
	assert.True(t, customer.IsActive)
	repo.AssertExpectations(t)
}

func TestCustomerService_Create_B2BRequiresGSTIN(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)

	_, err := svc.Create(context.Background(), service.CreateCustomerInput{CustomerName: "Acme"})

	assert.ErrorIs(t, err, domain.ErrGSTINRequired)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Create_B2CWithStateCode(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	customer, err := svc.Create(context.Background(), service.CreateCustomerInput{
		CustomerName: "Walk-in",
		CustomerType: domain.CustomerTypeB2C,
		StateCode:    "29",
	})

	require.NoError(t, err)
	assert.Empty(t, customer.GSTIN)
	assert.Equal(t, "Karnataka", customer.State)
}

func TestCustomerService_Create_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input service.CreateCustomerInput
		want  error
	}{
		{
			name:  "unknown type",
			input: service.CreateCustomerInput{CustomerName: "X", CustomerType: "RETAIL"},
			want:  domain.ErrInvalidCustomerType,
		},
		{
			name:  "bad gstin",
			input: service.CreateCustomerInput{CustomerName: "X", GSTIN: "27AAPFU0939F1Z3"},
			want:  domain.ErrInvalidGSTIN,
		},
		{
			name:  "pan mismatch",
			input: service.CreateCustomerInput{CustomerName: "X", GSTIN: "27AAPFU0939F1Z2", PAN: "ABCDE1234F"},
			want:  domain.ErrPANMismatch,
		},
		{
			name:  "unknown state without gstin",
			input: service.CreateCustomerInput{CustomerName: "X", CustomerType: domain.CustomerTypeB2C, StateCode: "99"},
			want:  domain.ErrInvalidStateCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewCustomerService(new(mocks.MockCustomerRepo))
			_, err := svc.Create(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustomerService_Update_NewGSTINReplacesDerivedFields(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	id := uuid.New()
	existing := &domain.Customer{
		ID:           id,
		CustomerName: "Acme",
		GSTIN:        "27AAPFU0939F1Z2",
		PAN:          "AAPFU0939F",
		StateCode:    "27",
		State:        "Maharashtra",
		CustomerType: domain.CustomerTypeB2B,
		IsActive:     true,
	}
	repo.On("GetByID", mock.Anything, id).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	gstin := "29ABCDE1234F1Z2"
	customer, err := svc.Update(context.Background(), id, service.UpdateCustomerInput{GSTIN: &gstin})

	require.NoError(t, err)
	assert.Equal(t, "ABCDE1234F", customer.PAN)
	assert.Equal(t, "29", customer.StateCode)
	assert.Equal(t, "Karnataka", customer.State)
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	name := "x"
	_, err := svc.Update(context.Background(), id, service.UpdateCustomerInput{CustomerName: &name})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerService_Search_EmptyQueryLists(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	expected := []domain.Customer{{CustomerName: "Acme"}}
	repo.On("List", mock.Anything, 0, 20).Return(expected, 1, nil)

	customers, err := svc.Search(context.Background(), "  ", 20)

	require.NoError(t, err)
	assert.Equal(t, expected, customers)
	repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_Search(t *testing.T) {
	repo := new(mocks.MockCustomerRepo)
	svc := service.NewCustomerService(repo)
	repo.On("Search", mock.Anything, "acme", 10).Return([]domain.Customer{{CustomerName: "Acme"}}, nil)

	customers, err := svc.Search(context.Background(), "acme", 10)

	require.NoError(t, err)
	assert.Len(t, customers, 1)
}
