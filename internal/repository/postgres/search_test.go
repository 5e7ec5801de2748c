package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"payvlo/internal/domain"
)

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%acme%", likePattern("  acme "))
	assert.Equal(t, `%50\%\_off%`, likePattern("50%_off"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestInvoiceWhere(t *testing.T) {
	where, args := invoiceWhere(domain.InvoiceFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	id := uuid.New()
	from := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	where, args = invoiceWhere(domain.InvoiceFilter{
		CustomerID: &id,
		Status:     domain.InvoiceStatusSent,
		From:       &from,
	})
	assert.Equal(t, " WHERE customer_id = $1 AND status = $2 AND invoice_date >= $3", where)
	assert.Equal(t, []interface{}{id, domain.InvoiceStatusSent, from}, args)
}
