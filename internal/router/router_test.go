package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"payvlo/internal/domain"
	"payvlo/internal/handler"
	"payvlo/internal/metrics"
	"payvlo/internal/router"
	"payvlo/mocks"
)

type fixture struct {
	engine   *gin.Engine
	gst      *mocks.MockGSTService
	invoices *mocks.MockInvoiceService
	stats    *mocks.MockStatsService
}

func newFixture() *fixture {
	gin.SetMode(gin.TestMode)

	f := &fixture{
		gst:      new(mocks.MockGSTService),
		invoices: new(mocks.MockInvoiceService),
		stats:    new(mocks.MockStatsService),
	}
	h := router.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.ReadinessCheck{
			"database": func(context.Context) error { return nil },
		}),
		GST:      handler.NewGSTHandler(f.gst),
		Company:  handler.NewCompanyHandler(new(mocks.MockCompanyService)),
		Customer: handler.NewCustomerHandler(new(mocks.MockCustomerService)),
		Product:  handler.NewProductHandler(new(mocks.MockProductService)),
		State:    handler.NewStateHandler(new(mocks.MockStateService)),
		Invoice:  handler.NewInvoiceHandler(f.invoices),
		Stats:    handler.NewStatsHandler(f.stats),
	}
	f.engine = router.Setup(h, metrics.New(prometheus.NewRegistry()), nil)
	return f
}

func (f *fixture) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, http.NoBody)
	f.engine.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	f := newFixture()

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/readyz").Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/healthz")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_GSTRates(t *testing.T) {
	f := newFixture()
	f.gst.On("Rates").Return([]float64{0, 5, 12, 18, 28})

	w := f.do(http.MethodGet, "/api/v1/gst/rates")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[0,5,12,18,28]}`, w.Body.String())
}

func TestRouter_ExportIsNotAnInvoiceID(t *testing.T) {
	f := newFixture()
	f.invoices.On("Export", mock.Anything, domain.ExportFormatCSV, mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidDateRange)

	w := f.do(http.MethodGet, "/api/v1/invoices/export?from=2024-04-30&to=2024-04-01")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.invoices.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestRouter_InvoiceByID(t *testing.T) {
	f := newFixture()
	id := uuid.New()
	f.invoices.On("GetByID", mock.Anything, id).Return(&domain.Invoice{ID: id}, nil)

	w := f.do(http.MethodGet, "/api/v1/invoices/"+id.String())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	f := newFixture()
	f.stats.On("Counts", mock.Anything).Return(&domain.RecordCounts{Customers: 2}, nil)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/v1/stats/counts").Code)

	w := f.do(http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `payvlo_http_requests_total{method="GET",route="/api/v1/stats/counts",status="200"} 1`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	f := newFixture()

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/v1/nope").Code)
}
