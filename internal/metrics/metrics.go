// Package metrics exposes Prometheus instrumentation for invoicing and
// GST validation.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	// Invoices issued by type and supply (intra/inter)
	InvoicesIssued *prometheus.CounterVec

	// Creation latency including number assignment
	InvoiceCreateLatency prometheus.Histogram

	// GSTIN and HSN/SAC validations by outcome
	Validations *prometheus.CounterVec

	// Rendered documents and delivery attempts
	DocumentsRendered *prometheus.CounterVec
	EmailsSent        *prometheus.CounterVec

	// HTTP requests by route and status
	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers all collectors on reg. Passing a fresh registry keeps
// tests independent of the process default.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		InvoicesIssued: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payvlo_invoices_issued_total",
			Help: "Invoices issued by invoice type and supply classification",
		}, []string{"invoice_type", "supply"}),

		InvoiceCreateLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "payvlo_invoice_create_duration_seconds",
			Help:    "Duration of invoice creation including number assignment",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		Validations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payvlo_validations_total",
			Help: "GSTIN and HSN/SAC validations by kind and outcome",
		}, []string{"kind", "outcome"}), // kind: gstin, hsn_sac

		DocumentsRendered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payvlo_documents_rendered_total",
			Help: "Invoice documents rendered by format and outcome",
		}, []string{"format", "outcome"}),

		EmailsSent: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payvlo_emails_sent_total",
			Help: "Invoice emails by outcome",
		}, []string{"outcome"}),

		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "payvlo_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),

		HTTPLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "payvlo_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		gatherer: reg,
	}
}

func outcome(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

// IncInvoiceIssued records an issued invoice.
func (m *Metrics) IncInvoiceIssued(invoiceType string, interState bool) {
	if m == nil {
		return
	}
	supply := "intra"
	if interState {
		supply = "inter"
	}
	m.InvoicesIssued.WithLabelValues(invoiceType, supply).Inc()
}

// ObserveInvoiceCreate records invoice creation latency.
func (m *Metrics) ObserveInvoiceCreate(d time.Duration) {
	if m != nil {
		m.InvoiceCreateLatency.Observe(d.Seconds())
	}
}

// IncValidation records a validation result.
func (m *Metrics) IncValidation(kind string, valid bool) {
	if m == nil {
		return
	}
	result := "valid"
	if !valid {
		result = "invalid"
	}
	m.Validations.WithLabelValues(kind, result).Inc()
}

// IncDocumentRendered records a render attempt.
func (m *Metrics) IncDocumentRendered(format string, ok bool) {
	if m != nil {
		m.DocumentsRendered.WithLabelValues(format, outcome(ok)).Inc()
	}
}

// IncEmailSent records a delivery attempt.
func (m *Metrics) IncEmailSent(ok bool) {
	if m != nil {
		m.EmailsSent.WithLabelValues(outcome(ok)).Inc()
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
