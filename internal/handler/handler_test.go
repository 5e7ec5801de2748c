package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payvlo/internal/domain"
	"payvlo/internal/gst"
	"payvlo/internal/handler"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, target, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, target, http.NoBody)
	}
	c.Request = req
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", fmt.Errorf("customerRepo.GetByID: %w", domain.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"company missing", domain.ErrCompanyNotConfigured, http.StatusConflict, "COMPANY_NOT_CONFIGURED"},
		{"bad gstin", fmt.Errorf("%w: Invalid GSTIN checksum", domain.ErrInvalidGSTIN), http.StatusBadRequest, "INVALID_GSTIN"},
		{"transition", domain.ErrInvalidStatusTransition, http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{"gst rate", gst.ErrInvalidGSTRate, http.StatusBadRequest, "INVALID_GST_RATE"},
		{"email", domain.ErrEmailFailed, http.StatusBadGateway, "EMAIL_FAILED"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestMapDomainError_Messages(t *testing.T) {
	_, _, msg := handler.MapDomainError(fmt.Errorf("%w: Invalid GSTIN checksum", domain.ErrInvalidGSTIN))
	assert.Contains(t, msg, "Invalid GSTIN checksum")

	_, _, msg = handler.MapDomainError(fmt.Errorf("ses: throttled: %w", domain.ErrEmailFailed))
	assert.NotContains(t, msg, "throttled")

	_, _, msg = handler.MapDomainError(errors.New("pq: password authentication failed"))
	assert.Equal(t, "an internal error occurred", msg)
}

func TestHandleError_WritesEnvelope(t *testing.T) {
	c, w := newContext(http.MethodGet, "/", nil)

	handler.HandleError(c, domain.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestHealthHandler_Liveness(t *testing.T) {
	h := handler.NewHealthHandler(nil)
	c, w := newContext(http.MethodGet, "/healthz", nil)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealthHandler_Readiness(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	t.Run("all ready", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.ReadinessCheck{"database": ok, "storage": ok})
		c, w := newContext(http.MethodGet, "/readyz", nil)

		h.Readiness(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("one failing", func(t *testing.T) {
		h := handler.NewHealthHandler(map[string]handler.ReadinessCheck{"database": ok, "storage": down})
		c, w := newContext(http.MethodGet, "/readyz", nil)

		h.Readiness(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"unavailable","checks":{"storage":"unavailable"}}`, w.Body.String())
	})
}
