package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"registration/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthOK(t *testing.T) {
	handler := New(logging.NewFakeLogger(), &fakePinger{})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestHealthDatabaseDown(t *testing.T) {
	log := logging.NewFakeLogger()
	handler := New(log, &fakePinger{err: errors.New("connection refused")})
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
	assert.Equal(t, []string{"Health check failed."}, log.Messages(logging.WARNING))
}
