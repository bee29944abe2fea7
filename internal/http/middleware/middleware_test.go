package middleware

import (
	"net/http"
	"net/http/httptest"
	"registration/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverRendersInternalError(t *testing.T) {
	log := logging.NewFakeLogger()
	handler := Recover(log)(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(
		t,
		`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"An internal error occurred. Please try again later."}}`,
		rr.Body.String(),
	)
	assert.Len(t, log.Messages(logging.ERROR), 1)
}

func TestRecoverRepanicsOnAbort(t *testing.T) {
	handler := Recover(logging.NewFakeLogger())(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestLogRequests(t *testing.T) {
	log := logging.NewFakeLogger()
	handler := LogRequests(log)(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusTeapot)
	}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/users", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, []string{"HTTP request handled."}, log.Messages(logging.INFO))
	record := log.Logged[0]
	assert.Contains(t, record.Entries, logging.Entry("status", http.StatusTeapot))
	assert.Contains(t, record.Entries, logging.Entry("path", "/users"))
}
