package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
)

func TestRenderServiceErrorStatuses(t *testing.T) {
	cases := []struct {
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{user.ErrEmailAlreadyExists, http.StatusConflict, CodeUserAlreadyExists},
		{user.ErrUserAlreadyActivated, http.StatusConflict, CodeUserAlreadyActivated},
		{user.ErrInvalidEmail, http.StatusUnauthorized, CodeInvalidEmail},
		{user.ErrInvalidPassword, http.StatusUnauthorized, CodeInvalidPassword},
		{user.ErrInvalidActivationCode, http.StatusBadRequest, CodeInvalidActivationCode},
		{user.ErrExpiredActivationCode, http.StatusBadRequest, CodeExpiredActivationCode},
		{fmt.Errorf("wrapped: %w", user.ErrInvalidPassword), http.StatusUnauthorized, CodeInvalidPassword},
		{user.ErrUserDoesNotExist, http.StatusInternalServerError, CodeInternalServerError},
		{context.DeadlineExceeded, http.StatusInternalServerError, CodeInternalServerError},
	}

	for _, testcase := range cases {
		t.Run(testcase.err.Error(), func(t *testing.T) {
			rr := httptest.NewRecorder()

			RenderServiceError(context.Background(), rr, logging.NewFakeLogger(), testcase.err)

			assert.Equal(t, testcase.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), fmt.Sprintf(`"code":"%s"`, testcase.expectedCode))
		})
	}
}

func TestRenderInternalErrorSkipsLoggingCanceled(t *testing.T) {
	log := logging.NewFakeLogger()
	rr := httptest.NewRecorder()

	RenderInternalError(context.Background(), rr, log, context.Canceled)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, log.Messages(logging.ERROR))
}

func TestRenderValidationErrorSortsFields(t *testing.T) {
	rr := httptest.NewRecorder()

	RenderValidationError(rr, validation.Errors{
		"password": errors.New("cannot be blank"),
		"email":    errors.New("cannot be blank"),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(
		t,
		`{"error":{"code":"VALIDATION_ERROR","message":"Request validation failed","details":{"fields":[`+
			`{"field":"email","message":"cannot be blank"},`+
			`{"field":"password","message":"cannot be blank"}]}}}`,
		rr.Body.String(),
	)
}

func TestRenderUnauthenticated(t *testing.T) {
	rr := httptest.NewRecorder()

	RenderUnauthenticated(rr)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, `Basic realm="registration"`, rr.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rr.Body.String(), `"NOT_AUTHENTICATED"`)
}
