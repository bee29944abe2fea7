package response

import (
	"context"
	"errors"
	"net/http"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"

	"github.com/getsentry/sentry-go"
)

const (
	CodeUserAlreadyExists     = "USER_ALREADY_EXISTS"
	CodeUserAlreadyActivated  = "USER_ALREADY_ACTIVATED"
	CodeInvalidEmail          = "INVALID_EMAIL"
	CodeInvalidPassword       = "INVALID_PASSWORD"
	CodeInvalidActivationCode = "INVALID_ACTIVATION_CODE"
	CodeExpiredActivationCode = "EXPIRED_ACTIVATION_CODE"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeNotAuthenticated      = "NOT_AUTHENTICATED"
	CodeInternalServerError   = "INTERNAL_SERVER_ERROR"
)

type domainError struct {
	target  error
	status  int
	code    string
	message string
}

var domainErrors = []domainError{
	{
		target:  user.ErrEmailAlreadyExists,
		status:  http.StatusConflict,
		code:    CodeUserAlreadyExists,
		message: "A user with this email already exists",
	},
	{
		target:  user.ErrUserAlreadyActivated,
		status:  http.StatusConflict,
		code:    CodeUserAlreadyActivated,
		message: "This user account is already activated",
	},
	{
		target:  user.ErrInvalidEmail,
		status:  http.StatusUnauthorized,
		code:    CodeInvalidEmail,
		message: "The provided email address is not found",
	},
	{
		target:  user.ErrInvalidPassword,
		status:  http.StatusUnauthorized,
		code:    CodeInvalidPassword,
		message: "The provided password is incorrect",
	},
	{
		target:  user.ErrInvalidActivationCode,
		status:  http.StatusBadRequest,
		code:    CodeInvalidActivationCode,
		message: "The provided activation code is invalid",
	},
	{
		target:  user.ErrExpiredActivationCode,
		status:  http.StatusBadRequest,
		code:    CodeExpiredActivationCode,
		message: "The provided activation code has expired",
	},
}

// RenderServiceError translates an error returned by a service into the
// error envelope. Anything unknown is logged and rendered as a 500.
func RenderServiceError(ctx context.Context, rw http.ResponseWriter, log logging.Logger, err error) {
	for _, d := range domainErrors {
		if !errors.Is(err, d.target) {
			continue
		}
		body := ErrorBody{Code: d.code, Message: d.message}
		var withDetails user.Details
		if errors.As(err, &withDetails) {
			body.Details = withDetails.Details()
		}
		RenderError(rw, d.status, body)
		return
	}
	RenderInternalError(ctx, rw, log, err)
}

func RenderInternalError(ctx context.Context, rw http.ResponseWriter, log logging.Logger, err error) {
	if !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Request failed with unexpected error.", logging.Entry("err", err))
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub()
		}
		hub.CaptureException(err)
	}
	RenderError(rw, http.StatusInternalServerError, InternalErrorBody())
}

func InternalErrorBody() ErrorBody {
	return ErrorBody{Code: CodeInternalServerError, Message: InternalErrorMessage}
}
