package createuser

import (
	"encoding/json"
	"io"
	"net/http"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	signupwithemail "registration/internal/core/services/sign_up_with_email"
	"registration/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const TestActivationCodeHeader = "x-test-activation-code"

type Handler struct {
	log        logging.Logger
	service    services.Service[signupwithemail.Input, signupwithemail.Result]
	isTestMode bool
}

func New(
	log logging.Logger,
	service services.Service[signupwithemail.Input, signupwithemail.Result],
	isTestMode bool,
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, service: service, isTestMode: isTestMode}
}

type Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 255)),
		validation.Field(&i.Password, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidBody(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderValidationError(rw, err)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		signupwithemail.Input{Email: c.NewEmail(input.Email), Password: user.RawPassword(input.Password)},
	)
	if err != nil {
		response.RenderServiceError(r.Context(), rw, h.log, err)
		return
	}

	if h.isTestMode {
		rw.Header().Set(TestActivationCodeHeader, string(result.User.ActivationCode))
	}
	response.Render(
		rw,
		response.StatusResponse{Email: result.User.Email.String(), Status: string(result.User.Status())},
		http.StatusCreated,
	)
}
