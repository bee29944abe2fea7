package activateuser

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	c "registration/internal/core/domain/common"
	e "registration/internal/core/domain/errors"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	"registration/internal/core/services"
	activateuser "registration/internal/core/services/activate_user"
	"registration/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

var codePattern = regexp.MustCompile(`^[0-9]{4}$`)

type Handler struct {
	log     logging.Logger
	service services.Service[activateuser.Input, activateuser.Result]
}

func New(
	log logging.Logger,
	service services.Service[activateuser.Input, activateuser.Result],
) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{log: log, service: service}
}

type Input struct {
	Code string `json:"code"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(
			&i.Code,
			validation.Required,
			validation.Match(codePattern).Error("must be exactly 4 decimal digits"),
		),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	email, password, ok := r.BasicAuth()
	if !ok || email == "" {
		response.RenderUnauthenticated(rw)
		return
	}

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
		activateuser.Input{
			Email:          c.NewEmail(email),
			Password:       user.RawPassword(password),
			ActivationCode: user.ActivationCode(input.Code),
		},
	)
	if err != nil {
		response.RenderServiceError(r.Context(), rw, h.log, err)
		return
	}

	response.Render(
		rw,
		response.StatusResponse{Email: result.User.Email.String(), Status: string(result.User.Status())},
		http.StatusOK,
	)
}
