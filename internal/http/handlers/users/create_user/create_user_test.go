package createuser

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	c "registration/internal/core/domain/common"
	"registration/internal/core/domain/logging"
	"registration/internal/core/domain/user"
	service "registration/internal/core/services/sign_up_with_email"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	result.User = user.User{Email: input.Email, ActivationCode: "1234"}
	return result, nil
}

func serve(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestCreateUserSuccess(t *testing.T) {
	svc := &stubService{}
	rr := serve(New(logging.NewFakeLogger(), svc, false), `{"email":"a@x.com","password":"p1"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"email":"a@x.com","status":"created"}`, rr.Body.String())
	assert.Empty(t, rr.Header().Get(TestActivationCodeHeader))
	require.NotNil(t, svc.input)
	assert.Equal(t, c.Email("a@x.com"), svc.input.Email)
	assert.Equal(t, user.RawPassword("p1"), svc.input.Password)
}

func TestCreateUserTestModeExposesCode(t *testing.T) {
	rr := serve(New(logging.NewFakeLogger(), &stubService{}, true), `{"email":"a@x.com","password":"p1"}`)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "1234", rr.Header().Get(TestActivationCodeHeader))
}

func TestCreateUserValidation(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedFields []string
	}{
		{id: "empty object", body: `{}`, expectedFields: []string{"email", "password"}},
		{id: "bad email", body: `{"email":"not-an-email","password":"p1"}`, expectedFields: []string{"email"}},
		{id: "empty password", body: `{"email":"a@x.com","password":""}`, expectedFields: []string{"password"}},
		{id: "wrong type", body: `{"email":1,"password":"p1"}`, expectedFields: []string{"body"}},
		{id: "not json", body: `email=a@x.com`, expectedFields: []string{"body"}},
		{id: "empty body", body: ``, expectedFields: []string{"body"}},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			svc := &stubService{}
			rr := serve(New(logging.NewFakeLogger(), svc, false), testcase.body)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Nil(t, svc.input)

			var res struct {
				Error struct {
					Code    string `json:"code"`
					Details struct {
						Fields []struct {
							Field string `json:"field"`
						} `json:"fields"`
					} `json:"details"`
				} `json:"error"`
			}
			require.Nil(t, json.Unmarshal(rr.Body.Bytes(), &res))
			assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
			fields := []string{}
			for _, f := range res.Error.Details.Fields {
				fields = append(fields, f.Field)
			}
			assert.Equal(t, testcase.expectedFields, fields)
		})
	}
}

func TestCreateUserAlreadyExists(t *testing.T) {
	svc := &stubService{err: &user.EmailAlreadyExistsError{Email: "a@x.com"}}
	rr := serve(New(logging.NewFakeLogger(), svc, false), `{"email":"a@x.com","password":"other"}`)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(
		t,
		`{"error":{"code":"USER_ALREADY_EXISTS","message":"A user with this email already exists","details":{"email":"a@x.com"}}}`,
		rr.Body.String(),
	)
}

func TestCreateUserUnexpectedError(t *testing.T) {
	log := logging.NewFakeLogger()
	svc := &stubService{err: errors.New("connection reset by peer")}
	rr := serve(New(log, svc, false), `{"email":"a@x.com","password":"p1"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(
		t,
		`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"An internal error occurred. Please try again later."}}`,
		rr.Body.String(),
	)
	assert.NotContains(t, rr.Body.String(), "connection reset")
	assert.Len(t, log.Messages(logging.ERROR), 1)
}
