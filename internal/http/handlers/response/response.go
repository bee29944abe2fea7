package response

import (
	"encoding/json"
	"net/http"
)

const InternalErrorMessage = "An internal error occurred. Please try again later."

type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// StatusResponse is the success body of both account endpoints.
type StatusResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

func RenderError(rw http.ResponseWriter, status int, body ErrorBody) {
	Render(rw, ErrorResponse{Error: body}, status)
}

func RenderUnauthenticated(rw http.ResponseWriter) {
	rw.Header().Set("WWW-Authenticate", `Basic realm="registration"`)
	RenderError(rw, http.StatusUnauthorized, ErrorBody{
		Code:    CodeNotAuthenticated,
		Message: "Basic authentication credentials are required",
	})
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
