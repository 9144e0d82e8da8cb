package rest

import (
	"encoding/json"
	"net/http"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.GetCode(err).HTTPStatus(), toErrorBody(err))
}

// toErrorBody hides the message of internal errors
func toErrorBody(err error) errorBody {
	code := errors.GetCode(err)
	message := errors.GetMessage(err)
	if code == errors.CodeInternal {
		message = "internal error"
	}
	return errorBody{Code: code.String(), Message: message}
}
