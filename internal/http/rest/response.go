package rest

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/campusconnect/campus_api/internal/store"
	"github.com/campusconnect/campus_api/util"
	"github.com/campusconnect/campus_api/util/tracing"
	"github.com/campusconnect/campus_api/util/values"
	"github.com/pkg/errors"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	if err != nil {
		log.Printf("[%s] %s: %v", tc.RequestID, message, err)
	}
	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	if err != nil {
		log.Printf("%s: %v", message, err)
	}
	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, resp.StatusCode)
		return
	}
	writeJSONResponse(w, body, resp.StatusCode)
}

// storeErrStatus maps store error kinds to a response status and a
// caller-facing message, so clients get the specific rejection reason.
func storeErrStatus(err error) (string, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return values.NotFound, "Not found"
	case errors.Is(err, store.ErrPollClosed):
		return values.NotAllowed, "Poll is not active"
	case errors.Is(err, store.ErrDuplicateVote):
		return values.Conflict, "You have already voted on this poll"
	case errors.Is(err, store.ErrInvalidOptionIndex):
		return values.BadRequestBody, "Invalid option index"
	case errors.Is(err, store.ErrInvalidPollDefinition):
		return values.BadRequestBody, "Question and at least 2 options are required"
	case errors.Is(err, store.ErrDuplicateEmail):
		return values.Conflict, "Email already exists"
	default:
		return values.Error, "Server error"
	}
}
