package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/argguild/epgpbot/internal/domain"
	"github.com/argguild/epgpbot/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it onto a response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps a service error onto a status code by its
// taxonomy class. Client errors carry the domain message, which names the
// offending value; storage and unclassified errors get a generic message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch domain.Class(err) {
	case domain.ErrInvalidParameter:
		return http.StatusBadRequest, userMessage(err)
	case domain.ErrNotFound:
		return http.StatusNotFound, userMessage(err)
	case domain.ErrInvalidState:
		return http.StatusConflict, userMessage(err)
	case domain.ErrConflict:
		if errors.Is(err, domain.ErrTeamExists) ||
			errors.Is(err, domain.ErrCharacterExists) ||
			errors.Is(err, domain.ErrEntryAlreadyReversed) {
			return http.StatusConflict, userMessage(err)
		}
		return http.StatusConflict, ErrMsgConflictError
	case domain.ErrStorageFailure:
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// userMessage strips the operation context that services prepend, keeping the
// domain part of a MutationError
func userMessage(err error) string {
	var mutErr *domain.MutationError
	if errors.As(err, &mutErr) && mutErr.Err != nil {
		return mutErr.Err.Error()
	}
	return err.Error()
}
