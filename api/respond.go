package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rpupo63/editorial-backend/contract"
	"github.com/rpupo63/editorial-backend/errs"
	"github.com/rs/zerolog"
)

const internalErrorMessage = "Internal Server Error"

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	// Marshal the data first so a failure can still become a clean 500
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteContract writes payload after checking it against the status declared by endpoint.
func (r Responder) WriteContract(w http.ResponseWriter, endpoint contract.Endpoint, status int, payload any) {
	if err := endpoint.Conforms(status, payload); err != nil {
		r.logger.Error().Err(err).Str("endpoint", endpoint.Name).Msg("response does not match contract")
		r.WriteJSON(w, http.StatusInternalServerError, contract.Message{Message: internalErrorMessage})
		return
	}
	r.WriteJSON(w, status, payload)
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSON(w, http.StatusInternalServerError, contract.Message{Message: internalErrorMessage})
		return
	}

	// Backend failures are logged in full and answered generically
	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Int("status", apiErr.StatusCode).Msg(apiErr.GetFullError())
		r.WriteJSON(w, apiErr.StatusCode, contract.Message{Message: internalErrorMessage})
		return
	}

	r.WriteJSON(w, apiErr.StatusCode, contract.Message{
		Message: apiErr.Message(),
		Field:   apiErr.Field,
		Details: apiErr.Details,
	})
}
