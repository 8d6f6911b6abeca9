package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"insurance-portal/internal/listing"
	"insurance-portal/internal/service"
	"insurance-portal/internal/utils"
)

// statusClientClosed is nginx's code for a client that went away mid-request.
const statusClientClosed = 499

// writeError maps service and listing errors onto HTTP statuses. Anything
// unrecognised is logged and reported as a 500 without detail.
func writeError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.Is(err, context.Canceled):
		log.Debug().Err(err).Msg("client gone")
		w.WriteHeader(statusClientClosed)
	case errors.As(err, &verr):
		utils.FieldErrors(w, "validation failed", verr.Fields)
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "access restricted")
	case errors.Is(err, listing.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, listing.ErrNotConfirmed):
		utils.Error(w, http.StatusPreconditionRequired, "confirmation required")
	case errors.Is(err, service.ErrInvalidInput):
		utils.Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		utils.Error(w, http.StatusInternalServerError, "internal error")
	}
}
