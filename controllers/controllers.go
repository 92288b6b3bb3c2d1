package controllers

import (
	"errors"
	"log"
	"net/http"

	"skillswap_server/services"
	"skillswap_server/utils"
)

// writeServiceError maps the service error taxonomy to HTTP statuses.
// Anything unrecognized is a server error: logged, with no internal detail
// leaked to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, trimmedMessage(err, services.ErrValidation))
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(w, http.StatusForbidden, trimmedMessage(err, services.ErrForbidden))
	case errors.Is(err, services.ErrConflict):
		utils.RespondError(w, http.StatusConflict, trimmedMessage(err, services.ErrConflict))
	case errors.Is(err, services.ErrInvalidState):
		utils.RespondError(w, http.StatusBadRequest, trimmedMessage(err, services.ErrInvalidState))
	default:
		log.Printf("❌ Unexpected service error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Server error")
	}
}

// trimmedMessage strips the trailing ": <sentinel>" suffix so clients see
// only the human-readable part
func trimmedMessage(err error, sentinel error) string {
	msg := err.Error()
	suffix := ": " + sentinel.Error()
	if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
		return msg[:len(msg)-len(suffix)]
	}
	return msg
}
