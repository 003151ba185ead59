// Package controllers is the HTTP boundary: decode and validate the
// request, call a service, translate the result into a response
// envelope. All error-to-status mapping happens here, once.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

// respondError maps a service error to its HTTP status. Unknown errors
// are logged with context and surface as a generic 500 — internal error
// text never reaches the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrSignatureMismatch):
		response.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrBlocked),
		errors.Is(err, services.ErrForbidden):
		response.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(w)
	case errors.Is(err, services.ErrGatewayUnavailable):
		response.Error(w, http.StatusBadGateway, "payment gateway unavailable")
	default:
		logger.WithCtx(r.Context()).Error("unhandled error",
			"path", r.URL.Path, "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// intQuery parses a numeric query parameter with a fallback.
func intQuery(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// paramID parses a numeric {id}-style path parameter.
func paramID(r *http.Request, name string) (uint, bool) {
	n, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
