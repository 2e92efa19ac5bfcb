package main

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"reviewsBack/internal/handlers"
)

func (app *application) requestLogger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &app.logger
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.requestLogger(r).Error().Err(err).Bytes("stack", debug.Stack()).Msg("server error")
	handlers.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func (app *application) clientError(w http.ResponseWriter, status int, message string) {
	handlers.WriteError(w, status, message)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
