package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-tracker/internal/application/middleware"
	"todo-tracker/internal/application/view"
	"todo-tracker/internal/domain/model"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/msg"
)

type errorData struct {
	Status  int
	Message string
}

// NewHTTPErrorHandler renders not found and unexpected errors as pages, or JSON for async callers.
// Missing rows and rows owned by someone else produce the same 404.
func NewHTTPErrorHandler(web *Web) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := msg.GetMessage("error.internal")

		var httpErr *echo.HTTPError
		switch {
		case errors.Is(err, model.ErrNotFound):
			status = http.StatusNotFound
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if text, ok := httpErr.Message.(string); ok && status < http.StatusInternalServerError {
				message = text
			}
		}
		if status == http.StatusNotFound {
			message = msg.GetMessage("error.not-found")
		}

		if status >= http.StatusInternalServerError {
			log.Error(msg.GetMessage("error.unhandled", c.Request().Method, c.Request().URL.Path),
				zap.Error(err),
				zap.Int("status", status),
			)
		}

		var writeErr error
		switch {
		case c.Request().Method == http.MethodHead:
			writeErr = c.NoContent(status)
		case isAsync(c):
			writeErr = c.JSON(status, map[string]string{"error": message})
		default:
			template := "error.html"
			if status == http.StatusNotFound {
				template = "not_found.html"
			}
			writeErr = c.Render(status, template, view.Page{
				Title:     http.StatusText(status),
				Base:      web.Base,
				User:      middleware.CurrentUser(c),
				CSRFToken: middleware.CSRFToken(c),
				Today:     web.Now(),
				Data:      errorData{Status: status, Message: message},
			})
		}
		if writeErr != nil {
			log.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
