package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/session"
)

const sessionContextKey = "session"

// Session resolves the session cookie and stores the live session in the echo context.
// Unknown or expired cookies are ignored.
func Session(useCase session.UseCase, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			current, err := useCase.Resolve(c.Request().Context(), cookie.Value)
			switch {
			case err == nil:
				c.Set(sessionContextKey, current)
			case !errors.Is(err, model.ErrNotFound):
				return err
			}
			return next(c)
		}
	}
}

// RequireLogin redirects anonymous requests to loginPath, remembering where they were going.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentUser(c) == nil {
				target := loginPath + "?next=" + url.QueryEscape(c.Request().URL.RequestURI())
				return c.Redirect(http.StatusFound, target)
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session resolved for this request, or nil.
func CurrentSession(c echo.Context) *entity.Session {
	current, _ := c.Get(sessionContextKey).(*entity.Session)
	return current
}

// CurrentUser returns the logged in user, or nil.
func CurrentUser(c echo.Context) *entity.User {
	current := CurrentSession(c)
	if current == nil {
		return nil
	}
	return &current.User
}

// SetSession makes s the request's session, used right after login.
func SetSession(c echo.Context, s *entity.Session) {
	c.Set(sessionContextKey, s)
}
