package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"todo-tracker/internal/application/middleware"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/auth"
	"todo-tracker/pkg/msg"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthController struct {
	api     *echo.Group
	web     *Web
	cookie  CookieConfig
	useCase auth.UseCase
}

type loginData struct {
	Form  model.LoginForm
	Error string
}

type registerData struct {
	Form   model.RegisterForm
	Error  string
	Errors map[string]string
}

func NewAuthController(api *echo.Group, web *Web, cookie CookieConfig, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, web: web, cookie: cookie, useCase: useCase}
}

// InitAuthRoutes initializes login, logout and registration routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.GET("/login", controller.LoginPage)
	controller.api.POST("/login", controller.Login)
	controller.api.POST("/logout", controller.Logout)
	controller.api.GET("/register", controller.RegisterPage)
	controller.api.POST("/register", controller.Register)
}

func (controller *AuthController) LoginPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return controller.web.redirect(c, "/todos")
	}
	form := model.LoginForm{Next: c.QueryParam("next")}
	return controller.web.render(c, http.StatusOK, "login.html", "Log in", loginData{Form: form})
}

func (controller *AuthController) Login(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return controller.web.redirect(c, "/todos")
	}

	var form model.LoginForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	user, err := controller.useCase.Authenticate(c.Request().Context(), form, c.RealIP())
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		form.Password = ""
		return controller.web.render(c, http.StatusOK, "login.html", "Log in",
			loginData{Form: form, Error: msg.GetMessage("auth.error.invalid-credentials")})
	case errors.Is(err, model.ErrTooManyAttempts):
		form.Password = ""
		return controller.web.render(c, http.StatusTooManyRequests, "login.html", "Log in",
			loginData{Form: form, Error: msg.GetMessage("auth.error.too-many-attempts")})
	case err != nil:
		return err
	}

	if err := controller.startSession(c, *user); err != nil {
		return err
	}

	if next := safeNext(form.Next); next != "" {
		return c.Redirect(http.StatusFound, next)
	}
	return controller.web.redirect(c, "/todos")
}

func (controller *AuthController) Logout(c echo.Context) error {
	if current := middleware.CurrentSession(c); current != nil {
		if err := controller.web.Sessions.End(c.Request().Context(), current.Key); err != nil {
			return err
		}
	}
	c.SetCookie(controller.newCookie("", -1, time.Unix(0, 0)))
	return controller.web.redirect(c, "/login")
}

func (controller *AuthController) RegisterPage(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return controller.web.redirect(c, "/todos")
	}
	return controller.web.render(c, http.StatusOK, "register.html", "Register", registerData{})
}

func (controller *AuthController) Register(c echo.Context) error {
	if middleware.CurrentUser(c) != nil {
		return controller.web.redirect(c, "/todos")
	}

	var form model.RegisterForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	user, err := controller.useCase.Register(c.Request().Context(), form)
	if err != nil {
		var validation *model.ValidationError
		if !errors.As(err, &validation) {
			return err
		}
		data := registerData{
			Form:   model.RegisterForm{Username: form.Username},
			Error:  firstError(validation, "username", "password", "password_confirm"),
			Errors: validation.Fields,
		}
		return controller.web.render(c, http.StatusOK, "register.html", "Register", data)
	}

	if err := controller.startSession(c, *user); err != nil {
		return err
	}
	return controller.web.redirect(c, "/todos")
}

// startSession replaces any previous session of the browser with a fresh one for user.
func (controller *AuthController) startSession(c echo.Context, user entity.User) error {
	ctx := c.Request().Context()
	if previous := middleware.CurrentSession(c); previous != nil {
		if err := controller.web.Sessions.End(ctx, previous.Key); err != nil {
			return err
		}
	}

	started, err := controller.web.Sessions.Start(ctx, user)
	if err != nil {
		return err
	}
	middleware.SetSession(c, started)

	ttl := controller.web.Sessions.TTL()
	c.SetCookie(controller.newCookie(started.Key, int(ttl.Seconds()), started.ExpiresAt))
	return nil
}

func (controller *AuthController) newCookie(value string, maxAge int, expires time.Time) *http.Cookie {
	path := controller.web.Base
	if path == "" {
		path = "/"
	}
	return &http.Cookie{
		Name:     controller.cookie.Name,
		Value:    value,
		Path:     path,
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   controller.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// safeNext accepts only local absolute paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	if strings.ContainsAny(next, "\r\n") {
		return ""
	}
	return next
}

func firstError(validation *model.ValidationError, fields ...string) string {
	for _, field := range fields {
		if message, ok := validation.Fields[field]; ok {
			return message
		}
	}
	return ""
}
