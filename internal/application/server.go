// Package application assembles the echo server: middleware, renderer, error handling and routes.
package application

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-tracker/internal/application/controller"
	"todo-tracker/internal/application/middleware"
	"todo-tracker/internal/application/view"
	"todo-tracker/internal/domain/usecase/auth"
	"todo-tracker/internal/domain/usecase/health"
	"todo-tracker/internal/domain/usecase/project"
	"todo-tracker/internal/domain/usecase/session"
	"todo-tracker/internal/domain/usecase/todo"
	"todo-tracker/pkg/resource"
)

type Config struct {
	ContextPath  string
	CookieName   string
	CookieSecure bool
	CSRF         bool
}

func ConfigFromProperties() Config {
	return Config{
		ContextPath:  resource.GetString("app.server.context-path"),
		CookieName:   resource.GetString("app.session.cookie-name"),
		CookieSecure: resource.GetBool("app.session.secure"),
		CSRF:         resource.GetBool("app.security.csrf"),
	}
}

type UseCases struct {
	Auth    auth.UseCase
	Session session.UseCase
	Todo    todo.UseCase
	Project project.UseCase
	Health  health.UseCase
}

// NewServer wires every controller on a fresh echo instance.
func NewServer(config Config, useCases UseCases) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	base := strings.TrimRight(config.ContextPath, "/")
	web := controller.NewWeb(base, useCases.Session)
	e.HTTPErrorHandler = controller.NewHTTPErrorHandler(web)

	e.Pre(echomw.RemoveTrailingSlashWithConfig(echomw.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == base+"/"
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	middleware.SetupRequestLogger(e)
	if config.CSRF {
		middleware.SetupCSRF(e, config.CookieSecure)
	}
	e.Use(middleware.Session(useCases.Session, config.CookieName))

	api := e.Group(base)

	healthController := controller.NewHealthController(api, useCases.Health)
	authController := controller.NewAuthController(api, web,
		controller.CookieConfig{Name: config.CookieName, Secure: config.CookieSecure}, useCases.Auth)
	todoController := controller.NewTodoController(api, web, useCases.Todo, useCases.Project)
	projectController := controller.NewProjectController(api, web, useCases.Project)

	healthController.InitHealthRoutes()
	authController.InitAuthRoutes()
	todoController.InitTodoRoutes()
	projectController.InitProjectRoutes()

	return e, nil
}
