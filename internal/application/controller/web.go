package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-tracker/internal/application/middleware"
	"todo-tracker/internal/application/view"
	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/session"
	"todo-tracker/pkg/log"
	"todo-tracker/pkg/util/numberutils"
)

// Web holds what every HTML controller shares: the URL prefix, flash notices and the login guard.
type Web struct {
	Base     string
	Sessions session.UseCase
	Now      func() time.Time
}

func NewWeb(base string, sessions session.UseCase) *Web {
	return &Web{
		Base:     strings.TrimRight(base, "/"),
		Sessions: sessions,
		Now:      time.Now,
	}
}

// RequireLogin guards routes that need a user.
func (web *Web) RequireLogin() echo.MiddlewareFunc {
	return middleware.RequireLogin(web.Base + "/login")
}

func (web *Web) page(c echo.Context, title string, data any) view.Page {
	page := view.Page{
		Title:     title,
		Base:      web.Base,
		User:      middleware.CurrentUser(c),
		CSRFToken: middleware.CSRFToken(c),
		Today:     web.Now(),
		Data:      data,
	}

	if current := middleware.CurrentSession(c); current != nil {
		notices, err := web.Sessions.TakeNotices(c.Request().Context(), current)
		if err != nil {
			log.Error("failed to read session notices", zap.Error(err))
		}
		page.Notices = notices
	}
	return page
}

func (web *Web) render(c echo.Context, status int, template string, title string, data any) error {
	return c.Render(status, template, web.page(c, title, data))
}

// notify queues a flash notice for the next rendered page.
func (web *Web) notify(c echo.Context, notice string) {
	current := middleware.CurrentSession(c)
	if current == nil {
		return
	}
	if err := web.Sessions.AddNotice(c.Request().Context(), current, notice); err != nil {
		log.Error("failed to store session notice", zap.Error(err))
	}
}

func (web *Web) redirect(c echo.Context, path string) error {
	return c.Redirect(http.StatusFound, web.Base+path)
}

// owner returns the logged in user. Routes using it are guarded by RequireLogin.
func owner(c echo.Context) *entity.User {
	return middleware.CurrentUser(c)
}

// pathID parses the :id route parameter; anything but a positive integer is not found.
func pathID(c echo.Context) (uint, error) {
	id, ok := numberutils.ToUint(c.Param("id"))
	if !ok {
		return 0, model.ErrNotFound
	}
	return id, nil
}

// isAsync reports whether the caller expects JSON instead of a page.
func isAsync(c echo.Context) bool {
	request := c.Request()
	return request.Header.Get("X-Requested-With") == "XMLHttpRequest" ||
		strings.Contains(request.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}
