package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/project"
	"todo-tracker/internal/domain/usecase/todo"
	"todo-tracker/pkg/msg"
	"todo-tracker/pkg/util/numberutils"
)

type TodoController struct {
	api      *echo.Group
	web      *Web
	useCase  todo.UseCase
	projects project.UseCase
}

type todoListData struct {
	Todos    []entity.Todo
	Projects []entity.Project
	Filter   model.TodoFilterParams
}

type todoFormData struct {
	Action     string
	FormAction string
	Form       model.TodoForm
	Errors     map[string]string
	Projects   []entity.Project
}

type todoDeleteData struct {
	Todo *entity.Todo
}

func NewTodoController(api *echo.Group, web *Web, useCase todo.UseCase, projects project.UseCase) *TodoController {
	return &TodoController{api: api, web: web, useCase: useCase, projects: projects}
}

// InitTodoRoutes initializes to-do routes
func (controller *TodoController) InitTodoRoutes() {
	requireLogin := controller.web.RequireLogin()

	controller.api.GET("/", controller.Index)
	controller.api.GET("/todos", controller.List, requireLogin)
	controller.api.GET("/create", controller.CreatePage, requireLogin)
	controller.api.POST("/create", controller.Create, requireLogin)
	controller.api.GET("/:id/edit", controller.EditPage, requireLogin)
	controller.api.POST("/:id/edit", controller.Edit, requireLogin)
	controller.api.GET("/:id/delete", controller.DeletePage, requireLogin)
	controller.api.POST("/:id/delete", controller.Delete, requireLogin)
	controller.api.Match([]string{http.MethodGet, http.MethodPost}, "/:id/toggle", controller.Toggle, requireLogin)
}

func (controller *TodoController) Index(c echo.Context) error {
	return controller.web.redirect(c, "/todos")
}

func (controller *TodoController) List(c echo.Context) error {
	var params model.TodoFilterParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return err
	}

	ctx := c.Request().Context()
	todos, err := controller.useCase.List(ctx, owner(c).ID, params.Filter())
	if err != nil {
		return err
	}
	projects, err := controller.projects.List(ctx, owner(c).ID)
	if err != nil {
		return err
	}

	data := todoListData{Todos: todos, Projects: projects, Filter: params}
	return controller.web.render(c, http.StatusOK, "todo_list.html", "Tasks", data)
}

func (controller *TodoController) CreatePage(c echo.Context) error {
	form := model.TodoForm{Priority: strconv.Itoa(int(entity.DefaultPriority))}

	if raw := c.QueryParam("project"); raw != "" {
		id, ok := numberutils.ToUint(raw)
		if !ok {
			return model.ErrNotFound
		}
		selected, err := controller.projects.FindByID(c.Request().Context(), owner(c).ID, id)
		if err != nil {
			return err
		}
		form.Project = strconv.FormatUint(uint64(selected.ID), 10)
	}

	return controller.renderForm(c, http.StatusOK, "Create", controller.web.Base+"/create", form, nil)
}

func (controller *TodoController) Create(c echo.Context) error {
	var form model.TodoForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err := controller.useCase.Create(c.Request().Context(), owner(c).ID, form)
	if fields, ok := validationFields(err); ok {
		return controller.renderForm(c, http.StatusOK, "Create", controller.web.Base+"/create", form, fields)
	}
	if err != nil {
		return err
	}

	controller.web.notify(c, msg.GetMessage("todo.notice.created"))
	return controller.web.redirect(c, "/todos")
}

func (controller *TodoController) EditPage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := controller.useCase.FindByID(c.Request().Context(), owner(c).ID, id)
	if err != nil {
		return err
	}

	return controller.renderForm(c, http.StatusOK, "Edit", controller.editAction(id), formFromTodo(existing), nil)
}

func (controller *TodoController) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form model.TodoForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err = controller.useCase.Update(c.Request().Context(), owner(c).ID, id, form)
	if fields, ok := validationFields(err); ok {
		return controller.renderForm(c, http.StatusOK, "Edit", controller.editAction(id), form, fields)
	}
	if err != nil {
		return err
	}

	controller.web.notify(c, msg.GetMessage("todo.notice.updated"))
	return controller.web.redirect(c, "/todos")
}

func (controller *TodoController) DeletePage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := controller.useCase.FindByID(c.Request().Context(), owner(c).ID, id)
	if err != nil {
		return err
	}
	return controller.web.render(c, http.StatusOK, "todo_confirm_delete.html", "Delete task", todoDeleteData{Todo: existing})
}

func (controller *TodoController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := controller.useCase.Delete(c.Request().Context(), owner(c).ID, id); err != nil {
		return err
	}

	controller.web.notify(c, msg.GetMessage("todo.notice.deleted"))
	return controller.web.redirect(c, "/todos")
}

func (controller *TodoController) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	completed, err := controller.useCase.ToggleComplete(c.Request().Context(), owner(c).ID, id)
	if err != nil {
		return err
	}

	status := "incomplete"
	if completed {
		status = "complete"
	}

	if isAsync(c) {
		return c.JSON(http.StatusOK, model.ToggleResponse{Status: status, Completed: completed})
	}
	controller.web.notify(c, msg.GetMessage("todo.notice.toggled", status))
	return controller.web.redirect(c, "/todos")
}

func (controller *TodoController) renderForm(c echo.Context, status int, action, formAction string, form model.TodoForm, fieldErrors map[string]string) error {
	projects, err := controller.projects.List(c.Request().Context(), owner(c).ID)
	if err != nil {
		return err
	}

	data := todoFormData{
		Action:     action,
		FormAction: formAction,
		Form:       form,
		Errors:     fieldErrors,
		Projects:   projects,
	}
	return controller.web.render(c, status, "todo_form.html", action+" task", data)
}

func (controller *TodoController) editAction(id uint) string {
	return controller.web.Base + "/" + strconv.FormatUint(uint64(id), 10) + "/edit"
}

func formFromTodo(existing *entity.Todo) model.TodoForm {
	form := model.TodoForm{
		Name:        existing.Name,
		Description: existing.Description,
		DueDate:     existing.DueDateString(),
		Priority:    strconv.Itoa(int(existing.Priority)),
	}
	if existing.Completed {
		form.Completed = "on"
	}
	if existing.ProjectID != nil {
		form.Project = strconv.FormatUint(uint64(*existing.ProjectID), 10)
	}
	return form
}

// validationFields extracts the per-field messages of a rejected form.
func validationFields(err error) (map[string]string, bool) {
	var validation *model.ValidationError
	if errors.As(err, &validation) {
		return validation.Fields, true
	}
	return nil, false
}
