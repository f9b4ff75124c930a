package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-tracker/internal/domain/entity"
	"todo-tracker/internal/domain/model"
	"todo-tracker/internal/domain/usecase/project"
	"todo-tracker/pkg/msg"
)

type ProjectController struct {
	api     *echo.Group
	web     *Web
	useCase project.UseCase
}

type projectListData struct {
	Projects []entity.Project
}

type projectFormData struct {
	Form   model.ProjectForm
	Errors map[string]string
}

type projectDeleteData struct {
	Project *entity.Project
}

func NewProjectController(api *echo.Group, web *Web, useCase project.UseCase) *ProjectController {
	return &ProjectController{api: api, web: web, useCase: useCase}
}

// InitProjectRoutes initializes project routes
func (controller *ProjectController) InitProjectRoutes() {
	requireLogin := controller.web.RequireLogin()

	controller.api.GET("/projects", controller.List, requireLogin)
	controller.api.GET("/projects/create", controller.CreatePage, requireLogin)
	controller.api.POST("/projects/create", controller.Create, requireLogin)
	controller.api.GET("/projects/:id/delete", controller.DeletePage, requireLogin)
	controller.api.POST("/projects/:id/delete", controller.Delete, requireLogin)
}

func (controller *ProjectController) List(c echo.Context) error {
	projects, err := controller.useCase.List(c.Request().Context(), owner(c).ID)
	if err != nil {
		return err
	}
	return controller.web.render(c, http.StatusOK, "project_list.html", "Projects", projectListData{Projects: projects})
}

func (controller *ProjectController) CreatePage(c echo.Context) error {
	return controller.web.render(c, http.StatusOK, "project_form.html", "New project", projectFormData{})
}

func (controller *ProjectController) Create(c echo.Context) error {
	var form model.ProjectForm
	if err := c.Bind(&form); err != nil {
		return err
	}

	_, err := controller.useCase.Create(c.Request().Context(), owner(c).ID, form)
	if fields, ok := validationFields(err); ok {
		return controller.web.render(c, http.StatusOK, "project_form.html", "New project", projectFormData{Form: form, Errors: fields})
	}
	if err != nil {
		return err
	}

	controller.web.notify(c, msg.GetMessage("project.notice.created"))
	return controller.web.redirect(c, "/projects")
}

func (controller *ProjectController) DeletePage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	existing, err := controller.useCase.FindByID(c.Request().Context(), owner(c).ID, id)
	if err != nil {
		return err
	}
	return controller.web.render(c, http.StatusOK, "project_confirm_delete.html", "Delete project", projectDeleteData{Project: existing})
}

func (controller *ProjectController) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	deleted, err := controller.useCase.Delete(c.Request().Context(), owner(c).ID, id)
	if err != nil {
		return err
	}

	controller.web.notify(c, msg.GetMessage("project.notice.deleted", deleted.Name))
	return controller.web.redirect(c, "/projects")
}
