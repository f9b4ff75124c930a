package model

import "strings"

type ProjectForm struct {
	Name        string `form:"name" validate:"required,max=255"`
	Description string `form:"description"`
}

func (f ProjectForm) Trimmed() ProjectForm {
	return ProjectForm{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
	}
}
