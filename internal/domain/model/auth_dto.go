package model

import "strings"

type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

// RegisterForm limits passwords to 72 bytes, the most bcrypt hashes.
type RegisterForm struct {
	Username        string `form:"username" validate:"required,max=150"`
	Password        string `form:"password" validate:"required,maxbytes=72"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}

// Trimmed trims the username only; passwords are taken verbatim.
func (f RegisterForm) Trimmed() RegisterForm {
	f.Username = strings.TrimSpace(f.Username)
	return f
}
