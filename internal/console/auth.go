package console

import (
	"context"
	"errors"

	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/services"
)

var errInvalidLogin = errors.New("invalid credentials")

// Login is the gate every command passes first. The role is returned for display
// only; it grants nothing.
func (a *App) Login(ctx context.Context, form LoginForm) (string, Result) {
	var role string
	res := a.run("login", func() (string, error) {
		var err error
		role, err = a.svc.Auth.Login(ctx, dtos.LoginRequest{Username: form.Username, Password: form.Password})
		if errors.Is(err, services.ErrInvalidCredentials) {
			return "", errInvalidLogin
		}
		if err != nil {
			return "", err
		}
		return "Logged in as " + form.Username, nil
	})
	return role, res
}

func (a *App) AddUser(ctx context.Context, form UserForm) Result {
	return a.run("user.add", func() (string, error) {
		if err := a.check(form); err != nil {
			return "", err
		}
		if err := a.svc.Auth.AddUser(ctx, form.Username, form.Password, form.Role); err != nil {
			return "", err
		}
		return "User " + form.Username + " added", nil
	})
}
