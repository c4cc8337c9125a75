package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hopenndrive/admin/core"
	"github.com/hopenndrive/admin/core/user"
)

// addUser creates a user account, or resets its password when it exists.
func (cli *commandLine) addUser(email, pwd string) error {
	ctx := context.Background()
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrSvc.GetByEmail(ctx, email)
	if err != nil {
		if errors.Cause(err) != user.ErrNotFound {
			return err
		}
		nu := user.NewUser{Email: email, Password: pwd, PasswordConfirm: pwd}
		if err := nu.Validate(cli.usrSvc); err != nil {
			return err
		}
		_, err = cli.usrSvc.Create(ctx, nu)
		return err
	}

	_, err = cli.usrSvc.SetNewPassword(ctx, usr, pwd)
	return err
}
