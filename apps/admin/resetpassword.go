package main

import (
	"context"

	"github.com/hopenndrive/admin/core/user"
)

func (cli *commandLine) resetPassword(email, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !user.CheckPasswordStrength(pwd).OK() {
		return errWeakPassword
	}
	_, err = cli.usrSvc.SetNewPassword(ctx, usr, pwd)
	return err
}
