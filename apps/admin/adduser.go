package main

import (
	"github.com/bahati/malezi/core"
	"github.com/bahati/malezi/core/user"
)

// addUser updates or creates a user.User
func (cli *commandLine) addUser(name, uname, email, pwd string, isAdmin bool) error {
	uname = core.CleanString(uname, true /* lower */)
	email = core.CleanString(email, true /* lower */)

	usr, err := cli.usrSvc.GetByUsernameOrEmail(uname)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		roles := []string{user.RoleParent}
		if isAdmin {
			roles = user.AllRoles
		}
		_, err = cli.usrSvc.Create(user.NewUser{
			Name:            name,
			Username:        uname,
			Email:           email,
			Password:        pwd,
			PasswordConfirm: pwd,
			Roles:           roles,
		})
		return err
	}

	uu := user.UpdateUser{
		Name:            name,
		Password:        pwd,
		PasswordConfirm: pwd,
	}
	if isAdmin {
		uu.Roles = user.AllRoles
	}
	active := true
	uu.IsActive = &active
	_, err = cli.usrSvc.Update(usr.ID, uu)
	return err
}
