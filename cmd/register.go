/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/shutteritch/TaskManager/internal/session"
	"github.com/shutteritch/TaskManager/internal/ui"
	"github.com/shutteritch/TaskManager/models"
)

// registerUserFlow lets the admin add a new account. Username uniqueness
// is checked here, against a fresh read of the user file, before the
// append-only store is touched.
func (a *app) registerUserFlow(sess session.Session) error {
	if !sess.IsAdmin() {
		fmt.Println(ui.Errorf("You do not have permission to register users, please contact an administrator."))
		return nil
	}
	fmt.Println(ui.Header("REGISTER A USER"))

	var username string
	for {
		name, err := (&promptui.Prompt{Label: "New username", Validate: noDelimiter}).Run()
		if err != nil {
			return err
		}
		existing, err := a.users.List()
		if err != nil {
			return err
		}
		taken := false
		for _, u := range existing {
			if u.Username == name {
				taken = true
				break
			}
		}
		if taken {
			fmt.Println(ui.Errorf("That username already exists, please choose another."))
			continue
		}
		username = name
		break
	}

	var password string
	for {
		pw, err := (&promptui.Prompt{Label: "New password", Mask: '*', Validate: noDelimiter}).Run()
		if err != nil {
			return err
		}
		confirm, err := (&promptui.Prompt{Label: "Confirm password", Mask: '*'}).Run()
		if err != nil {
			return err
		}
		if pw != confirm {
			fmt.Println(ui.Errorf("Passwords do not match, please try again."))
			continue
		}
		password = pw
		break
	}

	newUser := models.User{Username: username, Password: password}
	if err := models.ValidateStruct(newUser); err != nil {
		return err
	}
	if err := a.users.Append(newUser); err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("User %q registered. Share their login details so they can begin using the system.", username)))
	return nil
}
