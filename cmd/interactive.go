/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/shutteritch/TaskManager/internal/session"
	"github.com/shutteritch/TaskManager/internal/ui"
)

const (
	menuRegister = "Register a user"
	menuAddTask  = "Add a task"
	menuViewAll  = "View all tasks"
	menuViewMine = "View my tasks"
	menuReports  = "Generate reports"
	menuStats    = "Display statistics"
	menuExit     = "Exit"
)

// runInteractive drives the whole session: login until it succeeds, then
// the menu loop until the user exits.
func (a *app) runInteractive() error {
	sess, err := a.login()
	if err != nil {
		return err
	}
	a.log.Debug(context.Background(), "login succeeded", "session", sess.ID, "user", sess.Username)

	for {
		choice, err := a.menu(sess)
		if err != nil {
			return err
		}

		switch choice {
		case menuRegister:
			err = a.registerUserFlow(sess)
		case menuAddTask:
			err = a.addTaskFlow()
		case menuViewAll:
			err = a.viewAllFlow()
		case menuViewMine:
			err = a.viewMineFlow(sess)
		case menuReports:
			err = a.generateReportsFlow(sess)
		case menuStats:
			err = a.displayStatsFlow(sess)
		case menuExit:
			fmt.Println("Goodbye!")
			return nil
		}
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			// Recoverable flow errors were already surfaced inside the
			// flow; anything reaching here is fatal (e.g. a corrupt file).
			return err
		}
	}
}

// login prompts for credentials until a stored user matches them.
func (a *app) login() (session.Session, error) {
	fmt.Println(ui.Header("LOGIN"))
	for {
		username, err := (&promptui.Prompt{Label: "Username"}).Run()
		if err != nil {
			return session.Session{}, err
		}
		password, err := (&promptui.Prompt{Label: "Password", Mask: '*'}).Run()
		if err != nil {
			return session.Session{}, err
		}

		sess, err := session.Login(a.users, username, password)
		if err == nil {
			return sess, nil
		}
		if errors.Is(err, session.ErrInvalidCredentials) {
			fmt.Println(ui.Errorf("That username and password combination does not match, please try again."))
			continue
		}
		return session.Session{}, err
	}
}

// menu shows the role-gated main menu and returns the selected item.
func (a *app) menu(sess session.Session) (string, error) {
	items := []string{menuAddTask, menuViewAll, menuViewMine, menuExit}
	if sess.IsAdmin() {
		items = []string{menuRegister, menuAddTask, menuViewAll, menuViewMine, menuReports, menuStats, menuExit}
	}

	prompt := promptui.Select{
		Label: fmt.Sprintf("Menu (%s)", sess.Username),
		Items: items,
		Size:  len(items),
	}
	_, choice, err := prompt.Run()
	return choice, err
}
