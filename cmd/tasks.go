/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/manifoldco/promptui"

	"github.com/shutteritch/TaskManager/internal/session"
	"github.com/shutteritch/TaskManager/internal/task"
	"github.com/shutteritch/TaskManager/internal/ui"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/types"
)

const (
	actionComplete   = "Mark it complete"
	actionReassign   = "Reassign it to another user"
	actionReschedule = "Change its due date"
	actionBack       = "Back"
)

// noDelimiter rejects prompt input that would break the stored record
// format, mirroring the validation gate in the models package.
func noDelimiter(input string) error {
	if input == "" {
		return errors.New("input cannot be empty")
	}
	return models.CheckDelimiterFree("input", input)
}

// promptDate asks for a date in the storage layout, e.g. "24 Dec 2022".
func promptDate(label string) (time.Time, error) {
	raw, err := (&promptui.Prompt{
		Label: label + " (DD MMM YYYY)",
		Validate: func(input string) error {
			if _, err := time.Parse(models.DateLayout, input); err != nil {
				return errors.New("invalid date, use the format 24 Dec 2022")
			}
			return nil
		},
	}).Run()
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(models.DateLayout, raw)
}

// promptExistingUser asks for a username until it matches a registered
// account.
func (a *app) promptExistingUser(label string) (string, error) {
	for {
		name, err := (&promptui.Prompt{Label: label, Validate: noDelimiter}).Run()
		if err != nil {
			return "", err
		}
		known, err := a.service.UserExists(name)
		if err != nil {
			return "", err
		}
		if known {
			return name, nil
		}
		fmt.Println(ui.Errorf("That user does not exist. Please enter a valid username."))
	}
}

// addTaskFlow prompts for a new task and appends it. Any logged-in user
// can assign a task to any registered user.
func (a *app) addTaskFlow() error {
	fmt.Println(ui.Header("ADD A TASK"))

	owner, err := a.promptExistingUser("Name of person assigned to task")
	if err != nil {
		return err
	}
	title, err := (&promptui.Prompt{Label: "Title of task", Validate: noDelimiter}).Run()
	if err != nil {
		return err
	}
	description, err := (&promptui.Prompt{Label: "Description of task", Validate: noDelimiter}).Run()
	if err != nil {
		return err
	}
	due, err := promptDate("Due date of task")
	if err != nil {
		return err
	}

	created, err := a.service.Create(owner, title, description, due)
	if err != nil {
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(ui.Errorf("Task rejected: %v", verr))
			return nil
		}
		return err
	}

	fmt.Println(ui.Success("Your new task:"))
	fmt.Println(ui.TaskCard(created, a.service.Overdue(created)))
	return nil
}

// viewAllFlow prints every task in priority order.
func (a *app) viewAllFlow() error {
	all, err := a.service.All()
	if err != nil {
		return err
	}

	fmt.Println(ui.Header("ALL TASKS"))
	if len(all) == 0 {
		fmt.Println(ui.Warn("There are no tasks."))
		return nil
	}
	for _, t := range task.PrioritySort(all) {
		fmt.Println(ui.TaskCard(t, a.service.Overdue(t)))
	}
	return nil
}

// viewMineFlow lists the session user's tasks and offers inline
// mark-complete, reassign, and reschedule on the selected one. Each pass
// around the loop re-reads the file, so edits by other users show up
// immediately.
func (a *app) viewMineFlow(sess session.Session) error {
	for {
		mine, err := a.service.ForOwner(sess.Username)
		if err != nil {
			return err
		}
		if len(mine) == 0 {
			fmt.Println(ui.Warn("You have no tasks. Add a task from the main menu to create your first one."))
			return nil
		}
		mine = task.PrioritySort(mine)

		fmt.Println(ui.Header(fmt.Sprintf("ALL %s'S TASKS", sess.Username)))
		items := make([]string, 0, len(mine)+1)
		for _, t := range mine {
			label := t.Title + " (pending)"
			if t.Completed {
				label = t.Title + " (completed)"
			} else if a.service.Overdue(t) {
				label = t.Title + " (pending, overdue)"
			}
			items = append(items, label)
		}
		items = append(items, actionBack)

		idx, _, err := (&promptui.Select{Label: "Select a task", Items: items, Size: len(items)}).Run()
		if err != nil {
			return err
		}
		if idx == len(mine) {
			return nil
		}

		if err := a.editTaskFlow(mine[idx]); err != nil {
			return err
		}
	}
}

// editTaskFlow shows one task and applies the chosen mutation, surfacing
// conflicts with an explicit retry instruction.
func (a *app) editTaskFlow(t models.Task) error {
	fmt.Println(ui.TaskCard(t, a.service.Overdue(t)))

	_, action, err := (&promptui.Select{
		Label: "Would you like to",
		Items: []string{actionComplete, actionReassign, actionReschedule, actionBack},
		Size:  4,
	}).Run()
	if err != nil {
		return err
	}
	if action == actionBack {
		return nil
	}
	if t.Completed {
		fmt.Println(ui.Warn(fmt.Sprintf("%q is complete and can no longer be edited.", t.Title)))
		return nil
	}

	var updated models.Task
	switch action {
	case actionComplete:
		updated, err = a.service.MarkComplete(t)
	case actionReassign:
		var newOwner string
		newOwner, err = a.promptExistingUser("Who is now assigned to this task?")
		if err != nil {
			return err
		}
		updated, err = a.service.Reassign(t, newOwner)
	case actionReschedule:
		var due time.Time
		due, err = promptDate("New due date of the task")
		if err != nil {
			return err
		}
		updated, err = a.service.Reschedule(t, due)
	}

	if err != nil {
		var cerr *types.ConflictError
		if errors.As(err, &cerr) {
			fmt.Println(ui.Errorf("This task was changed by another user while you were editing it."))
			fmt.Println(ui.Warn("The list will refresh; please find the task again and retry your change."))
			return nil
		}
		var verr *types.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(ui.Errorf("Edit rejected: %v", verr))
			return nil
		}
		return err
	}

	fmt.Println(ui.Success("Your updated task:"))
	fmt.Println(ui.TaskCard(updated, a.service.Overdue(updated)))
	return nil
}
