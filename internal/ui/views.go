package ui

import (
	"fmt"
	"strings"

	"github.com/shutteritch/TaskManager/models"
)

// Header renders a section title.
func Header(title string) string {
	return StyleHeader.Render(title)
}

// TaskCard renders one task as a bordered card. The overdue flag is
// computed by the caller at display time; it is never stored.
func TaskCard(t models.Task, overdue bool) string {
	status := StylePending.Render("PENDING")
	if t.Completed {
		status = StyleCompleted.Render("COMPLETED")
	} else if overdue {
		status += StyleOverdue.Render(" & OVERDUE")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleSubtle.Render("Task:"), StyleTitle.Render(t.Title))
	fmt.Fprintf(&b, "%s %s\n", StyleSubtle.Render("Description:"), t.Description)
	fmt.Fprintf(&b, "%s %s\n", StyleSubtle.Render("Assigned to:"), t.Username)
	fmt.Fprintf(&b, "%s %s\n", StyleSubtle.Render("Date assigned:"), t.AssignedDate.Format(models.DateLayout))
	fmt.Fprintf(&b, "%s %s\n", StyleSubtle.Render("Due date:"), t.DueDate.Format(models.DateLayout))
	fmt.Fprintf(&b, "%s %s", StyleSubtle.Render("Status:"), status)
	return StyleCard.Render(b.String())
}

// Success renders a confirmation line.
func Success(msg string) string {
	return StyleSuccess.Render("✔ " + msg)
}

// Errorf renders an error line.
func Errorf(format string, args ...any) string {
	return StyleError.Render(fmt.Sprintf(format, args...))
}

// Warn renders a warning line.
func Warn(msg string) string {
	return StyleWarning.Render(msg)
}
