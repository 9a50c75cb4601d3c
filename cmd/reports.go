/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/shutteritch/TaskManager/internal/session"
	"github.com/shutteritch/TaskManager/internal/ui"
)

// reportCmd regenerates both report files without entering the
// interactive session. Handy for cron or shell pipelines.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Regenerate the task and user overview report files",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		if err := app.reports.Generate(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Reports generated:"))
		fmt.Println("  " + app.reports.TaskOverviewPath())
		fmt.Println("  " + app.reports.UserOverviewPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

// generateReportsFlow regenerates both report files from the menu.
func (a *app) generateReportsFlow(sess session.Session) error {
	if !sess.IsAdmin() {
		fmt.Println(ui.Errorf("Only the admin account can generate reports."))
		return nil
	}
	if err := a.reports.Generate(); err != nil {
		return err
	}
	fmt.Println(ui.Success("Your reports have been generated:"))
	fmt.Println("  " + a.reports.TaskOverviewPath())
	fmt.Println("  " + a.reports.UserOverviewPath())
	return nil
}

// displayStatsFlow regenerates the reports, then shows whichever one the
// admin picks until they go back.
func (a *app) displayStatsFlow(sess session.Session) error {
	if !sess.IsAdmin() {
		fmt.Println(ui.Errorf("Only the admin account can display statistics."))
		return nil
	}
	if err := a.reports.Generate(); err != nil {
		return err
	}

	const (
		showTasks = "Task overview report"
		showUsers = "User overview report"
		back      = "Back to main menu"
	)
	for {
		_, choice, err := (&promptui.Select{
			Label: "Which report would you like to view?",
			Items: []string{showTasks, showUsers, back},
			Size:  3,
		}).Run()
		if err != nil {
			return err
		}

		var path string
		switch choice {
		case showTasks:
			path = a.reports.TaskOverviewPath()
		case showUsers:
			path = a.reports.UserOverviewPath()
		case back:
			return nil
		}

		contents, err := a.reports.Read(path)
		if err != nil {
			return err
		}
		fmt.Println(contents)
	}
}
