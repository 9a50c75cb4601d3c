/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the TaskManager version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("taskmanager", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
