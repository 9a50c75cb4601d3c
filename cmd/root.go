/*
Copyright © 2025 shutteritch
*/
package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shutteritch/TaskManager/internal/logging"
	"github.com/shutteritch/TaskManager/internal/report"
	"github.com/shutteritch/TaskManager/internal/task"
	"github.com/shutteritch/TaskManager/models"
	"github.com/shutteritch/TaskManager/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands.
// Running it starts the interactive session: login, then the role-gated
// menu loop.
var rootCmd = &cobra.Command{
	Use:   "taskmanager",
	Short: "TaskManager tracks tasks for a group of users in flat text files.",
	Long: `TaskManager is a multi-user task tracker. Users log in, create tasks,
view all tasks, and edit or complete their own; the admin account can
register users and generate aggregate statistics reports.

The text files are the single source of truth: every view re-reads them,
and every edit is rejected if another user changed the same record since
it was read.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return app.runInteractive()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.taskmanager.yaml or $HOME/.taskmanager.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// app bundles the wired collaborators every command flow needs: the two
// stores, the task service, and the report writer.
type app struct {
	fs      afero.Fs
	log     logging.Logger
	tasks   store.TaskStore
	users   store.UserStore
	service *task.Service
	reports *report.Writer
}

// newApp wires stores and services against the configured file paths and
// bootstraps the users file with the default admin account when absent.
func newApp() (*app, error) {
	config := GetConfig()
	fs := afero.NewOsFs()
	log := logging.New(os.Stderr, config.Verbose)

	userStore := store.NewFileUserStore(fs, config.Data.UsersFile, log)
	if err := userStore.Bootstrap(models.User{
		Username: config.Bootstrap.AdminUsername,
		Password: config.Bootstrap.AdminPassword,
	}); err != nil {
		return nil, err
	}
	taskStore := store.NewFileTaskStore(fs, config.Data.TasksFile, log)

	gen := report.NewGenerator(taskStore, userStore)
	return &app{
		fs:      fs,
		log:     log,
		tasks:   taskStore,
		users:   userStore,
		service: task.NewService(taskStore, userStore, log),
		reports: report.NewWriter(gen, fs, config.Reports.TaskOverviewFile, config.Reports.UserOverviewFile),
	}, nil
}
