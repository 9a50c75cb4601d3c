/*
Copyright © 2025 shutteritch
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Reports   ReportsConfig   `mapstructure:"reports" validate:"required"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap" validate:"required"`
}

// DataConfig holds the flat-file storage locations.
type DataConfig struct {
	TasksFile string `mapstructure:"tasksFile" validate:"required"`
	UsersFile string `mapstructure:"usersFile" validate:"required"`
}

// ReportsConfig holds the generated report output locations.
type ReportsConfig struct {
	TaskOverviewFile string `mapstructure:"taskOverviewFile" validate:"required"`
	UserOverviewFile string `mapstructure:"userOverviewFile" validate:"required"`
}

// BootstrapConfig holds the default admin credentials written to the users
// file when it does not exist yet.
type BootstrapConfig struct {
	AdminUsername string `mapstructure:"adminUsername" validate:"required"`
	AdminPassword string `mapstructure:"adminPassword" validate:"required"`
}
