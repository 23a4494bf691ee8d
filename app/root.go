// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/clinicdesk/clinicdesk/internal/config"
)

const dotEnvFile = ".env"

var rootCmd = &cobra.Command{
	Use:   "clinicdesk",
	Short: "clinicdesk is an appointment booking backend for a clinic",
	Long: `clinicdesk stores appointment requests, lets the clinic confirm or delete
them and notifies the doctor by email and WhatsApp when an appointment is confirmed.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Directory containing main.toml (environment variables only when empty)",
	)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads .env, the config file and the environment.
func loadConfig() (config.Config, error) {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return config.Config{}, err
	}

	return config.ReadConfig(configPath)
}
