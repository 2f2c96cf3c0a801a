package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
}

func newRootCmd(app *AppContext) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "walkthrough",
		Short:         "walkthrough runs guided tours over a terminal application",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				return nil
			}
			return app.configureLogger(cmd.ErrOrStderr(), flags.logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(newRunCmd(app, flags))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
