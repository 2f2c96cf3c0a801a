package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/walkthrough/internal/config"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
)

func newValidateCmd(app *AppContext) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a tour definition and print its traversal order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateConfigPath(configPath); err != nil {
				return err
			}
			ctx, logger := app.CommandContext(cmd, "command.validate")
			return runValidate(ctx, cmd.OutOrStdout(), configPath, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to tour definition")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runValidate(ctx context.Context, out io.Writer, path string, logger ports.Logger) error {
	cfg, err := config.ParseFile(path)
	if err != nil {
		if logger != nil {
			logger.Error(ctx, "tour definition invalid", "path", path, "error", err)
		}
		return err
	}

	registry := cfg.Registry()
	fmt.Fprintf(out, "tour %q is valid (%d steps)\n", cfg.Name, registry.Len())
	for _, step := range registry.Steps() {
		fmt.Fprintf(out, "%3d. %-16s order=%d  %s\n", registry.Position(step), step.Name, step.Order, step.Text)
	}

	if logger != nil {
		logger.Debug(ctx, "tour definition valid", "path", path, "steps", registry.Len())
	}
	return nil
}
