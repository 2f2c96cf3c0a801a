package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Logger ports.Logger
}

// CommandContext returns the command's context tagged with a correlation ID
// and a logger scoped to the operation.
func (a *AppContext) CommandContext(cmd *cobra.Command, operation string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if logging.GetCorrelationID(ctx) == "" {
		ctx = logging.WithCorrelationID(ctx, logging.GenerateCorrelationID())
	}
	if a == nil || a.Logger == nil {
		return ctx, nil
	}
	return ctx, a.Logger.With("operation", operation)
}

// configureLogger replaces the application logger with one writing to w at level.
func (a *AppContext) configureLogger(w io.Writer, level string) error {
	log, err := logging.New(logging.Options{Writer: w, Level: level, HumanReadable: true, Layer: "cli"})
	if err != nil {
		return err
	}
	a.Logger = log
	return nil
}
