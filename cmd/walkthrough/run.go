package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/walkthrough/internal/config"
	"github.com/alexisbeaulieu97/walkthrough/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/walkthrough/internal/ports"
	"github.com/alexisbeaulieu97/walkthrough/internal/tui"
)

type runOptions struct {
	ConfigPath  string
	From        string
	LogFile     string
	LogLevel    string
	Interactive bool
}

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runProgram = func(m tea.Model) (tea.Model, error) {
		return tea.NewProgram(m, tea.WithAltScreen()).Run()
	}
)

func newRunCmd(app *AppContext, root *rootFlags) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a tour over the demo application screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.LogLevel = root.logLevel
			opts.Interactive = isTerminal()

			if err := validateConfigPath(opts.ConfigPath); err != nil {
				return err
			}

			ctx, logger := app.CommandContext(cmd, "command.run")
			err := runTour(ctx, cmd.OutOrStdout(), opts, logger)
			if err != nil && logger != nil {
				logger.Error(ctx, "run command failed", "error", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to tour definition")
	cmd.Flags().StringVar(&opts.From, "from", "", "Name of the step to start at")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write session logs to this file as JSON")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runTour(ctx context.Context, out io.Writer, opts runOptions, logger ports.Logger) error {
	if !opts.Interactive {
		return errors.New("walkthrough run requires an interactive terminal")
	}

	cfg, err := config.ParseFile(opts.ConfigPath)
	if err != nil {
		return err
	}

	if opts.From != "" && !hasStep(cfg, opts.From) {
		if logger != nil {
			logger.Warn(ctx, "start step not defined, starting at the first step", "from", opts.From)
		}
	}

	// The terminal belongs to the program while it runs; session logs are
	// buffered and replayed afterwards.
	buffer := logging.NewEventBuffer(0)
	model, err := tui.NewModel(ctx, tui.Options{
		Tour:   cfg,
		From:   opts.From,
		Logger: logging.NewBufferedLogger(buffer),
		Logs:   buffer,
	})
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Info(ctx, "starting tour", "tour", cfg.Name, "steps", len(cfg.Steps))
	}

	final, runErr := runProgram(model)

	if flushErr := flushSessionLogs(buffer, opts, logger); flushErr != nil && runErr == nil {
		runErr = flushErr
	}
	if runErr != nil {
		return fmt.Errorf("run tour: %w", runErr)
	}

	if m, ok := final.(tui.Model); ok {
		history := m.History()
		fmt.Fprintf(out, "visited %d steps: %s\n", len(history), strings.Join(history, " -> "))
	}
	return nil
}

func flushSessionLogs(buffer *logging.EventBuffer, opts runOptions, logger ports.Logger) error {
	if opts.LogFile == "" {
		buffer.Flush(logger)
		return nil
	}

	file, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	fileLogger, err := logging.New(logging.Options{Writer: file, Level: opts.LogLevel, Layer: "tui"})
	if err != nil {
		return err
	}
	buffer.Flush(fileLogger)
	return nil
}

func hasStep(cfg *config.Tour, name string) bool {
	for _, step := range cfg.Steps {
		if step.Name == name {
			return true
		}
	}
	return false
}
