package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"quotepage/internal/app"
	"quotepage/internal/config"
	"quotepage/internal/logging"
	"quotepage/internal/quote"
	"quotepage/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// componentToShow picks the page structuring that is mounted: either the one
// that uses a Controller or the one that keeps its state inline.
const componentToShow = app.WithController

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "quotepage",
		Short: "Show a quote and load a new random one on demand",
		Long: "quotepage shows a single quote in the terminal. Press r, enter or space\n" +
			"to load a new random quote from the built-in catalog, q to quit.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "override the log level (debug, info, warn, error)")
	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
	})
	defer func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "quotepage: closing log file: %v\n", err)
		}
	}()
	slog.SetDefault(logger)

	tel, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(shutdownCtx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	source := quote.NewSource(quote.Config{Logger: logger})
	onNewQuote := func(q string) {
		logger.Info("new quote", "quote", q)
	}

	model := app.NewAppModel(componentToShow, source, onNewQuote, logger)
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	model.Unmount()
	if err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
