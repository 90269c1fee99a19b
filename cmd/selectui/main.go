package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectui/internal/config"
	"selectui/internal/logging"
	"selectui/internal/trace"
	"selectui/internal/ui"
)

type options struct {
	configPath string
	logFile    string
	noMouse    bool
	page       string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "selectui",
		Short: "Dropdown select demo for the terminal",
		Long: `selectui renders a small form of dropdown selects in the terminal.

Click a control to open its list and click an option to pick it; clicking
anywhere else closes the list. The keyboard works too: tab moves focus,
enter opens or picks, esc closes. SPC ? lists the remaining keys.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $SELECTUI_CONFIG or ~/.config/selectui/config.yaml)")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse input")
	f.StringVar(&opts.page, "page", "", "page to open first (form, trace, about)")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.Path = opts.logFile
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	if opts.page != "" {
		cfg.UI.StartPage = opts.page
	}

	logger := logging.New(logging.Config{
		Path:       cfg.Log.Path,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer logger.Close()

	ctx := cmd.Context()
	provider, err := trace.NewProvider(ctx, trace.Config{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Logf("trace shutdown: %v", err)
		}
	}()
	logger.Logf("start page=%s mouse=%t export=%t", cfg.UI.StartPage, cfg.UI.Mouse, provider.Enabled())

	model := ui.NewAppModel(cfg, ui.Services{
		Logger:   logger,
		Recorder: provider.Recorder(),
		Journal:  provider.Journal(),
	}).AsTeaModel()

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
