package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/iw2rmb/codebox"
	"github.com/iw2rmb/codebox/boxes"
	"github.com/iw2rmb/codebox/codeinput"
	"github.com/iw2rmb/codebox/internal/config"
)

type options struct {
	length     int
	policy     string
	hidden     bool
	focus      int
	code       string
	clickLast  bool
	keepFocus  bool
	configPath string
	watch      bool
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "codebox",
		Short:         "Enter a one-time code in a row of single-character boxes",
		Version:       codebox.Version(),
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "n", 4, "number of boxes")
	f.StringVarP(&opts.policy, "policy", "p", "digits", "accepted characters: digits or any")
	f.BoolVar(&opts.hidden, "hidden", false, "mask entered characters")
	f.IntVar(&opts.focus, "focus", 0, "box focused on start, -1 for none")
	f.StringVar(&opts.code, "code", "", "initial code")
	f.BoolVar(&opts.clickLast, "click-last", false, "focus the last box when clicking a complete code")
	f.BoolVar(&opts.keepFocus, "keep-focus", false, "keep focus on a box cleared with backspace")
	f.StringVarP(&opts.configPath, "config", "c", "", "settings file (toml, yaml or json)")
	f.BoolVarP(&opts.watch, "watch", "w", false, "reload the settings file when it changes")
	f.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	return cmd
}

// buildConfig turns flags, and the settings file when given, into the input
// configuration.
func buildConfig(opts options, logger *slog.Logger) (codeinput.Config, error) {
	policy, err := boxes.ParsePolicy(opts.policy)
	if err != nil {
		return codeinput.Config{}, err
	}

	cfg := codeinput.DefaultConfig()
	cfg.CodeLength = opts.length
	cfg.Policy = policy
	cfg.Hidden = opts.hidden
	cfg.Code = opts.code
	cfg.FocusLastOnClickIfFilled = opts.clickLast
	cfg.PrevFocusableAfterClear = !opts.keepFocus
	if opts.focus >= 0 {
		cfg.InitialFocusIndex = codeinput.FocusIndex(opts.focus)
	}
	cfg.Clipboard = codeinput.SystemClipboard{}
	cfg.Logger = logger

	if opts.configPath != "" {
		file, err := config.Load(opts.configPath)
		if err != nil {
			return codeinput.Config{}, err
		}
		logUnknown(logger, file)
		cfg = cfg.Merge(file.Overrides())
	}

	if err := cfg.Validate(); err != nil {
		return codeinput.Config{}, err
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	logger, closeLog, err := newLogger(opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := buildConfig(opts, logger)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if opts.watch && opts.configPath != "" {
		watcher, err = config.Watch(opts.configPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(cfg), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	var final tea.Model
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		var err error
		final, err = p.Run()
		return err
	})
	if watcher != nil {
		g.Go(func() error {
			forwardReloads(gctx, watcher, p, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	if m, ok := final.(model); ok && m.submitted {
		fmt.Fprintln(out, m.code)
	}
	return nil
}

// forwardReloads hands every reloaded settings file to the running program
// until ctx is done.
func forwardReloads(ctx context.Context, w *config.Watcher, p *tea.Program, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case f, ok := <-w.Updates():
			if !ok {
				return
			}
			logUnknown(logger, f)
			logger.Info("config reloaded")
			p.Send(reloadMsg{overrides: f.Overrides()})
		case err := <-w.Errors():
			logger.Warn("config reload failed", "err", err)
			p.Send(reloadErrMsg{err: err})
		}
	}
}

func logUnknown(logger *slog.Logger, f *config.File) {
	for _, k := range f.Unknown() {
		logger.Warn("unknown config key", "key", k)
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { _ = f.Close() }, nil
}
