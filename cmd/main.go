package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stoicfocus/internal/audio"
	"stoicfocus/internal/core/timekeeper"
	"stoicfocus/internal/logging"
	"stoicfocus/internal/platform"
	"stoicfocus/internal/quotes"
	"stoicfocus/internal/storage"
	"stoicfocus/internal/ui/preferences"
)

const appName = "StoicFocus"

// Version metadata populated at build time via -ldflags.
var releaseVersion = "dev"

type options struct {
	configPath string
	quotesPath string
	terminal   bool
	mute       bool
	verbosity  int
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(&options{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "stoicfocus",
		Short:        "A focus timer that closes every session with a Stoic quote.",
		Args:         cobra.NoArgs,
		Version:      releaseVersion,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (default <user config dir>/StoicFocus/settings.yaml)")
	flags.StringVar(&opts.quotesPath, "quotes", "", "JSON or YAML quote list used instead of the bundled one")
	flags.BoolVar(&opts.terminal, "tui", false, "run in the terminal instead of opening a window")
	flags.BoolVar(&opts.mute, "mute", false, "do not play the completion chime")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides -v")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	logger, err := logging.Setup(logging.Options{Verbosity: opts.verbosity, Level: opts.logLevel})
	if err != nil {
		return err
	}

	settings, err := loadSettings(opts)
	if err != nil {
		return err
	}
	applyLogLevel(logger, opts, settings.LogLevel)

	guard, err := platform.AcquireSingleInstance(platform.LockKey(appName))
	if errors.Is(err, platform.ErrAlreadyRunning) {
		logger.WithError(err).Info("another timer is already running")
		return nil
	}
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		if err := guard.Release(); err != nil {
			logger.WithError(err).Debug("release instance lock")
		}
	}()
	logger.WithFields(logrus.Fields{
		"lock":    guard.Key(),
		"address": guard.Address(),
	}).Debug("instance lock held")

	keeperOptions := newKeeperOptions(settings, opts, logger)
	logger.WithFields(logrus.Fields{
		"focus":    settings.Timer.FocusMinutes,
		"break":    settings.Timer.BreakMinutes,
		"terminal": opts.terminal,
	}).Info("starting")

	if opts.terminal {
		return runTerminal(ctx, settings, keeperOptions, logger)
	}
	return runDesktop(ctx, settings, keeperOptions, logger)
}

func loadSettings(opts *options) (preferences.Settings, error) {
	var (
		settings preferences.Settings
		err      error
	)
	if opts.configPath != "" {
		settings, err = storage.LoadSettingsFile(opts.configPath, false)
	} else {
		settings, err = storage.LoadSettings(appName)
	}
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if opts.quotesPath != "" {
		settings.QuotesPath = opts.quotesPath
	}
	return settings, nil
}

// applyLogLevel honours log_level from the settings file unless a flag set the level.
func applyLogLevel(logger *logrus.Logger, opts *options, configured string) {
	if configured == "" || opts.logLevel != "" || opts.verbosity > 0 {
		return
	}
	level, err := logging.ParseLevel(configured)
	if err != nil {
		logger.WithError(err).Warn("ignoring log_level from settings")
		return
	}
	logger.SetLevel(level)
}

func newKeeperOptions(settings preferences.Settings, opts *options, logger logrus.FieldLogger) timekeeper.Options {
	source := quotes.BundledSource(nil)
	if settings.QuotesPath != "" {
		source = quotes.FileSource(settings.QuotesPath, nil)
	}

	var chime timekeeper.Chime = audio.Mute{}
	if !opts.mute {
		chime = audio.NewPlayer(audio.Chime(), settings.Volume, logger)
	}

	return timekeeper.Options{
		Chime:  chime,
		Quotes: source,
		Logger: logger,
	}
}
