package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/namechange/internal/batch"
	"github.com/handiism/namechange/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "namechange",
	Short: "Rename and tag MP3 files from their file names",
	Long: `namechange rewrites MP3 file names into a consistent pattern and
writes ID3 tags derived from the names.

The input format lists the fields of the existing names in order; the
delimiter characters given with --sep split a name into those fields.

Format tokens:
  artist (n)   number (#)   title (t)   separator (s)

Examples:
  namechange rename ./album artist number title
  namechange rename ./album "#" title --artist "Bob Dylan" --sep "-_"
  namechange rename ./album artist number title --new-format number,s,title
  namechange tag ./album --genre Rock
  namechange tui ./album`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.namechange/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// configPath returns the --config value or the default location.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// loadSettings reads the config file; a missing file yields defaults.
func loadSettings() (*config.Settings, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Using config file: %s", path)
	if verbose {
		settings.Verbose = true
	}
	return settings, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logrus.Warn("Interrupted, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

// logProgress writes batch progress events through logrus.
func logProgress(event batch.ProgressEvent) {
	switch event.Level {
	case batch.LevelError:
		logrus.Error(event.Message)
	case batch.LevelWarning:
		logrus.Warn(event.Message)
	case batch.LevelVerbose:
		logrus.Debug(event.Message)
	default:
		logrus.Info(event.Message)
	}
}
