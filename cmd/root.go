package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blank-video/infrastructure/config"
	"blank-video/infrastructure/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile   string
	logLevel  string
	cfg       *config.Config
	cfgErr    error
	appLogger *zap.Logger
)

// OutputWriter allows capturing output in tests
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

var rootCmd = &cobra.Command{
	Use:   "blank-video <input> [output]",
	Short: "Replace a video's picture with a blank frame, keeping only its audio",
	Long: `blank-video extracts the audio track of a video without re-encoding it and
muxes it onto a black 1280x720 video cut to the audio's length. The result is
a much smaller file that web-based editors can load quickly.

If no output path is given, the output is written next to the input as
<input-name>_blank<input-ext>.

An input file named like a subcommand (setup, doctor, config) must be given
with a directory prefix, for example ./doctor.

Example:
  blank-video clip.mp4
  blank-video "/path/to/lecture.mkv" lecture_audio_only.mkv`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceErrors: true,
	RunE:          runBlank,
}

// Execute runs the root command, exiting non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.DefaultPath()))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = config.DefaultPath()
	}

	cfg, cfgErr = config.LoadOrDefault(cfgFile)
	if cfgErr != nil {
		// Commands that need config check GetConfig and report cfgErr
		cfg = nil
	}

	level := logLevel
	if level == "" && cfg != nil {
		level = cfg.Log.Level
	}

	logger, err := logging.New(level, os.Stderr)
	if err != nil {
		logger, _ = logging.New("info", os.Stderr)
		logger.Warn("ignoring log level", zap.Error(err))
	}
	appLogger = logger
}

// GetConfig returns the loaded configuration
func GetConfig() (*config.Config, error) {
	if cfg == nil {
		if cfgErr == nil {
			cfgErr = errors.New("configuration not loaded")
		}
		return nil, fmt.Errorf("%w; fix or remove %s, or run 'blank-video setup'", cfgErr, cfgFile)
	}
	return cfg, nil
}

// Logger returns the application logger
func Logger() *zap.Logger {
	if appLogger == nil {
		return zap.NewNop()
	}
	return appLogger
}
