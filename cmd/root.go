package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/JeanKossaifi/videobrowser/config"
)

// Options holds shared flags for the browse, list and check commands.
type Options struct {
	DataDir    string
	ConfigPath string
	Debug      bool
	LogJSON    bool
}

var (
	opts   Options
	logger *slog.Logger
)

// Version is the application version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "videobrowser",
	Short:   "Frame-by-frame browser for videos with facial landmark annotations",
	Version: Version, // This enables the --version flag
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if opts.Debug {
			level = slog.LevelDebug
		}
		logger = NewLogger(level)
	},
	// Running without a subcommand opens the browser window directly.
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse()
	},
}

// NewLogger returns a structured slog.Logger with the given level. The
// console handler is the default; --log-json switches to JSON records.
func NewLogger(level slog.Leveler) *slog.Logger {
	if opts.LogJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	})
	return slog.New(h)
}

// loadConfig resolves the settings path and loads it, falling back to
// defaults when no file exists yet. The debug flag overrides the file.
func loadConfig() (*config.Config, string) {
	path := opts.ConfigPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("config path resolution failed, using defaults", "error", err)
			return config.DefaultConfig(), ""
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", path, "error", err)
	}
	if opts.Debug {
		cfg.Debug = true
	}
	return cfg, path
}

func Execute() {
	// This tells Cobra not to print the version in the help text, which is cleaner.
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.DataDir, "data", ".", "root folder containing one subfolder of frames per video")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config.json (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable debug logging and runtime metrics")
	rootCmd.PersistentFlags().BoolVar(&opts.LogJSON, "log-json", false, "emit JSON log records instead of the console format")
}
