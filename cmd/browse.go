package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JeanKossaifi/videobrowser/app"
	"github.com/JeanKossaifi/videobrowser/debug"
	"github.com/JeanKossaifi/videobrowser/domain/dataset"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive frame browser",
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse() {
	cfg, cfgPath := loadConfig()

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
		debug.StartGoroutineLogger(2*time.Second, logger)
	}

	// Grayscale stays off at decode time; the presenter converts on render
	// so the view toggle can restore color without reloading.
	loader, err := dataset.Open(opts.DataDir, dataset.Options{
		ImageExt:  cfg.ImageExt,
		ShapeExt:  cfg.ShapeExt,
		CacheSize: cfg.CacheSize,
	}, logger)
	if err != nil {
		logger.Error("dataset load failed", "root", opts.DataDir, "error", err)
		os.Exit(1)
	}
	logger.Info("dataset loaded", "root", opts.DataDir, "videos", loader.Len())

	width := cfg.MaxPreviewW + 60
	height := cfg.MaxPreviewH + 320
	application := app.NewApp("Video Browser", width, height, cfg, logger, loader, cfgPath)
	application.Start()
}
