package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/JeanKossaifi/videobrowser/domain/dataset"
)

var reportPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Decode every frame and annotation under the data root and report problems",
	Run: func(cmd *cobra.Command, args []string) {
		runCheck()
	},
}

func init() {
	checkCmd.Flags().StringVar(&reportPath, "report", "", "write a YAML validation report to this path")
	rootCmd.AddCommand(checkCmd)
}

func runCheck() {
	cfg, _ := loadConfig()
	dopts := dataset.Options{ImageExt: cfg.ImageExt, ShapeExt: cfg.ShapeExt}

	total, err := dataset.FrameTotal(opts.DataDir, dopts)
	if err != nil {
		logger.Error("check failed", "root", opts.DataDir, "error", err)
		os.Exit(1)
	}
	if total <= 0 {
		total = -1 // spinner; nothing countable up front
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Checking frames"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	report, err := dataset.Check(opts.DataDir, dopts, func() { _ = bar.Add(1) })
	if err != nil {
		fmt.Fprintln(os.Stderr)
		logger.Error("check failed", "root", opts.DataDir, "error", err)
		os.Exit(1)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	printReport(report)

	if reportPath != "" {
		if err := dataset.WriteReport(report, reportPath); err != nil {
			logger.Error("report write failed", "path", reportPath, "error", err)
			os.Exit(1)
		}
		logger.Info("report written", "path", reportPath)
	}
	if !report.Valid {
		os.Exit(1)
	}
}

func printReport(r *dataset.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VIDEO\tFRAMES\tDIMENSIONS\tSTATUS")
	fmt.Fprintln(w, "-----\t------\t----------\t------")
	for _, v := range r.Videos {
		status := "ok"
		if len(v.Errors) > 0 {
			status = fmt.Sprintf("%d errors", len(v.Errors))
		} else if len(v.Warnings) > 0 {
			status = fmt.Sprintf("%d warnings", len(v.Warnings))
		}
		dims := "-"
		if v.Width > 0 {
			dims = fmt.Sprintf("%dx%d", v.Width, v.Height)
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", v.Name, v.Frames, dims, status)
	}
	w.Flush()

	for _, v := range r.Videos {
		for _, msg := range v.Warnings {
			logger.Warn(msg, "video", v.Name)
		}
		for _, msg := range v.Errors {
			logger.Error(msg, "video", v.Name)
		}
	}

	if r.Valid {
		fmt.Printf("\n%d frame pairs across %d videos, all readable\n", r.Frames, len(r.Videos))
	} else {
		fmt.Printf("\n%d readable frame pairs across %d videos, problems found\n", r.Frames, len(r.Videos))
	}
}
