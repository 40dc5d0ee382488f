package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/JeanKossaifi/videobrowser/domain/dataset"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List video folders found under the data root",
	Run: func(cmd *cobra.Command, args []string) {
		runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList() {
	cfg, _ := loadConfig()
	infos, err := dataset.Discover(opts.DataDir, dataset.Options{
		ImageExt: cfg.ImageExt,
		ShapeExt: cfg.ShapeExt,
	})
	if err != nil {
		logger.Error("discover failed", "root", opts.DataDir, "error", err)
		os.Exit(1)
	}
	if len(infos) == 0 {
		fmt.Println("No video folders found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VIDEO\tFRAMES\tANNOTATIONS\tSIZE")
	fmt.Fprintln(w, "-----\t------\t-----------\t----")

	browsable := 0
	for _, v := range infos {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", v.Name, v.Images, v.Shapes, humanize.Bytes(uint64(v.Bytes)))
		browsable += min(v.Images, v.Shapes)
	}
	w.Flush()
	fmt.Printf("\n%d videos, %d browsable frames\n", len(infos), browsable)
}
