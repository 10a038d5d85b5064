package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/sheetdoc/internal/pipeline"
	"github.com/pdiddy/sheetdoc/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a drop directory and convert workbooks as they arrive",
	Long: `Watch monitors a drop directory for Excel workbooks, converts each matching
file with the configured range settings, and moves handled inputs into the
processed directory. Files already in the directory are converted on
startup.

Stop with Ctrl-C; the file being processed is finished first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("output-dir", "", "directory for rendered documents (overrides watch.output_dir)")
	watchCmd.Flags().Bool("no-process", false, "log detected files without converting them")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig()

	if len(args) == 1 {
		cfg.Watch.WatchDir = args[0]
	}
	if v, _ := cmd.Flags().GetString("output-dir"); v != "" {
		cfg.Watch.OutputDir = v
	}
	if noProcess, _ := cmd.Flags().GetBool("no-process"); noProcess {
		cfg.Watch.AutoProcess = false
	}

	d, err := watch.New(cfg.Watch, pipeline.New(cfg), os.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return d.Run(ctx)
}
