package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/robotlex/batch"
	"github.com/dhamidi/robotlex/robot/classify"
)

func newScanCmd() *cobra.Command {
	var timeout time.Duration
	var workers int

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Classify every test data file in a directory or zip file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Batch.Timeout = timeout
			}
			if cmd.Flags().Changed("workers") {
				cfg.Batch.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			builder, err := cfg.Builder()
			if err != nil {
				return err
			}

			sources, err := batch.Collect(args[0], cfg.Batch.Extensions)
			if err != nil {
				return fmt.Errorf("collect %s: %w", args[0], err)
			}
			fmt.Printf("Found %d files to scan\n", len(sources))

			p := batch.NewProcessor(
				batch.WithBuilder(builder),
				batch.WithWorkers(cfg.Batch.Workers),
				batch.WithTimeout(cfg.Batch.Timeout),
			)
			results, err := p.Process(cmd.Context(), sources)
			if err != nil {
				return err
			}
			printScan(results)
			return nil
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 10*time.Second, "timeout per file")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "number of files classified concurrently")

	return cmd
}

func printScan(results []batch.Result) {
	for i, r := range results {
		fmt.Printf("[%d/%d] ", i+1, len(results))
		switch {
		case r.Err == nil:
			fmt.Printf("[OK] %s (%d contexts)\n", r.Name, r.Output.Len())
		case isTimeout(r.Err):
			fmt.Printf("[TIMEOUT] %s\n", r.Name)
		default:
			fmt.Printf("[ERROR] %s: %v\n", r.Name, r.Err)
		}
	}

	summary := batch.Summarize(results)
	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Files: %d\n", summary.Files)
	fmt.Printf("Tokens: %d\n", summary.Tokens)
	fmt.Printf("Contexts: %d\n", summary.Contexts)
	for _, typ := range classify.ContextTypes() {
		if n := summary.ByType[typ]; n > 0 {
			fmt.Printf("  %-40s %d\n", typ, n)
		}
	}
	fmt.Printf("Errors: %d\n", summary.Failed)
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
