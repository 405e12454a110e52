package cmd

import (
	"fmt"
	"time"

	"record-manager/core/config"
	"record-manager/core/logger"
	"record-manager/core/storage"
	"record-manager/feature/pipeline"
	"record-manager/feature/rewrite"
	"record-manager/feature/synth"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateCount int

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate linked record pairs and rewrite both datasets",
	Long: `Reads both datasets, allocates new identifiers against their combined
identifier set (filling gaps first), synthesizes linked record pairs,
reports integrity violations between the existing rows, and rewrites both
datasets sorted by identifier. With export enabled, chunked reduced-column
exports are written alongside.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		logg = logg.With(zap.String("run_id", uuid.NewString()))

		// Storage mirror is optional
		var store storage.Client
		if cfg.Storage.Enabled {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
		}

		svc := pipeline.New(cfg, logg, synth.New(0), store)
		summary, err := svc.Run(ctx, generateCount)
		if err != nil {
			return err
		}

		for _, row := range summary.Invalid {
			logg.Warn("Invalid row skipped",
				zap.String("dataset", row.Dataset),
				zap.String("reason", row.Reason),
				zap.String("raw", row.Raw),
			)
		}
		for _, f := range summary.Findings {
			logg.Warn("Integrity finding",
				zap.Int("id", f.ID),
				zap.String("kind", string(f.Kind)),
				zap.String("field", f.Field),
				zap.String("primary", f.Primary),
				zap.String("secondary", f.Secondary),
			)
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== Generation Summary ===")
		fmt.Printf("Existing Primary Rows: %d\n", summary.PrimaryRows)
		fmt.Printf("Existing Secondary Rows: %d\n", summary.SecondaryRows)
		fmt.Printf("Invalid Rows: %d\n", len(summary.Invalid))
		fmt.Printf("Records Added: %d\n", len(summary.Allocated))
		if n := len(summary.Allocated); n > 0 {
			fmt.Printf("Identifier Range: %d to %d\n", summary.Allocated[0], summary.Allocated[n-1])
		}
		fmt.Printf("Integrity Findings: %d\n", len(summary.Findings))
		fmt.Printf("Execution Time: %s\n", executionTime.String())

		logg.Info("Generation completed",
			zap.Int("primary_rows", summary.PrimaryRows),
			zap.Int("secondary_rows", summary.SecondaryRows),
			zap.Int("invalid_rows", len(summary.Invalid)),
			zap.Int("added", len(summary.Allocated)),
			zap.Int("findings", len(summary.Findings)),
			zap.Duration("execution_time", executionTime),
		)

		// Per-target failures are isolated; report each and fail the
		// command only after every target had its chance to complete.
		failed := rewrite.Failed(summary.Results)
		for _, r := range failed {
			logg.Error("Rewrite target failed", zap.String("target", r.Name), zap.Error(r.Err))
		}
		if len(failed) > 0 {
			return fmt.Errorf("%d of %d rewrite targets failed", len(failed), len(summary.Results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVar(&generateCount, "count", 50, "Number of linked record pairs to generate")
}
