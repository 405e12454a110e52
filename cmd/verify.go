package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"record-manager/core/config"
	"record-manager/core/dataset"
	"record-manager/core/logger"
	"record-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check cross-dataset integrity without rewriting anything",
	Long: `Cross-references the primary and secondary datasets by identifier and
reports every inconsistency: shared-field mismatches and missing
counterparts in either direction. Findings are report-only. Outputs metrics
by default or a detailed JSON report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		primary, err := dataset.ReadFile(cfg.Datasets.PrimaryPath, dataset.PrimaryName)
		if err != nil {
			logg.Warn("Primary dataset unreadable, treating as empty", zap.Error(err))
			primary = &dataset.ReadResult{}
		}
		secondary, err := dataset.ReadFile(cfg.Datasets.SecondaryPath, dataset.SecondaryName)
		if err != nil {
			logg.Warn("Secondary dataset unreadable, treating as empty", zap.Error(err))
			secondary = &dataset.ReadResult{}
		}

		findings := integrity.Check(primary.Records, secondary.Records, dataset.SharedFields)

		for _, row := range append(primary.Invalid, secondary.Invalid...) {
			logg.Warn("Invalid row skipped",
				zap.String("dataset", row.Dataset),
				zap.String("reason", row.Reason),
				zap.String("raw", row.Raw),
			)
		}
		for _, f := range findings {
			logg.Warn("Integrity finding",
				zap.Int("id", f.ID),
				zap.String("kind", string(f.Kind)),
				zap.String("field", f.Field),
				zap.String("primary", f.Primary),
				zap.String("secondary", f.Secondary),
			)
		}

		var reportFile string
		if jsonOutput {
			reportFile = fmt.Sprintf("integrity_datasets_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(findings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(reportFile, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Detailed JSON report saved", zap.String("file", reportFile), zap.Int("findings", len(findings)))
		}

		counts := integrity.CountByKind(findings)
		executionTime := time.Since(startTime)

		fmt.Println("\n=== Dataset Integrity Metrics ===")
		fmt.Printf("Primary Rows: %d\n", len(primary.Records))
		fmt.Printf("Secondary Rows: %d\n", len(secondary.Records))
		fmt.Printf("Invalid Rows: %d\n", len(primary.Invalid)+len(secondary.Invalid))
		fmt.Printf("Field Mismatches: %d\n", counts[integrity.KindFieldMismatch])
		fmt.Printf("Missing Secondary: %d\n", counts[integrity.KindMissingSecondary])
		fmt.Printf("Missing Primary: %d\n", counts[integrity.KindMissingPrimary])
		fmt.Printf("Execution Time: %s\n", executionTime.String())
		if jsonOutput {
			fmt.Printf("\nDetailed JSON saved to: %s (%d findings)\n", reportFile, len(findings))
		}

		logg.Info("Integrity check completed",
			zap.Int("findings", len(findings)),
			zap.Duration("execution_time", executionTime),
		)

		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().Bool("json", false, "Output detailed JSON format")
}
