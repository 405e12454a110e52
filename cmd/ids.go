package cmd

import (
	"fmt"

	"record-manager/core/config"
	"record-manager/core/dataset"
	"record-manager/core/logger"
	"record-manager/feature/allocate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var idsCount int

// idsCmd represents the ids command
var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Preview the next identifiers the allocator would hand out",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		used := make(map[int]struct{})
		for _, ds := range []struct {
			name string
			path string
		}{
			{dataset.PrimaryName, cfg.Datasets.PrimaryPath},
			{dataset.SecondaryName, cfg.Datasets.SecondaryPath},
		} {
			result, err := dataset.ReadFile(ds.path, ds.name)
			if err != nil {
				logg.Warn("Dataset unreadable, treating as empty",
					zap.String("dataset", ds.name),
					zap.Error(err),
				)
				continue
			}
			for id := range result.IDs {
				used[id] = struct{}{}
			}
		}

		ids := allocate.Next(idsCount, used)
		fmt.Printf("Used identifiers: %d\n", len(used))
		fmt.Printf("Next %d: %v\n", len(ids), ids)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(idsCmd)
	idsCmd.Flags().IntVar(&idsCount, "count", 5, "Number of identifiers to preview")
}
