package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dna-health-analyzer/internal/service"
)

// traitsCmd reports only the traits with elevated genetic risk.
var traitsCmd = &cobra.Command{
	Use:   "traits <dna-file>",
	Short: "Show traits where genetic risk exceeds the percentile threshold",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraits,
}

func runTraits(cmd *cobra.Command, args []string) error {
	genome, _, err := loadGenome(args[0])
	if err != nil {
		return err
	}

	threshold, err := cmd.Flags().GetFloat64("threshold")
	if err != nil {
		return err
	}
	if threshold == 0 {
		threshold = cfgManager.GetPRSConfig().HighRiskThreshold
	}

	engine, err := service.NewRiskEngine(cfgManager.GetPRSConfig(), logger)
	if err != nil {
		return err
	}
	results, err := engine.HighRiskTraits(cmd.Context(), genome, threshold)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No traits above the %.0fth percentile.\n", threshold)
		return nil
	}

	fmt.Printf("Traits with elevated genetic risk (>%.0fth percentile):\n", threshold)
	for _, r := range results {
		fmt.Printf("  - %s: %.0fth percentile (%s)\n", r.TraitName, r.Percentile, r.RiskCategory)
	}

	return nil
}
