package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dna-health-analyzer/internal/reference"
	"github.com/dna-health-analyzer/internal/service"
)

// variantsCmd lists every tracked variant found in the genome with its
// full explanation.
var variantsCmd = &cobra.Command{
	Use:   "variants <dna-file>",
	Short: "List all tracked health variants found in the export",
	Args:  cobra.ExactArgs(1),
	RunE:  runVariants,
}

func runVariants(cmd *cobra.Command, args []string) error {
	genome, _, err := loadGenome(args[0])
	if err != nil {
		return err
	}

	table := reference.NewTable()
	matcher := service.NewMatcherService(table, logger)
	matched := matcher.MatchOrdered(genome)

	if len(matched) == 0 {
		fmt.Println("No tracked health variants found in your DNA data.")
		return nil
	}

	fmt.Printf("Found %d of %d tracked health variants in your genome\n", len(matched), table.Len())
	for _, v := range matched {
		fmt.Println()
		fmt.Println(v.Explain())
	}

	return nil
}
