package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dna-health-analyzer/internal/reference"
	"github.com/dna-health-analyzer/internal/service"
)

// analyzeCmd runs the full pipeline: parse, match, score every trait.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <dna-file>",
	Short: "Full analysis: tracked variants plus all trait risk scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	genome, parseResult, err := loadGenome(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d SNPs from your DNA file", len(genome))
	if parseResult.Skipped > 0 {
		fmt.Printf(" (%d malformed lines skipped)", parseResult.Skipped)
	}
	fmt.Println()
	fmt.Println()

	table := reference.NewTable()
	matcher := service.NewMatcherService(table, logger)
	matched := matcher.MatchOrdered(genome)

	fmt.Println("YOUR HEALTH VARIANT SUMMARY")
	fmt.Println("===========================")
	if len(matched) == 0 {
		fmt.Println("No tracked health variants found in your DNA data.")
	}
	shown := matched
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, v := range shown {
		fmt.Printf("\n%s (%s)\n", v.RSID, v.Gene)
		fmt.Printf("  Trait: %s\n", v.Trait)
		fmt.Printf("  Your genotype: %s\n", v.Genotype)
	}
	if len(matched) > 10 {
		fmt.Printf("\n... and %d more variants\n", len(matched)-10)
	}
	fmt.Println()

	engine, err := service.NewRiskEngine(cfgManager.GetPRSConfig(), logger)
	if err != nil {
		return err
	}
	results, err := engine.ComputeAllTraits(cmd.Context(), genome)
	if err != nil {
		return err
	}

	fmt.Println("POLYGENIC RISK SCORES")
	fmt.Println("=====================")
	for _, r := range results {
		fmt.Printf("\n%s (%s)\n", r.TraitName, r.Category)
		fmt.Printf("  Score: %.2f\n", r.Score)
		fmt.Printf("  Percentile: %.0f\n", r.Percentile)
		fmt.Printf("  Risk category: %s\n", r.RiskCategory)
		fmt.Printf("  Coverage: %d/%d model variants found\n", r.VariantsFound, r.VariantsTotal)
	}

	return nil
}
