package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dna-health-analyzer/internal/config"
	"github.com/dna-health-analyzer/internal/domain"
	"github.com/dna-health-analyzer/internal/parser"
)

var (
	cfgManager *config.Manager
	logger     *logrus.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dnahealth",
	Short: "Analyze raw consumer DNA exports for health-relevant variants",
	Long: `dnahealth parses a 23andMe/Ancestry-style genotype export, matches it
against a curated catalog of health-relevant variants, and computes
polygenic risk scores for a set of complex traits.

This tool is not a medical device. Results are for education only and must
not be used for clinical decisions.`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(traitsCmd)
	rootCmd.AddCommand(variantsCmd)

	traitsCmd.Flags().Float64P("threshold", "t", 0, "percentile cutoff (defaults to configured prs.high_risk_threshold)")
}

// bootstrap loads and validates configuration before any subcommand runs.
func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	cfgManager, err = config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if err = cfgManager.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	logger = cfgManager.BuildLogger()
	return nil
}

// loadGenome parses the export at path and builds the lookup map.
func loadGenome(path string) (domain.Genome, *parser.Result, error) {
	p := parser.New(cfgManager.GetParserConfig(), logger)
	result, err := p.ParseFile(path)
	if err != nil {
		if domain.IsCode(err, domain.ErrCodeEmptyResult) {
			return nil, nil, fmt.Errorf("%w\n(is this really a 23andMe/Ancestry export?)", err)
		}
		return nil, nil, err
	}
	return domain.BuildGenome(result.Records), result, nil
}
