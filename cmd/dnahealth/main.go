// dnahealth analyzes raw consumer genotyping exports: it parses the flat
// file, matches reported SNPs against the curated health-variant catalog,
// and computes polygenic risk scores for the configured complex traits.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
