package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Allele symbols permitted in consumer genotyping exports. D and I encode
// deletions and insertions; "-" is a no-call.
const ValidAlleles = "ACGTDI-"

// NoCallAllele marks a position the chip could not resolve.
const NoCallAllele = '-'

// Zygosity describes the relationship between the two alleles of a genotype.
type Zygosity string

const (
	HOMOZYGOUS   Zygosity = "HOMOZYGOUS"
	HETEROZYGOUS Zygosity = "HETEROZYGOUS"
	NO_CALL      Zygosity = "NO_CALL"
	// HAPLOID covers single-allele calls (X/Y/MT in male genomes and
	// under-resolved chip output). Retained verbatim by the parser; callers
	// must check genotype length before indexing two alleles.
	HAPLOID Zygosity = "HAPLOID"
)

// GenotypeRecord is one line of genomic evidence from a raw export:
// a variant identifier, its genomic coordinates, and the observed genotype.
// Records are created in bulk by the parser and immutable afterward.
type GenotypeRecord struct {
	RSID       string `json:"rsid"`
	Chromosome string `json:"chromosome"` // numeric, "X", "Y" or "MT"
	Position   int64  `json:"position"`   // 1-based
	Genotype   string `json:"genotype"`   // one or two allele symbols
}

// ValidAllele reports whether b is a permitted allele symbol.
func ValidAllele(b byte) bool {
	return strings.IndexByte(ValidAlleles, b) >= 0
}

// ValidGenotype reports whether s is a permitted genotype string: one or two
// allele symbols drawn from ValidAlleles.
func ValidGenotype(s string) bool {
	if len(s) == 0 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !ValidAllele(s[i]) {
			return false
		}
	}
	return true
}

// Validate ensures the record can safely enter the analysis pipeline.
func (r *GenotypeRecord) Validate() error {
	if r.RSID == "" {
		return fmt.Errorf("genotype record validation: %w", errors.New("rsid is required"))
	}
	if r.Chromosome == "" {
		return fmt.Errorf("genotype record validation: %w", errors.New("chromosome is required"))
	}
	if r.Position < 0 {
		return fmt.Errorf("genotype record validation: %w", errors.New("position must be non-negative"))
	}
	if !ValidGenotype(r.Genotype) {
		return fmt.Errorf("genotype record validation: invalid genotype %q", r.Genotype)
	}
	return nil
}

// Zygosity classifies the record's genotype. Single-allele calls are
// HAPLOID, "--" is NO_CALL.
func (r *GenotypeRecord) Zygosity() Zygosity {
	switch len(r.Genotype) {
	case 1:
		if r.Genotype[0] == NoCallAllele {
			return NO_CALL
		}
		return HAPLOID
	case 2:
		if r.Genotype[0] == NoCallAllele && r.Genotype[1] == NoCallAllele {
			return NO_CALL
		}
		if r.Genotype[0] == r.Genotype[1] {
			return HOMOZYGOUS
		}
		return HETEROZYGOUS
	default:
		return NO_CALL
	}
}

// Genome is the rsid -> genotype map for a whole parsed export. It is the
// interface handed to annotation and risk-reporting collaborators: lookups
// must stay O(1) because the map routinely exceeds 10^5 entries and is
// consulted once per tracked variant per analysis.
type Genome map[string]string

// BuildGenome deduplicates records by rsid. The export format guarantees
// unique rsids in practice; for malformed files the last occurrence wins.
func BuildGenome(records []GenotypeRecord) Genome {
	g := make(Genome, len(records))
	for _, r := range records {
		g[r.RSID] = r.Genotype
	}
	return g
}

// GenotypeAt returns the genotype reported at rsid, if present.
func (g Genome) GenotypeAt(rsid string) (string, bool) {
	gt, ok := g[rsid]
	return gt, ok
}
