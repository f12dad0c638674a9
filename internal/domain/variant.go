package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ReferenceVariant is one curated catalog entry: a tracked SNP with its
// gene, the trait it influences, per-allele effect annotations, and a
// free-text description. The catalog is process-wide static configuration
// and never mutated after load.
type ReferenceVariant struct {
	RSID          string            `json:"rsid"`
	Gene          string            `json:"gene"` // symbol or locus label, e.g. "APOE", "9p21.3"
	Trait         string            `json:"trait"`
	AlleleEffects map[string]string `json:"allele_effects"` // single allele -> effect label
	Description   string            `json:"description"`
}

// Validate ensures the catalog entry is well-formed. Every allele-effect key
// must be a single allele symbol.
func (v *ReferenceVariant) Validate() error {
	if v.RSID == "" {
		return fmt.Errorf("reference variant validation: %w", errors.New("rsid is required"))
	}
	if v.Gene == "" {
		return fmt.Errorf("reference variant validation: %w", errors.New("gene is required"))
	}
	if v.Trait == "" {
		return fmt.Errorf("reference variant validation: %w", errors.New("trait is required"))
	}
	for allele := range v.AlleleEffects {
		if len(allele) != 1 {
			return fmt.Errorf("reference variant validation: allele key %q must be a single character", allele)
		}
	}
	return nil
}

// AnnotatedVariant is the join of a parsed genotype and a catalog entry on
// rsid: what the user carries plus what is known about it. Produced
// transiently per analysis run and owned by the caller.
type AnnotatedVariant struct {
	RSID          string            `json:"rsid"`
	Genotype      string            `json:"genotype"`
	Gene          string            `json:"gene"`
	Trait         string            `json:"trait"`
	Description   string            `json:"description"`
	AlleleEffects map[string]string `json:"allele_effects"`
}

// Annotate joins a reference entry with the user's observed genotype.
func (v ReferenceVariant) Annotate(genotype string) AnnotatedVariant {
	return AnnotatedVariant{
		RSID:          v.RSID,
		Genotype:      genotype,
		Gene:          v.Gene,
		Trait:         v.Trait,
		Description:   v.Description,
		AlleleEffects: v.AlleleEffects,
	}
}

// AlleleEffect returns the effect label annotated for a single allele of the
// user's genotype, or "" when the allele is not annotated.
func (av *AnnotatedVariant) AlleleEffect(allele byte) string {
	return av.AlleleEffects[string(allele)]
}

// Explain renders a human-readable summary of the variant for report and
// display layers.
func (av *AnnotatedVariant) Explain() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", av.RSID, av.Gene)
	fmt.Fprintf(&b, "Trait: %s\n", av.Trait)
	fmt.Fprintf(&b, "Your genotype: %s\n", av.Genotype)
	fmt.Fprintf(&b, "Interpretation: %s", av.Description)
	return b.String()
}
