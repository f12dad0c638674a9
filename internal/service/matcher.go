// Package service implements the analysis operations over parsed genomes:
// matching against the curated catalog and polygenic risk scoring.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/dna-health-analyzer/internal/domain"
	"github.com/dna-health-analyzer/internal/reference"
)

// MatcherService intersects a parsed genome with the curated reference
// table. The join is pure and in-memory: no I/O, no network, complexity
// linear in the reference table with O(1) genome lookups, so it stays cheap
// even when invoked many times per session against 10^5+ entry genomes.
type MatcherService struct {
	logger *logrus.Logger
	table  *reference.Table
}

// NewMatcherService creates a matcher over the given reference table.
func NewMatcherService(table *reference.Table, logger *logrus.Logger) *MatcherService {
	return &MatcherService{
		logger: logger,
		table:  table,
	}
}

// Match returns the user's tracked variants: rsid -> AnnotatedVariant
// restricted to identifiers present in both the genome and the catalog.
func (m *MatcherService) Match(genome domain.Genome) map[string]domain.AnnotatedVariant {
	matched := make(map[string]domain.AnnotatedVariant)
	for _, rsid := range m.table.RSIDs() {
		genotype, ok := genome.GenotypeAt(rsid)
		if !ok {
			continue
		}
		variant, _ := m.table.Lookup(rsid)
		matched[rsid] = variant.Annotate(genotype)
	}

	m.logger.WithFields(logrus.Fields{
		"matched": len(matched),
		"tracked": m.table.Len(),
	}).Info("Matched genome against reference catalog")

	return matched
}

// MatchOrdered returns the same join as Match but as a slice in catalog
// order. Repeated calls on the same inputs enumerate identically, which is
// what display pagination needs.
func (m *MatcherService) MatchOrdered(genome domain.Genome) []domain.AnnotatedVariant {
	var matched []domain.AnnotatedVariant
	for _, rsid := range m.table.RSIDs() {
		genotype, ok := genome.GenotypeAt(rsid)
		if !ok {
			continue
		}
		variant, _ := m.table.Lookup(rsid)
		matched = append(matched, variant.Annotate(genotype))
	}
	return matched
}
