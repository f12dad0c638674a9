package service

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-health-analyzer/internal/domain"
	"github.com/dna-health-analyzer/internal/reference"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestMatcherService_Match(t *testing.T) {
	table := reference.NewTable()
	matcher := NewMatcherService(table, newTestLogger())

	genome := domain.Genome{
		"rs4988235": "CT", // tracked: MCM6
		"rs762551":  "AA", // tracked: CYP1A2
		"rs9999999": "GG", // untracked
	}

	matched := matcher.Match(genome)
	require.Len(t, matched, 2)

	mcm6, ok := matched["rs4988235"]
	require.True(t, ok)
	assert.Equal(t, "CT", mcm6.Genotype)
	assert.Equal(t, "MCM6", mcm6.Gene)
	assert.Equal(t, "Lactose intolerance", mcm6.Trait)

	_, ok = matched["rs9999999"]
	assert.False(t, ok, "untracked rsids must not appear in the join")
}

// The join is a pure intersection: k appears iff tracked and reported.
func TestMatcherService_Match_PureJoin(t *testing.T) {
	table := reference.NewTable()
	matcher := NewMatcherService(table, newTestLogger())

	genome := domain.Genome{}
	for i, rsid := range table.RSIDs() {
		if i%2 == 0 {
			genome[rsid] = "AA"
		}
	}

	matched := matcher.Match(genome)
	assert.LessOrEqual(t, len(matched), len(genome))
	assert.LessOrEqual(t, len(matched), table.Len())

	for rsid := range matched {
		_, inGenome := genome[rsid]
		_, inTable := table.Lookup(rsid)
		assert.True(t, inGenome && inTable)
	}
	for rsid := range genome {
		if _, inTable := table.Lookup(rsid); inTable {
			_, ok := matched[rsid]
			assert.True(t, ok, "tracked reported rsid %s missing from join", rsid)
		}
	}
}

func TestMatcherService_MatchOrdered_Deterministic(t *testing.T) {
	table := reference.NewTable()
	matcher := NewMatcherService(table, newTestLogger())

	genome := domain.Genome{
		"rs429358":  "CT",
		"rs7412":    "CC",
		"rs4988235": "TT",
		"rs9939609": "AT",
	}

	first := matcher.MatchOrdered(genome)
	second := matcher.MatchOrdered(genome)
	require.Equal(t, first, second)
	require.Len(t, first, 4)

	// Catalog order, not genome-map order.
	position := map[string]int{}
	for i, rsid := range table.RSIDs() {
		position[rsid] = i
	}
	for i := 1; i < len(first); i++ {
		assert.Less(t, position[first[i-1].RSID], position[first[i].RSID])
	}
}

func TestMatcherService_Match_EmptyGenome(t *testing.T) {
	matcher := NewMatcherService(reference.NewTable(), newTestLogger())
	assert.Empty(t, matcher.Match(domain.Genome{}))
	assert.Empty(t, matcher.MatchOrdered(domain.Genome{}))
}
