package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceVariant_Validate(t *testing.T) {
	v := ReferenceVariant{
		RSID:          "rs4988235",
		Gene:          "MCM6",
		Trait:         "Lactose intolerance",
		AlleleEffects: map[string]string{"C": "lactose tolerant", "T": "lactose intolerant"},
		Description:   "CC = lactose tolerant, CT = mostly tolerant, TT = lactose intolerant",
	}
	require.NoError(t, v.Validate())

	bad := v
	bad.AlleleEffects = map[string]string{"CT": "not a single allele"}
	assert.Error(t, bad.Validate())
}

func TestReferenceVariant_Annotate(t *testing.T) {
	v := ReferenceVariant{
		RSID:          "rs762551",
		Gene:          "CYP1A2",
		Trait:         "Caffeine sensitivity",
		AlleleEffects: map[string]string{"A": "fast metabolizer", "C": "slow metabolizer"},
		Description:   "Fast metabolizers (AA) clear caffeine quickly",
	}

	av := v.Annotate("AC")
	assert.Equal(t, "rs762551", av.RSID)
	assert.Equal(t, "AC", av.Genotype)
	assert.Equal(t, "fast metabolizer", av.AlleleEffect('A'))
	assert.Equal(t, "slow metabolizer", av.AlleleEffect('C'))
	assert.Equal(t, "", av.AlleleEffect('G'))

	explanation := av.Explain()
	assert.Contains(t, explanation, "rs762551 (CYP1A2)")
	assert.Contains(t, explanation, "Your genotype: AC")
	assert.Contains(t, explanation, "Caffeine sensitivity")
}
