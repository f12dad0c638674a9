package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dna-health-analyzer/internal/domain"
)

func newTestEngine(t *testing.T) *RiskEngine {
	t.Helper()
	engine, err := NewRiskEngine(&domain.PRSConfig{CacheSize: 16}, newTestLogger())
	require.NoError(t, err)
	return engine
}

func TestRiskEngine_ComputeTrait_Type2Diabetes(t *testing.T) {
	engine := newTestEngine(t)

	// rs7903146 "CT": first allele C appears once -> 1 * 0.12
	// rs1801282 "CC": first allele C appears twice -> 2 * -0.08
	genome := domain.Genome{
		"rs7903146": "CT",
		"rs1801282": "CC",
	}

	result, err := engine.ComputeTrait("type_2_diabetes", genome)
	require.NoError(t, err)

	assert.Equal(t, "Type 2 Diabetes", result.TraitName)
	assert.Equal(t, domain.METABOLIC, result.Category)
	assert.Equal(t, 2, result.VariantsFound)
	assert.Equal(t, 5, result.VariantsTotal)
	assert.InDelta(t, -0.04, result.Score, 1e-9)
	assert.InDelta(t, 49.68, result.Percentile, 1e-9)
	assert.Equal(t, domain.RISK_AVERAGE, result.RiskCategory)

	// Display rounding lives in the interpretation text only.
	assert.Contains(t, result.Interpretation, "percentile: 50")
	assert.Contains(t, result.Interpretation, "average category")
}

func TestRiskEngine_ComputeTrait_EmptyGenome(t *testing.T) {
	engine := newTestEngine(t)

	for _, traitKey := range engine.TraitKeys() {
		result, err := engine.ComputeTrait(traitKey, domain.Genome{})
		require.NoError(t, err, "zero coverage must still return a result")

		assert.Equal(t, 0, result.VariantsFound)
		assert.Equal(t, 0.0, result.Score)
		assert.Equal(t, 50.0, result.Percentile)
		assert.Equal(t, domain.RISK_AVERAGE, result.RiskCategory)
	}
}

func TestRiskEngine_ComputeTrait_UnknownTrait(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.ComputeTrait("height", domain.Genome{"rs1": "AA"})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, domain.IsCode(err, domain.ErrCodeUnknownTrait))
}

func TestRiskEngine_PercentileClamped(t *testing.T) {
	models := map[string]*domain.PRSModel{
		"extreme_high": {
			TraitName:      "Extreme High",
			Category:       domain.AUTOIMMUNE,
			ModelID:        "TEST001",
			VariantWeights: map[string]float64{"rs1": 1000.0},
		},
		"extreme_low": {
			TraitName:      "Extreme Low",
			Category:       domain.AUTOIMMUNE,
			ModelID:        "TEST002",
			VariantWeights: map[string]float64{"rs1": -1000.0},
		},
	}
	engine, err := NewRiskEngineWithModels(models, []string{"extreme_high", "extreme_low"}, 8, newTestLogger())
	require.NoError(t, err)

	genome := domain.Genome{"rs1": "AA"}

	high, err := engine.ComputeTrait("extreme_high", genome)
	require.NoError(t, err)
	assert.Equal(t, 99.0, high.Percentile)
	assert.Equal(t, domain.RISK_HIGH, high.RiskCategory)

	low, err := engine.ComputeTrait("extreme_low", genome)
	require.NoError(t, err)
	assert.Equal(t, 1.0, low.Percentile)
	assert.Equal(t, domain.RISK_LOW, low.RiskCategory)
}

func TestRiskEngine_ScaleFactorByTraitName(t *testing.T) {
	tests := []struct {
		name      string
		traitName string
		wantScale float64
	}{
		{"Coronary traits use wider distribution", "Coronary Artery Disease", 10},
		{"Alzheimer traits use narrow distribution", "Alzheimer's Disease", 5},
		{"Everything else uses the default", "Obesity Risk", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreToPercentile(1.0, tt.traitName)
			assert.InDelta(t, 50.0+tt.wantScale, got, 1e-9)
		})
	}
}

func TestRiskEngine_ComputeTrait_HaploidGenotype(t *testing.T) {
	engine := newTestEngine(t)

	// Single-allele call: one occurrence of the first (only) allele.
	result, err := engine.ComputeTrait("type_2_diabetes", domain.Genome{"rs7903146": "T"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.VariantsFound)
	assert.InDelta(t, 0.12, result.Score, 1e-9)
}

func TestRiskEngine_Idempotent(t *testing.T) {
	engine := newTestEngine(t)
	genome := domain.Genome{
		"rs7903146": "CT",
		"rs1801282": "CC",
		"rs429358":  "CT",
	}

	first, err := engine.ComputeTrait("type_2_diabetes", genome)
	require.NoError(t, err)
	second, err := engine.ComputeTrait("type_2_diabetes", genome)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// A fresh engine (cold cache) must agree bit for bit.
	cold := newTestEngine(t)
	third, err := cold.ComputeTrait("type_2_diabetes", genome)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestRiskEngine_ComputeAllTraits(t *testing.T) {
	engine := newTestEngine(t)
	genome := domain.Genome{
		"rs7903146":  "CT",
		"rs10757274": "AG",
		"rs9939609":  "TT",
		"rs429358":   "TT",
	}

	results, err := engine.ComputeAllTraits(context.Background(), genome)
	require.NoError(t, err)
	require.Len(t, results, len(engine.TraitKeys()))

	for i, traitKey := range engine.TraitKeys() {
		assert.Equal(t, traitKey, results[i].TraitKey, "results must come back in registration order")
		assert.LessOrEqual(t, results[i].VariantsFound, results[i].VariantsTotal)
		assert.GreaterOrEqual(t, results[i].Percentile, 1.0)
		assert.LessOrEqual(t, results[i].Percentile, 99.0)
	}

	again, err := engine.ComputeAllTraits(context.Background(), genome)
	require.NoError(t, err)
	assert.Equal(t, results, again)
}

func TestRiskEngine_HighRiskTraits(t *testing.T) {
	models := map[string]*domain.PRSModel{
		"a": {TraitName: "Trait A", Category: domain.METABOLIC, ModelID: "T1",
			VariantWeights: map[string]float64{"rs1": 2.0}}, // AA -> 50 + 4*8 = 82
		"b": {TraitName: "Trait B", Category: domain.CANCER, ModelID: "T2",
			VariantWeights: map[string]float64{"rs1": 4.0}}, // AA -> 50 + 8*8 = 99 (clamped)
		"c": {TraitName: "Trait C", Category: domain.AUTOIMMUNE, ModelID: "T3",
			VariantWeights: map[string]float64{"rs1": -1.0}}, // AA -> 50 - 16 = 34
	}
	engine, err := NewRiskEngineWithModels(models, []string{"a", "b", "c"}, 8, newTestLogger())
	require.NoError(t, err)

	genome := domain.Genome{"rs1": "AA"}

	results, err := engine.HighRiskTraits(context.Background(), genome, 75)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Trait B", results[0].TraitName)
	assert.Equal(t, "Trait A", results[1].TraitName)
	assert.Greater(t, results[0].Percentile, results[1].Percentile)
}

func TestRiskEngine_HighRiskTraits_NoneAboveThreshold(t *testing.T) {
	engine := newTestEngine(t)
	results, err := engine.HighRiskTraits(context.Background(), domain.Genome{}, 75)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNewRiskEngineWithModels_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		models map[string]*domain.PRSModel
		order  []string
	}{
		{
			name: "Invalid category",
			models: map[string]*domain.PRSModel{
				"x": {TraitName: "X", Category: "Dermatological", ModelID: "T1",
					VariantWeights: map[string]float64{"rs1": 0.1}},
			},
			order: []string{"x"},
		},
		{
			name: "No weights",
			models: map[string]*domain.PRSModel{
				"x": {TraitName: "X", Category: domain.CANCER, ModelID: "T1"},
			},
			order: []string{"x"},
		},
		{
			name: "Order references missing key",
			models: map[string]*domain.PRSModel{
				"x": {TraitName: "X", Category: domain.CANCER, ModelID: "T1",
					VariantWeights: map[string]float64{"rs1": 0.1}},
			},
			order: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRiskEngineWithModels(tt.models, tt.order, 8, newTestLogger())
			assert.Error(t, err)
		})
	}
}
