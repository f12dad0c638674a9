package domain

import (
	"errors"
	"fmt"
)

// PRSModel is one trait's scoring configuration: validated effect weights
// for a set of variants, plus provenance metadata. Models are registered at
// process start and immutable afterward.
type PRSModel struct {
	TraitName      string             `json:"trait_name"`
	Category       TraitCategory      `json:"category"`
	ModelID        string             `json:"model_id"` // PGS Catalog model ID
	VariantWeights map[string]float64 `json:"variant_weights"`
	Ancestry       string             `json:"ancestry"`  // population the weights were validated against
	Citations      []string           `json:"citations"` // PubMed IDs
	Description    string             `json:"description"`
}

// Validate ensures the model can be registered with the risk engine.
func (m *PRSModel) Validate() error {
	if m.TraitName == "" {
		return fmt.Errorf("prs model validation: %w", errors.New("trait name is required"))
	}
	if !m.Category.IsValid() {
		return fmt.Errorf("prs model validation: invalid trait category %q", m.Category)
	}
	if m.ModelID == "" {
		return fmt.Errorf("prs model validation: %w", errors.New("model id is required"))
	}
	if len(m.VariantWeights) == 0 {
		return fmt.Errorf("prs model validation: %w", errors.New("at least one variant weight is required"))
	}
	return nil
}

// PRSResult is the computed output of scoring one trait for one genome.
// Created fresh per query; never persisted.
//
// VariantsFound/VariantsTotal are coverage counters: low coverage means the
// score rests on few of the model's variants and the result is
// low-confidence. They are always populated so callers can judge
// reliability.
type PRSResult struct {
	TraitKey       string        `json:"trait_key"`
	TraitName      string        `json:"trait_name"`
	Category       TraitCategory `json:"category"`
	Score          float64       `json:"score"`
	VariantsFound  int           `json:"variants_found"`
	VariantsTotal  int           `json:"variants_total"`
	Percentile     float64       `json:"percentile"` // clamped to [1, 99]
	RiskCategory   RiskCategory  `json:"risk_category"`
	Interpretation string        `json:"interpretation"`
}

// Coverage returns the fraction of the model's variants found in the
// genome, in [0, 1].
func (r *PRSResult) Coverage() float64 {
	if r.VariantsTotal == 0 {
		return 0
	}
	return float64(r.VariantsFound) / float64(r.VariantsTotal)
}

// LogFields returns structured logging fields for the result.
func (r *PRSResult) LogFields() map[string]any {
	return map[string]any{
		"trait_key":      r.TraitKey,
		"trait_name":     r.TraitName,
		"score":          r.Score,
		"percentile":     r.Percentile,
		"risk_category":  r.RiskCategory.String(),
		"variants_found": r.VariantsFound,
		"variants_total": r.VariantsTotal,
	}
}
