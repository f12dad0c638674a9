package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraitCategory_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		category TraitCategory
		want     bool
	}{
		{"Cardiovascular", CARDIOVASCULAR, true},
		{"Metabolic", METABOLIC, true},
		{"Neurological", NEUROLOGICAL, true},
		{"Cancer", CANCER, true},
		{"Autoimmune", AUTOIMMUNE, true},
		{"Empty", TraitCategory(""), false},
		{"Unknown", TraitCategory("Dermatological"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.IsValid())
		})
	}
}

func TestRiskCategoryForPercentile(t *testing.T) {
	tests := []struct {
		name       string
		percentile float64
		want       RiskCategory
	}{
		{"Floor", 1, RISK_LOW},
		{"Just below low boundary", 9.99, RISK_LOW},
		{"Low boundary", 10, RISK_BELOW_AVERAGE},
		{"Below average", 24.9, RISK_BELOW_AVERAGE},
		{"Average boundary", 25, RISK_AVERAGE},
		{"Median", 50, RISK_AVERAGE},
		{"Above average boundary", 75, RISK_ABOVE_AVERAGE},
		{"High boundary", 90, RISK_HIGH},
		{"Ceiling", 99, RISK_HIGH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RiskCategoryForPercentile(tt.percentile)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestRiskCategory_Elevated(t *testing.T) {
	assert.False(t, RISK_LOW.Elevated())
	assert.False(t, RISK_BELOW_AVERAGE.Elevated())
	assert.False(t, RISK_AVERAGE.Elevated())
	assert.True(t, RISK_ABOVE_AVERAGE.Elevated())
	assert.True(t, RISK_HIGH.Elevated())
}

func TestRiskCategory_LogFields(t *testing.T) {
	fields := RISK_HIGH.LogFields()
	assert.Equal(t, "High", fields["risk_category"])
	assert.Equal(t, true, fields["elevated"])
}
