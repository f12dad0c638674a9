// Package domain contains core business entities and types for consumer
// genotype analysis: parsed SNP records, the curated health-variant catalog
// entries, and polygenic risk score (PRS) models and results.
//
// Reference: PGS Catalog, https://www.pgscatalog.org/
package domain

// TraitCategory represents the category of a complex trait scored by a PRS
// model. The set is closed; models outside these categories are rejected at
// registration time.
type TraitCategory string

const (
	CARDIOVASCULAR TraitCategory = "Cardiovascular"
	METABOLIC      TraitCategory = "Metabolic"
	NEUROLOGICAL   TraitCategory = "Neurological"
	CANCER         TraitCategory = "Cancer"
	AUTOIMMUNE     TraitCategory = "Autoimmune"
)

// RiskCategory represents the risk band a PRS percentile falls into.
type RiskCategory string

const (
	RISK_LOW           RiskCategory = "Low"
	RISK_BELOW_AVERAGE RiskCategory = "Below average"
	RISK_AVERAGE       RiskCategory = "Average"
	RISK_ABOVE_AVERAGE RiskCategory = "Above average"
	RISK_HIGH          RiskCategory = "High"
)

// IsValid validates the trait category against the closed category set.
func (tc TraitCategory) IsValid() bool {
	switch tc {
	case CARDIOVASCULAR, METABOLIC, NEUROLOGICAL, CANCER, AUTOIMMUNE:
		return true
	default:
		return false
	}
}

// String returns the string representation of the trait category.
func (tc TraitCategory) String() string {
	return string(tc)
}

// IsValid validates the risk category.
func (rc RiskCategory) IsValid() bool {
	switch rc {
	case RISK_LOW, RISK_BELOW_AVERAGE, RISK_AVERAGE, RISK_ABOVE_AVERAGE, RISK_HIGH:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk category.
func (rc RiskCategory) String() string {
	return string(rc)
}

// Elevated reports whether the band indicates above-population genetic risk
// and therefore deserves prominence in reports.
func (rc RiskCategory) Elevated() bool {
	switch rc {
	case RISK_ABOVE_AVERAGE, RISK_HIGH:
		return true
	default:
		return false
	}
}

// RiskCategoryForPercentile maps a population percentile to its risk band
// using fixed thresholds: <10 Low, <25 Below average, <75 Average,
// <90 Above average, otherwise High.
func RiskCategoryForPercentile(percentile float64) RiskCategory {
	switch {
	case percentile < 10:
		return RISK_LOW
	case percentile < 25:
		return RISK_BELOW_AVERAGE
	case percentile < 75:
		return RISK_AVERAGE
	case percentile < 90:
		return RISK_ABOVE_AVERAGE
	default:
		return RISK_HIGH
	}
}

// LogFields returns structured logging fields for risk reporting audit
// trails.
func (rc RiskCategory) LogFields() map[string]any {
	return map[string]any{
		"risk_category": string(rc),
		"elevated":      rc.Elevated(),
		"is_valid":      rc.IsValid(),
	}
}
