package service

import (
	"fmt"
	"strings"

	"github.com/dna-health-analyzer/internal/domain"
)

// buildInterpretation renders the human-readable summary attached to a
// PRSResult. Percentiles are displayed rounded to whole numbers; the result
// struct keeps full precision.
func buildInterpretation(model *domain.PRSModel, result *domain.PRSResult) string {
	var b strings.Builder

	fmt.Fprintf(&b,
		"Your polygenic risk score for %s places you in the %s category (percentile: %.0f).\n\n",
		model.TraitName, strings.ToLower(result.RiskCategory.String()), result.Percentile)

	fmt.Fprintf(&b,
		"This %s-category PRS includes %d validated genetic variants affecting %s risk; %d were found in your genome.\n\n",
		strings.ToLower(model.Category.String()), result.VariantsTotal, model.TraitName, result.VariantsFound)

	b.WriteString("Important: a PRS captures only part of genetic risk, and environmental factors (diet, exercise, lifestyle) play equally important roles.\n\n")

	fmt.Fprintf(&b, "Evidence: %d peer-reviewed studies", len(model.Citations))

	return b.String()
}
