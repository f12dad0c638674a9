package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dna-health-analyzer/internal/domain"
)

// Percentile transform constants. The transform is a coarse linear proxy
// for a population distribution, not a calibrated statistical model:
// percentile = clamp(50 + score*scale, 1, 99), with the scale keyed off the
// trait name. Changing any of these silently shifts every downstream
// percentile, so they are behavioral constants.
const (
	scaleCoronary  = 10.0 // CAD has a wider score distribution
	scaleAlzheimer = 5.0  // AD scores are dominated by APOE
	scaleDefault   = 8.0
	percentileMin  = 1.0
	percentileMax  = 99.0
)

// RiskEngine computes polygenic risk scores from registered PRSModels. The
// model registry is immutable after construction, so per-trait computations
// share it freely across goroutines; only the LRU result cache is mutable
// and it is safe for concurrent use.
type RiskEngine struct {
	logger *logrus.Logger
	models map[string]*domain.PRSModel
	order  []string
	cache  *lru.Cache[string, domain.PRSResult]
}

// NewRiskEngine creates an engine with the shipped PGS Catalog models.
func NewRiskEngine(cfg *domain.PRSConfig, logger *logrus.Logger) (*RiskEngine, error) {
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 128
	}
	return NewRiskEngineWithModels(prsModels, prsModelKeys, cacheSize, logger)
}

// NewRiskEngineWithModels creates an engine over an explicit model registry.
// Order fixes batch enumeration; every model is validated at registration.
func NewRiskEngineWithModels(models map[string]*domain.PRSModel, order []string, cacheSize int, logger *logrus.Logger) (*RiskEngine, error) {
	for key, model := range models {
		if err := model.Validate(); err != nil {
			return nil, fmt.Errorf("registering PRS model %q: %w", key, err)
		}
	}
	for _, key := range order {
		if _, ok := models[key]; !ok {
			return nil, fmt.Errorf("registering PRS models: order references unknown key %q", key)
		}
	}

	cache, err := lru.New[string, domain.PRSResult](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	logger.WithField("model_count", len(models)).Info("Initialized PRS models")

	return &RiskEngine{
		logger: logger,
		models: models,
		order:  order,
		cache:  cache,
	}, nil
}

// TraitKeys returns the registered trait keys in registration order.
func (e *RiskEngine) TraitKeys() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Model returns the registered model for a trait key, if present.
func (e *RiskEngine) Model(traitKey string) (*domain.PRSModel, bool) {
	m, ok := e.models[traitKey]
	return m, ok
}

// ComputeTrait scores one trait for one genome.
//
// The effect allele for each weighted variant is the first allele of the
// genotype as the user carries it, and the contribution is
// count(first allele) * weight — homozygous counts 2, heterozygous 1. This
// deviates from standard PRS methodology, where the effect allele is fixed
// per variant by the source study; it is preserved deliberately because
// correcting it silently changes every downstream percentile. Variants
// absent from the genome are skipped and tracked by the coverage counters.
//
// An unregistered trait key returns an UNKNOWN_TRAIT error so batch callers
// can skip it; scoring itself never fails, zero coverage included.
func (e *RiskEngine) ComputeTrait(traitKey string, genome domain.Genome) (*domain.PRSResult, error) {
	model, ok := e.models[traitKey]
	if !ok {
		return nil, domain.NewUnknownTraitError(traitKey)
	}

	// Weighted rsids in sorted order: score accumulation order is fixed, so
	// identical inputs produce bit-identical floats, and the cache key built
	// alongside is stable.
	rsids := make([]string, 0, len(model.VariantWeights))
	for rsid := range model.VariantWeights {
		rsids = append(rsids, rsid)
	}
	sort.Strings(rsids)

	var fingerprint strings.Builder
	fingerprint.WriteString(traitKey)
	for _, rsid := range rsids {
		fingerprint.WriteByte('|')
		fingerprint.WriteString(rsid)
		fingerprint.WriteByte('=')
		if genotype, found := genome.GenotypeAt(rsid); found {
			fingerprint.WriteString(genotype)
		}
	}
	cacheKey := fingerprint.String()

	if cached, hit := e.cache.Get(cacheKey); hit {
		e.logger.WithField("trait_key", traitKey).Debug("PRS result cache hit")
		result := cached
		return &result, nil
	}

	score := 0.0
	variantsFound := 0
	for _, rsid := range rsids {
		genotype, found := genome.GenotypeAt(rsid)
		if !found || len(genotype) == 0 {
			continue
		}
		effectAllele := genotype[0]
		effectAlleleCount := strings.Count(genotype, string(effectAllele))
		score += float64(effectAlleleCount) * model.VariantWeights[rsid]
		variantsFound++
	}

	percentile := scoreToPercentile(score, model.TraitName)
	riskCategory := domain.RiskCategoryForPercentile(percentile)

	result := domain.PRSResult{
		TraitKey:      traitKey,
		TraitName:     model.TraitName,
		Category:      model.Category,
		Score:         score,
		VariantsFound: variantsFound,
		VariantsTotal: len(model.VariantWeights),
		Percentile:    percentile,
		RiskCategory:  riskCategory,
	}
	result.Interpretation = buildInterpretation(model, &result)

	e.logger.WithFields(result.LogFields()).Debug("Computed PRS")

	e.cache.Add(cacheKey, result)
	out := result
	return &out, nil
}

// ComputeAllTraits scores every registered trait. Per-trait computations
// run concurrently: they read only the shared immutable genome and model
// registry and each writes a private slot, so no locking is needed.
// Results come back in registration order regardless of completion order.
func (e *RiskEngine) ComputeAllTraits(ctx context.Context, genome domain.Genome) ([]domain.PRSResult, error) {
	analysisID := uuid.NewString()
	e.logger.WithFields(logrus.Fields{
		"analysis_id": analysisID,
		"traits":      len(e.order),
		"genome_size": len(genome),
	}).Info("Scoring all configured traits")

	results := make([]domain.PRSResult, len(e.order))

	g, ctx := errgroup.WithContext(ctx)
	for i, traitKey := range e.order {
		i, traitKey := i, traitKey
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := e.ComputeTrait(traitKey, genome)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring all traits (analysis %s): %w", analysisID, err)
	}

	return results, nil
}

// HighRiskTraits returns the traits whose percentile exceeds threshold,
// sorted descending by percentile. Trait name breaks percentile ties so the
// ordering stays deterministic.
func (e *RiskEngine) HighRiskTraits(ctx context.Context, genome domain.Genome, threshold float64) ([]domain.PRSResult, error) {
	all, err := e.ComputeAllTraits(ctx, genome)
	if err != nil {
		return nil, err
	}

	highRisk := make([]domain.PRSResult, 0, len(all))
	for _, result := range all {
		if result.Percentile > threshold {
			highRisk = append(highRisk, result)
		}
	}

	sort.SliceStable(highRisk, func(i, j int) bool {
		if highRisk[i].Percentile != highRisk[j].Percentile {
			return highRisk[i].Percentile > highRisk[j].Percentile
		}
		return highRisk[i].TraitName < highRisk[j].TraitName
	})

	return highRisk, nil
}

// scoreToPercentile applies the linear population-distribution proxy with
// saturation at [1, 99].
func scoreToPercentile(score float64, traitName string) float64 {
	scale := scaleDefault
	switch {
	case strings.Contains(traitName, "Coronary"):
		scale = scaleCoronary
	case strings.Contains(traitName, "Alzheimer"):
		scale = scaleAlzheimer
	}

	percentile := 50.0 + score*scale
	if percentile < percentileMin {
		return percentileMin
	}
	if percentile > percentileMax {
		return percentileMax
	}
	return percentile
}
