package reference

import "github.com/dna-health-analyzer/internal/domain"

// curatedCatalog is the shipped set of tracked health-relevant variants.
// Hand-curated from well-replicated association studies; order is the
// display order of reports, so new entries go at the end of their section.
var curatedCatalog = []domain.ReferenceVariant{
	// Cardiovascular health
	{
		RSID:          "rs10757274",
		Gene:          "9p21.3",
		Trait:         "Cardiovascular disease risk",
		AlleleEffects: map[string]string{"G": "risk", "A": "protective"},
		Description:   "Associated with increased risk of heart attack and stroke",
	},
	{
		RSID:          "rs1333049",
		Gene:          "9p21.3",
		Trait:         "Cardiovascular disease",
		AlleleEffects: map[string]string{"C": "risk", "G": "protective"},
		Description:   "Strongly associated with myocardial infarction",
	},
	{
		RSID:          "rs2383206",
		Gene:          "ANRIL",
		Trait:         "Atherosclerosis",
		AlleleEffects: map[string]string{"T": "risk", "C": "protective"},
		Description:   "Associated with atherosclerotic cardiovascular disease",
	},

	// Cholesterol and lipids
	{
		RSID:          "rs429358",
		Gene:          "APOE",
		Trait:         "Cholesterol & Alzheimer's disease",
		AlleleEffects: map[string]string{"C": "normal", "T": "risk"},
		Description:   "APOE4 variant associated with higher cholesterol and Alzheimer's risk",
	},
	{
		RSID:          "rs7412",
		Gene:          "APOE",
		Trait:         "Cholesterol & Alzheimer's disease",
		AlleleEffects: map[string]string{"C": "normal", "T": "protective"},
		Description:   "APOE2 variant, protective for Alzheimer's",
	},

	// Caffeine metabolism
	{
		RSID:          "rs762551",
		Gene:          "CYP1A2",
		Trait:         "Caffeine sensitivity",
		AlleleEffects: map[string]string{"A": "fast metabolizer", "C": "slow metabolizer"},
		Description:   "Fast metabolizers (AA) clear caffeine quickly. Slow metabolizers (CC) retain caffeine longer",
	},

	// Lactose tolerance
	{
		RSID:          "rs4988235",
		Gene:          "MCM6",
		Trait:         "Lactose intolerance",
		AlleleEffects: map[string]string{"C": "lactose tolerant", "T": "lactose intolerant"},
		Description:   "CC = lactose tolerant, CT = mostly tolerant, TT = lactose intolerant",
	},

	// Vitamin D
	{
		RSID:          "rs2282679",
		Gene:          "GC",
		Trait:         "Vitamin D metabolism",
		AlleleEffects: map[string]string{"T": "higher vitamin D", "G": "lower vitamin D"},
		Description:   "Affects vitamin D binding protein and vitamin D levels",
	},

	// Drug metabolism
	{
		RSID:          "rs1045642",
		Gene:          "MDR1/ABCB1",
		Trait:         "Drug metabolism",
		AlleleEffects: map[string]string{"C": "normal", "T": "reduced drug transport"},
		Description:   "Affects absorption and transport of many medications",
	},
	{
		RSID:          "rs4149056",
		Gene:          "SLCO1B1",
		Trait:         "Statin metabolism",
		AlleleEffects: map[string]string{"C": "normal metabolism", "T": "reduced metabolism"},
		Description:   "TT carriers have reduced statin metabolism and increased side effect risk",
	},

	// Alzheimer's disease
	{
		RSID:          "rs11136000",
		Gene:          "CLUSTERIN",
		Trait:         "Alzheimer's disease",
		AlleleEffects: map[string]string{"T": "increased risk", "C": "protective"},
		Description:   "Associated with increased Alzheimer's disease risk",
	},

	// Type 2 diabetes
	{
		RSID:          "rs7903146",
		Gene:          "TCF7L2",
		Trait:         "Type 2 diabetes",
		AlleleEffects: map[string]string{"C": "lower risk", "T": "higher risk"},
		Description:   "TT genotype associated with 1.5x increased diabetes risk",
	},
	{
		RSID:          "rs1801282",
		Gene:          "PPARG",
		Trait:         "Insulin sensitivity",
		AlleleEffects: map[string]string{"C": "normal", "G": "improved insulin sensitivity"},
		Description:   "G allele associated with improved insulin sensitivity",
	},

	// Bone health
	{
		RSID:          "rs1801018",
		Gene:          "COL1A1",
		Trait:         "Bone mineral density",
		AlleleEffects: map[string]string{"S": "higher density", "s": "lower density"},
		Description:   "Associated with bone mineral density",
	},

	// Athletic performance
	{
		RSID:          "rs1815834",
		Gene:          "ACTN3",
		Trait:         "Muscle fiber type",
		AlleleEffects: map[string]string{"R": "power/speed", "X": "endurance"},
		Description:   "RR genotype associated with power and speed performance, XX with endurance",
	},

	// Eye color
	{
		RSID:          "rs12913832",
		Gene:          "HERC2",
		Trait:         "Eye color",
		AlleleEffects: map[string]string{"A": "brown eyes", "G": "blue eyes"},
		Description:   "Strongly associated with eye color, GG = blue, AA/GA = brown",
	},

	// Alcohol metabolism
	{
		RSID:          "rs1042026",
		Gene:          "ADH1B",
		Trait:         "Alcohol flush reaction",
		AlleleEffects: map[string]string{"G": "normal", "A": "alcohol flush"},
		Description:   "A allele associated with alcohol flush reaction and reduced alcohol tolerance",
	},

	// Sleep
	{
		RSID:          "rs11900115",
		Gene:          "DEC2",
		Trait:         "Sleep duration",
		AlleleEffects: map[string]string{"T": "normal sleep needs", "C": "may sleep less"},
		Description:   "Associated with natural short sleep duration",
	},

	// Metabolism and weight
	{
		RSID:          "rs9939609",
		Gene:          "FTO",
		Trait:         "Obesity risk",
		AlleleEffects: map[string]string{"A": "lower obesity risk", "T": "higher obesity risk"},
		Description:   "TT genotype associated with ~1.5 kg higher BMI and increased obesity risk",
	},

	// Blood clotting
	{
		RSID:          "rs6025",
		Gene:          "F5",
		Trait:         "Blood clotting (Factor V Leiden)",
		AlleleEffects: map[string]string{"G": "normal", "A": "increased clotting risk"},
		Description:   "A allele (Factor V Leiden) associated with increased blood clot risk",
	},

	// Glaucoma
	{
		RSID:          "rs2165241",
		Gene:          "SRBD1",
		Trait:         "Glaucoma",
		AlleleEffects: map[string]string{"C": "lower risk", "T": "higher risk"},
		Description:   "Associated with primary open-angle glaucoma",
	},

	// Migraine
	{
		RSID:          "rs6478241",
		Gene:          "PRDM16",
		Trait:         "Migraine",
		AlleleEffects: map[string]string{"A": "higher risk", "G": "protective"},
		Description:   "Associated with increased migraine susceptibility",
	},
}
