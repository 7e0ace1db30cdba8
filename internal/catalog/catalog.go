// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the curated journal registries and topic keyword
// sets per discipline. The registries are static data: the top journals
// of each field with their ISSNs for CrossRef filtering, plus the keyword
// vocabulary the topic classifier scores against.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Journal pairs a venue name with its print ISSN.
type Journal struct {
	Name string `json:"name" yaml:"name"`
	ISSN string `json:"issn" yaml:"issn"`
}

// Discipline bundles one field's journal registry and topic vocabulary.
type Discipline struct {
	// Name is the lowercase discipline identifier.
	Name string

	// Journals lists the registry in curation order.
	Journals []Journal

	// Topics maps topic name to its keyword list.
	Topics map[string][]string

	// Flagship keywords count double when scoring topics.
	Flagship []string
}

// Fallback is the topic assigned when no keyword matches.
func (d Discipline) Fallback() string {
	return "general_" + d.Name
}

// ISSN looks up a journal's ISSN by name, case-insensitively.
func (d Discipline) ISSN(journal string) (string, bool) {
	for _, j := range d.Journals {
		if strings.EqualFold(j.Name, journal) {
			return j.ISSN, true
		}
	}
	return "", false
}

// TopicNames returns the discipline's topics in sorted order so callers
// iterate deterministically.
func (d Discipline) TopicNames() []string {
	names := make([]string, 0, len(d.Topics))
	for name := range d.Topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the registry for a discipline, matched case-insensitively.
func Get(name string) (Discipline, error) {
	for _, d := range disciplines {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Discipline{}, fmt.Errorf("unknown discipline %q (have: %s)", name, strings.Join(Names(), ", "))
}

// Names lists the registered disciplines.
func Names() []string {
	names := make([]string, len(disciplines))
	for i, d := range disciplines {
		names[i] = d.Name
	}
	return names
}

var disciplines = []Discipline{economics, finance, psychology}

var economics = Discipline{
	Name: "economics",
	Journals: []Journal{
		{"American Economic Review", "0002-8282"},
		{"Quarterly Journal of Economics", "0033-5533"},
		{"Journal of Political Economy", "0022-3808"},
		{"Econometrica", "0012-9682"},
		{"Review of Economic Studies", "0034-6527"},
		{"Journal of Economic Theory", "0022-0531"},
		{"Journal of Monetary Economics", "0304-3932"},
		{"Economic Journal", "0013-0133"},
		{"Journal of the European Economic Association", "1542-4766"},
		{"Review of Economics and Statistics", "0034-6535"},
		{"Journal of Economic Growth", "1381-4338"},
		{"Journal of International Economics", "0022-1996"},
		{"Journal of Public Economics", "0047-2727"},
		{"Journal of Labor Economics", "0734-306X"},
		{"Journal of Development Economics", "0304-3878"},
	},
	Topics: map[string][]string{
		"macroeconomics": {"monetary policy", "fiscal policy", "inflation", "unemployment", "gdp",
			"business cycle", "economic growth", "recession", "central bank"},
		"microeconomics": {"consumer behavior", "firm behavior", "market structure", "competition",
			"monopoly", "oligopoly", "game theory", "industrial organization"},
		"labor_economics": {"wage", "employment", "unemployment", "human capital", "education",
			"skills", "labor market", "job search", "discrimination"},
		"public_economics": {"taxation", "government spending", "public goods", "welfare",
			"social security", "redistribution", "public choice", "regulation"},
		"international_economics": {"trade", "tariff", "exchange rate", "globalization",
			"foreign direct investment", "balance of payments", "wto"},
		"development_economics": {"poverty", "inequality", "developing countries", "aid",
			"microfinance", "institutions", "corruption", "growth"},
		"econometrics": {"estimation", "identification", "causal", "regression", "instrumental",
			"panel data", "time series", "forecasting", "statistical"},
		"behavioral_economics": {"behavioral", "experimental", "psychology", "bias", "heuristic",
			"nudge", "prospect theory", "bounded rationality"},
		"environmental_economics": {"climate change", "carbon", "pollution", "sustainability",
			"renewable", "energy", "environmental policy"},
		"health_economics": {"healthcare", "insurance", "medical", "pharmaceutical", "hospital",
			"health policy", "medicare", "medicaid", "pandemic"},
		"urban_economics": {"cities", "housing", "real estate", "transportation", "agglomeration",
			"zoning", "urban planning", "migration"},
		"political_economy": {"voting", "elections", "political", "democracy", "institutions",
			"lobbying", "conflict", "war", "governance"},
	},
	Flagship: []string{"monetary policy", "fiscal policy", "unemployment", "wage",
		"trade", "poverty", "regression", "causal", "climate change"},
}

var finance = Discipline{
	Name: "finance",
	Journals: []Journal{
		{"Journal of Finance", "1540-6261"},
		{"Journal of Financial Economics", "0304-405X"},
		{"Review of Financial Studies", "1465-7368"},
		{"Journal of Financial and Quantitative Analysis", "0022-1090"},
		{"Review of Finance", "1572-3097"},
	},
	Topics: map[string][]string{
		"corporate_finance": {"capital structure", "dividend", "merger", "acquisition", "corporate governance",
			"executive compensation", "ipo", "corporate investment"},
		"asset_pricing":          {"capm", "factor", "risk premium", "anomaly", "momentum", "value", "portfolio"},
		"market_microstructure":  {"liquidity", "market making", "price discovery", "trading"},
		"behavioral_finance":     {"sentiment", "behavioral", "bias", "psychology"},
		"banking":                {"bank", "lending", "credit risk", "financial crisis", "regulation"},
		"derivatives":            {"option", "futures", "swap", "hedging", "volatility"},
		"international_finance":  {"exchange rate", "currency", "emerging markets", "capital flows"},
		"fintech":                {"blockchain", "cryptocurrency", "bitcoin", "digital"},
	},
	Flagship: []string{"ipo", "merger", "acquisition", "capm", "liquidity",
		"blockchain", "cryptocurrency", "bank", "option"},
}

var psychology = Discipline{
	Name: "psychology",
	Journals: []Journal{
		{"Psychological Bulletin", "0033-2909"},
		{"Psychological Review", "0033-295X"},
		{"Annual Review of Psychology", "0066-4308"},
		{"Journal of Experimental Psychology: General", "0096-3445"},
		{"Psychological Science", "0956-7976"},
		{"Journal of Personality and Social Psychology", "0022-3514"},
		{"Personality and Social Psychology Review", "1088-8683"},
		{"Psychological Science in the Public Interest", "1529-1006"},
		{"Development and Psychopathology", "0954-5794"},
		{"Perspectives on Psychological Science", "1745-6916"},
	},
	Topics: map[string][]string{
		"cognitive_psychology": {"attention", "memory", "perception", "cognition", "cognitive",
			"working memory", "executive function", "decision making",
			"reasoning", "problem solving", "learning", "language processing"},
		"social_psychology": {"social", "attitudes", "prejudice", "stereotypes", "conformity",
			"group behavior", "social influence", "persuasion", "aggression",
			"prosocial", "intergroup", "social cognition", "attribution"},
		"developmental_psychology": {"development", "developmental", "children", "childhood",
			"adolescence", "infancy", "aging", "lifespan", "infant",
			"toddler", "attachment", "parenting", "maturation"},
		"clinical_psychology": {"depression", "anxiety", "psychotherapy", "treatment",
			"mental health", "disorder", "psychopathology", "intervention",
			"therapy", "clinical", "ptsd", "schizophrenia", "bipolar"},
		"neuroscience_psychology": {"brain", "neural", "neuroscience", "fmri", "neuroimaging",
			"cortex", "neuropsychology", "eeg", "neurological",
			"hippocampus", "amygdala", "prefrontal", "dopamine"},
		"personality_psychology": {"personality", "traits", "individual differences", "big five",
			"temperament", "character", "self-concept", "identity",
			"narcissism", "psychopathy", "personality assessment"},
		"emotion_motivation": {"emotion", "emotional", "affect", "mood", "motivation",
			"reward", "goal", "emotional regulation",
			"happiness", "fear", "anger", "stress", "coping"},
		"methodology_statistics": {"meta-analysis", "statistical", "methodology", "psychometrics",
			"measurement", "validity", "reliability", "replication",
			"experimental design", "factor analysis", "power analysis"},
		"health_psychology": {"health", "health behavior", "wellness", "medical", "pain",
			"chronic illness", "coping", "stress", "behavioral medicine",
			"quality of life", "health intervention"},
		"educational_psychology": {"education", "educational", "learning", "teaching", "academic",
			"school", "student", "achievement", "instruction",
			"curriculum", "assessment", "educational intervention"},
		"industrial_organizational": {"workplace", "organizational", "leadership", "work",
			"employee", "job satisfaction", "performance", "selection",
			"training", "organizational behavior", "human resources"},
		"evolutionary_psychology": {"evolution", "evolutionary", "mate selection", "adaptation",
			"natural selection", "reproductive", "ancestral",
			"cross-cultural", "universal"},
	},
	Flagship: []string{"replication", "meta-analysis", "fmri", "depression",
		"brain", "social", "development", "cognition"},
}
