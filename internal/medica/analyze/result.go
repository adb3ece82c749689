package analyze

// Diagnosis is one ranked condition in an analysis result. Probability is a
// plain match-strength ratio in [0,1], not a calibrated statistical
// probability; rounding happens only at presentation time.
type Diagnosis struct {
	Condition   string  `json:"condition"`
	Probability float64 `json:"probability"`
	Description string  `json:"description"`
}

// Medication is one suggested medication in an analysis result.
type Medication struct {
	Name        string `json:"name"`
	Dosage      string `json:"dosage"`
	Frequency   string `json:"frequency"`
	Description string `json:"description"`
}

// Result is the aggregate produced by one Analyze call. Diagnoses are ordered
// by descending probability with keyword-triggered entries placed at the
// front. Results are ephemeral: built per call, rendered, discarded.
type Result struct {
	Diagnoses   []Diagnosis  `json:"diagnoses"`
	Medications []Medication `json:"medications"`
	Advice      string       `json:"advice"`
}

// DiseaseMatch is one scored catalog disease from MatchDiseases.
type DiseaseMatch struct {
	Disease         string   `json:"disease"`
	MatchedSymptoms []string `json:"matched_symptoms"`
	Confidence      float64  `json:"confidence"`
	Description     string   `json:"description"`
	Severity        int      `json:"severity"`
	RiskFactors     []string `json:"risk_factors"`
	DiagnosticTests []string `json:"diagnostic_tests"`
}

// Suggestion is one raw medication suggestion from the recommender, before
// the composer formats it into a Medication.
type Suggestion struct {
	DrugName     string  `json:"drug_name"`
	GenericName  string  `json:"generic_name"`
	Dosage       string  `json:"dosage"`
	Instructions string  `json:"instructions"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
}
