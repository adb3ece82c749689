// Package report scans pasted or extracted medical report text for indicator
// phrases and buckets them into findings with an urgency grade. Like the
// chat engine it is a pure function over static rules: no NLP, no I/O.
package report

import (
	"strings"

	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Analysis is the structured outcome of one report scan. UrgencyLevel is on
// the 1-10 scale used by the disease catalog severity field; 1 means nothing
// notable was found.
type Analysis struct {
	KeyFindings         []string `json:"key_findings"`
	SuspectedConditions []string `json:"suspected_conditions"`
	RecommendedTests    []string `json:"recommended_tests"`
	UrgencyLevel        int      `json:"urgency_level"`
}

// indicatorRule ties report phrases to a finding, suspicion, follow-up tests
// and an urgency floor. Rules are independent: every rule that fires
// contributes, and the final urgency is the maximum.
type indicatorRule struct {
	phrases   []string
	finding   string
	condition string
	tests     []string
	urgency   int
}

var indicatorRules = []indicatorRule{
	{
		phrases:   []string{"lung nodule", "pulmonary mass"},
		finding:   "Lung nodule/mass detected",
		condition: "Possible lung cancer",
		tests:     []string{"CT-guided biopsy", "PET scan"},
		urgency:   8,
	},
	{
		phrases:   []string{"thyroid nodule", "thyroid enlargement"},
		finding:   "Thyroid abnormality detected",
		condition: "Thyroid disorder",
		tests:     []string{"Thyroid ultrasound", "Fine needle biopsy"},
		urgency:   6,
	},
	{
		phrases:   []string{"cardiac", "coronary"},
		finding:   "Cardiac abnormality noted",
		condition: "Heart disease",
		tests:     []string{"Echocardiogram", "Stress test"},
		urgency:   7,
	},
}

// Analyze scans the report text against the indicator rules.
func Analyze(reportText string) Analysis {
	text := strings.ToLower(reportText)

	result := Analysis{UrgencyLevel: 1}
	for _, rule := range indicatorRules {
		fired := false
		for _, p := range rule.phrases {
			if strings.Contains(text, p) {
				fired = true
				break
			}
		}
		if !fired {
			continue
		}

		result.KeyFindings = append(result.KeyFindings, rule.finding)
		result.SuspectedConditions = append(result.SuspectedConditions, rule.condition)
		result.RecommendedTests = append(result.RecommendedTests, rule.tests...)
		if rule.urgency > result.UrgencyLevel {
			result.UrgencyLevel = rule.urgency
		}
	}

	logger.L().Debugw("Report analysis completed",
		"findings", len(result.KeyFindings),
		"urgency", result.UrgencyLevel)

	return result
}
