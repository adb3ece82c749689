// Package plan turns an analysis result into a condition-templated treatment
// plan: phased timeline, specialist roster, follow-up schedule and medication
// monitoring rows. Templates exist for the three specialty areas; other
// conditions get a plan carrying only the medication and safety sections.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/RishiRohanKalapala/medica/internal/medica/analyze"
	"github.com/RishiRohanKalapala/medica/internal/medica/logger"
)

// Phase is one timeline entry of a treatment plan.
type Phase struct {
	Phase      string   `json:"phase"`
	Duration   string   `json:"duration"`
	Priority   string   `json:"priority"` // urgent | high | ongoing | maintenance
	Activities []string `json:"activities"`
}

// MedicationRow is one monitored medication in the plan.
type MedicationRow struct {
	Name       string `json:"name"`
	Schedule   string `json:"schedule"`
	Monitoring string `json:"monitoring"`
}

// Plan is a complete generated treatment plan.
type Plan struct {
	PrimaryCondition  string          `json:"primary_condition"`
	GeneratedDate     string          `json:"generated_date"`
	Timeline          []Phase         `json:"timeline"`
	Specialists       []string        `json:"specialists"`
	FollowUpSchedule  []string        `json:"follow_up_schedule"`
	Medications       []MedicationRow `json:"medications"`
	EmergencyContacts []string        `json:"emergency_contacts"`
	ImportantNotes    []string        `json:"important_notes"`
}

// Build generates a plan for the top-ranked diagnosis. It requires at least
// one diagnosis; an analysis that produced none has nothing to plan for.
func Build(diagnoses []analyze.Diagnosis, medications []analyze.Medication, generated time.Time) (Plan, error) {
	if len(diagnoses) == 0 {
		return Plan{}, fmt.Errorf("no diagnoses to build a treatment plan for")
	}

	primary := diagnoses[0].Condition
	cond := strings.ToLower(primary)

	var timeline []Phase
	var specialists []string
	var followUp []string

	switch {
	case strings.Contains(cond, "lung") || strings.Contains(cond, "cancer"):
		timeline = lungTimeline
		specialists = lungSpecialists
		followUp = lungFollowUp
	case strings.Contains(cond, "thyroid"):
		timeline = thyroidTimeline
		specialists = thyroidSpecialists
		followUp = thyroidFollowUp
	case strings.Contains(cond, "heart") || strings.Contains(cond, "cardiac"):
		timeline = heartTimeline
		specialists = heartSpecialists
		followUp = heartFollowUp
	}

	rows := make([]MedicationRow, 0, len(medications))
	for _, med := range medications {
		rows = append(rows, MedicationRow{
			Name:       med.Name,
			Schedule:   med.Frequency,
			Monitoring: "Regular blood tests and clinical assessment required",
		})
	}

	logger.L().Debugw("Treatment plan generated",
		"condition", primary,
		"phases", len(timeline),
		"medications", len(rows))

	return Plan{
		PrimaryCondition: primary,
		GeneratedDate:    generated.Format("2006-01-02"),
		Timeline:         timeline,
		Specialists:      specialists,
		FollowUpSchedule: followUp,
		Medications:      rows,
		EmergencyContacts: []string{
			"Emergency Department: 911",
			"Cardiology Emergency: 1-800-HEART-911",
			"Oncology Emergency: 1-800-CANCER-HELP",
			"Poison Control: 1-800-222-1222",
		},
		ImportantNotes: []string{
			"Always carry medication list and emergency contacts",
			"Report any new or worsening symptoms immediately",
			"Attend all scheduled appointments and follow-ups",
			"Maintain healthy lifestyle modifications as recommended",
		},
	}, nil
}

var lungTimeline = []Phase{
	{
		Phase:      "Immediate Assessment (0-2 weeks)",
		Duration:   "2 weeks",
		Priority:   "urgent",
		Activities: []string{"Complete staging workup", "Biopsy confirmation", "Multidisciplinary team consultation", "PET/CT imaging"},
	},
	{
		Phase:      "Treatment Planning (2-4 weeks)",
		Duration:   "2 weeks",
		Priority:   "high",
		Activities: []string{"Treatment plan finalization", "Pre-treatment assessments", "Patient education", "Insurance authorization"},
	},
	{
		Phase:      "Active Treatment (1-6 months)",
		Duration:   "3-6 months",
		Priority:   "ongoing",
		Activities: []string{"Chemotherapy/Radiation", "Regular monitoring", "Supportive care", "Side effect management"},
	},
	{
		Phase:      "Surveillance (Ongoing)",
		Duration:   "Lifelong",
		Priority:   "maintenance",
		Activities: []string{"Regular imaging", "Symptom monitoring", "Survivorship care", "Quality of life assessment"},
	},
}

var lungSpecialists = []string{
	"Medical Oncologist - Primary treatment coordination and chemotherapy management",
	"Pulmonologist - Lung function monitoring and respiratory care",
	"Radiation Oncologist - Radiation therapy planning and delivery",
	"Thoracic Surgeon - Surgical evaluation and intervention",
	"Palliative Care Specialist - Symptom management and quality of life",
}

var lungFollowUp = []string{
	"Week 2: Treatment response assessment and lab work",
	"Month 1: Side effect monitoring and dose adjustments",
	"Month 3: Mid-treatment evaluation with imaging",
	"Month 6: End of treatment assessment and planning",
	"Every 3 months: Surveillance imaging and clinical evaluation",
}

var thyroidTimeline = []Phase{
	{
		Phase:      "Diagnostic Workup (0-2 weeks)",
		Duration:   "2 weeks",
		Priority:   "urgent",
		Activities: []string{"Complete thyroid function tests", "Thyroid ultrasound", "Fine needle biopsy if indicated", "Nuclear medicine scan"},
	},
	{
		Phase:      "Treatment Initiation (2-4 weeks)",
		Duration:   "2 weeks",
		Priority:   "high",
		Activities: []string{"Medication selection and titration", "Lifestyle counseling", "Baseline monitoring", "Patient education"},
	},
	{
		Phase:      "Stabilization Phase (1-3 months)",
		Duration:   "2-3 months",
		Priority:   "ongoing",
		Activities: []string{"Regular dose adjustments", "Symptom monitoring", "Lab follow-ups", "Side effect assessment"},
	},
	{
		Phase:      "Maintenance Care (Ongoing)",
		Duration:   "Lifelong",
		Priority:   "maintenance",
		Activities: []string{"Annual monitoring", "Medication optimization", "Complication screening", "Cardiovascular risk assessment"},
	},
}

var thyroidSpecialists = []string{
	"Endocrinologist - Primary thyroid disorder management and hormone optimization",
	"Nuclear Medicine Physician - Radioactive iodine therapy if needed",
	"Endocrine Surgeon - Surgical consultation for complex cases",
	"Cardiologist - Cardiovascular monitoring for hyperthyroidism",
}

var thyroidFollowUp = []string{
	"Week 2: Initial response check and symptom assessment",
	"Month 1: First dose adjustment based on lab results",
	"Month 3: Stabilization assessment and long-term planning",
	"Month 6: Comprehensive evaluation and optimization",
	"Annually: Complete thyroid function and complication screening",
}

var heartTimeline = []Phase{
	{
		Phase:      "Acute Stabilization (0-1 week)",
		Duration:   "1 week",
		Priority:   "urgent",
		Activities: []string{"Emergency stabilization", "Comprehensive cardiac workup", "Risk stratification", "Medication optimization"},
	},
	{
		Phase:      "Treatment Optimization (1-4 weeks)",
		Duration:   "3 weeks",
		Priority:   "high",
		Activities: []string{"Medication titration", "Lifestyle interventions", "Cardiac rehabilitation planning", "Risk factor modification"},
	},
	{
		Phase:      "Rehabilitation Phase (1-3 months)",
		Duration:   "2-3 months",
		Priority:   "ongoing",
		Activities: []string{"Cardiac rehabilitation program", "Supervised exercise training", "Nutritional counseling", "Stress management"},
	},
	{
		Phase:      "Long-term Management (Ongoing)",
		Duration:   "Lifelong",
		Priority:   "maintenance",
		Activities: []string{"Regular monitoring", "Medication optimization", "Preventive care", "Annual risk assessment"},
	},
}

var heartSpecialists = []string{
	"Interventional Cardiologist - Primary cardiac care and procedures",
	"Cardiac Surgeon - Surgical evaluation and intervention if needed",
	"Cardiac Rehabilitation Specialist - Exercise program and lifestyle modification",
	"Electrophysiologist - Heart rhythm disorders management",
	"Heart Failure Specialist - Advanced heart failure management",
}

var heartFollowUp = []string{
	"Week 1: Acute follow-up and medication adjustment",
	"Month 1: Treatment response and exercise tolerance",
	"Month 3: Rehabilitation progress and risk factor control",
	"Month 6: Long-term assessment and optimization",
	"Every 6 months: Comprehensive cardiac evaluation",
}
