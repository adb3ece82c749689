package plan

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishiRohanKalapala/medica/internal/medica/analyze"
)

var fixedDate = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestBuildRequiresDiagnosis(t *testing.T) {
	_, err := Build(nil, nil, fixedDate)
	assert.Error(t, err)
}

func TestBuildTemplateSelection(t *testing.T) {
	tests := []struct {
		name            string
		condition       string
		firstPhase      string
		firstSpecialist string
	}{
		{
			name:            "lung_condition",
			condition:       "Non-Small Cell Lung Cancer (NSCLC)",
			firstPhase:      "Immediate Assessment (0-2 weeks)",
			firstSpecialist: "Medical Oncologist - Primary treatment coordination and chemotherapy management",
		},
		{
			name:            "cancer_keyword_uses_lung_template",
			condition:       "Thyroid Cancer",
			firstPhase:      "Immediate Assessment (0-2 weeks)",
			firstSpecialist: "Medical Oncologist - Primary treatment coordination and chemotherapy management",
		},
		{
			name:            "thyroid_condition",
			condition:       "Hypothyroidism",
			firstPhase:      "Diagnostic Workup (0-2 weeks)",
			firstSpecialist: "Endocrinologist - Primary thyroid disorder management and hormone optimization",
		},
		{
			name:            "heart_condition",
			condition:       "Heart Failure",
			firstPhase:      "Acute Stabilization (0-1 week)",
			firstSpecialist: "Interventional Cardiologist - Primary cardiac care and procedures",
		},
		{
			name:            "cardiac_keyword",
			condition:       "Cardiac Arrhythmia",
			firstPhase:      "Acute Stabilization (0-1 week)",
			firstSpecialist: "Interventional Cardiologist - Primary cardiac care and procedures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build([]analyze.Diagnosis{{Condition: tt.condition, Probability: 0.9}}, nil, fixedDate)
			require.NoError(t, err)

			assert.Equal(t, tt.condition, p.PrimaryCondition)
			assert.Equal(t, "2024-03-15", p.GeneratedDate)
			require.NotEmpty(t, p.Timeline)
			assert.Equal(t, tt.firstPhase, p.Timeline[0].Phase)
			require.NotEmpty(t, p.Specialists)
			assert.Equal(t, tt.firstSpecialist, p.Specialists[0])
			assert.NotEmpty(t, p.FollowUpSchedule)
		})
	}
}

func TestBuildUnknownConditionGetsBasePlan(t *testing.T) {
	p, err := Build([]analyze.Diagnosis{{Condition: "Unspecified Malaise"}}, nil, fixedDate)
	require.NoError(t, err)

	assert.Empty(t, p.Timeline)
	assert.Empty(t, p.Specialists)
	assert.Len(t, p.EmergencyContacts, 4)
	assert.Len(t, p.ImportantNotes, 4)
}

func TestBuildMedicationRows(t *testing.T) {
	meds := []analyze.Medication{
		{Name: "Synthroid (Levothyroxine)", Dosage: "100mcg daily", Frequency: "Take on empty stomach, 30-60 minutes before breakfast"},
	}

	p, err := Build([]analyze.Diagnosis{{Condition: "Hypothyroidism"}}, meds, fixedDate)
	require.NoError(t, err)

	require.Len(t, p.Medications, 1)
	assert.Equal(t, "Synthroid (Levothyroxine)", p.Medications[0].Name)
	assert.Equal(t, "Take on empty stomach, 30-60 minutes before breakfast", p.Medications[0].Schedule)
	assert.Equal(t, "Regular blood tests and clinical assessment required", p.Medications[0].Monitoring)
}

func TestBuildUsesTopDiagnosisOnly(t *testing.T) {
	diagnoses := []analyze.Diagnosis{
		{Condition: "Hypothyroidism", Probability: 0.8},
		{Condition: "Heart Failure", Probability: 0.6},
	}

	p, err := Build(diagnoses, nil, fixedDate)
	require.NoError(t, err)
	assert.Equal(t, "Hypothyroidism", p.PrimaryCondition)
	assert.Equal(t, "Diagnostic Workup (0-2 weeks)", p.Timeline[0].Phase)
}

func TestWriteText(t *testing.T) {
	p, err := Build(
		[]analyze.Diagnosis{{Condition: "Heart Failure", Probability: 0.9}},
		[]analyze.Medication{{Name: "Metoprolol (Metoprolol)", Dosage: "50mg twice daily", Frequency: "Take with food"}},
		fixedDate,
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, p))
	out := buf.String()

	assert.Contains(t, out, "COMPREHENSIVE TREATMENT PLAN")
	assert.Contains(t, out, "Primary Condition: Heart Failure")
	assert.Contains(t, out, "Generated: 2024-03-15")
	assert.Contains(t, out, "TREATMENT TIMELINE")
	assert.Contains(t, out, "Acute Stabilization (0-1 week) [urgent]")
	assert.Contains(t, out, "SPECIALIST TEAM")
	assert.Contains(t, out, "FOLLOW-UP SCHEDULE")
	assert.Contains(t, out, "MEDICATIONS")
	assert.Contains(t, out, "Schedule: Take with food")
	assert.Contains(t, out, "EMERGENCY CONTACTS")
	assert.Contains(t, out, "IMPORTANT NOTES")
}

func TestWritePDFProducesDocument(t *testing.T) {
	p, err := Build([]analyze.Diagnosis{{Condition: "Hypothyroidism"}}, nil, fixedDate)
	require.NoError(t, err)

	var buf bytes.Buffer
	if err := WritePDF(&buf, p); err != nil {
		// Font files are environment-dependent; missing fonts are the only
		// acceptable failure here.
		t.Skipf("PDF fonts unavailable: %v", err)
	}
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
