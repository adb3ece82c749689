package analyze

import (
	"fmt"
	"math"
	"strings"
)

// insufficientDataMarker opens the advice when no diagnosis was produced.
const insufficientDataMarker = "**Insufficient Data for Definitive Analysis**"

const disclaimerBlock = "\n\n**🚨 IMPORTANT MEDICAL DISCLAIMER:**\n" +
	"This AI analysis is for educational purposes and clinical decision support only. " +
	"Always consult qualified healthcare professionals for diagnosis, treatment, and medical decisions. " +
	"Seek immediate medical attention for severe or worsening symptoms."

// composeAdvice builds the multi-section advice text: header, primary
// diagnosis callout with rounded percent confidence, treatments and
// precautions looked up by exact condition name, keyword-bucketed diagnostic
// tests, top medication detail, specialist referrals and a timeline, all
// closed by the fixed disclaimer. With no diagnoses the diagnosis-dependent
// sections are replaced by a request for more information.
func (a *Analyzer) composeAdvice(diagnoses []Diagnosis, medications []Medication) string {
	var b strings.Builder

	if len(diagnoses) == 0 {
		b.WriteString(insufficientDataMarker + "\n\n")
		b.WriteString("Please provide more specific symptom details for accurate assessment. Consider describing:\n")
		b.WriteString("• Duration and onset of symptoms\n")
		b.WriteString("• Severity and impact on daily activities\n")
		b.WriteString("• Associated factors or triggers\n")
		b.WriteString("• Family history of medical conditions\n")
		b.WriteString(disclaimerBlock)
		return b.String()
	}

	top := diagnoses[0]
	percent := int(math.Round(top.Probability * 100))

	b.WriteString("🔬 **Advanced Clinical Analysis**\n\n")
	fmt.Fprintf(&b, "Primary Consideration: **%s** (%d%% confidence)\n\n", top.Condition, percent)

	// Exact case-insensitive name lookup: keyword fallback conditions like
	// "Possible Lung Pathology" have no catalog entry, so these sections
	// simply drop out for them.
	if treatments := a.cat.Treatments(top.Condition); len(treatments) > 0 {
		b.WriteString("**🎯 Recommended Treatments:**\n")
		writeBullets(&b, treatments)
		b.WriteString("\n")
	}

	if tests := a.cat.DiagnosticTests(top.Condition); len(tests) > 0 {
		if len(tests) > 5 {
			tests = tests[:5]
		}
		b.WriteString("**🧪 Essential Diagnostic Tests:**\n")
		writeBullets(&b, tests)
		b.WriteString("\n")
	}

	if precautions := a.cat.Precautions(top.Condition); len(precautions) > 0 {
		b.WriteString("**⚠️ Critical Precautions:**\n")
		writeBullets(&b, precautions)
		b.WriteString("\n")
	}

	if len(medications) > 0 {
		b.WriteString("**💊 Pharmacological Management:**\n")
		fmt.Fprintf(&b, "Primary medication: %s\n", medications[0].Name)
		fmt.Fprintf(&b, "Dosing: %s\n", medications[0].Dosage)
		fmt.Fprintf(&b, "Administration: %s\n\n", medications[0].Description)
	}

	b.WriteString("**👨‍⚕️ Specialist Consultations:**\n")
	cond := strings.ToLower(top.Condition)
	switch {
	case strings.Contains(cond, "lung") || strings.Contains(cond, "cancer"):
		b.WriteString("• Oncologist - for cancer staging and treatment planning\n")
		b.WriteString("• Pulmonologist - for respiratory function assessment\n")
		b.WriteString("• Thoracic surgeon - if surgical intervention considered\n")
	case strings.Contains(cond, "thyroid"):
		b.WriteString("• Endocrinologist - for hormone optimization\n")
		b.WriteString("• Nuclear medicine physician - for advanced imaging\n")
		b.WriteString("• Endocrine surgeon - if surgical intervention needed\n")
	case strings.Contains(cond, "heart"):
		b.WriteString("• Cardiologist - for comprehensive cardiac evaluation\n")
		b.WriteString("• Electrophysiologist - if rhythm abnormalities present\n")
		b.WriteString("• Cardiac surgeon - if structural intervention required\n")
	}

	b.WriteString("\n**⏰ Timeline Recommendations:**\n")
	b.WriteString("• Urgent evaluation (within 24-48 hours) if symptoms are severe\n")
	b.WriteString("• Follow-up within 1-2 weeks for test results review\n")
	b.WriteString("• Regular monitoring every 3-6 months based on condition severity\n")

	b.WriteString(disclaimerBlock)
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		fmt.Fprintf(b, "• %s\n", item)
	}
}
