package plan

import (
	"fmt"
	"io"
	"strings"
)

// WriteText renders the plan as the plain-text document handed to patients.
func WriteText(w io.Writer, p Plan) error {
	var b strings.Builder

	b.WriteString("COMPREHENSIVE TREATMENT PLAN\n")
	b.WriteString("============================\n\n")
	fmt.Fprintf(&b, "Primary Condition: %s\n", p.PrimaryCondition)
	fmt.Fprintf(&b, "Generated: %s\n\n", p.GeneratedDate)

	if len(p.Timeline) > 0 {
		b.WriteString("TREATMENT TIMELINE\n")
		b.WriteString("------------------\n")
		for _, phase := range p.Timeline {
			fmt.Fprintf(&b, "%s [%s]\n", phase.Phase, phase.Priority)
			for _, act := range phase.Activities {
				fmt.Fprintf(&b, "  - %s\n", act)
			}
			b.WriteString("\n")
		}
	}

	if len(p.Specialists) > 0 {
		b.WriteString("SPECIALIST TEAM\n")
		b.WriteString("---------------\n")
		for _, s := range p.Specialists {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}

	if len(p.FollowUpSchedule) > 0 {
		b.WriteString("FOLLOW-UP SCHEDULE\n")
		b.WriteString("------------------\n")
		for _, f := range p.FollowUpSchedule {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if len(p.Medications) > 0 {
		b.WriteString("MEDICATIONS\n")
		b.WriteString("-----------\n")
		for _, med := range p.Medications {
			fmt.Fprintf(&b, "- %s\n  Schedule: %s\n  Monitoring: %s\n", med.Name, med.Schedule, med.Monitoring)
		}
		b.WriteString("\n")
	}

	b.WriteString("EMERGENCY CONTACTS\n")
	b.WriteString("------------------\n")
	for _, c := range p.EmergencyContacts {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	b.WriteString("\n")

	b.WriteString("IMPORTANT NOTES\n")
	b.WriteString("---------------\n")
	for _, n := range p.ImportantNotes {
		fmt.Fprintf(&b, "- %s\n", n)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write treatment plan: %w", err)
	}
	return nil
}
