package plan

import (
	"fmt"
	"io"

	"github.com/signintech/gopdf"
)

// Common TTF locations; the first one that loads wins.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// WritePDF renders the plan as a printable PDF document.
func WritePDF(w io.Writer, p Plan) error {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return fmt.Errorf("failed to load font for PDF, ensure DejaVu Sans is installed: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 18); err != nil {
		return err
	}
	pdf.Cell(nil, "Comprehensive Treatment Plan")
	pdf.Br(28)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return err
	}
	pdf.Cell(nil, fmt.Sprintf("Primary Condition: %s", p.PrimaryCondition))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Generated: %s", p.GeneratedDate))
	pdf.Br(22)

	writeSection := func(title string, lines []string) error {
		if len(lines) == 0 {
			return nil
		}
		if err := pdf.SetFont("DejaVu", "", 13); err != nil {
			return err
		}
		pdf.Cell(nil, title)
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 10); err != nil {
			return err
		}
		for _, line := range lines {
			wrapped, _ := pdf.SplitText("- "+line, 500)
			for _, l := range wrapped {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
		}
		pdf.Br(8)
		return nil
	}

	var timelineLines []string
	for _, phase := range p.Timeline {
		timelineLines = append(timelineLines, fmt.Sprintf("%s [%s]", phase.Phase, phase.Priority))
		timelineLines = append(timelineLines, phase.Activities...)
	}
	if err := writeSection("Treatment Timeline", timelineLines); err != nil {
		return err
	}
	if err := writeSection("Specialist Team", p.Specialists); err != nil {
		return err
	}
	if err := writeSection("Follow-up Schedule", p.FollowUpSchedule); err != nil {
		return err
	}

	var medLines []string
	for _, med := range p.Medications {
		medLines = append(medLines, fmt.Sprintf("%s - %s (%s)", med.Name, med.Schedule, med.Monitoring))
	}
	if err := writeSection("Medications", medLines); err != nil {
		return err
	}
	if err := writeSection("Emergency Contacts", p.EmergencyContacts); err != nil {
		return err
	}
	if err := writeSection("Important Notes", p.ImportantNotes); err != nil {
		return err
	}

	if _, err := pdf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
