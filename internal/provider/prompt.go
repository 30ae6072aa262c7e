package provider

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// System prompts for the two text tasks.
const (
	ExtractionSystemPrompt = "You are a maintenance expert. Extract structured data from maintenance reports."
	SynthesisSystemPrompt  = "You are a maintenance expert creating structured reports from field data."
)

// ExtractionPrompt asks for the entity fields of ExtractedData as JSON.
func ExtractionPrompt(text string) string {
	return fmt.Sprintf(`Extract maintenance-related information from the following text and return a JSON object with these fields:
- equipment_ids: array of equipment identifiers
- part_numbers: array of part numbers
- defect_codes: array of defect/issue codes
- priority: one of "low", "medium", "high", "critical"
- description: brief summary of the issue

Text: %s

Return only valid JSON, no markdown, no explanations.`, text)
}

// SynthesisPrompt asks for a complete report as JSON.
func SynthesisPrompt(in domain.SynthesisInput) string {
	var b strings.Builder
	b.WriteString("Create a comprehensive maintenance report based on the following information:\n\n")
	fmt.Fprintf(&b, "Combined Text:\n%s\n\n", in.CombinedText)
	b.WriteString("Extracted Entities:\n")
	fmt.Fprintf(&b, "- Equipment IDs: %s\n", formatList(in.EquipmentIDs))
	fmt.Fprintf(&b, "- Part Numbers: %s\n", formatList(in.PartNumbers))
	fmt.Fprintf(&b, "- Defect Codes: %s\n", formatList(in.DefectCodes))
	if len(in.Descriptions) > 0 {
		b.WriteString("- Issue summaries:\n")
		for _, d := range in.Descriptions {
			fmt.Fprintf(&b, "  * %s\n", d)
		}
	}
	b.WriteString(`
Generate a JSON report with these fields:
- title: descriptive title
- description: detailed problem description
- equipment_id: primary equipment identifier
- part_numbers: array of relevant part numbers
- defect_codes: array of defect codes
- corrective_action: recommended actions
- parts_used: array of parts that should be used
- next_service_date: suggested next service date (ISO format, YYYY-MM-DD)
- priority: "low", "medium", "high", or "critical"

Return only valid JSON, no markdown, no explanations.`)
	return b.String()
}

func formatList(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
