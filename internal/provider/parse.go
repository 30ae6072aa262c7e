package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

// ExtractJSON returns the outermost JSON object in s (first "{" to last "}").
// Models often wrap JSON in prose or markdown fences.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// stringList accepts either a JSON array of strings or a single
// comma-separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	var arr []any
	if err := json.Unmarshal(b, &arr); err == nil {
		out := make([]string, 0, len(arr))
		for _, v := range arr {
			if v == nil {
				continue
			}
			out = append(out, fmt.Sprint(v))
		}
		*l = out
		return nil
	}
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected array or string: %w", err)
	}
	if s != nil {
		*l = domain.ParseList(*s)
	}
	return nil
}

type extractionPayload struct {
	EquipmentIDs stringList `json:"equipment_ids"`
	PartNumbers  stringList `json:"part_numbers"`
	DefectCodes  stringList `json:"defect_codes"`
	Priority     string     `json:"priority"`
	Description  string     `json:"description"`
}

// ParseExtraction decodes a model reply into normalized ExtractedData.
func ParseExtraction(reply string) (domain.ExtractedData, error) {
	raw, err := ExtractJSON(reply)
	if err != nil {
		return domain.ExtractedData{}, err
	}

	var p extractionPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.ExtractedData{}, fmt.Errorf("decode extraction: %w", err)
	}

	return domain.ExtractedData{
		EquipmentIDs: p.EquipmentIDs,
		PartNumbers:  p.PartNumbers,
		DefectCodes:  p.DefectCodes,
		Priority:     domain.Priority(p.Priority),
		Description:  p.Description,
	}.Normalize(), nil
}

type reportPayload struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	EquipmentID      any        `json:"equipment_id"`
	PartNumbers      stringList `json:"part_numbers"`
	DefectCodes      stringList `json:"defect_codes"`
	CorrectiveAction any        `json:"corrective_action"`
	PartsUsed        stringList `json:"parts_used"`
	NextServiceDate  string     `json:"next_service_date"`
	Priority         string     `json:"priority"`
}

// ParseReport decodes a model reply into a ReportDraft with defaults applied.
// An unparseable next_service_date is dropped rather than failing the report.
func ParseReport(reply string) (domain.ReportDraft, error) {
	raw, err := ExtractJSON(reply)
	if err != nil {
		return domain.ReportDraft{}, err
	}

	var p reportPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.ReportDraft{}, fmt.Errorf("decode report: %w", err)
	}

	next, _ := domain.ParseServiceDate(p.NextServiceDate)

	return domain.ReportDraft{
		Title:            p.Title,
		Description:      strings.TrimSpace(p.Description),
		EquipmentID:      flatten(p.EquipmentID),
		PartNumbers:      p.PartNumbers,
		DefectCodes:      p.DefectCodes,
		CorrectiveAction: flatten(p.CorrectiveAction),
		PartsUsed:        p.PartsUsed,
		NextServiceDate:  next,
		Priority:         domain.Priority(p.Priority),
	}.WithDefaults(), nil
}

// flatten renders a string or a list of strings as one string.
func flatten(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if e != nil {
				parts = append(parts, fmt.Sprint(e))
			}
		}
		return strings.Join(domain.UniqueStrings(parts), "; ")
	default:
		return fmt.Sprint(t)
	}
}
