package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReportTitle is used when synthesis returns no title.
const DefaultReportTitle = "Generated Maintenance Report"

// MaintenanceReport is the structured output of report synthesis.
// WorkspaceID records the source workspace; it is kept after that workspace is deleted.
type MaintenanceReport struct {
	ID               uuid.UUID
	WorkspaceID      uuid.UUID
	UserID           uuid.UUID
	Title            string
	Description      string
	EquipmentID      string
	PartNumbers      []string
	DefectCodes      []string
	CorrectiveAction string
	PartsUsed        []string
	NextServiceDate  *time.Time
	Priority         Priority
	Status           ReportStatus
	Finalized        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether the report belongs to userID.
func (r *MaintenanceReport) OwnedBy(userID uuid.UUID) bool {
	return r.UserID == userID
}

// SynthesisInput is the combined payload sent to the report-synthesis gateway.
type SynthesisInput struct {
	CombinedText string
	EquipmentIDs []string
	PartNumbers  []string
	DefectCodes  []string
	Descriptions []string
}

// BuildSynthesisInput concatenates transcriptions in item order and merges
// the extracted list fields by value.
func BuildSynthesisInput(items []InputItem) SynthesisInput {
	var (
		texts                           []string
		equipment, parts, defects, desc []string
	)
	for _, it := range items {
		if t := strings.TrimSpace(it.Transcription); t != "" {
			texts = append(texts, t)
		}
		if it.Extracted == nil {
			continue
		}
		equipment = append(equipment, it.Extracted.EquipmentIDs...)
		parts = append(parts, it.Extracted.PartNumbers...)
		defects = append(defects, it.Extracted.DefectCodes...)
		if d := strings.TrimSpace(it.Extracted.Description); d != "" {
			desc = append(desc, d)
		}
	}

	return SynthesisInput{
		CombinedText: strings.Join(texts, "\n"),
		EquipmentIDs: UniqueStrings(equipment),
		PartNumbers:  UniqueStrings(parts),
		DefectCodes:  UniqueStrings(defects),
		Descriptions: desc,
	}
}

// ReportDraft is what the synthesis gateway returns.
type ReportDraft struct {
	Title            string
	Description      string
	EquipmentID      string
	PartNumbers      []string
	DefectCodes      []string
	CorrectiveAction string
	PartsUsed        []string
	NextServiceDate  *time.Time
	Priority         Priority
}

// WithDefaults fills missing fields: priority medium, empty lists, default title.
func (d ReportDraft) WithDefaults() ReportDraft {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		d.Title = DefaultReportTitle
	}
	d.PartNumbers = UniqueStrings(d.PartNumbers)
	d.DefectCodes = UniqueStrings(d.DefectCodes)
	d.PartsUsed = UniqueStrings(d.PartsUsed)
	if p, ok := ParsePriority(string(d.Priority)); ok {
		d.Priority = p
	} else {
		d.Priority = PriorityMedium
	}
	return d
}

// NewReport builds an open, unfinalized report from a draft.
func NewReport(userID, workspaceID uuid.UUID, d ReportDraft, now time.Time) *MaintenanceReport {
	d = d.WithDefaults()
	return &MaintenanceReport{
		ID:               uuid.New(),
		WorkspaceID:      workspaceID,
		UserID:           userID,
		Title:            d.Title,
		Description:      d.Description,
		EquipmentID:      d.EquipmentID,
		PartNumbers:      d.PartNumbers,
		DefectCodes:      d.DefectCodes,
		CorrectiveAction: d.CorrectiveAction,
		PartsUsed:        d.PartsUsed,
		NextServiceDate:  d.NextServiceDate,
		Priority:         d.Priority,
		Status:           ReportStatusOpen,
		Finalized:        false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// ParseServiceDate accepts a calendar date or an RFC 3339 timestamp and
// returns the date at midnight UTC. Empty input yields nil.
func ParseServiceDate(s string) (*time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, true
		}
	}
	return nil, false
}

// ReportStats summarizes a user's reports for the dashboard.
type ReportStats struct {
	Total      int
	ByStatus   map[ReportStatus]int
	ByPriority map[Priority]int
	Recent     []MaintenanceReport
}
