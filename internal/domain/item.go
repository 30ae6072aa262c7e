package domain

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InputItem is one uploaded artifact plus what was derived from it.
type InputItem struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Filename         string
	OriginalFilename string
	FileKey          string
	Kind             ItemKind
	MimeType         string
	FileSize         int64
	Processed        bool
	Transcription    string
	Extracted        *ExtractedData
	UploadedAt       time.Time
	UpdatedAt        time.Time
}

// OwnedBy reports whether the item belongs to userID.
func (i *InputItem) OwnedBy(userID uuid.UUID) bool {
	return i.UserID == userID
}

// InferItemKind classifies an upload by content type. Files ending in .webm
// or .m4a are audio whatever their declared type.
func InferItemKind(contentType, filename string) ItemKind {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	ext := strings.ToLower(filepath.Ext(filename))

	switch {
	case strings.HasPrefix(ct, "audio/") || ext == ".webm" || ext == ".m4a":
		return ItemKindAudio
	case strings.HasPrefix(ct, "image/"):
		return ItemKindImage
	default:
		return ItemKindText
	}
}

// ExtractedData holds the structured fields pulled out of an item's text.
// Error is set when extraction was attempted and failed.
type ExtractedData struct {
	EquipmentIDs []string `json:"equipment_ids"`
	PartNumbers  []string `json:"part_numbers"`
	DefectCodes  []string `json:"defect_codes"`
	Priority     Priority `json:"priority,omitempty"`
	Description  string   `json:"description,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// Normalize trims list entries, drops empty and duplicate values and clears
// an unknown priority. It is applied to everything read from storage or a gateway.
func (d ExtractedData) Normalize() ExtractedData {
	d.EquipmentIDs = UniqueStrings(d.EquipmentIDs)
	d.PartNumbers = UniqueStrings(d.PartNumbers)
	d.DefectCodes = UniqueStrings(d.DefectCodes)
	d.Description = strings.TrimSpace(d.Description)
	if p, ok := ParsePriority(string(d.Priority)); ok {
		d.Priority = p
	} else {
		d.Priority = ""
	}
	return d
}

// Extracted-data field names accepted by per-field edits.
const (
	FieldEquipmentIDs = "equipment_ids"
	FieldPartNumbers  = "part_numbers"
	FieldDefectCodes  = "defect_codes"
	FieldPriority     = "priority"
	FieldDescription  = "description"
)

// ExtractedFields lists the editable extracted-data fields.
var ExtractedFields = []string{
	FieldEquipmentIDs, FieldPartNumbers, FieldDefectCodes, FieldPriority, FieldDescription,
}

// WithField returns a copy of d with a single field replaced from its text
// form. List fields take a comma-separated value.
func (d ExtractedData) WithField(field, value string) (ExtractedData, error) {
	switch field {
	case FieldEquipmentIDs:
		d.EquipmentIDs = ParseList(value)
	case FieldPartNumbers:
		d.PartNumbers = ParseList(value)
	case FieldDefectCodes:
		d.DefectCodes = ParseList(value)
	case FieldDescription:
		d.Description = strings.TrimSpace(value)
	case FieldPriority:
		if strings.TrimSpace(value) == "" {
			d.Priority = ""
			break
		}
		p, ok := ParsePriority(value)
		if !ok {
			return d, NewValidationError("priority", "must be one of low, medium, high, critical")
		}
		d.Priority = p
	default:
		return d, NewValidationError("field", "unknown extracted field")
	}
	d.Error = ""
	return d, nil
}

// ParseList splits a comma-separated value into trimmed, non-empty, unique entries.
func ParseList(s string) []string {
	return UniqueStrings(strings.Split(s, ","))
}

// JoinList renders a list as the comma-separated form accepted by ParseList.
func JoinList(values []string) string {
	return strings.Join(values, ", ")
}

// UniqueStrings trims every value and returns the non-empty ones without
// duplicates, keeping first-seen order. The result is never nil.
func UniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}
