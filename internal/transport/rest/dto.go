package rest

import (
	"time"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
	"github.com/heartmarshall/fieldreport-backend/internal/service/auth"
	"github.com/heartmarshall/fieldreport-backend/internal/service/item"
)

const dateLayout = "2006-01-02"

type authResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn.Seconds()),
		User: userResponse{
			ID:       result.User.ID.String(),
			Username: result.User.Username,
			Email:    result.User.Email,
		},
	}
}

type itemResponse struct {
	ID               string                `json:"id"`
	Filename         string                `json:"filename"`
	OriginalFilename string                `json:"original_filename"`
	Kind             string                `json:"kind"`
	MimeType         string                `json:"mime_type"`
	FileSize         int64                 `json:"file_size"`
	Processed        bool                  `json:"processed"`
	Transcription    string                `json:"transcription,omitempty"`
	Extracted        *domain.ExtractedData `json:"extracted,omitempty"`
	UploadedAt       time.Time             `json:"uploaded_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func toItemResponse(it *domain.InputItem) itemResponse {
	return itemResponse{
		ID:               it.ID.String(),
		Filename:         it.Filename,
		OriginalFilename: it.OriginalFilename,
		Kind:             it.Kind.String(),
		MimeType:         it.MimeType,
		FileSize:         it.FileSize,
		Processed:        it.Processed,
		Transcription:    it.Transcription,
		Extracted:        it.Extracted,
		UploadedAt:       it.UploadedAt,
		UpdatedAt:        it.UpdatedAt,
	}
}

func toItemResponses(items []domain.InputItem) []itemResponse {
	out := make([]itemResponse, len(items))
	for i := range items {
		out[i] = toItemResponse(&items[i])
	}
	return out
}

type workspaceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	ItemIDs   []string  `json:"item_ids"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWorkspaceResponse(ws *domain.Workspace) workspaceResponse {
	ids := make([]string, len(ws.ItemIDs))
	for i, id := range ws.ItemIDs {
		ids[i] = id.String()
	}
	count := ws.ItemCount
	if count == 0 {
		count = len(ids)
	}
	return workspaceResponse{
		ID:        ws.ID.String(),
		Name:      ws.Name,
		Status:    ws.Status.String(),
		ItemIDs:   ids,
		ItemCount: count,
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}
}

type uploadResponse struct {
	Workspace workspaceResponse `json:"workspace"`
	Items     []itemResponse    `json:"items"`
}

func toUploadResponse(res *item.UploadResult) uploadResponse {
	return uploadResponse{
		Workspace: toWorkspaceResponse(res.Workspace),
		Items:     toItemResponses(res.Items),
	}
}

type reportResponse struct {
	ID               string    `json:"id"`
	WorkspaceID      string    `json:"workspace_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	EquipmentID      string    `json:"equipment_id"`
	PartNumbers      []string  `json:"part_numbers"`
	DefectCodes      []string  `json:"defect_codes"`
	CorrectiveAction string    `json:"corrective_action"`
	PartsUsed        []string  `json:"parts_used"`
	NextServiceDate  *string   `json:"next_service_date"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	Finalized        bool      `json:"finalized"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toReportResponse(r *domain.MaintenanceReport) reportResponse {
	var next *string
	if r.NextServiceDate != nil {
		s := r.NextServiceDate.Format(dateLayout)
		next = &s
	}
	return reportResponse{
		ID:               r.ID.String(),
		WorkspaceID:      r.WorkspaceID.String(),
		Title:            r.Title,
		Description:      r.Description,
		EquipmentID:      r.EquipmentID,
		PartNumbers:      nonNil(r.PartNumbers),
		DefectCodes:      nonNil(r.DefectCodes),
		CorrectiveAction: r.CorrectiveAction,
		PartsUsed:        nonNil(r.PartsUsed),
		NextServiceDate:  next,
		Priority:         r.Priority.String(),
		Status:           r.Status.String(),
		Finalized:        r.Finalized,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toReportResponses(reports []domain.MaintenanceReport) []reportResponse {
	out := make([]reportResponse, len(reports))
	for i := range reports {
		out[i] = toReportResponse(&reports[i])
	}
	return out
}

type statsResponse struct {
	Total      int              `json:"total"`
	ByStatus   map[string]int   `json:"by_status"`
	ByPriority map[string]int   `json:"by_priority"`
	Recent     []reportResponse `json:"recent"`
}

func toStatsResponse(s *domain.ReportStats) statsResponse {
	resp := statsResponse{
		Total:      s.Total,
		ByStatus:   make(map[string]int, len(s.ByStatus)),
		ByPriority: make(map[string]int, len(s.ByPriority)),
		Recent:     toReportResponses(s.Recent),
	}
	for k, v := range s.ByStatus {
		resp.ByStatus[k.String()] = v
	}
	for k, v := range s.ByPriority {
		resp.ByPriority[k.String()] = v
	}
	return resp
}

type annotationResponse struct {
	ID          string             `json:"id"`
	ReportID    string             `json:"report_id"`
	InputItemID string             `json:"input_item_id"`
	Type        string             `json:"type"`
	Coordinates domain.Coordinates `json:"coordinates"`
	Note        string             `json:"note,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

func toAnnotationResponse(a *domain.ReportAnnotation) annotationResponse {
	return annotationResponse{
		ID:          a.ID.String(),
		ReportID:    a.ReportID.String(),
		InputItemID: a.InputItemID.String(),
		Type:        a.Type.String(),
		Coordinates: a.Coordinates,
		Note:        a.Note,
		CreatedAt:   a.CreatedAt,
	}
}

type detectionEntry struct {
	Index int             `json:"index"`
	Label string          `json:"label"`
	Box   domain.Box      `json:"box"`
	Pixel domain.PixelBox `json:"pixel_box"`
}

type detectionResponse struct {
	ItemID      string           `json:"item_id"`
	Label       string           `json:"label"`
	Count       int              `json:"count"`
	OriginalKey string           `json:"original_key"`
	PreviewKey  string           `json:"preview_key,omitempty"`
	Detections  []detectionEntry `json:"detections"`
}

func toDetectionResponse(res *domain.DetectionResult) detectionResponse {
	entries := make([]detectionEntry, len(res.Detections))
	for i, d := range res.Detections {
		entries[i] = detectionEntry{
			Index: d.Index,
			Label: domain.DetectionLabel(res.Label, d.Index),
			Box:   d.Box,
			Pixel: d.Pixel,
		}
	}
	return detectionResponse{
		ItemID:      res.ItemID.String(),
		Label:       res.Label,
		Count:       res.Count(),
		OriginalKey: res.OriginalKey,
		PreviewKey:  res.PreviewKey,
		Detections:  entries,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
