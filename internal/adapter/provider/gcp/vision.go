package gcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/heartmarshall/fieldreport-backend/internal/config"
	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const maxObjects = 50

// Vision is a provider.Detector backed by Vision object localization.
type Vision struct {
	client *vision.ImageAnnotatorClient
	log    *slog.Logger
}

// NewVision dials the Vision API.
func NewVision(ctx context.Context, cfg config.GCPConfig, logger *slog.Logger) (*Vision, error) {
	c, err := vision.NewImageAnnotatorClient(ctx, ClientOptions(cfg.Credentials)...)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &Vision{
		client: c,
		log:    logger.With("adapter", "gcp.vision"),
	}, nil
}

// Close releases the underlying connection.
func (v *Vision) Close() error {
	return v.client.Close()
}

// DetectEntities localizes objects and keeps those whose name contains label.
func (v *Vision) DetectEntities(ctx context.Context, image []byte, mimeType, label string) ([]domain.Box, error) {
	resp, err := v.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_OBJECT_LOCALIZATION, MaxResults: maxObjects}},
		}},
	})
	if err != nil {
		v.log.ErrorContext(ctx, "vision annotate failed", slog.String("error", err.Error()))
		return nil, domain.NewGatewayError("gcp.DetectEntities", err)
	}
	if len(resp.GetResponses()) == 0 {
		return nil, domain.NewGatewayError("gcp.DetectEntities", fmt.Errorf("empty response"))
	}

	r0 := resp.GetResponses()[0]
	if e := r0.GetError(); e != nil && e.GetMessage() != "" {
		return nil, domain.NewGatewayError("gcp.DetectEntities", fmt.Errorf("vision: %s", e.GetMessage()))
	}

	boxes := matchingBoxes(r0.GetLocalizedObjectAnnotations(), label)
	v.log.DebugContext(ctx, "vision objects",
		slog.String("label", label),
		slog.Int("objects", len(r0.GetLocalizedObjectAnnotations())),
		slog.Int("matched", len(boxes)),
	)
	return boxes, nil
}

// matchingBoxes converts annotations whose name contains label
// (case-insensitive) into boxes spanning their normalized vertices.
func matchingBoxes(objs []*visionpb.LocalizedObjectAnnotation, label string) []domain.Box {
	label = strings.ToLower(strings.TrimSpace(label))

	var out []domain.Box
	for _, o := range objs {
		if label != "" && !strings.Contains(strings.ToLower(o.GetName()), label) {
			continue
		}
		verts := o.GetBoundingPoly().GetNormalizedVertices()
		if len(verts) == 0 {
			continue
		}

		b := domain.Box{XMin: 1, YMin: 1}
		for _, p := range verts {
			x, y := float64(p.GetX()), float64(p.GetY())
			b.XMin = min(b.XMin, x)
			b.YMin = min(b.YMin, y)
			b.XMax = max(b.XMax, x)
			b.YMax = max(b.YMax, y)
		}
		out = append(out, b.Clamp())
	}
	return out
}
