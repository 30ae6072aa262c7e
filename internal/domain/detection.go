package domain

import (
	"math"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Box is a bounding box normalized to the image size (0..1).
type Box struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// Clamp limits every edge to 0..1 and orders min before max.
func (b Box) Clamp() Box {
	c := func(v float64) float64 { return math.Min(1, math.Max(0, v)) }
	b = Box{XMin: c(b.XMin), YMin: c(b.YMin), XMax: c(b.XMax), YMax: c(b.YMax)}
	if b.XMin > b.XMax {
		b.XMin, b.XMax = b.XMax, b.XMin
	}
	if b.YMin > b.YMax {
		b.YMin, b.YMax = b.YMax, b.YMin
	}
	return b
}

// Pixels converts the box to pixel coordinates for a w×h image.
func (b Box) Pixels(w, h int) PixelBox {
	return PixelBox{
		XMin: int(b.XMin * float64(w)),
		YMin: int(b.YMin * float64(h)),
		XMax: int(b.XMax * float64(w)),
		YMax: int(b.YMax * float64(h)),
	}
}

// PixelBox is a bounding box in image pixels.
type PixelBox struct {
	XMin int `json:"x_min"`
	YMin int `json:"y_min"`
	XMax int `json:"x_max"`
	YMax int `json:"y_max"`
}

// Detection is one detected entity, numbered from 1.
type Detection struct {
	Index int
	Box   Box
	Pixel PixelBox
}

// DetectionResult is returned by a detection preview.
// PreviewKey is empty when nothing was detected.
type DetectionResult struct {
	ItemID      uuid.UUID
	Label       string
	OriginalKey string
	PreviewKey  string
	Detections  []Detection
}

// Count returns the number of detections.
func (r *DetectionResult) Count() int { return len(r.Detections) }

// DetectionPreview records an annotated copy awaiting accept or reject.
type DetectionPreview struct {
	ItemID     uuid.UUID
	PreviewKey string
	Label      string
	BoxCount   int
	CreatedAt  time.Time
}

// PreviewKeyFor returns the storage key of the annotated copy of key:
// "images/abc.jpg" becomes "images/abc_preview.jpg". A non-empty ext
// replaces the original extension.
func PreviewKeyFor(key, ext string) string {
	old := path.Ext(key)
	if ext == "" {
		ext = old
	}
	return strings.TrimSuffix(key, old) + "_preview" + ext
}

// ReplaceExt swaps the extension of name for ext.
func ReplaceExt(name, ext string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + ext
}

// DetectionLabel formats the caption drawn above the n-th box ("Valve 2").
func DetectionLabel(entity string, n int) string {
	entity = strings.TrimSpace(entity)
	if r, size := utf8.DecodeRuneInString(entity); r != utf8.RuneError {
		entity = string(unicode.ToUpper(r)) + entity[size:]
	}
	return entity + " " + strconv.Itoa(n)
}
