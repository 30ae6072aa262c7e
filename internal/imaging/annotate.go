// Package imaging draws detection results onto images.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	_ "golang.org/x/image/webp"

	"github.com/heartmarshall/fieldreport-backend/internal/domain"
)

const (
	lineWidth   = 2
	jpegQuality = 92
)

var boxColor = color.RGBA{R: 255, A: 255}

// Annotated is an image with boxes and captions drawn on it. Format is the
// encoding of Data, Source the format the input was decoded from.
type Annotated struct {
	Data   []byte
	Width  int
	Height int
	Format string
	Source string
}

// Ext returns the file extension for Format.
func (a *Annotated) Ext() string {
	switch a.Format {
	case "jpeg":
		return ".jpg"
	case "gif":
		return ".gif"
	default:
		return ".png"
	}
}

// MimeType returns the content type of Data.
func (a *Annotated) MimeType() string { return "image/" + a.Format }

// Reencoded reports whether Data uses a different format than the input.
func (a *Annotated) Reencoded() bool { return a.Format != a.Source }

// Decode decodes a JPEG, PNG, GIF or WebP image. Undecodable input is a validation error.
func Decode(src []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, "", fmt.Errorf("%w: decode image: %v", domain.ErrValidation, err)
	}
	return img, format, nil
}

// Annotate draws a red rectangle per box with the caption "<Label> <n>" above
// it. JPEG and GIF input keep their format; everything else (WebP has no
// encoder) is written as PNG.
func Annotate(src []byte, boxes []domain.Box, label string) (*Annotated, error) {
	img, format, err := Decode(src)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	dc := gg.NewContextForImage(img)
	dc.SetColor(boxColor)
	dc.SetLineWidth(lineWidth)
	face, err := newFace(captionSize(h))
	if err != nil {
		return nil, err
	}
	defer face.Close()
	dc.SetFontFace(face)

	for i, box := range boxes {
		px := box.Clamp().Pixels(w, h)
		dc.DrawRectangle(float64(px.XMin), float64(px.YMin), float64(px.XMax-px.XMin), float64(px.YMax-px.YMin))
		dc.Stroke()

		caption := domain.DetectionLabel(label, i+1)
		_, th := dc.MeasureString(caption)
		y := float64(px.YMin) - 4
		if y-th < 0 {
			y = float64(px.YMin) + th + 2
		}
		dc.DrawString(caption, float64(px.XMin)+2, y)
	}

	var buf bytes.Buffer
	out := format
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dc.Image(), &jpeg.Options{Quality: jpegQuality})
	case "gif":
		err = gif.Encode(&buf, dc.Image(), nil)
	default:
		out = "png"
		err = png.Encode(&buf, dc.Image())
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", out, err)
	}

	return &Annotated{Data: buf.Bytes(), Width: w, Height: h, Format: out, Source: format}, nil
}

func captionSize(height int) float64 {
	return max(12, float64(height)/40)
}

var goRegular = sync.OnceValues(func() (*truetype.Font, error) { return truetype.Parse(goregular.TTF) })

// newFace returns a fresh Go Regular face; faces are not safe for concurrent use.
func newFace(size float64) (font.Face, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}
