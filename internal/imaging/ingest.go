// internal/imaging/ingest.go
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"math"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeError marks bytes the pipeline could not parse as an image.
// Callers treat it as "no upload happened".
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unsupported image data: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Pipeline turns an uploaded photo into a compact, self-contained JPEG
// payload: decode, bound the longest dimension, resample, re-encode as
// a data URI. It is a pure transform; writing the result anywhere is
// the caller's business.
type Pipeline struct {
	maxDimension int
	quality      int
}

func NewPipeline(maxDimension, quality int) *Pipeline {
	return &Pipeline{
		maxDimension: maxDimension,
		quality:      quality,
	}
}

// Ingest returns a "data:image/jpeg;base64," payload whose longest
// dimension never exceeds the pipeline bound, aspect ratio preserved.
// Images already within bounds keep their native size.
func (p *Pipeline) Ingest(fileBytes []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(fileBytes))
	if err != nil {
		return "", &DecodeError{Err: err}
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetWidth, targetHeight := p.targetSize(width, height)

	out := src
	if targetWidth != width || targetHeight != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: p.quality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (p *Pipeline) targetSize(width, height int) (int, int) {
	max := float64(p.maxDimension)
	w, h := float64(width), float64(height)

	if w > h {
		if w > max {
			h *= max / w
			w = max
		}
	} else {
		if h > max {
			w *= max / h
			h = max
		}
	}

	targetWidth := int(math.Round(w))
	targetHeight := int(math.Round(h))
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}
	return targetWidth, targetHeight
}
