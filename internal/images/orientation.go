// Package images prepares page images for the extraction capability:
// orientation correction and base64 PNG encoding.
package images

import (
	"context"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"
)

// OSD is the orientation and script detection result for one image.
// RotateDegrees is the clockwise rotation that would bring the text upright.
type OSD struct {
	RotateDegrees int
	Confidence    float64
}

// Detector detects the orientation of an image.
type Detector interface {
	DetectOrientation(ctx context.Context, img image.Image) (OSD, error)
}

// Corrector fixes rotated menu photos before encoding. Detection failures
// fall back to the original image: a menu photographed sideways still
// extracts, just worse, so orientation is never allowed to kill a run.
type Corrector struct {
	detector  Detector
	threshold float64
	logger    zerolog.Logger
}

// NewCorrector creates a corrector. Rotation is applied only when detection
// confidence exceeds threshold.
func NewCorrector(detector Detector, threshold float64, logger zerolog.Logger) *Corrector {
	return &Corrector{
		detector:  detector,
		threshold: threshold,
		logger:    logger.With().Str("component", "orientation").Logger(),
	}
}

// Correct returns the image rotated upright, or the original image unchanged
// when detection fails or is not confident enough.
func (c *Corrector) Correct(ctx context.Context, img image.Image) image.Image {
	osd, err := c.detector.DetectOrientation(ctx, img)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Orientation detection failed, keeping original image")
		return img
	}

	if osd.Confidence <= c.threshold || osd.RotateDegrees == 0 {
		return img
	}

	c.logger.Debug().
		Int("rotate_degrees", osd.RotateDegrees).
		Float64("confidence", osd.Confidence).
		Msg("Correcting image orientation")

	return rotateClockwise(img, osd.RotateDegrees)
}

// rotateClockwise rotates by the given clockwise angle with canvas expansion.
// imaging's fixed-angle helpers rotate counterclockwise.
func rotateClockwise(img image.Image, degrees int) image.Image {
	switch degrees % 360 {
	case 90:
		return imaging.Rotate270(img)
	case 180:
		return imaging.Rotate180(img)
	case 270:
		return imaging.Rotate90(img)
	default:
		return imaging.Rotate(img, -float64(degrees), color.White)
	}
}
