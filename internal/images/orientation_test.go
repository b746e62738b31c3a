package images

import (
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	osd OSD
	err error
}

func (f *fakeDetector) DetectOrientation(ctx context.Context, img image.Image) (OSD, error) {
	return f.osd, f.err
}

// testImage is a 3x2 image with a single red marker pixel at (0, 0) so
// rotations are observable.
func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img
}

func isRed(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0x8000 && g < 0x8000 && b < 0x8000
}

func newCorrector(d Detector) *Corrector {
	return NewCorrector(d, 5, zerolog.Nop())
}

func TestCorrect_DetectorErrorKeepsOriginal(t *testing.T) {
	src := testImage()
	c := newCorrector(&fakeDetector{err: errors.New("tesseract not installed")})

	got := c.Correct(context.Background(), src)
	assert.Same(t, src, got)
}

func TestCorrect_LowConfidenceKeepsOriginal(t *testing.T) {
	src := testImage()
	c := newCorrector(&fakeDetector{osd: OSD{RotateDegrees: 90, Confidence: 5}})

	// Confidence must strictly exceed the threshold.
	got := c.Correct(context.Background(), src)
	assert.Same(t, src, got)
}

func TestCorrect_ZeroAngleKeepsOriginal(t *testing.T) {
	src := testImage()
	c := newCorrector(&fakeDetector{osd: OSD{RotateDegrees: 0, Confidence: 99}})

	got := c.Correct(context.Background(), src)
	assert.Same(t, src, got)
}

func TestCorrect_RotatesClockwise(t *testing.T) {
	tests := []struct {
		degrees    int
		wantWidth  int
		wantHeight int
		// marker position after clockwise rotation of the (0,0) pixel
		wantX int
		wantY int
	}{
		{degrees: 90, wantWidth: 2, wantHeight: 3, wantX: 1, wantY: 0},
		{degrees: 180, wantWidth: 3, wantHeight: 2, wantX: 2, wantY: 1},
		{degrees: 270, wantWidth: 2, wantHeight: 3, wantX: 0, wantY: 2},
	}

	for _, tc := range tests {
		c := newCorrector(&fakeDetector{osd: OSD{RotateDegrees: tc.degrees, Confidence: 50}})
		got := c.Correct(context.Background(), testImage())

		bounds := got.Bounds()
		assert.Equal(t, tc.wantWidth, bounds.Dx(), "width after %d degrees", tc.degrees)
		assert.Equal(t, tc.wantHeight, bounds.Dy(), "height after %d degrees", tc.degrees)
		assert.True(t, isRed(got.At(tc.wantX, tc.wantY)), "marker after %d degrees", tc.degrees)
	}
}

func TestEncodePNGBase64(t *testing.T) {
	img := testImage()

	encoded, err := EncodePNGBase64(img)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])

	again, err := EncodePNGBase64(img)
	require.NoError(t, err)
	assert.Equal(t, encoded, again, "encoding must be deterministic")
}

func TestParseOSD(t *testing.T) {
	output := `Page number: 0
Orientation in degrees: 270
Rotate: 90
Orientation confidence: 12.74
Script: Latin
Script confidence: 4.33
`
	osd, err := parseOSD(output)
	require.NoError(t, err)
	assert.Equal(t, 90, osd.RotateDegrees)
	assert.InDelta(t, 12.74, osd.Confidence, 0.001)
}

func TestParseOSD_MissingRotate(t *testing.T) {
	_, err := parseOSD("Script: Latin\n")
	assert.Error(t, err)
}
