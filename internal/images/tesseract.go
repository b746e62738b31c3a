package images

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// TesseractDetector shells out to the tesseract binary in OSD mode (--psm 0)
// and parses its "Rotate" and "Orientation confidence" output lines.
type TesseractDetector struct {
	binary string
}

// NewTesseractDetector creates a detector using the given tesseract binary
// path, or "tesseract" from PATH when empty.
func NewTesseractDetector(binary string) *TesseractDetector {
	if binary == "" {
		binary = "tesseract"
	}
	return &TesseractDetector{binary: binary}
}

// DetectOrientation writes the image to a temp file and runs tesseract OSD
// against it. Any failure, including tesseract being absent, surfaces as an
// error so the corrector can fall back to the original image.
func (d *TesseractDetector) DetectOrientation(ctx context.Context, img image.Image) (OSD, error) {
	dir, err := os.MkdirTemp("", "menu-osd-*")
	if err != nil {
		return OSD{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "page.png")
	f, err := os.Create(path)
	if err != nil {
		return OSD{}, fmt.Errorf("create temp image: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return OSD{}, fmt.Errorf("encode temp image: %w", err)
	}
	if err := f.Close(); err != nil {
		return OSD{}, err
	}

	cmd := exec.CommandContext(ctx, d.binary, path, "stdout", "--psm", "0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return OSD{}, fmt.Errorf("tesseract osd: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}

	return parseOSD(string(out))
}

// parseOSD extracts rotation and confidence from tesseract OSD output, e.g.
//
//	Orientation in degrees: 270
//	Rotate: 90
//	Orientation confidence: 12.74
func parseOSD(output string) (OSD, error) {
	var osd OSD
	var sawRotate bool

	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)

		switch strings.TrimSpace(key) {
		case "Rotate":
			deg, err := strconv.Atoi(value)
			if err != nil {
				return OSD{}, fmt.Errorf("parse rotate %q: %w", value, err)
			}
			osd.RotateDegrees = deg
			sawRotate = true
		case "Orientation confidence":
			conf, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return OSD{}, fmt.Errorf("parse confidence %q: %w", value, err)
			}
			osd.Confidence = conf
		}
	}

	if !sawRotate {
		return OSD{}, fmt.Errorf("no Rotate line in tesseract output")
	}
	return osd, nil
}
