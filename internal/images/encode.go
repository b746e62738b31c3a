package images

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// EncodePNGBase64 encodes an image as a lossless PNG and returns the standard
// base64 encoding of the bytes. The same image always yields the same string.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", domain.IOError("failed to encode PNG", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
