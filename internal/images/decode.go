package images

import (
	"bytes"
	"image"

	// Register decoders for the formats menu URLs serve.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// Decode decodes fetched image bytes into an image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.IOError("failed to decode image", err)
	}
	return img, nil
}
