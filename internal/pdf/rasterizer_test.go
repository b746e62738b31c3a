package pdf

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// minimalPDF builds a one-page empty PDF with a correct xref table.
func minimalPDF(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	offsets := make([]int, 0, 4)

	write := func(s string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(s)
	}

	buf.WriteString("%PDF-1.4\n")
	write("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	write("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	write("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 100] >>\nendobj\n")

	xrefStart := buf.Len()
	buf.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefStart)

	return buf.Bytes()
}

func TestRasterize_SinglePage(t *testing.T) {
	r := NewRasterizer(144)

	images, err := r.Rasterize(context.Background(), minimalPDF(t))
	require.NoError(t, err)
	require.Len(t, images, 1)

	// 200x100pt page at 144 DPI is a 2x scale over the 72 DPI baseline.
	bounds := images[0].Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
}

func TestRasterize_InvalidBytes(t *testing.T) {
	r := NewRasterizer(144)

	_, err := r.Rasterize(context.Background(), []byte("this is not a pdf"))
	require.Error(t, err)
	assert.True(t, domain.IsErrorType(err, domain.ErrorTypePDFDecode))
}

func TestRasterize_EmptyInput(t *testing.T) {
	r := NewRasterizer(144)

	_, err := r.Rasterize(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, domain.IsErrorType(err, domain.ErrorTypePDFDecode))
}

func TestRasterize_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRasterizer(144).Rasterize(ctx, minimalPDF(t))
	assert.ErrorIs(t, err, context.Canceled)
}
