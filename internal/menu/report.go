package menu

import (
	"encoding/csv"
	"io"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// WriteCSV writes the flat report to w. The header is always written, so an
// empty menu produces a header-only file.
func WriteCSV(w io.Writer, rows []FlatRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns()); err != nil {
		return domain.IOError("failed to write CSV header", err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			return domain.IOError("failed to write CSV row", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.IOError("failed to flush CSV", err)
	}
	return nil
}
