package menu

import (
	"strconv"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// Row type labels in the flat report.
const (
	RowTypeCategory = "Category"
	RowTypeItem     = "Item"
	RowTypeExtra    = "Extra"
	RowTypeOption   = "Option"
)

// FlatRow is one line of the tabular menu report. Fields that do not apply
// to a row type are empty strings, matching the report contract.
type FlatRow struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	NumMinOptions  string `json:"num_min_options"`
	NumMaxOptions  string `json:"num_max_options"`
	NumFreeOptions string `json:"num_free_options"`
}

// Columns returns the fixed report header.
func Columns() []string {
	return []string{"type", "name", "description", "price", "num_min_options", "num_max_options", "num_free_options"}
}

// Record returns the row as CSV fields in column order.
func (r FlatRow) Record() []string {
	return []string{r.Type, r.Name, r.Description, r.Price, r.NumMinOptions, r.NumMaxOptions, r.NumFreeOptions}
}

// Flatten walks the menu depth-first (category, then its items, then each
// item's extras and their options) and emits one row per node. An empty menu
// yields no rows.
func Flatten(m domain.Menu) []FlatRow {
	var rows []FlatRow

	for _, cat := range m.Categories {
		rows = append(rows, FlatRow{
			Type: RowTypeCategory,
			Name: cat.Name,
		})

		for _, item := range cat.Items {
			var price int64
			if item.Price != nil {
				price = *item.Price
			}
			rows = append(rows, FlatRow{
				Type:        RowTypeItem,
				Name:        item.Name,
				Description: item.Description,
				Price:       strconv.FormatInt(price, 10),
			})

			for _, extra := range item.Extras {
				rows = append(rows, FlatRow{
					Type:           RowTypeExtra,
					Name:           extra.Name,
					NumMinOptions:  strconv.Itoa(extra.MinNumOptions),
					NumMaxOptions:  strconv.Itoa(extra.MaxNumOptions),
					NumFreeOptions: strconv.Itoa(extra.NumFreeOptions),
				})

				for _, opt := range extra.Options {
					rows = append(rows, FlatRow{
						Type:        RowTypeOption,
						Name:        opt.Name,
						Description: opt.Description,
						Price:       strconv.FormatInt(opt.Price, 10),
					})
				}
			}
		}
	}

	return rows
}
