package domain

import "fmt"

// Valid values for the top-level answer fields.
const (
	ValidMenuYes = "yes"
	ValidMenuNo  = "no"

	ComplexityEasy   = "easy"
	ComplexityOthers = "others"
)

// Extraction is the root object returned by the extraction capability. Field
// names are a wire contract shared with the prompt examples and must not
// change.
type Extraction struct {
	IsValidMenu    string `json:"is_valid_menu"`
	InputQuality   int    `json:"input_quality"`
	MenuComplexity string `json:"menu_complexity"`
	MenuOutput     Menu   `json:"menu_output"`
	Confidence     int    `json:"confidence"`
}

// Menu is the structured menu tree. An invalid or non-easy menu arrives as an
// empty object with no categories.
type Menu struct {
	Categories []Category `json:"categories"`
}

// Category groups related items (e.g. Appetizers, Entrees).
type Category struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	SortID   int    `json:"sort_id"`
	Items    []Item `json:"items"`
}

// Item is a single purchasable entry under a category. Price is in cents; a
// nil price means the capability omitted it, which later disqualifies the
// item during normalization.
type Item struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          *int64  `json:"price"`
	IsAlcohol      bool    `json:"is_alcohol"`
	IsBikeFriendly bool    `json:"is_bike_friendly"`
	SortID         int     `json:"sort_id"`
	Extras         []Extra `json:"extras,omitempty"`
}

// Extra is a choice group attached to an item (e.g. Protein Choice).
type Extra struct {
	Name           string   `json:"name"`
	MinNumOptions  int      `json:"min_num_options"`
	MaxNumOptions  int      `json:"max_num_options"`
	NumFreeOptions int      `json:"num_free_options"`
	Options        []Option `json:"options"`
}

// Option is one selectable choice inside an extra. Price is the surcharge in
// cents on top of the item price.
type Option struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	SortID      int    `json:"sort_id"`
}

// Validate checks the top-level answers and the menu tree. Violations are
// reported as schema errors since they indicate the capability broke the
// response contract.
func (e *Extraction) Validate() error {
	if e.IsValidMenu != ValidMenuYes && e.IsValidMenu != ValidMenuNo {
		return SchemaError(fmt.Sprintf("is_valid_menu must be %q or %q, got %q", ValidMenuYes, ValidMenuNo, e.IsValidMenu), nil)
	}
	if e.InputQuality < 0 || e.InputQuality > 100 {
		return SchemaError(fmt.Sprintf("input_quality out of range: %d", e.InputQuality), nil)
	}
	if e.Confidence < 0 || e.Confidence > 100 {
		return SchemaError(fmt.Sprintf("confidence out of range: %d", e.Confidence), nil)
	}
	if e.MenuComplexity != ComplexityEasy && e.MenuComplexity != ComplexityOthers {
		return SchemaError(fmt.Sprintf("menu_complexity must be %q or %q, got %q", ComplexityEasy, ComplexityOthers, e.MenuComplexity), nil)
	}
	return e.MenuOutput.Validate()
}

// Validate checks structural invariants of the menu tree.
func (m *Menu) Validate() error {
	catIDs := make(map[int]bool, len(m.Categories))
	for _, cat := range m.Categories {
		if cat.Name == "" {
			return SchemaError("category with empty name", nil)
		}
		if catIDs[cat.SortID] {
			return SchemaError(fmt.Sprintf("duplicate category sort_id %d", cat.SortID), nil)
		}
		catIDs[cat.SortID] = true

		itemIDs := make(map[int]bool, len(cat.Items))
		for _, item := range cat.Items {
			if item.Name == "" {
				return SchemaError(fmt.Sprintf("item with empty name in category %q", cat.Name), nil)
			}
			if itemIDs[item.SortID] {
				return SchemaError(fmt.Sprintf("duplicate item sort_id %d in category %q", item.SortID, cat.Name), nil)
			}
			itemIDs[item.SortID] = true
			if item.Price != nil && *item.Price < 0 {
				return SchemaError(fmt.Sprintf("negative price for item %q", item.Name), nil)
			}

			for _, extra := range item.Extras {
				if err := extra.validate(item.Name); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (x *Extra) validate(itemName string) error {
	if x.Name == "" {
		return SchemaError(fmt.Sprintf("extra with empty name on item %q", itemName), nil)
	}
	if x.MinNumOptions < 0 || x.MaxNumOptions < 0 || x.NumFreeOptions < 0 {
		return SchemaError(fmt.Sprintf("negative option counts on extra %q", x.Name), nil)
	}
	if x.MinNumOptions > x.MaxNumOptions {
		return SchemaError(fmt.Sprintf("min_num_options %d exceeds max_num_options %d on extra %q", x.MinNumOptions, x.MaxNumOptions, x.Name), nil)
	}
	optIDs := make(map[int]bool, len(x.Options))
	for _, opt := range x.Options {
		if opt.Name == "" {
			return SchemaError(fmt.Sprintf("option with empty name on extra %q", x.Name), nil)
		}
		if opt.Price < 0 {
			return SchemaError(fmt.Sprintf("negative price for option %q", opt.Name), nil)
		}
		if optIDs[opt.SortID] {
			return SchemaError(fmt.Sprintf("duplicate option sort_id %d on extra %q", opt.SortID, x.Name), nil)
		}
		optIDs[opt.SortID] = true
	}
	return nil
}

// IsEmpty reports whether the menu carries no categories.
func (m *Menu) IsEmpty() bool {
	return len(m.Categories) == 0
}
