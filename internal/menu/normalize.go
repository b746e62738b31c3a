package menu

import "github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"

// Normalize applies the two menu cleanup filters in order: items without a
// usable price are dropped, then categories left without items are dropped.
// The input is never mutated and surviving elements keep their relative order
// and contents. Running Normalize on its own output is a no-op.
func Normalize(m domain.Menu) domain.Menu {
	return removeEmptyCategories(removeItemsWithZeroOrNullPrice(m))
}

// removeItemsWithZeroOrNullPrice drops items whose price is missing or zero.
// A zero price means the capability could not find one; the prompt forbids
// inventing prices, so such items are unsellable.
func removeItemsWithZeroOrNullPrice(m domain.Menu) domain.Menu {
	out := domain.Menu{Categories: make([]domain.Category, 0, len(m.Categories))}
	for _, cat := range m.Categories {
		kept := make([]domain.Item, 0, len(cat.Items))
		for _, item := range cat.Items {
			if item.Price == nil || *item.Price == 0 {
				continue
			}
			kept = append(kept, item)
		}
		cat.Items = kept
		out.Categories = append(out.Categories, cat)
	}
	return out
}

// removeEmptyCategories drops categories that have no items left.
func removeEmptyCategories(m domain.Menu) domain.Menu {
	kept := make([]domain.Category, 0, len(m.Categories))
	for _, cat := range m.Categories {
		if len(cat.Items) == 0 {
			continue
		}
		kept = append(kept, cat)
	}
	return domain.Menu{Categories: kept}
}
