// Package menu turns raw extraction responses into validated, normalized,
// tabular menu data.
package menu

import (
	"encoding/json"
	"strings"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

// ParseExtraction decodes a raw capability response into an Extraction.
// Markdown code fences around the JSON are tolerated. Placeholder extras
// (empty objects the capability emits for items without choices) are dropped
// before validation. Anything else that breaks the contract is a schema
// error.
func ParseExtraction(content string) (*domain.Extraction, error) {
	cleaned := cleanCodeblocks(content)
	if cleaned == "" {
		return nil, domain.SchemaError("empty extraction response", nil)
	}

	var extraction domain.Extraction
	if err := json.Unmarshal([]byte(cleaned), &extraction); err != nil {
		return nil, domain.SchemaError("response is not valid JSON", err)
	}

	dropPlaceholderExtras(&extraction.MenuOutput)

	if err := extraction.Validate(); err != nil {
		return nil, err
	}

	return &extraction, nil
}

// cleanCodeblocks strips markdown code fences that wrap the JSON payload.
func cleanCodeblocks(content string) string {
	cleaned := strings.TrimSpace(content)

	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx != -1 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```json")
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSuffix(cleaned, "```")
	}

	return strings.TrimSpace(cleaned)
}

// dropPlaceholderExtras removes extras with no name and no options. The
// prompt examples show "extras": [{}] for items without choices, so these
// arrive regularly and are not schema violations.
func dropPlaceholderExtras(m *domain.Menu) {
	for ci := range m.Categories {
		for ii := range m.Categories[ci].Items {
			item := &m.Categories[ci].Items[ii]
			if len(item.Extras) == 0 {
				continue
			}
			kept := item.Extras[:0]
			for _, extra := range item.Extras {
				if extra.Name == "" && len(extra.Options) == 0 {
					continue
				}
				kept = append(kept, extra)
			}
			item.Extras = kept
		}
	}
}

// CountSingleOptionExtras counts extras that offer fewer than two options.
// The prompt forbids them, but responses are tolerated as-is; callers log the
// count so prompt regressions stay visible.
func CountSingleOptionExtras(m domain.Menu) int {
	var n int
	for _, cat := range m.Categories {
		for _, item := range cat.Items {
			for _, extra := range item.Extras {
				if len(extra.Options) < 2 {
					n++
				}
			}
		}
	}
	return n
}
