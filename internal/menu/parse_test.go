package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

const sampleResponse = `{
  "is_valid_menu": "yes",
  "input_quality": 80,
  "menu_complexity": "others",
  "confidence": 90,
  "menu_output": {
    "categories": [
      {
        "name": "Appetizer",
        "subtitle": "",
        "sort_id": 0,
        "items": [
          {
            "name": "Salad",
            "description": "your choice of chicken or pork",
            "price": 799,
            "is_alcohol": false,
            "is_bike_friendly": true,
            "sort_id": 0,
            "extras": [
              {
                "name": "Protein Choice",
                "min_num_options": 1,
                "max_num_options": 1,
                "num_free_options": 0,
                "options": [
                  {"name": "Chicken", "description": "chicken tender", "price": 0, "sort_id": 0},
                  {"name": "Pork", "description": "Pork belly", "price": 0, "sort_id": 1}
                ]
              }
            ]
          },
          {
            "name": "Soup",
            "description": "Warm soup",
            "price": 499,
            "is_alcohol": false,
            "is_bike_friendly": true,
            "sort_id": 1,
            "extras": [{}]
          }
        ]
      }
    ]
  }
}`

func TestParseExtraction_ValidResponse(t *testing.T) {
	e, err := ParseExtraction(sampleResponse)
	require.NoError(t, err)

	assert.Equal(t, "yes", e.IsValidMenu)
	assert.Equal(t, 80, e.InputQuality)
	assert.Equal(t, "others", e.MenuComplexity)
	assert.Equal(t, 90, e.Confidence)

	require.Len(t, e.MenuOutput.Categories, 1)
	cat := e.MenuOutput.Categories[0]
	require.Len(t, cat.Items, 2)

	salad := cat.Items[0]
	require.NotNil(t, salad.Price)
	assert.Equal(t, int64(799), *salad.Price)
	require.Len(t, salad.Extras, 1)
	assert.Len(t, salad.Extras[0].Options, 2)

	// The "extras": [{}] placeholder is dropped at parse time.
	assert.Empty(t, cat.Items[1].Extras)
}

func TestParseExtraction_CodeFences(t *testing.T) {
	fenced := "```json\n" + sampleResponse + "\n```"

	e, err := ParseExtraction(fenced)
	require.NoError(t, err)
	assert.Equal(t, "yes", e.IsValidMenu)

	bare := "```\n" + sampleResponse + "\n```"
	e, err = ParseExtraction(bare)
	require.NoError(t, err)
	assert.Equal(t, "yes", e.IsValidMenu)
}

func TestParseExtraction_InvalidMenuResponse(t *testing.T) {
	e, err := ParseExtraction(`{"is_valid_menu":"no","input_quality":0,"menu_complexity":"others","menu_output":{},"confidence":0}`)
	require.NoError(t, err)
	assert.Equal(t, "no", e.IsValidMenu)
	assert.True(t, e.MenuOutput.IsEmpty())
}

func TestParseExtraction_SchemaErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"not json", "the menu is very nice"},
		{"bad enum", `{"is_valid_menu":"maybe","input_quality":0,"menu_complexity":"others","menu_output":{},"confidence":0}`},
		{"score out of range", `{"is_valid_menu":"no","input_quality":150,"menu_complexity":"others","menu_output":{},"confidence":0}`},
		{"min over max", `{"is_valid_menu":"yes","input_quality":50,"menu_complexity":"others","confidence":50,
			"menu_output":{"categories":[{"name":"A","sort_id":0,"items":[{"name":"X","price":100,"sort_id":0,
			"extras":[{"name":"Size","min_num_options":3,"max_num_options":1,"options":[{"name":"S","sort_id":0},{"name":"L","sort_id":1}]}]}]}]}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExtraction(tc.content)
			require.Error(t, err)
			assert.True(t, domain.IsErrorType(err, domain.ErrorTypeSchema), "got %v", err)
		})
	}
}

func TestCountSingleOptionExtras(t *testing.T) {
	e, err := ParseExtraction(sampleResponse)
	require.NoError(t, err)
	assert.Equal(t, 0, CountSingleOptionExtras(e.MenuOutput))

	m := e.MenuOutput
	m.Categories[0].Items[0].Extras[0].Options = m.Categories[0].Items[0].Extras[0].Options[:1]
	assert.Equal(t, 1, CountSingleOptionExtras(m))
}
