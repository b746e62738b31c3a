package menu

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yingyang-dd/AI-menu-building-competitation/internal/domain"
)

func price(cents int64) *int64 {
	return &cents
}

func sampleMenu() domain.Menu {
	return domain.Menu{
		Categories: []domain.Category{
			{
				Name:   "Appetizer",
				SortID: 0,
				Items: []domain.Item{
					{
						Name:        "Salad",
						Description: "your choice of chicken or pork",
						Price:       price(799),
						SortID:      0,
						Extras: []domain.Extra{
							{
								Name:          "Protein Choice",
								MinNumOptions: 1,
								MaxNumOptions: 1,
								Options: []domain.Option{
									{Name: "Chicken", Description: "chicken tender", SortID: 0},
									{Name: "Pork", Description: "Pork belly", SortID: 1},
								},
							},
						},
					},
					{Name: "Soup", Description: "Warm soup", Price: price(0), SortID: 1},
				},
			},
		},
	}
}

func TestNormalize_DropsZeroAndNilPriceItems(t *testing.T) {
	m := sampleMenu()
	m.Categories[0].Items = append(m.Categories[0].Items, domain.Item{Name: "Mystery Dish", SortID: 2})

	got := Normalize(m)

	require.Len(t, got.Categories, 1)
	require.Len(t, got.Categories[0].Items, 1)
	assert.Equal(t, "Salad", got.Categories[0].Items[0].Name)
}

func TestNormalize_DropsEmptiedCategories(t *testing.T) {
	m := domain.Menu{
		Categories: []domain.Category{
			{Name: "Specials", Items: []domain.Item{{Name: "Soup", Price: price(0)}}},
			{Name: "Mains", Items: []domain.Item{{Name: "Burger", Price: price(1200)}}},
			{Name: "Empty"},
		},
	}

	got := Normalize(m)

	require.Len(t, got.Categories, 1)
	assert.Equal(t, "Mains", got.Categories[0].Name)
}

func TestNormalize_PreservesSurvivorsAndInput(t *testing.T) {
	m := sampleMenu()

	got := Normalize(m)

	// survivors are untouched, extras included
	salad := got.Categories[0].Items[0]
	assert.Equal(t, int64(799), *salad.Price)
	require.Len(t, salad.Extras, 1)
	assert.Len(t, salad.Extras[0].Options, 2)

	// input menu is not mutated
	assert.Len(t, m.Categories[0].Items, 2)
	assert.Equal(t, "Soup", m.Categories[0].Items[1].Name)
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize(sampleMenu())
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalize_EmptyMenu(t *testing.T) {
	got := Normalize(domain.Menu{})
	assert.True(t, got.IsEmpty())
}

func TestFlatten_DepthFirstOrder(t *testing.T) {
	rows := Flatten(Normalize(sampleMenu()))

	require.Len(t, rows, 5)
	assert.Equal(t, RowTypeCategory, rows[0].Type)
	assert.Equal(t, "Appetizer", rows[0].Name)
	assert.Equal(t, RowTypeItem, rows[1].Type)
	assert.Equal(t, "Salad", rows[1].Name)
	assert.Equal(t, "799", rows[1].Price)
	assert.Equal(t, RowTypeExtra, rows[2].Type)
	assert.Equal(t, "Protein Choice", rows[2].Name)
	assert.Equal(t, "1", rows[2].NumMinOptions)
	assert.Equal(t, "1", rows[2].NumMaxOptions)
	assert.Equal(t, "0", rows[2].NumFreeOptions)
	assert.Equal(t, RowTypeOption, rows[3].Type)
	assert.Equal(t, "Chicken", rows[3].Name)
	assert.Equal(t, RowTypeOption, rows[4].Type)
	assert.Equal(t, "Pork", rows[4].Name)

	// fields that do not apply stay blank
	assert.Empty(t, rows[0].Price)
	assert.Empty(t, rows[1].NumMinOptions)
	assert.Empty(t, rows[3].NumMinOptions)
}

func TestFlatten_EmptyMenu(t *testing.T) {
	assert.Empty(t, Flatten(domain.Menu{}))
}

func TestWriteCSV_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Flatten(Normalize(sampleMenu()))))

	want := `type,name,description,price,num_min_options,num_max_options,num_free_options
Category,Appetizer,,,,,
Item,Salad,your choice of chicken or pork,799,,,
Extra,Protein Choice,,,1,1,0
Option,Chicken,chicken tender,0,,,
Option,Pork,Pork belly,0,,,
`
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_HeaderOnlyForEmptyMenu(t *testing.T) {
	// A menu whose only item has price zero normalizes to nothing.
	m := domain.Menu{
		Categories: []domain.Category{
			{Name: "Specials", Items: []domain.Item{{Name: "Soup", Price: price(0)}}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Flatten(Normalize(m))))

	assert.Equal(t, "type,name,description,price,num_min_options,num_max_options,num_free_options\n", buf.String())
}
