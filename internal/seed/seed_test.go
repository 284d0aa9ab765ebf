package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetShape(t *testing.T) {
	data := Dataset()
	assert.Len(t, data.Products, 8)
	assert.Len(t, data.Categories, 4)
	assert.Len(t, data.Users, 3)
	assert.Len(t, data.Orders, 4)
	assert.Len(t, data.TradeAreas, 2)
	assert.Len(t, data.Branches, 3)
	assert.Len(t, data.Promotions, 3)
}

func TestDatasetReferencesResolve(t *testing.T) {
	data := Dataset()

	categories := map[string]bool{}
	for _, c := range data.Categories {
		categories[c.Name] = true
	}
	for _, p := range data.Products {
		assert.Truef(t, categories[p.Category], "product %s has unknown category %q", p.ID, p.Category)
	}

	areas := map[string]bool{}
	for _, ta := range data.TradeAreas {
		areas[string(ta.ID)] = true
	}
	for _, b := range data.Branches {
		assert.Truef(t, areas[string(b.TradeAreaID)], "branch %s has unknown trade area", b.ID)
	}
}

func TestDatasetReturnsIndependentCopies(t *testing.T) {
	first := Dataset()
	first.Products[0].Stock = 1
	first.Users[0].Wishlist[0] = "p8"

	second := Dataset()
	require.Equal(t, 50, second.Products[0].Stock)
	require.Equal(t, "p4", string(second.Users[0].Wishlist[0]))
}
