package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/pricing"
)

func TestSizesForCategory(t *testing.T) {
	pizzaFamily := []string{"individual", "small", "medium", "family"}
	sandwichFamily := []string{"simple", "double"}
	uniqueFamily := []string{"unique"}

	cases := []struct {
		category string
		want     []string
	}{
		{models.CategoryPizza, pizzaFamily},
		{models.CategorySpecial, pizzaFamily},
		{models.CategorySandwich, sandwichFamily},
		{models.CategoryArracheraBurger, sandwichFamily},
		{models.CategoryOtherFood, uniqueFamily},
		{models.CategoryPasta, uniqueFamily},
		{models.CategoryBeverage, uniqueFamily},
		{"", uniqueFamily},
		{"SomethingNew", uniqueFamily},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, pricing.SizesForCategory(tc.category), "category %q", tc.category)
	}
}

func TestNormalizePriceMapFromLegacyFields(t *testing.T) {
	item := &models.MenuItem{
		Name:        "Pizza Margherita",
		Category:    models.CategoryPizza,
		SmallPrice:  120,
		MediumPrice: 180,
		LargePrice:  240,
		FamilyPrice: 320,
	}

	got := pricing.NormalizePriceMap(item)
	assert.Equal(t, map[string]float64{
		"individual": 120,
		"small":      180,
		"medium":     240,
		"family":     320,
	}, got)
}

func TestNormalizePriceMapSandwichRemapping(t *testing.T) {
	item := &models.MenuItem{
		Category:    models.CategoryArracheraBurger,
		SmallPrice:  85,
		MediumPrice: 130,
		// Large/family slots exist on the record but are outside the
		// sandwich family and must be ignored.
		LargePrice:  999,
		FamilyPrice: 999,
	}

	got := pricing.NormalizePriceMap(item)
	assert.Equal(t, map[string]float64{"simple": 85, "double": 130}, got)
}

func TestNormalizePriceMapExplicitMapWins(t *testing.T) {
	item := &models.MenuItem{
		Category:   models.CategoryPasta,
		SmallPrice: 70,
	}
	err := item.SetPriceMap(map[string]float64{"unique": 95})
	assert.NoError(t, err)

	got := pricing.NormalizePriceMap(item)
	assert.Equal(t, map[string]float64{"unique": 95}, got)
}

func TestNormalizePriceMapIdempotent(t *testing.T) {
	item := &models.MenuItem{
		Category:    models.CategorySpecial,
		SmallPrice:  110,
		MediumPrice: 165,
		LargePrice:  220,
		FamilyPrice: 290,
	}

	first := pricing.NormalizePriceMap(item)

	// Feed the output back in as an explicit map.
	roundTrip := &models.MenuItem{Category: models.CategorySpecial}
	assert.NoError(t, roundTrip.SetPriceMap(first))
	second := pricing.NormalizePriceMap(roundTrip)

	assert.Equal(t, first, second)
}

func TestNormalizePriceMapMissingLegacyFieldsReadAsZero(t *testing.T) {
	item := &models.MenuItem{Category: models.CategoryPizza, SmallPrice: 120}

	got := pricing.NormalizePriceMap(item)
	assert.Equal(t, map[string]float64{
		"individual": 120,
		"small":      0,
		"medium":     0,
		"family":     0,
	}, got)
}

func TestPriceForLine(t *testing.T) {
	item := &models.MenuItem{
		Category:    models.CategoryPizza,
		SmallPrice:  140,
		MediumPrice: 200,
		LargePrice:  260,
		FamilyPrice: 340,
	}

	assert.Equal(t, 140.0, pricing.PriceForLine(item, "individual"))
	assert.Equal(t, 340.0, pricing.PriceForLine(item, "family"))

	// Sizes outside the family degrade to 0 instead of failing.
	assert.Equal(t, 0.0, pricing.PriceForLine(item, "double"))
	assert.Equal(t, 0.0, pricing.PriceForLine(item, "no-such-size"))
}

func TestPriceForLineLegacyFallbackWithoutCategory(t *testing.T) {
	// Historical record: no recognized category, no explicit map. The
	// single-size family applies and the first flat slot carries the price.
	item := &models.MenuItem{Category: "", SmallPrice: 45}

	assert.Equal(t, 45.0, pricing.PriceForLine(item, "unique"))
	assert.Equal(t, 0.0, pricing.PriceForLine(item, "medium"))
}

func TestOrderLineTotalSnapshotSemantics(t *testing.T) {
	order := &models.Order{
		Lines: []models.OrderLine{
			{Name: "Pizza Pepperoni", Size: "small", UnitPrice: 200, Quantity: 2},
			{Name: "Torta Cubana", Size: "double", UnitPrice: 95, Quantity: 1},
		},
	}

	assert.Equal(t, 495.0, order.LineTotal())
}
