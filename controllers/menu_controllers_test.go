package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetegamis/pizzeria-app/models"
)

func TestCreateMenuItemPizzaWithLegacyFields(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":        "Pizza Margherita",
		"category":    "Pizza",
		"smallPrice":  120,
		"mediumPrice": 180,
		"largePrice":  240,
		"familyPrice": 320,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	item := decodeBody(t, w)["menuItem"].(map[string]interface{})
	assert.Equal(t, "Pizza Margherita", item["name"])
	assert.Equal(t, []interface{}{"individual", "small", "medium", "family"}, item["enabledSizes"])
	prices := item["priceBySize"].(map[string]interface{})
	assert.Equal(t, 120.0, prices["individual"])
	assert.Equal(t, 180.0, prices["small"])
	assert.Equal(t, 240.0, prices["medium"])
	assert.Equal(t, 320.0, prices["family"])
}

func TestCreateMenuItemWithExplicitPriceMap(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":     "Torta Cubana",
		"category": "Sandwich",
		"priceBySize": map[string]float64{
			"simple": 85,
			"double": 130,
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	item := decodeBody(t, w)["menuItem"].(map[string]interface{})
	assert.Equal(t, []interface{}{"simple", "double"}, item["enabledSizes"])
	prices := item["priceBySize"].(map[string]interface{})
	assert.Equal(t, 85.0, prices["simple"])
	assert.Equal(t, 130.0, prices["double"])
}

func TestCreateMenuItemInvalidCategory(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":       "Tacos al Pastor",
		"category":   "Tacos",
		"smallPrice": 60,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid category", decodeBody(t, w)["error"])
}

func TestCreateMenuItemMissingRequiredPriceForCategory(t *testing.T) {
	router, _ := setupTestRouter(t)

	// A pizza needs all four legacy slots.
	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":        "Pizza Hawaiana",
		"category":    "Pizza",
		"smallPrice":  150,
		"mediumPrice": 220,
		"largePrice":  280,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "familyPrice is required", decodeBody(t, w)["error"])

	// A beverage only needs the first slot.
	w = postJSON(t, router, "/menu", map[string]interface{}{
		"name":       "Agua de Horchata 1L",
		"category":   "Beverage",
		"smallPrice": 40,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateMenuItemRejectsNegativePrice(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":       "Espagueti a la Boloñesa",
		"category":   "Pasta",
		"smallPrice": -5,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `price for size "unique" must be non-negative`, decodeBody(t, w)["error"])
}

func TestCreateMenuItemIncompleteExplicitMap(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":        "Arrachera Burger",
		"category":    "ArracheraBurger",
		"priceBySize": map[string]float64{"simple": 110},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `price for size "double" is required`, decodeBody(t, w)["error"])
}

func TestGetAllMenuItemsOrderedByName(t *testing.T) {
	router, s := setupTestRouter(t)

	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Name: "Pizza Pepperoni", Category: models.CategoryPizza, SmallPrice: 140, MediumPrice: 200, LargePrice: 260, FamilyPrice: 340}))
	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Name: "Agua de Horchata 1L", Category: models.CategoryBeverage, SmallPrice: 40}))
	require.NoError(t, s.CreateMenuItem(&models.MenuItem{Name: "Torta Cubana", Category: models.CategorySandwich, SmallPrice: 85, MediumPrice: 130}))

	w := getJSON(t, router, "/menu")
	assert.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["menuItems"].([]interface{})
	require.Len(t, items, 3)

	names := make([]string, len(items))
	for i, raw := range items {
		names[i] = raw.(map[string]interface{})["name"].(string)
	}
	assert.Equal(t, []string{"Agua de Horchata 1L", "Pizza Pepperoni", "Torta Cubana"}, names)

	// Legacy flat records come back with the normalized per-size view.
	horchata := items[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"unique"}, horchata["enabledSizes"])
	assert.Equal(t, 40.0, horchata["priceBySize"].(map[string]interface{})["unique"])
}
