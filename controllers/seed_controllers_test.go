package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chetegamis/pizzeria-app/models"
)

func TestSeedLoadsSampleData(t *testing.T) {
	router, s := setupTestRouter(t)

	w := postJSON(t, router, "/seed", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "sample data loaded", body["message"])
	assert.Equal(t, 12.0, body["menuItemCount"])
	assert.Equal(t, 3.0, body["customerCount"])

	customer, err := s.FindCustomerByPhone("5551234567")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", customer.Name)

	items, err := s.ListMenuItemsOrderedByName()
	require.NoError(t, err)
	assert.Len(t, items, 12)

	// Every category family is represented.
	categories := make(map[string]bool)
	for _, item := range items {
		categories[item.Category] = true
	}
	for _, category := range []string{
		models.CategoryPizza, models.CategorySpecial, models.CategorySandwich,
		models.CategoryArracheraBurger, models.CategoryOtherFood,
		models.CategoryPasta, models.CategoryBeverage,
	} {
		assert.True(t, categories[category], "missing category %s", category)
	}
}

func TestSeedConflictsWhenDataExists(t *testing.T) {
	router, s := setupTestRouter(t)
	require.NoError(t, s.CreateCustomer(&models.Customer{
		Phone: "5550001111", Name: "Cliente Previo", Address: "Calle 1",
	}))

	w := postJSON(t, router, "/seed", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "database already contains data", decodeBody(t, w)["error"])

	count, err := s.CountMenuItems()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
