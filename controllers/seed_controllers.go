package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type SeedController struct {
	Store store.Store
}

func NewSeedController(s store.Store) *SeedController {
	return &SeedController{Store: s}
}

// Seed -> POST /seed
// Loads the sample data set on a fresh install. Refuses to touch a
// database that already holds any customer or menu item.
func (sc *SeedController) Seed(c *gin.Context) {
	menuCount, err := sc.Store.CountMenuItems()
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	customerCount, err := sc.Store.CountCustomers()
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	if menuCount > 0 || customerCount > 0 {
		utils.RespondError(c, http.StatusConflict, "database already contains data")
		return
	}

	menuItems := sampleMenuItems()
	for i := range menuItems {
		if err := sc.Store.CreateMenuItem(&menuItems[i]); err != nil {
			utils.RespondInternalError(c, err)
			return
		}
	}

	customers := sampleCustomers()
	for i := range customers {
		if err := sc.Store.CreateCustomer(&customers[i]); err != nil {
			utils.RespondInternalError(c, err)
			return
		}
	}

	utils.InfoLogger.Printf("Seeded %d menu items and %d customers", len(menuItems), len(customers))

	c.JSON(http.StatusOK, gin.H{
		"message":       "sample data loaded",
		"menuItemCount": len(menuItems),
		"customerCount": len(customers),
	})
}

// The pizzas are seeded in the legacy flat shape on purpose: they stand in
// for the records the system accumulated before per-size maps existed.
func sampleMenuItems() []models.MenuItem {
	items := []models.MenuItem{
		{Name: "Pizza Margherita", Category: models.CategoryPizza, SmallPrice: 120, MediumPrice: 180, LargePrice: 240, FamilyPrice: 320},
		{Name: "Pizza Pepperoni", Category: models.CategoryPizza, SmallPrice: 140, MediumPrice: 200, LargePrice: 260, FamilyPrice: 340},
		{Name: "Pizza Hawaiana", Category: models.CategoryPizza, SmallPrice: 150, MediumPrice: 220, LargePrice: 280, FamilyPrice: 360},
		{Name: "Pizza Cuatro Quesos", Category: models.CategoryPizza, SmallPrice: 160, MediumPrice: 240, LargePrice: 300, FamilyPrice: 380},
		{Name: "Pizza Mexicana", Category: models.CategoryPizza, SmallPrice: 130, MediumPrice: 190, LargePrice: 250, FamilyPrice: 330},
		{Name: "Pizza Vegetariana", Category: models.CategoryPizza, SmallPrice: 125, MediumPrice: 185, LargePrice: 245, FamilyPrice: 325},
	}

	withMap := []struct {
		name     string
		category string
		prices   map[string]float64
	}{
		{"Pizza Chetegamis Especial", models.CategorySpecial, map[string]float64{"individual": 170, "small": 250, "medium": 320, "family": 400}},
		{"Torta Cubana", models.CategorySandwich, map[string]float64{"simple": 85, "double": 130}},
		{"Arrachera Burger", models.CategoryArracheraBurger, map[string]float64{"simple": 110, "double": 160}},
		{"Espagueti a la Boloñesa", models.CategoryPasta, map[string]float64{"unique": 95}},
		{"Alitas BBQ", models.CategoryOtherFood, map[string]float64{"unique": 120}},
		{"Agua de Horchata 1L", models.CategoryBeverage, map[string]float64{"unique": 40}},
	}
	for _, entry := range withMap {
		item := models.MenuItem{Name: entry.name, Category: entry.category}
		// Marshalling a flat map cannot fail.
		_ = item.SetPriceMap(entry.prices)
		fillLegacySlots(&item, entry.prices)
		items = append(items, item)
	}

	return items
}

func sampleCustomers() []models.Customer {
	return []models.Customer{
		{Phone: "5551234567", Name: "Juan Pérez", Address: "Av. Principal 123, Col. Centro", ReferenceNote: "Frente al parque, casa de dos pisos"},
		{Phone: "5559876543", Name: "María García", Address: "Calle Secundaria 456, Col. Norte", ReferenceNote: "Esquina con calle de los árboles"},
		{Phone: "5551112233", Name: "Carlos López", Address: "Blvd. Reforma 789, Col. Sur", ReferenceNote: "Cerca del centro comercial"},
	}
}
