package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/pricing"
	"github.com/chetegamis/pizzeria-app/services"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type MenuController struct {
	Store store.Store
	Menus *services.MenuService
}

func NewMenuController(s store.Store) *MenuController {
	return &MenuController{Store: s, Menus: services.NewMenuService(s)}
}

// MenuItemResponse is the canonical wire shape of a menu item: the stored
// record plus the normalized per-size view, so clients never branch on
// whether a record is legacy-flat or explicit-map.
type MenuItemResponse struct {
	models.MenuItem
	EnabledSizes []string           `json:"enabledSizes"`
	PriceBySize  map[string]float64 `json:"priceBySize"`
}

func menuItemResponse(item models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		MenuItem:     item,
		EnabledSizes: pricing.SizesForCategory(item.Category),
		PriceBySize:  pricing.NormalizePriceMap(&item),
	}
}

// GetAllMenuItems -> GET /menu
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.Menus.FetchMenu()
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	out := make([]MenuItemResponse, len(items))
	for i, item := range items {
		out[i] = menuItemResponse(item)
	}

	c.JSON(http.StatusOK, gin.H{"menuItems": out})
}

// CreateMenuItem -> POST /menu
// Accepts either an explicit priceBySize map or the legacy flat price
// fields; either way every size the category mandates must carry a
// non-negative price. Records are stored with the canonical map so the
// legacy shape never travels further than this handler.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	type reqBody struct {
		Name        string             `json:"name"`
		Category    string             `json:"category"`
		SmallPrice  *float64           `json:"smallPrice"`
		MediumPrice *float64           `json:"mediumPrice"`
		LargePrice  *float64           `json:"largePrice"`
		FamilyPrice *float64           `json:"familyPrice"`
		PriceBySize map[string]float64 `json:"priceBySize"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, "name is required")
		return
	}
	if !models.KnownCategory(req.Category) {
		utils.RespondError(c, http.StatusBadRequest, "invalid category")
		return
	}

	sizes := pricing.SizesForCategory(req.Category)

	prices := make(map[string]float64, len(sizes))
	if len(req.PriceBySize) > 0 {
		for _, size := range sizes {
			price, ok := req.PriceBySize[size]
			if !ok {
				utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("price for size %q is required", size))
				return
			}
			prices[size] = price
		}
	} else {
		legacy := map[string]*float64{
			"smallPrice":  req.SmallPrice,
			"mediumPrice": req.MediumPrice,
			"largePrice":  req.LargePrice,
			"familyPrice": req.FamilyPrice,
		}
		// The flat slots fill the category's size labels in order.
		slots := []string{"smallPrice", "mediumPrice", "largePrice", "familyPrice"}
		for i, size := range sizes {
			field := slots[i]
			value := legacy[field]
			if value == nil {
				utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("%s is required", field))
				return
			}
			prices[size] = *value
		}
	}

	for size, price := range prices {
		if price < 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("price for size %q must be non-negative", size))
			return
		}
	}

	item := models.MenuItem{
		Name:     req.Name,
		Category: req.Category,
	}
	if err := item.SetPriceMap(prices); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	// Mirror the map into the flat slots so older readers keep working.
	fillLegacySlots(&item, prices)

	if err := mc.Store.CreateMenuItem(&item); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Menu item created (ID=%d, name=%q, category=%s)", item.ID, item.Name, item.Category)

	c.JSON(http.StatusCreated, gin.H{"menuItem": menuItemResponse(item)})
}

func fillLegacySlots(item *models.MenuItem, prices map[string]float64) {
	slots := []*float64{&item.SmallPrice, &item.MediumPrice, &item.LargePrice, &item.FamilyPrice}
	for i, size := range pricing.SizesForCategory(item.Category) {
		*slots[i] = prices[size]
	}
}
