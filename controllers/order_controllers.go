package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/pricing"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type OrderController struct {
	Store store.Store
}

func NewOrderController(s store.Store) *OrderController {
	return &OrderController{Store: s}
}

// CreateOrder -> POST /orders
// Unit prices are resolved server-side against the current menu and stored
// on the line as snapshots; the order's total is the recomputed line sum,
// so later menu edits never move it.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type lineReq struct {
		MenuItemID uint    `json:"menuItemId"`
		Name       string  `json:"name"`
		Size       string  `json:"size"`
		UnitPrice  float64 `json:"unitPrice"`
		Quantity   int     `json:"quantity"`
	}

	type reqBody struct {
		OrderNumber   string    `json:"orderNumber"`
		CustomerID    uint      `json:"customerId"`
		Phone         string    `json:"phone"`
		Name          string    `json:"name"`
		Address       string    `json:"address"`
		ReferenceNote string    `json:"referenceNote"`
		EmployeeName  string    `json:"employeeName"`
		Lines         []lineReq `json:"lines"`
		Total         *float64  `json:"total"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OrderNumber == "" || req.CustomerID == 0 || req.Phone == "" ||
		req.Name == "" || req.Address == "" || req.ReferenceNote == "" ||
		req.EmployeeName == "" || req.Total == nil {
		utils.RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}
	if len(req.Lines) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "order must have at least one line")
		return
	}

	lines := make([]models.OrderLine, len(req.Lines))
	for i, line := range req.Lines {
		if line.Quantity < 0 {
			utils.RespondError(c, http.StatusBadRequest, "quantity must be a non-negative integer")
			return
		}

		name := line.Name
		unitPrice := line.UnitPrice

		item, err := oc.Store.FindMenuItemByID(line.MenuItemID)
		switch {
		case err == nil:
			if !sizeEnabled(item, line.Size) {
				utils.RespondError(c, http.StatusBadRequest,
					fmt.Sprintf("invalid size %q for %q", line.Size, item.Name))
				return
			}
			name = item.Name
			unitPrice = pricing.PriceForLine(item, line.Size)
		case errors.Is(err, store.ErrNotFound):
			// Line references a record that is gone; keep the submitted
			// snapshot rather than rejecting the whole order.
		default:
			utils.RespondInternalError(c, err)
			return
		}

		lines[i] = models.OrderLine{
			MenuItemID: line.MenuItemID,
			Name:       name,
			Size:       line.Size,
			UnitPrice:  unitPrice,
			Quantity:   line.Quantity,
		}
	}

	order := models.Order{
		OrderNumber:   req.OrderNumber,
		CustomerID:    req.CustomerID,
		Phone:         req.Phone,
		Name:          req.Name,
		Address:       req.Address,
		ReferenceNote: req.ReferenceNote,
		EmployeeName:  req.EmployeeName,
		Lines:         lines,
		Status:        models.OrderStatusPending,
	}
	order.Total = order.LineTotal()

	if err := oc.Store.CreateOrder(&order); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order created (ID=%d, number=%s, total=%.2f)", order.ID, order.OrderNumber, order.Total)

	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func sizeEnabled(item *models.MenuItem, size string) bool {
	for _, s := range pricing.SizesForCategory(item.Category) {
		if s == size {
			return true
		}
	}
	return false
}
