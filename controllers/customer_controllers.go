package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/models"
	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type CustomerController struct {
	Store store.Store
}

func NewCustomerController(s store.Store) *CustomerController {
	return &CustomerController{Store: s}
}

// FindCustomer -> GET /customers?phone=5551234567
// A miss is a normal answer ({found:false}), not an error: the till moves
// on to the customer creation form.
func (cc *CustomerController) FindCustomer(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		utils.RespondError(c, http.StatusBadRequest, "phone is required")
		return
	}

	customer, err := cc.Store.FindCustomerByPhone(phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"found": false})
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": true, "customer": customer})
}

// CreateCustomer -> POST /customers
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Phone         string `json:"phone"`
		Name          string `json:"name"`
		Address       string `json:"address"`
		ReferenceNote string `json:"referenceNote"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Phone == "" || req.Name == "" || req.Address == "" || req.ReferenceNote == "" {
		utils.RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}

	// Validated before any store access.
	if !isTenDigitPhone(req.Phone) {
		utils.RespondError(c, http.StatusBadRequest, "phone must be exactly 10 digits")
		return
	}

	if _, err := cc.Store.FindCustomerByPhone(req.Phone); err == nil {
		utils.RespondError(c, http.StatusConflict, "a customer with that phone already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		utils.RespondInternalError(c, err)
		return
	}

	customer := models.Customer{
		Phone:         req.Phone,
		Name:          req.Name,
		Address:       req.Address,
		ReferenceNote: req.ReferenceNote,
	}

	if err := cc.Store.CreateCustomer(&customer); err != nil {
		// The unique index closes the window between the check above and
		// the insert.
		if errors.Is(err, store.ErrDuplicate) {
			utils.RespondError(c, http.StatusConflict, "a customer with that phone already exists")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	utils.InfoLogger.Printf("New customer created (ID=%d, phone=%s)", customer.ID, customer.Phone)

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func isTenDigitPhone(phone string) bool {
	if len(phone) != 10 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
