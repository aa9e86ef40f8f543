// Package store is the storage boundary for the three record collections.
// Handlers are written once against the Store interface; the concrete
// adapter (mysql in deployments, sqlite for tests and the zero-config local
// mode) is chosen at startup.
package store

import (
	"errors"

	"github.com/chetegamis/pizzeria-app/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type Store interface {
	FindCustomerByPhone(phone string) (*models.Customer, error)
	CreateCustomer(customer *models.Customer) error
	CountCustomers() (int64, error)

	ListMenuItemsOrderedByName() ([]models.MenuItem, error)
	ListMenuItemsByCategories(categories ...string) ([]models.MenuItem, error)
	ListMenuItemsOutsideCategories(categories ...string) ([]models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
	CountMenuItems() (int64, error)
	FindMenuItemByID(id uint) (*models.MenuItem, error)

	CreateOrder(order *models.Order) error
	FindOrderByID(id uint) (*models.Order, error)
}
