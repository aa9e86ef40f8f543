package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/chetegamis/pizzeria-app/models"
)

type GormStore struct {
	DB *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) FindCustomerByPhone(phone string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.DB.Where("phone = ?", phone).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(customer *models.Customer) error {
	if err := s.DB.Create(customer).Error; err != nil {
		// The phone column carries a unique index, so concurrent
		// check-then-insert races fail here instead of writing twice.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStore) CountCustomers() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) ListMenuItemsOrderedByName() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) ListMenuItemsByCategories(categories ...string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Where("category IN ?", categories).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) ListMenuItemsOutsideCategories(categories ...string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.DB.Where("category NOT IN ?", categories).Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateMenuItem(item *models.MenuItem) error {
	return s.DB.Create(item).Error
}

func (s *GormStore) CountMenuItems() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GormStore) FindMenuItemByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) CreateOrder(order *models.Order) error {
	// Lines are owned by the order and inserted with it.
	return s.DB.Create(order).Error
}

func (s *GormStore) FindOrderByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Preload("Lines").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}
