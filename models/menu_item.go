package models

import (
	"encoding/json"
	"time"
)

// Menu categories. Older records may carry values outside this list; they
// are still readable and fall into the single-size family.
const (
	CategoryPizza           = "Pizza"
	CategorySpecial         = "Special"
	CategorySandwich        = "Sandwich"
	CategoryArracheraBurger = "ArracheraBurger"
	CategoryOtherFood       = "OtherFood"
	CategoryPasta           = "Pasta"
	CategoryBeverage        = "Beverage"
)

type MenuItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	Category string `gorm:"type:varchar(50);not null;index" json:"category"`

	// Legacy flat price slots (chico/mediano/grande/familiar). Kept for
	// backward compatibility with records created before per-size maps.
	SmallPrice  float64 `gorm:"type:decimal(10,2);not null;default:0" json:"smallPrice"`
	MediumPrice float64 `gorm:"type:decimal(10,2);not null;default:0" json:"mediumPrice"`
	LargePrice  float64 `gorm:"type:decimal(10,2);not null;default:0" json:"largePrice"`
	FamilyPrice float64 `gorm:"type:decimal(10,2);not null;default:0" json:"familyPrice"`

	// Explicit price-by-size map, stored as a JSON text column. Empty means
	// the item predates the map and prices come from the flat slots.
	PriceBySizeJSON string `gorm:"column:price_by_size;type:text" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

// KnownCategory reports whether category is one of the fixed enumeration.
func KnownCategory(category string) bool {
	switch category {
	case CategoryPizza, CategorySpecial, CategorySandwich,
		CategoryArracheraBurger, CategoryOtherFood, CategoryPasta,
		CategoryBeverage:
		return true
	}
	return false
}

// PriceMap returns the explicit price-by-size map, or ok=false when the
// record has none (or the stored JSON is unreadable, which is treated the
// same as absent).
func (m *MenuItem) PriceMap() (map[string]float64, bool) {
	if m.PriceBySizeJSON == "" {
		return nil, false
	}
	var prices map[string]float64
	if err := json.Unmarshal([]byte(m.PriceBySizeJSON), &prices); err != nil {
		return nil, false
	}
	if len(prices) == 0 {
		return nil, false
	}
	return prices, true
}

// SetPriceMap stores prices as the item's explicit price-by-size map.
func (m *MenuItem) SetPriceMap(prices map[string]float64) error {
	data, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	m.PriceBySizeJSON = string(data)
	return nil
}
