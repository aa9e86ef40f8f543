package models

type OrderLine struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	// MenuItemID is kept for traceability only; the line never reads the
	// menu record again after creation.
	MenuItemID uint    `gorm:"not null" json:"menuItemId"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Size       string  `gorm:"type:varchar(20);not null" json:"size"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}
