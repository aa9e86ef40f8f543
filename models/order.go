package models

import "time"

const OrderStatusPending = "pending"

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderNumber   string      `gorm:"type:varchar(50);not null" json:"orderNumber"`
	CustomerID    uint        `gorm:"not null;index" json:"customerId"`
	Customer      Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Phone         string      `gorm:"type:varchar(10);not null" json:"phone"`
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`
	Address       string      `gorm:"type:varchar(255);not null" json:"address"`
	ReferenceNote string      `gorm:"type:text" json:"referenceNote"`
	EmployeeName  string      `gorm:"type:varchar(255);not null" json:"employeeName"`
	Lines         []OrderLine `gorm:"foreignKey:OrderID" json:"lines"`
	Total         float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time   `gorm:"not null" json:"createdAt"`
}

// LineTotal sums unitPrice*quantity over all lines. Unit prices are
// snapshots taken when the line was built, so later menu edits never move
// an existing order's total.
func (o *Order) LineTotal() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}
