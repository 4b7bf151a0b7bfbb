package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a frozen snapshot of one cart line at checkout time. It keeps
// the price paid even if the menu item changes later.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"`
}
