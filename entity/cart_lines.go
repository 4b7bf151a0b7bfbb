package entity

import (
	"gorm.io/gorm"
)

// CartLine is one pending line of a user's cart. Lines are flat per user
// (no cart header row): duplicates for the same menu item are legal and are
// never merged, and lines only go away on checkout or an explicit clear.
type CartLine struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"` // always unit_price * quantity, server-computed
}
