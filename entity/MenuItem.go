package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string  `gorm:"not null" json:"title"`
	Price    float64 `gorm:"not null" json:"price"`
	Featured bool    `json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail

	CartLines  []CartLine  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
