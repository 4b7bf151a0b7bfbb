package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order status values. No transition guard exists in either direction.
const (
	StatusPending   = 0
	StatusDelivered = 1
)

type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID" json:"-"`

	Status int       `json:"status"`
	Total  int64     `json:"total"` // frozen at checkout, never recomputed
	Date   time.Time `json:"date"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"orderItems"`
}
