package entity

import (
	"gorm.io/gorm"
)

// Role group names. A user in neither group is a plain customer.
const (
	RoleManager      = "manager"
	RoleDeliveryCrew = "delivery crew"
)

type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
