package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	// membership is dynamic; always resolved against the DB, never cached in tokens
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	Orders    []Order    `json:"-"`
	CartLines []CartLine `json:"-"`
}
