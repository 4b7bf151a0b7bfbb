package repository

import (
	"github.com/mrdlam87/little-lemon-api/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListLines(userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

// ListLinesTx reads the cart inside a caller-owned transaction so checkout
// sees a consistent snapshot of the lines it is about to consume.
func (r *CartRepository) ListLinesTx(tx *gorm.DB, userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := tx.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) CreateLine(tx *gorm.DB, line *entity.CartLine) error {
	return tx.Create(line).Error
}

// ClearLines deletes every line for the user. No error when already empty.
func (r *CartRepository) ClearLines(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartLine{}).Error
}
