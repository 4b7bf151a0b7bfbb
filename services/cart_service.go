package services

import (
	"errors"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

// Add snapshots the menu item's current price into a new cart line.
// Duplicate lines for the same item are kept separate, never merged.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		return nil, &ValidationError{Field: "quantity", Message: "must be a positive integer"}
	}

	m, err := s.MenuRepo.GetMenuBasics(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	line := &entity.CartLine{
		UserID:     userID,
		MenuItemID: m.ID,
		Quantity:   quantity,
		UnitPrice:  m.Price,
		Price:      m.Price * float64(quantity),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.CreateLine(tx, line)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) List(userID uint) ([]entity.CartLine, error) {
	return s.CartRepo.ListLines(userID)
}

// Clear is idempotent: clearing an already-empty cart succeeds.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearLines(tx, userID)
	})
}
