package repository

import (
	"github.com/mrdlam87/little-lemon-api/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuItemFilter carries the query-string knobs of GET /menu-items.
type MenuItemFilter struct {
	Category string
	Featured *bool
	Search   string
	OrderBy  string // "price" or "title"
	Page     int
	PerPage  int
}

func (r *MenuRepository) ListMenuItems(f MenuItemFilter) ([]entity.MenuItem, int64, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 || f.PerPage > 200 {
		f.PerPage = 20
	}

	db := r.DB.Model(&entity.MenuItem{})
	if f.Category != "" {
		db = db.Joins("JOIN categories ON categories.id = menu_items.category_id").
			Where("categories.title = ?", f.Category)
	}
	if f.Featured != nil {
		db = db.Where("menu_items.featured = ?", *f.Featured)
	}
	if f.Search != "" {
		db = db.Where("menu_items.title LIKE ?", "%"+f.Search+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.OrderBy {
	case "price":
		db = db.Order("menu_items.price")
	case "title":
		db = db.Order("menu_items.title")
	default:
		db = db.Order("menu_items.id")
	}

	var items []entity.MenuItem
	err := db.Limit(f.PerPage).Offset((f.Page - 1) * f.PerPage).Find(&items).Error
	return items, total, err
}

func (r *MenuRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Preload("Category").First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMenuBasics fetches just what pricing needs (id, price).
func (r *MenuRepository) GetMenuBasics(id uint) (entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.Select("id, price").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("id").Find(&cats).Error
	return cats, err
}
