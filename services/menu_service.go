package services

import (
	"errors"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"

	"gorm.io/gorm"
)

// MenuService is read-only: the catalog is managed out of band.
type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(r *repository.MenuRepository) *MenuService { return &MenuService{Repo: r} }

func (s *MenuService) List(f repository.MenuItemFilter) ([]entity.MenuItem, int64, error) {
	return s.Repo.ListMenuItems(f)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	m, err := s.Repo.GetMenuItem(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}
