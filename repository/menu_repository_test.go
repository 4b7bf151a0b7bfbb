package repository

import (
	"testing"

	"github.com/mrdlam87/little-lemon-api/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&entity.Category{}, &entity.MenuItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	mains := entity.Category{Title: "mains"}
	drinks := entity.Category{Title: "drinks"}
	if err := db.Create(&mains).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := db.Create(&drinks).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	items := []entity.MenuItem{
		{Title: "Pizza", Price: 10, Featured: true, CategoryID: mains.ID},
		{Title: "Pasta", Price: 8, CategoryID: mains.ID},
		{Title: "Soda", Price: 3, CategoryID: drinks.ID},
		{Title: "Lemonade", Price: 4, Featured: true, CategoryID: drinks.ID},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("seed items: %v", err)
	}
}

func TestListMenuItems_Filters(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewMenuRepository(db)

	items, total, err := repo.ListMenuItems(MenuItemFilter{Category: "drinks"})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("drinks: expected 2 items, got total=%d len=%d", total, len(items))
	}

	featured := true
	items, total, err = repo.ListMenuItems(MenuItemFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	if total != 2 {
		t.Errorf("featured: expected 2 items, got %d", total)
	}

	items, _, err = repo.ListMenuItems(MenuItemFilter{Search: "Pi"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Pizza" {
		t.Errorf("search Pi: expected [Pizza], got %+v", items)
	}
}

func TestListMenuItems_OrderingAndPaging(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewMenuRepository(db)

	items, total, err := repo.ListMenuItems(MenuItemFilter{OrderBy: "price", Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 4 {
		t.Errorf("expected total 4 independent of page size, got %d", total)
	}
	if len(items) != 2 || items[0].Title != "Soda" || items[1].Title != "Lemonade" {
		t.Errorf("page 1 by price: expected [Soda Lemonade], got %+v", items)
	}

	items, _, err = repo.ListMenuItems(MenuItemFilter{OrderBy: "price", Page: 2, PerPage: 2})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(items) != 2 || items[0].Title != "Pasta" || items[1].Title != "Pizza" {
		t.Errorf("page 2 by price: expected [Pasta Pizza], got %+v", items)
	}
}

func TestGetMenuBasics(t *testing.T) {
	db := newTestDB(t)
	seedCatalog(t, db)
	repo := NewMenuRepository(db)

	var pizza entity.MenuItem
	if err := db.Where("title = ?", "Pizza").First(&pizza).Error; err != nil {
		t.Fatalf("find pizza: %v", err)
	}

	m, err := repo.GetMenuBasics(pizza.ID)
	if err != nil {
		t.Fatalf("get basics: %v", err)
	}
	if m.Price != 10 {
		t.Errorf("expected price 10, got %v", m.Price)
	}

	if _, err := repo.GetMenuBasics(999); err == nil {
		t.Error("expected error for unknown id")
	}
}
