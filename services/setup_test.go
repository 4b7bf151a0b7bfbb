package services

import (
	"testing"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"

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
	// one connection, or each pooled conn gets its own :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{}, &entity.Group{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.CartLine{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{entity.RoleManager, entity.RoleDeliveryCrew} {
		if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
			t.Fatalf("seed group %q: %v", name, err)
		}
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

func addToGroup(t *testing.T, db *gorm.DB, user *entity.User, role string) {
	t.Helper()
	var g entity.Group
	if err := db.Where("name = ?", role).First(&g).Error; err != nil {
		t.Fatalf("find group %q: %v", role, err)
	}
	if err := db.Model(&g).Association("Users").Append(user); err != nil {
		t.Fatalf("add %q to %q: %v", user.Username, role, err)
	}
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price float64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Title: title, Price: price}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu item %q: %v", title, err)
	}
	return m
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewGroupRepository(db),
	)
}
