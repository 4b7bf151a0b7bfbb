package configs

import (
	"log"

	"github.com/mrdlam87/little-lemon-api/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedGroups makes sure the two role groups exist. Idempotent.
func SeedGroups() error {
	db := DB()
	for _, name := range []string{entity.RoleManager, entity.RoleDeliveryCrew} {
		if err := db.FirstOrCreate(&entity.Group{}, entity.Group{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedManager creates the initial manager account from env, once.
func SeedManager() error {
	db := DB()
	username := getEnv("MANAGER_USERNAME", "")
	pass := getEnv("MANAGER_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding manager: missing MANAGER_USERNAME/MANAGER_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("manager already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	manager := entity.User{
		Username: username,
		Password: string(hash),
	}
	if err := db.Create(&manager).Error; err != nil {
		return err
	}

	var group entity.Group
	if err := db.Where("name = ?", entity.RoleManager).First(&group).Error; err != nil {
		return err
	}
	return db.Model(&group).Association("Users").Append(&manager)
}
