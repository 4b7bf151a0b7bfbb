package repository

import (
	"github.com/mrdlam87/little-lemon-api/entity"

	"gorm.io/gorm"
)

type GroupRepository struct{ DB *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{DB: db} }

// HasRole reports whether the user is currently a member of the named group.
// Checked at request time: membership can change between requests.
func (r *GroupRepository) HasRole(userID uint, role string) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups").
		Joins("JOIN `groups` g ON g.id = user_groups.group_id").
		Where("user_groups.user_id = ? AND g.name = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GroupRepository) ListMembers(role string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Joins("JOIN `groups` g ON g.id = ug.group_id").
		Where("g.name = ?", role).
		Find(&users).Error
	return users, err
}

func (r *GroupRepository) AddMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Append(user)
}

func (r *GroupRepository) RemoveMember(group *entity.Group, user *entity.User) error {
	return r.DB.Model(group).Association("Users").Delete(user)
}
