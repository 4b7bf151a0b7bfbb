package services

import (
	"errors"
	"strings"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"

	"gorm.io/gorm"
)

// GroupService manages role membership for the manager and delivery-crew
// groups. Route-level gating keeps it manager-only.
type GroupService struct {
	UserRepo  *repository.UserRepository
	GroupRepo *repository.GroupRepository
}

func NewGroupService(ur *repository.UserRepository, gr *repository.GroupRepository) *GroupService {
	return &GroupService{UserRepo: ur, GroupRepo: gr}
}

func (s *GroupService) ListMembers(role string) ([]entity.User, error) {
	return s.GroupRepo.ListMembers(role)
}

func (s *GroupService) AddMember(role, username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}

	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	group, err := s.GroupRepo.FindByName(role)
	if err != nil {
		return err
	}
	return s.GroupRepo.AddMember(group, user)
}

func (s *GroupService) RemoveMember(role string, userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	group, err := s.GroupRepo.FindByName(role)
	if err != nil {
		return err
	}
	return s.GroupRepo.RemoveMember(group, user)
}
