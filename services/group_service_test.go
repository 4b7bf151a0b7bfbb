package services

import (
	"errors"
	"testing"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"
)

func TestGroupMembership_AddAndRemove(t *testing.T) {
	db := newTestDB(t)
	groupRepo := repository.NewGroupRepository(db)
	svc := NewGroupService(repository.NewUserRepository(db), groupRepo)
	user := createUser(t, db, "dana")

	if err := svc.AddMember(entity.RoleDeliveryCrew, "dana"); err != nil {
		t.Fatalf("add member: %v", err)
	}

	ok, err := groupRepo.HasRole(user.ID, entity.RoleDeliveryCrew)
	if err != nil {
		t.Fatalf("has role: %v", err)
	}
	if !ok {
		t.Error("expected dana in delivery crew")
	}

	members, err := svc.ListMembers(entity.RoleDeliveryCrew)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 || members[0].Username != "dana" {
		t.Errorf("expected [dana], got %+v", members)
	}

	if err := svc.RemoveMember(entity.RoleDeliveryCrew, user.ID); err != nil {
		t.Fatalf("remove member: %v", err)
	}
	ok, err = groupRepo.HasRole(user.ID, entity.RoleDeliveryCrew)
	if err != nil {
		t.Fatalf("has role: %v", err)
	}
	if ok {
		t.Error("expected dana removed from delivery crew")
	}
}

func TestGroupMembership_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(repository.NewUserRepository(db), repository.NewGroupRepository(db))

	if err := svc.AddMember(entity.RoleManager, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := svc.RemoveMember(entity.RoleManager, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGroupMembership_BlankUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewGroupService(repository.NewUserRepository(db), repository.NewGroupRepository(db))

	err := svc.AddMember(entity.RoleManager, "  ")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "username" {
		t.Errorf("expected field username, got %q", ve.Field)
	}
}

func TestHasRole_MembershipIsPerGroup(t *testing.T) {
	db := newTestDB(t)
	groupRepo := repository.NewGroupRepository(db)
	user := createUser(t, db, "mia")
	addToGroup(t, db, user, entity.RoleManager)

	ok, err := groupRepo.HasRole(user.ID, entity.RoleManager)
	if err != nil || !ok {
		t.Errorf("expected manager role, got ok=%v err=%v", ok, err)
	}
	ok, err = groupRepo.HasRole(user.ID, entity.RoleDeliveryCrew)
	if err != nil {
		t.Fatalf("has role: %v", err)
	}
	if ok {
		t.Error("manager must not count as delivery crew")
	}
}
