package services

import (
	"errors"
	"time"

	"github.com/mrdlam87/little-lemon-api/entity"
	"github.com/mrdlam87/little-lemon-api/repository"

	"gorm.io/gorm"
)

// RoleChecker answers whether a user currently belongs to a role group.
// The order engine never reaches into group storage itself.
type RoleChecker interface {
	HasRole(userID uint, role string) (bool, error)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	Roles    RoleChecker
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, roles RoleChecker) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, Roles: roles}
}

// OrderPatch carries a partial update; nil fields are left unchanged.
type OrderPatch struct {
	DeliveryCrewID *uint
	Status         *int
}

// Place converts the user's cart into an order. The whole conversion runs in
// one transaction: order row, item snapshots and cart clear commit together
// or not at all. The cart is read inside the transaction, so two racing
// placements cannot both consume the same lines.
func (s *OrderService) Place(userID uint) (*entity.Order, error) {
	var order entity.Order

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		lines, err := s.CartRepo.ListLinesTx(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		// Each line total is truncated to a whole unit before summing;
		// fractional remainders are dropped, not rounded.
		var total int64
		for _, l := range lines {
			total += int64(l.Price)
		}

		order = entity.Order{
			UserID: userID,
			Status: entity.StatusPending,
			Total:  total,
			Date:   time.Now(),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.OrderItems = append(order.OrderItems, oi)
		}

		return s.CartRepo.ClearLines(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List scopes visibility by role: managers see everything, delivery crew
// see their assignments, customers see their own orders.
func (s *OrderService) List(principalID uint) ([]entity.Order, error) {
	isManager, err := s.Roles.HasRole(principalID, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	if isManager {
		return s.Repo.ListAll()
	}

	isCrew, err := s.Roles.HasRole(principalID, entity.RoleDeliveryCrew)
	if err != nil {
		return nil, err
	}
	if isCrew {
		return s.Repo.ListForCrew(principalID)
	}

	return s.Repo.ListForUser(principalID)
}

// Detail is owner-only: unlike List there is no manager or crew bypass here.
func (s *OrderService) Detail(principalID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(principalID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.OrderItems = items
	return o, nil
}

// UpdateStatus changes only the status field. Manager or delivery crew only.
func (s *OrderService) UpdateStatus(principalID, orderID uint, status int) (*entity.Order, error) {
	isManager, err := s.Roles.HasRole(principalID, entity.RoleManager)
	if err != nil {
		return nil, err
	}
	if !isManager {
		isCrew, err := s.Roles.HasRole(principalID, entity.RoleDeliveryCrew)
		if err != nil {
			return nil, err
		}
		if !isCrew {
			return nil, ErrForbidden
		}
	}

	if status != entity.StatusPending && status != entity.StatusDelivered {
		return nil, &ValidationError{Field: "status", Message: "must be 0 or 1"}
	}

	if _, err := s.getOrder(orderID); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateFields(tx, orderID, map[string]any{"status": status})
	})
	if err != nil {
		return nil, err
	}
	return s.getOrder(orderID)
}

// Assign applies a partial update of delivery crew and/or status. A crew id
// must belong to a current delivery-crew member; on any validation failure
// the order is left untouched.
func (s *OrderService) Assign(orderID uint, patch OrderPatch) (*entity.Order, error) {
	if _, err := s.getOrder(orderID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if patch.DeliveryCrewID != nil {
		isCrew, err := s.Roles.HasRole(*patch.DeliveryCrewID, entity.RoleDeliveryCrew)
		if err != nil {
			return nil, err
		}
		if !isCrew {
			return nil, &ValidationError{Field: "delivery_crew_id", Message: "not a valid delivery crew"}
		}
		fields["delivery_crew_id"] = *patch.DeliveryCrewID
	}
	if patch.Status != nil {
		if *patch.Status != entity.StatusPending && *patch.Status != entity.StatusDelivered {
			return nil, &ValidationError{Field: "status", Message: "must be 0 or 1"}
		}
		fields["status"] = *patch.Status
	}

	if len(fields) > 0 {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.UpdateFields(tx, orderID, fields)
		})
		if err != nil {
			return nil, err
		}
	}
	return s.getOrder(orderID)
}

// Delete hard-deletes the order together with its items.
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.getOrder(orderID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteOrder(tx, orderID)
	})
}

func (s *OrderService) getOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.OrderItems = items
	return o, nil
}
