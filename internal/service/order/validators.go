package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func validateDraft(draft entities.OrderDraft) error {
	switch {
	case !isValidID(draft.ShopID):
		return fmt.Errorf("%w: shop id is required", ErrInvalidDraft)
	case !isValidID(draft.OwnerID):
		return fmt.Errorf("%w: owner id is required", ErrInvalidDraft)
	case draft.Total <= 0:
		return fmt.Errorf("%w: total must be positive", ErrInvalidDraft)
	case draft.ShippingFee < 0 || draft.ShippingFee > draft.Total:
		return fmt.Errorf("%w: shipping fee must be within [0, total]", ErrInvalidDraft)
	case !draft.PaymentMethod.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, draft.PaymentMethod)
	}
	return nil
}

// canDrive кто двигает заказ вперед: магазин готовит, курьер везет, оператор может все.
func canDrive(caller entities.Caller, order *entities.Order, target entities.OrderStatus) bool {
	if caller.Is(entities.RoleOperator) {
		return true
	}

	switch target {
	case entities.OrderConfirmed, entities.OrderPreparing, entities.OrderReady:
		return caller.Is(entities.RoleOwner) && order.OwnerID == caller.ID
	case entities.OrderShipping, entities.OrderDelivered:
		return caller.Is(entities.RoleShipper)
	case entities.OrderPending, entities.OrderCancelled:
		return false
	}
	return false
}

func canCancel(caller entities.Caller, order *entities.Order) bool {
	switch caller.Role {
	case entities.RoleOperator:
		return true
	case entities.RoleCustomer:
		return order.CustomerID == caller.ID
	case entities.RoleOwner:
		return order.OwnerID == caller.ID
	case entities.RoleShipper:
		return false
	}
	return false
}

// canSee свободный READY заказ виден любому курьеру, чтобы его можно было взять.
func canSee(caller entities.Caller, order *entities.Order) bool {
	switch caller.Role {
	case entities.RoleOperator:
		return true
	case entities.RoleCustomer:
		return order.CustomerID == caller.ID
	case entities.RoleOwner:
		return order.OwnerID == caller.ID
	case entities.RoleShipper:
		if order.IsClaimedBy(caller.ID) {
			return true
		}
		return order.Status == entities.OrderReady && !order.IsClaimed()
	}
	return false
}
