package store

import (
	"context"

	"github.com/zarnosh/My-E-comerce-Store/pkg/enums"
	pkgerrors "github.com/zarnosh/My-E-comerce-Store/pkg/errors"
	"github.com/zarnosh/My-E-comerce-Store/pkg/models"
)

// Orders returns every order, newest first.
func (s *Store) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.orders, models.Order.Clone)
}

// AddOrder stamps the draft for the session user, prepends it and decrements
// stock for each line. Stock is not floored at zero; a line that drives stock
// negative is logged and counted.
func (s *Store) AddOrder(ctx context.Context, draft models.OrderDraft) (models.Order, error) {
	if len(draft.Items) == 0 {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "order has no items")
	}
	if !draft.PaymentMethod.IsValid() {
		return models.Order{}, pkgerrors.Newf(pkgerrors.CodeValidation, "unknown payment method %q", draft.PaymentMethod)
	}
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return models.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "order item quantity must be positive")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.currentUserLocked()
	if user == nil {
		return models.Order{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required to place an order")
	}

	order := models.Order{
		ID:              models.OrderID(s.ids.Next(models.PrefixOrder)),
		UserID:          user.ID,
		Items:           append([]models.OrderItem{}, draft.Items...),
		Total:           draft.Total,
		Date:            s.now().UTC(),
		Status:          enums.OrderStatusPending,
		ShippingAddress: draft.ShippingAddress,
		PaymentMethod:   draft.PaymentMethod,
	}
	s.orders = append([]models.Order{order}, s.orders...)

	ctx = s.logg.WithFields(s.logg.WithOrderID(ctx, string(order.ID)), map[string]any{"user_id": user.ID})
	for _, item := range order.Items {
		idx := s.productIndex(item.ProductID)
		if idx < 0 {
			s.logg.Warn(s.logg.WithField(ctx, "product_id", item.ProductID), "order.unknown_product")
			continue
		}
		s.products[idx].Stock -= item.Quantity
		if s.products[idx].Stock < 0 {
			s.metrics.IncNegativeStock()
			s.logg.Warn(s.logg.WithFields(ctx, map[string]any{
				"product_id": item.ProductID,
				"stock":      s.products[idx].Stock,
			}), "order.negative_stock")
		}
	}

	s.metrics.IncOrderPlaced()
	s.logg.Info(s.logg.WithField(ctx, "total", order.Total), "order.placed")
	return order.Clone(), nil
}

// UpdateOrderStatus changes only the status of an order.
func (s *Store) UpdateOrderStatus(ctx context.Context, id models.OrderID, status enums.OrderStatus) error {
	if !status.IsValid() {
		return pkgerrors.Newf(pkgerrors.CodeValidation, "unknown order status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.orders, func(o models.Order) bool { return o.ID == id })
	if idx < 0 {
		return pkgerrors.Newf(pkgerrors.CodeNotFound, "order %s not found", id)
	}
	s.orders[idx].Status = status

	s.logg.Info(s.logg.WithFields(s.logg.WithOrderID(ctx, string(id)), map[string]any{"status": status}), "order.status_updated")
	return nil
}
