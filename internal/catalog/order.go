// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"giftshop/internal/lifecycle"
	"giftshop/internal/models"
)

const defaultOrderLimit = 50

func orderNotFound() *Error {
	return NotFound("ORDER_NOT_FOUND", "order not found")
}

func invalidTransition(from, to string) *Error {
	return Conflict("INVALID_TRANSITION", "cannot move from "+from+" to "+to)
}

// CreateOrder stores a checkout as pending and notifies the shop.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (_ models.Order, err error) {
	ctx, end := s.startSpan(ctx, "CreateOrder")
	defer end(&err)

	in = normalizeCreateOrder(in)
	if verr := validateCreateOrder(in); verr != nil {
		return models.Order{}, verr
	}

	now := s.now()
	o, rerr := s.orders.Create(ctx, models.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		TotalAmount:     in.TotalAmount,
		Items:           in.Items,
		Status:          lifecycle.Order.Initial(),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if rerr != nil {
		return models.Order{}, s.internal(ctx, "create order", rerr)
	}

	s.notify(ctx, Notification{
		Event:   EventOrderCreated,
		Subject: "New order #" + strconv.FormatInt(o.ID, 10),
		ReplyTo: o.CustomerEmail,
		Fields: map[string]string{
			"orderId":      strconv.FormatInt(o.ID, 10),
			"customerName": o.CustomerName,
			"totalAmount":  o.TotalAmount.StringFixed(2),
			"items":        strconv.Itoa(len(o.Items)),
		},
	})
	return o, nil
}

// ListOrders returns orders newest first. An unknown status filter is
// rejected rather than silently matching nothing.
func (s *Service) ListOrders(ctx context.Context, f OrderFilter) (_ []models.Order, err error) {
	ctx, end := s.startSpan(ctx, "ListOrders")
	defer end(&err)

	f.Status = models.OrderStatus(strings.TrimSpace(string(f.Status)))
	if f.Status != "" && !lifecycle.Order.Valid(f.Status) {
		return nil, invalidStatus(lifecycle.Order.Strings())
	}
	f.Email = normalizeEmail(f.Email)
	f.Page = f.Page.withDefault(defaultOrderLimit)

	orders, rerr := s.orders.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list orders", rerr)
	}
	return orders, nil
}

// ListOrdersByEmail is the customer's "my orders" lookup.
func (s *Service) ListOrdersByEmail(ctx context.Context, email string, page Page) (_ []models.Order, err error) {
	ctx, end := s.startSpan(ctx, "ListOrdersByEmail")
	defer end(&err)

	email = normalizeEmail(email)
	if email == "" {
		return nil, Validation("MISSING_EMAIL", "email", "email is required")
	}

	orders, rerr := s.orders.List(ctx, OrderFilter{Email: email, Page: page.withDefault(defaultOrderLimit)})
	if rerr != nil {
		return nil, s.internal(ctx, "list orders by email", rerr)
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (_ models.Order, err error) {
	ctx, end := s.startSpan(ctx, "GetOrder")
	defer end(&err)

	o, rerr := s.orders.Get(ctx, id)
	if rerr != nil {
		return models.Order{}, s.repoError(ctx, "get order", rerr, orderNotFound())
	}
	return o, nil
}

// UpdateOrderStatus moves an order to status and stamps updatedAt.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, status string) (_ models.Order, err error) {
	ctx, end := s.startSpan(ctx, "UpdateOrderStatus")
	defer end(&err)

	next := models.OrderStatus(strings.TrimSpace(status))
	if next == "" {
		return models.Order{}, missingStatus()
	}
	if !lifecycle.Order.Valid(next) {
		return models.Order{}, invalidStatus(lifecycle.Order.Strings())
	}

	current, rerr := s.orders.Get(ctx, id)
	if rerr != nil {
		return models.Order{}, s.repoError(ctx, "get order", rerr, orderNotFound())
	}
	if !lifecycle.Order.IsTransitionAllowed(current.Status, next) {
		return models.Order{}, invalidTransition(string(current.Status), string(next))
	}

	o, rerr := s.orders.UpdateStatus(ctx, id, next, s.now())
	if rerr != nil {
		return models.Order{}, s.repoError(ctx, "update order status", rerr, orderNotFound())
	}
	s.log(ctx).Info("order status changed",
		zap.Int64("order_id", id),
		zap.String("from", string(current.Status)),
		zap.String("to", string(next)),
	)
	return o, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) (_ models.Order, err error) {
	ctx, end := s.startSpan(ctx, "DeleteOrder")
	defer end(&err)

	o, rerr := s.orders.Delete(ctx, id)
	if rerr != nil {
		return models.Order{}, s.repoError(ctx, "delete order", rerr, orderNotFound())
	}
	return o, nil
}

func missingStatus() *Error {
	return Validation("MISSING_STATUS", "status", "status is required")
}

func invalidStatus(allowed []string) *Error {
	return Validation("INVALID_STATUS", "status", "status must be one of: "+strings.Join(allowed, ", "))
}
