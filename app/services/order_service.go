package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

type OrderService struct {
	orders    repositories.Repository[models.Order]
	customers repositories.Repository[models.Customer]
	now       func() time.Time
}

func NewOrderService(orders repositories.Repository[models.Order], customers repositories.Repository[models.Customer]) *OrderService {
	return &OrderService{orders: orders, customers: customers, now: time.Now}
}

func (s *OrderService) List(ctx context.Context, withCustomer bool) ([]models.Order, error) {
	return s.orders.FindAll(ctx, withCustomer)
}

func (s *OrderService) Get(ctx context.Context, id uint, withCustomer bool) (*models.Order, error) {
	return find(ctx, s.orders, "Order", id, withCustomer, ErrNotFound)
}

// Create attaches the stored customer, never the one in the payload, and
// stamps orderDate with the current time when it is unset.
func (s *OrderService) Create(ctx context.Context, in *models.Order) (*models.Order, error) {
	customer, err := find(ctx, s.customers, "Customer", in.CustomerRef(), false, ErrRelatedNotFound)
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		CustomerID: customer.ID,
		Customer:   customer,
		OrderDate:  in.OrderDate,
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = s.now().UTC()
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("order created", "order_id", o.ID, "customer_id", o.CustomerID)
	return o, nil
}

// Update overwrites orderDate when supplied and re-resolves a supplied
// customer reference; otherwise the order keeps its customer. The result
// always embeds the customer, like Create.
func (s *OrderService) Update(ctx context.Context, id uint, in *models.Order) (*models.Order, error) {
	o, err := find(ctx, s.orders, "Order", id, true, ErrNotFound)
	if err != nil {
		return nil, err
	}

	if !in.OrderDate.IsZero() {
		o.OrderDate = in.OrderDate
	}

	if ref := in.CustomerRef(); ref != 0 {
		customer, err := find(ctx, s.customers, "Customer", ref, false, ErrRelatedNotFound)
		if err != nil {
			return nil, err
		}
		o.CustomerID = customer.ID
		o.Customer = customer
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("order updated", "order_id", o.ID, "customer_id", o.CustomerID)
	return o, nil
}

// Delete removes the order and its items.
func (s *OrderService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := remove(ctx, s.orders, id)
	if ok {
		logger.WithCtx(ctx).Info("order deleted", "order_id", id)
	}
	return ok, err
}
