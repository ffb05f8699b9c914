package services

import (
	"context"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

type CustomerService struct {
	customers repositories.Repository[models.Customer]
}

func NewCustomerService(customers repositories.Repository[models.Customer]) *CustomerService {
	return &CustomerService{customers: customers}
}

func (s *CustomerService) List(ctx context.Context, withOrders bool) ([]models.Customer, error) {
	return s.customers.FindAll(ctx, withOrders)
}

func (s *CustomerService) Get(ctx context.Context, id uint, withOrders bool) (*models.Customer, error) {
	return find(ctx, s.customers, "Customer", id, withOrders, ErrNotFound)
}

func (s *CustomerService) Create(ctx context.Context, in *models.Customer) (*models.Customer, error) {
	c := &models.Customer{Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("customer created", "customer_id", c.ID)
	return c, nil
}

// Update overwrites name, email and phone, blank values included.
func (s *CustomerService) Update(ctx context.Context, id uint, in *models.Customer) (*models.Customer, error) {
	c, err := find(ctx, s.customers, "Customer", id, false, ErrNotFound)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	if err := s.customers.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("customer updated", "customer_id", c.ID)
	return c, nil
}

// Delete removes the customer with its orders and their items.
func (s *CustomerService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := remove(ctx, s.customers, id)
	if ok {
		logger.WithCtx(ctx).Info("customer deleted", "customer_id", id)
	}
	return ok, err
}
