package services

import (
	"context"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

type OrderItemService struct {
	items    repositories.Repository[models.OrderItem]
	orders   repositories.Repository[models.Order]
	products repositories.Repository[models.Product]
}

func NewOrderItemService(
	items repositories.Repository[models.OrderItem],
	orders repositories.Repository[models.Order],
	products repositories.Repository[models.Product],
) *OrderItemService {
	return &OrderItemService{items: items, orders: orders, products: products}
}

func (s *OrderItemService) List(ctx context.Context, withProduct bool) ([]models.OrderItem, error) {
	return s.items.FindAll(ctx, withProduct)
}

func (s *OrderItemService) Get(ctx context.Context, id uint, withProduct bool) (*models.OrderItem, error) {
	return find(ctx, s.items, "OrderItem", id, withProduct, ErrNotFound)
}

// Create resolves both the order and the product before inserting.
func (s *OrderItemService) Create(ctx context.Context, in *models.OrderItem) (*models.OrderItem, error) {
	order, err := find(ctx, s.orders, "Order", in.OrderRef(), false, ErrRelatedNotFound)
	if err != nil {
		return nil, err
	}
	product, err := find(ctx, s.products, "Product", in.ProductRef(), false, ErrRelatedNotFound)
	if err != nil {
		return nil, err
	}

	item := &models.OrderItem{
		OrderID:   order.ID,
		Order:     order,
		ProductID: product.ID,
		Product:   product,
		Quantity:  in.Quantity,
	}
	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("order item created", "order_item_id", item.ID, "order_id", item.OrderID, "product_id", item.ProductID)
	return item, nil
}

// Update overwrites quantity and re-resolves a supplied product reference.
// The order an item belongs to never changes. Order and product are always
// embedded in the result, like Create.
func (s *OrderItemService) Update(ctx context.Context, id uint, in *models.OrderItem) (*models.OrderItem, error) {
	item, err := find(ctx, s.items, "OrderItem", id, true, ErrNotFound)
	if err != nil {
		return nil, err
	}
	order, err := find(ctx, s.orders, "Order", item.OrderID, false, ErrRelatedNotFound)
	if err != nil {
		return nil, err
	}
	item.Order = order

	item.Quantity = in.Quantity

	if ref := in.ProductRef(); ref != 0 {
		product, err := find(ctx, s.products, "Product", ref, false, ErrRelatedNotFound)
		if err != nil {
			return nil, err
		}
		item.ProductID = product.ID
		item.Product = product
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("order item updated", "order_item_id", item.ID, "product_id", item.ProductID)
	return item, nil
}

func (s *OrderItemService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := remove(ctx, s.items, id)
	if ok {
		logger.WithCtx(ctx).Info("order item deleted", "order_item_id", id)
	}
	return ok, err
}
