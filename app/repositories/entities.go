package repositories

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/pkg/orm"
)

// Eager relation loaded by each repository when withRelations is set.
const (
	CategoryRelation  = "Products"
	CustomerRelation  = "Orders"
	ProductRelation   = "Category"
	OrderRelation     = "Customer"
	OrderItemRelation = "Product"
)

// NewCategoryRepository deletes a category's products with it. Products that
// are still on an order item make the whole delete fail.
func NewCategoryRepository(db *gorm.DB, opts ...orm.Option) Repository[models.Category] {
	return newRepository[models.Category](db, CategoryRelation, func(tx *gorm.DB, id uint) error {
		return tx.Where("category_id = ?", id).Delete(&models.Product{}).Error
	}, opts...)
}

func NewProductRepository(db *gorm.DB, opts ...orm.Option) Repository[models.Product] {
	return newRepository[models.Product](db, ProductRelation, nil, opts...)
}

// NewCustomerRepository deletes a customer's orders, and their items, with it.
func NewCustomerRepository(db *gorm.DB, opts ...orm.Option) Repository[models.Customer] {
	return newRepository[models.Customer](db, CustomerRelation, func(tx *gorm.DB, id uint) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).Where("customer_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("customer_id = ?", id).Delete(&models.Order{}).Error
	}, opts...)
}

// NewOrderRepository deletes an order's items with it.
func NewOrderRepository(db *gorm.DB, opts ...orm.Option) Repository[models.Order] {
	return newRepository[models.Order](db, OrderRelation, func(tx *gorm.DB, id uint) error {
		return tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error
	}, opts...)
}

func NewOrderItemRepository(db *gorm.DB, opts ...orm.Option) Repository[models.OrderItem] {
	return newRepository[models.OrderItem](db, OrderItemRelation, nil, opts...)
}

// Set bundles one repository per entity.
type Set struct {
	Categories Repository[models.Category]
	Products   Repository[models.Product]
	Customers  Repository[models.Customer]
	Orders     Repository[models.Order]
	OrderItems Repository[models.OrderItem]
}

// NewSet builds every repository over db with the same store options.
func NewSet(db *gorm.DB, opts ...orm.Option) *Set {
	return &Set{
		Categories: NewCategoryRepository(db, opts...),
		Products:   NewProductRepository(db, opts...),
		Customers:  NewCustomerRepository(db, opts...),
		Orders:     NewOrderRepository(db, opts...),
		OrderItems: NewOrderItemRepository(db, opts...),
	}
}
