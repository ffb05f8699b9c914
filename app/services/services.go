// Package services holds the per-entity business rules: existence checks,
// reference resolution by ID and field overwrites on update.
package services

import "github.com/shashiranjanraj/orderdesk/app/repositories"

// Set bundles one service per entity.
type Set struct {
	Categories *CategoryService
	Products   *ProductService
	Customers  *CustomerService
	Orders     *OrderService
	OrderItems *OrderItemService
}

func New(repos *repositories.Set) *Set {
	return &Set{
		Categories: NewCategoryService(repos.Categories),
		Products:   NewProductService(repos.Products, repos.Categories),
		Customers:  NewCustomerService(repos.Customers),
		Orders:     NewOrderService(repos.Orders, repos.Customers),
		OrderItems: NewOrderItemService(repos.OrderItems, repos.Orders, repos.Products),
	}
}
