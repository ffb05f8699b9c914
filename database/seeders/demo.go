package seeders

import (
	"context"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
)

func init() {
	Register("demo", SeedDemo)
}

// SeedDemo creates a small menu, one customer and one order. It does
// nothing when any category already exists, so reseeding is harmless.
func SeedDemo(ctx context.Context, svc *services.Set) error {
	existing, err := svc.Categories.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	drinks, err := svc.Categories.Create(ctx, &models.Category{Name: "Drinks"})
	if err != nil {
		return err
	}
	mains, err := svc.Categories.Create(ctx, &models.Category{Name: "Mains"})
	if err != nil {
		return err
	}

	cola, err := svc.Products.Create(ctx, &models.Product{
		Name: "Cola", Price: 2.5, Description: "Chilled, 330ml", CategoryID: drinks.ID,
	})
	if err != nil {
		return err
	}
	burger, err := svc.Products.Create(ctx, &models.Product{
		Name: "Burger", Price: 9.9, Description: "Beef patty, brioche bun", CategoryID: mains.ID,
	})
	if err != nil {
		return err
	}

	ana, err := svc.Customers.Create(ctx, &models.Customer{
		Name: "Ana", Email: "ana@example.com", Phone: "555-0100",
	})
	if err != nil {
		return err
	}

	order, err := svc.Orders.Create(ctx, &models.Order{CustomerID: ana.ID})
	if err != nil {
		return err
	}

	for _, line := range []struct {
		product  *models.Product
		quantity int
	}{{cola, 3}, {burger, 1}} {
		if _, err := svc.OrderItems.Create(ctx, &models.OrderItem{
			OrderID: order.ID, ProductID: line.product.ID, Quantity: line.quantity,
		}); err != nil {
			return err
		}
	}
	return nil
}
