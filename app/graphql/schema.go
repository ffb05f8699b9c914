// Package graphql exposes a read-only GraphQL view of the entities. Every
// resolver delegates to the services; there are no mutations.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/orderdesk/app/services"
	gql "github.com/shashiranjanraj/orderdesk/pkg/graphql"
)

type types struct {
	category, product, customer, order, orderItem *graphql.Object
}

func newTypes() *types {
	t := &types{}

	t.category = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"name": &graphql.Field{Type: graphql.String},
				// null unless requested with includeProducts
				"products": &graphql.Field{Type: graphql.NewList(t.product)},
			}
		}),
	})

	t.product = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"name":        &graphql.Field{Type: graphql.String},
				"price":       &graphql.Field{Type: graphql.Float},
				"description": &graphql.Field{Type: graphql.String},
				"categoryId":  &graphql.Field{Type: graphql.Int},
				"category":    &graphql.Field{Type: t.category},
			}
		}),
	})

	t.customer = graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"name":   &graphql.Field{Type: graphql.String},
				"email":  &graphql.Field{Type: graphql.String},
				"phone":  &graphql.Field{Type: graphql.String},
				"orders": &graphql.Field{Type: graphql.NewList(t.order)},
			}
		}),
	})

	t.order = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"customerId": &graphql.Field{Type: graphql.Int},
				"customer":   &graphql.Field{Type: t.customer},
				"orderDate":  &graphql.Field{Type: graphql.DateTime},
			}
		}),
	})

	t.orderItem = graphql.NewObject(graphql.ObjectConfig{
		Name: "OrderItem",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
				"orderId":   &graphql.Field{Type: graphql.Int},
				"productId": &graphql.Field{Type: graphql.Int},
				"product":   &graphql.Field{Type: t.product},
				"quantity":  &graphql.Field{Type: graphql.Int},
			}
		}),
	})

	return t
}

// NewSchema builds the query schema over svc.
func NewSchema(svc *services.Set) (graphql.Schema, error) {
	t := newTypes()

	fields := graphql.Fields{}
	addEntity(fields, "categories", "category", "includeProducts", t.category, svc.Categories.List, svc.Categories.Get)
	addEntity(fields, "products", "product", "includeCategory", t.product, svc.Products.List, svc.Products.Get)
	addEntity(fields, "customers", "customer", "includeOrders", t.customer, svc.Customers.List, svc.Customers.Get)
	addEntity(fields, "orders", "order", "includeCustomer", t.order, svc.Orders.List, svc.Orders.Get)
	addEntity(fields, "orderItems", "orderItem", "includeProduct", t.orderItem, svc.OrderItems.List, svc.OrderItems.Get)

	return gql.NewSchema(graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	}))
}
