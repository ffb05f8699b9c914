package routes

import (
	"github.com/shashiranjanraj/orderdesk/app/controllers"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
	"github.com/shashiranjanraj/orderdesk/pkg/router"
)

// resource is the handler set every entity exposes.
type resource interface {
	Index(c *ctx.Context)
	Show(c *ctx.Context)
	Store(c *ctx.Context)
	Update(c *ctx.Context)
	Destroy(c *ctx.Context)
}

// RegisterAPI mounts the five CRUD resources at the root path.
func RegisterAPI(r *router.Router, svc *services.Set) {
	mount(r, "categories", controllers.NewCategoryController(svc.Categories))
	mount(r, "products", controllers.NewProductController(svc.Products))
	mount(r, "customers", controllers.NewCustomerController(svc.Customers))
	mount(r, "orders", controllers.NewOrderController(svc.Orders))
	mount(r, "order-items", controllers.NewOrderItemController(svc.OrderItems))
}

func mount(r *router.Router, name string, h resource) {
	g := r.Group("/" + name)
	g.Get("/", name+".index", ctx.Wrap(h.Index))
	g.Post("/", name+".store", ctx.Wrap(h.Store))
	g.Get("/{id}", name+".show", ctx.Wrap(h.Show))
	g.Put("/{id}", name+".update", ctx.Wrap(h.Update))
	g.Delete("/{id}", name+".destroy", ctx.Wrap(h.Destroy))
}
