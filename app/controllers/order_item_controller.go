package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
)

// OrderItemController serves /order-items. The includeProduct query flag loads the product.
type OrderItemController struct {
	service *services.OrderItemService
}

func NewOrderItemController(service *services.OrderItemService) *OrderItemController {
	return &OrderItemController{service: service}
}

func (h *OrderItemController) Index(c *ctx.Context) {
	rows, err := h.service.List(c.Context(), c.QueryBool("includeProduct"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.OrderItem{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *OrderItemController) Show(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Context(), id, c.QueryBool("includeProduct"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *OrderItemController) Store(c *ctx.Context) {
	var in models.OrderItem
	if !c.BindJSON(&in) {
		return
	}

	row, err := h.service.Create(c.Context(), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Update ignores any order reference in the body.
func (h *OrderItemController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.OrderItem
	if !c.BindJSON(&in) {
		return
	}

	row, err := h.service.Update(c.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *OrderItemController) Destroy(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Context(), id)
	deleted(c, removed, err)
}
