package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
)

// OrderController serves /orders. The includeCustomer query flag loads the customer.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (h *OrderController) Index(c *ctx.Context) {
	rows, err := h.service.List(c.Context(), c.QueryBool("includeCustomer"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Order{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *OrderController) Show(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Context(), id, c.QueryBool("includeCustomer"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *OrderController) Store(c *ctx.Context) {
	var in models.Order
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

func (h *OrderController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.Order
	if !c.DecodeJSON(&in) {
		return
	}

	row, err := h.service.Update(c.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *OrderController) Destroy(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Context(), id)
	deleted(c, removed, err)
}
