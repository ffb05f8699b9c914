package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
)

// CustomerController serves /customers. The includeOrders query flag loads the orders.
type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (h *CustomerController) Index(c *ctx.Context) {
	rows, err := h.service.List(c.Context(), c.QueryBool("includeOrders"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Customer{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CustomerController) Show(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Context(), id, c.QueryBool("includeOrders"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CustomerController) Store(c *ctx.Context) {
	var in models.Customer
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

// Update is not validated: blank fields overwrite stored ones.
func (h *CustomerController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.Customer
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

func (h *CustomerController) Destroy(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Context(), id)
	deleted(c, removed, err)
}
