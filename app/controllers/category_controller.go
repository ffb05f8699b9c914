package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
)

// CategoryController serves /categories. The includeProducts query flag loads the products.
type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func (h *CategoryController) Index(c *ctx.Context) {
	rows, err := h.service.List(c.Context(), c.QueryBool("includeProducts"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Category{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *CategoryController) Show(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Context(), id, c.QueryBool("includeProducts"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *CategoryController) Store(c *ctx.Context) {
	var in models.Category
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

// Update validates like Store since name is the only field.
func (h *CategoryController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in models.Category
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

func (h *CategoryController) Destroy(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Context(), id)
	deleted(c, removed, err)
}
