package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/services"
	"github.com/shashiranjanraj/orderdesk/pkg/ctx"
)

// ProductController serves /products. The includeCategory query flag loads the category.
type ProductController struct {
	service *services.ProductService
}

// productRequest is the create/update body. Price is a pointer so a missing
// price fails validation instead of saving as zero.
type productRequest struct {
	Name        string           `json:"name"        validate:"required,max=255"`
	Price       *float64         `json:"price"       validate:"required,gte=0"`
	Description string           `json:"description" validate:"required"`
	CategoryID  uint             `json:"categoryId"`
	Category    *models.Category `json:"category"`
}

func (r *productRequest) product() *models.Product {
	return &models.Product{
		Name:        r.Name,
		Price:       *r.Price,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Category:    r.Category,
	}
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (h *ProductController) Index(c *ctx.Context) {
	rows, err := h.service.List(c.Context(), c.QueryBool("includeCategory"))
	if err != nil {
		respondError(c, err)
		return
	}
	if rows == nil {
		rows = []models.Product{}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductController) Show(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Context(), id, c.QueryBool("includeCategory"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ProductController) Store(c *ctx.Context) {
	var in productRequest
	if !c.BindJSON(&in) {
		return
	}

	row, err := h.service.Create(c.Context(), in.product())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ProductController) Update(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var in productRequest
	if !c.BindJSON(&in) {
		return
	}

	row, err := h.service.Update(c.Context(), id, in.product())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ProductController) Destroy(c *ctx.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	removed, err := h.service.Delete(c.Context(), id)
	deleted(c, removed, err)
}
