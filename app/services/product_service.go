package services

import (
	"context"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

type ProductService struct {
	products   repositories.Repository[models.Product]
	categories repositories.Repository[models.Category]
}

func NewProductService(products repositories.Repository[models.Product], categories repositories.Repository[models.Category]) *ProductService {
	return &ProductService{products: products, categories: categories}
}

func (s *ProductService) List(ctx context.Context, withCategory bool) ([]models.Product, error) {
	return s.products.FindAll(ctx, withCategory)
}

func (s *ProductService) Get(ctx context.Context, id uint, withCategory bool) (*models.Product, error) {
	return find(ctx, s.products, "Product", id, withCategory, ErrNotFound)
}

// Create resolves the referenced category before inserting.
func (s *ProductService) Create(ctx context.Context, in *models.Product) (*models.Product, error) {
	category, err := find(ctx, s.categories, "Category", in.CategoryRef(), false, ErrRelatedNotFound)
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
		CategoryID:  category.ID,
		Category:    category,
	}
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("product created", "product_id", p.ID, "category_id", p.CategoryID)
	return p, nil
}

// Update overwrites the scalar fields. A supplied category reference is
// re-resolved; without one the product keeps its category.
func (s *ProductService) Update(ctx context.Context, id uint, in *models.Product) (*models.Product, error) {
	p, err := find(ctx, s.products, "Product", id, true, ErrNotFound)
	if err != nil {
		return nil, err
	}

	p.Name = in.Name
	p.Price = in.Price
	p.Description = in.Description

	if ref := in.CategoryRef(); ref != 0 {
		category, err := find(ctx, s.categories, "Category", ref, false, ErrRelatedNotFound)
		if err != nil {
			return nil, err
		}
		p.CategoryID = category.ID
		p.Category = category
	}

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("product updated", "product_id", p.ID, "category_id", p.CategoryID)
	return p, nil
}

// Delete fails with ErrConstraint while the product is on an order item.
func (s *ProductService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := remove(ctx, s.products, id)
	if ok {
		logger.WithCtx(ctx).Info("product deleted", "product_id", id)
	}
	return ok, err
}
