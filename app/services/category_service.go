package services

import (
	"context"

	"github.com/shashiranjanraj/orderdesk/app/models"
	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

type CategoryService struct {
	categories repositories.Repository[models.Category]
}

func NewCategoryService(categories repositories.Repository[models.Category]) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category, with products when withProducts is set.
func (s *CategoryService) List(ctx context.Context, withProducts bool) ([]models.Category, error) {
	return s.categories.FindAll(ctx, withProducts)
}

func (s *CategoryService) Get(ctx context.Context, id uint, withProducts bool) (*models.Category, error) {
	return find(ctx, s.categories, "Category", id, withProducts, ErrNotFound)
}

func (s *CategoryService) Create(ctx context.Context, in *models.Category) (*models.Category, error) {
	c := &models.Category{Name: in.Name}
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("category created", "category_id", c.ID)
	return c, nil
}

// Update overwrites only the name.
func (s *CategoryService) Update(ctx context.Context, id uint, in *models.Category) (*models.Category, error) {
	c, err := find(ctx, s.categories, "Category", id, false, ErrNotFound)
	if err != nil {
		return nil, err
	}

	c.Name = in.Name
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.WithCtx(ctx).Info("category updated", "category_id", c.ID)
	return c, nil
}

// Delete removes the category and its products.
func (s *CategoryService) Delete(ctx context.Context, id uint) (bool, error) {
	ok, err := remove(ctx, s.categories, id)
	if ok {
		logger.WithCtx(ctx).Info("category deleted", "category_id", id)
	}
	return ok, err
}
