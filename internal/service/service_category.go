package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/inventory-keeper/internal/logger"
	"github.com/MKhiriev/inventory-keeper/internal/store"
	"github.com/MKhiriev/inventory-keeper/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categoryRepository: categoryRepository, logger: logger}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryService.ListCategories").Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}
	return categories, nil
}

// CreateCategory stores a new label. Labels are unique case-insensitively.
func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)
	category.Label = strings.TrimSpace(category.Label)

	_, err := s.categoryRepository.FindCategoryByLabel(ctx, category.Label)
	switch {
	case err == nil:
		log.Warn().Str("func", "categoryService.CreateCategory").Str("label", category.Label).Msg("category already exists")
		return models.Category{}, store.ErrCategoryAlreadyExists
	case !errors.Is(err, store.ErrCategoryNotFound):
		log.Err(err).Str("func", "categoryService.CreateCategory").Msg("category search failed")
		return models.Category{}, fmt.Errorf("category search failed: %w", err)
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("func", "categoryService.CreateCategory").Str("label", category.Label).Msg("creating category failed")
		return models.Category{}, fmt.Errorf("creating category failed: %w", err)
	}

	return created, nil
}
