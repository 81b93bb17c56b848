package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/models"
	"github.com/yeremiapane/foodpoint-pos/repositories"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type CreateMenuItemInput struct {
	Name     string
	Category string
	Price    float64
	Image    *multipart.FileHeader
}

type MenuService struct {
	items    repositories.MenuItemRepository
	images   ImageStorage
	notifier Notifier
}

func NewMenuService(items repositories.MenuItemRepository, images ImageStorage, notifier Notifier) *MenuService {
	return &MenuService{
		items:    items,
		images:   images,
		notifier: notifier,
	}
}

// Create stores the image first, then the row. The image is removed again if the row cannot be written.
func (s *MenuService) Create(ctx context.Context, in CreateMenuItemInput) (models.MenuItem, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" {
		return models.MenuItem{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if category == "" {
		return models.MenuItem{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if !validPrice(in.Price) {
		return models.MenuItem{}, fmt.Errorf("%w: price must be >= 0 with at most 2 decimals", ErrValidation)
	}
	if in.Image == nil {
		return models.MenuItem{}, fmt.Errorf("%w: image is required", ErrValidation)
	}

	url, err := s.images.Save(in.Image)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", ErrImageWrite, err)
	}

	item := models.MenuItem{
		Name:     name,
		Category: category,
		Price:    in.Price,
		ImageUrl: &url,
	}
	if err := s.items.Create(ctx, &item); err != nil {
		if rmErr := s.images.Remove(url); rmErr != nil {
			utils.ErrorLogger.WithError(rmErr).WithField("image", url).Warn("failed to remove orphaned image")
		}
		return models.MenuItem{}, err
	}

	s.notifier.Publish(kds.EventMenuItemCreated, item)
	return item, nil
}

// List returns every menu item, or only one category when category is set.
func (s *MenuService) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	category = strings.TrimSpace(category)
	if category != "" {
		return s.items.FindByCategory(ctx, category)
	}
	return s.items.FindAll(ctx)
}

func (s *MenuService) Get(ctx context.Context, id uint) (models.MenuItem, error) {
	return s.items.FindByID(ctx, id)
}

// Delete reports false when no item has the id. Image removal is best-effort.
func (s *MenuService) Delete(ctx context.Context, id uint) (bool, error) {
	item, err := s.items.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if item.ImageUrl != nil && *item.ImageUrl != "" {
		if err := s.images.Remove(*item.ImageUrl); err != nil {
			utils.ErrorLogger.WithFields(logrus.Fields{
				"menu_item_id": id,
				"image":        item.ImageFile(),
			}).WithError(err).Warn("failed to delete image")
		}
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	s.notifier.Publish(kds.EventMenuItemDeleted, map[string]uint{"id": id})
	return true, nil
}
