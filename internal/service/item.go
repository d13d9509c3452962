package service

import (
	"context"
	"errors"
	"net/url"

	"github.com/vaultpass/vaultpass-web/internal/model"
)

var ErrIDRequired = errors.New("id is required")

// ItemService wraps the upstream /items endpoints.
type ItemService struct {
	api API
}

// NewItemService creates a new ItemService.
func NewItemService(api API) *ItemService {
	return &ItemService{api: api}
}

// List returns all items of the logged-in user.
func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	items := []model.Item{}
	if err := s.api.Get(ctx, "/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create stores a new item.
func (s *ItemService) Create(ctx context.Context, in model.ItemInput) (model.Item, error) {
	if in.Category == "" {
		in.Category = model.CategoryNone
	}
	var item model.Item
	err := s.api.Post(ctx, "/items", in, &item)
	return item, err
}

// Update replaces the editable fields of an item.
func (s *ItemService) Update(ctx context.Context, id string, in model.ItemInput) (model.Item, error) {
	if id == "" {
		return model.Item{}, ErrIDRequired
	}
	var item model.Item
	err := s.api.Patch(ctx, "/items/"+url.PathEscape(id), in, &item)
	return item, err
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.api.Delete(ctx, "/items/"+url.PathEscape(id), nil)
}
