package service

import (
	"context"
	"net/url"

	"github.com/vaultpass/vaultpass-web/internal/model"
)

// CardService wraps the upstream /cards endpoints.
type CardService struct {
	api API
}

// NewCardService creates a new CardService.
func NewCardService(api API) *CardService {
	return &CardService{api: api}
}

// List returns all cards of the logged-in user.
func (s *CardService) List(ctx context.Context) ([]model.Card, error) {
	cards := []model.Card{}
	if err := s.api.Get(ctx, "/cards", &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// Create stores a new card.
func (s *CardService) Create(ctx context.Context, in model.CardInput) (model.Card, error) {
	if in.Brand == "" {
		in.Brand = model.BrandOther
	}
	var card model.Card
	err := s.api.Post(ctx, "/cards", in, &card)
	return card, err
}

// Update replaces the editable fields of a card.
func (s *CardService) Update(ctx context.Context, id string, in model.CardInput) (model.Card, error) {
	if id == "" {
		return model.Card{}, ErrIDRequired
	}
	var card model.Card
	err := s.api.Patch(ctx, "/cards/"+url.PathEscape(id), in, &card)
	return card, err
}

// Delete removes a card.
func (s *CardService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return s.api.Delete(ctx, "/cards/"+url.PathEscape(id), nil)
}
