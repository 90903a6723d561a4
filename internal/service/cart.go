package service

import (
	"context"
	"errors"

	"taam-menu/internal/domain"
)

var ErrEmptyItemID = errors.New("cart item id is required")

// CartService applies the cart invariants on top of whichever store backs
// the session: unique item ids, quantity >= 1, zero-or-below removes.
type CartService struct {
	store CartStore
}

func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

func (s *CartService) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.store.Load(ctx, sessionID)
}

// AddItem increments the quantity of an existing line with the same id, or
// appends a new line with quantity 1.
func (s *CartService) AddItem(ctx context.Context, sessionID string, item domain.CartItem) (domain.Cart, error) {
	if item.ID == "" {
		return domain.Cart{}, ErrEmptyItemID
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ID == item.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		item.Quantity = 1
		cart.Items = append(cart.Items, item)
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// RemoveItem deletes the line with the given id; missing ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (domain.Cart, error) {
	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	for i, item := range cart.Items {
		if item.ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			break
		}
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

// UpdateQuantity sets the line's quantity; anything at or below zero behaves
// as RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (domain.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, itemID)
	}

	cart, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.Cart{}, err
	}

	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			break
		}
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return domain.Cart{}, err
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

var _ CartServiceInterface = (*CartService)(nil)
