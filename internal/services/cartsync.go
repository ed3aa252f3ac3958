package services

import (
	"context"
	"fmt"
	"time"

	"cbd-storefront/internal/models"
)

// CartSyncService reconciles the client-held cart with the server-persisted
// record. The server cart wins on fetch; writes are full replaces with
// last-write-wins semantics. Concurrent syncs from multiple devices can race
// and the later write silently discards the earlier one.
type CartSyncService struct {
	backend BackendInterface
	now     func() time.Time
}

// NewCartSyncService creates a new cart sync service.
func NewCartSyncService(backend BackendInterface) *CartSyncService {
	return &CartSyncService{
		backend: backend,
		now:     time.Now,
	}
}

// Fetch returns the persisted cart for a customer, or the empty cart shape
// when none exists. Absence of a cart is a valid state, not an error.
func (s *CartSyncService) Fetch(ctx context.Context, customerID string) (models.CartSyncResponse, error) {
	cart, err := s.backend.FindCartByCustomer(ctx, customerID)
	if err != nil {
		if IsNotFound(err) {
			return models.EmptyCartSyncResponse(), nil
		}
		return models.EmptyCartSyncResponse(), fmt.Errorf("failed to fetch cart: %w", err)
	}

	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}

	lastUpdated := cart.LastUpdated
	return models.CartSyncResponse{
		Items:       items,
		Shipping:    cart.Shipping,
		PromoCode:   cart.PromoCode,
		LastUpdated: &lastUpdated,
	}, nil
}

// Replace overwrites the customer's persisted cart with the submitted
// payload, creating the record on first sync. Items, shipping, and promo code
// are replaced wholesale; there is no per-item merge.
func (s *CartSyncService) Replace(ctx context.Context, customerID string, req models.CartSyncRequest) error {
	items := req.Items
	if items == nil {
		items = []models.CartItem{}
	}

	existing, err := s.backend.FindCartByCustomer(ctx, customerID)
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to look up cart: %w", err)
	}

	if existing == nil {
		cart := &models.Cart{
			CustomerID:  customerID,
			Items:       items,
			Shipping:    req.Shipping,
			PromoCode:   req.PromoCode,
			LastUpdated: s.now(),
		}
		if _, err := s.backend.CreateCart(ctx, cart); err != nil {
			return fmt.Errorf("failed to create cart: %w", err)
		}
		return nil
	}

	existing.Items = items
	existing.Shipping = req.Shipping
	existing.PromoCode = req.PromoCode
	existing.LastUpdated = s.now()

	if _, err := s.backend.UpdateCart(ctx, existing); err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}
