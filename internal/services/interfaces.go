package services

import (
	"context"

	"cbd-storefront/internal/models"
)

// BackendInterface defines the operations this service needs from the
// commerce backend. The backend owns all persistence; everything here is a
// request/response call over HTTP.
type BackendInterface interface {
	CurrentCustomer(ctx context.Context, token string) (*models.Customer, error)
	CustomerOrders(ctx context.Context, token string) ([]models.Order, error)
	FindCartByCustomer(ctx context.Context, customerID string) (*models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error)
	FindPromoCode(ctx context.Context, code string) (*models.PromoCode, error)
	ValidateReferral(ctx context.Context, code string) (*models.Referral, error)
}

// LoyaltyInterface defines the loyalty computations used by checkout.
type LoyaltyInterface interface {
	Status(ctx context.Context, token string) (*models.LoyaltyStatus, error)
	Apply(ctx context.Context, token string, cartTotal, shippingCost float64) (*LoyaltyApplication, error)
}

// CartSyncInterface defines client/server cart reconciliation.
type CartSyncInterface interface {
	Fetch(ctx context.Context, customerID string) (models.CartSyncResponse, error)
	Replace(ctx context.Context, customerID string, req models.CartSyncRequest) error
}
