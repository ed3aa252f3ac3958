package services

import (
	"context"
	"sync"

	"cbd-storefront/internal/models"

	"github.com/google/uuid"
)

// MockBackendService is an in-memory stand-in for the commerce backend, used
// by handler and service tests. A single customer is recognized for any
// non-empty token.
type MockBackendService struct {
	mu sync.Mutex

	Customer   *models.Customer
	Orders     []models.Order
	Carts      map[string]*models.Cart // keyed by customer id
	PromoCodes map[string]*models.PromoCode
	Referrals  map[string]*models.Referral

	// FailWith forces every call to return this error when set.
	FailWith error
}

// NewMockBackendService creates an empty mock backend.
func NewMockBackendService() *MockBackendService {
	return &MockBackendService{
		Carts:      make(map[string]*models.Cart),
		PromoCodes: make(map[string]*models.PromoCode),
		Referrals:  make(map[string]*models.Referral),
	}
}

func (m *MockBackendService) CurrentCustomer(_ context.Context, token string) (*models.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if token == "" || m.Customer == nil {
		return nil, models.ErrUnauthorized
	}
	customer := *m.Customer
	return &customer, nil
}

func (m *MockBackendService) CustomerOrders(_ context.Context, token string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if token == "" {
		return nil, models.ErrUnauthorized
	}
	return append([]models.Order(nil), m.Orders...), nil
}

func (m *MockBackendService) FindCartByCustomer(_ context.Context, customerID string) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	cart, ok := m.Carts[customerID]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *cart
	return &copied, nil
}

func (m *MockBackendService) CreateCart(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	copied := *cart
	copied.ID = uuid.NewString()
	m.Carts[cart.CustomerID] = &copied
	result := copied
	return &result, nil
}

func (m *MockBackendService) UpdateCart(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	if _, ok := m.Carts[cart.CustomerID]; !ok {
		return nil, models.ErrNotFound
	}
	copied := *cart
	m.Carts[cart.CustomerID] = &copied
	result := copied
	return &result, nil
}

func (m *MockBackendService) FindPromoCode(_ context.Context, code string) (*models.PromoCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	promo, ok := m.PromoCodes[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *promo
	return &copied, nil
}

func (m *MockBackendService) ValidateReferral(_ context.Context, code string) (*models.Referral, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWith != nil {
		return nil, m.FailWith
	}
	referral, ok := m.Referrals[code]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *referral
	return &copied, nil
}
