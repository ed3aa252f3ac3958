package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"cbd-storefront/internal/config"
	"cbd-storefront/internal/models"
)

// BackendService talks to the CMS/commerce backend over HTTP. It is the only
// place in the service that performs I/O for customer, order, and cart data.
type BackendService struct {
	config  config.BackendConfig
	client  *http.Client
	baseURL string
}

// NewBackendService creates a new commerce backend client.
func NewBackendService(cfg config.BackendConfig) *BackendService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &BackendService{
		config:  cfg,
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}
}

// BackendError represents an error response from the commerce backend.
type BackendError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Message)
}

// CurrentCustomer resolves the customer identified by the given auth token.
func (s *BackendService) CurrentCustomer(ctx context.Context, token string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.doJSON(ctx, http.MethodGet, "/api/customers/me", token, nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CustomerOrders returns the full order history of the token's customer.
func (s *BackendService) CustomerOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.doJSON(ctx, http.MethodGet, "/api/orders/me", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindCartByCustomer looks up the persisted cart for a customer. Returns
// models.ErrNotFound when the customer has never synced a cart.
func (s *BackendService) FindCartByCustomer(ctx context.Context, customerID string) (*models.Cart, error) {
	path := "/api/carts?customerId=" + url.QueryEscape(customerID)

	var carts []models.Cart
	if err := s.doJSON(ctx, http.MethodGet, path, "", nil, &carts); err != nil {
		return nil, err
	}
	if len(carts) == 0 {
		return nil, models.ErrNotFound
	}
	// One cart per customer by convention; take the first if the backend
	// ever returns more.
	return &carts[0], nil
}

// CreateCart persists a new cart record for a customer.
func (s *BackendService) CreateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	var created models.Cart
	if err := s.doJSON(ctx, http.MethodPost, "/api/carts", "", cart, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateCart overwrites an existing cart record.
func (s *BackendService) UpdateCart(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if cart.ID == "" {
		return nil, fmt.Errorf("update cart: %w: missing cart id", models.ErrInvalidInput)
	}

	var updated models.Cart
	path := "/api/carts/" + url.PathEscape(cart.ID)
	if err := s.doJSON(ctx, http.MethodPut, path, "", cart, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindPromoCode looks up a promo code. Unknown codes map to models.ErrNotFound.
func (s *BackendService) FindPromoCode(ctx context.Context, code string) (*models.PromoCode, error) {
	var promo models.PromoCode
	path := "/api/promo-codes/" + url.PathEscape(code)
	if err := s.doJSON(ctx, http.MethodGet, path, "", nil, &promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

// ValidateReferral asks the backend whether a referral code is live and what
// rate it grants.
func (s *BackendService) ValidateReferral(ctx context.Context, code string) (*models.Referral, error) {
	var referral models.Referral
	path := "/api/referrals/" + url.PathEscape(code)
	if err := s.doJSON(ctx, http.MethodGet, path, "", nil, &referral); err != nil {
		return nil, err
	}
	return &referral, nil
}

// doJSON performs a backend request with optional bearer token and JSON body,
// decoding a JSON response into out when out is non-nil.
func (s *BackendService) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create backend request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	if out != nil {
		if err := json.Unmarshal(bodyBytes, out); err != nil {
			return fmt.Errorf("failed to decode backend response: %w", err)
		}
	}

	return nil
}

// handleAPIError maps backend error responses onto the service's error
// taxonomy.
func (s *BackendService) handleAPIError(statusCode int, body []byte) error {
	var backendErr BackendError
	if err := json.Unmarshal(body, &backendErr); err != nil || backendErr.Message == "" {
		backendErr.Message = http.StatusText(statusCode)
	}
	backendErr.StatusCode = statusCode

	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", models.ErrUnauthorized, backendErr.Message)
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, backendErr.Message)
	default:
		return &backendErr
	}
}

// IsNotFound reports whether err means the resource does not exist upstream.
func IsNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
