package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cbd-storefront/internal/middleware"
	"cbd-storefront/internal/models"
	"cbd-storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartFixture() (*CartHandler, *services.MockBackendService) {
	backend := services.NewMockBackendService()
	backend.Customer = &models.Customer{ID: "cust-1", Email: "a@b.fr"}
	return NewCartHandler(services.NewCartSyncService(backend), backend), backend
}

func asCustomer(req *http.Request, customer *models.Customer) *http.Request {
	ctx := middleware.SetCustomerContext(req.Context(), customer, "tok")
	return req.WithContext(ctx)
}

func TestGetSync_Unauthenticated(t *testing.T) {
	handler, _ := newCartFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/cart/sync", nil)
	w := httptest.NewRecorder()
	handler.GetSync(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body models.CartSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []models.CartItem{}, body.Items)
	assert.Nil(t, body.Shipping)
	assert.Nil(t, body.PromoCode)
}

func TestGetSync_NoPersistedCart(t *testing.T) {
	handler, backend := newCartFixture()

	req := asCustomer(httptest.NewRequest(http.MethodGet, "/api/cart/sync", nil), backend.Customer)
	w := httptest.NewRecorder()
	handler.GetSync(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body models.CartSyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
}

func TestPostSync_Unauthenticated(t *testing.T) {
	handler, _ := newCartFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/sync", strings.NewReader(`{"items":[]}`))
	w := httptest.NewRecorder()
	handler.PostSync(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPostSync_ThenGetRoundTrips(t *testing.T) {
	handler, backend := newCartFixture()

	payload := `{"items":[{"productId":"p1","price":19.99,"quantity":2}],"shipping":{"method":"standard","cost":5},"promoCode":"WELCOME10"}`
	req := asCustomer(httptest.NewRequest(http.MethodPost, "/api/cart/sync", strings.NewReader(payload)), backend.Customer)
	w := httptest.NewRecorder()
	handler.PostSync(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	getReq := asCustomer(httptest.NewRequest(http.MethodGet, "/api/cart/sync", nil), backend.Customer)
	getW := httptest.NewRecorder()
	handler.GetSync(getW, getReq)
	require.Equal(t, http.StatusOK, getW.Code)

	var body models.CartSyncResponse
	require.NoError(t, json.Unmarshal(getW.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "p1", body.Items[0].ProductID)
	require.NotNil(t, body.PromoCode)
	assert.Equal(t, "WELCOME10", *body.PromoCode)
	require.NotNil(t, body.LastUpdated)
}

func TestPostSync_SecondWriteWins(t *testing.T) {
	handler, backend := newCartFixture()

	for _, payload := range []string{
		`{"items":[{"productId":"p1","price":10,"quantity":1},{"productId":"p2","price":20,"quantity":1}]}`,
		`{"items":[{"productId":"p3","price":5,"quantity":4}]}`,
	} {
		req := asCustomer(httptest.NewRequest(http.MethodPost, "/api/cart/sync", strings.NewReader(payload)), backend.Customer)
		w := httptest.NewRecorder()
		handler.PostSync(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	stored := backend.Carts["cust-1"]
	require.NotNil(t, stored)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "p3", stored.Items[0].ProductID)
}

func TestApplyPromo_Percentage(t *testing.T) {
	handler, backend := newCartFixture()
	backend.PromoCodes["WELCOME10"] = &models.PromoCode{
		Code: "WELCOME10", Kind: models.PromoKindPercentage, Value: 10, Active: true,
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-promo", strings.NewReader(`{"code":"WELCOME10","subtotal":60}`))
	w := httptest.NewRecorder()
	handler.ApplyPromo(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body applyCodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 6.0, body.Discount)
	assert.Equal(t, int64(600), body.DiscountCents)
}

func TestApplyPromo_FixedAmount(t *testing.T) {
	handler, backend := newCartFixture()
	backend.PromoCodes["FIVE"] = &models.PromoCode{
		Code: "FIVE", Kind: models.PromoKindAmount, Value: 5, Active: true,
	}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-promo", strings.NewReader(`{"code":"FIVE","subtotal":60}`))
	w := httptest.NewRecorder()
	handler.ApplyPromo(w, req)

	var body applyCodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 5.0, body.Discount)
}

func TestApplyPromo_UnknownOrInactive(t *testing.T) {
	handler, backend := newCartFixture()
	backend.PromoCodes["OLD"] = &models.PromoCode{Code: "OLD", Kind: models.PromoKindAmount, Value: 5, Active: false}

	for _, code := range []string{"NOPE", "OLD"} {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-promo", strings.NewReader(`{"code":"`+code+`","subtotal":60}`))
		w := httptest.NewRecorder()
		handler.ApplyPromo(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code, "code %q", code)
	}
}

func TestApplyPromo_MissingCode(t *testing.T) {
	handler, _ := newCartFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-promo", strings.NewReader(`{"subtotal":60}`))
	w := httptest.NewRecorder()
	handler.ApplyPromo(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApplyReferral_RateDiscount(t *testing.T) {
	handler, backend := newCartFixture()
	backend.Referrals["AMI-42"] = &models.Referral{Code: "AMI-42", Valid: true, Rate: 0.1}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-referral", strings.NewReader(`{"code":"AMI-42","subtotal":49.90}`))
	w := httptest.NewRecorder()
	handler.ApplyReferral(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body applyCodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4.99, body.Discount)
	assert.Equal(t, int64(499), body.DiscountCents)
}

func TestApplyReferral_InvalidCode(t *testing.T) {
	handler, backend := newCartFixture()
	backend.Referrals["DEAD"] = &models.Referral{Code: "DEAD", Valid: false}

	req := httptest.NewRequest(http.MethodPost, "/api/cart/apply-referral", strings.NewReader(`{"code":"DEAD","subtotal":60}`))
	w := httptest.NewRecorder()
	handler.ApplyReferral(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
