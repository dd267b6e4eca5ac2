package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/checkout"
	"github.com/goshophq/marketplace-backend/pkg/enums"
	pkgerrors "github.com/goshophq/marketplace-backend/pkg/errors"
	"github.com/goshophq/marketplace-backend/pkg/types"
)

type stubQuoteService struct {
	result  *checkout.QuoteResult
	err     error
	lastReq checkout.QuoteRequest
}

func (s *stubQuoteService) Quote(_ context.Context, req checkout.QuoteRequest) (*checkout.QuoteResult, error) {
	s.lastReq = req
	return s.result, s.err
}

func sampleResult() *checkout.QuoteResult {
	storeID := uuid.New()
	item := cartsvc.Item{
		ProductID:       uuid.New(),
		VariantID:       uuid.New(),
		SizeID:          uuid.New(),
		StoreID:         storeID,
		StoreName:       "Roastery",
		Name:            "Beans",
		Quantity:        2,
		Stock:           9,
		UnitPrice:       decimal.RequireFromString("12.345"),
		WeightKg:        decimal.RequireFromString("0.250"),
		ShippingService: "Ground",
	}
	group := &checkout.VendorGroup{
		StoreID:         storeID,
		StoreName:       "Roastery",
		Items:           []cartsvc.Item{item},
		Subtotal:        decimal.RequireFromString("24.69"),
		ShippingFee:     decimal.RequireFromString("5.00"),
		ShippingService: "Ground",
		DeliveryWindow: types.DeliveryWindow{
			MinDate: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
			MaxDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		Discount: decimal.Zero,
	}
	return &checkout.QuoteResult{
		Currency:    "USD",
		CountryCode: "US",
		Groups:      []*checkout.VendorGroup{group},
		Removals: []cartsvc.Removal{
			{ProductID: uuid.New(), VariantID: uuid.New(), SizeID: uuid.New(), Reason: enums.RemovalReasonOutOfStock},
		},
		Totals: checkout.Totals{
			Subtotal:      decimal.RequireFromString("24.69"),
			TotalDiscount: decimal.Zero,
			TotalShipping: decimal.RequireFromString("5.00"),
			GrandTotal:    decimal.RequireFromString("29.69"),
		},
	}
}

func quoteBody(t *testing.T, req QuoteRequest) *strings.Reader {
	t.Helper()
	payload, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return strings.NewReader(string(payload))
}

func TestQuoteSuccess(t *testing.T) {
	svc := &stubQuoteService{result: sampleResult()}
	handler := Quote(svc, nil)

	body := quoteBody(t, QuoteRequest{
		CountryCode: "US",
		CouponCode:  "WELCOME10",
		Items: []QuoteRequestItem{{
			ProductID:       uuid.NewString(),
			VariantID:       uuid.NewString(),
			SizeID:          uuid.NewString(),
			Quantity:        2,
			CachedUnitPrice: "12.00",
		}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", body)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	if svc.lastReq.CouponCode != "WELCOME10" {
		t.Fatalf("coupon code not forwarded: %q", svc.lastReq.CouponCode)
	}
	if len(svc.lastReq.Items) != 1 || svc.lastReq.Items[0].Quantity != 2 {
		t.Fatalf("snapshot not forwarded: %+v", svc.lastReq.Items)
	}
	if !svc.lastReq.Items[0].CachedUnitPrice.Equal(decimal.RequireFromString("12.00")) {
		t.Fatalf("cached price not forwarded")
	}

	var envelope struct {
		Data QuoteResponse `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Totals.GrandTotal != "29.69" {
		t.Fatalf("unexpected grand total: %s", envelope.Data.Totals.GrandTotal)
	}
	if len(envelope.Data.Groups) != 1 {
		t.Fatalf("expected one group")
	}
	group := envelope.Data.Groups[0]
	if group.Items[0].UnitPrice != "12.35" {
		t.Fatalf("unit price must round half-up at the edge, got %s", group.Items[0].UnitPrice)
	}
	if group.DeliveryMinDate != "2026-03-08" || group.DeliveryMaxDate != "2026-04-01" {
		t.Fatalf("unexpected delivery window: %s .. %s", group.DeliveryMinDate, group.DeliveryMaxDate)
	}
	if len(envelope.Data.RemovedItems) != 1 || envelope.Data.RemovedItems[0].Reason != "out_of_stock" {
		t.Fatalf("removed items not serialized: %+v", envelope.Data.RemovedItems)
	}
}

func TestQuoteRejectsMalformedBody(t *testing.T) {
	handler := Quote(&stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader("{not json"))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteRejectsInvalidItemKey(t *testing.T) {
	handler := Quote(&stubQuoteService{}, nil)

	body := quoteBody(t, QuoteRequest{
		Items: []QuoteRequestItem{{ProductID: "not-a-uuid", VariantID: uuid.NewString(), SizeID: uuid.NewString(), Quantity: 1}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", body)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteRejectsUnknownFields(t *testing.T) {
	handler := Quote(&stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote",
		strings.NewReader(`{"countryCode":"US","surprise":true}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteServiceValidationError(t *testing.T) {
	svc := &stubQuoteService{err: pkgerrors.New(pkgerrors.CodeValidation, "cart snapshot exceeds the allowed size")}
	handler := Quote(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(`{"countryCode":"US"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestQuoteServiceDependencyError(t *testing.T) {
	svc := &stubQuoteService{err: pkgerrors.New(pkgerrors.CodeDependency, "catalog unreachable")}
	handler := Quote(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(`{"countryCode":"US"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code < 500 {
		t.Fatalf("expected 5xx got %d", resp.Code)
	}
}
