package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartsvc "github.com/goshophq/marketplace-backend/internal/cart"
	"github.com/goshophq/marketplace-backend/internal/checkout"
)

// QuoteRequest is the wire shape of a cart quote call. Everything in it
// is untrusted client state.
type QuoteRequest struct {
	CountryCode string             `json:"countryCode" validate:"omitempty,len=2"`
	CouponCode  string             `json:"couponCode" validate:"omitempty,max=64"`
	Items       []QuoteRequestItem `json:"items" validate:"max=200,dive"`
}

// QuoteRequestItem is one cached cart line as the client last saw it.
type QuoteRequestItem struct {
	ProductID       string `json:"productId" validate:"required,uuid"`
	VariantID       string `json:"variantId" validate:"required,uuid"`
	SizeID          string `json:"sizeId" validate:"required,uuid"`
	Quantity        int    `json:"quantity" validate:"min=0,max=10000"`
	CachedUnitPrice string `json:"cachedUnitPrice" validate:"omitempty,max=32"`
}

func (r QuoteRequest) toEngine() checkout.QuoteRequest {
	items := make([]cartsvc.SnapshotItem, 0, len(r.Items))
	for _, line := range r.Items {
		item := cartsvc.SnapshotItem{
			ProductID: uuid.MustParse(line.ProductID),
			VariantID: uuid.MustParse(line.VariantID),
			SizeID:    uuid.MustParse(line.SizeID),
			Quantity:  line.Quantity,
		}
		if line.CachedUnitPrice != "" {
			if cached, err := decimal.NewFromString(line.CachedUnitPrice); err == nil {
				item.CachedUnitPrice = cached
			}
		}
		items = append(items, item)
	}
	return checkout.QuoteRequest{
		CountryCode: r.CountryCode,
		CouponCode:  r.CouponCode,
		Items:       items,
	}
}
