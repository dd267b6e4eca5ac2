package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/goshophq/marketplace-backend/pkg/enums"
)

// ItemKey identifies one purchasable unit: a size of a variant of a product.
type ItemKey struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	SizeID    uuid.UUID
}

// Entry is the authoritative catalog truth for one key, already resolved
// for a destination country. Prices carry the size discount; shipping
// fields come from the vendor's country rate (or the vendor default row).
type Entry struct {
	Key         ItemKey
	StoreID     uuid.UUID
	StoreName   string
	ProductName string
	VariantName string
	Size        string
	SKU         string

	UnitPrice decimal.Decimal
	Stock     int
	WeightKg  decimal.Decimal

	ShippingFeeMethod enums.ShippingFeeMethod
	ShippingService   string
	BaseShippingFee   decimal.Decimal
	ExtraShippingFee  decimal.Decimal
	FreeShipping      bool
	DeliveryTimeMin   int
	DeliveryTimeMax   int
}

// Resolution is the outcome of a batch lookup. Keys absent from both maps
// simply do not exist in the catalog anymore.
type Resolution struct {
	Entries  map[ItemKey]Entry
	Failures map[ItemKey]error
}

// Err aggregates the per-key failures for diagnostics. Callers treat the
// failed keys as unavailable; the aggregate is for logging only.
func (r *Resolution) Err() error {
	if r == nil {
		return nil
	}
	errs := make([]error, 0, len(r.Failures))
	for _, err := range r.Failures {
		errs = append(errs, err)
	}
	return multierr.Combine(errs...)
}

// Lookup resolves cart keys to catalog truth for one destination country.
// Implementations must resolve the whole batch in one pass and report
// per-key problems through Resolution.Failures instead of aborting.
type Lookup interface {
	Resolve(ctx context.Context, countryCode string, keys []ItemKey) (*Resolution, error)
}
