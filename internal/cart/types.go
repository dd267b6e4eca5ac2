package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/goshophq/marketplace-backend/internal/catalog"
	"github.com/goshophq/marketplace-backend/pkg/enums"
)

// SnapshotItem is one line of the client-held cart. Everything beyond the
// key and quantity is untrusted and only used to detect drift.
type SnapshotItem struct {
	ProductID       uuid.UUID
	VariantID       uuid.UUID
	SizeID          uuid.UUID
	Quantity        int
	CachedUnitPrice decimal.Decimal
}

// Key returns the catalog key for the snapshot line.
func (s SnapshotItem) Key() catalog.ItemKey {
	return catalog.ItemKey{ProductID: s.ProductID, VariantID: s.VariantID, SizeID: s.SizeID}
}

// Warning flags a non-fatal adjustment made while reconciling a line.
type Warning struct {
	Type    enums.CartItemWarningType
	Message string
}

// Item is a reconciled cart line. Every field except Quantity comes
// straight from catalog truth.
type Item struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	SizeID    uuid.UUID

	StoreID     uuid.UUID
	StoreName   string
	Name        string
	VariantName string
	Size        string
	SKU         string

	Quantity  int
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

	Warnings []Warning
}

// Key returns the catalog key for the reconciled line.
func (i Item) Key() catalog.ItemKey {
	return catalog.ItemKey{ProductID: i.ProductID, VariantID: i.VariantID, SizeID: i.SizeID}
}

// LineTotal is unitPrice times quantity, unrounded.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Snapshot converts the reconciled line back into snapshot form, which is
// what the client caches for the next round trip.
func (i Item) Snapshot() SnapshotItem {
	return SnapshotItem{
		ProductID:       i.ProductID,
		VariantID:       i.VariantID,
		SizeID:          i.SizeID,
		Quantity:        i.Quantity,
		CachedUnitPrice: i.UnitPrice,
	}
}

// Removal reports a dropped snapshot line and why it was dropped.
type Removal struct {
	ProductID uuid.UUID
	VariantID uuid.UUID
	SizeID    uuid.UUID
	Reason    enums.RemovalReason
}
