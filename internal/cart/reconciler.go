package cart

import (
	"context"

	"github.com/goshophq/marketplace-backend/internal/catalog"
	"github.com/goshophq/marketplace-backend/pkg/enums"
	"github.com/goshophq/marketplace-backend/pkg/logger"
)

// Reconciler refreshes a client cart snapshot against catalog truth.
type Reconciler struct {
	catalog catalog.Lookup
	logg    *logger.Logger
}

// NewReconciler wires the reconciler to its catalog collaborator.
func NewReconciler(lookup catalog.Lookup, logg *logger.Logger) *Reconciler {
	return &Reconciler{catalog: lookup, logg: logg}
}

// Reconcile resolves every snapshot line for the destination country and
// rebuilds the cart from catalog truth. Lines that no longer resolve, or
// whose stock hit zero, are dropped into the removals list. Surviving
// lines keep their input order, so reconciling an already-reconciled cart
// against the same catalog state yields the same cart.
//
// A returned error means the catalog itself was unreachable; per-key
// lookup problems never abort the batch.
func (r *Reconciler) Reconcile(ctx context.Context, countryCode string, snapshot []SnapshotItem) ([]Item, []Removal, error) {
	if len(snapshot) == 0 {
		return nil, nil, nil
	}

	keys := make([]catalog.ItemKey, 0, len(snapshot))
	for _, line := range snapshot {
		keys = append(keys, line.Key())
	}

	res, err := r.catalog.Resolve(ctx, countryCode, keys)
	if err != nil {
		return nil, nil, err
	}
	if lookupErr := res.Err(); lookupErr != nil && r.logg != nil {
		r.logg.Error(ctx, "catalog lookup resolved with per-key failures", lookupErr)
	}

	items := make([]Item, 0, len(snapshot))
	removals := make([]Removal, 0)

	for _, line := range snapshot {
		key := line.Key()

		if _, failed := res.Failures[key]; failed {
			removals = append(removals, removalFor(line, enums.RemovalReasonLookupFailed))
			continue
		}
		entry, ok := res.Entries[key]
		if !ok {
			removals = append(removals, removalFor(line, enums.RemovalReasonNotFound))
			continue
		}
		if entry.Stock <= 0 {
			removals = append(removals, removalFor(line, enums.RemovalReasonOutOfStock))
			continue
		}

		items = append(items, buildItem(line, entry))
	}

	return items, removals, nil
}

func removalFor(line SnapshotItem, reason enums.RemovalReason) Removal {
	return Removal{
		ProductID: line.ProductID,
		VariantID: line.VariantID,
		SizeID:    line.SizeID,
		Reason:    reason,
	}
}

func buildItem(line SnapshotItem, entry catalog.Entry) Item {
	item := Item{
		ProductID: line.ProductID,
		VariantID: line.VariantID,
		SizeID:    line.SizeID,

		StoreID:     entry.StoreID,
		StoreName:   entry.StoreName,
		Name:        entry.ProductName,
		VariantName: entry.VariantName,
		Size:        entry.Size,
		SKU:         entry.SKU,

		Quantity:  normalizeQuantity(line.Quantity, entry.Stock),
		UnitPrice: entry.UnitPrice,
		Stock:     entry.Stock,
		WeightKg:  entry.WeightKg,

		ShippingFeeMethod: entry.ShippingFeeMethod,
		ShippingService:   entry.ShippingService,
		BaseShippingFee:   entry.BaseShippingFee,
		ExtraShippingFee:  entry.ExtraShippingFee,
		FreeShipping:      entry.FreeShipping,
		DeliveryTimeMin:   entry.DeliveryTimeMin,
		DeliveryTimeMax:   entry.DeliveryTimeMax,
	}

	if item.Quantity != line.Quantity {
		item.Warnings = append(item.Warnings, Warning{
			Type:    enums.CartItemWarningTypeQtyClamped,
			Message: "quantity adjusted to available stock",
		})
	}
	if !line.CachedUnitPrice.IsZero() && !line.CachedUnitPrice.Equal(entry.UnitPrice) {
		item.Warnings = append(item.Warnings, Warning{
			Type:    enums.CartItemWarningTypePriceChanged,
			Message: "price changed since the item was added",
		})
	}
	return item
}

// normalizeQuantity clamps the cached quantity to available stock with a
// floor of one unit. Stock is known to be positive here.
func normalizeQuantity(cached, stock int) int {
	if cached < 1 {
		cached = 1
	}
	if cached > stock {
		return stock
	}
	return cached
}
