package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goshophq/marketplace-backend/pkg/db/models"
	pkgerrors "github.com/goshophq/marketplace-backend/pkg/errors"
)

// Repository resolves catalog keys against the relational store.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

var hundred = decimal.NewFromInt(100)

// Resolve loads catalog truth for the requested keys in four batched
// queries (sizes, variants, products+stores, shipping rates). Keys whose
// chain is missing or inactive are left out of Entries; keys with broken
// parentage land in Failures.
func (r *Repository) Resolve(ctx context.Context, countryCode string, keys []ItemKey) (*Resolution, error) {
	res := &Resolution{
		Entries:  make(map[ItemKey]Entry, len(keys)),
		Failures: make(map[ItemKey]error),
	}
	if len(keys) == 0 {
		return res, nil
	}

	sizeIDs := make([]uuid.UUID, 0, len(keys))
	for _, key := range keys {
		sizeIDs = append(sizeIDs, key.SizeID)
	}

	var sizes []models.VariantSize
	if err := r.db.WithContext(ctx).Where("id IN ?", sizeIDs).Find(&sizes).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading variant sizes")
	}
	sizeByID := make(map[uuid.UUID]models.VariantSize, len(sizes))
	variantIDs := make([]uuid.UUID, 0, len(sizes))
	for _, size := range sizes {
		sizeByID[size.ID] = size
		variantIDs = append(variantIDs, size.VariantID)
	}

	var variants []models.ProductVariant
	if len(variantIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", variantIDs).Find(&variants).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading product variants")
		}
	}
	variantByID := make(map[uuid.UUID]models.ProductVariant, len(variants))
	productIDs := make([]uuid.UUID, 0, len(variants))
	for _, variant := range variants {
		variantByID[variant.ID] = variant
		productIDs = append(productIDs, variant.ProductID)
	}

	var products []models.Product
	if len(productIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading products")
		}
	}
	productByID := make(map[uuid.UUID]models.Product, len(products))
	storeIDs := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		productByID[product.ID] = product
		storeIDs = append(storeIDs, product.StoreID)
	}

	storeByID := make(map[uuid.UUID]models.Store)
	rateByStore := make(map[uuid.UUID]models.ShippingRate)
	if len(storeIDs) > 0 {
		var stores []models.Store
		if err := r.db.WithContext(ctx).Where("id IN ?", storeIDs).Find(&stores).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading stores")
		}
		for _, store := range stores {
			storeByID[store.ID] = store
		}

		var rates []models.ShippingRate
		if err := r.db.WithContext(ctx).
			Where("store_id IN ? AND country_code IN ?", storeIDs, []string{normalizeCountry(countryCode), ""}).
			Find(&rates).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shipping rates")
		}
		for _, rate := range rates {
			current, ok := rateByStore[rate.StoreID]
			// country-specific row wins over the vendor default
			if !ok || (current.CountryCode == "" && rate.CountryCode != "") {
				rateByStore[rate.StoreID] = rate
			}
		}
	}

	for _, key := range keys {
		size, ok := sizeByID[key.SizeID]
		if !ok {
			continue
		}
		variant, ok := variantByID[size.VariantID]
		if !ok || !variant.IsActive {
			continue
		}
		product, ok := productByID[variant.ProductID]
		if !ok || !product.IsActive {
			continue
		}
		if variant.ID != key.VariantID || product.ID != key.ProductID {
			res.Failures[key] = pkgerrors.New(pkgerrors.CodeConflict, "cart key does not match catalog parentage")
			continue
		}
		store, ok := storeByID[product.StoreID]
		if !ok || !store.IsActive {
			continue
		}

		rate := rateByStore[product.StoreID]
		res.Entries[key] = buildEntry(key, normalizeCountry(countryCode), product, variant, size, store, rate)
	}

	return res, nil
}

func buildEntry(key ItemKey, country string, product models.Product, variant models.ProductVariant, size models.VariantSize, store models.Store, rate models.ShippingRate) Entry {
	entry := Entry{
		Key:         key,
		StoreID:     store.ID,
		StoreName:   store.Name,
		ProductName: product.Name,
		VariantName: variant.Name,
		Size:        size.Size,
		SKU:         variant.SKU,

		UnitPrice: effectiveUnitPrice(size.Price, size.DiscountPercent),
		Stock:     size.Quantity,
		WeightKg:  variant.WeightKg,

		ShippingFeeMethod: product.ShippingFeeMethod,
		ShippingService:   rate.ShippingService,
		BaseShippingFee:   rate.BaseFee,
		ExtraShippingFee:  rate.ExtraFee,
		FreeShipping:      freeShipsTo(product, country),
		DeliveryTimeMin:   rate.DeliveryTimeMin,
		DeliveryTimeMax:   rate.DeliveryTimeMax,
	}
	if entry.ShippingService == "" {
		entry.ShippingService = "International Delivery"
	}
	if entry.DeliveryTimeMin <= 0 {
		entry.DeliveryTimeMin = 7
	}
	if entry.DeliveryTimeMax < entry.DeliveryTimeMin {
		entry.DeliveryTimeMax = 31
	}
	return entry
}

// effectiveUnitPrice applies the size's percentage discount to its list
// price without rounding. Presentation rounds, not the catalog.
func effectiveUnitPrice(price, discountPercent decimal.Decimal) decimal.Decimal {
	if discountPercent.IsZero() {
		return price
	}
	return price.Mul(hundred.Sub(discountPercent)).Div(hundred)
}

// freeShipsTo reports whether the product ships free to the country. An
// empty country list means free shipping everywhere.
func freeShipsTo(product models.Product, country string) bool {
	if !product.FreeShipping {
		return false
	}
	if len(product.FreeShippingCountries) == 0 {
		return true
	}
	for _, candidate := range product.FreeShippingCountries {
		if strings.EqualFold(candidate, country) {
			return true
		}
	}
	return false
}

func normalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
