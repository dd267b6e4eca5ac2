package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/goshophq/marketplace-backend/pkg/db/models"
	"github.com/goshophq/marketplace-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("GOSHOP_DB_DSN")
	if dsn == "" {
		t.Skip("GOSHOP_DB_DSN is not set")
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	return conn
}

func TestEffectiveUnitPrice(t *testing.T) {
	price := decimal.RequireFromString("24.99")

	if got := effectiveUnitPrice(price, decimal.Zero); !got.Equal(price) {
		t.Fatalf("expected undiscounted price, got %s", got)
	}

	discounted := effectiveUnitPrice(price, decimal.NewFromInt(20))
	want := decimal.RequireFromString("19.992")
	if !discounted.Equal(want) {
		t.Fatalf("expected %s, got %s", want, discounted)
	}
}

func TestFreeShipsTo(t *testing.T) {
	base := models.Product{FreeShipping: true}

	if freeShipsTo(models.Product{FreeShipping: false}, "US") {
		t.Fatal("product without free shipping must not ship free")
	}
	if !freeShipsTo(base, "US") {
		t.Fatal("empty country list means free shipping everywhere")
	}

	base.FreeShippingCountries = []string{"us", "CA"}
	if !freeShipsTo(base, "US") {
		t.Fatal("country match should be case-insensitive")
	}
	if freeShipsTo(base, "DE") {
		t.Fatal("country outside the list must not ship free")
	}
}

func TestRepositoryResolve(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	t.Cleanup(func() { tx.Rollback() })

	store := seedStore(t, tx)
	product := seedProduct(t, tx, store.ID, enums.ShippingFeeMethodItem)
	variant := seedVariant(t, tx, product.ID)
	size := seedSize(t, tx, variant.ID, "250g", "24.99", 12)

	rate := &models.ShippingRate{
		ID:              uuid.New(),
		StoreID:         store.ID,
		CountryCode:     "US",
		ShippingService: "Ground Freight",
		BaseFee:         decimal.RequireFromString("5.00"),
		ExtraFee:        decimal.RequireFromString("2.00"),
		DeliveryTimeMin: 3,
		DeliveryTimeMax: 9,
	}
	require.NoError(t, tx.Create(rate).Error)
	fallback := &models.ShippingRate{
		ID:              uuid.New(),
		StoreID:         store.ID,
		CountryCode:     "",
		ShippingService: "International Delivery",
		BaseFee:         decimal.RequireFromString("15.00"),
		DeliveryTimeMin: 7,
		DeliveryTimeMax: 31,
	}
	require.NoError(t, tx.Create(fallback).Error)

	repo := NewRepository(tx)
	key := ItemKey{ProductID: product.ID, VariantID: variant.ID, SizeID: size.ID}
	missing := ItemKey{ProductID: uuid.New(), VariantID: uuid.New(), SizeID: uuid.New()}

	res, err := repo.Resolve(context.Background(), "us", []ItemKey{key, missing})
	require.NoError(t, err)
	require.Empty(t, res.Failures)
	require.Len(t, res.Entries, 1)

	entry, ok := res.Entries[key]
	require.True(t, ok)
	require.Equal(t, store.ID, entry.StoreID)
	require.Equal(t, 12, entry.Stock)
	require.Equal(t, "Ground Freight", entry.ShippingService)
	require.True(t, entry.BaseShippingFee.Equal(decimal.RequireFromString("5.00")))
	require.Equal(t, 3, entry.DeliveryTimeMin)
	require.Equal(t, 9, entry.DeliveryTimeMax)

	// unknown destination falls back to the vendor default row
	res, err = repo.Resolve(context.Background(), "JP", []ItemKey{key})
	require.NoError(t, err)
	entry = res.Entries[key]
	require.Equal(t, "International Delivery", entry.ShippingService)
	require.True(t, entry.BaseShippingFee.Equal(decimal.RequireFromString("15.00")))
}

func TestRepositoryResolve_InactiveChainDropped(t *testing.T) {
	conn := openTestDB(t)
	tx := conn.Begin()
	t.Cleanup(func() { tx.Rollback() })

	store := seedStore(t, tx)
	product := seedProduct(t, tx, store.ID, enums.ShippingFeeMethodFixed)
	product.IsActive = false
	require.NoError(t, tx.Save(product).Error)
	variant := seedVariant(t, tx, product.ID)
	size := seedSize(t, tx, variant.ID, "1kg", "10.00", 4)

	repo := NewRepository(tx)
	key := ItemKey{ProductID: product.ID, VariantID: variant.ID, SizeID: size.ID}

	res, err := repo.Resolve(context.Background(), "US", []ItemKey{key})
	require.NoError(t, err)
	require.Empty(t, res.Entries)
	require.Empty(t, res.Failures)
}

func seedStore(t *testing.T, tx *gorm.DB) *models.Store {
	t.Helper()
	now := time.Now()
	store := &models.Store{
		ID:           uuid.New(),
		Name:         "Catalog Test Store",
		URLSlug:      "catalog-test-" + uuid.NewString(),
		IsActive:     true,
		LastActiveAt: &now,
	}
	require.NoError(t, tx.Create(store).Error)
	return store
}

func seedProduct(t *testing.T, tx *gorm.DB, storeID uuid.UUID, method enums.ShippingFeeMethod) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:                uuid.New(),
		StoreID:           storeID,
		Name:              "Single Origin Beans",
		ShippingFeeMethod: method,
		IsActive:          true,
	}
	require.NoError(t, tx.Create(product).Error)
	return product
}

func seedVariant(t *testing.T, tx *gorm.DB, productID uuid.UUID) *models.ProductVariant {
	t.Helper()
	variant := &models.ProductVariant{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      "Whole Bean",
		SKU:       "SKU-" + uuid.NewString()[:8],
		WeightKg:  decimal.RequireFromString("0.250"),
		IsActive:  true,
	}
	require.NoError(t, tx.Create(variant).Error)
	return variant
}

func seedSize(t *testing.T, tx *gorm.DB, variantID uuid.UUID, label, price string, stock int) *models.VariantSize {
	t.Helper()
	size := &models.VariantSize{
		ID:        uuid.New(),
		VariantID: variantID,
		Size:      label,
		Price:     decimal.RequireFromString(price),
		Quantity:  stock,
	}
	require.NoError(t, tx.Create(size).Error)
	return size
}
