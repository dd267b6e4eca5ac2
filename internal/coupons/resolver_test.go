package coupons

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/goshophq/marketplace-backend/pkg/enums"
	pkgredis "github.com/goshophq/marketplace-backend/pkg/redis"
)

type stubFinder struct {
	coupon *Coupon
	err    error
	calls  int
}

func (s *stubFinder) FindByCode(context.Context, string) (*Coupon, error) {
	s.calls++
	return s.coupon, s.err
}

type stubCache struct {
	values map[string]string
	getErr error
	sets   int
}

func (s *stubCache) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.values[key]
	if !ok {
		return "", pkgredis.ErrCacheMiss
	}
	return value, nil
}

func (s *stubCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	if s.values == nil {
		s.values = map[string]string{}
	}
	switch v := value.(type) {
	case []byte:
		s.values[key] = string(v)
	case string:
		s.values[key] = v
	}
	s.sets++
	return nil
}

func (s *stubCache) CouponCacheKey(code string) string {
	return "test:coupon:" + strings.ToLower(code)
}

func sampleCoupon() *Coupon {
	return &Coupon{
		ID:        uuid.New(),
		StoreID:   uuid.New(),
		Code:      "WELCOME10",
		Kind:      enums.CouponKindPercentage,
		Value:     decimal.NewFromInt(10),
		StartsAt:  time.Now().Add(-time.Hour),
		ExpiresAt: time.Now().Add(time.Hour),
		IsActive:  true,
	}
}

func TestCachedResolver_MissThenStore(t *testing.T) {
	finder := &stubFinder{coupon: sampleCoupon()}
	cache := &stubCache{}
	resolver := &CachedResolver{finder: finder, cache: cache, ttl: time.Minute}

	coupon, err := resolver.Resolve(context.Background(), "WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	require.Equal(t, 1, finder.calls)
	require.Equal(t, 1, cache.sets, "resolved coupon should be cached")

	// second resolve is served from cache
	coupon, err = resolver.Resolve(context.Background(), "welcome10")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	require.Equal(t, finder.coupon.ID, coupon.ID)
	require.Equal(t, 1, finder.calls)
}

func TestCachedResolver_UnknownCodeNotCached(t *testing.T) {
	finder := &stubFinder{}
	cache := &stubCache{}
	resolver := &CachedResolver{finder: finder, cache: cache, ttl: time.Minute}

	coupon, err := resolver.Resolve(context.Background(), "NOPE")
	require.NoError(t, err)
	require.Nil(t, coupon)
	require.Zero(t, cache.sets)
}

func TestCachedResolver_CacheFailureFallsBack(t *testing.T) {
	finder := &stubFinder{coupon: sampleCoupon()}
	cache := &stubCache{getErr: errors.New("broken pipe")}
	resolver := &CachedResolver{finder: finder, cache: cache, ttl: time.Minute}

	coupon, err := resolver.Resolve(context.Background(), "WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	require.Equal(t, 1, finder.calls)
}

func TestCachedResolver_CorruptPayloadFallsBack(t *testing.T) {
	finder := &stubFinder{coupon: sampleCoupon()}
	cache := &stubCache{values: map[string]string{
		"test:coupon:welcome10": "{not json",
	}}
	resolver := &CachedResolver{finder: finder, cache: cache, ttl: time.Minute}

	coupon, err := resolver.Resolve(context.Background(), "WELCOME10")
	require.NoError(t, err)
	require.NotNil(t, coupon)
	require.Equal(t, 1, finder.calls)
}

func TestCachedResolver_BlankCodeShortCircuits(t *testing.T) {
	finder := &stubFinder{}
	resolver := &CachedResolver{finder: finder, ttl: time.Minute}

	coupon, err := resolver.Resolve(context.Background(), "   ")
	require.NoError(t, err)
	require.Nil(t, coupon)
	require.Zero(t, finder.calls)
}

func TestCouponRoundTripsThroughJSON(t *testing.T) {
	original := sampleCoupon()
	payload, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Coupon
	require.NoError(t, json.Unmarshal(payload, &restored))
	require.Equal(t, original.ID, restored.ID)
	require.True(t, original.Value.Equal(restored.Value))
}

func TestRedeemableAt(t *testing.T) {
	now := time.Now()
	coupon := sampleCoupon()

	require.True(t, coupon.RedeemableAt(now))
	require.False(t, coupon.RedeemableAt(now.Add(-2*time.Hour)), "before window")
	require.False(t, coupon.RedeemableAt(now.Add(2*time.Hour)), "after window")

	coupon.IsActive = false
	require.False(t, coupon.RedeemableAt(now))

	var missing *Coupon
	require.False(t, missing.RedeemableAt(now))
}
