package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbox-gym/shadowbox_api/shared"
)

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	redisSvc, mr := newTestRedis(t)
	svc := NewRateLimitService(redisSvc, true)
	svc.SetLimit(shared.EndpointLogin, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, info, err := svc.IsAllowed(ctx, "10.0.0.1", shared.EndpointLogin)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info, err := svc.IsAllowed(ctx, "10.0.0.1", shared.EndpointLogin)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Equal(t, 3, info.Limit)

	// Other clients and endpoints have their own windows.
	allowed, _, err = svc.IsAllowed(ctx, "10.0.0.2", shared.EndpointLogin)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = svc.IsAllowed(ctx, "10.0.0.1", shared.EndpointRegister)
	require.NoError(t, err)
	assert.True(t, allowed)

	mr.FastForward(time.Minute + time.Second)
	allowed, _, err = svc.IsAllowed(ctx, "10.0.0.1", shared.EndpointLogin)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRateLimit_DisabledAllowsEverything(t *testing.T) {
	ctx := context.Background()

	withoutRedis := NewRateLimitService(NewRedisService(nil), true)
	redisSvc, _ := newTestRedis(t)
	switchedOff := NewRateLimitService(redisSvc, false)

	for _, svc := range []*RateLimitService{withoutRedis, switchedOff} {
		svc.SetLimit(shared.EndpointLogin, 1, time.Minute)
		for i := 0; i < 5; i++ {
			allowed, info, err := svc.IsAllowed(ctx, "ip", shared.EndpointLogin)
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Equal(t, -1, info.Remaining)
		}
	}
}

func TestRateLimit_UnknownEndpointAllowed(t *testing.T) {
	redisSvc, mr := newTestRedis(t)
	svc := NewRateLimitService(redisSvc, true)

	allowed, _, err := svc.IsAllowed(context.Background(), "ip", "unknown")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Empty(t, mr.Keys())
}
