package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	_, err := Options(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = Options(Config{URL: "http://localhost"})
	assert.Error(t, err)

	opts, err := Options(Config{URL: "redis://:fromurl@cache.local"})
	require.NoError(t, err)
	assert.Equal(t, "cache.local:6379", opts.Addr)
	assert.Equal(t, "fromurl", opts.Password)
	assert.Nil(t, opts.TLSConfig)

	opts, err = Options(Config{URL: "rediss://cache.local:6380", Password: "explicit"})
	require.NoError(t, err)
	assert.Equal(t, "cache.local:6380", opts.Addr)
	assert.Equal(t, "explicit", opts.Password)
	assert.NotNil(t, opts.TLSConfig)
}

func TestNewAndChecker(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(context.Background(), Config{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, Checker{Client: client}.Ping(context.Background()))
	assert.Error(t, Checker{}.Ping(context.Background()))
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), Config{URL: "redis://" + addr})
	assert.Error(t, err)
}
