package controllers

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newUnreachableRedisClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: "localhost:0",
		Dialer: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return nil, errors.New("redis disabled in tests")
		},
	})
}

func TestCacheManager_NilClientIsDisabled(t *testing.T) {
	cm := NewCacheManager(nil)

	_, ok := cm.GetListFragment(context.Background(), "title", "asc", "")
	assert.False(t, ok)

	// must not panic
	cm.SetListFragmentAsync("title", "asc", "", []byte("<table></table>"))
	cm.Invalidate(context.Background())
}

func TestCacheManager_RedisErrorsAreMisses(t *testing.T) {
	cm := NewCacheManager(newUnreachableRedisClient())

	_, ok := cm.GetListFragment(context.Background(), "", "", "sneak")
	assert.False(t, ok)

	cm.Invalidate(context.Background())
}

func TestCacheManager_KeyIncludesAllViewInputs(t *testing.T) {
	cm := NewCacheManager(nil)

	a := cm.listCacheKey(1, "title", "asc", "")
	b := cm.listCacheKey(1, "title", "desc", "")
	c := cm.listCacheKey(1, "title", "asc", "sneak")
	d := cm.listCacheKey(2, "title", "asc", "")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}
