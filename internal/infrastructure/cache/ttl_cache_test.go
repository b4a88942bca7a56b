package cache_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/trade-ledger-api/internal/infrastructure/cache"
)

func TestTTLCache_Expira(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	c := cache.NewTTLCache[string, int](time.Minute).WithClock(func() time.Time { return now })

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	now = now.Add(59 * time.Second)
	_, ok = c.Get("a")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.Get("a")
	assert.False(t, ok, "al cumplirse el TTL la entrada expira")
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_Deshabilitada(t *testing.T) {
	c := cache.NewTTLCache[string, int](0)
	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_Concurrente(t *testing.T) {
	c := cache.NewTTLCache[int, int](time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i%5, i)
			_, _ = c.Get(i % 5)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 5, c.Len())
}

func TestTTLCache_ExpiradaNoBorraValorNuevo(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	var c *cache.TTLCache[string, int]
	reemplazar := false
	c = cache.NewTTLCache[string, int](time.Minute).WithClock(func() time.Time {
		if reemplazar {
			// Otro escritor guarda un valor fresco mientras Get ve la entrada vencida.
			reemplazar = false
			c.Set("a", 2)
		}
		return now
	})

	c.Set("a", 1)
	now = now.Add(2 * time.Minute)
	reemplazar = true

	_, ok := c.Get("a")
	assert.False(t, ok)

	v, ok := c.Get("a")
	assert.True(t, ok, "el valor guardado por el Set concurrente sigue en la caché")
	assert.Equal(t, 2, v)
}
