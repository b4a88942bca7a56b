// Package cache caché en memoria con expiración por entrada.
package cache

import (
	"sync"
	"time"
)

// Cache interfaz mínima usada por los casos de uso.
type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V)
}

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTLCache guarda valores durante ttl. Seguro para uso concurrente.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]entry[V]
	ttl   time.Duration
	now   func() time.Time
}

// NewTTLCache construye la caché. Con ttl <= 0 no guarda nada (siempre miss).
func NewTTLCache[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{items: make(map[K]entry[V]), ttl: ttl, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (c *TTLCache[K, V]) WithClock(now func() time.Time) *TTLCache[K, V] {
	c.now = now
	return c
}

// Get devuelve el valor si existe y no expiró.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c == nil || c.ttl <= 0 {
		return zero, false
	}
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}
	now := c.now()
	if !now.Before(e.expiresAt) {
		c.mu.Lock()
		// Un Set concurrente pudo reemplazar la entrada vencida.
		if cur, ok := c.items[key]; ok && !now.Before(cur.expiresAt) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Set guarda value hasta now+ttl.
func (c *TTLCache[K, V]) Set(key K, value V) {
	if c == nil || c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.items[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Len cantidad de entradas guardadas (incluye expiradas aún no purgadas).
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
