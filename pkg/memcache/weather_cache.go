package mem

import (
	"fmt"
	"sync"
	"time"
)

// WeatherCache is a small in-process TTL cache for weather snapshots so a
// busy course page does not hammer the provider for the same coordinates.
type WeatherCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func NewWeatherCache() *WeatherCache {
	return &WeatherCache{
		data: make(map[string]entry),
	}
}

// CoordinateKey rounds to ~100m so nearby lookups share an entry.
func CoordinateKey(longitude, latitude float64) string {
	return fmt.Sprintf("%.3f:%.3f", longitude, latitude)
}

func (c *WeatherCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *WeatherCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key) // cleanup expired
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}
