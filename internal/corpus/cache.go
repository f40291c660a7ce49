package corpus

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"resumechat/internal/domain"
)

// Cache memoizes an expensive corpus build. Concurrent first callers share a
// single in-flight build; a failed build leaves the cache empty so the next
// caller retries.
type Cache struct {
	group singleflight.Group

	mu     sync.RWMutex
	chunks []domain.Chunk
	ready  bool
}

// Get returns the cached chunk list, building it on first use.
func (c *Cache) Get(build func() ([]domain.Chunk, error)) ([]domain.Chunk, error) {
	c.mu.RLock()
	if c.ready {
		chunks := c.chunks
		c.mu.RUnlock()
		return chunks, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("corpus", func() (any, error) {
		c.mu.RLock()
		if c.ready {
			chunks := c.chunks
			c.mu.RUnlock()
			return chunks, nil
		}
		c.mu.RUnlock()

		chunks, err := build()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.chunks = chunks
		c.ready = true
		c.mu.Unlock()
		return chunks, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Chunk), nil
}

// Reset clears the cache, forcing a rebuild on the next Get.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.chunks = nil
	c.ready = false
	c.mu.Unlock()
}
