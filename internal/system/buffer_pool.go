package system

import (
	"image"
	"sync"
)

// AlphaPool reuses *image.Alpha scratch buffers across rasterization
// calls to reduce GC pressure when synthesizing long mask sequences.
type AlphaPool struct {
	pools map[string]*sync.Pool
	mu    sync.RWMutex
}

var globalPool = &AlphaPool{
	pools: make(map[string]*sync.Pool),
}

// GetAlpha returns an *image.Alpha for the given bounds, reusing a pooled
// buffer when one with matching geometry is available.
func GetAlpha(rect image.Rectangle) *image.Alpha {
	return globalPool.Get(rect)
}

// PutAlpha returns a buffer to the pool for reuse.
func PutAlpha(img *image.Alpha) {
	globalPool.Put(img)
}

func (p *AlphaPool) Get(rect image.Rectangle) *image.Alpha {
	key := rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		// Double check
		pool, exists = p.pools[key]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewAlpha(rect)
				},
			}
			p.pools[key] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.Alpha)
}

func (p *AlphaPool) Put(img *image.Alpha) {
	if img == nil {
		return
	}
	key := img.Rect.String()
	p.mu.RLock()
	pool, exists := p.pools[key]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
