package sdlshell

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 128

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

func (t cachedTexture) release() {
	if t.texture != nil {
		t.texture.Destroy()
	}
}

// textureCache keeps rendered text textures, evicting the least recently
// used one when full.
type textureCache struct {
	textures map[string]cachedTexture
	order    []string // least recently used first
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &textureCache{
		textures: make(map[string]cachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func textKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)
}

func (c *textureCache) get(key string) (cachedTexture, bool) {
	entry, ok := c.textures[key]
	if ok {
		c.moveToEnd(key)
	}
	return entry, ok
}

func (c *textureCache) set(key string, entry cachedTexture) {
	if old, exists := c.textures[key]; exists {
		if old.texture != entry.texture {
			old.release()
		}
		c.textures[key] = entry
		c.moveToEnd(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = entry
	c.order = append(c.order, key)
}

func (c *textureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if entry, exists := c.textures[oldest]; exists {
		entry.release()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, entry := range c.textures {
		entry.release()
	}
	c.textures = make(map[string]cachedTexture)
	c.order = c.order[:0]
}
