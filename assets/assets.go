package assets

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/automoto/actorcore/logger"
	"github.com/sirupsen/logrus"
)

// ErrUnknownTexture is returned when a sprite sheet id has no entry in the
// texture map.
var ErrUnknownTexture = errors.New("assets: unknown texture id")

// Texture is an opaque handle to loaded image data. *ebiten.Image
// satisfies it.
type Texture interface {
	Bounds() image.Rectangle
}

// Provider hands out shared textures by sprite sheet id. Every successful
// Acquire must be paired with exactly one Release.
type Provider interface {
	Acquire(id string) (Texture, error)
	Release(id string)
}

// LoadFunc turns a texture map path into a Texture.
type LoadFunc func(path string) (Texture, error)

// UnloadFunc disposes of a texture once nothing references it.
type UnloadFunc func(tex Texture)

type loadedTexture struct {
	texture Texture
	refs    int
}

// Cache is a reference-counted Provider. A texture is loaded on its first
// Acquire and unloaded when the last holder releases it.
type Cache struct {
	mu       sync.Mutex
	paths    TextureMap
	load     LoadFunc
	unload   UnloadFunc
	textures map[string]*loadedTexture
	log      *logrus.Entry
}

// NewCache builds a Cache resolving ids through paths. unload may be nil.
func NewCache(paths TextureMap, load LoadFunc, unload UnloadFunc) *Cache {
	return &Cache{
		paths:    paths,
		load:     load,
		unload:   unload,
		textures: make(map[string]*loadedTexture),
		log:      logger.For("assets"),
	}
}

// Acquire returns the texture for id, loading it if no one holds it yet.
func (c *Cache) Acquire(id string) (Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lt, ok := c.textures[id]; ok {
		lt.refs++
		return lt.texture, nil
	}

	path, ok := c.paths[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTexture, id)
	}

	tex, err := c.load(path)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s (%s): %w", id, path, err)
	}

	c.textures[id] = &loadedTexture{texture: tex, refs: 1}
	c.log.WithFields(logrus.Fields{"id": id, "path": path}).Debug("texture loaded")
	return tex, nil
}

// Release drops one reference to id. Releasing an id that is not loaded
// does nothing.
func (c *Cache) Release(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lt, ok := c.textures[id]
	if !ok {
		return
	}

	if lt.refs > 1 {
		lt.refs--
		return
	}

	delete(c.textures, id)
	if c.unload != nil {
		c.unload(lt.texture)
	}
	c.log.WithField("id", id).Debug("texture unloaded")
}

// Loaded reports whether id currently has a live texture.
func (c *Cache) Loaded(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.textures[id]
	return ok
}

// RefCount returns the number of outstanding acquires for id.
func (c *Cache) RefCount(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lt, ok := c.textures[id]; ok {
		return lt.refs
	}
	return 0
}
