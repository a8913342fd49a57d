package resources

import (
	"errors"
	"fmt"
	"sync"
)

// Catalog errors.
var (
	ErrUnknownKey   = errors.New("resources: unknown key")
	ErrDuplicateKey = errors.New("resources: key already live")
	ErrFontInUse    = errors.New("resources: font still used by a font instance")
)

// Catalog records which resource keys are live: added and not yet deleted.
// It holds a reference to every live font and the parent font of every
// live font instance.
//
// A Catalog is safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	fonts     map[FontKey]FontRef
	instances map[FontInstanceKey]FontKey
	users     map[FontKey]int
	images    map[ImageKey]ImageDescriptor
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		fonts:     make(map[FontKey]FontRef),
		instances: make(map[FontInstanceKey]FontKey),
		users:     make(map[FontKey]int),
		images:    make(map[ImageKey]ImageDescriptor),
	}
}

// Apply applies updates in order. Invalid updates are skipped and reported
// in the returned error; the valid ones still take effect.
func (c *Catalog) Apply(updates []ResourceUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, u := range updates {
		if err := c.apply(u); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		slogger().Warn("resources: catalog rejected updates", "count", len(errs))
	}
	return errors.Join(errs...)
}

func (c *Catalog) apply(u ResourceUpdate) error {
	switch u := u.(type) {
	case AddFont:
		if _, ok := c.fonts[u.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, u.Key)
		}
		c.fonts[u.Key] = u.Font.Clone()

	case DeleteFont:
		f, ok := c.fonts[u.Key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, u.Key)
		}
		if n := c.users[u.Key]; n > 0 {
			return fmt.Errorf("%w: %s has %d instances", ErrFontInUse, u.Key, n)
		}
		f.Release()
		delete(c.fonts, u.Key)
		delete(c.users, u.Key)

	case AddFontInstance:
		if _, ok := c.instances[u.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, u.Key)
		}
		if _, ok := c.fonts[u.FontKey]; !ok {
			return fmt.Errorf("%w: %s for %s", ErrUnknownKey, u.FontKey, u.Key)
		}
		c.instances[u.Key] = u.FontKey
		c.users[u.FontKey]++

	case DeleteFontInstance:
		fk, ok := c.instances[u.Key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, u.Key)
		}
		delete(c.instances, u.Key)
		c.users[fk]--

	case AddImage:
		if _, ok := c.images[u.Key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, u.Key)
		}
		c.images[u.Key] = u.Descriptor

	case UpdateImage:
		if _, ok := c.images[u.Key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, u.Key)
		}
		c.images[u.Key] = u.Descriptor

	case DeleteImage:
		if _, ok := c.images[u.Key]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, u.Key)
		}
		delete(c.images, u.Key)

	default:
		return fmt.Errorf("resources: unknown update %T", u)
	}
	return nil
}

// HasFont reports whether k is live.
func (c *Catalog) HasFont(k FontKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.fonts[k]
	return ok
}

// Font returns a new reference to the live font k. The caller releases it.
func (c *Catalog) Font(k FontKey) (FontRef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.fonts[k]
	if !ok {
		return FontRef{}, false
	}
	return f.Clone(), true
}

// HasFontInstance reports whether k is live.
func (c *Catalog) HasFontInstance(k FontInstanceKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[k]
	return ok
}

// InstanceFont returns the font a live instance was created from.
func (c *Catalog) InstanceFont(k FontInstanceKey) (FontKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fk, ok := c.instances[k]
	return fk, ok
}

// HasImage reports whether k is live.
func (c *Catalog) HasImage(k ImageKey) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.images[k]
	return ok
}

// Image returns the descriptor of the live image k.
func (c *Catalog) Image(k ImageKey) (ImageDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.images[k]
	return d, ok
}

// Len returns the number of live fonts, font instances and images.
func (c *Catalog) Len() (fonts, instances, images int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.fonts), len(c.instances), len(c.images)
}

// Clone returns an independent copy of c. The copy holds its own reference
// to every live font.
func (c *Catalog) Clone() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o := NewCatalog()
	for k, f := range c.fonts {
		o.fonts[k] = f.Clone()
	}
	for k, fk := range c.instances {
		o.instances[k] = fk
	}
	for k, n := range c.users {
		o.users[k] = n
	}
	for k, d := range c.images {
		o.images[k] = d
	}
	return o
}

// Replace makes c hold the contents of o and empties o. The font references
// c held before are released.
func (c *Catalog) Replace(o *Catalog) {
	if c == o {
		return
	}
	o.mu.Lock()
	fonts, instances, users, images := o.fonts, o.instances, o.users, o.images
	o.fonts = make(map[FontKey]FontRef)
	o.instances = make(map[FontInstanceKey]FontKey)
	o.users = make(map[FontKey]int)
	o.images = make(map[ImageKey]ImageDescriptor)
	o.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.fonts {
		f.Release()
	}
	c.fonts, c.instances, c.users, c.images = fonts, instances, users, images
}

// Close releases every font reference held by the catalog and empties it.
func (c *Catalog) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.fonts {
		f.Release()
	}
	clear(c.fonts)
	clear(c.instances)
	clear(c.users)
	clear(c.images)
}
