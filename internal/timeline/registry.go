package timeline

import (
	"fmt"
	"sort"
)

// Renderer is a handle the render host resolves into an actual visual
// template. The core only routes scenes to handles, it never draws.
type Renderer interface {
	LayoutKey() string
}

// Registry maps layout keys to renderers for one template family. It is
// built once per family and injected into the Builder; there is no global
// registry.
type Registry struct {
	renderers   map[string]Renderer
	fallbackKey string
}

// NewRegistry validates and wraps a renderer mapping. A missing fallback
// renderer is a configuration error, the only hard failure in this layer:
// with it present, Resolve can never fail at render time.
func NewRegistry(renderers map[string]Renderer, fallbackKey string) (*Registry, error) {
	if _, ok := renderers[fallbackKey]; !ok {
		return nil, fmt.Errorf("registry: fallback layout %q is not registered", fallbackKey)
	}

	own := make(map[string]Renderer, len(renderers))
	for k, r := range renderers {
		own[k] = r
	}
	return &Registry{renderers: own, fallbackKey: fallbackKey}, nil
}

// Resolve returns the renderer for key, or the fallback renderer when the
// key is unknown. It never fails.
func (r *Registry) Resolve(key string) Renderer {
	if renderer, ok := r.renderers[key]; ok {
		return renderer
	}
	return r.renderers[r.fallbackKey]
}

// Has reports whether key is registered directly (not via fallback).
func (r *Registry) Has(key string) bool {
	_, ok := r.renderers[key]
	return ok
}

// FallbackKey returns the configured fallback layout key.
func (r *Registry) FallbackKey() string {
	return r.fallbackKey
}

// Keys returns all registered layout keys, sorted.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.renderers))
	for k := range r.renderers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
