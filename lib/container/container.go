// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sync"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/object"
	"github.com/loveezu/UtinyRipper/lib/transfer"
)

// ErrDuplicatePathID is recorded when two objects of one container
// share a path id. The first one wins.
var ErrDuplicatePathID = errors.New("duplicate path id")

// ErrDuplicateContainer is returned by Set.Add for a container name
// that is already loaded.
var ErrDuplicateContainer = errors.New("container already loaded")

// Container is one decoded asset container.
type Container struct {
	file    object.File
	guid    asset.GUID
	objects map[int64]object.Object
	order   []int64
}

func newContainer(file object.File, guid asset.GUID, objects map[int64]object.Object) *Container {
	return &Container{
		file:    file,
		guid:    guid,
		objects: objects,
		order:   slices.Sorted(maps.Keys(objects)),
	}
}

// Ref returns the container's name.
func (c *Container) Ref() asset.ContainerRef { return c.file.Container }

// GUID returns the GUID the container's exported asset file carries.
func (c *Container) GUID() asset.GUID { return c.guid }

// Session returns the session the container was decoded under.
func (c *Container) Session() transfer.Session { return c.file.Session }

// File returns the decode-time file description, including the
// external file table.
func (c *Container) File() object.File { return c.file }

// Len returns the number of decoded objects.
func (c *Container) Len() int { return len(c.objects) }

// Object returns the object with the given path id.
func (c *Container) Object(pathID int64) (object.Object, bool) {
	obj, ok := c.objects[pathID]
	return obj, ok
}

// Objects yields the decoded objects in ascending path id order.
func (c *Container) Objects() iter.Seq[object.Object] {
	return func(yield func(object.Object) bool) {
		for _, pathID := range c.order {
			if !yield(c.objects[pathID]) {
				return
			}
		}
	}
}

// Resolve implements asset.Lookup for references into this container
// only.
func (c *Container) Resolve(container asset.ContainerRef, pathID int64) (asset.Asset, bool) {
	if container != c.file.Container {
		return nil, false
	}
	obj, ok := c.objects[pathID]
	if !ok {
		return nil, false
	}
	return obj, true
}

// Set is the registry of loaded containers. It is safe for concurrent
// use and implements asset.Lookup across all of them.
type Set struct {
	mu         sync.RWMutex
	containers map[asset.ContainerRef]*Container
}

func NewSet() *Set {
	return &Set{containers: make(map[asset.ContainerRef]*Container)}
}

// Add registers a container.
func (s *Set) Add(c *Container) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.containers[c.Ref()]; exists {
		return fmt.Errorf("%s: %w", c.Ref(), ErrDuplicateContainer)
	}
	s.containers[c.Ref()] = c
	return nil
}

// Remove unloads a container. References into it stop resolving.
func (s *Set) Remove(ref asset.ContainerRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.containers, ref)
}

// Get returns a loaded container.
func (s *Set) Get(ref asset.ContainerRef) (*Container, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.containers[ref]
	return c, ok
}

// Refs returns the names of all loaded containers, sorted.
func (s *Set) Refs() []asset.ContainerRef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.containers))
}

// Resolve implements asset.Lookup.
func (s *Set) Resolve(container asset.ContainerRef, pathID int64) (asset.Asset, bool) {
	c, ok := s.Get(container)
	if !ok {
		return nil, false
	}
	return c.Resolve(container, pathID)
}

// ExternalGUIDs returns the GUID of every loaded container, in the form
// export.Options expects.
func (s *Set) ExternalGUIDs() map[asset.ContainerRef]asset.GUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	guids := make(map[asset.ContainerRef]asset.GUID, len(s.containers))
	for ref, c := range s.containers {
		guids[ref] = c.guid
	}
	return guids
}
