// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package objcache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/codec"
	"github.com/loveezu/UtinyRipper/lib/object"
)

// DefaultMemoryEntries is the memory tier size when Options leaves it
// unset.
const DefaultMemoryEntries = 4096

const (
	entryMagic      = "OSNP"
	entryHeaderSize = len(entryMagic) + 1 + 4
	entryExtension  = ".snap"
)

// ErrCorruptEntry is returned for disk entries whose header or payload
// cannot be read back.
var ErrCorruptEntry = errors.New("corrupt cache entry")

// Options configures a Cache.
type Options struct {
	// MemoryEntries bounds the memory tier. Zero means
	// DefaultMemoryEntries.
	MemoryEntries int

	// Directory enables the disk tier when non-empty. It is created on
	// first write.
	Directory string

	// Compression applies to new disk entries. Entries already on disk
	// keep the tag they were written with.
	Compression CompressionTag

	// Registry constructs the target object for disk hits. Nil means
	// object.Default().
	Registry *object.Registry

	Logger *slog.Logger
}

// Stats counts cache traffic since the cache was created.
type Stats struct {
	MemoryHits uint64
	DiskHits   uint64
	Misses     uint64
	Writes     uint64
	Corrupt    uint64
}

// Cache is a two-tier decoded object cache. It is safe for concurrent
// use.
type Cache struct {
	memory      *lru.Cache[Key, object.Object]
	directory   string
	compression CompressionTag
	registry    *object.Registry
	logger      *slog.Logger

	memoryHits atomic.Uint64
	diskHits   atomic.Uint64
	misses     atomic.Uint64
	writes     atomic.Uint64
	corrupt    atomic.Uint64
}

// New creates a cache.
func New(options Options) (*Cache, error) {
	entries := options.MemoryEntries
	if entries == 0 {
		entries = DefaultMemoryEntries
	}
	memory, err := lru.New[Key, object.Object](entries)
	if err != nil {
		return nil, fmt.Errorf("creating memory tier: %w", err)
	}
	if options.Compression > CompressionZstd {
		return nil, fmt.Errorf("unsupported cache compression tag: %d", options.Compression)
	}
	registry := options.Registry
	if registry == nil {
		registry = object.Default()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Cache{
		memory:      memory,
		directory:   options.Directory,
		compression: options.Compression,
		registry:    registry,
		logger:      logger,
	}, nil
}

// Get returns the cached object for key. identity must be the identity
// the key was computed from; it selects the variant to decode disk
// snapshots into.
func (c *Cache) Get(key Key, identity asset.Identity) (object.Object, bool) {
	if obj, ok := c.memory.Get(key); ok {
		c.memoryHits.Add(1)
		return obj, true
	}
	if c.directory == "" {
		c.misses.Add(1)
		return nil, false
	}

	obj, err := c.readEntry(key, identity)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.corrupt.Add(1)
			c.logger.Warn("discarding unreadable cache entry",
				"key", key.String(),
				"object", identity.String(),
				"error", err,
			)
		}
		c.misses.Add(1)
		return nil, false
	}
	c.diskHits.Add(1)
	c.memory.Add(key, obj)
	return obj, true
}

// Put stores obj under key in both tiers. A failed disk write leaves the
// memory tier populated and is returned to the caller.
func (c *Cache) Put(key Key, obj object.Object) error {
	c.memory.Add(key, obj)
	if c.directory == "" {
		return nil
	}
	if err := c.writeEntry(key, obj); err != nil {
		return fmt.Errorf("caching %s: %w", obj.Identity(), err)
	}
	c.writes.Add(1)
	return nil
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		MemoryHits: c.memoryHits.Load(),
		DiskHits:   c.diskHits.Load(),
		Misses:     c.misses.Load(),
		Writes:     c.writes.Load(),
		Corrupt:    c.corrupt.Load(),
	}
}

// Purge empties the memory tier. Disk entries are kept.
func (c *Cache) Purge() { c.memory.Purge() }

func (c *Cache) entryPath(key Key) string {
	name := key.String()
	return filepath.Join(c.directory, name[:2], name+entryExtension)
}

func (c *Cache) readEntry(key Key, identity asset.Identity) (object.Object, error) {
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		return nil, err
	}
	if len(data) < entryHeaderSize || string(data[:len(entryMagic)]) != entryMagic {
		return nil, fmt.Errorf("%w: bad header", ErrCorruptEntry)
	}
	tag := CompressionTag(data[len(entryMagic)])
	size := binary.LittleEndian.Uint32(data[len(entryMagic)+1 : entryHeaderSize])
	body, err := decompress(data[entryHeaderSize:], tag, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}

	obj, err := c.registry.New(identity)
	if err != nil {
		return nil, err
	}
	if err := codec.DecodeSnapshot(body, int32(identity.ClassID), obj); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	if obj.Identity() != identity {
		return nil, fmt.Errorf("%w: snapshot of %s", ErrCorruptEntry, obj.Identity())
	}
	return obj, nil
}

// writeEntry writes the entry atomically: temp file in the shard
// directory, then rename.
func (c *Cache) writeEntry(key Key, obj object.Object) error {
	body, err := codec.EncodeSnapshot(int32(obj.Identity().ClassID), obj)
	if err != nil {
		return err
	}
	payload, tag, err := compress(body, c.compression)
	if err != nil {
		return err
	}

	data := make([]byte, 0, entryHeaderSize+len(payload))
	data = append(data, entryMagic...)
	data = append(data, byte(tag))
	data = binary.LittleEndian.AppendUint32(data, uint32(len(body)))
	data = append(data, payload...)

	path := c.entryPath(key)
	shard := filepath.Dir(path)
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return fmt.Errorf("creating cache shard directory: %w", err)
	}
	tempFile, err := os.CreateTemp(shard, "entry-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp cache file: %w", err)
	}
	tempPath := tempFile.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("writing temp cache file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("closing temp cache file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("renaming cache file: %w", err)
	}
	success = true
	return nil
}
