// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/objcache"
	"github.com/loveezu/UtinyRipper/lib/object"
)

// Failure is one object that could not be decoded or exported.
type Failure struct {
	Identity asset.Identity
	Err      error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Identity, f.Err)
}

func (f Failure) Unwrap() error { return f.Err }

// DecodeResult is the outcome of decoding one container.
type DecodeResult struct {
	Container *Container

	// Failures lists objects whose bytes did not decode, in input
	// order.
	Failures []Failure

	// Skipped lists objects whose class id has no registered variant
	// or whose variant does not read their layout.
	Skipped []asset.Identity

	// CacheHits counts objects taken from the cache instead of decoded.
	CacheHits int
}

// Decoder decodes the objects of a container in parallel.
type Decoder struct {
	// Registry selects variants by class id. Nil means object.Default().
	Registry *object.Registry

	// Cache, when set, is consulted before decoding and filled after.
	Cache *objcache.Cache

	// Workers bounds concurrent decodes. Zero means GOMAXPROCS.
	Workers int

	Logger *slog.Logger
}

func (d *Decoder) registry() *object.Registry {
	if d.Registry == nil {
		return object.Default()
	}
	return d.Registry
}

func (d *Decoder) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

func workerLimit(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

type decodeOutcome struct {
	obj      object.Object
	err      error
	skipped  bool
	cacheHit bool
}

// Decode decodes raws, which all belong to file, into a Container.
// Per-object failures are reported in the result; the returned error is
// non-nil only when ctx is cancelled.
func (d *Decoder) Decode(ctx context.Context, file object.File, guid asset.GUID, raws []object.RawObjectBytes) (*DecodeResult, error) {
	logger := d.logger().With("container", string(file.Container))
	registry := d.registry()
	outcomes := make([]decodeOutcome, len(raws))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(d.Workers))
	for i := range raws {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			outcomes[i] = d.decodeOne(registry, raws[i], file, logger)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file.Container, err)
	}

	result := &DecodeResult{}
	objects := make(map[int64]object.Object, len(raws))
	for i, outcome := range outcomes {
		identity := raws[i].Identity
		switch {
		case outcome.skipped:
			result.Skipped = append(result.Skipped, identity)
		case outcome.err != nil:
			result.Failures = append(result.Failures, Failure{Identity: identity, Err: outcome.err})
		default:
			if _, exists := objects[identity.PathID]; exists {
				result.Failures = append(result.Failures, Failure{Identity: identity, Err: ErrDuplicatePathID})
				continue
			}
			objects[identity.PathID] = outcome.obj
			if outcome.cacheHit {
				result.CacheHits++
			}
		}
	}
	result.Container = newContainer(file, guid, objects)

	logger.Info("decoded container",
		"objects", len(objects),
		"failures", len(result.Failures),
		"skipped", len(result.Skipped),
		"cache_hits", result.CacheHits,
	)
	return result, nil
}

func (d *Decoder) decodeOne(registry *object.Registry, raw object.RawObjectBytes, file object.File, logger *slog.Logger) decodeOutcome {
	if !registry.Supports(raw.Identity.ClassID) {
		logger.Debug("skipping unsupported class",
			"class_id", int32(raw.Identity.ClassID),
			"path_id", raw.Identity.PathID,
		)
		return decodeOutcome{skipped: true}
	}

	var key objcache.Key
	if d.Cache != nil {
		key = objcache.KeyFor(raw, file)
		if obj, ok := d.Cache.Get(key, raw.Identity); ok {
			return decodeOutcome{obj: obj, cacheHit: true}
		}
	}

	obj, err := registry.Decode(raw, file)
	if errors.Is(err, object.ErrUnsupportedVariant) {
		logger.Debug("skipping unsupported layout",
			"class_id", int32(raw.Identity.ClassID),
			"path_id", raw.Identity.PathID,
			"error", err,
		)
		return decodeOutcome{skipped: true}
	}
	if err != nil {
		logger.Warn("object failed to decode",
			"path_id", raw.Identity.PathID,
			"class", raw.Identity.ClassID.String(),
			"error", err,
		)
		return decodeOutcome{err: err}
	}

	if d.Cache != nil {
		if err := d.Cache.Put(key, obj); err != nil {
			logger.Warn("caching decoded object failed",
				"path_id", raw.Identity.PathID,
				"error", err,
			)
		}
	}
	return decodeOutcome{obj: obj}
}
