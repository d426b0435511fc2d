// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dependency

import (
	"iter"
	"log/slog"
	"slices"

	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/object"
)

// Option configures a dependency walk.
type Option func(*options)

type options struct {
	unresolved func(asset.TypedRef)
	logger     *slog.Logger
}

// WithUnresolved calls record for each reference that did not resolve,
// at the point the walk reaches it.
func WithUnresolved(record func(asset.TypedRef)) Option {
	return func(o *options) { o.unresolved = record }
}

// WithLogger logs unresolved references at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Dependencies returns the objects obj references, resolved through
// lookup. Resolved values that are not decoded objects are skipped like
// unresolved ones.
func Dependencies(obj object.Object, lookup asset.Lookup, opts ...Option) iter.Seq[object.Object] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return func(yield func(object.Object) bool) {
		for _, ref := range obj.References() {
			if ref.IsNull() {
				continue
			}
			target, ok := resolve(lookup, ref)
			if !ok {
				o.report(obj, ref)
				continue
			}
			if !yield(target) {
				return
			}
		}
	}
}

func resolve(lookup asset.Lookup, ref asset.TypedRef) (object.Object, bool) {
	resolved, ok := asset.Resolve(lookup, ref)
	if !ok {
		return nil, false
	}
	target, ok := resolved.(object.Object)
	return target, ok
}

func (o *options) report(owner object.Object, ref asset.TypedRef) {
	if o.unresolved != nil {
		o.unresolved(ref)
	}
	if o.logger != nil {
		o.logger.Debug("unresolved reference",
			"owner", owner.Identity().String(),
			"container", string(ref.Container),
			"path_id", ref.PathID,
		)
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[object.Object]) []object.Object {
	return slices.Collect(seq)
}

// Unique yields the first occurrence of each object in seq, keyed by
// identity.
func Unique(seq iter.Seq[object.Object]) iter.Seq[object.Object] {
	return func(yield func(object.Object) bool) {
		seen := make(map[asset.Key]bool)
		for obj := range seq {
			key := obj.Identity().Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if !yield(obj) {
				return
			}
		}
	}
}

// Walk yields obj and every object transitively reachable from it
// through resolvable references, each once, in breadth-first order.
func Walk(obj object.Object, lookup asset.Lookup, opts ...Option) iter.Seq[object.Object] {
	return func(yield func(object.Object) bool) {
		seen := map[asset.Key]bool{obj.Identity().Key(): true}
		queue := []object.Object{obj}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if !yield(current) {
				return
			}
			for target := range Dependencies(current, lookup, opts...) {
				key := target.Identity().Key()
				if seen[key] {
					continue
				}
				seen[key] = true
				queue = append(queue, target)
			}
		}
	}
}
