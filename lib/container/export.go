// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package container

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/loveezu/UtinyRipper/lib/export"
	"github.com/loveezu/UtinyRipper/lib/object"
)

// ExportResult is the outcome of exporting one container.
type ExportResult struct {
	// Documents are the rendered documents in path id order. They have
	// also been appended to the export context.
	Documents []*export.Document

	// Failures lists objects that could not be rendered, including
	// those whose variant does not support export.
	Failures []Failure
}

// Exporter renders every object of a container in parallel.
type Exporter struct {
	// Workers bounds concurrent renders. Zero means GOMAXPROCS.
	Workers int

	Logger *slog.Logger
}

// Export renders c into exportContext, which must be fresh and must
// name c as its container. The returned error is non-nil only when ctx
// is cancelled.
func (e *Exporter) Export(ctx context.Context, c *Container, exportContext *export.Context) (*ExportResult, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("container", string(c.Ref()))

	objects := make([]object.Object, 0, c.Len())
	for obj := range c.Objects() {
		objects = append(objects, obj)
	}
	assignAnchors(objects, exportContext)

	documents := make([]*export.Document, len(objects))
	errs := make([]error, len(objects))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workerLimit(e.Workers))
	for i, obj := range objects {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			documents[i], errs[i] = object.BuildDocument(obj, exportContext)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("exporting %s: %w", c.Ref(), err)
	}

	result := &ExportResult{}
	for i, obj := range objects {
		if err := errs[i]; err != nil {
			level := slog.LevelWarn
			if errors.Is(err, object.ErrExportUnsupported) {
				level = slog.LevelDebug
			}
			logger.Log(ctx, level, "object not exported",
				"path_id", obj.Identity().PathID,
				"class", obj.ClassID().String(),
				"error", err,
			)
			result.Failures = append(result.Failures, Failure{Identity: obj.Identity(), Err: err})
			continue
		}
		exportContext.AddDocument(documents[i])
		result.Documents = append(result.Documents, documents[i])
	}
	logger.Info("exported container",
		"documents", len(result.Documents),
		"failures", len(result.Failures),
		"anchors", exportContext.AnchorCount(),
	)
	return result, nil
}

// Export renders c with a default Exporter.
func Export(ctx context.Context, c *Container, exportContext *export.Context) (*ExportResult, error) {
	return (&Exporter{}).Export(ctx, c, exportContext)
}

// assignAnchors fixes every anchor an export of objects can claim,
// so that parallel rendering does not depend on scheduling. Objects
// get the first anchors in order; local references to objects outside
// the list follow, in the order the objects report them.
func assignAnchors(objects []object.Object, exportContext *export.Context) {
	for _, obj := range objects {
		exportContext.GetOrAssignAnchor(obj.Identity().Key())
	}
	for _, obj := range objects {
		for _, ref := range obj.References() {
			if ref.IsNull() || ref.Container != exportContext.Container() {
				continue
			}
			exportContext.GetOrAssignAnchor(ref.Key())
		}
	}
}
