// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package container holds decoded containers and drives decode and
// export over all objects of one container.
//
// A [Container] is built once by [Decoder.Decode] and is read-only
// afterwards, so any number of goroutines may resolve references into
// it. A [Set] is the registry of loaded containers and is the
// asset.Lookup handed to exporters and to dependency extraction.
//
// Decoding and export run objects in parallel on a bounded worker pool.
// A failing object never aborts its container: decode failures,
// unsupported class ids and export failures are collected per object
// and the rest of the container proceeds. Only context cancellation
// stops a run early.
//
// Export output is deterministic regardless of worker count. Before any
// object is rendered, anchors are assigned sequentially in path id
// order: first every object's own anchor, then anchors for local
// references that point at objects missing from the container. Rendered
// documents are appended to the export context in the same path id
// order.
package container
