// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding.
var encMode cbor.EncMode

// decMode accepts standard CBOR. Unknown fields are ignored so a
// snapshot written by a newer build with an added field still decodes.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Snapshots never use non-string map keys; decoding into any
		// yields map[string]any instead of map[any]any.
		DefaultMapType:  reflect.TypeOf(map[string]any(nil)),
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR value, used to delay decoding of a
// snapshot body until its envelope has been checked.
type RawMessage = cbor.RawMessage

// SnapshotFormat is the envelope format written by EncodeSnapshot. It
// changes whenever a variant's field layout changes in a way older
// snapshots cannot be decoded into.
const SnapshotFormat = 1

// ErrSnapshotMismatch is returned when a snapshot was written under
// another format or for another class.
var ErrSnapshotMismatch = errors.New("snapshot mismatch")

type snapshot struct {
	Format  int        `cbor:"format"`
	ClassID int32      `cbor:"class_id"`
	Body    RawMessage `cbor:"body"`
}

// EncodeSnapshot encodes v as the snapshot of an object of classID.
func EncodeSnapshot(classID int32, v any) ([]byte, error) {
	body, err := Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot body: %w", err)
	}
	return Marshal(snapshot{Format: SnapshotFormat, ClassID: classID, Body: body})
}

// DecodeSnapshot decodes a snapshot of an object of classID into v.
func DecodeSnapshot(data []byte, classID int32, v any) error {
	var envelope snapshot
	if err := Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decoding snapshot envelope: %w", err)
	}
	if envelope.Format != SnapshotFormat {
		return fmt.Errorf("snapshot format %d, want %d: %w", envelope.Format, SnapshotFormat, ErrSnapshotMismatch)
	}
	if envelope.ClassID != classID {
		return fmt.Errorf("snapshot of class %d, want %d: %w", envelope.ClassID, classID, ErrSnapshotMismatch)
	}
	if err := Unmarshal(envelope.Body, v); err != nil {
		return fmt.Errorf("decoding snapshot body: %w", err)
	}
	return nil
}
