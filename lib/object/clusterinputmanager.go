// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package object

import (
	"github.com/loveezu/UtinyRipper/lib/asset"
	"github.com/loveezu/UtinyRipper/lib/export"
)

// ClusterInput maps one cluster device input to a named axis.
type ClusterInput struct {
	Name        string
	DeviceName  string
	ServerIndex int32
	Index       int32
	Type        int32
}

// Two empty strings and three int32 fields.
const clusterInputSize = 20

func ReadClusterInput(r *Reader) ClusterInput {
	return ClusterInput{
		Name:        r.ReadAlignedString(),
		DeviceName:  r.ReadAlignedString(),
		ServerIndex: r.Int32(),
		Index:       r.Int32(),
		Type:        r.Int32(),
	}
}

func (c ClusterInput) Export() *export.Mapping {
	return export.NewMapping().
		AddString("m_Name", c.Name).
		AddString("m_DeviceName", c.DeviceName).
		AddInt("m_ServerIndex", int64(c.ServerIndex)).
		AddInt("m_Index", int64(c.Index)).
		AddInt("m_Type", int64(c.Type))
}

// ClusterInputManager is the project-wide table of cluster inputs. It is
// a global game manager, so it carries only the common header before
// its own fields.
type ClusterInputManager struct {
	Base
	Inputs []ClusterInput
}

func NewClusterInputManager(identity asset.Identity) *ClusterInputManager {
	return &ClusterInputManager{Base: NewBase(identity, asset.ClassClusterInputManager)}
}

func (m *ClusterInputManager) Decode(r *Reader) {
	m.Base.Decode(r)
	m.Inputs = ReadArray(r, clusterInputSize, ReadClusterInput)
}

func (m *ClusterInputManager) Export(ctx *export.Context) (*export.Mapping, error) {
	inputs := export.NewSequence()
	for _, input := range m.Inputs {
		inputs.Append(input.Export())
	}
	return m.ExportHeader(ctx).Add("m_Inputs", inputs), nil
}

// ExportName places the manager with the other project settings.
func (m *ClusterInputManager) ExportName() string {
	return "ProjectSettings/ClusterInputManager"
}
