// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package handle allocates integer identities for resources.
//
// Each resource kind owns a Namespace, so a texture and a renderbuffer may
// share the same numeric ID. Zero is never handed out and marks an
// invalid handle.
package handle

import "sync/atomic"

// Namespace hands out increasing IDs starting at 1.
type Namespace struct {
	last atomic.Uint32
}

// Next returns a fresh ID, unique within the namespace.
func (n *Namespace) Next() uint32 {
	return n.last.Add(1)
}
