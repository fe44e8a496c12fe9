// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package refcount provides the shared-ownership counter embedded by
// every attachable resource.
package refcount

import "sync/atomic"

// Counter counts live references to the value that embeds it.
// The zero value has no references.
type Counter struct {
	n atomic.Int32
}

// AddRef acquires one reference.
func (c *Counter) AddRef() {
	c.n.Add(1)
}

// Release drops one reference.
// Releasing more references than were acquired is a caller bug and panics.
func (c *Counter) Release() {
	if c.n.Add(-1) < 0 {
		panic("refcount: release without matching AddRef")
	}
}

// RefCount returns the number of live references.
func (c *Counter) RefCount() int {
	return int(c.n.Load())
}
