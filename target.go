// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

// Target says which part of a resource an attachment references.
//
//   - a Renderbuffer has a single image and ignores the index
//   - a Texture has one image per kind, level and layer, selected by the index
//   - a Surface has a color and a depth-stencil image, selected by the binding
//
// Target is a comparable value. It is not validated; a resource decides how
// to interpret it when queried.
type Target struct {
	binding Binding
	index   ImageIndex
}

// NewTarget returns the target of binding at index.
func NewTarget(binding Binding, index ImageIndex) Target {
	return Target{binding: binding, index: index}
}

// Binding returns the framebuffer slot.
func (t Target) Binding() Binding { return t.binding }

// ImageIndex returns the sub-image index.
func (t Target) ImageIndex() ImageIndex { return t.index }
