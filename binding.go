// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "strconv"

// Binding names a framebuffer slot.
type Binding uint32

// Attachment points.
const (
	// BindingNone is the zero binding and names no slot.
	BindingNone Binding = iota

	// BindingBack is the color image of a default framebuffer.
	BindingBack

	// BindingDepth is the depth slot.
	BindingDepth

	// BindingStencil is the stencil slot.
	BindingStencil

	// BindingDepthStencil names the depth and stencil slots together.
	// Framebuffers store it as two attachments.
	BindingDepthStencil

	bindingColor0 Binding = 0x100
)

// MaxColorAttachments is the number of color slots of a framebuffer.
const MaxColorAttachments = 8

// ColorBinding returns the binding of color slot i.
// It panics if i is outside [0, MaxColorAttachments).
func ColorBinding(i int) Binding {
	if i < 0 || i >= MaxColorAttachments {
		panic("fbo: color attachment index out of range: " + strconv.Itoa(i))
	}
	return bindingColor0 + Binding(i)
}

// IsColor reports whether b is one of the color slots.
func (b Binding) IsColor() bool {
	return b >= bindingColor0 && b < bindingColor0+MaxColorAttachments
}

// ColorIndex returns the color slot index of b, or -1 if b is not a
// color binding.
func (b Binding) ColorIndex() int {
	if !b.IsColor() {
		return -1
	}
	return int(b - bindingColor0)
}

// String returns the binding name.
func (b Binding) String() string {
	switch b {
	case BindingNone:
		return "none"
	case BindingBack:
		return "back"
	case BindingDepth:
		return "depth"
	case BindingStencil:
		return "stencil"
	case BindingDepthStencil:
		return "depth-stencil"
	}
	if b.IsColor() {
		return "color" + strconv.Itoa(b.ColorIndex())
	}
	return "Binding(" + strconv.FormatUint(uint64(b), 10) + ")"
}
