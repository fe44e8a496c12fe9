// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "github.com/gogpu/gputypes"

// InvalidID is the zero ID; no resource is ever assigned it.
const InvalidID = 0

// Type tags the attachment variant, and with it the kind of resource the
// attachment references.
type Type uint8

// Attachment types.
const (
	TypeTexture Type = iota + 1
	TypeRenderbuffer
	TypeDefault
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeTexture:
		return "texture"
	case TypeRenderbuffer:
		return "renderbuffer"
	case TypeDefault:
		return "default"
	}
	return "unknown"
}

// AttachmentResource is implemented by everything a framebuffer slot can
// reference: textures, renderbuffers and surfaces.
//
// The geometry and format methods are called with the Target of the
// querying attachment. Implementations answer from their current state on
// every call; attachments never cache the results. A resource only ever
// receives targets that an attachment of its own kind can be built with,
// so a renderbuffer never sees a meaningful image index.
type AttachmentResource interface {
	// ID returns the resource identity, unique within its kind.
	ID() uint32

	AttachmentWidth(t Target) int
	AttachmentHeight(t Target) int
	AttachmentFormat(t Target) gputypes.TextureFormat
	AttachmentSamples(t Target) int

	// AddRef and Release acquire and drop one shared reference.
	AddRef()
	Release()

	// RefCount returns the number of live references.
	RefCount() int
}
