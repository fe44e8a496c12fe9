// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "errors"

// Errors returned by resource and framebuffer operations.
// Attachment accessors never return errors; misuse of an attachment panics.
var (
	// ErrInvalidSize is returned for non-positive image dimensions.
	ErrInvalidSize = errors.New("fbo: invalid image size")

	// ErrInvalidLevel is returned for a negative or too large mip level.
	ErrInvalidLevel = errors.New("fbo: invalid mip level")

	// ErrInvalidSamples is returned for a negative sample count.
	ErrInvalidSamples = errors.New("fbo: invalid sample count")

	// ErrUnsupportedFormat is returned for formats that cannot back an
	// attachment.
	ErrUnsupportedFormat = errors.New("fbo: unsupported format")

	// ErrImageKindMismatch is returned when an image index does not
	// address the texture type it is used with.
	ErrImageKindMismatch = errors.New("fbo: image kind does not match texture type")

	// ErrInvalidImageIndex is returned for an index that selects no image.
	ErrInvalidImageIndex = errors.New("fbo: invalid image index")

	// ErrNotRenderable is returned when a texture lacks render
	// attachment usage.
	ErrNotRenderable = errors.New("fbo: texture not created for render attachment")

	// ErrNilResource is returned when attaching a nil resource.
	ErrNilResource = errors.New("fbo: nil resource")

	// ErrInvalidBinding is returned for a binding that names no slot of
	// the framebuffer.
	ErrInvalidBinding = errors.New("fbo: invalid binding")

	// ErrDefaultFramebuffer is returned when changing the attachments of
	// a default framebuffer.
	ErrDefaultFramebuffer = errors.New("fbo: default framebuffer attachments are fixed")

	// ErrDestroyed is returned by operations on a destroyed framebuffer.
	ErrDestroyed = errors.New("fbo: framebuffer destroyed")
)
