// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/format"
	"github.com/gogpu/fbo/internal/handle"
	"github.com/gogpu/fbo/internal/refcount"
	"github.com/gogpu/gputypes"
)

var renderbufferIDs handle.Namespace

// Renderbuffer is an attachable resource with exactly one image.
// It has no storage until SetStorage is called.
type Renderbuffer struct {
	refcount.Counter

	id      uint32
	label   string
	format  gputypes.TextureFormat
	width   int
	height  int
	samples int
}

// NewRenderbuffer creates a renderbuffer without storage.
func NewRenderbuffer(opts ...Option) *Renderbuffer {
	o := applyOptions(opts)
	return &Renderbuffer{
		id:     renderbufferIDs.Next(),
		label:  o.label,
		format: gputypes.TextureFormatUndefined,
	}
}

// SetStorage (re)defines the renderbuffer image.
// Zero width or height is allowed and yields an empty image.
func (r *Renderbuffer) SetStorage(f gputypes.TextureFormat, width, height, samples int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("fbo: renderbuffer %d size %dx%d: %w", r.id, width, height, ErrInvalidSize)
	}
	if samples < 0 {
		return fmt.Errorf("fbo: renderbuffer %d with %d samples: %w", r.id, samples, ErrInvalidSamples)
	}
	if !format.Properties(f).Renderable {
		return fmt.Errorf("fbo: renderbuffer %d format %v: %w", r.id, f, ErrUnsupportedFormat)
	}
	r.format = f
	r.width = width
	r.height = height
	r.samples = samples

	Logger().Debug("fbo: renderbuffer storage defined",
		"renderbuffer", r.id, "label", r.label, "format", f,
		"width", width, "height", height, "samples", samples)
	return nil
}

// ID returns the renderbuffer identity.
func (r *Renderbuffer) ID() uint32 { return r.id }

// Label returns the debug label.
func (r *Renderbuffer) Label() string { return r.label }

// Width returns the image width.
func (r *Renderbuffer) Width() int { return r.width }

// Height returns the image height.
func (r *Renderbuffer) Height() int { return r.height }

// Format returns the image format.
func (r *Renderbuffer) Format() gputypes.TextureFormat { return r.format }

// Samples returns the sample count.
func (r *Renderbuffer) Samples() int { return r.samples }

// A renderbuffer has a single image, so the target is ignored.

func (r *Renderbuffer) AttachmentWidth(Target) int                      { return r.width }
func (r *Renderbuffer) AttachmentHeight(Target) int                     { return r.height }
func (r *Renderbuffer) AttachmentFormat(Target) gputypes.TextureFormat { return r.format }
func (r *Renderbuffer) AttachmentSamples(Target) int                    { return r.samples }

var _ AttachmentResource = (*Renderbuffer)(nil)
