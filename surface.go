// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/format"
	"github.com/gogpu/fbo/internal/handle"
	"github.com/gogpu/fbo/internal/refcount"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

var surfaceIDs handle.Namespace

// Surface is a presentation surface: the implicit color and depth-stencil
// images behind a default framebuffer.
//
// Both images always share the surface size. Which one an attachment
// references is decided by the attachment binding: BindingBack and color
// bindings select the color image, depth and stencil bindings select the
// depth-stencil image.
type Surface struct {
	refcount.Counter

	id                 uint32
	label              string
	width              int
	height             int
	colorFormat        gputypes.TextureFormat
	depthStencilFormat gputypes.TextureFormat
	samples            int
}

// NewSurface creates a surface of the given size.
// depthStencil may be TextureFormatUndefined for a surface without
// depth and stencil.
func NewSurface(width, height int, color, depthStencil gputypes.TextureFormat, opts ...Option) (*Surface, error) {
	o := applyOptions(opts)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("fbo: surface size %dx%d: %w", width, height, ErrInvalidSize)
	}
	if o.samples < 0 {
		return nil, fmt.Errorf("fbo: surface with %d samples: %w", o.samples, ErrInvalidSamples)
	}
	if info := format.Properties(color); !info.Renderable || !info.IsColor() {
		return nil, fmt.Errorf("fbo: surface color format %v: %w", color, ErrUnsupportedFormat)
	}
	if depthStencil != gputypes.TextureFormatUndefined {
		info := format.Properties(depthStencil)
		if !info.IsDepth() && !info.IsStencil() {
			return nil, fmt.Errorf("fbo: surface depth-stencil format %v: %w", depthStencil, ErrUnsupportedFormat)
		}
	}

	s := &Surface{
		id:                 surfaceIDs.Next(),
		label:              o.label,
		width:              width,
		height:             height,
		colorFormat:        color,
		depthStencilFormat: depthStencil,
		samples:            o.samples,
	}
	Logger().Debug("fbo: surface created",
		"surface", s.id, "label", s.label, "width", width, "height", height,
		"color", color, "depthStencil", depthStencil)
	return s, nil
}

// NewSurfaceFromProvider creates a surface in the presentation format of
// the host's device provider, with a Depth24PlusStencil8 depth-stencil
// image.
func NewSurfaceFromProvider(p gpucontext.DeviceProvider, width, height int, opts ...Option) (*Surface, error) {
	if p == nil {
		return nil, fmt.Errorf("fbo: surface provider: %w", ErrNilResource)
	}
	return NewSurface(width, height, p.SurfaceFormat(), gputypes.TextureFormatDepth24PlusStencil8, opts...)
}

// Resize changes the size of both surface images.
// Attachments to the surface observe the new size immediately.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fbo: surface %d resize to %dx%d: %w", s.id, width, height, ErrInvalidSize)
	}
	s.width = width
	s.height = height
	Logger().Debug("fbo: surface resized", "surface", s.id, "width", width, "height", height)
	return nil
}

// ID returns the surface identity.
func (s *Surface) ID() uint32 { return s.id }

// Label returns the debug label.
func (s *Surface) Label() string { return s.label }

// Width returns the surface width.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height.
func (s *Surface) Height() int { return s.height }

// ColorFormat returns the format of the color image.
func (s *Surface) ColorFormat() gputypes.TextureFormat { return s.colorFormat }

// DepthStencilFormat returns the format of the depth-stencil image, or
// TextureFormatUndefined if the surface has none.
func (s *Surface) DepthStencilFormat() gputypes.TextureFormat { return s.depthStencilFormat }

// Samples returns the sample count.
func (s *Surface) Samples() int { return s.samples }

// AttachmentWidth returns the surface width.
func (s *Surface) AttachmentWidth(Target) int { return s.width }

// AttachmentHeight returns the surface height.
func (s *Surface) AttachmentHeight(Target) int { return s.height }

// AttachmentFormat returns the color format for color bindings and the
// depth-stencil format otherwise.
func (s *Surface) AttachmentFormat(tg Target) gputypes.TextureFormat {
	if b := tg.Binding(); b == BindingBack || b.IsColor() {
		return s.colorFormat
	}
	return s.depthStencilFormat
}

// AttachmentSamples returns the surface sample count.
func (s *Surface) AttachmentSamples(Target) int { return s.samples }

var _ AttachmentResource = (*Surface)(nil)
