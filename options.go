// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import "github.com/gogpu/gputypes"

// Option configures a resource or framebuffer during creation.
//
// Example:
//
//	tex := fbo.NewTexture(fbo.Texture2D, fbo.WithLabel("shadow-map"))
//	rb := fbo.NewRenderbuffer(fbo.WithLabel("msaa-color"))
type Option func(*options)

// options holds optional configuration shared by all constructors.
// Each constructor reads the fields that apply to it.
type options struct {
	label   string
	samples int
	usage   gputypes.TextureUsage
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		samples: 0,
		usage:   gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLabel sets a debug label, used in log records.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// WithSamples sets the sample count of a surface.
// Zero means single-sampled. Textures and renderbuffers take their sample
// count from their storage instead.
func WithSamples(n int) Option {
	return func(o *options) {
		o.samples = n
	}
}

// WithUsage sets the usage flags of a texture.
// Only textures with TextureUsageRenderAttachment can be attached to a
// framebuffer.
func WithUsage(u gputypes.TextureUsage) Option {
	return func(o *options) {
		o.usage = u
	}
}
