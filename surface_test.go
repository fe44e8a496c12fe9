// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	format gputypes.TextureFormat
}

func (m *mockProvider) Device() gpucontext.Device             { return &mockDevice{} }
func (m *mockProvider) Queue() gpucontext.Queue               { return &mockQueue{} }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return &mockAdapter{} }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

var _ gpucontext.DeviceProvider = (*mockProvider)(nil)

func TestNewSurface(t *testing.T) {
	s, err := NewSurface(800, 600, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatDepth24PlusStencil8,
		WithLabel("window"), WithSamples(4))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if s.ID() == InvalidID {
		t.Error("ID() = InvalidID")
	}
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", s.Width(), s.Height())
	}
	if s.Samples() != 4 {
		t.Errorf("Samples() = %d, want 4", s.Samples())
	}
	if s.Label() != "window" {
		t.Errorf("Label() = %q, want %q", s.Label(), "window")
	}
}

func TestNewSurfaceErrors(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		color   gputypes.TextureFormat
		ds      gputypes.TextureFormat
		opts    []Option
		wantErr error
	}{
		{"zero width", 0, 10, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatUndefined, nil, ErrInvalidSize},
		{"negative height", 10, -1, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatUndefined, nil, ErrInvalidSize},
		{"depth as color", 10, 10, gputypes.TextureFormatDepth32Float, gputypes.TextureFormatUndefined, nil, ErrUnsupportedFormat},
		{"color as depth", 10, 10, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8Unorm, nil, ErrUnsupportedFormat},
		{"negative samples", 10, 10, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatUndefined, []Option{WithSamples(-2)}, ErrInvalidSamples},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSurface(tt.w, tt.h, tt.color, tt.ds, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewSurface() error = %v, want %v", err, tt.wantErr)
			}
			if s != nil {
				t.Error("NewSurface() returned a surface on error")
			}
		})
	}
}

func TestNewSurfaceFromProvider(t *testing.T) {
	s, err := NewSurfaceFromProvider(&mockProvider{format: gputypes.TextureFormatBGRA8UnormSrgb}, 320, 240)
	if err != nil {
		t.Fatalf("NewSurfaceFromProvider: %v", err)
	}
	if s.ColorFormat() != gputypes.TextureFormatBGRA8UnormSrgb {
		t.Errorf("ColorFormat() = %v, want BGRA8UnormSrgb", s.ColorFormat())
	}
	if s.DepthStencilFormat() != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("DepthStencilFormat() = %v, want Depth24PlusStencil8", s.DepthStencilFormat())
	}

	if _, err := NewSurfaceFromProvider(nil, 320, 240); !errors.Is(err, ErrNilResource) {
		t.Errorf("nil provider error = %v, want ErrNilResource", err)
	}
}

func TestSurfaceFormatByBinding(t *testing.T) {
	s, err := NewSurface(16, 16, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatDepth32Float)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	tests := []struct {
		b    Binding
		want gputypes.TextureFormat
	}{
		{BindingBack, gputypes.TextureFormatRGBA8Unorm},
		{ColorBinding(0), gputypes.TextureFormatRGBA8Unorm},
		{BindingDepth, gputypes.TextureFormatDepth32Float},
		{BindingStencil, gputypes.TextureFormatDepth32Float},
		{BindingDepthStencil, gputypes.TextureFormatDepth32Float},
	}
	for _, tt := range tests {
		if got := s.AttachmentFormat(NewTarget(tt.b, InvalidImageIndex())); got != tt.want {
			t.Errorf("AttachmentFormat(%v) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestSurfaceResize(t *testing.T) {
	s, err := NewSurface(16, 16, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatUndefined)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if err := s.Resize(1024, 768); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	tg := NewTarget(BindingBack, InvalidImageIndex())
	if s.AttachmentWidth(tg) != 1024 || s.AttachmentHeight(tg) != 768 {
		t.Errorf("attachment size = %dx%d, want 1024x768", s.AttachmentWidth(tg), s.AttachmentHeight(tg))
	}
	if err := s.Resize(0, 768); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Resize(0, 768) error = %v, want ErrInvalidSize", err)
	}
	if s.Width() != 1024 {
		t.Error("failed Resize changed the width")
	}
}
