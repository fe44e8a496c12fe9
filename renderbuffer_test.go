// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewRenderbuffer(t *testing.T) {
	rb := NewRenderbuffer(WithLabel("rb"))
	if rb.ID() == InvalidID {
		t.Error("ID() = InvalidID")
	}
	if rb.Label() != "rb" {
		t.Errorf("Label() = %q, want %q", rb.Label(), "rb")
	}
	if rb.Format() != gputypes.TextureFormatUndefined {
		t.Errorf("Format() = %v, want Undefined", rb.Format())
	}
	if rb.Width() != 0 || rb.Height() != 0 || rb.Samples() != 0 {
		t.Errorf("size = %dx%d samples %d, want zero", rb.Width(), rb.Height(), rb.Samples())
	}
}

func TestRenderbufferSetStorage(t *testing.T) {
	rb := NewRenderbuffer()
	if err := rb.SetStorage(gputypes.TextureFormatDepth24PlusStencil8, 640, 480, 4); err != nil {
		t.Fatalf("SetStorage: %v", err)
	}

	tg := NewTarget(BindingDepthStencil, InvalidImageIndex())
	if got := rb.AttachmentWidth(tg); got != 640 {
		t.Errorf("AttachmentWidth() = %d, want 640", got)
	}
	if got := rb.AttachmentHeight(tg); got != 480 {
		t.Errorf("AttachmentHeight() = %d, want 480", got)
	}
	if got := rb.AttachmentFormat(tg); got != gputypes.TextureFormatDepth24PlusStencil8 {
		t.Errorf("AttachmentFormat() = %v, want Depth24PlusStencil8", got)
	}
	if got := rb.AttachmentSamples(tg); got != 4 {
		t.Errorf("AttachmentSamples() = %d, want 4", got)
	}
}

func TestRenderbufferSetStorageZeroSize(t *testing.T) {
	rb := NewRenderbuffer()
	if err := rb.SetStorage(gputypes.TextureFormatRGBA8Unorm, 0, 0, 0); err != nil {
		t.Errorf("SetStorage with zero size: %v", err)
	}
}

func TestRenderbufferSetStorageErrors(t *testing.T) {
	tests := []struct {
		name    string
		format  gputypes.TextureFormat
		w, h, s int
		want    error
	}{
		{"negative width", gputypes.TextureFormatRGBA8Unorm, -1, 4, 0, ErrInvalidSize},
		{"negative height", gputypes.TextureFormatRGBA8Unorm, 4, -1, 0, ErrInvalidSize},
		{"negative samples", gputypes.TextureFormatRGBA8Unorm, 4, 4, -1, ErrInvalidSamples},
		{"undefined format", gputypes.TextureFormatUndefined, 4, 4, 0, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRenderbuffer()
			if err := rb.SetStorage(tt.format, tt.w, tt.h, tt.s); !errors.Is(err, tt.want) {
				t.Errorf("SetStorage() error = %v, want %v", err, tt.want)
			}
			if rb.Format() != gputypes.TextureFormatUndefined {
				t.Error("failed SetStorage changed the format")
			}
		})
	}
}
