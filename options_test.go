// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultOptions(t *testing.T) {
	o := applyOptions(nil)
	if o.label != "" {
		t.Errorf("label = %q, want empty", o.label)
	}
	if o.samples != 0 {
		t.Errorf("samples = %d, want 0", o.samples)
	}
	if o.usage&gputypes.TextureUsageRenderAttachment == 0 {
		t.Error("default usage lacks RenderAttachment")
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	o := applyOptions([]Option{
		WithLabel("first"),
		WithSamples(4),
		WithLabel("second"),
		WithUsage(gputypes.TextureUsageCopySrc),
	})
	if o.label != "second" {
		t.Errorf("label = %q, want %q", o.label, "second")
	}
	if o.samples != 4 {
		t.Errorf("samples = %d, want 4", o.samples)
	}
	if o.usage != gputypes.TextureUsageCopySrc {
		t.Errorf("usage = %v, want CopySrc", o.usage)
	}
}
