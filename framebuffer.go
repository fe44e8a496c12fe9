// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"fmt"

	"github.com/gogpu/fbo/format"
	"github.com/gogpu/fbo/internal/handle"
	"github.com/gogpu/gputypes"
)

var framebufferIDs handle.Namespace

// Framebuffer stores one attachment per slot.
//
// It only keeps track of what is attached: completeness checks, drawing,
// clearing and blits belong to the layers above. Replacing an attachment
// releases the old one; Destroy releases all of them.
//
// A Framebuffer is not safe for concurrent use.
type Framebuffer struct {
	id        uint32
	label     string
	isDefault bool
	destroyed bool

	color   [MaxColorAttachments]Attachment
	depth   Attachment
	stencil Attachment
}

// NewFramebuffer creates a framebuffer with every slot empty.
func NewFramebuffer(opts ...Option) *Framebuffer {
	o := applyOptions(opts)
	return &Framebuffer{
		id:    framebufferIDs.Next(),
		label: o.label,
	}
}

// NewDefaultFramebuffer creates the default framebuffer of s.
// The color image is attached at BindingBack. The depth and stencil slots
// are attached when the surface depth-stencil format has those channels.
// A default framebuffer has ID 0 and its attachments cannot be changed.
func NewDefaultFramebuffer(s *Surface, opts ...Option) (*Framebuffer, error) {
	if s == nil {
		return nil, fmt.Errorf("fbo: default framebuffer: %w", ErrNilResource)
	}
	o := applyOptions(opts)
	fb := &Framebuffer{
		label:     o.label,
		isDefault: true,
	}
	fb.color[0] = NewDefaultAttachment(BindingBack, s)

	info := format.Properties(s.DepthStencilFormat())
	if info.IsDepth() {
		fb.depth = NewDefaultAttachment(BindingDepth, s)
	}
	if info.IsStencil() {
		fb.stencil = NewDefaultAttachment(BindingStencil, s)
	}

	Logger().Debug("fbo: default framebuffer created",
		"surface", s.ID(), "label", fb.label,
		"depth", fb.depth != nil, "stencil", fb.stencil != nil)
	return fb, nil
}

// ID returns the framebuffer identity. Default framebuffers have ID 0.
func (fb *Framebuffer) ID() uint32 { return fb.id }

// Label returns the debug label.
func (fb *Framebuffer) Label() string { return fb.label }

// IsDefault reports whether fb is the default framebuffer of a surface.
func (fb *Framebuffer) IsDefault() bool { return fb.isDefault }

// AttachTexture attaches the image of tex selected by index at binding.
// BindingDepthStencil attaches the image to both the depth and the
// stencil slot.
func (fb *Framebuffer) AttachTexture(b Binding, tex *Texture, index ImageIndex) error {
	if err := fb.checkAttach(b); err != nil {
		return err
	}
	if tex == nil {
		return fmt.Errorf("fbo: attach texture at %s: %w", b, ErrNilResource)
	}
	if !index.Valid() {
		return fmt.Errorf("fbo: attach texture %d at %s: %w", tex.ID(), b, ErrInvalidImageIndex)
	}
	if typ, _ := index.Kind.TextureType(); typ != tex.Type() {
		return fmt.Errorf("fbo: attach %s image of %s texture %d: %w", index.Kind, tex.Type(), tex.ID(), ErrImageKindMismatch)
	}
	if tex.Usage()&gputypes.TextureUsageRenderAttachment == 0 {
		return fmt.Errorf("fbo: attach texture %d at %s: %w", tex.ID(), b, ErrNotRenderable)
	}

	fb.set(b, func(slot Binding) Attachment { return NewTextureAttachment(slot, tex, index) })
	Logger().Debug("fbo: texture attached",
		"framebuffer", fb.id, "binding", b, "texture", tex.ID(),
		"kind", index.Kind, "level", index.Level, "layer", index.Layer)
	return nil
}

// AttachRenderbuffer attaches rb at binding.
// BindingDepthStencil attaches rb to both the depth and the stencil slot.
func (fb *Framebuffer) AttachRenderbuffer(b Binding, rb *Renderbuffer) error {
	if err := fb.checkAttach(b); err != nil {
		return err
	}
	if rb == nil {
		return fmt.Errorf("fbo: attach renderbuffer at %s: %w", b, ErrNilResource)
	}

	fb.set(b, func(slot Binding) Attachment { return NewRenderbufferAttachment(slot, rb) })
	Logger().Debug("fbo: renderbuffer attached",
		"framebuffer", fb.id, "binding", b, "renderbuffer", rb.ID())
	return nil
}

// Detach empties the slot named by binding, releasing its attachment.
// Detaching an empty slot has no effect.
func (fb *Framebuffer) Detach(b Binding) error {
	if err := fb.checkAttach(b); err != nil {
		return err
	}
	fb.set(b, nil)
	Logger().Debug("fbo: slot detached", "framebuffer", fb.id, "binding", b)
	return nil
}

// DetachTexture empties every slot referencing the texture with the given
// ID and returns how many slots were emptied.
func (fb *Framebuffer) DetachTexture(id uint32) int {
	return fb.detachResource(TypeTexture, id)
}

// DetachRenderbuffer empties every slot referencing the renderbuffer with
// the given ID and returns how many slots were emptied.
func (fb *Framebuffer) DetachRenderbuffer(id uint32) int {
	return fb.detachResource(TypeRenderbuffer, id)
}

func (fb *Framebuffer) detachResource(kind Type, id uint32) int {
	if fb.destroyed || fb.isDefault {
		return 0
	}
	n := 0
	for _, slot := range fb.slots() {
		if *slot != nil && (*slot).IsResourceWithID(kind, id) {
			(*slot).Release()
			*slot = nil
			n++
		}
	}
	if n > 0 {
		Logger().Debug("fbo: resource detached",
			"framebuffer", fb.id, "type", kind, "resource", id, "slots", n)
	}
	return n
}

// Attachment returns the attachment at binding, or nil if the slot is
// empty. For BindingDepthStencil it returns the depth attachment when the
// depth and stencil slots reference the same resource, and nil otherwise.
// BindingBack names color slot 0.
func (fb *Framebuffer) Attachment(b Binding) Attachment {
	switch {
	case b == BindingBack:
		return fb.color[0]
	case b.IsColor():
		return fb.color[b.ColorIndex()]
	case b == BindingDepth:
		return fb.depth
	case b == BindingStencil:
		return fb.stencil
	case b == BindingDepthStencil:
		if fb.depth == nil || fb.stencil == nil {
			return nil
		}
		if fb.depth.IsResourceWithID(fb.stencil.Type(), fb.stencil.ID()) {
			return fb.depth
		}
	}
	return nil
}

// ColorAttachments returns the color slots in order. Empty slots are nil.
func (fb *Framebuffer) ColorAttachments() []Attachment {
	out := make([]Attachment, MaxColorAttachments)
	copy(out, fb.color[:])
	return out
}

// Destroy releases every attachment. Calling Destroy again has no effect.
func (fb *Framebuffer) Destroy() {
	if fb.destroyed {
		Logger().Warn("fbo: framebuffer destroyed twice", "framebuffer", fb.id)
		return
	}
	for _, slot := range fb.slots() {
		if *slot != nil {
			(*slot).Release()
			*slot = nil
		}
	}
	fb.destroyed = true
	Logger().Debug("fbo: framebuffer destroyed", "framebuffer", fb.id, "label", fb.label)
}

func (fb *Framebuffer) checkAttach(b Binding) error {
	if fb.destroyed {
		Logger().Warn("fbo: use of destroyed framebuffer", "framebuffer", fb.id)
		return fmt.Errorf("fbo: framebuffer %d: %w", fb.id, ErrDestroyed)
	}
	if fb.isDefault {
		return ErrDefaultFramebuffer
	}
	switch {
	case b.IsColor(), b == BindingDepth, b == BindingStencil, b == BindingDepthStencil:
		return nil
	}
	return fmt.Errorf("fbo: framebuffer %d binding %s: %w", fb.id, b, ErrInvalidBinding)
}

// set replaces the slots named by b with attachments built by mk, or
// empties them when mk is nil. The new attachment is built before the old
// one is released, so re-attaching a resource never drops its last
// reference.
func (fb *Framebuffer) set(b Binding, mk func(Binding) Attachment) {
	var slots []*Attachment
	switch {
	case b.IsColor():
		slots = []*Attachment{&fb.color[b.ColorIndex()]}
	case b == BindingDepth:
		slots = []*Attachment{&fb.depth}
	case b == BindingStencil:
		slots = []*Attachment{&fb.stencil}
	case b == BindingDepthStencil:
		slots = []*Attachment{&fb.depth, &fb.stencil}
	}
	for _, slot := range slots {
		var next Attachment
		if mk != nil {
			next = mk(b)
		}
		if *slot != nil {
			(*slot).Release()
		}
		*slot = next
	}
}

func (fb *Framebuffer) slots() []*Attachment {
	s := make([]*Attachment, 0, MaxColorAttachments+2)
	for i := range fb.color {
		s = append(s, &fb.color[i])
	}
	return append(s, &fb.depth, &fb.stencil)
}
