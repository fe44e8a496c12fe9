// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

import (
	"github.com/gogpu/fbo/format"
	"github.com/gogpu/gputypes"
)

// Attachment is the binding of one framebuffer slot to a resource.
//
// Attachment is sealed: its only implementations are *TextureAttachment,
// *RenderbufferAttachment and *DefaultAttachment. Accessors that only make
// sense for one variant live on that variant's type. Code holding an
// Attachment reaches them through AsTexture, AsRenderbuffer or AsDefault.
//
// Geometry and format are never cached. Every query asks the resource, so
// resizing or reformatting it is visible through all of its attachments.
//
// An attachment holds one reference on its resource from construction
// until Release. After Release, every method that reads the resource
// panics. Attachments are not rebound; a framebuffer replaces them.
type Attachment interface {
	// Type returns the variant tag.
	Type() Type

	// Binding returns the framebuffer slot of the attachment.
	Binding() Binding

	// Target returns the binding and image index the resource is
	// queried with.
	Target() Target

	// ID returns the identity of the attached resource.
	ID() uint32

	// IsResourceWithID reports whether the attachment is of the given
	// type and references the resource with the given ID.
	IsResourceWithID(kind Type, id uint32) bool
	IsTextureWithID(id uint32) bool
	IsRenderbufferWithID(id uint32) bool

	Width() int
	Height() int
	Format() gputypes.TextureFormat
	Samples() int

	// Values derived from Format through the format table.
	RedSize() int
	GreenSize() int
	BlueSize() int
	AlphaSize() int
	DepthSize() int
	StencilSize() int
	ComponentType() format.ComponentType
	ColorEncoding() format.ColorEncoding

	// Resource returns the attached resource.
	Resource() AttachmentResource

	// Release drops the reference on the resource. Only the first call
	// has an effect.
	Release()

	sealed()
}

// attachment holds what every variant shares.
type attachment struct {
	typ      Type
	target   Target
	resource AttachmentResource
}

func newAttachment(typ Type, b Binding, index ImageIndex, r AttachmentResource) attachment {
	r.AddRef()
	return attachment{
		typ:      typ,
		target:   NewTarget(b, index),
		resource: r,
	}
}

// live returns the resource, panicking if the attachment was released.
func (a *attachment) live() AttachmentResource {
	if a.resource == nil {
		panic("fbo: use of released " + a.typ.String() + " attachment")
	}
	return a.resource
}

func (a *attachment) sealed() {}

func (a *attachment) Type() Type       { return a.typ }
func (a *attachment) Binding() Binding { return a.target.Binding() }
func (a *attachment) Target() Target   { return a.target }
func (a *attachment) ID() uint32       { return a.live().ID() }

func (a *attachment) IsResourceWithID(kind Type, id uint32) bool {
	return a.typ == kind && a.ID() == id
}

func (a *attachment) IsTextureWithID(id uint32) bool {
	return a.IsResourceWithID(TypeTexture, id)
}

func (a *attachment) IsRenderbufferWithID(id uint32) bool {
	return a.IsResourceWithID(TypeRenderbuffer, id)
}

func (a *attachment) Width() int   { return a.live().AttachmentWidth(a.target) }
func (a *attachment) Height() int  { return a.live().AttachmentHeight(a.target) }
func (a *attachment) Samples() int { return a.live().AttachmentSamples(a.target) }

func (a *attachment) Format() gputypes.TextureFormat {
	return a.live().AttachmentFormat(a.target)
}

func (a *attachment) info() format.Info { return format.Properties(a.Format()) }

func (a *attachment) RedSize() int     { return a.info().RedBits }
func (a *attachment) GreenSize() int   { return a.info().GreenBits }
func (a *attachment) BlueSize() int    { return a.info().BlueBits }
func (a *attachment) AlphaSize() int   { return a.info().AlphaBits }
func (a *attachment) DepthSize() int   { return a.info().DepthBits }
func (a *attachment) StencilSize() int { return a.info().StencilBits }

func (a *attachment) ComponentType() format.ComponentType { return a.info().ComponentType }
func (a *attachment) ColorEncoding() format.ColorEncoding { return a.info().ColorEncoding }

func (a *attachment) Resource() AttachmentResource { return a.live() }

func (a *attachment) Release() {
	if a.resource == nil {
		return
	}
	r := a.resource
	a.resource = nil
	r.Release()
}

// TextureAttachment references one image of a texture.
type TextureAttachment struct {
	attachment
	texture *Texture
}

// NewTextureAttachment attaches the image of tex selected by index at
// binding. It panics if tex is nil or index selects no image.
func NewTextureAttachment(b Binding, tex *Texture, index ImageIndex) *TextureAttachment {
	if tex == nil {
		panic("fbo: texture attachment without texture")
	}
	if !index.Valid() {
		panic("fbo: texture attachment with invalid image index")
	}
	return &TextureAttachment{
		attachment: newAttachment(TypeTexture, b, index, tex),
		texture:    tex,
	}
}

// Texture returns the attached texture.
func (a *TextureAttachment) Texture() *Texture {
	a.live()
	return a.texture
}

// ImageIndex returns the index of the attached image.
func (a *TextureAttachment) ImageIndex() ImageIndex { return a.target.ImageIndex() }

// CubeMapFace returns the attached cube face, or CubeFaceNone if the
// image is not a cube map face.
func (a *TextureAttachment) CubeMapFace() CubeFace { return a.target.ImageIndex().CubeFace() }

// MipLevel returns the attached mip level.
func (a *TextureAttachment) MipLevel() int { return a.target.ImageIndex().Level }

// Layer returns the attached layer of a 2D array or 3D texture, and 0
// for every other kind of image.
func (a *TextureAttachment) Layer() int { return a.target.ImageIndex().LayerIndex() }

// RenderbufferAttachment references a renderbuffer.
type RenderbufferAttachment struct {
	attachment
	renderbuffer *Renderbuffer
}

// NewRenderbufferAttachment attaches rb at binding.
// It panics if rb is nil.
func NewRenderbufferAttachment(b Binding, rb *Renderbuffer) *RenderbufferAttachment {
	if rb == nil {
		panic("fbo: renderbuffer attachment without renderbuffer")
	}
	return &RenderbufferAttachment{
		attachment:   newAttachment(TypeRenderbuffer, b, InvalidImageIndex(), rb),
		renderbuffer: rb,
	}
}

// Renderbuffer returns the attached renderbuffer.
func (a *RenderbufferAttachment) Renderbuffer() *Renderbuffer {
	a.live()
	return a.renderbuffer
}

// DefaultAttachment references an image of a presentation surface.
// The binding selects the image: BindingBack for color, BindingDepth or
// BindingStencil for the depth-stencil image.
type DefaultAttachment struct {
	attachment
	surface *Surface
}

// NewDefaultAttachment attaches the image of s selected by binding.
// It panics if s is nil.
func NewDefaultAttachment(b Binding, s *Surface) *DefaultAttachment {
	if s == nil {
		panic("fbo: default attachment without surface")
	}
	return &DefaultAttachment{
		attachment: newAttachment(TypeDefault, b, InvalidImageIndex(), s),
		surface:    s,
	}
}

// Surface returns the attached surface.
func (a *DefaultAttachment) Surface() *Surface {
	a.live()
	return a.surface
}

var (
	_ Attachment = (*TextureAttachment)(nil)
	_ Attachment = (*RenderbufferAttachment)(nil)
	_ Attachment = (*DefaultAttachment)(nil)
)

// AsTexture returns a as a texture attachment.
// It panics if a is of another variant.
func AsTexture(a Attachment) *TextureAttachment {
	t, ok := a.(*TextureAttachment)
	if !ok || t == nil {
		panic(mismatch(a, TypeTexture))
	}
	return t
}

// AsRenderbuffer returns a as a renderbuffer attachment.
// It panics if a is of another variant.
func AsRenderbuffer(a Attachment) *RenderbufferAttachment {
	r, ok := a.(*RenderbufferAttachment)
	if !ok || r == nil {
		panic(mismatch(a, TypeRenderbuffer))
	}
	return r
}

// AsDefault returns a as a default attachment.
// It panics if a is of another variant.
func AsDefault(a Attachment) *DefaultAttachment {
	d, ok := a.(*DefaultAttachment)
	if !ok || d == nil {
		panic(mismatch(a, TypeDefault))
	}
	return d
}

func mismatch(a Attachment, want Type) string {
	got := "nil"
	if a != nil {
		got = a.Type().String()
	}
	return "fbo: " + got + " attachment used as " + want.String() + " attachment"
}
