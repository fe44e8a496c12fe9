// Package fbo models framebuffer attachments: the indirection between a
// framebuffer slot and the resource that backs it.
//
// # Overview
//
// A slot (color N, depth, stencil, or the back buffer of a default
// framebuffer) can be backed by three structurally different resources:
//
//   - a [Texture], which has many images selected by an [ImageIndex]
//     (mip level, cube face, array layer or 3D slice)
//   - a [Renderbuffer], which has exactly one image
//   - a [Surface], whose color or depth-stencil image is selected by the
//     slot's [Binding]
//
// All three implement [AttachmentResource]. An [Attachment] pairs one of
// them with a [Target] (binding plus image index) and answers geometry and
// format queries by asking the resource every time. Nothing is cached, so
// resizing a resource is visible through every attachment that references
// it.
//
// # Variants
//
// [Attachment] is sealed. Its implementations are [*TextureAttachment],
// [*RenderbufferAttachment] and [*DefaultAttachment]. Texture-only
// accessors such as MipLevel and Layer exist only on *TextureAttachment:
//
//	tex := fbo.NewTexture(fbo.Texture2DArray)
//	_ = tex.SetStorage(4, gputypes.TextureFormatRGBA8Unorm, gputypes.Extent3D{Width: 256, Height: 256, DepthOrArrayLayers: 8})
//
//	a := fbo.NewTextureAttachment(fbo.ColorBinding(0), tex, fbo.Image2DArray(2, 5))
//	defer a.Release()
//	fmt.Println(a.Width(), a.MipLevel(), a.Layer()) // 64 2 5
//
// Code holding the interface uses [AsTexture], [AsRenderbuffer] or
// [AsDefault]. Asking for the wrong variant is a programming error and
// panics.
//
// # Ownership
//
// Constructing an attachment acquires one reference on its resource;
// Release drops it. A [Framebuffer] owns its attachments and releases them
// when a slot is replaced or the framebuffer is destroyed.
//
// # Formats
//
// Bit depths, component type and color encoding come from the static table
// in package [github.com/gogpu/fbo/format], keyed by
// [github.com/gogpu/gputypes.TextureFormat].
//
// # Logging
//
// fbo logs through [log/slog] and is silent by default. See [SetLogger].
package fbo
