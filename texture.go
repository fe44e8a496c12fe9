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

// MaxMipLevels is the number of mip levels a texture can describe.
const MaxMipLevels = 16

// TextureType is the shape of a texture.
type TextureType uint8

// Texture types.
const (
	Texture2D TextureType = iota + 1
	TextureCube
	Texture2DArray
	Texture3D
)

// Dimension returns the storage dimension of the texture type.
// Cube maps and 2D arrays are stored as layered 2D textures.
func (t TextureType) Dimension() gputypes.TextureDimension {
	if t == Texture3D {
		return gputypes.TextureDimension3D
	}
	return gputypes.TextureDimension2D
}

// String returns the type name.
func (t TextureType) String() string {
	switch t {
	case Texture2D:
		return "2d"
	case TextureCube:
		return "cube"
	case Texture2DArray:
		return "2d-array"
	case Texture3D:
		return "3d"
	}
	return "unknown"
}

// ImageDesc describes one image of a texture.
// For 2D array textures Size.DepthOrArrayLayers is the layer count; for
// 3D textures it is the depth.
type ImageDesc struct {
	Size   gputypes.Extent3D
	Format gputypes.TextureFormat
}

type imageKey struct {
	kind  ImageKind
	level int
}

var textureIDs handle.Namespace

// Texture is a multi-image attachable resource.
// Images are addressed by kind (cube face for cube maps) and mip level.
// Layers of array and 3D textures share the description of their level.
//
// Texture holds no pixel data; it only describes its images.
type Texture struct {
	refcount.Counter

	id     uint32
	typ    TextureType
	label  string
	usage  gputypes.TextureUsage
	images map[imageKey]ImageDesc
}

// NewTexture creates a texture of the given type with no images defined.
func NewTexture(typ TextureType, opts ...Option) *Texture {
	o := applyOptions(opts)
	return &Texture{
		id:     textureIDs.Next(),
		typ:    typ,
		label:  o.label,
		usage:  o.usage,
		images: make(map[imageKey]ImageDesc),
	}
}

// ID returns the texture identity.
func (t *Texture) ID() uint32 { return t.id }

// Type returns the texture type.
func (t *Texture) Type() TextureType { return t.typ }

// Label returns the debug label.
func (t *Texture) Label() string { return t.label }

// Usage returns the usage flags the texture was created with.
func (t *Texture) Usage() gputypes.TextureUsage { return t.usage }

// SetImage defines the image of the given kind at level, replacing any
// previous description. Other images are left untouched.
func (t *Texture) SetImage(kind ImageKind, level int, size gputypes.Extent3D, f gputypes.TextureFormat) error {
	size, err := t.checkImage(kind, level, size, f)
	if err != nil {
		return err
	}
	t.images[imageKey{kind, level}] = ImageDesc{Size: size, Format: f}

	Logger().Debug("fbo: texture image defined",
		"texture", t.id, "label", t.label, "kind", kind, "level", level,
		"width", size.Width, "height", size.Height, "depth", size.DepthOrArrayLayers)
	return nil
}

// SetStorage redefines the texture as a complete mip chain of levels
// images in format f, with level 0 of the given size. Width and height
// halve at every level, as does the depth of 3D textures; the layer count
// of 2D arrays stays constant. Previously defined images are discarded.
func (t *Texture) SetStorage(levels int, f gputypes.TextureFormat, size gputypes.Extent3D) error {
	if levels < 1 || levels > MaxMipLevels {
		return fmt.Errorf("fbo: texture %d storage with %d levels: %w", t.id, levels, ErrInvalidLevel)
	}
	kinds := t.kinds()
	size, err := t.checkImage(kinds[0], 0, size, f)
	if err != nil {
		return err
	}

	clear(t.images)
	for level := range levels {
		s := gputypes.Extent3D{
			Width:              max(1, size.Width>>level),
			Height:             max(1, size.Height>>level),
			DepthOrArrayLayers: size.DepthOrArrayLayers,
		}
		if t.typ == Texture3D {
			s.DepthOrArrayLayers = max(1, size.DepthOrArrayLayers>>level)
		}
		for _, k := range kinds {
			t.images[imageKey{k, level}] = ImageDesc{Size: s, Format: f}
		}
	}

	Logger().Debug("fbo: texture storage defined",
		"texture", t.id, "label", t.label, "levels", levels, "format", f,
		"width", size.Width, "height", size.Height)
	return nil
}

// ImageDesc returns the description of the image of the given kind at
// level. The second result is false if that image was never defined.
func (t *Texture) ImageDesc(kind ImageKind, level int) (ImageDesc, bool) {
	d, ok := t.images[imageKey{kind, level}]
	return d, ok
}

// kinds returns the image kinds of every image at one level.
func (t *Texture) kinds() []ImageKind {
	switch t.typ {
	case TextureCube:
		return []ImageKind{
			ImageKindCubePositiveX, ImageKindCubeNegativeX,
			ImageKindCubePositiveY, ImageKindCubeNegativeY,
			ImageKindCubePositiveZ, ImageKindCubeNegativeZ,
		}
	case Texture2DArray:
		return []ImageKind{ImageKind2DArray}
	case Texture3D:
		return []ImageKind{ImageKind3D}
	default:
		return []ImageKind{ImageKind2D}
	}
}

// checkImage validates an image definition and returns size with an
// unset depth normalized to 1.
func (t *Texture) checkImage(kind ImageKind, level int, size gputypes.Extent3D, f gputypes.TextureFormat) (gputypes.Extent3D, error) {
	if typ, ok := kind.TextureType(); !ok || typ != t.typ {
		return size, fmt.Errorf("fbo: %s image on %s texture %d: %w", kind, t.typ, t.id, ErrImageKindMismatch)
	}
	if level < 0 || level >= MaxMipLevels {
		return size, fmt.Errorf("fbo: texture %d level %d: %w", t.id, level, ErrInvalidLevel)
	}
	if size.DepthOrArrayLayers == 0 {
		size.DepthOrArrayLayers = 1
	}
	if size.Width == 0 || size.Height == 0 {
		return size, fmt.Errorf("fbo: texture %d size %dx%d: %w", t.id, size.Width, size.Height, ErrInvalidSize)
	}
	if !kind.IsLayered() && size.DepthOrArrayLayers != 1 {
		return size, fmt.Errorf("fbo: %s texture %d with depth %d: %w", t.typ, t.id, size.DepthOrArrayLayers, ErrInvalidSize)
	}
	if kind.IsCubeFace() && size.Width != size.Height {
		return size, fmt.Errorf("fbo: cube texture %d face %dx%d: %w", t.id, size.Width, size.Height, ErrInvalidSize)
	}
	if !format.Properties(f).Renderable {
		return size, fmt.Errorf("fbo: texture %d format %v: %w", t.id, f, ErrUnsupportedFormat)
	}
	return size, nil
}

func (t *Texture) image(tg Target) ImageDesc {
	idx := tg.ImageIndex()
	d, ok := t.images[imageKey{idx.Kind, idx.Level}]
	if !ok {
		return ImageDesc{Format: gputypes.TextureFormatUndefined}
	}
	return d
}

// AttachmentWidth returns the width of the image selected by tg.
func (t *Texture) AttachmentWidth(tg Target) int { return int(t.image(tg).Size.Width) }

// AttachmentHeight returns the height of the image selected by tg.
func (t *Texture) AttachmentHeight(tg Target) int { return int(t.image(tg).Size.Height) }

// AttachmentFormat returns the format of the image selected by tg.
func (t *Texture) AttachmentFormat(tg Target) gputypes.TextureFormat { return t.image(tg).Format }

// AttachmentSamples returns 0; textures are single-sampled.
func (t *Texture) AttachmentSamples(Target) int { return 0 }

var _ AttachmentResource = (*Texture)(nil)
