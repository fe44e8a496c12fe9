// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package format is the internal-format capability table.
//
// Properties maps a [gputypes.TextureFormat] to its per-channel bit depths,
// component type and color encoding. The table is static and the lookup is
// pure, so callers derive these values on demand instead of storing them.
//
//	info := format.Properties(gputypes.TextureFormatRGBA8Unorm)
//	fmt.Println(info.RedBits, info.ComponentType) // 8 unorm
package format

import "github.com/gogpu/gputypes"

// ComponentType describes how stored channel values are interpreted.
type ComponentType uint8

// Component types.
const (
	// ComponentTypeNone is reported for unknown formats.
	ComponentTypeNone ComponentType = iota

	// ComponentTypeUnsignedNormalized maps stored integers to [0, 1].
	ComponentTypeUnsignedNormalized

	// ComponentTypeSignedNormalized maps stored integers to [-1, 1].
	ComponentTypeSignedNormalized

	// ComponentTypeFloat stores floating point values.
	ComponentTypeFloat

	// ComponentTypeInt stores signed integers.
	ComponentTypeInt

	// ComponentTypeUint stores unsigned integers.
	ComponentTypeUint
)

// String returns a short name for the component type.
func (c ComponentType) String() string {
	switch c {
	case ComponentTypeUnsignedNormalized:
		return "unorm"
	case ComponentTypeSignedNormalized:
		return "snorm"
	case ComponentTypeFloat:
		return "float"
	case ComponentTypeInt:
		return "int"
	case ComponentTypeUint:
		return "uint"
	default:
		return "none"
	}
}

// ColorEncoding is the transfer function of the stored color values.
type ColorEncoding uint8

// Color encodings.
const (
	ColorEncodingNone ColorEncoding = iota
	ColorEncodingLinear
	ColorEncodingSRGB
)

// String returns a short name for the encoding.
func (e ColorEncoding) String() string {
	switch e {
	case ColorEncodingLinear:
		return "linear"
	case ColorEncodingSRGB:
		return "srgb"
	default:
		return "none"
	}
}

// Info holds the capabilities of one internal format.
type Info struct {
	RedBits     int
	GreenBits   int
	BlueBits    int
	AlphaBits   int
	DepthBits   int
	StencilBits int

	ComponentType ComponentType
	ColorEncoding ColorEncoding

	// Renderable reports whether the format can back a framebuffer
	// attachment at all.
	Renderable bool
}

// IsDepth reports whether the format has a depth channel.
func (i Info) IsDepth() bool { return i.DepthBits > 0 }

// IsStencil reports whether the format has a stencil channel.
func (i Info) IsStencil() bool { return i.StencilBits > 0 }

// IsColor reports whether the format has any color channel.
func (i Info) IsColor() bool {
	return i.RedBits+i.GreenBits+i.BlueBits+i.AlphaBits > 0
}

// Known reports whether the format is present in the table.
func (i Info) Known() bool { return i.ComponentType != ComponentTypeNone }

func color(r, g, b, a int, ct ComponentType, enc ColorEncoding) Info {
	return Info{
		RedBits:       r,
		GreenBits:     g,
		BlueBits:      b,
		AlphaBits:     a,
		ComponentType: ct,
		ColorEncoding: enc,
		Renderable:    true,
	}
}

func depthStencil(depth, stencil int, ct ComponentType) Info {
	return Info{
		DepthBits:     depth,
		StencilBits:   stencil,
		ComponentType: ct,
		ColorEncoding: ColorEncodingLinear,
		Renderable:    true,
	}
}

var table = map[gputypes.TextureFormat]Info{
	gputypes.TextureFormatR8Unorm:        color(8, 0, 0, 0, ComponentTypeUnsignedNormalized, ColorEncodingLinear),
	gputypes.TextureFormatRG8Unorm:       color(8, 8, 0, 0, ComponentTypeUnsignedNormalized, ColorEncodingLinear),
	gputypes.TextureFormatRGBA8Unorm:     color(8, 8, 8, 8, ComponentTypeUnsignedNormalized, ColorEncodingLinear),
	gputypes.TextureFormatRGBA8UnormSrgb: color(8, 8, 8, 8, ComponentTypeUnsignedNormalized, ColorEncodingSRGB),
	gputypes.TextureFormatBGRA8Unorm:     color(8, 8, 8, 8, ComponentTypeUnsignedNormalized, ColorEncodingLinear),
	gputypes.TextureFormatBGRA8UnormSrgb: color(8, 8, 8, 8, ComponentTypeUnsignedNormalized, ColorEncodingSRGB),
	gputypes.TextureFormatRGBA16Float:    color(16, 16, 16, 16, ComponentTypeFloat, ColorEncodingLinear),
	gputypes.TextureFormatR32Float:       color(32, 0, 0, 0, ComponentTypeFloat, ColorEncodingLinear),
	gputypes.TextureFormatRG32Float:      color(32, 32, 0, 0, ComponentTypeFloat, ColorEncodingLinear),
	gputypes.TextureFormatRGBA32Float:    color(32, 32, 32, 32, ComponentTypeFloat, ColorEncodingLinear),

	gputypes.TextureFormatDepth16Unorm:        depthStencil(16, 0, ComponentTypeUnsignedNormalized),
	gputypes.TextureFormatDepth24PlusStencil8: depthStencil(24, 8, ComponentTypeUnsignedNormalized),
	gputypes.TextureFormatDepth32Float:        depthStencil(32, 0, ComponentTypeFloat),
	gputypes.TextureFormatStencil8:            depthStencil(0, 8, ComponentTypeUint),
}

// Properties returns the capabilities of f.
// Unknown formats, including TextureFormatUndefined, yield the zero Info.
func Properties(f gputypes.TextureFormat) Info {
	return table[f]
}
