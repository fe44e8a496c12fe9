// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fbo

// ImageKind identifies which kind of texture image an ImageIndex selects.
// Cube maps have one kind per face.
type ImageKind uint8

// Image kinds.
const (
	// ImageKindNone marks an index that selects nothing.
	// Renderbuffer and default attachments carry it.
	ImageKindNone ImageKind = iota

	ImageKind2D
	ImageKindCubePositiveX
	ImageKindCubeNegativeX
	ImageKindCubePositiveY
	ImageKindCubeNegativeY
	ImageKindCubePositiveZ
	ImageKindCubeNegativeZ
	ImageKind2DArray
	ImageKind3D
)

// IsCubeFace reports whether k is one of the six cube map faces.
func (k ImageKind) IsCubeFace() bool {
	return k >= ImageKindCubePositiveX && k <= ImageKindCubeNegativeZ
}

// IsLayered reports whether k addresses a layer of a 2D array or a slice
// of a 3D texture.
func (k ImageKind) IsLayered() bool {
	return k == ImageKind2DArray || k == ImageKind3D
}

// TextureType returns the texture type whose images have kind k.
// The second result is false for ImageKindNone and unknown kinds.
func (k ImageKind) TextureType() (TextureType, bool) {
	switch {
	case k == ImageKind2D:
		return Texture2D, true
	case k.IsCubeFace():
		return TextureCube, true
	case k == ImageKind2DArray:
		return Texture2DArray, true
	case k == ImageKind3D:
		return Texture3D, true
	}
	return 0, false
}

// String returns the kind name.
func (k ImageKind) String() string {
	switch k {
	case ImageKind2D:
		return "2d"
	case ImageKind2DArray:
		return "2d-array"
	case ImageKind3D:
		return "3d"
	case ImageKindNone:
		return "none"
	}
	if k.IsCubeFace() {
		return "cube" + CubeFace(k-ImageKindCubePositiveX+1).String()
	}
	return "unknown"
}

// CubeFace names a face of a cube map.
type CubeFace uint8

// Cube map faces, in the conventional +X, -X, +Y, -Y, +Z, -Z order.
const (
	CubeFaceNone CubeFace = iota
	CubeFacePositiveX
	CubeFaceNegativeX
	CubeFacePositiveY
	CubeFaceNegativeY
	CubeFacePositiveZ
	CubeFaceNegativeZ
)

// ImageKind returns the image kind of face f, or ImageKindNone for
// CubeFaceNone.
func (f CubeFace) ImageKind() ImageKind {
	if f < CubeFacePositiveX || f > CubeFaceNegativeZ {
		return ImageKindNone
	}
	return ImageKindCubePositiveX + ImageKind(f-CubeFacePositiveX)
}

// String returns the face name, such as "+x".
func (f CubeFace) String() string {
	switch f {
	case CubeFacePositiveX:
		return "+x"
	case CubeFaceNegativeX:
		return "-x"
	case CubeFacePositiveY:
		return "+y"
	case CubeFaceNegativeY:
		return "-y"
	case CubeFacePositiveZ:
		return "+z"
	case CubeFaceNegativeZ:
		return "-z"
	}
	return "none"
}

// ImageIndex selects one image of a texture: its kind (which carries the
// cube face), mip level and layer.
//
// Layer is only interpreted for ImageKind2DArray and ImageKind3D. Other
// kinds may carry any layer value; it is ignored.
type ImageIndex struct {
	Kind  ImageKind
	Level int
	Layer int
}

// Image2D returns the index of mip level of a 2D texture.
func Image2D(level int) ImageIndex {
	return ImageIndex{Kind: ImageKind2D, Level: level}
}

// ImageCube returns the index of mip level of cube map face f.
func ImageCube(f CubeFace, level int) ImageIndex {
	return ImageIndex{Kind: f.ImageKind(), Level: level}
}

// Image2DArray returns the index of a layer of mip level of a 2D array
// texture.
func Image2DArray(level, layer int) ImageIndex {
	return ImageIndex{Kind: ImageKind2DArray, Level: level, Layer: layer}
}

// Image3D returns the index of a depth slice of mip level of a 3D
// texture.
func Image3D(level, layer int) ImageIndex {
	return ImageIndex{Kind: ImageKind3D, Level: level, Layer: layer}
}

// InvalidImageIndex returns the index that selects no image.
func InvalidImageIndex() ImageIndex {
	return ImageIndex{Kind: ImageKindNone, Level: -1, Layer: -1}
}

// Valid reports whether the index selects an image.
func (i ImageIndex) Valid() bool {
	return i.Kind != ImageKindNone && i.Kind <= ImageKind3D && i.Level >= 0
}

// CubeFace returns the face selected by i, or CubeFaceNone when i does
// not select a cube map face.
func (i ImageIndex) CubeFace() CubeFace {
	if !i.Kind.IsCubeFace() {
		return CubeFaceNone
	}
	return CubeFacePositiveX + CubeFace(i.Kind-ImageKindCubePositiveX)
}

// LayerIndex returns the layer for layered kinds and 0 otherwise.
func (i ImageIndex) LayerIndex() int {
	if i.Kind.IsLayered() {
		return i.Layer
	}
	return 0
}
