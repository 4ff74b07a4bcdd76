package main

import (
	"image"

	"golang.org/x/image/draw"
)

// scaleFrame resizes a rendered frame to the window's pixel size with
// nearest-neighbor sampling. Used while a live window resize is in
// progress, when the framebuffer still has the pre-resize dimensions;
// nearest-neighbor keeps the strided passes' block structure crisp
// instead of smearing it.
func scaleFrame(src *image.RGBA, w, h int) *image.RGBA {
	if b := src.Bounds(); b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
