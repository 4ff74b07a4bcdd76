package fractal

import (
	"fmt"
	"image"
)

// Framebuffer is a rectangular RGBA pixel buffer: 4 bytes per pixel,
// row-major, origin top-left, alpha fixed at 255. It is the render
// target handed to the presentation layer.
type Framebuffer struct {
	width  int
	height int
	data   []uint8
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Data returns the raw pixel bytes, length Width*Height*4.
func (f *Framebuffer) Data() []uint8 { return f.data }

// SetRGB writes one pixel. Out-of-bounds coordinates are ignored.
func (f *Framebuffer) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = c.R
	f.data[i+1] = c.G
	f.data[i+2] = c.B
	f.data[i+3] = 255
}

// FillBlock replicates c across the size x size block whose top-left
// corner is (x, y), clipped at the buffer edges. Strided render passes
// use it to approximate unsampled pixels from their block's sample.
func (f *Framebuffer) FillBlock(x, y, size int, c RGB) {
	if size < 1 {
		return
	}

	x1 := min(x+size, f.width)
	y1 := min(y+size, f.height)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	for py := y; py < y1; py++ {
		i := (py*f.width + x) * 4
		for px := x; px < x1; px++ {
			f.data[i+0] = c.R
			f.data[i+1] = c.G
			f.data[i+2] = c.B
			f.data[i+3] = 255
			i += 4
		}
	}
}

// row returns the byte slice backing pixel row y. Callers own the row
// exclusively during a render pass.
func (f *Framebuffer) row(y int) []uint8 {
	stride := f.width * 4
	return f.data[y*stride : (y+1)*stride]
}

// CopyTo fills dst with the framebuffer's bytes. dst must be exactly
// Width*Height*4 bytes; a mismatch is an integration error and is
// rejected rather than truncated.
func (f *Framebuffer) CopyTo(dst []uint8) error {
	if len(dst) != len(f.data) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBufferSize, len(dst), len(f.data))
	}
	copy(dst, f.data)
	return nil
}

// ToImage converts the framebuffer to an image.RGBA copy.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.data)
	return img
}

// resize reallocates the buffer if the dimensions changed. The contents
// after a reallocating resize are zero until the next render pass.
func (f *Framebuffer) resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == f.width && height == f.height {
		return nil
	}
	f.width = width
	f.height = height
	f.data = make([]uint8, width*height*4)
	return nil
}
