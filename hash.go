package dhash

import (
	"fmt"
	"image"
	"strconv"

	"github.com/nfnt/resize"
)

// HashWidth and HashHeight are the dimensions of the grid of gradient
// comparisons that make up a signature. The image is scaled to one column
// more than HashWidth so that every grid cell has a right-hand neighbour to
// compare against.
const (
	HashWidth  = 8
	HashHeight = 8
)

// Signature is the 64-bit difference hash of an image. Bit number
// row*HashWidth+col is set if, on the downscaled grayscale image, the pixel
// at (col, row) is strictly brighter than the pixel at (col+1, row).
type Signature uint64

// String renders the signature as a decimal number.
func (s Signature) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// Hex renders the signature as a zero-padded hexadecimal number with a
// leading "0x".
func (s Signature) Hex() string {
	return fmt.Sprintf("%#016x", uint64(s))
}

// Hash calculates and returns the difference hash of the provided image.
//
// The image is first scaled down to 9x8 pixels using nearest-neighbour
// resampling, which maps the full source extent onto the target grid
// regardless of the source's size or aspect ratio. Each of the 72 samples
// is reduced to a single luminance value and every pixel is compared to its
// right-hand neighbour, yielding 8 gradient bits per row. A set bit means
// the left pixel is strictly brighter; ties produce a zero bit.
//
// Hash is a pure function. Two calls over identical pixel data always
// return the same signature, and independent calls may run concurrently
// without coordination.
func Hash(img image.Image) Signature {
	scaled := resize.Resize(HashWidth+1, HashHeight, img, resize.NearestNeighbor)
	bounds := scaled.Bounds()

	var signature Signature
	bit := 0
	for row := 0; row < HashHeight; row++ {
		left := luma(scaled, bounds.Min.X, bounds.Min.Y+row)
		for col := 0; col < HashWidth; col++ {
			right := luma(scaled, bounds.Min.X+col+1, bounds.Min.Y+row)
			if left > right {
				signature |= 1 << bit
			}
			left = right
			bit++
		}
	}

	return signature
}

// luma returns the BT.601 luminance of the pixel at (x, y). The fixed-point
// weights are the ones used by color.RGBToYCbCr, so the result is fully
// determined by integer arithmetic and identical on every platform.
func luma(img image.Image, x, y int) uint8 {
	r32, g32, b32, _ := img.At(x, y).RGBA()
	r, g, b := int32(r32>>8), int32(g32>>8), int32(b32>>8)
	return uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
}
