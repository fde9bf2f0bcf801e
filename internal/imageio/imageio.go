// Package imageio loads and decodes the images handed to the hasher.
//
// It registers decoders for JPEG, PNG, GIF, WebP, BMP, and TIFF. Decoding
// failures of any kind surface as a single error wrapping the offending
// path; the caller is expected to report the error and stop.
package imageio

import (
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open reads and decodes the image file at path.
func Open(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	img, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image from r using any of the registered formats.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}
