package imageio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(16 * (x + y))})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	return path
}

func TestOpen(t *testing.T) {
	path := writeTestPNG(t)

	img, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if bounds := img.Bounds(); bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("Wrong bounds, should be 4x4, is %v", bounds)
	}
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-image.png")

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open of a missing file should fail")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Error should mention the path, is %q", err)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("this is not an image"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open of a corrupt file should fail")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("Error should mention the path, is %q", err)
	}
}
