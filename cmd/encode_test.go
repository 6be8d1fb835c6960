package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func solidBuffer(width, height int, r, g, b byte) []byte {
	buffer := make([]byte, width*height*3)
	for i := 0; i < width*height; i++ {
		buffer[i*3+0] = r
		buffer[i*3+1] = g
		buffer[i*3+2] = b
	}
	return buffer
}

func TestWriteImage_RejectsBadBuffer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeImage(path, make([]byte, 10), 4, 4); err == nil {
		t.Error("Expected an error for a mismatched buffer length")
	}
}

func TestWriteImage_RejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := writeImage(path, solidBuffer(4, 4, 0, 0, 0), 4, 4); err == nil {
		t.Error("Expected an error for an unsupported extension")
	}
}

func TestWriteImage_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := writeImage(path, solidBuffer(6, 4, 200, 100, 50), 6, 4); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Decoding failed: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Errorf("Expected 6x4 image, got %v", img.Bounds())
	}

	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("Expected (200,100,50), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestWriteImage_PPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.ppm")
	if err := writeImage(path, solidBuffer(3, 2, 10, 20, 30), 3, 2); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	header := "P6\n3 2\n255\n"
	if string(data[:len(header)]) != header {
		t.Errorf("Unexpected header: %q", data[:len(header)])
	}
	if len(data) != len(header)+3*2*3 {
		t.Errorf("Expected %d bytes, got %d", len(header)+3*2*3, len(data))
	}
	if data[len(header)] != 10 || data[len(header)+1] != 20 || data[len(header)+2] != 30 {
		t.Errorf("Unexpected first pixel: %v", data[len(header):len(header)+3])
	}
}
