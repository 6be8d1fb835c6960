package cmd

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// writeImage encodes the renderer's raw width*height*3 buffer to disk.
// The format is chosen by the output extension: png, or binary P6 ppm.
func writeImage(path string, buffer []byte, width, height int) error {
	if len(buffer) != width*height*3 {
		return fmt.Errorf("buffer length %d does not match %dx%d frame", len(buffer), width, height)
	}

	switch imageFormat(path) {
	case "png":
		return writePNG(path, buffer, width, height)
	case "ppm":
		return writePPM(path, buffer, width, height)
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .ppm)", path)
	}
}

func writePNG(path string, buffer []byte, width, height int) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			idx := (j*width + i) * 3
			img.SetRGBA(i, j, color.RGBA{
				R: buffer[idx],
				G: buffer[idx+1],
				B: buffer[idx+2],
				A: 255,
			})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

func writePPM(path string, buffer []byte, width, height int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	if _, err := w.Write(buffer); err != nil {
		return err
	}
	return w.Flush()
}
