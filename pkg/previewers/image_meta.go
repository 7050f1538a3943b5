package previewers

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageMeta describes an image file without decoding its pixels.
type ImageMeta struct {
	Format string
	Width  int
	Height int
}

var osOpen = os.Open

// ProbeImage reads just enough of the file at path to report its format and
// dimensions. It returns nil when the file is not a recognised image.
func ProbeImage(path string) *ImageMeta {
	f, err := osOpen(path)
	if err != nil {
		return nil
	}
	defer func() {
		_ = f.Close()
	}()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil
	}
	return &ImageMeta{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}
