// Package codec decodes candidate images and encodes converted ones.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"shotfix/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported output format")

// Codec reads whole files into memory before decoding, so no handle outlives a call.
type Codec struct {
	ReadFile    func(path string) ([]byte, error)
	JPEGQuality int
}

func New(jpegQuality int) Codec {
	return Codec{ReadFile: os.ReadFile, JPEGQuality: jpegQuality}
}

func (c Codec) read(path string) ([]byte, error) {
	readFile := c.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		return nil, &domain.DecodeError{Kind: domain.Unreadable, Path: path, Err: err}
	}
	return data, nil
}

func (c Codec) Decode(path string) (image.Image, error) {
	data, err := c.read(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &domain.DecodeError{Kind: domain.Corrupt, Path: path, Err: err}
	}
	return img, nil
}

// DecodeConfig reads only the header. A file that passes here may still fail
// a full Decode.
func (c Codec) DecodeConfig(path string) (image.Config, error) {
	data, err := c.read(path)
	if err != nil {
		return image.Config{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, &domain.DecodeError{Kind: domain.Corrupt, Path: path, Err: err}
	}
	return cfg, nil
}

// Encode writes img in the format named by ext ("png", "jpg" or "jpeg").
func (c Codec) Encode(w io.Writer, img image.Image, ext string) error {
	switch {
	case ext == "png":
		return png.Encode(w, img)
	case domain.IsJpegExtension(ext):
		quality := c.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = domain.DefaultJPEGQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
