// Package loader reads files from disk for the viewer: bitmaps through the
// registered image decoders and text as UTF-8 with invalid bytes replaced.
package loader

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Decoders for every extension the viewer classifies as an image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"golang.org/x/text/encoding/unicode"
)

// MaxFileSize is the largest file the viewer will read.
const MaxFileSize int64 = 10_000_000

// Image is a decoded bitmap.
type Image struct {
	Bitmap image.Image
	Format string
	Bytes  int64
}

// Width returns the bitmap width in pixels.
func (i *Image) Width() int { return i.Bitmap.Bounds().Dx() }

// Height returns the bitmap height in pixels.
func (i *Image) Height() int { return i.Bitmap.Bounds().Dy() }

// Text is decoded text content.
type Text struct {
	Content string
	Bytes   int64
}

// LoadImage reads and decodes the bitmap at path.
func LoadImage(path string) (*Image, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	bitmap, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &Error{Kind: KindImageDecode, Path: path, Err: err}
	}
	if b := bitmap.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &Error{Kind: KindImageDecode, Path: path, Err: ErrEmptyImage}
	}
	return &Image{Bitmap: bitmap, Format: format, Bytes: int64(len(data))}, nil
}

// LoadText reads path and decodes it. Decoding never fails; only IO errors
// are returned.
func LoadText(path string) (*Text, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return &Text{Content: DecodeText(data), Bytes: int64(len(data))}, nil
}

// DecodeText decodes data as UTF-8, replacing invalid sequences with U+FFFD.
// Byte order marks are not interpreted: a UTF-8 BOM is kept as U+FEFF and
// UTF-16 input decodes as UTF-8.
func DecodeText(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	// The UTF-8 decoder substitutes U+FFFD and never reports an error.
	out, _ := unicode.UTF8.NewDecoder().Bytes(data)
	return string(out)
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &Error{Kind: KindIO, Path: path, Err: ErrIsDirectory}
	}
	if info.Size() > MaxFileSize {
		return nil, &Error{
			Kind: KindIO,
			Path: path,
			Err:  fmt.Errorf("%w (> %.1fMB)", ErrTooLarge, float64(MaxFileSize)/1_000_000),
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: path, Err: err}
	}
	return data, nil
}
