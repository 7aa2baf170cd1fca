package loader

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed load.
type ErrorKind int

const (
	// KindIO means the file could not be read (missing, permissions, too large).
	KindIO ErrorKind = iota
	// KindImageDecode means the bytes were read but are not a usable bitmap.
	KindImageDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindImageDecode:
		return "image decode"
	default:
		return "io"
	}
}

// Error is returned by LoadImage and LoadText.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindImageDecode:
		return fmt.Sprintf("failed to load image %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("failed to read file %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// ErrTooLarge is wrapped by the IO error for files over MaxFileSize.
var ErrTooLarge = errors.New("file is too large")

// ErrIsDirectory is wrapped when the path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// ErrEmptyImage is wrapped when a decoder returns a bitmap with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// IsKind reports whether err is a load error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var le *Error
	return errors.As(err, &le) && le.Kind == k
}
