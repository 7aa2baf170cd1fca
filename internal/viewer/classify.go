package viewer

import (
	"path/filepath"
	"strings"
)

// Kind identifies which view displays a file.
type Kind int

const (
	KindText Kind = iota
	KindImage
)

func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "text"
}

// ImageExtensions lists the extensions decoded as bitmaps.
var ImageExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "webp"}

// TextExtensions lists the source/text extensions offered by the open dialog.
// Any extension outside ImageExtensions is still loaded as text.
var TextExtensions = []string{"txt", "rs", "py", "toml", "md", "json", "js", "html", "css"}

// Extension returns the lowercase extension of path without the leading dot.
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Classify decides the view for path from its extension alone.
func Classify(path string) Kind {
	ext := Extension(path)
	for _, e := range ImageExtensions {
		if ext == e {
			return KindImage
		}
	}
	return KindText
}

// FilterGroup is a named set of extensions for the open dialog.
type FilterGroup struct {
	Name       string
	Extensions []string
}

// DottedExtensions returns the group's extensions as ".ext" strings.
func (g FilterGroup) DottedExtensions() []string {
	out := make([]string, len(g.Extensions))
	for i, e := range g.Extensions {
		out[i] = "." + e
	}
	return out
}

// FilterGroups returns the dialog filter groups, "All Supported" first.
func FilterGroups() []FilterGroup {
	all := make([]string, 0, len(TextExtensions)+len(ImageExtensions))
	all = append(all, TextExtensions...)
	all = append(all, ImageExtensions...)
	return []FilterGroup{
		{Name: "All Supported", Extensions: all},
		{Name: "Images", Extensions: append([]string(nil), ImageExtensions...)},
		{Name: "Text/Source", Extensions: append([]string(nil), TextExtensions...)},
	}
}
