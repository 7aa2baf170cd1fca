package viewer

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := map[string]Kind{
		"photo.JPG":            KindImage,
		"/tmp/a.webp":          KindImage,
		"pic.Bmp":              KindImage,
		"notes":                KindText,
		"main.rs":              KindText,
		"archive.tar.gz":       KindText,
		"/dir.png/readme":      KindText,
		"icon.png.txt":         KindText,
		"C:\\images\\scan.gif": KindImage,
	}
	for path, want := range cases {
		if got := Classify(path); got != want {
			t.Errorf("Classify(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestFilterGroups(t *testing.T) {
	groups := FilterGroups()
	if len(groups) != 3 {
		t.Fatalf("len = %d, want 3", len(groups))
	}
	names := []string{groups[0].Name, groups[1].Name, groups[2].Name}
	if want := []string{"All Supported", "Images", "Text/Source"}; !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if got := len(groups[0].Extensions); got != len(ImageExtensions)+len(TextExtensions) {
		t.Errorf("All Supported has %d extensions", got)
	}
	if got := groups[1].DottedExtensions(); got[0] != ".png" {
		t.Errorf("DottedExtensions()[0] = %q, want .png", got[0])
	}
}
