package viewer

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"file-viewer/internal/loader"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestController_LoadImage(t *testing.T) {
	dir := t.TempDir()
	path := writePNG(t, dir, "photo.PNG", 40, 30)

	c := NewController()
	if err := c.LoadPath(path); err != nil {
		t.Fatalf("LoadPath() error: %v", err)
	}
	if c.Active() != ViewImage {
		t.Errorf("Active() = %v, want image", c.Active())
	}
	if want := path + " — 40x30 px"; c.Status() != want {
		t.Errorf("Status() = %q, want %q", c.Status(), want)
	}
	if c.Image().Zoom.Factor != 1 {
		t.Errorf("zoom = %v, want 1", c.Image().Zoom.Factor)
	}
}

func TestController_LoadText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes", "a\nb\n")

	c := NewController()
	if err := c.LoadPath(path); err != nil {
		t.Fatalf("LoadPath() error: %v", err)
	}
	if c.Active() != ViewText {
		t.Errorf("Active() = %v, want text", c.Active())
	}
	if want := path + " — 3 lines"; c.Status() != want {
		t.Errorf("Status() = %q, want %q", c.Status(), want)
	}
	if c.FileSize() != 4 {
		t.Errorf("FileSize() = %d, want 4", c.FileSize())
	}
}

func TestController_SwitchesViews(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, "a.png", 2, 2)
	txt := writeFile(t, dir, "b.txt", "x")

	c := NewController()
	mustLoad(t, c, img)
	c.ZoomIn()
	mustLoad(t, c, txt)
	if c.Active() != ViewText {
		t.Fatalf("Active() = %v, want text", c.Active())
	}
	if c.Image().Zoom.Factor == 1 {
		t.Error("hidden image state should be retained")
	}
	mustLoad(t, c, img)
	if c.Active() != ViewImage || c.Image().Zoom.Factor != 1 {
		t.Errorf("reload image: active=%v zoom=%v", c.Active(), c.Image().Zoom.Factor)
	}
}

func TestController_FailedDecodeLeavesState(t *testing.T) {
	dir := t.TempDir()
	txt := writeFile(t, dir, "keep.txt", "hello")
	bad := writeFile(t, dir, "broken.png", "not a png")

	c := NewController()
	mustLoad(t, c, txt)
	before := c.Status()

	err := c.LoadPath(bad)
	if err == nil {
		t.Fatal("LoadPath() on corrupt image returned nil error")
	}
	if !loader.IsKind(err, loader.KindImageDecode) {
		t.Errorf("error kind: %v", err)
	}
	if err.Error() == "" {
		t.Error("error message is empty")
	}
	if c.Active() != ViewText || c.Path() != txt || c.Status() != before {
		t.Errorf("state changed: active=%v path=%q status=%q", c.Active(), c.Path(), c.Status())
	}
	if got := c.Recent().Paths(); len(got) != 1 || got[0] != txt {
		t.Errorf("recent = %v, want only %q", got, txt)
	}
}

func TestController_MissingFileIsIOError(t *testing.T) {
	c := NewController()
	err := c.LoadPath(filepath.Join(t.TempDir(), "missing.txt"))
	if !loader.IsKind(err, loader.KindIO) {
		t.Errorf("LoadPath() error = %v, want IO error", err)
	}
	if c.Active() != ViewEmpty {
		t.Errorf("Active() = %v, want empty", c.Active())
	}
}

func TestController_RecentOrder(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "a")
	b := writeFile(t, dir, "b.txt", "b")

	c := NewController()
	mustLoad(t, c, a)
	mustLoad(t, c, b)
	mustLoad(t, c, a)

	got := c.Recent().Paths()
	if len(got) != 2 || got[0] != b || got[1] != a {
		t.Errorf("recent = %v, want [%s %s]", got, b, a)
	}
	c.ClearRecent()
	if c.Recent().Len() != 0 {
		t.Error("ClearRecent() left entries")
	}
}

func TestController_Clear(t *testing.T) {
	dir := t.TempDir()
	c := NewController()
	mustLoad(t, c, writeFile(t, dir, "a.txt", "abc"))

	c.Clear()
	if c.Active() != ViewEmpty || c.Path() != "" || c.Status() != "" {
		t.Errorf("after Clear: active=%v path=%q status=%q", c.Active(), c.Path(), c.Status())
	}
	if c.Text().Content != "" || c.Image().Image != nil {
		t.Error("Clear() should blank both views")
	}
	if c.Recent().Len() != 1 {
		t.Error("Clear() should not touch the recent list")
	}
}

func TestController_WheelRouting(t *testing.T) {
	dir := t.TempDir()
	img := writePNG(t, dir, "a.png", 4, 4)
	txt := writeFile(t, dir, "a.txt", "abc")

	c := NewController()
	if c.Wheel(WheelEvent{DeltaY: 1}) {
		t.Error("wheel consumed with no file loaded")
	}

	mustLoad(t, c, img)
	c.SetFit(true)
	if !c.Wheel(WheelEvent{DeltaY: 1}) {
		t.Fatal("image wheel not consumed")
	}
	if c.Image().Fit {
		t.Error("wheel should disable fit-to-window")
	}
	if got := c.Image().Zoom.Factor; got != ImageZoomStep {
		t.Errorf("image zoom = %v, want %v", got, ImageZoomStep)
	}
	if c.Wheel(WheelEvent{DeltaY: 0}) {
		t.Error("zero delta consumed")
	}

	mustLoad(t, c, txt)
	if c.Wheel(WheelEvent{DeltaY: -1}) {
		t.Error("text wheel without Ctrl should scroll, not zoom")
	}
	if !c.Wheel(WheelEvent{DeltaY: -1, Ctrl: true}) {
		t.Fatal("text Ctrl+wheel not consumed")
	}
	if got := c.Text().Zoom.Factor; got >= 1 {
		t.Errorf("text zoom = %v, want < 1", got)
	}
	if got := c.Image().Zoom.Factor; got != ImageZoomStep {
		t.Errorf("hidden image zoom changed to %v", got)
	}
}

func TestController_ZoomActions(t *testing.T) {
	dir := t.TempDir()
	c := NewController()
	mustLoad(t, c, writeFile(t, dir, "a.txt", "abc"))
	if c.ZoomIn() || c.ZoomOut() {
		t.Error("image zoom actions should be no-ops while text is shown")
	}
	c.Wheel(WheelEvent{DeltaY: 1, Ctrl: true})
	c.ResetZoom()
	if c.Text().Zoom.Factor != 1 {
		t.Errorf("text zoom after reset = %v", c.Text().Zoom.Factor)
	}

	mustLoad(t, c, writePNG(t, dir, "a.png", 4, 4))
	c.SetFit(true)
	c.ZoomIn()
	if c.Image().Fit {
		t.Error("ZoomIn() should disable fit-to-window")
	}
	c.Pan(3, 3)
	c.SetFit(true)
	c.ResetZoom()
	img := c.Image()
	if img.Fit || img.Zoom.Factor != 1 || img.PanX != 0 {
		t.Errorf("after reset: fit=%v zoom=%v pan=%d", img.Fit, img.Zoom.Factor, img.PanX)
	}
}

func TestController_FindOnlyWhenTextShown(t *testing.T) {
	dir := t.TempDir()
	c := NewController()
	if c.FindNext("ab") {
		t.Error("FindNext() matched with no file")
	}
	mustLoad(t, c, writeFile(t, dir, "a.txt", "ab ab ab"))
	if !c.FindNext("ab") {
		t.Fatal("FindNext() = false")
	}
	if got := c.MatchLabel(); got != "3 match(es)" {
		t.Errorf("MatchLabel() = %q", got)
	}
	mustLoad(t, c, writePNG(t, dir, "a.png", 1, 1))
	if c.FindNext("ab") || c.MatchLabel() != "" {
		t.Error("find should be inactive while the image is shown")
	}
}

func TestController_MatchCountFollowsVisibleText(t *testing.T) {
	dir := t.TempDir()
	c := NewController()
	mustLoad(t, c, writeFile(t, dir, "a.txt", "ab ab"))
	if got := c.MatchLabel(); got != "" {
		t.Errorf("MatchLabel() before any search = %q, want blank", got)
	}
	c.FindNext("ab")

	mustLoad(t, c, writeFile(t, dir, "b.txt", "ab ab ab ab"))
	if got := c.MatchLabel(); got != "4 match(es)" {
		t.Errorf("MatchLabel() after loading new text = %q, want 4 match(es)", got)
	}
	if c.Text().Selection != nil {
		t.Error("loading new text should drop the old selection")
	}

	c.Clear()
	if got := c.MatchLabel(); got != "" {
		t.Errorf("MatchLabel() after Clear = %q, want blank", got)
	}
}

func TestController_WrapAndFindPrev(t *testing.T) {
	c := NewController()
	if !c.Text().Wrap {
		t.Error("word wrap should start on")
	}
	if c.ToggleWrap() || c.Text().Wrap {
		t.Error("ToggleWrap() should turn wrap off")
	}
	c.SetWrap(true)
	if !c.Text().Wrap {
		t.Error("SetWrap(true) did not turn wrap on")
	}

	if c.FindPrev("ab") {
		t.Error("FindPrev() matched with no file")
	}
	mustLoad(t, c, writeFile(t, t.TempDir(), "a.txt", "ab ab ab"))
	if !c.FindPrev("ab") || c.Text().Selection.Start != 6 {
		t.Errorf("selection = %+v, want start 6", c.Text().Selection)
	}
}

func mustLoad(t *testing.T, c *Controller, path string) {
	t.Helper()
	if err := c.LoadPath(path); err != nil {
		t.Fatalf("LoadPath(%q) error: %v", path, err)
	}
}
