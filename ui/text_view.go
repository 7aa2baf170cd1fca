package ui

import (
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"file-viewer/internal/viewer"
)

var monospace = fyne.TextStyle{Monospace: true}

// TextView is a read-only monospace pane over a viewer.TextState. It scrolls
// itself and only creates text objects for the visible rows, so wheel ticks
// reach OnWheel first; unconsumed ticks scroll the pane.
type TextView struct {
	widget.BaseWidget
	state *viewer.TextState

	OnWheel func(*fyne.ScrollEvent) bool

	content   string
	lineCount int
	rows      []textRow
	cols      int // wrap width in cells the rows were built for, 0 when not wrapping
	maxCols   int
	offset    fyne.Position
}

// textRow is one drawn row: a byte range of the content. A logical line that
// wraps spans several rows; only its first row carries the line number.
type textRow struct {
	start, end int
	line       int
	first      bool
}

// NewTextView creates a view over state.
func NewTextView(state *viewer.TextState) *TextView {
	v := &TextView{state: state}
	v.ExtendBaseWidget(v)
	return v
}

// TextSize returns the zoomed font size.
func (v *TextView) TextSize() float32 {
	return theme.TextSize() * float32(v.state.Zoom.Factor)
}

func (v *TextView) lineHeight() float32 {
	return fyne.MeasureText("M", v.TextSize(), monospace).Height
}

func (v *TextView) charWidth() float32 {
	return fyne.MeasureText("M", v.TextSize(), monospace).Width
}

// sync rebuilds the rows when the content, the wrap setting or the wrap
// width changed. New content scrolls back to the top.
func (v *TextView) sync() {
	if v.rows == nil || v.state.Content != v.content {
		v.content = v.state.Content
		v.lineCount = strings.Count(v.content, "\n") + 1
		v.offset = fyne.Position{}
		v.rows = nil
	}
	cols := v.wrapColumns()
	if v.rows != nil && cols == v.cols {
		return
	}
	v.cols = cols
	v.rows, v.maxCols = splitRows(v.content, cols)
}

// wrapColumns is the number of cells that fit beside the gutter, or 0 when
// wrapping is off or the pane has not been laid out yet.
func (v *TextView) wrapColumns() int {
	if !v.state.Wrap || v.Size().Width <= 0 {
		return 0
	}
	width := v.Size().Width - v.gutterWidth()
	if n := int(width / v.charWidth()); n > 1 {
		return n
	}
	return 1
}

// Scrolled implements fyne.Scrollable.
func (v *TextView) Scrolled(ev *fyne.ScrollEvent) {
	if v.OnWheel != nil && v.OnWheel(ev) {
		return
	}
	v.scrollBy(-ev.Scrolled.DX, -ev.Scrolled.DY)
}

func (v *TextView) scrollBy(dx, dy float32) {
	v.offset.X += dx
	v.offset.Y += dy
	v.clampOffset()
	v.Refresh()
}

func (v *TextView) clampOffset() {
	v.sync()
	size := v.Size()
	maxY := float32(len(v.rows))*v.lineHeight() - size.Height
	var maxX float32
	if v.cols == 0 {
		maxX = float32(v.maxCols)*v.charWidth() + v.gutterWidth() - size.Width
	}
	v.offset.X = clampf(v.offset.X, 0, maxX)
	v.offset.Y = clampf(v.offset.Y, 0, maxY)
}

// ShowSelection scrolls so the selected match is visible.
func (v *TextView) ShowSelection() {
	v.sync()
	sel := v.state.Selection
	if sel == nil {
		return
	}
	ri := v.rowAt(sel.Start)
	lh := v.lineHeight()
	top := float32(ri) * lh
	size := v.Size()
	if top < v.offset.Y || top+lh > v.offset.Y+size.Height {
		v.offset.Y = top - size.Height/2
	}
	x := v.gutterWidth() + v.prefixWidth(ri, sel.Start)
	if x < v.offset.X || x > v.offset.X+size.Width {
		v.offset.X = x - size.Width/2
	}
	v.clampOffset()
	v.Refresh()
}

// rowAt returns the index of the row holding the byte offset.
func (v *TextView) rowAt(offset int) int {
	i := sort.Search(len(v.rows), func(i int) bool { return v.rows[i].start > offset })
	return max(i-1, 0)
}

func (v *TextView) gutterWidth() float32 {
	if !v.state.LineNumbers {
		return 0
	}
	digits := strconv.Itoa(v.lineCount) + " "
	return fyne.MeasureText(digits, v.TextSize(), monospace).Width + theme.Padding()
}

// prefixWidth measures the rendered width of row ri up to the byte offset.
func (v *TextView) prefixWidth(ri, offset int) float32 {
	if ri >= len(v.rows) || offset < v.rows[ri].start || offset > len(v.content) {
		return 0
	}
	prefix := v.content[v.rows[ri].start:offset]
	return fyne.MeasureText(expandTabs(prefix), v.TextSize(), monospace).Width
}

func (v *TextView) rowText(r textRow) string {
	return expandTabs(v.content[r.start:r.end])
}

// CreateRenderer returns the text renderer.
func (v *TextView) CreateRenderer() fyne.WidgetRenderer {
	v.ExtendBaseWidget(v)
	highlight := canvas.NewRectangle(theme.Color(theme.ColorNameSelection))
	highlight.Hide()
	gutterBg := canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	gutterBg.Hide()
	return &textViewRenderer{view: v, highlight: highlight, gutterBg: gutterBg}
}

type textViewRenderer struct {
	view      *TextView
	highlight *canvas.Rectangle
	gutterBg  *canvas.Rectangle
	lines     []*canvas.Text
	gutter    []*canvas.Text
	objects   []fyne.CanvasObject
}

func (r *textViewRenderer) Layout(size fyne.Size) {
	v := r.view
	v.sync()
	textSize := v.TextSize()
	lh := v.lineHeight()
	gutterW := v.gutterWidth()

	first := int(v.offset.Y / lh)
	visible := int(math.Ceil(float64(size.Height/lh))) + 1
	r.ensure(visible)

	fg := theme.Color(theme.ColorNameForeground)
	dim := theme.Color(theme.ColorNamePlaceHolder)
	for i := 0; i < len(r.lines); i++ {
		idx := first + i
		t, g := r.lines[i], r.gutter[i]
		if i >= visible || idx >= len(v.rows) {
			t.Hide()
			g.Hide()
			continue
		}
		row := v.rows[idx]
		y := float32(idx)*lh - v.offset.Y

		setText(t, v.rowText(row), textSize, fg)
		t.Move(fyne.NewPos(gutterW-v.offset.X, y))
		t.Show()

		if gutterW > 0 && row.first {
			setText(g, strconv.Itoa(row.line+1), textSize, dim)
			g.Resize(fyne.NewSize(gutterW-theme.Padding(), lh))
			g.Move(fyne.NewPos(0, y))
			g.Show()
		} else {
			g.Hide()
		}
	}
	if gutterW > 0 {
		r.gutterBg.FillColor = theme.Color(theme.ColorNameBackground)
		r.gutterBg.Move(fyne.NewPos(0, 0))
		r.gutterBg.Resize(fyne.NewSize(gutterW, size.Height))
		r.gutterBg.Show()
	} else {
		r.gutterBg.Hide()
	}
	r.layoutHighlight(size, lh, gutterW)
}

func (r *textViewRenderer) layoutHighlight(size fyne.Size, lh, gutterW float32) {
	v := r.view
	sel := v.state.Selection
	if sel == nil || sel.End > len(v.content) || len(v.rows) == 0 {
		r.highlight.Hide()
		return
	}
	ri := v.rowAt(sel.Start)
	end := min(sel.End, v.rows[ri].end)
	x := gutterW + v.prefixWidth(ri, sel.Start) - v.offset.X
	w := fyne.MeasureText(expandTabs(v.content[sel.Start:end]), v.TextSize(), monospace).Width
	y := float32(ri)*lh - v.offset.Y
	if y+lh < 0 || y > size.Height {
		r.highlight.Hide()
		return
	}
	r.highlight.FillColor = theme.Color(theme.ColorNameSelection)
	r.highlight.Move(fyne.NewPos(x, y))
	r.highlight.Resize(fyne.NewSize(w, lh))
	r.highlight.Show()
}

// ensure grows the text object pools to n lines.
func (r *textViewRenderer) ensure(n int) {
	if len(r.lines) >= n {
		return
	}
	for len(r.lines) < n {
		t := canvas.NewText("", color.Transparent)
		t.TextStyle = monospace
		g := canvas.NewText("", color.Transparent)
		g.TextStyle = monospace
		g.Alignment = fyne.TextAlignTrailing
		r.lines = append(r.lines, t)
		r.gutter = append(r.gutter, g)
	}
	r.objects = r.objects[:0]
	r.objects = append(r.objects, r.highlight)
	for _, t := range r.lines {
		r.objects = append(r.objects, t)
	}
	r.objects = append(r.objects, r.gutterBg)
	for _, g := range r.gutter {
		r.objects = append(r.objects, g)
	}
}

func (r *textViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(TextViewMinWidth, TextViewMinHeight)
}

func (r *textViewRenderer) Refresh() {
	r.Layout(r.view.Size())
	for i := range r.lines {
		r.lines[i].Refresh()
		r.gutter[i].Refresh()
	}
	r.highlight.Refresh()
	r.gutterBg.Refresh()
	canvas.Refresh(r.view)
}

func (r *textViewRenderer) Objects() []fyne.CanvasObject {
	if len(r.objects) == 0 {
		return []fyne.CanvasObject{r.highlight, r.gutterBg}
	}
	return r.objects
}

func (r *textViewRenderer) Destroy() {}

func setText(t *canvas.Text, s string, size float32, c color.Color) {
	t.Text = s
	t.TextSize = size
	t.Color = c
	t.Resize(t.MinSize())
}

// splitRows breaks content into rows, wrapping at cols cells when cols > 0.
// A tab counts as TabWidth cells. It also returns the widest line in cells.
func splitRows(content string, cols int) ([]textRow, int) {
	var rows []textRow
	maxCols := 0
	start := 0
	for line := 0; ; line++ {
		end := len(content)
		if i := strings.IndexByte(content[start:], '\n'); i >= 0 {
			end = start + i
		}
		rows = appendWrapped(rows, content, start, end, line, cols)
		if n := utf8.RuneCountInString(expandTabs(content[start:end])); n > maxCols {
			maxCols = n
		}
		if end == len(content) {
			return rows, maxCols
		}
		start = end + 1
	}
}

func appendWrapped(rows []textRow, content string, start, end, line, cols int) []textRow {
	first := true
	rowStart, col := start, 0
	if cols > 0 {
		for i, r := range content[start:end] {
			w := 1
			if r == '\t' {
				w = TabWidth
			}
			if col > 0 && col+w > cols {
				rows = append(rows, textRow{start: rowStart, end: start + i, line: line, first: first})
				first = false
				rowStart, col = start+i, 0
			}
			col += w
		}
	}
	return append(rows, textRow{start: rowStart, end: end, line: line, first: first})
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", TabWidth))
}

func clampf(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	return float32(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}
