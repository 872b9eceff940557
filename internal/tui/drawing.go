// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/highlighter"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/types"
)

const maxTabTitleWidth = 24

// viewport is the scroll position of one buffer.
type viewport struct {
	top  int // first visible line
	left int // first visible visual column
}

// follow scrolls so the cursor stays visible with scrollOff lines of context.
func (v *viewport) follow(line, visualCol, lineCount, height, width, scrollOff int) {
	if height <= 0 || width <= 0 {
		return
	}
	if scrollOff > (height-1)/2 {
		scrollOff = (height - 1) / 2
	}
	if line-scrollOff < v.top {
		v.top = line - scrollOff
	}
	if line+scrollOff >= v.top+height {
		v.top = line + scrollOff - height + 1
	}
	if maxTop := lineCount - height; v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}

	if visualCol < v.left {
		v.left = visualCol
	}
	if visualCol >= v.left+width {
		v.left = visualCol - width + 1
	}
}

// editorArea is the geometry of the last drawn editor, kept for HitTest.
type editorArea struct {
	area   rect
	gutter int
	view   viewport
	lines  [][]byte
}

// Renderer draws Frames and maps clicks back to what was drawn.
type Renderer struct {
	tui        *TUI
	hl         *highlighter.Highlighter
	scrollOff  int
	defaultExt string

	views   map[session.ID]*viewport
	regions []region
	editor  editorArea
	modal   rect // zero when no modal is shown
}

// NewRenderer draws on t. Buffers without a path are highlighted as defaultExt.
func NewRenderer(t *TUI, hl *highlighter.Highlighter, scrollOff int, defaultExt string) *Renderer {
	return &Renderer{
		tui:        t,
		hl:         hl,
		scrollOff:  scrollOff,
		defaultExt: defaultExt,
		views:      make(map[session.ID]*viewport),
	}
}

// EditorHeight is the number of text rows, used as the page size.
func (r *Renderer) EditorHeight() int {
	_, h := r.tui.Size()
	rows := h - config.MenuBarHeight - config.TabBarHeight - config.StatusBarHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// Forget drops the scroll position of a closed buffer.
func (r *Renderer) Forget(id session.ID) {
	delete(r.views, id)
}

// Draw renders f to the screen and shows it.
func (r *Renderer) Draw(f Frame) {
	screen := r.tui.GetScreen()
	width, height := r.tui.Size()
	base := f.Theme.GetStyle("Default")

	screen.SetStyle(base)
	screen.Clear()
	r.regions = r.regions[:0]
	r.modal = rect{}

	r.drawMenu(screen, 0, width, f)
	r.drawTabs(screen, config.MenuBarHeight, width, f)
	editorTop := config.MenuBarHeight + config.TabBarHeight
	r.drawEditor(screen, rect{x: 0, y: editorTop, w: width, h: height - editorTop - config.StatusBarHeight}, f)
	if f.Status != nil && height > editorTop {
		f.Status.Draw(screen, height-1, width)
	}

	switch f.Overlay {
	case OverlayAbout:
		screen.HideCursor()
		r.drawAbout(screen, width, height, f)
	case OverlaySettings:
		screen.HideCursor()
		r.drawSettings(screen, width, height, f)
	}

	r.tui.Show()
}

func (r *Renderer) drawMenu(screen tcell.Screen, y, width int, f Frame) {
	style := f.Theme.GetStyle("MenuBar")
	keyStyle := f.Theme.GetStyle("MenuBar.key")
	fill(screen, 0, y, width, style)

	x := 1
	for _, item := range Menu {
		w := runewidth.StringWidth(item.Label) + 1 + runewidth.StringWidth(item.Key)
		if x+w > width {
			break
		}
		start := x
		x = drawString(screen, x, y, width, item.Label, style)
		x = drawString(screen, x+1, y, width, item.Key, keyStyle)
		r.regions = append(r.regions, region{x0: start, x1: x, y: y, hit: Hit{Kind: HitMenu, Action: item.Action}})
		x += 2
	}
}

func (r *Renderer) drawTabs(screen tcell.Screen, y, width int, f Frame) {
	fill(screen, 0, y, width, f.Theme.GetStyle("Tab"))

	x := 0
	for i, b := range f.Session.Buffers() {
		style := f.Theme.GetStyle("Tab")
		if i == f.Session.CurrentIndex() {
			style = f.Theme.GetStyle("Tab.active")
		}
		title := " " + runewidth.Truncate(b.Title(), maxTabTitleWidth, "…") + " "
		if x+runewidth.StringWidth(title)+2 > width {
			break
		}
		start := x
		x = drawString(screen, x, y, width, title, style)
		r.regions = append(r.regions, region{x0: start, x1: x, y: y, hit: Hit{Kind: HitTab, Index: i}})

		closeStyle := f.Theme.GetStyle("Tab.close")
		if i == f.Session.CurrentIndex() {
			closeStyle = style
		}
		screen.SetContent(x, y, '×', nil, closeStyle)
		screen.SetContent(x+1, y, ' ', nil, closeStyle)
		r.regions = append(r.regions, region{x0: x, x1: x + 1, y: y, hit: Hit{Kind: HitTabClose, Index: i}})
		x += 2
	}
}

func (r *Renderer) drawEditor(screen tcell.Screen, area rect, f Frame) {
	b := f.Session.Current()
	c := b.Content
	lines := c.Lines()
	if len(lines) == 0 {
		lines = [][]byte{{}}
	}

	maxDigits := int(math.Log10(float64(len(lines)))) + 1
	gutter := maxDigits + 1
	if gutter >= area.w {
		gutter = 0
	}
	textWidth := area.w - gutter

	v := r.views[b.ID]
	if v == nil {
		v = &viewport{}
		r.views[b.ID] = v
	}
	cursor := c.Cursor()
	if cursor.Line >= len(lines) {
		cursor.Line = len(lines) - 1
	}
	cursorCol := visualColumn(lines[cursor.Line], cursor.Col)
	v.follow(cursor.Line, cursorCol, len(lines), area.h, textWidth, r.scrollOff)
	r.editor = editorArea{area: area, gutter: gutter, view: *v, lines: lines}

	ext := b.Extension()
	if ext == "" {
		ext = r.defaultExt
	}
	var spans highlighter.Result
	if r.hl != nil {
		spans = r.hl.Highlight(b.ID.String(), c.Version(), ext, f.Syntax, func() []byte { return []byte(b.Text()) })
	}

	base := f.Theme.GetStyle("Default")
	_, selBg, _ := f.Theme.GetStyle("Selection").Decompose()
	lineNumberStyle := f.Theme.GetStyle("LineNumber")
	selStart, selEnd, selected := c.Selection()

	for row := 0; row < area.h; row++ {
		y := area.y + row
		lineIdx := v.top + row
		fill(screen, area.x, y, area.w, base)
		if lineIdx >= len(lines) {
			continue
		}

		if gutter > 0 {
			numStyle := lineNumberStyle
			if lineIdx == cursor.Line {
				numStyle = numStyle.Bold(true)
			}
			drawString(screen, area.x, y, area.x+gutter-1, fmt.Sprintf("%*d", maxDigits, lineIdx+1), numStyle)
		}

		lineSpans := spans[lineIdx]
		gr := uniseg.NewGraphemes(string(lines[lineIdx]))
		visualX, runeIdx := 0, 0
		for gr.Next() {
			runes := gr.Runes()
			w := gr.Width()
			if visualX >= v.left+textWidth {
				break
			}
			if visualX >= v.left && visualX+w <= v.left+textWidth {
				style := base
				for _, sp := range lineSpans {
					if runeIdx >= sp.StartCol && runeIdx < sp.EndCol {
						style = sp.Apply(base)
					}
				}
				pos := types.Position{Line: lineIdx, Col: runeIdx}
				if selected && !pos.Before(selStart) && pos.Before(selEnd) {
					style = style.Background(selBg)
				}
				x := area.x + gutter + visualX - v.left
				screen.SetContent(x, y, runes[0], runes[1:], style)
				for i := 1; i < w; i++ {
					screen.SetContent(x+i, y, ' ', nil, style)
				}
			}
			visualX += w
			runeIdx += len(runes)
		}
	}

	cx := area.x + gutter + cursorCol - v.left
	cy := area.y + cursor.Line - v.top
	if area.contains(cx, cy) && cx >= area.x+gutter {
		screen.ShowCursor(cx, cy)
	} else {
		screen.HideCursor()
	}
}

// HitTest reports what the last drawn frame shows at (x, y). While a modal
// is shown only the modal is clickable.
func (r *Renderer) HitTest(x, y int) Hit {
	if r.modal.w > 0 {
		if !r.modal.contains(x, y) {
			return Hit{}
		}
		for i := len(r.regions) - 1; i >= 0; i-- {
			if reg := r.regions[i]; reg.hit.Kind == HitModalItem && reg.contains(x, y) {
				return reg.hit
			}
		}
		return Hit{}
	}

	for _, reg := range r.regions {
		if reg.contains(x, y) {
			return reg.hit
		}
	}

	e := r.editor
	if !e.area.contains(x, y) || x < e.area.x+e.gutter || len(e.lines) == 0 {
		return Hit{}
	}
	line := e.view.top + y - e.area.y
	if line >= len(e.lines) {
		line = len(e.lines) - 1
	}
	col := runeIndexAt(e.lines[line], e.view.left+x-e.area.x-e.gutter)
	return Hit{Kind: HitEditor, Pos: types.Position{Line: line, Col: col}}
}

// visualColumn returns the display width of the first runeIndex runes of line.
func visualColumn(line []byte, runeIndex int) int {
	visualWidth, currentRune := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() && currentRune < runeIndex {
		visualWidth += gr.Width()
		currentRune += len(gr.Runes())
	}
	return visualWidth
}

// runeIndexAt returns the rune index of the grapheme cluster covering visual
// column col, or the line length when col is past the end.
func runeIndexAt(line []byte, col int) int {
	visualWidth, currentRune := 0, 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		w := gr.Width()
		if col < visualWidth+w {
			return currentRune
		}
		visualWidth += w
		currentRune += len(gr.Runes())
	}
	return currentRune
}

func fill(screen tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawString draws text from x, stopping before column limit, and returns
// the column after the last drawn cluster.
func drawString(screen tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > limit {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
