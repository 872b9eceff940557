package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/theme"
)

// drawBox draws a bordered, titled box centered on the screen and records
// it as the modal area.
func (r *Renderer) drawBox(screen tcell.Screen, width, height, boxW, boxH int, title string, f Frame) rect {
	if boxW > width-2 {
		boxW = width - 2
	}
	if boxH > height-2 {
		boxH = height - 2
	}
	box := rect{x: (width - boxW) / 2, y: (height - boxH) / 2, w: boxW, h: boxH}
	if box.w < 4 || box.h < 3 {
		return rect{}
	}
	r.modal = box

	style := f.Theme.GetStyle("Modal")
	border := f.Theme.GetStyle("Modal.border")
	for row := 0; row < box.h; row++ {
		fill(screen, box.x, box.y+row, box.w, style)
		screen.SetContent(box.x, box.y+row, tcell.RuneVLine, nil, border)
		screen.SetContent(box.x+box.w-1, box.y+row, tcell.RuneVLine, nil, border)
	}
	for col := 1; col < box.w-1; col++ {
		screen.SetContent(box.x+col, box.y, tcell.RuneHLine, nil, border)
		screen.SetContent(box.x+col, box.y+box.h-1, tcell.RuneHLine, nil, border)
	}
	screen.SetContent(box.x, box.y, tcell.RuneULCorner, nil, border)
	screen.SetContent(box.x+box.w-1, box.y, tcell.RuneURCorner, nil, border)
	screen.SetContent(box.x, box.y+box.h-1, tcell.RuneLLCorner, nil, border)
	screen.SetContent(box.x+box.w-1, box.y+box.h-1, tcell.RuneLRCorner, nil, border)

	title = " " + title + " "
	drawString(screen, box.x+2, box.y, box.x+box.w-2, title, f.Theme.GetStyle("Modal.title"))
	return box
}

func (r *Renderer) drawAbout(screen tcell.Screen, width, height int, f Frame) {
	lines := []string{
		"Multi-tab text editor",
		"Version " + config.Version,
		"",
		config.SourceURL,
		"",
		"s: open source page   Esc: close",
	}
	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	box := r.drawBox(screen, width, height, boxW+6, len(lines)+4, "About", f)
	if box.w == 0 {
		return
	}
	style := f.Theme.GetStyle("Modal")
	for i, l := range lines {
		y := box.y + 2 + i
		if y >= box.y+box.h-1 {
			break
		}
		x := box.x + (box.w-runewidth.StringWidth(l))/2
		drawString(screen, x, y, box.x+box.w-1, l, style)
	}
}

func (r *Renderer) drawSettings(screen tcell.Screen, width, height int, f Frame) {
	uiNames := make([]string, 0, len(theme.AllUIThemes()))
	for _, t := range theme.AllUIThemes() {
		uiNames = append(uiNames, t.String())
	}
	syntaxNames := make([]string, 0, len(theme.AllSyntaxThemes()))
	for _, t := range theme.AllSyntaxThemes() {
		syntaxNames = append(syntaxNames, t.String())
	}

	box := r.drawBox(screen, width, height, 64, max(len(uiNames), len(syntaxNames))+6, "Settings", f)
	if box.w == 0 {
		return
	}
	colW := (box.w - 3) / 2
	listTop := box.y + 3
	rows := box.y + box.h - 2 - listTop

	headers := [2]string{"UI theme", "Syntax theme"}
	lists := [2][]string{uiNames, syntaxNames}
	for list := 0; list < 2; list++ {
		x := box.x + 1 + list*(colW+1)
		headerStyle := f.Theme.GetStyle("Modal")
		if list == f.Focus {
			headerStyle = f.Theme.GetStyle("Modal.title")
		}
		drawString(screen, x+1, box.y+1, x+colW, headers[list], headerStyle)
		r.drawList(screen, x, listTop, colW, rows, list, lists[list], f)
	}
	drawString(screen, box.x+2, box.y+box.h-2, box.x+box.w-1, "Up/Down: choose   Tab: switch list   Esc: close", f.Theme.GetStyle("Modal.border"))
}

// drawList draws one settings list, scrolled so its cursor is visible.
func (r *Renderer) drawList(screen tcell.Screen, x, y, w, rows, list int, items []string, f Frame) {
	if rows <= 0 {
		return
	}
	cursor := f.Cursor[list]
	first := 0
	if cursor >= rows {
		first = cursor - rows + 1
	}
	for row := 0; row < rows && first+row < len(items); row++ {
		i := first + row
		style := f.Theme.GetStyle("Modal")
		if i == cursor {
			style = f.Theme.GetStyle("Modal.active")
			if list == f.Focus {
				style = f.Theme.GetStyle("Modal.selected")
			}
		}
		fill(screen, x, y+row, w, style)
		drawString(screen, x+1, y+row, x+w, runewidth.Truncate(items[i], w-2, "…"), style)
		r.regions = append(r.regions, region{x0: x, x1: x + w, y: y + row, hit: Hit{Kind: HitModalItem, List: list, Index: i}})
	}
}
