package tui

import (
	"github.com/bethropolis/multitab/internal/input"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/statusbar"
	"github.com/bethropolis/multitab/internal/theme"
	"github.com/bethropolis/multitab/internal/types"
)

// Overlay is the modal drawn over the editor.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayAbout
	OverlaySettings
)

// Frame is the state drawn by one Renderer.Draw call.
type Frame struct {
	Session *session.Session
	Theme   *theme.Theme
	Syntax  theme.SyntaxTheme
	Status  *statusbar.StatusBar

	Overlay Overlay
	Focus   int    // focused settings list
	Cursor  [2]int // cursor of each settings list
}

// MenuItem is an entry of the menu bar; clicking it performs Action.
type MenuItem struct {
	Label  string
	Key    string
	Action input.Action
}

// Menu is the menu bar, left to right.
var Menu = []MenuItem{
	{Label: "New", Key: "^N", Action: input.ActionNew},
	{Label: "Open", Key: "^O", Action: input.ActionOpen},
	{Label: "Save", Key: "^S", Action: input.ActionSave},
	{Label: "Save As", Key: "F12", Action: input.ActionSaveAs},
	{Label: "Close", Key: "^W", Action: input.ActionClose},
	{Label: "Reveal", Key: "F4", Action: input.ActionReveal},
	{Label: "Settings", Key: "F2", Action: input.ActionSettings},
	{Label: "About", Key: "F1", Action: input.ActionAbout},
	{Label: "Quit", Key: "^Q", Action: input.ActionQuit},
}

// HitKind says what a screen cell belongs to.
type HitKind int

const (
	HitNone HitKind = iota
	HitMenu
	HitTab
	HitTabClose
	HitEditor
	HitModalItem
)

// Hit is the result of HitTest.
type Hit struct {
	Kind   HitKind
	Action input.Action   // HitMenu
	Index  int            // HitTab, HitTabClose, HitModalItem
	List   int            // HitModalItem
	Pos    types.Position // HitEditor
}

// region is a clickable run of cells on one row, x in [x0, x1).
type region struct {
	x0, x1, y int
	hit       Hit
}

func (r region) contains(x, y int) bool {
	return y == r.y && x >= r.x0 && x < r.x1
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
