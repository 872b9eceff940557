// internal/input/action.go
package input

import "github.com/bethropolis/multitab/internal/content"

// Action represents a user intent decoded from a key event.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit

	// --- Session ---
	ActionNew
	ActionOpen
	ActionSave
	ActionSaveAs
	ActionClose
	ActionPrevTab
	ActionNextTab
	ActionSelectTab // Index carries the tab

	// --- Modals and Shell ---
	ActionAbout
	ActionSettings
	ActionHideModal
	ActionReveal

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste

	// --- Cursor Movement (Shift extends the selection) ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome
	ActionMoveEnd
	ActionMoveFileStart
	ActionMoveFileEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward
	ActionDeleteCharBackward

	// --- Modal lists ---
	ActionEnter
	ActionFocusNext
)

// ActionEvent is a decoded input event with its payload.
type ActionEvent struct {
	Action Action
	Rune   rune // ActionInsertRune
	Index  int  // ActionSelectTab
	Shift  bool // movement extends the selection
}

var motions = map[Action]content.Motion{
	ActionMoveUp:        content.MotionUp,
	ActionMoveDown:      content.MotionDown,
	ActionMoveLeft:      content.MotionLeft,
	ActionMoveRight:     content.MotionRight,
	ActionMovePageUp:    content.MotionPageUp,
	ActionMovePageDown:  content.MotionPageDown,
	ActionMoveHome:      content.MotionHome,
	ActionMoveEnd:       content.MotionEnd,
	ActionMoveFileStart: content.MotionDocumentStart,
	ActionMoveFileEnd:   content.MotionDocumentEnd,
}

// TabSpaces is inserted for the Tab key; tabs never enter a buffer.
const TabSpaces = "    "

// ContentAction converts editing and movement events to a content action.
// pageSize is the visible height used by page motions.
func (ev ActionEvent) ContentAction(pageSize int) (content.Action, bool) {
	if m, ok := motions[ev.Action]; ok {
		a := content.Move(m)
		if ev.Shift {
			a = content.Select(m)
		}
		if m == content.MotionPageUp || m == content.MotionPageDown {
			a.Count = pageSize
		}
		return a, true
	}

	switch ev.Action {
	case ActionSelectAll:
		return content.SelectAll(), true
	case ActionInsertRune:
		return content.Insert(ev.Rune), true
	case ActionInsertNewLine:
		return content.NewLine(), true
	case ActionInsertTab:
		return content.Paste(TabSpaces), true
	case ActionDeleteCharForward:
		return content.Delete(), true
	case ActionDeleteCharBackward:
		return content.Backspace(), true
	}
	return content.Action{}, false
}
