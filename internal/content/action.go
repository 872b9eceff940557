package content

import "github.com/bethropolis/multitab/internal/types"

// ActionKind identifies what an Action does to a Content.
type ActionKind int

const (
	ActionMove ActionKind = iota
	ActionSelect
	ActionSelectAll
	ActionClick
	ActionInsert
	ActionNewLine
	ActionBackspace
	ActionDelete
	ActionPaste
)

// Motion is a cursor movement used by move and select actions.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionPageUp
	MotionPageDown
	MotionDocumentStart
	MotionDocumentEnd
)

// Action is a single request against a Content. Only some kinds mutate text;
// see IsEdit.
type Action struct {
	Kind   ActionKind
	Motion Motion
	Rune   rune           // ActionInsert
	Text   string         // ActionPaste
	Pos    types.Position // ActionClick
	Count  int            // page size for page motions, 0 means DefaultPageSize
}

// DefaultPageSize is the page motion distance when an action does not carry one.
const DefaultPageSize = 20

func Move(m Motion) Action            { return Action{Kind: ActionMove, Motion: m} }
func Select(m Motion) Action          { return Action{Kind: ActionSelect, Motion: m} }
func SelectAll() Action               { return Action{Kind: ActionSelectAll} }
func Click(pos types.Position) Action { return Action{Kind: ActionClick, Pos: pos} }
func Insert(r rune) Action            { return Action{Kind: ActionInsert, Rune: r} }
func NewLine() Action                 { return Action{Kind: ActionNewLine} }
func Backspace() Action               { return Action{Kind: ActionBackspace} }
func Delete() Action                  { return Action{Kind: ActionDelete} }
func Paste(text string) Action        { return Action{Kind: ActionPaste, Text: text} }

// IsEdit reports whether the action mutates text. Cursor moves and selection
// changes are not edits.
func (a Action) IsEdit() bool {
	switch a.Kind {
	case ActionInsert, ActionNewLine, ActionBackspace, ActionDelete, ActionPaste:
		return true
	default:
		return false
	}
}
