// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBacktab] = ActionFocusNext
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionHideModal
	p.keymap[tcell.KeyF1] = ActionAbout
	p.keymap[tcell.KeyF2] = ActionSettings
	p.keymap[tcell.KeyF4] = ActionReveal
	p.keymap[tcell.KeyF12] = ActionSaveAs

	// --- Ctrl ---
	// tcell reports Ctrl+letter as its own key code, with ModCtrl set.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlN] = ActionNew
	ctrlMap[tcell.KeyCtrlO] = ActionOpen
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlW] = ActionClose
	ctrlMap[tcell.KeyCtrlQ] = ActionQuit
	ctrlMap[tcell.KeyCtrlC] = ActionCopy
	ctrlMap[tcell.KeyCtrlX] = ActionCut
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlA] = ActionSelectAll
	ctrlMap[tcell.KeyHome] = ActionMoveFileStart
	ctrlMap[tcell.KeyEnd] = ActionMoveFileEnd
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Alt ---
	altMap := make(Keymap)
	altMap[tcell.KeyLeft] = ActionPrevTab
	altMap[tcell.KeyRight] = ActionNextTab
	p.modKeymap[tcell.ModAlt] = altMap
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// Whether an action applies to the buffer or an open modal is decided by the caller.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()
	shift := mod&tcell.ModShift != 0

	// 1. Modifier + Key combinations. Shift is ignored so Ctrl+Shift+End still selects.
	if modKeyMap, ok := p.modKeymap[mod&^tcell.ModShift]; ok {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action, Shift: shift}
		}
	}

	// Ctrl+letter key codes already imply Ctrl; terminals differ on whether they set ModCtrl.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 2. Alt + rune: tab selection and Save As.
	if key == tcell.KeyRune && mod&tcell.ModAlt != 0 {
		switch {
		case runeVal >= '1' && runeVal <= '9':
			return ActionEvent{Action: ActionSelectTab, Index: int(runeVal - '1')}
		case runeVal == 's' || runeVal == 'S':
			return ActionEvent{Action: ActionSaveAs}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	// 3. Simple Key mappings. Shift is allowed for selection with arrows etc.
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Shift: shift}
		}
	}

	// 4. Plain runes are inserted.
	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}
