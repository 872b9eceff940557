package app

import (
	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/input"
)

// KeyMsg turns a decoded key into an intent. While a modal is shown, keys
// drive the modal instead of the buffer. It returns nil for keys with no effect.
func KeyMsg(ev input.ActionEvent, modal ModalState, pageSize int) Msg {
	switch ev.Action {
	case input.ActionQuit:
		return Quit{}
	case input.ActionAbout:
		return ShowModal{Kind: ModalAbout}
	case input.ActionSettings:
		return ShowModal{Kind: ModalSettings}
	}

	switch modal.Kind {
	case ModalAbout:
		return aboutKey(ev)
	case ModalSettings:
		return settingsKey(ev)
	}
	return editorKey(ev, pageSize)
}

func aboutKey(ev input.ActionEvent) Msg {
	switch ev.Action {
	case input.ActionInsertRune:
		if ev.Rune == 's' || ev.Rune == 'S' {
			return OpenURL{URL: config.SourceURL}
		}
	case input.ActionHideModal, input.ActionEnter, input.ActionInsertNewLine:
		return HideModal{}
	}
	return nil
}

func settingsKey(ev input.ActionEvent) Msg {
	switch ev.Action {
	case input.ActionMoveUp:
		return ModalMove{Delta: -1}
	case input.ActionMoveDown:
		return ModalMove{Delta: 1}
	case input.ActionMovePageUp:
		return ModalMove{Delta: -5}
	case input.ActionMovePageDown:
		return ModalMove{Delta: 5}
	case input.ActionInsertTab, input.ActionFocusNext, input.ActionMoveLeft, input.ActionMoveRight:
		return ModalFocusNext{}
	case input.ActionHideModal, input.ActionEnter, input.ActionInsertNewLine:
		return HideModal{}
	}
	return nil
}

func editorKey(ev input.ActionEvent, pageSize int) Msg {
	switch ev.Action {
	case input.ActionNew:
		return NewFile{}
	case input.ActionOpen:
		return OpenFile{}
	case input.ActionSave:
		return SaveFile{}
	case input.ActionSaveAs:
		return SaveFile{SaveAs: true}
	case input.ActionClose:
		return CloseFile{}
	case input.ActionPrevTab:
		return CycleTab{Delta: -1}
	case input.ActionNextTab:
		return CycleTab{Delta: 1}
	case input.ActionSelectTab:
		return SelectFile{Index: ev.Index}
	case input.ActionReveal:
		return ShowInExplorer{}
	case input.ActionCopy:
		return Copy{}
	case input.ActionCut:
		return Cut{}
	case input.ActionPaste:
		return Paste{}
	case input.ActionHideModal, input.ActionUnknown:
		return nil
	}
	if a, ok := ev.ContentAction(pageSize); ok {
		return Edit{Action: a}
	}
	return nil
}
