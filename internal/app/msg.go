package app

import (
	"context"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/theme"
)

// Msg is a user intent or the result of a finished task. Every Msg is
// applied by Dispatcher.Update on the goroutine that owns the session.
type Msg interface {
	isMsg()
}

// Cmd is asynchronous work started by Update. It runs on its own goroutine,
// never touches dispatcher state, and reports back with a Msg (or nil).
type Cmd func(ctx context.Context) Msg

// ModalKind names the modal shown over the editor.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalAbout
	ModalSettings
)

type (
	NewFile   struct{}
	OpenFile  struct{}
	CloseFile struct{}
	Quit      struct{}

	// FileOpened reports a finished pick-and-read.
	FileOpened struct {
		Path string
		Text string
		Err  error
	}

	SaveFile struct {
		SaveAs bool
	}

	// FileSaved reports a finished write of the buffer BufferID.
	FileSaved struct {
		BufferID session.ID
		Path     string
		Err      error
	}

	CloseIndex struct{ Index int }
	SelectFile struct{ Index int }

	// CycleTab moves to the neighbouring tab, wrapping around.
	CycleTab struct{ Delta int }

	Edit struct{ Action content.Action }

	ShowModal struct{ Kind ModalKind }
	HideModal struct{}

	// ModalMove moves the cursor of the focused settings list; the item
	// under the cursor is applied immediately.
	ModalMove struct{ Delta int }
	// ModalFocusNext switches between the UI and syntax theme lists.
	ModalFocusNext struct{}
	// ModalPick focuses settings list List and applies its item Index.
	ModalPick struct{ List, Index int }

	SetTheme       struct{ Theme theme.UITheme }
	SetSyntaxTheme struct{ Theme theme.SyntaxTheme }

	OpenURL        struct{ URL string }
	ShowInExplorer struct{}

	Copy  struct{}
	Cut   struct{}
	Paste struct{}

	// PasteText carries clipboard contents read by a task.
	PasteText struct {
		Text string
		Err  error
	}

	// FileChanged reports a change notification for an open file.
	FileChanged struct{ Path string }

	// DiskChecked carries the current disk text of a changed file.
	DiskChecked struct {
		Path string
		Text string
		Err  error
	}

	// ShellDone reports a finished fire-and-forget shell call.
	ShellDone struct {
		What string
		Err  error
	}
)

func (NewFile) isMsg()        {}
func (OpenFile) isMsg()       {}
func (CloseFile) isMsg()      {}
func (Quit) isMsg()           {}
func (FileOpened) isMsg()     {}
func (SaveFile) isMsg()       {}
func (FileSaved) isMsg()      {}
func (CloseIndex) isMsg()     {}
func (SelectFile) isMsg()     {}
func (CycleTab) isMsg()       {}
func (Edit) isMsg()           {}
func (ShowModal) isMsg()      {}
func (HideModal) isMsg()      {}
func (ModalMove) isMsg()      {}
func (ModalFocusNext) isMsg() {}
func (ModalPick) isMsg()      {}
func (SetTheme) isMsg()       {}
func (SetSyntaxTheme) isMsg() {}
func (OpenURL) isMsg()        {}
func (ShowInExplorer) isMsg() {}
func (Copy) isMsg()           {}
func (Cut) isMsg()            {}
func (Paste) isMsg()          {}
func (PasteText) isMsg()      {}
func (FileChanged) isMsg()    {}
func (DiskChecked) isMsg()    {}
func (ShellDone) isMsg()      {}
