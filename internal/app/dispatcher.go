package app

import (
	"errors"
	"path/filepath"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/event"
	"github.com/bethropolis/multitab/internal/logger"
	"github.com/bethropolis/multitab/internal/platform"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/settings"
	"github.com/bethropolis/multitab/internal/statusbar"
	"github.com/bethropolis/multitab/internal/theme"
)

// FileWatcher is notified of the paths backing open buffers.
type FileWatcher interface {
	Add(path string) error
	Remove(path string)
}

// Deps are the collaborators of a Dispatcher. Watcher may be nil.
type Deps struct {
	Dialogs    platform.Dialogs
	Files      platform.Files
	Shell      platform.Shell
	Clipboard  platform.Clipboard
	Watcher    FileWatcher
	Themes     *theme.Manager
	Settings   *settings.Store
	Events     *event.Manager
	Status     *statusbar.StatusBar
	DefaultExt string
}

// ModalState is the modal shown over the editor and, for the settings
// modal, which list has focus and where each list's cursor is.
type ModalState struct {
	Kind   ModalKind
	Focus  int    // 0: UI themes, 1: syntax themes
	Cursor [2]int // index into theme.AllUIThemes / theme.AllSyntaxThemes
}

// Dispatcher applies Msgs to the session and starts the asynchronous work
// they need. It must only be used from one goroutine.
type Dispatcher struct {
	deps     Deps
	session  *session.Session
	modal    ModalState
	quitting bool
}

// NewDispatcher wires d around s and subscribes to the buffer lifecycle
// events it reacts to.
func NewDispatcher(s *session.Session, d Deps) *Dispatcher {
	if d.Events == nil {
		d.Events = event.NewManager()
	}
	if d.Status == nil {
		d.Status = statusbar.New(statusbar.DefaultConfig())
	}
	dp := &Dispatcher{deps: d, session: s}
	d.Events.Subscribe(event.TypeBufferOpened, dp.watchBuffer)
	d.Events.Subscribe(event.TypeBufferSaved, dp.watchBuffer)
	d.Events.Subscribe(event.TypeBufferClosed, dp.unwatchBuffer)
	return dp
}

func (d *Dispatcher) Session() *session.Session { return d.session }
func (d *Dispatcher) Modal() ModalState         { return d.modal }
func (d *Dispatcher) Quitting() bool            { return d.quitting }

// Update applies msg and returns the work it started, or nil.
func (d *Dispatcher) Update(msg Msg) Cmd {
	switch m := msg.(type) {
	case NewFile:
		d.session.New()

	case OpenFile:
		return openTask(d.deps.Dialogs, d.deps.Files)

	case FileOpened:
		if m.Err != nil {
			d.fail(m.Err)
			return nil
		}
		b := d.session.Open(m.Path, m.Text)
		d.deps.Events.Dispatch(event.TypeBufferOpened, bufferData(b))

	case SaveFile:
		req := d.session.PrepareSave(m.SaveAs)
		return saveTask(d.deps.Dialogs, d.deps.Files, req, d.deps.DefaultExt)

	case FileSaved:
		if m.Err != nil {
			d.fail(m.Err)
			return nil
		}
		i, ok := d.session.Find(m.BufferID)
		if !ok {
			d.session.Saved(m.BufferID, m.Path)
			return nil
		}
		b := d.session.Buffers()[i]
		oldPath := b.Path
		d.session.Saved(m.BufferID, m.Path)
		if oldPath != m.Path {
			d.unwatch(oldPath)
		}
		d.deps.Events.Dispatch(event.TypeBufferSaved, bufferData(b))

	case CloseFile:
		d.closing(d.session.Close)

	case CloseIndex:
		d.closing(func() { d.session.CloseIndex(m.Index) })

	case SelectFile:
		if m.Index >= 0 && m.Index < d.session.Len() {
			d.session.SelectFile(m.Index)
		}

	case CycleTab:
		n := d.session.Len()
		d.session.SelectFile(((d.session.CurrentIndex()+m.Delta)%n + n) % n)

	case Edit:
		d.session.Edit(m.Action)

	case ShowModal:
		d.showModal(m.Kind)

	case HideModal:
		d.modal.Kind = ModalNone

	case ModalMove:
		d.moveModalCursor(m.Delta)

	case ModalFocusNext:
		if d.modal.Kind == ModalSettings {
			d.modal.Focus = 1 - d.modal.Focus
		}

	case ModalPick:
		if d.modal.Kind == ModalSettings && (m.List == 0 || m.List == 1) {
			d.modal.Focus = m.List
			d.moveModalCursor(m.Index - d.modal.Cursor[m.List])
		}

	case SetTheme:
		d.deps.Themes.SetTheme(m.Theme)
		d.themeChanged()

	case SetSyntaxTheme:
		d.deps.Themes.SetSyntaxTheme(m.Theme)
		d.themeChanged()

	case OpenURL:
		return shellTask("open url", func() error { return d.deps.Shell.OpenURL(m.URL) })

	case ShowInExplorer:
		path := d.session.Current().Path
		if path == "" {
			d.deps.Status.SetTemporaryMessage("Save the file to show it in the file manager")
			return nil
		}
		return shellTask("reveal", func() error { return d.deps.Shell.Reveal(path) })

	case Copy:
		return d.copySelection(false)

	case Cut:
		return d.copySelection(true)

	case Paste:
		return pasteTask(d.deps.Clipboard)

	case PasteText:
		if m.Err != nil {
			logger.Warnf("Paste: clipboard read failed: %v", m.Err)
			return nil
		}
		if m.Text != "" {
			d.session.Edit(content.Paste(session.NormalizeText(m.Text)))
		}

	case FileChanged:
		if _, ok := d.session.FindPath(m.Path); ok {
			return readTask(d.deps.Files, m.Path)
		}

	case DiskChecked:
		d.diskChecked(m)

	case ShellDone:
		if m.Err != nil {
			logger.Warnf("Shell: %s failed: %v", m.What, m.Err)
		}

	case Quit:
		d.quitting = true

	default:
		logger.Warnf("Dispatcher: unhandled message %T", msg)
	}
	return nil
}

// fail records err. Only I/O failures are shown; a closed dialog is not an error to the user.
func (d *Dispatcher) fail(err error) {
	d.session.Fail(err)
	if errors.Is(err, session.ErrDialogClosed) {
		logger.DebugTagf("dispatch", "Dialog closed")
		return
	}
	logger.Warnf("Dispatcher: %v", err)
}

// closing runs op and reports every buffer that left the session.
func (d *Dispatcher) closing(op func()) {
	before := append([]*session.Buffer(nil), d.session.Buffers()...)
	op()
	for _, b := range before {
		if _, ok := d.session.Find(b.ID); !ok {
			d.deps.Events.Dispatch(event.TypeBufferClosed, bufferData(b))
		}
	}
}

func (d *Dispatcher) showModal(kind ModalKind) {
	d.modal.Kind = kind
	if kind != ModalSettings {
		return
	}
	for i, t := range theme.AllUIThemes() {
		if t == d.deps.Themes.UITheme() {
			d.modal.Cursor[0] = i
		}
	}
	for i, t := range theme.AllSyntaxThemes() {
		if t == d.deps.Themes.SyntaxTheme() {
			d.modal.Cursor[1] = i
		}
	}
}

func (d *Dispatcher) moveModalCursor(delta int) {
	if d.modal.Kind != ModalSettings {
		return
	}
	if d.modal.Focus == 0 {
		all := theme.AllUIThemes()
		d.modal.Cursor[0] = clamp(d.modal.Cursor[0]+delta, len(all))
		d.Update(SetTheme{Theme: all[d.modal.Cursor[0]]})
		return
	}
	all := theme.AllSyntaxThemes()
	d.modal.Cursor[1] = clamp(d.modal.Cursor[1]+delta, len(all))
	d.Update(SetSyntaxTheme{Theme: all[d.modal.Cursor[1]]})
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// themeChanged persists the selection on every change.
func (d *Dispatcher) themeChanged() {
	themeKey := theme.ThemeToKey(d.deps.Themes.UITheme())
	syntaxKey := theme.SyntaxThemeToKey(d.deps.Themes.SyntaxTheme())
	if d.deps.Settings != nil {
		d.deps.Settings.Save(themeKey, syntaxKey)
	}
	d.deps.Events.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{ThemeKey: themeKey, SyntaxThemeKey: syntaxKey})
}

func (d *Dispatcher) copySelection(cut bool) Cmd {
	text := d.session.Current().Content.SelectedText()
	if text == "" {
		return nil
	}
	if cut {
		d.session.Edit(content.Delete())
	}
	return shellTask("copy", func() error { return d.deps.Clipboard.Write(text) })
}

func (d *Dispatcher) diskChecked(m DiskChecked) {
	i, ok := d.session.FindPath(m.Path)
	if !ok {
		return
	}
	name := filepath.Base(m.Path)
	differs := m.Err != nil || m.Text != d.session.Buffers()[i].Text()
	if m.Err != nil {
		logger.Warnf("Watcher: reading %s: %v", m.Path, m.Err)
		d.deps.Status.SetTemporaryMessage("%s is no longer readable on disk", name)
	} else if differs {
		d.deps.Status.SetTemporaryMessage("%s changed on disk", name)
	}
	d.deps.Events.Dispatch(event.TypeFileChanged, event.FileChangedData{FilePath: m.Path, Differs: differs})
}

func (d *Dispatcher) watchBuffer(e event.Event) bool {
	data, ok := e.Data.(event.BufferData)
	if !ok || data.FilePath == "" || d.deps.Watcher == nil {
		return false
	}
	if err := d.deps.Watcher.Add(data.FilePath); err != nil {
		logger.Warnf("Watcher: %v", err)
	}
	return false
}

func (d *Dispatcher) unwatchBuffer(e event.Event) bool {
	if data, ok := e.Data.(event.BufferData); ok {
		d.unwatch(data.FilePath)
	}
	return false
}

// unwatch stops watching path once no open buffer is backed by it.
func (d *Dispatcher) unwatch(path string) {
	if path == "" || d.deps.Watcher == nil {
		return
	}
	if _, stillOpen := d.session.FindPath(path); !stillOpen {
		d.deps.Watcher.Remove(path)
	}
}

func bufferData(b *session.Buffer) event.BufferData {
	return event.BufferData{BufferID: b.ID.String(), FilePath: b.Path}
}
