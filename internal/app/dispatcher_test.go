package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/event"
	"github.com/bethropolis/multitab/internal/platform"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/settings"
	"github.com/bethropolis/multitab/internal/statusbar"
	"github.com/bethropolis/multitab/internal/theme"
)

type fakeDialogs struct {
	open    string
	save    string
	err     error
	saveExt string
	asked   int
}

func (f *fakeDialogs) PickFile(ctx context.Context) (string, error) {
	f.asked++
	return f.open, f.err
}

func (f *fakeDialogs) PickSavePath(ctx context.Context, defaultExt string) (string, error) {
	f.asked++
	f.saveExt = defaultExt
	return f.save, f.err
}

type fakeFiles struct {
	data     map[string][]byte
	writeErr error
}

func (f *fakeFiles) ReadText(path string) ([]byte, error) {
	data, ok := f.data[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return data, nil
}

func (f *fakeFiles) WriteText(path, text string) error {
	if f.writeErr != nil {
		return &fs.PathError{Op: "open", Path: path, Err: f.writeErr}
	}
	f.data[path] = []byte(text)
	return nil
}

type fakeShell struct {
	urls     []string
	revealed []string
	err      error
}

func (f *fakeShell) OpenURL(url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

func (f *fakeShell) Reveal(path string) error {
	f.revealed = append(f.revealed, path)
	return f.err
}

type fakeWatcher struct {
	watched map[string]bool
}

func (f *fakeWatcher) Add(path string) error {
	f.watched[path] = true
	return nil
}

func (f *fakeWatcher) Remove(path string) {
	delete(f.watched, path)
}

type harness struct {
	d         *Dispatcher
	dialogs   *fakeDialogs
	files     *fakeFiles
	shell     *fakeShell
	clipboard *platform.MemoryClipboard
	watcher   *fakeWatcher
	store     *settings.Store
	themes    *theme.Manager
	status    *statusbar.StatusBar
	events    *event.Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		dialogs:   &fakeDialogs{},
		files:     &fakeFiles{data: make(map[string][]byte)},
		shell:     &fakeShell{},
		clipboard: &platform.MemoryClipboard{},
		watcher:   &fakeWatcher{watched: make(map[string]bool)},
		store:     settings.NewStore(filepath.Join(dir, "settings.json")),
		themes:    theme.NewManager(filepath.Join(dir, "themes")),
		status:    statusbar.New(statusbar.DefaultConfig()),
		events:    event.NewManager(),
	}
	h.d = NewDispatcher(session.New(session.Sample()), Deps{
		Dialogs:    h.dialogs,
		Files:      h.files,
		Shell:      h.shell,
		Clipboard:  h.clipboard,
		Watcher:    h.watcher,
		Themes:     h.themes,
		Settings:   h.store,
		Events:     h.events,
		Status:     h.status,
		DefaultExt: "go",
	})
	return h
}

// run applies msg and every result produced by the tasks it starts.
func (h *harness) run(msg Msg) {
	for msg != nil {
		cmd := h.d.Update(msg)
		if cmd == nil {
			return
		}
		msg = cmd(context.Background())
	}
}

func (h *harness) open(path, text string) *session.Buffer {
	h.files.data[path] = []byte(text)
	h.dialogs.open = path
	h.run(OpenFile{})
	return h.d.Session().Current()
}

func (h *harness) statusLeft() string {
	left, _, _ := h.status.Text()
	return left
}

func TestOpenFileAppendsNormalizedBuffer(t *testing.T) {
	h := newHarness(t)
	b := h.open("/w/a.go", "a\tb\r\nc\rd")

	s := h.d.Session()
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.CurrentIndex())
	assert.Equal(t, "/w/a.go", b.Path)
	assert.Equal(t, "a    b\nc\nd", b.Text())
	assert.False(t, b.Modified)
	assert.NoError(t, s.Err())
	assert.True(t, h.watcher.watched["/w/a.go"])
}

func TestOpenCancelledIsRecordedQuietly(t *testing.T) {
	h := newHarness(t)
	h.run(OpenFile{})

	s := h.d.Session()
	assert.Equal(t, 1, s.Len())
	assert.ErrorIs(t, s.Err(), session.ErrDialogClosed)
	assert.Equal(t, "", statusError(s.Err()))
}

func TestOpenFailuresRecordIOError(t *testing.T) {
	tests := []struct {
		name string
		data map[string][]byte
		kind session.IOKind
		text string
	}{
		{name: "missing", kind: session.IONotFound, text: "I/O error: not found"},
		{name: "invalid utf-8", data: map[string][]byte{"/w/f": {0xff, 0xfe, 'a'}}, kind: session.IOInvalidData, text: "I/O error: invalid data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			for path, data := range tt.data {
				h.files.data[path] = data
			}
			h.dialogs.open = "/w/f"
			h.run(OpenFile{})

			s := h.d.Session()
			assert.Equal(t, 1, s.Len(), "no buffer is added on failure")
			var ioErr *session.IOError
			require.ErrorAs(t, s.Err(), &ioErr)
			assert.Equal(t, tt.kind, ioErr.Kind)
			assert.Equal(t, tt.text, statusError(s.Err()))
		})
	}
}

func TestDialogErrorIsAnIOError(t *testing.T) {
	h := newHarness(t)
	h.dialogs.err = errors.New("no display")
	h.run(OpenFile{})

	var ioErr *session.IOError
	require.ErrorAs(t, h.d.Session().Err(), &ioErr)
	assert.Equal(t, session.IOOther, ioErr.Kind)
}

func TestEditClearsError(t *testing.T) {
	h := newHarness(t)
	h.dialogs.open = "/w/missing"
	h.run(OpenFile{})
	require.Error(t, h.d.Session().Err())

	h.run(Edit{Action: content.Move(content.MotionDown)})
	assert.NoError(t, h.d.Session().Err())
}

func TestSuccessDoesNotClearError(t *testing.T) {
	h := newHarness(t)
	h.dialogs.open = "/w/missing"
	h.run(OpenFile{})

	h.open("/w/a.go", "a")
	assert.Error(t, h.d.Session().Err())
}

func TestSaveWithoutPathAsksForTarget(t *testing.T) {
	h := newHarness(t)
	h.run(NewFile{})
	h.run(Edit{Action: content.Insert('x')})
	h.dialogs.save = "/w/new.go"

	h.run(SaveFile{})

	b := h.d.Session().Current()
	assert.Equal(t, "x", string(h.files.data["/w/new.go"]))
	assert.Equal(t, "/w/new.go", b.Path)
	assert.False(t, b.Modified)
	assert.Equal(t, "go", h.dialogs.saveExt)
	assert.True(t, h.watcher.watched["/w/new.go"])
}

func TestSaveCancelledLeavesBufferUnchanged(t *testing.T) {
	h := newHarness(t)
	h.run(NewFile{})
	h.run(Edit{Action: content.Insert('x')})

	h.run(SaveFile{})

	b := h.d.Session().Current()
	assert.Empty(t, b.Path)
	assert.True(t, b.Modified)
	assert.Empty(t, h.files.data)
	assert.ErrorIs(t, h.d.Session().Err(), session.ErrDialogClosed)
}

func TestSaveExistingPathSkipsDialog(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "a")
	h.dialogs.asked = 0
	h.run(Edit{Action: content.Move(content.MotionEnd)})
	h.run(Edit{Action: content.Insert('b')})

	h.run(SaveFile{})

	assert.Zero(t, h.dialogs.asked)
	assert.Equal(t, "ab", string(h.files.data["/w/a.go"]))
	assert.False(t, h.d.Session().Current().Modified)
}

func TestSaveAsMovesWatch(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "a")
	h.dialogs.save = "/w/b.go"

	h.run(SaveFile{SaveAs: true})

	assert.Equal(t, "/w/b.go", h.d.Session().Current().Path)
	assert.False(t, h.watcher.watched["/w/a.go"])
	assert.True(t, h.watcher.watched["/w/b.go"])
}

func TestSaveResultFollowsItsBuffer(t *testing.T) {
	h := newHarness(t)
	saved := h.open("/w/a.go", "a")
	h.run(Edit{Action: content.Insert('z')})

	cmd := h.d.Update(SaveFile{})
	require.NotNil(t, cmd)
	h.run(NewFile{})
	h.run(Edit{Action: content.Insert('q')})

	h.run(cmd(context.Background()))

	s := h.d.Session()
	assert.False(t, saved.Modified)
	assert.Equal(t, 2, s.CurrentIndex())
	assert.Empty(t, s.Current().Path)
	assert.True(t, s.Current().Modified)
}

func TestSaveResultForClosedBufferIsDropped(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "a")
	cmd := h.d.Update(SaveFile{})
	require.NotNil(t, cmd)
	h.run(CloseFile{})

	h.run(cmd(context.Background()))

	s := h.d.Session()
	assert.Equal(t, 1, s.Len())
	assert.Empty(t, s.Current().Path)
	assert.True(t, s.Current().Modified, "the sample buffer is untouched")
}

func TestWriteFailureRecordsIOError(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "a")
	h.run(Edit{Action: content.Insert('b')})
	h.files.writeErr = fs.ErrPermission

	h.run(SaveFile{})

	var ioErr *session.IOError
	require.ErrorAs(t, h.d.Session().Err(), &ioErr)
	assert.Equal(t, session.IOPermissionDenied, ioErr.Kind)
	assert.True(t, h.d.Session().Current().Modified)
}

func TestCloseIndexScenario(t *testing.T) {
	h := newHarness(t)
	h.run(NewFile{})
	fresh := h.d.Session().Current()

	h.run(CloseIndex{Index: 0})

	s := h.d.Session()
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, s.CurrentIndex())
	assert.Same(t, fresh, s.Current())
}

func TestClosingUnwatchesAndReportsBuffer(t *testing.T) {
	h := newHarness(t)
	b := h.open("/w/a.go", "a")
	var closed []event.BufferData
	h.events.Subscribe(event.TypeBufferClosed, func(e event.Event) bool {
		closed = append(closed, e.Data.(event.BufferData))
		return false
	})

	h.run(CloseFile{})

	require.Len(t, closed, 1)
	assert.Equal(t, b.ID.String(), closed[0].BufferID)
	assert.False(t, h.watcher.watched["/w/a.go"])
}

func TestCloseKeepsWatchWhileAnotherBufferHasThePath(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "a")
	h.open("/w/a.go", "a")

	h.run(CloseFile{})

	assert.True(t, h.watcher.watched["/w/a.go"])
}

func TestCloseOnlyBufferReportsReset(t *testing.T) {
	h := newHarness(t)
	before := h.d.Session().Current().ID
	var closed int
	h.events.Subscribe(event.TypeBufferClosed, func(e event.Event) bool {
		closed++
		return false
	})

	h.run(CloseFile{})

	assert.Equal(t, 1, h.d.Session().Len())
	assert.NotEqual(t, before, h.d.Session().Current().ID)
	assert.Equal(t, 1, closed)
}

func TestSelectAndCycleTabs(t *testing.T) {
	h := newHarness(t)
	h.run(NewFile{})
	h.run(NewFile{})
	s := h.d.Session()

	h.run(SelectFile{Index: 0})
	assert.Equal(t, 0, s.CurrentIndex())

	h.run(SelectFile{Index: 7})
	assert.Equal(t, 0, s.CurrentIndex(), "out of range selections are ignored")

	h.run(CycleTab{Delta: -1})
	assert.Equal(t, 2, s.CurrentIndex())
	h.run(CycleTab{Delta: 1})
	assert.Equal(t, 0, s.CurrentIndex())
}

func indexOf[T comparable](items []T, want T) int {
	for i, item := range items {
		if item == want {
			return i
		}
	}
	return -1
}

func TestSettingsModalAppliesAndSavesEverySelection(t *testing.T) {
	h := newHarness(t)
	h.run(ShowModal{Kind: ModalSettings})

	uiThemes := theme.AllUIThemes()
	start := indexOf(uiThemes, theme.DefaultUITheme)
	require.GreaterOrEqual(t, start, 0)
	assert.Equal(t, start, h.d.Modal().Cursor[0])

	h.run(ModalMove{Delta: 1})
	want := uiThemes[start+1]
	assert.Equal(t, want, h.themes.UITheme())
	st, ok := h.store.Load()
	require.True(t, ok)
	assert.Equal(t, theme.ThemeToKey(want), st.Theme)
	assert.Equal(t, theme.SyntaxThemeToKey(theme.DefaultSyntaxTheme), st.SyntaxTheme)

	h.run(ModalFocusNext{})
	h.run(ModalMove{Delta: 100})
	syntaxThemes := theme.AllSyntaxThemes()
	last := syntaxThemes[len(syntaxThemes)-1]
	assert.Equal(t, last, h.themes.SyntaxTheme(), "the cursor clamps at the end of the list")
	st, _ = h.store.Load()
	assert.Equal(t, theme.SyntaxThemeToKey(last), st.SyntaxTheme)

	h.run(ModalPick{List: 0, Index: 0})
	assert.Equal(t, 0, h.d.Modal().Focus)
	assert.Equal(t, uiThemes[0], h.themes.UITheme())

	h.run(HideModal{})
	assert.Equal(t, ModalNone, h.d.Modal().Kind)
}

func TestThemeChangeDispatchesEvent(t *testing.T) {
	h := newHarness(t)
	var got event.ThemeChangedData
	h.events.Subscribe(event.TypeThemeChanged, func(e event.Event) bool {
		got = e.Data.(event.ThemeChangedData)
		return true
	})

	h.run(SetSyntaxTheme{Theme: theme.AllSyntaxThemes()[0]})

	assert.Equal(t, theme.SyntaxThemeToKey(theme.AllSyntaxThemes()[0]), got.SyntaxThemeKey)
	assert.Equal(t, theme.ThemeToKey(theme.DefaultUITheme), got.ThemeKey)
}

func TestModalMoveIgnoredOutsideSettings(t *testing.T) {
	h := newHarness(t)
	before := h.themes.UITheme()
	h.run(ModalMove{Delta: 1})
	h.run(ShowModal{Kind: ModalAbout})
	h.run(ModalMove{Delta: 1})
	assert.Equal(t, before, h.themes.UITheme())
}

func TestShowInExplorer(t *testing.T) {
	h := newHarness(t)
	h.run(ShowInExplorer{})
	assert.Empty(t, h.shell.revealed)
	assert.Contains(t, h.statusLeft(), "Save the file")

	h.open("/w/a.go", "a")
	h.run(ShowInExplorer{})
	assert.Equal(t, []string{"/w/a.go"}, h.shell.revealed)
}

func TestShellFailuresAreNotSessionErrors(t *testing.T) {
	h := newHarness(t)
	h.shell.err = errors.New("no browser")

	h.run(OpenURL{URL: "https://example.com"})

	assert.Equal(t, []string{"https://example.com"}, h.shell.urls)
	assert.NoError(t, h.d.Session().Err())
}

func TestCopyCutPaste(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "hello")
	h.run(Edit{Action: content.SelectAll()})

	h.run(Copy{})
	clip, _ := h.clipboard.Read()
	assert.Equal(t, "hello", clip)
	assert.False(t, h.d.Session().Current().Modified)

	h.run(Cut{})
	assert.Equal(t, "", h.d.Session().Current().Text())
	assert.True(t, h.d.Session().Current().Modified)

	require.NoError(t, h.clipboard.Write("a\r\n\tb"))
	h.run(Paste{})
	assert.Equal(t, "a\n    b", h.d.Session().Current().Text())
}

func TestCopyWithoutSelectionDoesNothing(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.clipboard.Write("keep"))
	assert.Nil(t, h.d.Update(Copy{}))
	clip, _ := h.clipboard.Read()
	assert.Equal(t, "keep", clip)
}

func TestFileChangedComparesDiskText(t *testing.T) {
	h := newHarness(t)
	h.open("/w/a.go", "one")
	var reports []event.FileChangedData
	h.events.Subscribe(event.TypeFileChanged, func(e event.Event) bool {
		reports = append(reports, e.Data.(event.FileChangedData))
		return false
	})

	h.run(FileChanged{Path: "/w/a.go"})
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Differs)

	h.files.data["/w/a.go"] = []byte("two")
	h.run(FileChanged{Path: "/w/a.go"})
	require.Len(t, reports, 2)
	assert.True(t, reports[1].Differs)
	assert.Equal(t, "a.go changed on disk", h.statusLeft())
	assert.Equal(t, "one", h.d.Session().Current().Text(), "changes are reported, never reloaded")

	delete(h.files.data, "/w/a.go")
	h.run(FileChanged{Path: "/w/a.go"})
	assert.Contains(t, h.statusLeft(), "no longer readable")
}

func TestFileChangedForClosedPathIsIgnored(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.d.Update(FileChanged{Path: "/w/other.go"}))
}

func TestQuit(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.d.Quitting())
	h.run(Quit{})
	assert.True(t, h.d.Quitting())
}

func TestTasksReportBufferID(t *testing.T) {
	h := newHarness(t)
	h.dialogs.save = "/w/x.go"
	req := h.d.Session().PrepareSave(true)

	msg := saveTask(h.dialogs, h.files, req, "go")(context.Background())

	saved, ok := msg.(FileSaved)
	require.True(t, ok, fmt.Sprintf("unexpected %T", msg))
	assert.Equal(t, req.BufferID, saved.BufferID)
	assert.Equal(t, "/w/x.go", saved.Path)
	assert.NoError(t, saved.Err)
}
