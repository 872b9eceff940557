// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/bethropolis/multitab/internal/config"
	"github.com/bethropolis/multitab/internal/content"
	"github.com/bethropolis/multitab/internal/event"
	"github.com/bethropolis/multitab/internal/highlighter"
	"github.com/bethropolis/multitab/internal/input"
	"github.com/bethropolis/multitab/internal/logger"
	"github.com/bethropolis/multitab/internal/platform"
	"github.com/bethropolis/multitab/internal/session"
	"github.com/bethropolis/multitab/internal/settings"
	"github.com/bethropolis/multitab/internal/statusbar"
	"github.com/bethropolis/multitab/internal/theme"
	"github.com/bethropolis/multitab/internal/tui"
	"github.com/bethropolis/multitab/internal/watcher"
)

// wheelLines is how far one mouse wheel notch moves the cursor.
const wheelLines = 3

// Options configure an App.
type Options struct {
	Config *config.Config
	Paths  config.Paths
	Screen tcell.Screen // nil uses the terminal
}

// App owns the screen and runs the single loop that applies every Msg.
type App struct {
	tuiManager  *tui.TUI
	renderer    *tui.Renderer
	input       *input.InputProcessor
	dispatcher  *Dispatcher
	themes      *theme.Manager
	statusBar   *statusbar.StatusBar
	highlighter *highlighter.Highlighter
	watcher     *watcher.Watcher // nil when watching is disabled

	// msgs is the intent queue: task results and watcher notifications are
	// delivered here and applied by Run only.
	msgs chan Msg
}

// NewApp creates and wires the application.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	store := settings.NewStore(opts.Paths.Settings)
	store.EnsureDir()
	themes := theme.NewManager(opts.Paths.Themes)
	if st, ok := store.Load(); ok {
		themes.SetTheme(theme.KeyToTheme(st.Theme))
		themes.SetSyntaxTheme(theme.KeyToSyntaxTheme(st.SyntaxTheme))
	} else {
		logger.Infof("App: no settings at '%s', using default themes", store.Path())
	}

	statusCfg := statusbar.DefaultConfig()
	statusCfg.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(statusCfg)
	eventManager := event.NewManager()
	hl := highlighter.New()

	a := &App{
		tuiManager:  tuiManager,
		renderer:    tui.NewRenderer(tuiManager, hl, cfg.Editor.ScrollOff, cfg.Editor.DefaultExt),
		input:       input.NewInputProcessor(),
		themes:      themes,
		statusBar:   statusBar,
		highlighter: hl,
		msgs:        make(chan Msg, 16),
	}

	deps := Deps{
		Dialogs:    platform.NativeDialogs{},
		Files:      platform.OSFiles{},
		Shell:      platform.NewDesktopShell(),
		Clipboard:  platform.NewClipboard(cfg.Editor.SystemClipboard),
		Themes:     themes,
		Settings:   store,
		Events:     eventManager,
		Status:     statusBar,
		DefaultExt: cfg.Editor.DefaultExt,
	}
	if cfg.Editor.WatchFiles {
		w, err := watcher.New(config.WatchDebounce)
		if err != nil {
			logger.Warnf("App: file watching disabled: %v", err)
		} else {
			a.watcher = w
			deps.Watcher = w
		}
	}

	a.dispatcher = NewDispatcher(session.New(session.Sample()), deps)

	eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	eventManager.Subscribe(event.TypeBufferClosed, a.handleBufferClosed)
	a.restyle()

	return a, nil
}

// Dispatcher exposes the dispatcher driving the session.
func (a *App) Dispatcher() *Dispatcher {
	return a.dispatcher
}

// Run draws and applies events and task results until Quit or ctx ends.
// Pending tasks are cancelled on return.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.tuiManager.Close()

	if a.watcher != nil {
		defer a.watcher.Close()
		go a.watcher.Run(ctx, func(path string) { a.send(ctx, FileChanged{Path: path}) })
	}

	screenEvents := make(chan tcell.Event)
	go a.pollEvents(ctx, screenEvents)

	// Temporary status messages expire without input.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	a.statusBar.SetTemporaryMessage("Ctrl+O Open | Ctrl+S Save | F1 About | Ctrl+Q Quit")
	a.draw()

	for !a.dispatcher.Quitting() {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-screenEvents:
			a.handleEvent(ctx, ev)
		case msg := <-a.msgs:
			a.apply(ctx, msg)
		case <-ticker.C:
		}
		a.draw()
	}

	for _, b := range a.dispatcher.Session().Buffers() {
		if b.Modified && b.Path != "" {
			logger.Warnf("App: exited with unsaved changes in '%s'", b.Path)
		}
	}
	logger.Infof("App: exiting")
	return nil
}

// apply runs msg through the dispatcher and starts the task it returns.
func (a *App) apply(ctx context.Context, msg Msg) {
	cmd := a.dispatcher.Update(msg)
	if cmd == nil {
		return
	}
	go func() {
		if result := cmd(ctx); result != nil {
			a.send(ctx, result)
		}
	}()
}

func (a *App) send(ctx context.Context, msg Msg) {
	select {
	case a.msgs <- msg:
	case <-ctx.Done():
		logger.DebugTagf("app", "Dropped %T after shutdown", msg)
	}
}

func (a *App) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
	case *tcell.EventKey:
		actionEvent := a.input.ProcessEvent(ev)
		if msg := KeyMsg(actionEvent, a.dispatcher.Modal(), a.renderer.EditorHeight()); msg != nil {
			a.apply(ctx, msg)
		}
	case *tcell.EventMouse:
		if msg := a.mouseMsg(ev); msg != nil {
			a.apply(ctx, msg)
		}
	}
}

// mouseMsg turns a click or wheel notch into an intent using the last frame.
func (a *App) mouseMsg(ev *tcell.EventMouse) Msg {
	x, y := ev.Position()
	buttons := ev.Buttons()
	modal := a.dispatcher.Modal()

	switch {
	case buttons&(tcell.WheelUp|tcell.WheelDown) != 0:
		delta := wheelLines
		motion := content.MotionPageDown
		if buttons&tcell.WheelUp != 0 {
			delta, motion = -wheelLines, content.MotionPageUp
		}
		if modal.Kind == ModalSettings {
			return ModalMove{Delta: delta}
		}
		if modal.Kind != ModalNone {
			return nil
		}
		return Edit{Action: content.Action{Kind: content.ActionMove, Motion: motion, Count: wheelLines}}

	case buttons&tcell.Button1 != 0:
		hit := a.renderer.HitTest(x, y)
		switch hit.Kind {
		case tui.HitMenu:
			return KeyMsg(input.ActionEvent{Action: hit.Action}, modal, a.renderer.EditorHeight())
		case tui.HitTab:
			return SelectFile{Index: hit.Index}
		case tui.HitTabClose:
			return CloseIndex{Index: hit.Index}
		case tui.HitEditor:
			return Edit{Action: content.Click(hit.Pos)}
		case tui.HitModalItem:
			return ModalPick{List: hit.List, Index: hit.Index}
		}

	case buttons&tcell.Button3 != 0: // middle button
		if hit := a.renderer.HitTest(x, y); hit.Kind == tui.HitTab || hit.Kind == tui.HitTabClose {
			return CloseIndex{Index: hit.Index}
		}
	}
	return nil
}

func (a *App) draw() {
	s := a.dispatcher.Session()
	cur := s.Current()
	a.statusBar.SetFileInfo(cur.Path)
	a.statusBar.SetCursorInfo(cur.Content.Cursor())
	a.statusBar.SetError(statusError(s.Err()))

	m := a.dispatcher.Modal()
	a.renderer.Draw(tui.Frame{
		Session: s,
		Theme:   a.themes.Current(),
		Syntax:  a.themes.SyntaxTheme(),
		Status:  a.statusBar,
		Overlay: overlay(m.Kind),
		Focus:   m.Focus,
		Cursor:  m.Cursor,
	})
}

// statusError is the status line text for err; only I/O failures are shown.
func statusError(err error) string {
	var ioErr *session.IOError
	if errors.As(err, &ioErr) {
		return ioErr.Error()
	}
	return ""
}

func overlay(kind ModalKind) tui.Overlay {
	switch kind {
	case ModalAbout:
		return tui.OverlayAbout
	case ModalSettings:
		return tui.OverlaySettings
	default:
		return tui.OverlayNone
	}
}

func (a *App) restyle() {
	t := a.themes.Current()
	a.statusBar.SetStyles(t.GetStyle("StatusBar"), t.GetStyle("StatusBar.error"), t.GetStyle("StatusBar.info"))
}

func (a *App) handleThemeChanged(e event.Event) bool {
	a.restyle()
	return false
}

func (a *App) handleBufferClosed(e event.Event) bool {
	data, ok := e.Data.(event.BufferData)
	if !ok {
		return false
	}
	a.highlighter.Forget(data.BufferID)
	if id, err := uuid.Parse(data.BufferID); err == nil {
		a.renderer.Forget(id)
	}
	return false
}
