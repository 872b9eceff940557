package app

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/multitab/internal/platform"
	"github.com/bethropolis/multitab/internal/session"
)

// readText reads path as UTF-8 text and normalises it. Failures are *session.IOError.
func readText(files platform.Files, path string) (string, error) {
	data, err := files.ReadText(path)
	if err != nil {
		return "", session.NewIOError(err)
	}
	if !utf8.Valid(data) {
		return "", session.NewIOError(fmt.Errorf("read %s: %w", path, session.ErrInvalidUTF8))
	}
	return session.NormalizeText(string(data)), nil
}

// openTask asks for a file and reads it.
func openTask(dialogs platform.Dialogs, files platform.Files) Cmd {
	return func(ctx context.Context) Msg {
		path, err := dialogs.PickFile(ctx)
		if err != nil {
			return FileOpened{Err: session.NewIOError(err)}
		}
		if path == "" {
			return FileOpened{Err: session.ErrDialogClosed}
		}
		text, err := readText(files, path)
		if err != nil {
			return FileOpened{Path: path, Err: err}
		}
		return FileOpened{Path: path, Text: text}
	}
}

// saveTask writes req, asking for a target first when req has no path.
func saveTask(dialogs platform.Dialogs, files platform.Files, req session.SaveRequest, defaultExt string) Cmd {
	return func(ctx context.Context) Msg {
		path := req.Path
		if path == "" {
			picked, err := dialogs.PickSavePath(ctx, defaultExt)
			if err != nil {
				return FileSaved{BufferID: req.BufferID, Err: session.NewIOError(err)}
			}
			if picked == "" {
				return FileSaved{BufferID: req.BufferID, Err: session.ErrDialogClosed}
			}
			path = picked
		}
		if err := files.WriteText(path, req.Text); err != nil {
			return FileSaved{BufferID: req.BufferID, Path: path, Err: session.NewIOError(err)}
		}
		return FileSaved{BufferID: req.BufferID, Path: path}
	}
}

// readTask re-reads a watched file to compare it with its buffer.
func readTask(files platform.Files, path string) Cmd {
	return func(ctx context.Context) Msg {
		text, err := readText(files, path)
		return DiskChecked{Path: path, Text: text, Err: err}
	}
}

func pasteTask(clipboard platform.Clipboard) Cmd {
	return func(ctx context.Context) Msg {
		text, err := clipboard.Read()
		return PasteText{Text: text, Err: err}
	}
}

// shellTask runs a best-effort call whose failure is only logged.
func shellTask(what string, call func() error) Cmd {
	return func(ctx context.Context) Msg {
		return ShellDone{What: what, Err: call()}
	}
}
