package platform

import (
	"context"
	"errors"
	"os"

	"github.com/sqweek/dialog"
)

// NativeDialogs shows the operating system's file pickers.
type NativeDialogs struct{}

func (NativeDialogs) PickFile(ctx context.Context) (string, error) {
	return pick(ctx, func() (string, error) {
		return startDir(dialog.File().Title("Open file")).Load()
	})
}

func (NativeDialogs) PickSavePath(ctx context.Context, defaultExt string) (string, error) {
	return pick(ctx, func() (string, error) {
		b := startDir(dialog.File().Title("Save file"))
		if defaultExt != "" {
			b = b.Filter("Default", defaultExt).Filter("All files", "*")
		}
		return b.Save()
	})
}

func startDir(b *dialog.FileBuilder) *dialog.FileBuilder {
	if cwd, err := os.Getwd(); err == nil {
		b = b.SetStartDir(cwd)
	}
	return b
}

// pick runs a blocking dialog. If ctx ends first the result is abandoned
// and reported as a cancellation.
func pick(ctx context.Context, show func() (string, error)) (string, error) {
	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		path, err := show()
		done <- result{path, err}
	}()

	select {
	case <-ctx.Done():
		return "", nil
	case r := <-done:
		if errors.Is(r.err, dialog.ErrCancelled) {
			return "", nil
		}
		return r.path, r.err
	}
}
