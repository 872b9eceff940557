package session

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrDialogClosed means the user dismissed a file picker. It is not shown to the user.
var ErrDialogClosed = errors.New("dialog closed")

// ErrInvalidUTF8 is wrapped by reads of files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// IOKind is a coarse category of filesystem failure.
type IOKind int

const (
	IOOther IOKind = iota
	IONotFound
	IOPermissionDenied
	IOAlreadyExists
	IOIsDirectory
	IOInvalidData
)

func (k IOKind) String() string {
	switch k {
	case IONotFound:
		return "not found"
	case IOPermissionDenied:
		return "permission denied"
	case IOAlreadyExists:
		return "already exists"
	case IOIsDirectory:
		return "is a directory"
	case IOInvalidData:
		return "invalid data"
	default:
		return "other"
	}
}

// IOError is a failed read or write.
type IOError struct {
	Kind IOKind
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("I/O error: %s", e.Kind)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError classifies err. A nil err yields nil.
func NewIOError(err error) error {
	if err == nil {
		return nil
	}
	var ioErr *IOError
	if errors.As(err, &ioErr) {
		return ioErr
	}
	return &IOError{Kind: classify(err), Err: err}
}

func classify(err error) IOKind {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return IONotFound
	case errors.Is(err, fs.ErrPermission):
		return IOPermissionDenied
	case errors.Is(err, fs.ErrExist):
		return IOAlreadyExists
	case errors.Is(err, syscall.EISDIR):
		return IOIsDirectory
	case errors.Is(err, ErrInvalidUTF8):
		return IOInvalidData
	default:
		return IOOther
	}
}
