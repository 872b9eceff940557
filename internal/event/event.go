// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeBufferOpened // A buffer was opened from disk
	TypeBufferSaved  // A buffer was written to disk
	TypeBufferClosed // A buffer left the session (removed or reset in place)
	TypeThemeChanged // The UI or syntax theme selection changed
	TypeFileChanged  // An open file changed on disk
)

func (t Type) String() string {
	switch t {
	case TypeBufferOpened:
		return "BufferOpened"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeBufferClosed:
		return "BufferClosed"
	case TypeThemeChanged:
		return "ThemeChanged"
	case TypeFileChanged:
		return "FileChanged"
	default:
		return "Unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// BufferData identifies the buffer an event concerns.
type BufferData struct {
	BufferID string
	FilePath string // empty for path-less buffers
}

// ThemeChangedData carries the persisted keys of the new selection.
type ThemeChangedData struct {
	ThemeKey       string
	SyntaxThemeKey string
}

// FileChangedData names the file and whether its text now differs from the buffer.
type FileChangedData struct {
	FilePath string
	Differs  bool
}
