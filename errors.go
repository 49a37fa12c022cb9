package opencmd

import "fmt"

// NotFoundError reports that a required executable could not be located on
// the search path. On Unix-y systems this is most likely xdg-open; installing
// the xdg-utils package for the system fixes it. Windows and macOS use
// built-in commands.
type NotFoundError struct {
	// Exe is the program that could not be found.
	Exe string
	// Err is the underlying lookup error.
	Err error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("executable %s not found: %v", e.Exe, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FileToURIError reports that a file path could not be converted to a URI.
// This surfaces on Windows, where the default handler is invoked with a URI
// to avoid confusion between paths and CLI options (which start with / on
// Windows).
type FileToURIError struct {
	// Path is the path that could not be converted.
	Path string
}

func (e *FileToURIError) Error() string {
	return fmt.Sprintf("could not convert file path to URI: %q", e.Path)
}
