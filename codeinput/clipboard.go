package codeinput

import "github.com/atotto/clipboard"

// Clipboard provides paste support for the paste key binding.
//
// Read errors must not crash the UI; they are ignored.
type Clipboard interface {
	ReadText() (string, error)
}

// SystemClipboard reads the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", nil
	}
	return clipboard.ReadAll()
}
