package client

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// NewSystemClipboard returns the clipboard of the current desktop session.
// On Linux it needs xclip, xsel or wl-clipboard on PATH.
func NewSystemClipboard() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return systemClipboard{}, nil
}

func (systemClipboard) Read() (string, error) { return clipboard.ReadAll() }

func (systemClipboard) Write(text string) error { return clipboard.WriteAll(text) }
