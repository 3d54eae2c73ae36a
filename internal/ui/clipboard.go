package ui

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// copyToClipboard tries the system clipboard first and falls back to an
// OSC 52 sequence, which most terminals forward to the local clipboard
func copyToClipboard(text string) error {
	err := clipboard.WriteAll(text)
	if err == nil || !clipboard.Unsupported {
		return err
	}
	_, err = osc52.New(text).WriteTo(os.Stderr)
	return err
}

// copyLink returns a command copying link in the background
func copyLink(link string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{link: link, err: copyToClipboard(link)}
	}
}
