package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	FileHeader     lipgloss.Style
	FileHeaderDim  lipgloss.Style
	Annotation     lipgloss.Style
	Gutter         lipgloss.Style
	GutterSelected lipgloss.Style
	GutterCursor   lipgloss.Style
	Warning        lipgloss.Style
	Code           lipgloss.Style
	SelectionBg    lipgloss.Style
	Status         lipgloss.Style
	StatusLink     lipgloss.Style
	StatusError    lipgloss.Style
	StatusSuccess  lipgloss.Style
	Prompt         lipgloss.Style
	Help           lipgloss.Style
	Dim            lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		FileHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		FileHeaderDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Annotation:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true),
		Gutter:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		GutterSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("220")).Bold(true),
		GutterCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Code:           lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelectionBg:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		StatusLink:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Underline(true), // cyan
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),                // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),                 // green
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),                // yellow
		Help:          lipgloss.NewStyle().Faint(true),
		Dim:           lipgloss.NewStyle().Faint(true),
	}
}
