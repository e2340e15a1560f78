// Bubbletea program wrapper for the form
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the form until the user quits.
func Run(gen GenerateFunc, slider SliderOptions) error {
	p := tea.NewProgram(NewModel(gen, slider), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
