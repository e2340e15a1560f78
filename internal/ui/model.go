// Bubbletea model for the interactive noise generator
package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// GenerateFunc runs the transform for input at snrDB and returns the path it
// wrote.
type GenerateFunc func(input string, snrDB float64) (string, error)

// SliderOptions bounds the SNR slider, in dB.
type SliderOptions struct {
	Min     float64
	Max     float64
	Step    float64
	Initial float64
}

// DefaultSlider is 0 to 30 dB in half-dB steps, starting at 5 dB.
var DefaultSlider = SliderOptions{Min: 0, Max: 30, Step: 0.5, Initial: 5}

type field int

const (
	fieldPath field = iota
	fieldSlider
	fieldGenerate
	numFields
)

// GeneratedMsg reports the end of a Generate run.
type GeneratedMsg struct {
	Output string
	Err    error
}

// Model represents the form state
type Model struct {
	path   string
	snr    float64
	slider SliderOptions
	focus  field

	busy    bool
	notice  string
	failed  bool
	lastOut string

	generate GenerateFunc

	width int
}

// NewModel creates a form that calls gen when the user presses enter.
func NewModel(gen GenerateFunc, slider SliderOptions) Model {
	if slider.Step <= 0 {
		slider.Step = DefaultSlider.Step
	}
	if slider.Max <= slider.Min {
		slider.Min, slider.Max = DefaultSlider.Min, DefaultSlider.Max
	}

	m := Model{slider: slider, generate: gen}
	m.snr = m.clamp(slider.Initial)
	return m
}

// Path returns the current input path.
func (m Model) Path() string { return m.path }

// SNR returns the slider value in dB.
func (m Model) SNR() float64 { return m.snr }

// Notice returns the last message shown to the user and whether it is an
// error.
func (m Model) Notice() (string, bool) { return m.notice, m.failed }

// Busy reports whether a Generate run is in flight.
func (m Model) Busy() bool { return m.busy }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case GeneratedMsg:
		m.busy = false
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			m.failed = true
		} else {
			m.notice = fmt.Sprintf("Noisy audio saved as %s", msg.Output)
			m.failed = false
			m.lastOut = msg.Output
		}
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % numFields
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus + numFields - 1) % numFields
		return m, nil
	case "enter":
		return m.submit()
	}

	if m.focus == fieldPath {
		switch msg.Type {
		case tea.KeyRunes:
			m.path += string(msg.Runes)
		case tea.KeySpace:
			m.path += " "
		case tea.KeyBackspace:
			if r := []rune(m.path); len(r) > 0 {
				m.path = string(r[:len(r)-1])
			}
		case tea.KeyCtrlU:
			m.path = ""
		}
		return m, nil
	}

	// q quits from any field that does not take text
	if msg.String() == "q" {
		return m, tea.Quit
	}
	if m.focus != fieldSlider {
		return m, nil
	}

	switch msg.String() {
	case "left", "h", "-":
		m.snr = m.clamp(m.snr - m.slider.Step)
	case "right", "l", "+":
		m.snr = m.clamp(m.snr + m.slider.Step)
	case "home":
		m.snr = m.slider.Min
	case "end":
		m.snr = m.slider.Max
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	path := strings.TrimSpace(m.path)
	if path == "" {
		m.notice = "Please select an input file."
		m.failed = true
		return m, nil
	}
	if m.generate == nil {
		m.notice = "no generator configured"
		m.failed = true
		return m, nil
	}

	m.busy = true
	m.notice = "Generating..."
	m.failed = false

	gen, snr := m.generate, m.snr
	return m, func() tea.Msg {
		out, err := gen(path, snr)
		return GeneratedMsg{Output: out, Err: err}
	}
}

// clamp keeps v on the slider grid and inside its bounds.
func (m Model) clamp(v float64) float64 {
	v = m.slider.Min + math.Round((v-m.slider.Min)/m.slider.Step)*m.slider.Step
	return math.Min(m.slider.Max, math.Max(m.slider.Min, v))
}

// View renders the form
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("┌─ Add Noise ──────────────────────────────────────────┐\n")
	b.WriteString(m.renderPath())
	b.WriteString(m.renderSlider())
	b.WriteString(m.renderButton())
	b.WriteString("├──────────────────────────────────────────────────────┤\n")
	b.WriteString(m.renderNotice())
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) cursor(f field) string {
	if m.focus == f {
		return ">"
	}
	return " "
}

func (m Model) renderPath() string {
	path := m.path
	if m.focus == fieldPath {
		path += "_"
	}
	return fmt.Sprintf("│%s Input: %-44s │\n", m.cursor(fieldPath), truncateLeft(path, 44))
}

func (m Model) renderSlider() string {
	pos := int(math.Round((m.snr - m.slider.Min) / (m.slider.Max - m.slider.Min) * 30))
	return fmt.Sprintf("│%s SNR:   [%s] %5.1f dB%-6s │\n", m.cursor(fieldSlider), renderBar(pos, 30, 30), m.snr, "")
}

func (m Model) renderButton() string {
	label := "[ Generate ]"
	if m.busy {
		label = "[ Working… ]"
	}
	return fmt.Sprintf("│%s %-52s │\n", m.cursor(fieldGenerate), label)
}

func (m Model) renderNotice() string {
	if m.notice == "" {
		return "│                                                      │\n"
	}

	prefix := "✓ "
	if m.failed {
		prefix = "✗ "
	}
	if m.busy {
		prefix = ""
	}
	return fmt.Sprintf("│ %-52s │\n", truncate(prefix+m.notice, 52))
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return `│ tab:Next  ←/→:SNR  enter:Generate  esc:Quit          │
└──────────────────────────────────────────────────────┘
`
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := (value * width) / max
	var b strings.Builder
	for i := range width {
		if i < filled {
			b.WriteString("█")
		} else {
			b.WriteString("░")
		}
	}
	return b.String()
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

// truncateLeft keeps the tail of long paths, where the file name is.
func truncateLeft(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return "..." + string(r[len(r)-length+3:])
}
