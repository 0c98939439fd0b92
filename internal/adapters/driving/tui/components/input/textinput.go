// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/octoview/octoview-cli/internal/adapters/driving/tui/styles"
)

// UsernameInput wraps a bubbles textinput for the username search box.
type UsernameInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	width     int
}

// NewUsernameInput creates a new username input component.
func NewUsernameInput(s *styles.Styles) *UsernameInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search GitHub users..."
	ti.Focus()
	// GitHub usernames cap at 39 characters.
	ti.CharLimit = 39
	ti.Width = 40

	return &UsernameInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
}

// Init initialises the username input.
func (u *UsernameInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (u *UsernameInput) Update(msg tea.Msg) (*UsernameInput, tea.Cmd) {
	var cmd tea.Cmd
	u.textinput, cmd = u.textinput.Update(msg)
	return u, cmd
}

// View renders the username input.
func (u *UsernameInput) View() string {
	label := u.styles.Title.Render("User: ")
	input := u.styles.InputField.Render(u.textinput.View())
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value.
func (u *UsernameInput) Value() string {
	return u.textinput.Value()
}

// SetValue sets the input value.
func (u *UsernameInput) SetValue(value string) {
	u.textinput.SetValue(value)
}

// Focus sets focus on the input.
func (u *UsernameInput) Focus() tea.Cmd {
	return u.textinput.Focus()
}

// Blur removes focus from the input.
func (u *UsernameInput) Blur() {
	u.textinput.Blur()
}

// Focused returns whether the input is focused.
func (u *UsernameInput) Focused() bool {
	return u.textinput.Focused()
}

// SetWidth sets the width of the input.
func (u *UsernameInput) SetWidth(width int) {
	u.width = width
	inputWidth := width - 10
	if inputWidth < 20 {
		inputWidth = 20
	}
	u.textinput.Width = inputWidth
}

// Width returns the current width.
func (u *UsernameInput) Width() int {
	return u.width
}

// Reset clears the input.
func (u *UsernameInput) Reset() {
	u.textinput.Reset()
}
