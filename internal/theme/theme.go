package theme

import (
	"sync"

	"github.com/fatih/color"
)

// Theme defines the interface for theming in the application
type Theme interface {
	// Primary returns the primary style
	Primary() *Style

	// Secondary returns the secondary style
	Secondary() *Style

	// Success returns the success style
	Success() *Style

	// Error returns the error style
	Error() *Style

	// Warning returns the warning style
	Warning() *Style

	// Info returns the info style
	Info() *Style

	// Subtle returns the subtle style
	Subtle() *Style

	// Custom returns a custom style by name
	Custom(name string) *Style

	// IsEnabled reports if colors are enabled
	IsEnabled() bool

	// SetEnabled enables or disables color output
	SetEnabled(enabled bool)
}

// DefaultTheme represents the default theme implementation
type DefaultTheme struct {
	primary   *Style
	secondary *Style
	success   *Style
	error     *Style
	warning   *Style
	info      *Style
	subtle    *Style
	custom    map[string]*Style
	enabled   bool
	mu        sync.RWMutex
}

// NewDefaultTheme creates a new default theme
func NewDefaultTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgHiCyan, 0, color.Bold),
		secondary: NewStyle(color.FgBlue, 0),
		success:   NewStyle(color.FgGreen, 0, color.Bold),
		error:     NewStyle(color.FgRed, 0, color.Bold),
		warning:   NewStyle(color.FgYellow, 0),
		info:      NewStyle(color.FgWhite, 0),
		subtle:    NewStyle(color.FgHiBlack, 0),
		custom:    make(map[string]*Style),
		enabled:   !color.NoColor,
	}
}

// NewProfessionalTheme creates a calmer theme suitable for everyday use
func NewProfessionalTheme() *DefaultTheme {
	return &DefaultTheme{
		primary:   NewStyle(color.FgBlue, 0, color.Bold),
		secondary: NewStyle(color.FgHiBlue, 0),
		success:   NewStyle(color.FgGreen, 0),
		error:     NewStyle(color.FgRed, 0),
		warning:   NewStyle(color.FgYellow, 0),
		info:      NewStyle(color.FgWhite, 0),
		subtle:    NewStyle(color.FgHiBlack, 0),
		custom:    make(map[string]*Style),
		enabled:   !color.NoColor,
	}
}

// Primary returns the primary style
func (t *DefaultTheme) Primary() *Style {
	return t.primary
}

// Secondary returns the secondary style
func (t *DefaultTheme) Secondary() *Style {
	return t.secondary
}

// Success returns the success style
func (t *DefaultTheme) Success() *Style {
	return t.success
}

// Error returns the error style
func (t *DefaultTheme) Error() *Style {
	return t.error
}

// Warning returns the warning style
func (t *DefaultTheme) Warning() *Style {
	return t.warning
}

// Info returns the info style
func (t *DefaultTheme) Info() *Style {
	return t.info
}

// Subtle returns the subtle style
func (t *DefaultTheme) Subtle() *Style {
	return t.subtle
}

// Custom returns a custom style by name, falling back to the info style
func (t *DefaultTheme) Custom(name string) *Style {
	t.mu.RLock()
	defer t.mu.RUnlock()

	style, ok := t.custom[name]
	if !ok {
		return t.info
	}
	return style
}

// RegisterCustomStyle registers a new custom style
func (t *DefaultTheme) RegisterCustomStyle(name string, style *Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.custom[name] = style
}

// IsEnabled reports if colors are enabled
func (t *DefaultTheme) IsEnabled() bool {
	return t.enabled && !color.NoColor
}

// SetEnabled enables or disables color output
func (t *DefaultTheme) SetEnabled(enabled bool) {
	t.enabled = enabled
}
