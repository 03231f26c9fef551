// Package tui implements the interactive theme picker.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themekit/internal/models"
	"github.com/opencode-ai/themekit/internal/style"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tui/styles"
)

// RunPicker shows the picker and returns the chosen theme name. ok is false
// when the user quit without choosing.
func RunPicker(registry *theme.Registry, current string) (name string, ok bool, err error) {
	program := tea.NewProgram(NewPicker(registry, current), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", false, err
	}
	picker, _ := final.(Picker)
	name, ok = picker.Chosen()
	return name, ok, nil
}

// Picker is the bubbletea model for choosing a theme.
type Picker struct {
	registry *theme.Registry
	names    []string
	cursor   int
	chosen   string
	done     bool
	width    int
	height   int
}

const (
	minWidth  = 40
	minHeight = 10
)

// NewPicker creates a picker positioned on current when it is registered.
func NewPicker(registry *theme.Registry, current string) Picker {
	p := Picker{registry: registry, names: registry.Names()}
	for i, name := range p.names {
		if name == current {
			p.cursor = i
			break
		}
	}
	return p
}

// Chosen returns the selected theme once the user confirmed a choice.
func (p Picker) Chosen() (string, bool) {
	return p.chosen, p.done && p.chosen != ""
}

func (p Picker) Init() tea.Cmd {
	return nil
}

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.names)-1 {
				p.cursor++
			}
		case "home", "g":
			p.cursor = 0
		case "end", "G":
			if len(p.names) > 0 {
				p.cursor = len(p.names) - 1
			}
		case "enter":
			if len(p.names) > 0 {
				p.chosen = p.names[p.cursor]
				p.done = true
			}
			return p, tea.Quit
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		}
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
	}
	return p, nil
}

func (p Picker) View() string {
	if p.width > 0 && p.height > 0 && (p.width < minWidth || p.height < minHeight) {
		s := styles.DefaultStyles()
		return fmt.Sprintf("%s\n%s\n",
			s.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", p.width, p.height)),
			s.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)))
	}
	if len(p.names) == 0 {
		s := styles.DefaultStyles()
		return s.Warning.Render("No themes registered.") + "\n" + s.Muted.Render("Press q to quit.") + "\n"
	}

	props := p.preview()
	s := styles.BuildStyles(styles.TokensFromProperties(props))

	list := make([]string, 0, len(p.names))
	for i, name := range p.names {
		if i == p.cursor {
			list = append(list, s.Selected.Render("> "+name))
			continue
		}
		list = append(list, s.Text.Render("  "+name))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(list, "\n"),
		"  ",
		s.Panel.Render(styles.Swatches(s, props)),
	)

	lines := []string{
		s.Title.Render("Choose a theme"),
		"",
		body,
		"",
		s.Muted.Render("up/down move | enter apply | q quit"),
	}
	return strings.Join(lines, "\n") + "\n"
}

// preview resolves the highlighted theme on a scratch root.
func (p Picker) preview() []models.Property {
	root := style.NewRoot()
	theme.NewManager(root).Initialize(p.registry, p.names[p.cursor], nil)
	return root.Snapshot()
}
