package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shotfix/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseConverting Phase = iota
	PhaseDone
	PhaseCanceled
	PhaseError
)

// Config for the TUI
type Config struct {
	Settings domain.Settings
	Events   <-chan tea.Msg
	// Cancel asks the running batch to stop before its next file.
	Cancel func()
}

// Model is the main TUI model
type Model struct {
	config          Config
	Phase           Phase
	spinner         spinner.Model
	progress        progress.Model
	percent         int
	Corrupt         []string
	Unreadable      []string
	WriteFailed     bool
	FilesConverted  int
	CancelRequested bool
	Err             error
	Quitting        bool
	width           int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseConverting,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForEvent(m.config.Events))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.Phase == PhaseConverting {
				if !m.CancelRequested && m.config.Cancel != nil {
					m.config.Cancel()
				}
				m.CancelRequested = true
				return m, nil
			}
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase != PhaseConverting {
				return m, tea.Quit
			}
		}

	case ProgressMsg:
		m.percent = msg.Percent
		return m, tea.Batch(m.progress.SetPercent(float64(msg.Percent)/100), waitForEvent(m.config.Events))

	case CorruptFileMsg:
		m.Corrupt = append(m.Corrupt, msg.Name)
		return m, waitForEvent(m.config.Events)

	case UnreadableFileMsg:
		m.Unreadable = append(m.Unreadable, msg.Name)
		return m, waitForEvent(m.config.Events)

	case WriteFailureMsg:
		m.WriteFailed = true
		return m, waitForEvent(m.config.Events)

	case CanceledMsg:
		m.Phase = PhaseCanceled
		m.FilesConverted = msg.FilesConverted
		return m, waitForEvent(m.config.Events)

	case CompleteMsg:
		m.Phase = PhaseDone
		m.FilesConverted = msg.FilesConverted
		return m, waitForEvent(m.config.Events)

	case BusyMsg:
		return m, waitForEvent(m.config.Events)

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseConverting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseConverting:
		b.WriteString(m.renderConverting())
	case PhaseDone, PhaseCanceled:
		b.WriteString(m.renderCompletion())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	if len(m.Corrupt) > 0 {
		b.WriteString("\n")
		b.WriteString(renderFileList(warningStyle, iconWarning, "Possibly corrupt", m.Corrupt))
	}
	if len(m.Unreadable) > 0 {
		b.WriteString("\n")
		b.WriteString(renderFileList(errorStyle, iconError, "Could not be read", m.Unreadable))
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("▣ Shotfix")
	subtitle := subtitleStyle.Render("Squares up wide screenshots")

	dimStyle := lipgloss.NewStyle().Foreground(dimTextColor)
	behavior := strings.Split(strings.TrimRight(m.config.Settings.DescribeBehavior(), "\n"), "\n")

	lines := []string{
		title,
		subtitle,
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.Settings.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Result: %s", iconFolder, shortenPath(m.config.Settings.ResultDir))),
		"",
	}
	for _, line := range behavior {
		lines = append(lines, behaviorStyle.Render(line))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderConverting() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Converting Screenshots"))
	b.WriteString("\n\n")

	label := "Converting..."
	if m.CancelRequested {
		label = "Canceling after the current file..."
	}
	b.WriteString(fmt.Sprintf("  %s %s\n\n", m.spinner.View(), label))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.View()))

	percentStyle := lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	b.WriteString(fmt.Sprintf("  %s\n", percentStyle.Render(fmt.Sprintf("%d%%", m.percent))))

	return b.String()
}

func (m Model) renderCompletion() string {
	var b strings.Builder

	if m.Phase == PhaseCanceled {
		b.WriteString(sectionStyle.Render("Conversion Canceled"))
		b.WriteString("\n\n")
		if m.WriteFailed {
			b.WriteString(fmt.Sprintf("  %s %s\n\n", errorStyle.Render(iconError), errorStyle.Render("Error writing to the result folder.")))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n\n", warningStyle.Render(iconWarning), warningStyle.Render("Stopped on request.")))
		}
	} else {
		b.WriteString(sectionStyle.Render("Conversion Complete"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s %s\n\n", successStyle.Render(iconSuccess), successStyle.Render("All screenshots processed!")))
	}

	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Files converted:"), statValueStyle.Render(fmt.Sprintf("%d", m.FilesConverted))))
	return b.String()
}

func renderFileList(style lipgloss.Style, icon, title string, names []string) string {
	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%s %s (%d files)", icon, title, len(names))))
	b.WriteString("\n\n")
	for i, name := range names {
		if i >= 4 {
			b.WriteString(fmt.Sprintf("  ... and %d more\n", len(names)-4))
			break
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(icon), fileNameStyle.Render(name)))
	}
	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseConverting:
		help = "Press q to cancel after the current file"
	case PhaseDone, PhaseCanceled:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
