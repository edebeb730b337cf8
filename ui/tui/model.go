package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"vincit.fi/image-triage/api/apitype"
	"vincit.fi/image-triage/backend/session"
	"vincit.fi/image-triage/common"
	"vincit.fi/image-triage/common/logger"
	"vincit.fi/image-triage/common/util"
)

const (
	minPreviewWidth  = 8
	minPreviewHeight = 4
	recentDecisions  = 3
	// header, recent, instructions, categories, pending, status and margin
	reservedLines = 8
)

const quitPrompt = "Quit? The undo history is lost. Press y, 0 or esc to quit, any other key to continue"

type Model struct {
	session *session.Session
	width   int
	height  int
	status  status

	confirmingQuit bool
}

func NewModel(s *session.Session) Model {
	m := Model{session: s}
	if quarantined := s.StartupQuarantined(); len(quarantined) > 0 {
		m.status = status{text: strings.Join(describeQuarantined(quarantined), "\n"), kind: statusWarning}
	}
	if s.State() == session.Completed && m.status.text == "" {
		m.status = status{text: "No images to process", kind: statusInfo}
	}
	return m
}

// Run shows the session until the operator quits.
func Run(s *session.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		keyName := msg.String()
		logger.Trace.Printf("Key '%s'", keyName)
		if m.confirmingQuit {
			return m.confirmQuit(keyName)
		}
		if keyName != "ctrl+c" && m.session.QuitsOn(keyName) {
			m.confirmingQuit = true
			m.status = status{text: quitPrompt, kind: statusWarning}
			return m, nil
		}
		outcome := m.session.SubmitKey(keyName)
		if outcome.Aborted {
			return m, tea.Quit
		}
		if next := describeOutcome(outcome); next.text != "" {
			m.status = next
		} else if outcome.Command != nil {
			m.status = status{}
		}
		return m, nil
	}
	return m, nil
}

// confirmQuit ends the session on y, 0, esc, enter or ctrl+c. Any other
// key keeps the session going and is not handled further.
func (m Model) confirmQuit(keyName string) (tea.Model, tea.Cmd) {
	m.confirmingQuit = false
	switch keyName {
	case "y", "Y", "0", "esc", "enter", "ctrl+c":
		m.session.Submit(apitype.Quit())
		return m, tea.Quit
	}
	m.status = status{text: "Continuing", kind: statusInfo}
	return m, nil
}

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderRecent(),
		m.renderPreview(),
		m.renderHelp(commandBindings(m.session.InputMode())),
		m.renderHelp(categoryBindings(m.session.Categories())),
	}
	if m.session.InputMode() == common.BufferedInput {
		sections = append(sections, pendingStyle.Render("Input: "+m.session.Pending()))
	}
	sections = append(sections, statusStyles[m.status.kind].Render(m.status.text))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	current := m.session.Current()
	if current == nil {
		stats := m.session.Stats()
		return titleStyle.Render(fmt.Sprintf("Done (%d/%d)", stats.Resolved(), stats.Initial))
	}

	title := titleStyle.Render(current.Title())
	details := []string{current.Size().String(), fmt.Sprintf("%.2f MB", current.ByteSizeInMB())}
	if exif := current.Exif().String(); exif != "" {
		details = append(details, exif)
	}
	if transforms := m.session.Transforms(); len(transforms) > 0 {
		details = append(details, fmt.Sprintf("%d pending edits", len(transforms)))
	}
	return title + "  " + subtleStyle.Render(strings.Join(details, " | "))
}

// renderRecent lists the decisions that undo would revert, newest first.
func (m Model) renderRecent() string {
	entries := m.session.History()
	if len(entries) > recentDecisions {
		entries = entries[len(entries)-recentDecisions:]
	}
	names := make([]string, 0, len(entries))
	for _, entry := range util.Reversed(entries) {
		names = append(names, entry.String())
	}
	if len(names) == 0 {
		return subtleStyle.Render("Undo: -")
	}
	return subtleStyle.Render("Undo: " + strings.Join(names, ", "))
}

func (m Model) previewSize() apitype.Size {
	width := util.AtLeast(m.width, minPreviewWidth)
	height := util.AtLeast(m.height-reservedLines-strings.Count(m.status.text, "\n"), minPreviewHeight)
	return apitype.SizeOf(width, height*2)
}

func (m Model) renderPreview() string {
	if m.width == 0 {
		return ""
	}
	return renderHalfBlocks(m.session.Preview(m.previewSize()))
}

func (m Model) renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, helpKeyStyle.Render(help.Key)+" "+helpDescStyle.Render(help.Desc))
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		return footerStyle.Width(m.width).Render(line)
	}
	return footerStyle.Render(line)
}
