// Package tui is the terminal front end of the chat client.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gemini-chat/internal/chat"
)

const (
	DefaultViewportWidth  = 80
	DefaultViewportHeight = 20

	inputHeight = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	userStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	botStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	footerStyle = lipgloss.NewStyle().BorderTop(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// replyMsg carries the relay outcome back into the update loop.
type replyMsg struct {
	reply chat.Reply
	err   error
}

// Model is the bubbletea model for the chat window.
type Model struct {
	session  *chat.Session
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	width    int
	ready    bool
}

// NewModel builds a chat window whose session talks to relay.
func NewModel(relay chat.Relay) *Model {
	ti := textinput.New()
	ti.Placeholder = "Ask Gemini anything..."
	ti.Focus()
	ti.CharLimit = 0

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = botStyle

	m := &Model{
		viewport: viewport.New(DefaultViewportWidth, DefaultViewportHeight),
		input:    ti,
		spinner:  s,
		width:    DefaultViewportWidth,
	}
	// Every append redraws the transcript and scrolls to the newest entry.
	m.session = chat.NewSession(relay, chat.WithAppendHook(func(chat.Message) {
		m.updateViewportContent()
	}))
	return m
}

// Session exposes the underlying conversation state.
func (m *Model) Session() *chat.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		if m.session.AwaitingReply() {
			// Input is disabled until the reply arrives.
			return m, nil
		}
		if msg.Type == tea.KeyEnter {
			return m, m.submit()
		}

	case replyMsg:
		m.session.Complete(msg.reply, msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.session.AwaitingReply() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if !m.session.AwaitingReply() {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit starts one exchange. Empty input leaves everything as it is.
func (m *Model) submit() tea.Cmd {
	text, ok := m.session.Begin(m.input.Value())
	if !ok {
		return nil
	}
	m.input.Reset()
	return tea.Batch(m.spinner.Tick, m.send(text))
}

func (m *Model) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.session.Send(context.Background(), text)
		return replyMsg{reply: reply, err: err}
	}
}

func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	headerHeight := lipgloss.Height(m.headerView())
	footerHeight := inputHeight + 1

	height := msg.Height - headerHeight - footerHeight
	if height < 1 {
		height = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, height)
		m.viewport.YPosition = headerHeight
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = height
	}
	m.input.Width = msg.Width - 4

	m.updateViewportContent()
}

func (m *Model) View() string {
	return fmt.Sprintf("%s\n%s\n%s", m.headerView(), m.viewport.View(), m.footerView())
}

func (m *Model) headerView() string {
	return titleStyle.Render("Gemini Chat")
}

func (m *Model) footerView() string {
	var content string
	if m.session.AwaitingReply() {
		content = fmt.Sprintf("%s Gemini is thinking...", m.spinner.View())
	} else {
		content = fmt.Sprintf("%s\n%s", m.input.View(), helpStyle.Render("Enter: send | Esc/Ctrl+C: quit"))
	}
	return footerStyle.Render(content)
}

func (m *Model) updateViewportContent() {
	var parts []string
	width := m.viewport.Width - 4

	for _, msg := range m.session.Messages() {
		switch msg.Sender {
		case chat.SenderUser:
			parts = append(parts, userStyle.Render("You:"), plain(msg.Text, width))
		default:
			parts = append(parts, botStyle.Render("Gemini:"), RenderMarkdown(msg.Text, width))
		}
		parts = append(parts, "")
	}

	m.viewport.SetContent(strings.Join(parts, "\n"))
	m.viewport.GotoBottom()
}

// Run starts the interactive chat window.
func Run(relay chat.Relay) error {
	p := tea.NewProgram(NewModel(relay), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
