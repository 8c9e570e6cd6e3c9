package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/diogo/gompei/internal/api"
	"github.com/diogo/gompei/internal/chat"
	"github.com/diogo/gompei/internal/models"
	"github.com/diogo/gompei/internal/render"
)

// Message types for the TUI
type (
	// answerMsg carries the settlement of the outstanding request
	answerMsg struct {
		answer models.Answer
		err    error
	}
	copiedMsg struct {
		err error
	}
)

var errAnswererPanicked = errors.New("answerer panicked")

// focusTarget is the control that receives Enter
type focusTarget int

const (
	focusInput focusTarget = iota
	focusSend
)

// Model is the bubbletea model hosting one conversation widget
type Model struct {
	conv     *chat.Conversation
	answerer api.Answerer
	ctx      context.Context
	logger   zerolog.Logger

	renderOpts   render.Options
	renderAnswer func(string, render.Options) string
	copyFn       func(string) error

	// bubbles is shared by copies of the model so a spinner tick reuses
	// the bubbles already drawn
	bubbles *bubbleCache

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	focus         focusTarget
	ready         bool
	endpoint      string
	serviceStatus string
	serviceOK     bool
	notice        string
	noticeIsError bool

	width  int
	height int
}

// ModelOption configures a Model
type ModelOption func(*Model)

// WithConversation hosts an existing conversation instead of a new one
func WithConversation(conv *chat.Conversation) ModelOption {
	return func(m *Model) {
		m.conv = conv
	}
}

// WithRenderOptions sets the markdown options used for bot bubbles
func WithRenderOptions(opts render.Options) ModelOption {
	return func(m *Model) {
		m.renderOpts = opts
	}
}

// WithLogger sets the debug logger
func WithLogger(logger zerolog.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithClipboard replaces the clipboard writer
func WithClipboard(fn func(string) error) ModelOption {
	return func(m *Model) {
		m.copyFn = fn
	}
}

// WithServiceStatus shows the result of the start-up health check in the header
func WithServiceStatus(status string, ok bool) ModelOption {
	return func(m *Model) {
		m.serviceStatus = status
		m.serviceOK = ok
	}
}

// WithEndpoint shows the service endpoint in the header
func WithEndpoint(endpoint string) ModelOption {
	return func(m *Model) {
		m.endpoint = endpoint
	}
}

// NewChatModel creates a new chat TUI model
func NewChatModel(answerer api.Answerer, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Placeholder = models.InputPlaceholder
	ti.Prompt = "› "
	ti.CharLimit = 2000
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorText)
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(colorTextDim)
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = loadingStyle

	m := Model{
		answerer:   answerer,
		ctx:        context.Background(),
		logger:     zerolog.Nop(),
		renderOpts:   render.DefaultOptions(),
		renderAnswer: render.Answer,
		copyFn:       clipboard.WriteAll,
		bubbles:      &bubbleCache{},
		input:        ti,
		spinner:      s,
		focus:        focusInput,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.conv == nil {
		m.conv = chat.New(chat.WithLogger(m.logger))
	}
	return m
}

// Conversation returns the hosted conversation
func (m Model) Conversation() *chat.Conversation {
	return m.conv
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.updateViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.conv.Close()
			return m, tea.Quit

		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil

		case "ctrl+y":
			return m, m.copyLastAnswer()

		case "enter":
			return m.submit()
		}

		if m.focus == focusInput {
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			m.conv.UpdateInput(m.input.Value())
		}

		// runes belong to the input; only navigation keys scroll
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			m.viewport, cmd = m.viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case answerMsg:
		if m.conv.Settle(msg.answer, msg.err) {
			m.updateViewport()
			m.viewport.GotoBottom()
		}

	case copiedMsg:
		if msg.err != nil {
			m.notice = fmt.Sprintf("Copy failed: %v", msg.err)
			m.noticeIsError = true
		} else {
			m.notice = "Copied last answer"
			m.noticeIsError = false
		}

	case spinner.TickMsg:
		if m.conv.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			m.updateViewport()
		}

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// submit hands the input to the conversation and, if accepted, dispatches
// the request. Rejected submissions leave the input untouched.
func (m Model) submit() (Model, tea.Cmd) {
	m.conv.UpdateInput(m.input.Value())

	question, ok := m.conv.Begin()
	if !ok {
		return m, nil
	}

	m.input.Reset()
	m.notice = ""
	m.updateViewport()
	m.viewport.GotoBottom()

	return m, tea.Batch(m.askCmd(question), m.spinner.Tick)
}

// askCmd creates a command that sends question to the answering service
func (m Model) askCmd(question string) tea.Cmd {
	answerer, ctx := m.answerer, m.ctx
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = answerMsg{err: fmt.Errorf("%w: %v", errAnswererPanicked, r)}
			}
		}()
		answer, err := answerer.Ask(ctx, question)
		return answerMsg{answer: answer, err: err}
	}
}

func (m Model) copyLastAnswer() tea.Cmd {
	last, ok := m.conv.LastBotMessage()
	if !ok {
		return nil
	}
	copyFn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{err: copyFn(last.Text)}
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusSend
		m.input.Blur()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

// layout sizes the viewport and input from the window size
func (m *Model) layout() {
	headerHeight := 3 // title line with border
	inputHeight := 3  // input line with border
	statusHeight := 1
	frame := 2 // messages panel border

	vpHeight := m.height - headerHeight - inputHeight - statusHeight - frame
	if vpHeight < 3 {
		vpHeight = 3
	}
	contentWidth := m.contentWidth()

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.input.Width = contentWidth - lipgloss.Width(m.renderSendButton()) - 6
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.contentWidth()
	var sections []string

	sections = append(sections, headerStyle.Width(contentWidth).Render(m.renderHeader()))

	var messagesContent string
	if m.conv.Len() == 0 && !m.conv.Busy() {
		messagesContent = m.renderWelcome()
	} else {
		messagesContent = m.viewport.View()
	}
	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(messagesContent))

	inputRow := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(),
		"  ",
		m.renderSendButton(),
	)
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputRow))

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	parts := []string{titleStyle.Render(models.AppTitle + " " + models.AppIcon)}
	if m.endpoint != "" {
		parts = append(parts, hintStyle.Render("  •  "), subtitleStyle.Render(m.endpoint))
	}
	if m.serviceStatus != "" {
		style := statusOkStyle
		if !m.serviceOK {
			style = statusWarnStyle
		}
		parts = append(parts, hintStyle.Render("  •  "), style.Render(m.serviceStatus))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) renderWelcome() string {
	width := m.viewport.Width - 2
	content := lipgloss.JoinVertical(lipgloss.Center,
		welcomeTitleStyle.Width(width).Render(models.AppIcon+"  "+models.AppTitle),
		"",
		welcomeStyle.Width(width).Render("Type a question below and press Enter"),
	)

	topPadding := (m.viewport.Height - lipgloss.Height(content)) / 2
	if topPadding < 0 {
		topPadding = 0
	}
	return strings.Repeat("\n", topPadding) + content
}

func (m Model) renderSendButton() string {
	switch {
	case m.conv != nil && m.conv.Busy():
		return sendButtonDisabled.Render("Send")
	case m.focus == focusSend:
		return sendButtonFocused.Render("Send")
	default:
		return sendButtonStyle.Render("Send")
	}
}

func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Tab", "Focus"},
		{"Ctrl+Y", "Copy"},
		{"↑↓", "Scroll"},
		{"Esc", "Quit"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}
	bar := strings.Join(items, statusDescStyle.Render("  │  "))

	if m.notice != "" {
		style := statusOkStyle
		if m.noticeIsError {
			style = statusErrStyle
		}
		bar = style.Render(m.notice) + statusDescStyle.Render("  │  ") + bar
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).Render(bar)
}

// bubbleCache holds the rendered transcript. Messages are append-only, so
// only bubbles past count need drawing; a width change redraws everything.
type bubbleCache struct {
	width   int
	count   int
	content string
}

func (c *bubbleCache) reset(width int) {
	c.width = width
	c.count = 0
	c.content = ""
}

// updateViewport refreshes the viewport content from the transcript. Only
// bubbles not drawn yet are rendered; the thinking bubble is drawn on top.
func (m *Model) updateViewport() {
	if !m.ready {
		return
	}

	m.syncBubbles()
	content := m.bubbles.content

	if m.conv.Busy() {
		var thinking strings.Builder
		if m.bubbles.count > 0 {
			thinking.WriteString("\n")
		}
		thinking.WriteString(botLabelStyle.Render(models.AppIcon + " Gompei"))
		thinking.WriteString("\n")
		thinking.WriteString(thinkingBubbleStyle.Render(m.spinner.View() + " " + models.ThinkingText))
		thinking.WriteString("\n")
		content += thinking.String()
	}

	m.viewport.SetContent(content)
}

// syncBubbles renders the messages appended since the last call
func (m *Model) syncBubbles() {
	width := m.viewport.Width
	n := m.conv.Len()
	if m.bubbles.width != width || n < m.bubbles.count {
		m.bubbles.reset(width)
	}
	if n == m.bubbles.count {
		return
	}

	maxBubble := width * 3 / 4
	if maxBubble < 16 {
		maxBubble = width
	}

	var content strings.Builder
	content.WriteString(m.bubbles.content)
	messages := m.conv.Messages()
	for i := m.bubbles.count; i < len(messages); i++ {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(m.renderMessage(messages[i], width, maxBubble))
		content.WriteString("\n")
	}
	m.bubbles.content = content.String()
	m.bubbles.count = len(messages)
}

// renderMessage draws one transcript bubble: user bubbles on the right,
// bot bubbles on the left
func (m Model) renderMessage(msg models.Message, width, maxBubble int) string {
	if msg.IsUser() {
		label := userLabelStyle.Render("You")
		bubble := userBubbleStyle.Width(bubbleWidth(msg.Text, maxBubble)).Render(msg.Text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, label) + "\n" +
			lipgloss.PlaceHorizontal(width, lipgloss.Right, bubble)
	}

	label := botLabelStyle.Render(models.AppIcon + " Gompei")
	text := m.renderAnswer(msg.Text, m.renderOpts.WithWidth(maxBubble-4))
	bubble := botBubbleStyle.Width(bubbleWidth(text, maxBubble)).Render(text)
	return label + "\n" + bubble
}

// bubbleWidth returns the bubble width (content plus padding) for text,
// capped at max
func bubbleWidth(text string, max int) int {
	w := lipgloss.Width(text) + 2
	if w > max {
		return max
	}
	return w
}

// RunChat starts the chat TUI and blocks until the user quits
func RunChat(answerer api.Answerer, opts ...ModelOption) error {
	m := NewChatModel(answerer, opts...)
	defer m.conv.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
