package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aiforall/internal/attention"
	"aiforall/internal/lstm"
	"aiforall/internal/retrieval"
	"aiforall/internal/service"
)

// SimulatorPort is the TUI-facing subset of the simulator service.
type SimulatorPort interface {
	Attention(text string) attention.Result
	MultiHead(text string) attention.MultiHeadResult
	LSTM(text, preset string) (service.LSTMRun, error)
	RAG(query string) retrieval.PipelineResult
	Presets() []lstm.Preset
	Preset() lstm.Preset
}

// Mode selects which demo the TUI shows.
type Mode int

const (
	ModeAttention Mode = iota
	ModeMultiHead
	ModeLSTM
	ModeRAG
	modeCount
)

var modeNames = [modeCount]string{"attention", "multihead", "lstm", "rag"}

var modePlaceholders = [modeCount]string{
	"Type a sentence, e.g. the cat sat on the mat",
	"Type a sentence to compare heads",
	"Type words to feed the LSTM one at a time",
	"Ask a question, e.g. machine learning",
}

func (m Mode) String() string {
	if m >= 0 && m < modeCount {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %s", s)
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	sim       SimulatorPort
	input     textinput.Model
	viewport  viewport.Model
	mode      Mode
	preset    int
	content   string
	status    string
	ready     bool
	lastInput string
}

// New creates a new TUI model instance.
func New(sim SimulatorPort, mode Mode) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{sim: sim, input: ti, viewport: vp, mode: mode, status: "tab: switch demo  enter: run  ctrl+p: next preset  ctrl+c: quit"}
	for i, p := range sim.Presets() {
		if p.Name == sim.Preset().Name {
			m.preset = i
		}
	}
	m.input.Placeholder = modePlaceholders[m.mode]
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		// account for frames around result and input boxes
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 1                                    // header with tabs
		totalFooterLines := 1                                    // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1 // 1 spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderContent())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.switchMode((m.mode + 1) % modeCount)
			return m, nil
		case "shift+tab":
			m.switchMode((m.mode + modeCount - 1) % modeCount)
			return m, nil
		case "ctrl+p":
			presets := m.sim.Presets()
			m.preset = (m.preset + 1) % len(presets)
			m.status = "Preset: " + presets[m.preset].Label
			if m.mode == ModeLSTM && m.lastInput != "" {
				m.run(m.lastInput)
			}
			return m, nil
		case "enter":
			if q := strings.TrimSpace(m.input.Value()); q != "" {
				m.run(q)
			}
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		case "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current demo output.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	tabs := make([]string, 0, modeCount)
	for i := Mode(0); i < modeCount; i++ {
		st := tabStyle
		if i == m.mode {
			st = activeTabStyle
		}
		tabs = append(tabs, st.Render(i.String()))
	}
	header := lipgloss.NewStyle().Bold(true).Render("AI for All") + "  " + strings.Join(tabs, " ")
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + results + "\n" + input + "\n" + status
}

func (m *Model) switchMode(mode Mode) {
	m.mode = mode
	m.input.Placeholder = modePlaceholders[mode]
	if m.lastInput != "" {
		m.run(m.lastInput)
		return
	}
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) run(text string) {
	presets := m.sim.Presets()
	out, err := Render(m.mode, m.sim, text, presets[m.preset].Name)
	if err != nil {
		m.status = "Error: " + err.Error()
		m.content = ""
	} else {
		m.status = fmt.Sprintf("%s: %q", m.mode, text)
		m.content = out
		m.lastInput = text
	}
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoTop()
}

func (m Model) renderContent() string {
	if m.content == "" {
		return "No results yet."
	}
	return m.content
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12")).Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
