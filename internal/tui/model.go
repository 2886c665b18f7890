package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textmetrics/internal/domain"
	"textmetrics/internal/report"
)

// AnalyzerPort is the TUI-facing subset of the analyzer service.
type AnalyzerPort interface {
	Analyze(text string) domain.Bundle
	Search(text, term string) (*domain.SearchResult, error)
}

// InvalidSearchWarning is shown when a search lacks text or a term.
const InvalidSearchWarning = "Please enter some text and a search term."

type view int

const (
	viewStats view = iota
	viewWords
	viewSummary
	viewSearch
	viewCount
)

var viewNames = [...]string{
	viewStats:   "Statistics",
	viewWords:   "Words",
	viewSummary: "Summary",
	viewSearch:  "Search",
}

type focus int

const (
	focusEditor focus = iota
	focusSearch
)

// Options configures the model.
type Options struct {
	TopN       int
	ReportPath string
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service  AnalyzerPort
	renderer *report.Renderer
	opts     Options

	editor   textarea.Model
	input    textinput.Model
	viewport viewport.Model

	// text is what gets analyzed. It starts as the loaded text and follows
	// the editor after the first edit; edited tracks the editor's value.
	text   string
	edited string
	bundle domain.Bundle
	search *domain.SearchResult

	view   view
	focus  focus
	status string
	ready  bool
}

// New creates a new TUI model holding text.
func New(service AnalyzerPort, text string, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter your text here..."
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.SetValue(text)
	ta.Focus()

	ti := textinput.New()
	ti.Prompt = "search> "
	ti.Placeholder = "Type a word and press Enter"
	ti.CharLimit = 0

	vp := viewport.New(0, 0)
	m := Model{
		service:  service,
		renderer: report.NewRenderer(opts.TopN, false),
		opts:     opts,
		editor:   ta,
		input:    ti,
		viewport: vp,
		text:     text,
		edited:   ta.Value(),
		status:   "tab: switch focus  ctrl+t: next view  ctrl+s: save report  ctrl+c: quit",
	}
	m.bundle = service.Analyze(text)
	return m
}

// Init initializes the model (cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.resize(msg.Width, msg.Height)
		m.viewport.SetContent(m.renderCurrent())
		return m, nil
	case tea.KeyMsg:
		// Global quits
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "tab":
			m.toggleFocus()
			return m, nil
		case "ctrl+t":
			m.view = (m.view + 1) % viewCount
			m.viewport.SetContent(m.renderCurrent())
			m.viewport.GotoTop()
			return m, nil
		case "ctrl+s":
			m.save()
			return m, nil
		case "enter":
			if m.focus == focusSearch {
				m.runSearch()
				return m, nil
			}
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	if m.focus == focusSearch {
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != m.edited {
		// Every edit recomputes from scratch.
		m.edited = v
		m.text = v
		m.bundle = m.service.Analyze(v)
		m.search = nil
		m.viewport.SetContent(m.renderCurrent())
	}
	return m, cmd
}

// View renders the TUI layout and the current result view.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("TextMetrics - Text Analyzer")
	tabs := m.renderTabs()
	editor := m.boxStyle(focusEditor).Render(m.editor.View())
	results := resultBoxStyle.Render(m.viewport.View())
	input := m.boxStyle(focusSearch).Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + editor + "\n" + tabs + "\n" + results + "\n" + input + "\n" + status
}

func (m *Model) resize(width, height int) {
	_, eh := editorBoxStyle.GetFrameSize()
	_, rh := resultBoxStyle.GetFrameSize()
	_, qh := focusedBoxStyle.GetFrameSize()
	reserved := 3 + eh + rh + qh + 1 // header, tabs, status, input line
	avail := height - reserved
	if avail < 6 {
		avail = 6
	}
	w := max(20, width-4)
	m.editor.SetWidth(w)
	m.editor.SetHeight(max(3, avail/3))
	m.input.Width = w - len(m.input.Prompt)
	m.viewport.Width = w
	m.viewport.Height = max(3, avail-avail/3)
}

func (m *Model) toggleFocus() {
	if m.focus == focusEditor {
		m.focus = focusSearch
		m.editor.Blur()
		m.input.Focus()
		return
	}
	m.focus = focusEditor
	m.input.Blur()
	m.editor.Focus()
}

func (m *Model) runSearch() {
	res, err := m.service.Search(m.text, m.input.Value())
	if err != nil {
		m.search = nil
		m.status = InvalidSearchWarning
	} else {
		m.search = res
		m.status = fmt.Sprintf("The word '%s' appears %d time(s).", res.Term, res.Count)
	}
	m.view = viewSearch
	m.viewport.SetContent(m.renderCurrent())
	m.viewport.GotoTop()
}

func (m *Model) save() {
	if m.opts.ReportPath == "" {
		m.status = "Error: no report path configured"
		return
	}
	if err := report.Save(m.opts.ReportPath, m.opts.TopN, m.bundle); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Results saved to " + m.opts.ReportPath
}

func (m Model) renderCurrent() string {
	if m.bundle.Empty {
		return report.EmptyPrompt
	}
	switch m.view {
	case viewWords:
		return m.renderer.RenderWords(m.bundle.Stats)
	case viewSummary:
		return m.renderer.RenderSummary(m.bundle)
	case viewSearch:
		if m.search == nil {
			return "No search yet. Press tab, type a word and press Enter."
		}
		return m.renderer.RenderSearch(m.search) + "\n" + highlightSpans(m.text, m.search.Spans)
	default:
		return m.renderer.RenderLetters(m.bundle.Stats)
	}
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.view {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) boxStyle(f focus) lipgloss.Style {
	if m.focus == f {
		return focusedBoxStyle
	}
	return editorBoxStyle
}

var (
	editorBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusedBoxStyle = editorBoxStyle.BorderForeground(lipgloss.Color("12"))
	resultBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// highlightSpans renders text with every span highlighted. Spans are rune
// offsets, sorted and non-overlapping.
func highlightSpans(text string, spans []domain.Span) string {
	if len(spans) == 0 {
		return text
	}
	rs := []rune(text)
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		if sp.Start < prev || sp.End > len(rs) {
			continue
		}
		b.WriteString(string(rs[prev:sp.Start]))
		b.WriteString(highlightStyle.Render(string(rs[sp.Start:sp.End])))
		prev = sp.End
	}
	b.WriteString(string(rs[prev:]))
	return b.String()
}
