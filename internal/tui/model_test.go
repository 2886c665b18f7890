package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"textmetrics/internal/domain"
	"textmetrics/internal/textstats"
)

// fakePort analyzes with the real statistics engine and records calls.
type fakePort struct {
	analyzed []string
}

func (f *fakePort) Analyze(text string) domain.Bundle {
	f.analyzed = append(f.analyzed, text)
	st, err := textstats.ComputeStatistics(text)
	if err != nil {
		return domain.Bundle{Empty: true}
	}
	return domain.Bundle{Stats: st}
}

func (f *fakePort) Search(text, term string) (*domain.SearchResult, error) {
	return textstats.Search(text, term)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewShowsStatistics(t *testing.T) {
	port := &fakePort{}
	m := New(port, "Hello hello world", Options{TopN: 5})
	if m.View() != "Loading..." {
		t.Fatal("expected loading view before the first resize")
	}
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 60})
	if !strings.Contains(m.View(), "Total Words: 3") {
		t.Fatalf("statistics missing from view:\n%s", m.View())
	}
	if len(port.analyzed) != 1 {
		t.Fatalf("analyze calls = %d, want 1", len(port.analyzed))
	}
}

func TestEmptyTextShowsPrompt(t *testing.T) {
	m := update(t, New(&fakePort{}, "", Options{}), tea.WindowSizeMsg{Width: 100, Height: 60})
	if !strings.Contains(m.renderCurrent(), "Please enter some text to analyze.") {
		t.Fatalf("prompt missing: %q", m.renderCurrent())
	}
}

func TestEditingRecomputes(t *testing.T) {
	port := &fakePort{}
	m := update(t, New(port, "cat", Options{}), tea.WindowSizeMsg{Width: 100, Height: 60})
	m = update(t, m, runes(" dog"))
	if m.text != "cat dog" {
		t.Fatalf("text = %q, want %q", m.text, "cat dog")
	}
	if last := port.analyzed[len(port.analyzed)-1]; last != "cat dog" {
		t.Fatalf("last analyzed = %q", last)
	}
	if m.bundle.Stats.TotalWords != 2 {
		t.Fatalf("words = %d, want 2", m.bundle.Stats.TotalWords)
	}
}

func TestSearchFlow(t *testing.T) {
	m := update(t, New(&fakePort{}, "the cat sat, thethe", Options{}), tea.WindowSizeMsg{Width: 100, Height: 60})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusSearch {
		t.Fatal("tab did not move focus to search")
	}
	m = update(t, m, runes("the"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewSearch || m.search == nil {
		t.Fatalf("search not run: view %d, search %v", m.view, m.search)
	}
	if m.search.Count != 1 || len(m.search.Spans) != 3 {
		t.Fatalf("search = %+v", m.search)
	}
	if m.status != "The word 'the' appears 1 time(s)." {
		t.Fatalf("status = %q", m.status)
	}
	if m.text != "the cat sat, thethe" {
		t.Fatalf("typing in search changed the text: %q", m.text)
	}
}

func TestSearchWithoutTerm(t *testing.T) {
	m := update(t, New(&fakePort{}, "some text", Options{}), tea.WindowSizeMsg{Width: 100, Height: 60})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.status != InvalidSearchWarning {
		t.Fatalf("status = %q", m.status)
	}
}

func TestCycleViews(t *testing.T) {
	m := update(t, New(&fakePort{}, "one two", Options{}), tea.WindowSizeMsg{Width: 100, Height: 60})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.view != viewWords || !strings.Contains(m.renderCurrent(), "=== Word Counts ===") {
		t.Fatalf("view = %d, content %q", m.view, m.renderCurrent())
	}
	for i := 0; i < int(viewCount); i++ {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	}
	if m.view != viewWords {
		t.Fatalf("views did not wrap around: %d", m.view)
	}
}

func TestSaveReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	m := update(t, New(&fakePort{}, "Hello hello world", Options{TopN: 5, ReportPath: path}), tea.WindowSizeMsg{Width: 100, Height: 60})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.status != "Results saved to "+path {
		t.Fatalf("status = %q", m.status)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !strings.Contains(string(data), "hello: 2") {
		t.Fatalf("report = %q", data)
	}
}

func TestQuit(t *testing.T) {
	m := New(&fakePort{}, "", Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestHighlightSpans(t *testing.T) {
	got := highlightSpans("déjà vu", []domain.Span{{Start: 0, End: 4}})
	if !strings.Contains(got, "déjà") || !strings.HasSuffix(got, " vu") {
		t.Fatalf("highlightSpans = %q", got)
	}
	if highlightSpans("plain", nil) != "plain" {
		t.Fatal("text without spans should be unchanged")
	}
}
