// Package report renders analysis results as the plain-text report users
// save to disk or read in the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"textmetrics/internal/domain"
)

// EmptyPrompt is shown instead of statistics when there is no text.
const EmptyPrompt = "Please enter some text to analyze."

// Renderer formats bundles. TopN is the length announced in the top tables' headings.
type Renderer struct {
	TopN    int
	heading func(a ...any) string
	warn    func(a ...any) string
}

// NewRenderer returns a renderer; colored enables ANSI headings.
func NewRenderer(topN int, colored bool) *Renderer {
	if topN <= 0 {
		topN = 5
	}
	r := &Renderer{TopN: topN, heading: fmt.Sprint, warn: fmt.Sprint}
	if colored {
		r.heading = color.New(color.FgCyan, color.Bold).SprintFunc()
		r.warn = color.New(color.FgYellow).SprintFunc()
	}
	return r
}

// Render returns the statistics report followed by the language and summary sections.
func (r *Renderer) Render(b domain.Bundle) string {
	var sb strings.Builder
	if b.Empty || b.Stats == nil {
		sb.WriteString(EmptyPrompt)
		sb.WriteString("\n")
		return sb.String()
	}
	r.writeLetters(&sb, b.Stats)
	sb.WriteString("\n")
	r.writeWords(&sb, b.Stats)
	sb.WriteString("\n")
	r.writeLanguage(&sb, b.Language)
	sb.WriteString("\n")
	r.writeSummary(&sb, b.Summary, b.SummaryNote)
	return sb.String()
}

// RenderLetters returns the general statistics and letter tables.
func (r *Renderer) RenderLetters(st *domain.Stats) string {
	if st == nil {
		return EmptyPrompt + "\n"
	}
	var sb strings.Builder
	r.writeLetters(&sb, st)
	return sb.String()
}

// RenderWords returns the word tables and word-length figures.
func (r *Renderer) RenderWords(st *domain.Stats) string {
	if st == nil {
		return EmptyPrompt + "\n"
	}
	var sb strings.Builder
	r.writeWords(&sb, st)
	return sb.String()
}

// RenderSummary returns the language and summary sections.
func (r *Renderer) RenderSummary(b domain.Bundle) string {
	if b.Empty {
		return EmptyPrompt + "\n"
	}
	var sb strings.Builder
	r.writeLanguage(&sb, b.Language)
	sb.WriteString("\n")
	r.writeSummary(&sb, b.Summary, b.SummaryNote)
	return sb.String()
}

// RenderSearch describes a search result.
func (r *Renderer) RenderSearch(res *domain.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "The word '%s' appears %d time(s).\n", res.Term, res.Count)
	fmt.Fprintf(&sb, "Highlighted matches: %d\n", len(res.Spans))
	if len(res.Related) > 0 {
		sb.WriteString("\n")
		sb.WriteString(r.heading("=== Related Sentences ==="))
		sb.WriteString("\n")
		for _, s := range res.Related {
			fmt.Fprintf(&sb, "%d. %s (%.3f)\n", s.Rank, s.Text, s.Score)
		}
	}
	return sb.String()
}

func (r *Renderer) writeLetters(sb *strings.Builder, st *domain.Stats) {
	sb.WriteString(r.heading("=== General Statistics ==="))
	sb.WriteString("\n")
	fmt.Fprintf(sb, "Total Characters: %d\n", st.TotalChars)
	fmt.Fprintf(sb, "Total Letters: %d\n", st.TotalLetters)
	fmt.Fprintf(sb, "Total Digits: %d\n", st.TotalDigits)
	fmt.Fprintf(sb, "Total Special Characters: %d\n", st.TotalSpecial)
	fmt.Fprintf(sb, "Total Words: %d\n\n", st.TotalWords)

	sb.WriteString(r.heading("=== Letter Counts ==="))
	sb.WriteString("\n")
	writeEntries(sb, st.Letters)

	sb.WriteString("\n")
	sb.WriteString(r.heading(fmt.Sprintf("=== Top %d Letters ===", r.TopN)))
	sb.WriteString("\n")
	writeEntries(sb, st.TopLetters)
}

func (r *Renderer) writeWords(sb *strings.Builder, st *domain.Stats) {
	sb.WriteString(r.heading("=== Word Counts ==="))
	sb.WriteString("\n")
	writeEntries(sb, st.Words)

	sb.WriteString("\n")
	sb.WriteString(r.heading(fmt.Sprintf("=== Top %d Words ===", r.TopN)))
	sb.WriteString("\n")
	writeEntries(sb, st.TopWords)

	if st.HasWords {
		fmt.Fprintf(sb, "\nAverage Word Length: %.2f\n", st.AverageWordLength)
		fmt.Fprintf(sb, "Longest Word: %s\n", st.LongestWord)
		fmt.Fprintf(sb, "Shortest Word: %s\n", st.ShortestWord)
	}
}

func (r *Renderer) writeLanguage(sb *strings.Builder, lang domain.LanguageResult) {
	sb.WriteString(r.heading("=== Language ==="))
	sb.WriteString("\n")
	if lang.Code != "" {
		fmt.Fprintf(sb, "Detected Language: %s (%s), confidence %.2f\n", lang.Name, lang.Code, lang.Confidence)
	}
	if lang.Warning != "" {
		sb.WriteString(r.warn("Warning: " + lang.Warning))
		sb.WriteString("\n")
	}
}

func (r *Renderer) writeSummary(sb *strings.Builder, summary []domain.RankedSentence, note string) {
	sb.WriteString(r.heading("=== Summary ==="))
	sb.WriteString("\n")
	if note != "" {
		sb.WriteString(r.warn(note))
		sb.WriteString("\n")
		return
	}
	for i, s := range summary {
		fmt.Fprintf(sb, "%d. %s\n", i+1, s.Text)
	}
}

func writeEntries(sb *strings.Builder, entries []domain.FrequencyEntry) {
	for _, e := range entries {
		fmt.Fprintf(sb, "%s: %d\n", e.Key, e.Count)
	}
}

// Save writes the plain report to path, creating parent directories.
func Save(path string, topN int, b domain.Bundle) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(NewRenderer(topN, false).Render(b)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Print writes the report to w.
func Print(w io.Writer, topN int, colored bool, b domain.Bundle) error {
	_, err := io.WriteString(w, NewRenderer(topN, colored).Render(b))
	return err
}
