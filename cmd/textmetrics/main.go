package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"textmetrics/internal/config"
	"textmetrics/internal/domain"
	"textmetrics/internal/ingest"
	"textmetrics/internal/language"
	"textmetrics/internal/logging"
	"textmetrics/internal/nlp"
	"textmetrics/internal/report"
	"textmetrics/internal/scoring/frequency"
	"textmetrics/internal/scoring/tfidf"
	"textmetrics/internal/service"
	"textmetrics/internal/summarizer"
	"textmetrics/internal/textstats"
	"textmetrics/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath    string
		reportMode bool
		outPath    string
		searchTerm string
		summaryN   int
		noColor    bool
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/textmetrics/config.yaml if not provided)")
	flag.BoolVar(&reportMode, "report", false, "Print the report and exit instead of starting the TUI")
	flag.StringVar(&outPath, "out", "", "Also save the report to this file")
	flag.StringVar(&searchTerm, "search", "", "Search for a word (report mode)")
	flag.IntVar(&summaryN, "summary", 0, "Number of summary sentences (overrides config)")
	flag.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: textmetrics [--config=config.yaml] [--report] [--out=file] [--search=word] [--summary=N] [file.txt|file.pdf|file.docx|- ...]")
		flag.PrintDefaults()
	}
	flag.Parse()
	inputs := flag.Args()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if summaryN > 0 {
		cfg.Summarizer.MaxSentences = summaryN
	}
	if noColor {
		cfg.Report.Color = false
	}

	logger, err := newLogger(cfg, reportMode)
	if err != nil {
		log.Fatalf("failed to open log: %v", err)
	}
	defer logger.Close()

	// Assemble components
	var scorer domain.SentenceScorer
	switch cfg.Summarizer.Scorer {
	case "tfidf", "":
		scorer = tfidf.NewScorer(cfg.Summarizer.Stopwords)
	case "frequency":
		scorer = frequency.NewScorer(cfg.Summarizer.Stopwords)
	default:
		log.Fatalf("unknown scorer: %s", cfg.Summarizer.Scorer)
	}

	var detector domain.LanguageDetector
	if cfg.Language.Enabled {
		detector = language.NewDetector(cfg.Language.MinConfidence)
	}
	n := nlp.NewService(detector, scorer)

	order, err := summarizer.ParseOrder(cfg.Summarizer.Order)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	sum := summarizer.New(n, cfg.Summarizer.MaxSentences, order)

	svc := service.NewAnalyzerService(
		ingest.NewLoader(os.Stdin),
		n,
		sum,
		service.Options{TopN: cfg.Analysis.TopN, Related: cfg.Search.Related, Stopwords: cfg.Summarizer.Stopwords},
		logger,
	)
	logger.Debug("scorer=%s order=%s language=%v", n.ScorerName(), order, cfg.Language.Enabled)

	var text string
	if len(inputs) > 0 {
		text, err = svc.LoadDocuments(inputs)
		if err != nil {
			log.Fatalf("load failed: %v", err)
		}
	}

	if reportMode {
		if err := runReport(svc, cfg, text, searchTerm, outPath); err != nil {
			log.Fatal(err)
		}
		return
	}

	reportPath := cfg.Report.Path
	if outPath != "" {
		reportPath = outPath
	}
	m := tui.New(svc, text, tui.Options{TopN: cfg.Analysis.TopN, ReportPath: reportPath})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func runReport(svc *service.AnalyzerService, cfg *config.AppConfig, text, term, outPath string) error {
	color.NoColor = color.NoColor || !cfg.Report.Color
	bundle := svc.Analyze(text)
	if err := report.Print(os.Stdout, cfg.Analysis.TopN, cfg.Report.Color, bundle); err != nil {
		return err
	}
	if term != "" {
		r := report.NewRenderer(cfg.Analysis.TopN, cfg.Report.Color)
		res, err := svc.Search(text, term)
		switch {
		case errors.Is(err, textstats.ErrInvalidInput):
			fmt.Println(color.YellowString(tui.InvalidSearchWarning))
		case err != nil:
			return err
		default:
			fmt.Println()
			fmt.Print(r.RenderSearch(res))
		}
	}
	if outPath != "" {
		if err := report.Save(outPath, cfg.Analysis.TopN, bundle); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Results saved to %s", outPath))
	}
	return nil
}

// newLogger keeps stdout clean: the TUI owns the terminal, so without a log
// file it logs nowhere.
func newLogger(cfg *config.AppConfig, reportMode bool) (*logging.Logger, error) {
	if cfg.Log.File != "" {
		return logging.NewFile(cfg.Log.Level, cfg.Log.File)
	}
	if reportMode {
		return logging.New(cfg.Log.Level, os.Stderr), nil
	}
	return logging.NewDiscardLogger(), nil
}
