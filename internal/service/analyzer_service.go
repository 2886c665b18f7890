package service

import (
	"errors"
	"math"
	"sort"
	"strings"

	"textmetrics/internal/chunker"
	"textmetrics/internal/domain"
	"textmetrics/internal/index/memory"
	"textmetrics/internal/ingest"
	"textmetrics/internal/logging"
	"textmetrics/internal/nlp"
	"textmetrics/internal/scoring/tfidf"
	"textmetrics/internal/summarizer"
	"textmetrics/internal/textstats"
)

// Notes shown in place of a summary.
const (
	NoteNothingToSummarize = "Nothing to summarize."
	NoteSummaryFailed      = "Summary unavailable: "
)

// Options tunes the service.
type Options struct {
	TopN      int
	Related   int
	Stopwords bool
}

// AnalyzerService implements domain.Analyzer. It holds no per-text state:
// every call works on the text it is given.
type AnalyzerService struct {
	loader     *ingest.Loader
	nlp        domain.NLP
	summarizer domain.Summarizer
	opts       Options
	log        *logging.Logger

	// newEmbedder builds the vectorizer Related prepares over each text.
	newEmbedder func() domain.Embedder
}

func NewAnalyzerService(loader *ingest.Loader, nlp domain.NLP, sum domain.Summarizer, opts Options, log *logging.Logger) *AnalyzerService {
	if log == nil {
		log = logging.NewDiscardLogger()
	}
	if opts.TopN <= 0 {
		opts.TopN = textstats.DefaultTopN
	}
	s := &AnalyzerService{loader: loader, nlp: nlp, summarizer: sum, opts: opts, log: log}
	s.newEmbedder = func() domain.Embedder { return tfidf.NewEmbedder(opts.Stopwords) }
	return s
}

// LoadDocuments reads every input and returns their joined text.
func (s *AnalyzerService) LoadDocuments(paths []string) (string, error) {
	docs, err := s.loader.LoadAll(paths)
	if err != nil {
		s.log.Error("load documents: %v", err)
		return "", err
	}
	for _, d := range docs {
		s.log.Info("loaded %s (%d bytes)", d.Path, len(d.Content))
	}
	return ingest.Join(docs), nil
}

// Analyze computes statistics, language and summary of text. Failures of the
// language and summary steps are reported inside the bundle.
func (s *AnalyzerService) Analyze(text string) domain.Bundle {
	st, err := textstats.ComputeStatisticsN(text, s.opts.TopN)
	if errors.Is(err, textstats.ErrEmptyText) {
		s.log.Debug("analyze: empty text")
		return domain.Bundle{Empty: true}
	}
	b := domain.Bundle{Stats: st, Language: s.DetectLanguage(text)}
	b.Summary, err = s.Summarize(text, 0)
	switch {
	case errors.Is(err, summarizer.ErrNothingToSummarize):
		b.SummaryNote = NoteNothingToSummarize
	case err != nil:
		b.SummaryNote = NoteSummaryFailed + err.Error()
	}
	s.log.Debug("analyze: %d chars, %d words, language %q, %d summary sentences",
		st.TotalChars, st.TotalWords, b.Language.Code, len(b.Summary))
	return b
}

// DetectLanguage never fails: problems become a warning on the result.
func (s *AnalyzerService) DetectLanguage(text string) domain.LanguageResult {
	res, err := s.nlp.DetectLanguage(text)
	switch {
	case errors.Is(err, nlp.ErrDetectionDisabled):
		return domain.LanguageResult{}
	case err != nil:
		s.log.Info("language detection failed: %v", err)
		return domain.LanguageResult{Warning: err.Error()}
	case !res.Reliable:
		res.Warning = "low-confidence detection"
	}
	return res
}

// Search counts and locates term in text and attaches the related sentences.
func (s *AnalyzerService) Search(text, term string) (*domain.SearchResult, error) {
	res, err := textstats.Search(text, term)
	if err != nil {
		s.log.Info("search rejected: %v", err)
		return nil, err
	}
	if s.opts.Related > 0 {
		res.Related = s.Related(text, res.Term, s.opts.Related)
	}
	s.log.Debug("search %q: %d words, %d spans", res.Term, res.Count, len(res.Spans))
	return res, nil
}

func (s *AnalyzerService) Summarize(text string, topN int) ([]domain.RankedSentence, error) {
	out, err := s.summarizer.Summarize(text, topN)
	if err != nil {
		s.log.Info("summarize: %v", err)
	}
	return out, err
}

// Related returns up to k sentences of text most similar to query, by
// TF-IDF cosine similarity, falling back to lexical overlap when the
// vectors share nothing.
func (s *AnalyzerService) Related(text, query string, k int) []domain.RankedSentence {
	sentences := chunker.Split(text)
	if len(sentences) == 0 || k <= 0 {
		return nil
	}
	emb := s.newEmbedder()
	if err := emb.Prepare(sentences); err != nil {
		return lexicalSearch(sentences, query, k)
	}
	idx := memory.NewIndex()
	if err := idx.Init(emb.Dimension()); err != nil {
		s.log.Error("related: %v", err)
		return nil
	}
	entries := make([]memory.Entry, len(sentences))
	vectors := make([][]float64, len(sentences))
	for i, sent := range sentences {
		vec, err := emb.Embed(sent)
		if err != nil {
			s.log.Error("related: %v", err)
			return nil
		}
		entries[i] = memory.Entry{Index: i, Text: sent}
		vectors[i] = vec
	}
	if err := idx.Upsert(entries, vectors); err != nil {
		s.log.Error("related: %v", err)
		return nil
	}
	s.log.Debug("related: indexed %d sentences", idx.Len())
	qv, err := emb.Embed(query)
	if err != nil || isZero(qv) {
		return lexicalSearch(sentences, query, k)
	}
	var out []domain.RankedSentence
	for _, r := range idx.Search(qv, k) {
		if r.Score > 1e-9 {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return lexicalSearch(sentences, query, k)
	}
	return out
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

func lexicalSearch(sentences []string, query string, k int) []domain.RankedSentence {
	qset := toTokenSet(query)
	out := make([]domain.RankedSentence, 0, len(sentences))
	for i, sent := range sentences {
		if score := overlapOchiai(qset, sent); score > 0 {
			out = append(out, domain.RankedSentence{Index: i, Text: sent, Score: score, Scored: true})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if k < len(out) {
		out = out[:k]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

func toTokenSet(s string) map[string]struct{} {
	tokens := textstats.LowerWords(s)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

// overlapOchiai is |A∩B| / sqrt(|A||B|) over the distinct tokens of query and text.
func overlapOchiai(qset map[string]struct{}, text string) float64 {
	seen := toTokenSet(strings.TrimSpace(text))
	if len(qset) == 0 || len(seen) == 0 {
		return 0
	}
	inter := 0
	for t := range seen {
		if _, ok := qset[t]; ok {
			inter++
		}
	}
	return float64(inter) / (math.Sqrt(float64(len(qset))) * math.Sqrt(float64(len(seen))))
}
