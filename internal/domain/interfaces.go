package domain

// Document represents a single text source loaded into the system.
type Document struct {
	ID      string
	Path    string
	Content string
}

// FrequencyEntry is one row of a letter or word frequency table.
type FrequencyEntry struct {
	Key   string
	Count int
}

// Stats holds the descriptive statistics of a text.
type Stats struct {
	TotalChars   int
	TotalLetters int
	TotalDigits  int
	TotalSpaces  int
	TotalSpecial int
	TotalWords   int

	// HasWords reports whether AverageWordLength, LongestWord and
	// ShortestWord are defined.
	HasWords          bool
	AverageWordLength float64
	LongestWord       string
	ShortestWord      string

	LetterCounts map[string]int
	WordCounts   map[string]int

	// Letters and Words are sorted alphabetically.
	Letters []FrequencyEntry
	Words   []FrequencyEntry
	// TopLetters and TopWords are sorted by descending count, ties by first occurrence.
	TopLetters []FrequencyEntry
	TopWords   []FrequencyEntry
}

// Span is a half-open range [Start, End) of rune offsets into a text.
type Span struct {
	Start int
	End   int
}

// SearchResult is the outcome of a term search.
type SearchResult struct {
	Term string
	// Count is the number of whole-word matches.
	Count int
	// Spans are the case-insensitive substring matches, left to right, non-overlapping.
	Spans []Span
	// Related holds the sentences most similar to the term, best first.
	Related []RankedSentence
}

// RankedSentence is a sentence selected by the summarizer or a similarity lookup.
type RankedSentence struct {
	// Index is the position of the sentence in the source text.
	Index int
	Text  string
	Score float64
	// Rank is the 1-based position by descending score.
	Rank int
	// Scored is false when the sentence was returned without weighting.
	Scored bool
}

// LanguageResult is the outcome of language detection.
type LanguageResult struct {
	Code       string
	Name       string
	Confidence float64
	Reliable   bool
	// Warning is set when detection failed or is not trustworthy.
	Warning string
}

// Bundle is everything computed for one text.
type Bundle struct {
	// Empty is set when the text had nothing to analyze; Stats is nil then.
	Empty       bool
	Stats       *Stats
	Language    LanguageResult
	Summary     []RankedSentence
	SummaryNote string
}

// LanguageDetector identifies the natural language of a text.
type LanguageDetector interface {
	Detect(text string) (LanguageResult, error)
}

// SentenceScorer returns one score per sentence, in the order given.
type SentenceScorer interface {
	Name() string
	ScoreSentences(sentences []string) ([]float64, error)
}

// NLP is the narrow port over the language and term-weighting libraries.
type NLP interface {
	DetectLanguage(text string) (LanguageResult, error)
	ScoreSentences(sentences []string) ([]float64, error)
}

// Embedder converts free text into a numeric vector representation.
// Implementations require a preparation phase over the corpus.
type Embedder interface {
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
}

// Summarizer selects the most important sentences of a text.
type Summarizer interface {
	Summarize(text string, topN int) ([]RankedSentence, error)
}

// Analyzer defines the operations exposed by the application core.
type Analyzer interface {
	LoadDocuments(paths []string) (string, error)
	Analyze(text string) Bundle
	Search(text, term string) (*SearchResult, error)
	Summarize(text string, topN int) ([]RankedSentence, error)
}
