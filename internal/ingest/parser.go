// Package ingest loads text sources: plain text, PDF, DOCX and stdin.
package ingest

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"textmetrics/internal/domain"
)

// StdinPath names standard input in a path list.
const StdinPath = "-"

var (
	ErrUnsupported = errors.New("unsupported file type")
	ErrNoDocuments = errors.New("no documents found")
)

// Loader reads documents from paths.
type Loader struct {
	stdin io.Reader
}

// NewLoader returns a loader that reads "-" from stdin.
func NewLoader(stdin io.Reader) *Loader {
	return &Loader{stdin: stdin}
}

// LoadAll expands glob patterns and loads every matching document in order.
func (l *Loader) LoadAll(paths []string) ([]domain.Document, error) {
	var docs []domain.Document
	for _, p := range paths {
		if p == StdinPath {
			doc, err := l.loadStdin()
			if err != nil {
				return nil, err
			}
			docs = append(docs, *doc)
			continue
		}
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		sort.Strings(matches)
		for _, m := range matches {
			doc, err := Load(m)
			if err != nil {
				return nil, err
			}
			docs = append(docs, *doc)
		}
	}
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}
	return docs, nil
}

func (l *Loader) loadStdin() (*domain.Document, error) {
	if l.stdin == nil {
		return nil, fmt.Errorf("read stdin: no reader")
	}
	data, err := io.ReadAll(l.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return &domain.Document{ID: hashString(StdinPath), Path: StdinPath, Content: string(data)}, nil
}

// Load reads a single file and extracts its text.
func Load(path string) (*domain.Document, error) {
	var (
		text string
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt", ".md", ".text", "":
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
	case ".pdf":
		text, err = parsePDF(path)
	case ".docx":
		var raw []byte
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text, err = parseDOCX(raw)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		return nil, err
	}
	return &domain.Document{ID: hashString(path), Path: path, Content: text}, nil
}

// Join concatenates document contents, one document per paragraph.
func Join(docs []domain.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, d.Content)
	}
	return strings.Join(parts, "\n")
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, openErr := f.Open()
		if openErr != nil {
			return "", fmt.Errorf("open document.xml: %w", openErr)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
			if t.Name.Local == "p" && b.Len() > 0 {
				b.WriteString("\n")
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
