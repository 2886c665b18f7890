package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Chapter 1</w:t></w:r></w:p><w:p><w:r><w:t>Hello world.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := parseDOCX(raw)
	if err != nil {
		t.Fatalf("parseDOCX failed: %v", err)
	}
	if got != "Chapter 1\nHello world." {
		t.Fatalf("parseDOCX = %q", got)
	}
}

func TestLoadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("Hello there. General Kenobi!"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if doc.Content != "Hello there. General Kenobi!" || doc.Path != path || doc.ID == "" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xlsx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
}

func TestLoadAllGlobAndStdin(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{"b.txt": "second", "a.txt": "first"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	l := NewLoader(strings.NewReader("from stdin"))
	docs, err := l.LoadAll([]string{filepath.Join(dir, "*.txt"), StdinPath})
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if got := Join(docs); got != "first\nsecond\nfrom stdin" {
		t.Fatalf("Join = %q", got)
	}
}

func TestLoadAllEmpty(t *testing.T) {
	if _, err := NewLoader(nil).LoadAll(nil); !errors.Is(err, ErrNoDocuments) {
		t.Fatalf("err = %v, want ErrNoDocuments", err)
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
