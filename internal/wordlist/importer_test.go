package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/marchenko/lexrec/internal/vocab"
)

type memorySink struct {
	words []vocab.WordItem
}

func (m *memorySink) UpsertWord(_ context.Context, w vocab.WordItem) error {
	m.words = append(m.words, w)
	return nil
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestImportWords_CSV(t *testing.T) {
	path := writeCSV(t, "text,pos,frequency,grade\nApple,noun,500,2\nrun,v,900,1\n")
	sink := &memorySink{}

	res, err := ImportWords(context.Background(), DefaultImportConfig(path), sink)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Processed != 2 || res.Imported != 2 {
		t.Errorf("result = %d/%d, want 2 processed 2 imported", res.Imported, res.Processed)
	}
	if len(sink.words) != 2 {
		t.Fatalf("sink words = %d, want 2", len(sink.words))
	}

	first := sink.words[0]
	if first.ID != "apple" || first.Text != "Apple" {
		t.Errorf("word = %+v, want lowercased ID with original text", first)
	}
	if first.POS != vocab.POSNoun || first.Frequency != 500 || first.Grade != 2 {
		t.Errorf("word fields = %+v, want noun/500/2", first)
	}
	if sink.words[1].POS != vocab.POSVerb {
		t.Errorf("abbreviated pos = %s, want verb", sink.words[1].POS)
	}
}

func TestImportWords_BadRowsCollected(t *testing.T) {
	path := writeCSV(t, "text,pos,frequency,grade\n"+
		"good,noun,100,3\n"+
		",noun,100,3\n"+
		"badfreq,noun,abc,3\n"+
		"badgrade,noun,100,15\n"+
		"short,noun\n")
	sink := &memorySink{}

	res, err := ImportWords(context.Background(), DefaultImportConfig(path), sink)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Processed != 5 {
		t.Errorf("processed = %d, want 5", res.Processed)
	}
	if res.Imported != 1 {
		t.Errorf("imported = %d, want 1", res.Imported)
	}
	if len(res.Errors) != 4 {
		t.Errorf("errors = %d, want 4: %v", len(res.Errors), res.Errors)
	}
}

func TestImportWords_NoHeader(t *testing.T) {
	path := writeCSV(t, "solo,adj,50,4\n")
	cfg := DefaultImportConfig(path)
	cfg.SkipHeader = false
	sink := &memorySink{}

	res, err := ImportWords(context.Background(), cfg, sink)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 {
		t.Errorf("imported = %d, want 1", res.Imported)
	}
	if sink.words[0].POS != vocab.POSAdjective {
		t.Errorf("pos = %s, want adjective", sink.words[0].POS)
	}
}

func TestImportWords_MissingFile(t *testing.T) {
	cfg := DefaultImportConfig(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := ImportWords(context.Background(), cfg, &memorySink{}); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParsePOS(t *testing.T) {
	tests := []struct {
		in   string
		want vocab.PartOfSpeech
	}{
		{"noun", vocab.POSNoun},
		{"N", vocab.POSNoun},
		{" Verb ", vocab.POSVerb},
		{"adj", vocab.POSAdjective},
		{"adv", vocab.POSAdverb},
		{"pronoun", vocab.POSOther},
	}
	for _, tt := range tests {
		if got := parsePOS(tt.in); got != tt.want {
			t.Errorf("parsePOS(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
