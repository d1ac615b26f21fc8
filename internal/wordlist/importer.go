// Package wordlist imports vocabulary catalogs from spreadsheet files.
package wordlist

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/marchenko/lexrec/internal/vocab"
)

// ImportConfig describes the expected sheet layout: one word per row
// with text, part of speech, frequency, and grade columns.
type ImportConfig struct {
	FilePath   string
	SheetName  string
	SkipHeader bool
}

// DefaultImportConfig returns the standard layout.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:   path,
		SheetName:  "Sheet1",
		SkipHeader: true,
	}
}

// WordSink receives imported catalog entries.
type WordSink interface {
	UpsertWord(ctx context.Context, w vocab.WordItem) error
}

// ImportResult summarizes an import run.
type ImportResult struct {
	Processed int
	Imported  int
	Errors    []string
}

// ImportWords reads a .xlsx or .csv word list into the sink.
func ImportWords(ctx context.Context, cfg ImportConfig, sink WordSink) (*ImportResult, error) {
	if strings.ToLower(filepath.Ext(cfg.FilePath)) == ".csv" {
		return importFromCSV(ctx, cfg, sink)
	}
	return importFromExcel(ctx, cfg, sink)
}

func importFromExcel(ctx context.Context, cfg ImportConfig, sink WordSink) (*ImportResult, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", cfg.SheetName, err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 && cfg.SkipHeader {
			continue
		}
		importRow(ctx, sink, row, i+1, result)
	}
	return result, nil
}

func importFromCSV(ctx context.Context, cfg ImportConfig, sink WordSink) (*ImportResult, error) {
	f, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	result := &ImportResult{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++
		if line == 1 && cfg.SkipHeader {
			continue
		}
		importRow(ctx, sink, row, line, result)
	}
	return result, nil
}

// importRow parses one row and upserts it. Bad rows are collected as
// errors, not fatal to the rest of the file.
func importRow(ctx context.Context, sink WordSink, row []string, line int, result *ImportResult) {
	result.Processed++

	w, err := parseRow(row)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}
	if err := sink.UpsertWord(ctx, w); err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", line, err))
		return
	}
	result.Imported++
}

func parseRow(row []string) (vocab.WordItem, error) {
	if len(row) < 4 {
		return vocab.WordItem{}, fmt.Errorf("expected 4 columns (text, pos, frequency, grade), got %d", len(row))
	}

	text := strings.TrimSpace(row[0])
	if text == "" {
		return vocab.WordItem{}, fmt.Errorf("empty word text")
	}

	pos := parsePOS(row[1])

	freq, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil || freq < 0 {
		return vocab.WordItem{}, fmt.Errorf("invalid frequency %q", row[2])
	}

	grade, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil || grade < 1 || grade > 12 {
		return vocab.WordItem{}, fmt.Errorf("invalid grade %q (want 1-12)", row[3])
	}

	return vocab.WordItem{
		ID:        strings.ToLower(text),
		Text:      text,
		POS:       pos,
		Frequency: freq,
		Grade:     grade,
	}, nil
}

func parsePOS(s string) vocab.PartOfSpeech {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun", "n":
		return vocab.POSNoun
	case "verb", "v":
		return vocab.POSVerb
	case "adjective", "adj":
		return vocab.POSAdjective
	case "adverb", "adv":
		return vocab.POSAdverb
	default:
		return vocab.POSOther
	}
}
