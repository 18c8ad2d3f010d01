package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testCorpus() []Document {
	return []Document{
		{ID: "1", Tokens: []string{"python", "sql"}},
		{ID: "2", Tokens: []string{"java", "python"}},
		{ID: "3", Tokens: []string{"python", "sql", "machine", "learning"}},
	}
}

func TestFitEmptyCorpus(t *testing.T) {
	t.Parallel()

	if _, err := Fit(nil); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}

	if _, err := Fit([]Document{}); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestFitAssignsDenseSortedIndices(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"java", "learning", "machine", "python", "sql"}
	if got := vocab.Terms(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected terms %v, got %v", expected, got)
	}

	if vocab.Dimension() != len(expected) {
		t.Fatalf("expected dimension %d, got %d", len(expected), vocab.Dimension())
	}

	for i, term := range expected {
		idx, ok := vocab.Index(term)
		if !ok {
			t.Fatalf("expected term %q in vocabulary", term)
		}
		if idx != i {
			t.Fatalf("expected index %d for %q, got %d", i, term, idx)
		}
	}
}

func TestFitSmoothedIDF(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// idf(t) = ln((1+N)/(1+df)) + 1 with N = 3.
	tests := []struct {
		term string
		df   int
	}{
		{term: "python", df: 3},
		{term: "sql", df: 2},
		{term: "java", df: 1},
		{term: "machine", df: 1},
		{term: "learning", df: 1},
	}

	for _, tt := range tests {
		idf, ok := vocab.IDF(tt.term)
		if !ok {
			t.Fatalf("expected IDF for %q", tt.term)
		}
		expected := math.Log(4/(1+float64(tt.df))) + 1
		if math.Abs(idf-expected) > 1e-12 {
			t.Fatalf("idf(%q): expected %v, got %v", tt.term, expected, idf)
		}
		if idf <= 0 {
			t.Fatalf("idf(%q) must be strictly positive, got %v", tt.term, idf)
		}
	}
}

func TestIDFDecreasesWithDocumentFrequency(t *testing.T) {
	t.Parallel()

	// Fixed N = 4; "common" appears in every document, "rare" in one.
	corpus := []Document{
		{ID: "1", Tokens: []string{"common", "rare"}},
		{ID: "2", Tokens: []string{"common", "mid"}},
		{ID: "3", Tokens: []string{"common", "mid"}},
		{ID: "4", Tokens: []string{"common"}},
	}

	vocab, err := Fit(corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rare, _ := vocab.IDF("rare")
	mid, _ := vocab.IDF("mid")
	common, _ := vocab.IDF("common")

	if !(rare > mid && mid > common) {
		t.Fatalf("expected idf to strictly decrease with df: rare=%v mid=%v common=%v", rare, mid, common)
	}

	if common <= 0 {
		t.Fatalf("term present in every document must keep positive idf, got %v", common)
	}
}

func TestFitDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Terms(), second.Terms()) {
		t.Fatalf("expected identical term order across fits")
	}

	for _, term := range first.Terms() {
		a, _ := first.IDF(term)
		b, _ := second.IDF(term)
		if a != b {
			t.Fatalf("idf(%q) differs across fits: %v vs %v", term, a, b)
		}
	}
}

func TestFitIgnoresDuplicateTokensForDF(t *testing.T) {
	t.Parallel()

	corpus := []Document{
		{ID: "1", Tokens: []string{"go", "go", "go"}},
		{ID: "2", Tokens: []string{"rust"}},
	}

	vocab, err := Fit(corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	goIDF, _ := vocab.IDF("go")
	rustIDF, _ := vocab.IDF("rust")
	if goIDF != rustIDF {
		t.Fatalf("df counts documents, not occurrences: go=%v rust=%v", goIDF, rustIDF)
	}
}
