package engine

import (
	"math"
	"testing"
)

func TestVectorizeUnitNorm(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, doc := range testCorpus() {
		vec := vocab.Vectorize(doc.Tokens)
		if norm := vec.Norm(); math.Abs(norm-1) > 1e-12 {
			t.Fatalf("document %s: expected unit norm, got %v", doc.ID, norm)
		}
	}
}

func TestVectorizeWeights(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reference computation for {"python", "sql"}: raw weight per term is
	// tf * idf, then the vector is divided by its Euclidean norm.
	pythonIDF, _ := vocab.IDF("python")
	sqlIDF, _ := vocab.IDF("sql")
	norm := math.Sqrt(pythonIDF*pythonIDF + sqlIDF*sqlIDF)

	vec := vocab.Vectorize([]string{"python", "sql"})

	pythonIdx, _ := vocab.Index("python")
	sqlIdx, _ := vocab.Index("sql")

	if got := vec[pythonIdx]; math.Abs(got-pythonIDF/norm) > 1e-12 {
		t.Fatalf("python weight: expected %v, got %v", pythonIDF/norm, got)
	}
	if got := vec[sqlIdx]; math.Abs(got-sqlIDF/norm) > 1e-12 {
		t.Fatalf("sql weight: expected %v, got %v", sqlIDF/norm, got)
	}
}

func TestVectorizeCountsRepeatedTerms(t *testing.T) {
	t.Parallel()

	corpus := []Document{
		{ID: "1", Tokens: []string{"go", "sql"}},
		{ID: "2", Tokens: []string{"sql"}},
	}
	vocab, err := Fit(corpus)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	single := vocab.Vectorize([]string{"go", "sql"})
	repeated := vocab.Vectorize([]string{"go", "go", "go", "sql"})

	goIdx, _ := vocab.Index("go")
	if repeated[goIdx] <= single[goIdx] {
		t.Fatalf("raw tf must raise the relative weight of a repeated term: %v <= %v", repeated[goIdx], single[goIdx])
	}
}

func TestVectorizeUnknownTermsIgnored(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	withUnknown := vocab.Vectorize([]string{"python", "kubernetes"})
	without := vocab.Vectorize([]string{"python"})

	if len(withUnknown) != len(without) {
		t.Fatalf("unknown terms must not add components: %v vs %v", withUnknown, without)
	}

	if vocab.Dimension() != 5 {
		t.Fatalf("query terms must not extend the vocabulary, dimension is %d", vocab.Dimension())
	}
}

func TestVectorizeNoKnownTerms(t *testing.T) {
	t.Parallel()

	vocab, err := Fit(testCorpus())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	vec := vocab.Vectorize([]string{"kubernetes", "terraform"})
	if !vec.IsZero() {
		t.Fatalf("expected zero vector, got %v", vec)
	}
	if norm := vec.Norm(); norm != 0 {
		t.Fatalf("expected zero norm, got %v", norm)
	}

	empty := vocab.Vectorize(nil)
	if !empty.IsZero() {
		t.Fatalf("expected zero vector for empty token slice, got %v", empty)
	}
}
