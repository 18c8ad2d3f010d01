package engine

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyCorpus is returned when a vocabulary fit is attempted on zero
// documents. It is fatal to the ranking request and must not be retried.
var ErrEmptyCorpus = errors.New("empty corpus: at least one document is required")

// Document is a normalized input record: an id and the token sequence
// produced by Tokenize.
type Document struct {
	ID     string
	Tokens []string
}

// Vocabulary maps terms learned from a training corpus to dense 0-based
// indices and smoothed IDF weights. It is fit once and frozen; every vector
// produced against it has the same fixed dimension.
type Vocabulary struct {
	index map[string]int
	idf   []float64
}

// Fit builds a vocabulary from the corpus. Terms are the distinct tokens
// across all documents; indices follow lexicographic term order, so repeated
// fits on identical input reproduce an identical vocabulary.
//
// IDF is smoothed: idf(t) = ln((1+N)/(1+df(t))) + 1, which keeps every weight
// strictly positive and finite even for terms present in every document.
func Fit(corpus []Document) (*Vocabulary, error) {
	if len(corpus) == 0 {
		return nil, ErrEmptyCorpus
	}

	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{}, len(doc.Tokens))
		for _, tok := range doc.Tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vocabulary{
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}

	n := float64(len(corpus))
	for i, term := range terms {
		v.index[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return v, nil
}

// Dimension returns the number of terms in the vocabulary.
func (v *Vocabulary) Dimension() int {
	return len(v.idf)
}

// Index returns the dense index assigned to the term.
func (v *Vocabulary) Index(term string) (int, bool) {
	idx, ok := v.index[term]
	return idx, ok
}

// IDF returns the smoothed inverse document frequency of the term.
func (v *Vocabulary) IDF(term string) (float64, bool) {
	idx, ok := v.index[term]
	if !ok {
		return 0, false
	}
	return v.idf[idx], true
}

// Terms returns the vocabulary terms in index order.
func (v *Vocabulary) Terms() []string {
	terms := make([]string, len(v.idf))
	for term, idx := range v.index {
		terms[idx] = term
	}
	return terms
}
