package engine

import "math"

// Vector is a sparse tf-idf vector over a fitted vocabulary. Keys are
// vocabulary indices, values are non-negative L2-normalized weights. An empty
// Vector is the all-zero vector of a document with no vocabulary terms.
type Vector map[int]float64

// Vectorize maps a token sequence into the vocabulary's vector space. Each
// known term is weighted tf * idf and the result is L2-normalized; tokens
// absent from the vocabulary are ignored and never extend it. The same
// transform applies to corpus documents and to query documents.
func (v *Vocabulary) Vectorize(tokens []string) Vector {
	vec := make(Vector)
	for _, tok := range tokens {
		if idx, ok := v.index[tok]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, tf := range vec {
		w := tf * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}

	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}

	return vec
}

// Norm returns the Euclidean norm of the vector.
func (vec Vector) Norm() float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// IsZero reports whether the vector has no non-zero components.
func (vec Vector) IsZero() bool {
	return len(vec) == 0
}
