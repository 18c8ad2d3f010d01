package engine

import (
	"runtime"
	"sync"
)

// Cosine returns the cosine similarity of two L2-normalized sparse vectors,
// which reduces to their dot product over shared indices. The zero vector is
// similar to nothing: any pairing with it scores 0.
func Cosine(a, b Vector) float64 {
	// Iterate the smaller vector.
	if len(a) > len(b) {
		a, b = b, a
	}

	var sum float64
	for idx, w := range a {
		if bw, ok := b[idx]; ok {
			sum += w * bw
		}
	}
	return sum
}

// Matrix computes cosine similarity for every (doc, query) pair, returning a
// len(docs) x len(queries) matrix. Rows are partitioned across a worker pool;
// vectors are shared read-only and each worker writes disjoint rows, so the
// result is identical to calling Cosine per cell regardless of worker count.
func Matrix(docs, queries []Vector, workers int) [][]float64 {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(docs) && len(docs) > 0 {
		workers = len(docs)
	}

	scores := make([][]float64, len(docs))
	if len(docs) == 0 {
		return scores
	}

	rows := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range rows {
				row := make([]float64, len(queries))
				for j := range queries {
					row[j] = Cosine(docs[i], queries[j])
				}
				scores[i] = row
			}
		}()
	}

	for i := range docs {
		rows <- i
	}
	close(rows)
	wg.Wait()

	return scores
}
