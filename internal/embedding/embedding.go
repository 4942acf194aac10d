// Package embedding defines the sentence-embedding capability boundary used
// by semantic matching. The production backend is Google's embedding API; the
// interface allows test doubles that return deterministic canned vectors.
package embedding

import (
	"context"
	"math"
)

// Embedder computes vector embeddings for batches of texts. Implementations
// must be safe for concurrent use.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// CosineSimilarity computes the cosine similarity between two vectors.
// Returns 0 when either vector is zero-length or zero-magnitude. The result
// is clamped to [-1,1] to absorb floating-point drift.
func CosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim > 1 {
		sim = 1
	}
	if sim < -1 {
		sim = -1
	}
	return sim
}
