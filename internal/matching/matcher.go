// Package matching computes sentence-level and document-level semantic
// similarity between a resume and a job description using an injected
// embedding backend.
package matching

import (
	"context"
	"fmt"
	"sort"

	"github.com/surendra-bolla/NeuralScan/internal/embedding"
	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// DefaultTopK is the number of candidate sentences considered per job
// requirement sentence.
const DefaultTopK = 5

// MinSimilarity is the exclusive lower bound for reported sentence matches.
// Matches at or below this score are discarded, not deprioritized.
const MinSimilarity = 0.3

// Matcher pairs resume sentences with job requirement sentences by embedding
// similarity. Safe for concurrent use when the Embedder is.
type Matcher struct {
	emb embedding.Embedder
}

// New creates a Matcher over the given embedder.
func New(emb embedding.Embedder) *Matcher {
	return &Matcher{emb: emb}
}

// MatchSentences scores every candidate sentence against every requirement
// sentence and keeps, per requirement, the topK most similar candidates with
// similarity above MinSimilarity. Rank is the 1-based position within the
// requirement's top-k list; ties keep original candidate order. Output is
// grouped by requirement sentence in input order, descending similarity
// within each group.
func (m *Matcher) MatchSentences(ctx context.Context, candidateSentences, requirementSentences []string, topK int) (*types.SentenceMatchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	result := &types.SentenceMatchResult{Matches: []types.SentenceMatch{}}
	if len(candidateSentences) == 0 || len(requirementSentences) == 0 {
		return result, nil
	}

	candidateVecs, err := m.emb.Embed(ctx, candidateSentences)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate sentences: %w", err)
	}
	requirementVecs, err := m.emb.Embed(ctx, requirementSentences)
	if err != nil {
		return nil, fmt.Errorf("failed to embed requirement sentences: %w", err)
	}

	for reqIdx, reqSentence := range requirementSentences {
		similarities := make([]float64, len(candidateVecs))
		for candIdx := range candidateVecs {
			similarities[candIdx] = embedding.CosineSimilarity(candidateVecs[candIdx], requirementVecs[reqIdx])
		}

		order := make([]int, len(similarities))
		for i := range order {
			order[i] = i
		}
		// Stable sort keeps original candidate order on equal scores.
		sort.SliceStable(order, func(a, b int) bool {
			return similarities[order[a]] > similarities[order[b]]
		})

		limit := topK
		if limit > len(order) {
			limit = len(order)
		}
		for rank := 0; rank < limit; rank++ {
			candIdx := order[rank]
			score := similarities[candIdx]
			if score <= MinSimilarity {
				continue
			}
			result.Matches = append(result.Matches, types.SentenceMatch{
				JobRequirement:  reqSentence,
				ResumeMatch:     candidateSentences[candIdx],
				SimilarityScore: score,
				Rank:            rank + 1,
			})
		}
	}

	result.TotalMatches = len(result.Matches)
	return result, nil
}

// OverallSimilarity embeds both full texts as single units and returns their
// cosine similarity scaled to a percentage, clamped to [0,100].
func (m *Matcher) OverallSimilarity(ctx context.Context, textA, textB string) (float64, error) {
	vecs, err := m.emb.Embed(ctx, []string{textA, textB})
	if err != nil {
		return 0, fmt.Errorf("failed to embed documents: %w", err)
	}
	if len(vecs) != 2 {
		return 0, fmt.Errorf("expected 2 document embeddings, got %d", len(vecs))
	}

	score := embedding.CosineSimilarity(vecs[0], vecs[1]) * 100
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, nil
}
