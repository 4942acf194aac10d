package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, ok := f.vectors[text]
		if !ok {
			vec = []float32{0, 0, 1}
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) Close() error { return nil }

func TestMatchSentences_RanksBySimilarity(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"requirement":  {1, 0, 0},
		"close match":  {0.9, 0.1, 0},
		"weaker match": {0.6, 0.8, 0},
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"weaker match", "close match"},
		[]string{"requirement"}, 5)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "close match", result.Matches[0].ResumeMatch)
	assert.Equal(t, 1, result.Matches[0].Rank)
	assert.Equal(t, "weaker match", result.Matches[1].ResumeMatch)
	assert.Equal(t, 2, result.Matches[1].Rank)
	assert.Greater(t, result.Matches[0].SimilarityScore, result.Matches[1].SimilarityScore)
	assert.Equal(t, 2, result.TotalMatches)
}

func TestMatchSentences_DiscardsAtOrBelowThreshold(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"requirement": {1, 0, 0},
		"unrelated":   {0, 1, 0}, // similarity 0
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"unrelated"}, []string{"requirement"}, 5)
	require.NoError(t, err)

	assert.Empty(t, result.Matches)
	assert.Equal(t, 0, result.TotalMatches)
}

func TestMatchSentences_MixedThresholdKeepsOnlyStrong(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"requirement": {1, 0, 0},
		"strong":      {1, 0.05, 0},
		"filtered":    {0.3, 1, 0}, // cosine ~0.29, below threshold
		"kept":        {0.75, 0.6, 0},
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"strong", "filtered", "kept"}, []string{"requirement"}, 5)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "strong", result.Matches[0].ResumeMatch)
	assert.Equal(t, 1, result.Matches[0].Rank)
	assert.Equal(t, "kept", result.Matches[1].ResumeMatch)
	assert.Equal(t, 2, result.Matches[1].Rank)
}

func TestMatchSentences_TopKLimitsPerRequirement(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"requirement": {1, 0, 0},
		"a":           {1, 0.1, 0},
		"b":           {1, 0.2, 0},
		"c":           {1, 0.3, 0},
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"a", "b", "c"}, []string{"requirement"}, 2)
	require.NoError(t, err)

	assert.Len(t, result.Matches, 2)
}

func TestMatchSentences_StableTieKeepsInputOrder(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"requirement": {1, 0, 0},
		"first":       {1, 0, 0},
		"second":      {1, 0, 0},
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"first", "second"}, []string{"requirement"}, 5)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "first", result.Matches[0].ResumeMatch)
	assert.Equal(t, "second", result.Matches[1].ResumeMatch)
}

func TestMatchSentences_GroupsByRequirementInInputOrder(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"req one":   {1, 0, 0},
		"req two":   {0, 1, 0},
		"candidate": {1, 1, 0},
	}}
	m := New(emb)

	result, err := m.MatchSentences(context.Background(),
		[]string{"candidate"}, []string{"req one", "req two"}, 5)
	require.NoError(t, err)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "req one", result.Matches[0].JobRequirement)
	assert.Equal(t, "req two", result.Matches[1].JobRequirement)
}

func TestMatchSentences_EmptyInputs(t *testing.T) {
	m := New(&fakeEmbedder{})

	result, err := m.MatchSentences(context.Background(), nil, []string{"req"}, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Matches)

	result, err = m.MatchSentences(context.Background(), []string{"cand"}, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
}

func TestMatchSentences_EmbedderFailure(t *testing.T) {
	m := New(&fakeEmbedder{err: errors.New("backend down")})

	_, err := m.MatchSentences(context.Background(), []string{"a"}, []string{"b"}, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}

func TestOverallSimilarity_ScalesToPercentage(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"doc a": {1, 0, 0},
		"doc b": {1, 0, 0},
	}}
	m := New(emb)

	score, err := m.OverallSimilarity(context.Background(), "doc a", "doc b")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, score, 1e-9)
}

func TestOverallSimilarity_NegativeClampsToZero(t *testing.T) {
	emb := &fakeEmbedder{vectors: map[string][]float32{
		"doc a": {1, 0, 0},
		"doc b": {-1, 0, 0},
	}}
	m := New(emb)

	score, err := m.OverallSimilarity(context.Background(), "doc a", "doc b")
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}
