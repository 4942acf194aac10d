// Package screening orchestrates the full resume screening pipeline:
// signal extraction, skill gap analysis, semantic matching, score
// composition, and explanation generation. A Screener is immutable after
// construction and safe to call from concurrent request handlers.
package screening

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/surendra-bolla/NeuralScan/internal/embedding"
	"github.com/surendra-bolla/NeuralScan/internal/explain"
	"github.com/surendra-bolla/NeuralScan/internal/matching"
	"github.com/surendra-bolla/NeuralScan/internal/nlp"
	"github.com/surendra-bolla/NeuralScan/internal/scoring"
	"github.com/surendra-bolla/NeuralScan/internal/skills"
	"github.com/surendra-bolla/NeuralScan/internal/taxonomy"
	"github.com/surendra-bolla/NeuralScan/internal/types"
)

// ErrEmptyJobDescription is returned before any extraction or embedding work
// when the job description is empty or whitespace-only.
var ErrEmptyJobDescription = errors.New("job description is required")

// ErrTooFewResumes is returned by CompareResumes when fewer than two resumes
// are supplied.
var ErrTooFewResumes = errors.New("at least 2 resumes are required for comparison")

// topMatchesReported caps how many sentence matches feed the explanation and
// the analysis payload.
const topMatchesReported = 5

// defaultBatchConcurrency bounds the parallel pipelines in batch screening.
const defaultBatchConcurrency = 4

// BatchItem is one resume submitted for batch screening, already reduced to
// plain text by the ingestion layer.
type BatchItem struct {
	Filename string
	Text     string
}

// Screener runs screening requests. Construct once and share; the taxonomy
// and embedder are read-only after initialization.
type Screener struct {
	tax       *taxonomy.Taxonomy
	extractor *nlp.Extractor
	matcher   *matching.Matcher
	topK      int
	logger    *log.Logger
}

// Option configures a Screener.
type Option func(*Screener)

// WithTopK overrides the per-requirement sentence match count.
func WithTopK(topK int) Option {
	return func(s *Screener) {
		if topK > 0 {
			s.topK = topK
		}
	}
}

// WithLogger overrides the logger used for batch failure reporting.
func WithLogger(logger *log.Logger) Option {
	return func(s *Screener) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Screener over the given taxonomy and embedding backend.
func New(tax *taxonomy.Taxonomy, emb embedding.Embedder, opts ...Option) *Screener {
	s := &Screener{
		tax:       tax,
		extractor: nlp.NewExtractor(tax),
		matcher:   matching.New(emb),
		topK:      matching.DefaultTopK,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Taxonomy returns the taxonomy this screener matches against.
func (s *Screener) Taxonomy() *taxonomy.Taxonomy {
	return s.tax
}

// ParseResume extracts all structured signals from resume text.
func (s *Screener) ParseResume(text string) *types.ResumeData {
	return &types.ResumeData{
		RawText:         text,
		Skills:          s.extractor.ExtractSkills(text),
		Education:       nlp.DetectEducation(text),
		ExperienceYears: nlp.ExtractExperienceYears(text),
		Entities:        nlp.ExtractEntities(text),
		Sentences:       nlp.SplitSentences(text),
	}
}

// Screen runs the full pipeline for one resume against one job description.
// Skill analysis and semantic matching are independent and run concurrently;
// everything downstream consumes both.
func (s *Screener) Screen(ctx context.Context, resumeText, jobDescription string) (*types.ScreeningResult, error) {
	return s.ScreenWithTopK(ctx, resumeText, jobDescription, s.topK)
}

// ScreenWithTopK is Screen with a per-request sentence match count. A
// non-positive topK falls back to the screener's configured value.
func (s *Screener) ScreenWithTopK(ctx context.Context, resumeText, jobDescription string, topK int) (*types.ScreeningResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}
	if topK <= 0 {
		topK = s.topK
	}

	resume := s.ParseResume(resumeText)
	jobSkills := s.extractor.ExtractSkills(jobDescription)
	jobSentences := nlp.SplitSentences(jobDescription)

	var (
		gap           types.SkillGapResult
		skillMatchPct float64
		matchResult   *types.SentenceMatchResult
		semanticPct   float64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		gap = skills.AnalyzeGap(resume.Skills, jobSkills)
		skillMatchPct = skills.MatchPercentage(resume.Skills, jobSkills, s.tax)
		return nil
	})

	g.Go(func() error {
		var err error
		matchResult, err = s.matcher.MatchSentences(gCtx, resume.Sentences, jobSentences, topK)
		if err != nil {
			return fmt.Errorf("sentence matching failed: %w", err)
		}
		semanticPct, err = s.matcher.OverallSimilarity(gCtx, resume.RawText, jobDescription)
		if err != nil {
			return fmt.Errorf("overall similarity failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	experiencePct := scoring.ExperienceScore(resume.ExperienceYears)
	educationPct := scoring.EducationScore(resume.Education)
	overall := scoring.Compose(skillMatchPct, semanticPct, experiencePct, educationPct)

	topMatches := matchResult.Matches
	if len(topMatches) > topMatchesReported {
		topMatches = topMatches[:topMatchesReported]
	}

	explanation := explain.Generate(explain.Input{
		OverallScore:       overall,
		SkillMatchPct:      skillMatchPct,
		ExperiencePct:      experiencePct,
		EducationPct:       educationPct,
		SemanticPct:        semanticPct,
		Matched:            gap.Matched,
		Missing:            gap.Missing,
		YearsExperience:    resume.ExperienceYears,
		TopSentenceMatches: topMatches,
	})

	return &types.ScreeningResult{
		MatchScore:    explanation.OverallScore,
		Verdict:       explanation.Verdict,
		VerdictReason: explanation.VerdictReason,
		Explanation:   explanation,
		SkillGap:      gap,
		Analysis: types.ScreeningAnalysis{
			TotalResumeSentences: len(resume.Sentences),
			TotalJobSentences:    len(jobSentences),
			SemanticMatches:      matchResult.TotalMatches,
			YearsOfExperience:    resume.ExperienceYears,
			Education:            resume.Education,
			TopMatches:           topMatches,
		},
	}, nil
}

// ScreenBatch screens multiple resumes against one job description as an
// independent parallel map. A failing item is logged and skipped; remaining
// items continue, so TotalProcessed may be lower than the submitted count.
// Results are ordered by match score descending.
func (s *Screener) ScreenBatch(ctx context.Context, items []BatchItem, jobDescription string) (*types.BatchResult, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyJobDescription
	}

	var (
		mu      sync.Mutex
		results []types.BatchItemResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchConcurrency)

	for _, item := range items {
		item := item
		g.Go(func() error {
			res, err := s.Screen(gCtx, item.Text, jobDescription)
			if err != nil {
				// Partial-failure semantics: isolate, log, continue.
				s.logger.Printf("batch screening: skipping %s: %v", item.Filename, err)
				return nil
			}
			mu.Lock()
			results = append(results, types.BatchItemResult{
				Filename:             item.Filename,
				MatchScore:           res.MatchScore,
				Verdict:              res.Verdict,
				SkillMatchPercentage: res.Explanation.ScoreBreakdown.SkillMatch,
				YearsOfExperience:    res.Analysis.YearsOfExperience,
			})
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only observes context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return &types.BatchResult{
		TotalProcessed: len(results),
		Results:        results,
	}, nil
}

// CompareResumes summarizes multiple resumes for relative ranking without a
// job description. Requires at least two resumes.
func (s *Screener) CompareResumes(items []BatchItem) ([]types.ResumeComparison, error) {
	if len(items) < 2 {
		return nil, ErrTooFewResumes
	}

	comparisons := make([]types.ResumeComparison, 0, len(items))
	for _, item := range items {
		data := s.ParseResume(item.Text)
		comparisons = append(comparisons, types.ResumeComparison{
			Filename:        item.Filename,
			ExperienceYears: data.ExperienceYears,
			TotalSkills:     data.Skills.TotalSkills(),
			HasEducation:    len(data.Education) > 0,
			SkillsSummary:   data.Skills,
		})
	}
	return comparisons, nil
}
