// Package session owns the fitted state of one screening session: the
// vocabulary learned from the uploaded resume set and the cached resume
// vectors. Both are built once per dataset and frozen; queries only read.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vishakha-Patel-66/ResumeRanking/internal/corpus"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/engine"
	"github.com/Vishakha-Patel-66/ResumeRanking/internal/ranking"
)

// ErrNotFitted is returned when a query arrives before any resume set has
// been fitted.
var ErrNotFitted = errors.New("session is not fitted: load a resume set first")

type Session struct {
	logger  *zap.Logger
	workers int

	resumes *corpus.Resumes
	vocab   *engine.Vocabulary
	vectors []engine.Vector
}

// New creates an unfitted session. workers bounds the similarity worker pool;
// zero or negative means one worker per CPU.
func New(logger *zap.Logger, workers int) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{logger: logger, workers: workers}
}

// Fit learns the vocabulary from the resume set and vectorizes every resume
// once. Re-fitting replaces the previous vocabulary and vector cache
// wholesale; there is no incremental update.
func (s *Session) Fit(resumes *corpus.Resumes) error {
	if resumes == nil || resumes.Len() == 0 {
		return engine.ErrEmptyCorpus
	}

	docs := make([]engine.Document, 0, resumes.Len())
	for _, resume := range resumes.Items {
		docs = append(docs, engine.Document{
			ID:     resume.ID,
			Tokens: engine.Tokenize(resume.Skills),
		})
	}

	vocab, err := engine.Fit(docs)
	if err != nil {
		return fmt.Errorf("fitting vocabulary: %w", err)
	}

	vectors := make([]engine.Vector, 0, len(docs))
	for _, doc := range docs {
		vectors = append(vectors, vocab.Vectorize(doc.Tokens))
	}

	s.resumes = resumes
	s.vocab = vocab
	s.vectors = vectors

	s.logger.Debug("fitted resume corpus",
		zap.Int("documents", resumes.Len()),
		zap.Int("vocabulary_terms", vocab.Dimension()),
	)

	return nil
}

// Fitted reports whether a resume set has been fitted.
func (s *Session) Fitted() bool {
	return s.vocab != nil
}

// Resumes returns the fitted resume set.
func (s *Session) Resumes() *corpus.Resumes {
	return s.resumes
}

// Scores computes the similarity of every fitted resume against the job's
// required skills, in corpus order. A job with no vocabulary-recognized terms
// scores 0 everywhere; that is a valid degenerate result, not an error.
func (s *Session) Scores(job *corpus.Job) ([]float64, error) {
	matrix, err := s.ScoreMatrix(&corpus.Jobs{Items: []*corpus.Job{job}})
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(matrix))
	for i, row := range matrix {
		scores[i] = row[0]
	}
	return scores, nil
}

// ScoreMatrix computes the full resumes x jobs similarity matrix using the
// batched primitive, one query vector per job against the cached resume
// vectors.
func (s *Session) ScoreMatrix(jobs *corpus.Jobs) ([][]float64, error) {
	if !s.Fitted() {
		return nil, ErrNotFitted
	}
	if jobs == nil || jobs.Len() == 0 {
		return nil, errors.New("at least one job is required")
	}

	queries := make([]engine.Vector, 0, jobs.Len())
	for _, job := range jobs.Items {
		queries = append(queries, s.vocab.Vectorize(engine.Tokenize(job.Skills)))
	}

	return engine.Matrix(s.vectors, queries, s.workers), nil
}

// Rank scores the resume set against the job and orders it descending by
// similarity, ties kept in corpus order.
func (s *Session) Rank(job *corpus.Job) (*ranking.Result, error) {
	scores, err := s.Scores(job)
	if err != nil {
		return nil, err
	}

	result, err := ranking.Rank(scores, s.resumes.IDs())
	if err != nil {
		return nil, fmt.Errorf("ranking: %w", err)
	}
	return result, nil
}
