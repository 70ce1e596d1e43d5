package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"quiz-zone/internal/domain"

	"go.uber.org/zap"
)

// Job names accepted by the runner, the jobs binary and the admin triggers.
const (
	JobQuiz           = "quiz"
	JobHoroscope      = "horoscope"
	JobPastEvent      = "past-event"
	JobShareHoroscope = "share-horoscope"
	JobShareQuizzes   = "share-quizzes"
)

// JobOptions carries per-run overrides.
type JobOptions struct {
	// Date pins the job to a calendar day instead of the one it would derive.
	Date *time.Time
}

// Job is one scheduled unit of work.
type Job interface {
	Name() string
	Run(ctx context.Context, opts JobOptions) (*domain.JobResult, error)
}

// JobRunner dispatches jobs by name and logs every run.
type JobRunner struct {
	jobs   map[string]Job
	logger *zap.Logger
}

func NewJobRunner(logger *zap.Logger, jobs ...Job) *JobRunner {
	r := &JobRunner{jobs: make(map[string]Job, len(jobs)), logger: logger}
	for _, j := range jobs {
		r.jobs[j.Name()] = j
	}
	return r
}

// Names returns the registered job names, sorted.
func (r *JobRunner) Names() []string {
	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *JobRunner) Run(ctx context.Context, name string, opts JobOptions) (*domain.JobResult, error) {
	job, ok := r.jobs[name]
	if !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown job %q", name))
	}

	start := time.Now()
	r.logger.Info("Starting job", zap.String("job", name))
	result, err := job.Run(ctx, opts)
	if err != nil {
		r.logger.Error("Job failed", zap.String("job", name), zap.Duration("duration", time.Since(start)), zap.Error(err))
		return nil, err
	}
	r.logger.Info("Job finished",
		zap.String("job", name),
		zap.String("status", result.Status),
		zap.String("message", result.Message),
		zap.Duration("duration", time.Since(start)),
	)
	return result, nil
}

// ParseJobDate parses an optional YYYY-MM-DD override.
func ParseJobDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", s))
	}
	return &t, nil
}

func noop(job, message string, details map[string]any) *domain.JobResult {
	return &domain.JobResult{Job: job, Status: domain.JobStatusNoop, Message: message, Details: details}
}
