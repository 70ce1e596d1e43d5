package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/util"

	"go.uber.org/zap"
)

// pastEventGenerationService walks the leap-year calendar one day per run,
// rotating through event categories.
type pastEventGenerationService struct {
	pastEventRepo domain.PastEventRepository
	generator     domain.ContentGenerator
	cfg           config.GenerationConfig
	logger        *zap.Logger
}

func NewPastEventGenerationService(
	pastEventRepo domain.PastEventRepository,
	generator domain.ContentGenerator,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) Job {
	if cfg.LeapBaseYear <= 0 {
		cfg.LeapBaseYear = 2024
	}
	return &pastEventGenerationService{
		pastEventRepo: pastEventRepo,
		generator:     generator,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *pastEventGenerationService) Name() string { return JobPastEvent }

func (s *pastEventGenerationService) Run(ctx context.Context, opts JobOptions) (*domain.JobResult, error) {
	var target domain.CalendarDay
	if opts.Date != nil {
		target = domain.CalendarDay{Month: int(opts.Date.Month()), Day: opts.Date.Day()}
	} else {
		last, err := s.pastEventRepo.LastUpdated(ctx)
		if err != nil {
			return nil, err
		}
		target = domain.NextLeapDay(last, s.cfg.LeapBaseYear)
	}

	count, err := s.pastEventRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	category := domain.EventCategoryFor(count)

	s.logger.Info("Generating past event",
		zap.Int("month", target.Month),
		zap.Int("day", target.Day),
		zap.String("category", string(category)),
	)

	doc, err := s.generator.GeneratePastEvent(ctx, domain.PastEventGenerationRequest{Day: target, Category: category})
	if err != nil {
		return nil, err
	}
	if doc.Month != target.Month || doc.Day != target.Day {
		s.logger.Warn("Generated event is dated on a different day, using the requested day",
			zap.Int("generated_month", doc.Month),
			zap.Int("generated_day", doc.Day),
			zap.Int("month", target.Month),
			zap.Int("day", target.Day),
		)
	}

	event := &domain.PastEvent{
		Month:       target.Month,
		Day:         target.Day,
		Year:        doc.Year,
		Slug:        util.Slugify(doc.Title + "-" + strconv.Itoa(doc.Year)),
		Title:       doc.Title,
		Description: doc.Description,
		Category:    doc.Category,
		Tags:        doc.Tags,
		SourceURLs:  doc.SourceURLs,
		EventDate:   eventDate(doc.Year, target),
		IsPublished: true,
	}
	if err := s.pastEventRepo.Upsert(ctx, event); err != nil {
		return nil, err
	}
	s.logger.Info("Past event saved", zap.String("event_id", event.ID), zap.String("slug", event.Slug))

	return &domain.JobResult{
		Job:     JobPastEvent,
		Status:  domain.JobStatusCreated,
		Message: fmt.Sprintf("Saved %q (%d) for %02d-%02d", event.Title, event.Year, event.Month, event.Day),
		Details: map[string]any{
			"eventId":  event.ID,
			"slug":     event.Slug,
			"category": string(event.Category),
			"month":    event.Month,
			"day":      event.Day,
			"year":     event.Year,
		},
	}, nil
}

// eventDate returns the full date, or nil when the day does not exist in
// that year (Feb 29 outside leap years).
func eventDate(year int, day domain.CalendarDay) *time.Time {
	t := time.Date(year, time.Month(day.Month), day.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != day.Month || t.Day() != day.Day {
		return nil
	}
	return &t
}
