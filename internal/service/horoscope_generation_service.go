package service

import (
	"context"
	"fmt"
	"time"

	"quiz-zone/internal/cache"
	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// horoscopeGenerationService fills the next missing horoscope day.
type horoscopeGenerationService struct {
	horoscopeRepo domain.HoroscopeRepository
	generator     domain.ContentGenerator
	cache         domain.Cache
	now           domain.Clock
	cfg           config.GenerationConfig
	logger        *zap.Logger
}

func NewHoroscopeGenerationService(
	horoscopeRepo domain.HoroscopeRepository,
	generator domain.ContentGenerator,
	c domain.Cache,
	now domain.Clock,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) Job {
	if cfg.HoroscopeLookAhead <= 0 {
		cfg.HoroscopeLookAhead = 30
	}
	return &horoscopeGenerationService{
		horoscopeRepo: horoscopeRepo,
		generator:     generator,
		cache:         c,
		now:           now,
		cfg:           cfg,
		logger:        logger,
	}
}

func (s *horoscopeGenerationService) Name() string { return JobHoroscope }

func (s *horoscopeGenerationService) Run(ctx context.Context, opts JobOptions) (*domain.JobResult, error) {
	target, err := s.targetDate(ctx, opts)
	if err != nil {
		return nil, err
	}
	day := target.Format(dateLayout)

	// An explicit date is a manual backfill or pin and bypasses the look-ahead cap.
	limit := domain.TruncateDay(s.now()).AddDate(0, 0, s.cfg.HoroscopeLookAhead)
	if opts.Date == nil && target.After(limit) {
		s.logger.Info("Horoscopes already generated far enough ahead",
			zap.String("target", day), zap.String("limit", limit.Format(dateLayout)))
		return noop(JobHoroscope, fmt.Sprintf("%s is beyond the %d day look-ahead", day, s.cfg.HoroscopeLookAhead),
			map[string]any{"date": day}), nil
	}

	existing, err := s.horoscopeRepo.CountByDate(ctx, target)
	if err != nil {
		return nil, err
	}
	if existing >= len(domain.ZodiacSigns) {
		s.logger.Info("Horoscopes already exist for date", zap.String("date", day))
		return noop(JobHoroscope, fmt.Sprintf("horoscopes for %s already exist", day), map[string]any{"date": day}), nil
	}

	generated, err := s.generator.GenerateHoroscopes(ctx, target)
	if err != nil {
		return nil, err
	}

	batch := make([]domain.Horoscope, 0, len(domain.ZodiacSigns))
	for _, info := range domain.ZodiacSigns {
		reading := generated[info.Sign]
		batch = append(batch, domain.Horoscope{
			ZodiacSign:  info.Sign,
			Date:        target,
			Description: reading.Description,
			LuckyColor:  reading.LuckyColor,
			LuckyNumber: reading.LuckyNumber,
			Mood:        reading.Mood,
		})
	}

	inserted, err := s.horoscopeRepo.InsertSkipDuplicates(ctx, batch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Horoscopes saved", zap.String("date", day), zap.Int("inserted", inserted))
	if inserted > 0 {
		s.invalidateDay(ctx, day)
	}

	return &domain.JobResult{
		Job:     JobHoroscope,
		Status:  domain.JobStatusCreated,
		Message: fmt.Sprintf("Saved %d horoscopes for %s", inserted, day),
		Details: map[string]any{"date": day, "inserted": inserted},
	}, nil
}

// targetDate is the override, the day after the latest stored date, or the
// configured start date for an empty table.
func (s *horoscopeGenerationService) targetDate(ctx context.Context, opts JobOptions) (time.Time, error) {
	if opts.Date != nil {
		return domain.TruncateDay(*opts.Date), nil
	}
	latest, err := s.horoscopeRepo.LatestDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return domain.TruncateDay(s.cfg.HoroscopeStart()), nil
	}
	return domain.TruncateDay(*latest).AddDate(0, 0, 1), nil
}

// invalidateDay drops a cached page for the day, which may have been stored
// empty before generation caught up.
func (s *horoscopeGenerationService) invalidateDay(ctx context.Context, day string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, cache.HoroscopeDayKey(day)); err != nil {
		s.logger.Warn("Failed to invalidate horoscope cache", zap.String("date", day), zap.Error(err))
	}
}
