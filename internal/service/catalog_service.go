package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"quiz-zone/internal/cache"
	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	homeQuizzesPerCategory = 15
	categoryPageSize       = 12
	relatedQuizzes         = 4
	historyCategoryLimit   = 50
)

// CatalogService serves the public read paths.
type CatalogService interface {
	Home(ctx context.Context) (*dto.HomeResponse, error)
	Categories(ctx context.Context) ([]domain.CategorySummary, error)
	CategoryPage(ctx context.Context, slug, subSlug string, page int) (*dto.CategoryPageResponse, error)
	// Quiz returns a published quiz and counts the view.
	Quiz(ctx context.Context, slug string) (*dto.QuizDetailResponse, error)
	// PublishedQuiz returns a published quiz without counting a view.
	PublishedQuiz(ctx context.Context, slug string) (*domain.Quiz, error)
	Score(ctx context.Context, slug string, answers map[int]int) (*dto.ScoreResponse, error)
	PublishedQuizzes(ctx context.Context) ([]domain.Quiz, error)
	HoroscopeDay(ctx context.Context, date time.Time) (*dto.HoroscopeDayResponse, error)
	Horoscope(ctx context.Context, sign string, date time.Time) (*dto.HoroscopeView, error)
	HistoryDay(ctx context.Context, month, day int) (*dto.HistoryDayResponse, error)
	HistoryCategories(ctx context.Context) ([]domain.EventCategory, error)
	HistoryByCategory(ctx context.Context, category string) ([]domain.PastEvent, error)
}

// CatalogRepositories groups the read ports used by the catalog.
type CatalogRepositories struct {
	Categories domain.CategoryRepository
	Quizzes    domain.QuizRepository
	Horoscopes domain.HoroscopeRepository
	PastEvents domain.PastEventRepository
	Stats      domain.StatsRepository
}

type catalogService struct {
	repos  CatalogRepositories
	cache  domain.Cache
	ttl    cacheTTLs
	group  singleflight.Group
	logger *zap.Logger
}

type cacheTTLs struct {
	home       time.Duration
	categories time.Duration
	category   time.Duration
	history    time.Duration
	horoscope  time.Duration
}

// NewCatalogService builds the catalog; a nil cache reads straight through.
func NewCatalogService(repos CatalogRepositories, c domain.Cache, cfg *config.Config, logger *zap.Logger) CatalogService {
	return &catalogService{
		repos: repos,
		cache: c,
		ttl: cacheTTLs{
			home:       cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Home, 10*time.Minute),
			categories: cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Categories, time.Hour),
			category:   cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Category, 10*time.Minute),
			history:    cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.History, 24*time.Hour),
			horoscope:  cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Horoscope, time.Hour),
		},
		logger: logger,
	}
}

// cached reads key from the cache or fills it from load. Concurrent misses
// for one key share a single load.
func cached[T any](ctx context.Context, s *catalogService, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var zero T
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			var out T
			jsonErr := json.Unmarshal([]byte(raw), &out)
			if jsonErr == nil {
				return out, nil
			}
			s.logger.Warn("Discarding unreadable cache entry", zap.String("key", key), zap.Error(jsonErr))
		case !errors.Is(err, domain.ErrCacheMiss):
			s.logger.Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		out, err := load()
		if err != nil {
			return nil, err
		}
		if s.cache != nil {
			if data, err := json.Marshal(out); err == nil {
				if err := s.cache.Set(ctx, key, string(data), ttl); err != nil {
					s.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
		}
		return out, nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (s *catalogService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	key := cache.HomeKey()
	return cached(ctx, s, key, s.ttl.home, func() (*dto.HomeResponse, error) {
		var (
			categories []domain.Category
			recent     map[string][]domain.Quiz
			stats      *domain.SiteStats
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			categories, err = s.repos.Categories.List(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			recent, err = s.repos.Quizzes.ListRecentPublishedByCategory(gctx, homeQuizzesPerCategory)
			return err
		})
		g.Go(func() error {
			var err error
			stats, err = s.repos.Stats.SiteStats(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		resp := &dto.HomeResponse{Categories: make([]dto.HomeCategory, 0, len(categories)), Stats: *stats}
		for _, c := range categories {
			resp.Categories = append(resp.Categories, dto.HomeCategory{
				ID:      c.ID,
				Name:    c.Name,
				Slug:    c.Slug,
				Quizzes: dto.NewQuizCards(recent[c.ID]),
			})
		}
		return resp, nil
	})
}

func (s *catalogService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	key := cache.CategoriesKey()
	return cached(ctx, s, key, s.ttl.categories, func() ([]domain.CategorySummary, error) {
		return s.repos.Categories.ListWithCounts(ctx)
	})
}

func (s *catalogService) CategoryPage(ctx context.Context, slug, subSlug string, page int) (*dto.CategoryPageResponse, error) {
	if page < 1 {
		page = 1
	}
	key := cache.CategoryPageKey(slug, subSlug, page)
	return cached(ctx, s, key, s.ttl.category, func() (*dto.CategoryPageResponse, error) {
		category, err := s.repos.Categories.GetBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		subs, err := s.repos.Categories.ListSubCategories(ctx, category.ID)
		if err != nil {
			return nil, err
		}

		resp := &dto.CategoryPageResponse{Category: *category, SubCategories: subs}
		subID := ""
		if subSlug != "" {
			sub, err := s.repos.Categories.GetSubCategoryBySlug(ctx, category.ID, subSlug)
			if err != nil {
				return nil, err
			}
			resp.ActiveSubCategory = sub
			subID = sub.ID
		}

		quizzes, total, err := s.repos.Quizzes.ListPublishedByCategory(ctx, category.ID, subID, page, categoryPageSize)
		if err != nil {
			return nil, err
		}
		resp.Quizzes = dto.NewQuizCards(quizzes)
		resp.Meta = domain.NewPageMeta(total, page, categoryPageSize)
		return resp, nil
	})
}

func (s *catalogService) PublishedQuiz(ctx context.Context, slug string) (*domain.Quiz, error) {
	quiz, err := s.repos.Quizzes.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !quiz.IsPublished {
		return nil, domain.NewNotFoundError(fmt.Sprintf("quiz %q not found", slug))
	}
	return quiz, nil
}

func (s *catalogService) Quiz(ctx context.Context, slug string) (*dto.QuizDetailResponse, error) {
	quiz, err := s.PublishedQuiz(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Quizzes.IncrementViews(ctx, quiz.ID); err != nil {
		s.logger.Warn("Failed to count quiz view", zap.String("quiz_id", quiz.ID), zap.Error(err))
	}
	related, err := s.repos.Quizzes.ListRelated(ctx, quiz, relatedQuizzes)
	if err != nil {
		return nil, err
	}
	return &dto.QuizDetailResponse{Quiz: *quiz, Related: dto.NewQuizCards(related)}, nil
}

// Score replays answers through a QuizAttempt. Per-question results are only
// included once every question has been answered.
func (s *catalogService) Score(ctx context.Context, slug string, answers map[int]int) (*dto.ScoreResponse, error) {
	quiz, err := s.PublishedQuiz(ctx, slug)
	if err != nil {
		return nil, err
	}

	attempt := domain.NewQuizAttempt(quiz.Questions)
	indexes := make([]int, 0, len(answers))
	for q := range answers {
		indexes = append(indexes, q)
	}
	sort.Ints(indexes)
	for _, q := range indexes {
		if err := attempt.SetAnswer(q, answers[q]); err != nil {
			return nil, err
		}
	}

	if attempt.Completed() {
		if err := attempt.RevealResults(); err != nil {
			return nil, err
		}
	}

	score := attempt.Score()
	resp := &dto.ScoreResponse{
		Correct:     score.Correct,
		Total:       score.Total,
		Percentage:  score.Percentage,
		Message:     domain.ScoreMessage(score.Percentage),
		Completed:   attempt.Completed(),
		ShowResults: attempt.ShowResults(),
		Progress:    attempt.Progress(),
	}
	if attempt.ShowResults() {
		resp.Results = make([]dto.QuestionResult, 0, len(quiz.Questions))
		for i, q := range quiz.Questions {
			result := dto.QuestionResult{
				Index:        i,
				CorrectIndex: q.CorrectIndex,
				Correct:      attempt.IsCorrect(i),
				Explanation:  q.Explanation,
			}
			if selected, ok := attempt.Answer(i); ok {
				result.Selected = &selected
			}
			resp.Results = append(resp.Results, result)
		}
	}
	return resp, nil
}

func (s *catalogService) PublishedQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	return s.repos.Quizzes.ListPublishedSlugs(ctx)
}

func (s *catalogService) HoroscopeDay(ctx context.Context, date time.Time) (*dto.HoroscopeDayResponse, error) {
	date = domain.TruncateDay(date)
	day := date.Format(dateLayout)
	key := cache.HoroscopeDayKey(day)
	return cached(ctx, s, key, s.ttl.horoscope, func() (*dto.HoroscopeDayResponse, error) {
		rows, err := s.repos.Horoscopes.ListByDate(ctx, date)
		if err != nil {
			return nil, err
		}
		resp := &dto.HoroscopeDayResponse{Date: day, Horoscopes: make([]dto.HoroscopeView, 0, len(rows))}
		for _, h := range rows {
			info, _ := h.ZodiacSign.Info()
			resp.Horoscopes = append(resp.Horoscopes, dto.HoroscopeView{Horoscope: h, Sign: info})
		}
		return resp, nil
	})
}

func (s *catalogService) Horoscope(ctx context.Context, sign string, date time.Time) (*dto.HoroscopeView, error) {
	zodiac, ok := domain.ParseZodiacSign(sign)
	if !ok {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown zodiac sign %q", sign))
	}
	h, err := s.repos.Horoscopes.GetBySignAndDate(ctx, zodiac, domain.TruncateDay(date))
	if err != nil {
		return nil, err
	}
	info, _ := zodiac.Info()
	return &dto.HoroscopeView{Horoscope: *h, Sign: info}, nil
}

func (s *catalogService) HistoryDay(ctx context.Context, month, day int) (*dto.HistoryDayResponse, error) {
	if !validCalendarDay(month, day) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid calendar day %d/%d", month, day))
	}
	key := cache.HistoryDayKey(month, day)
	return cached(ctx, s, key, s.ttl.history, func() (*dto.HistoryDayResponse, error) {
		events, err := s.repos.PastEvents.ListByMonthDay(ctx, month, day)
		if err != nil {
			return nil, err
		}
		return &dto.HistoryDayResponse{Month: month, Day: day, Events: events}, nil
	})
}

func (s *catalogService) HistoryCategories(ctx context.Context) ([]domain.EventCategory, error) {
	key := cache.HistoryCategoriesKey()
	return cached(ctx, s, key, s.ttl.history, func() ([]domain.EventCategory, error) {
		return s.repos.PastEvents.DistinctCategories(ctx)
	})
}

func (s *catalogService) HistoryByCategory(ctx context.Context, category string) ([]domain.PastEvent, error) {
	c := domain.EventCategory(category)
	if !c.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown event category %q", category))
	}
	key := cache.HistoryCategoryKey(category)
	return cached(ctx, s, key, s.ttl.history, func() ([]domain.PastEvent, error) {
		return s.repos.PastEvents.ListByCategory(ctx, c, historyCategoryLimit)
	})
}

// validCalendarDay accepts any day of the leap-year calendar.
func validCalendarDay(month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(2024, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Month()) == month && t.Day() == day
}
