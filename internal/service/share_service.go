package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	shareQuizzesTop    = 7
	shareQuizzesWindow = 24 * time.Hour
)

// ShareDeps are the collaborators shared by both share jobs.
type ShareDeps struct {
	Storage   domain.ObjectStorage
	Publisher domain.ChannelPublisher
	Renderer  domain.CardRenderer
	Now       domain.Clock
	Site      config.SiteConfig
	KeyPrefix string
	// Delay separates consecutive channel posts.
	Delay  time.Duration
	Logger *zap.Logger
}

type shareHoroscopeService struct {
	horoscopeRepo domain.HoroscopeRepository
	deps          ShareDeps
}

func NewShareHoroscopeService(horoscopeRepo domain.HoroscopeRepository, deps ShareDeps) Job {
	if deps.KeyPrefix == "" {
		deps.KeyPrefix = "temp"
	}
	return &shareHoroscopeService{horoscopeRepo: horoscopeRepo, deps: deps}
}

func (s *shareHoroscopeService) Name() string { return JobShareHoroscope }

// Run posts one card per sign for the day. A failed sign is logged and
// skipped; the run fails only when nothing was posted.
func (s *shareHoroscopeService) Run(ctx context.Context, opts JobOptions) (*domain.JobResult, error) {
	date := domain.TruncateDay(s.deps.Now())
	if opts.Date != nil {
		date = domain.TruncateDay(*opts.Date)
	}
	day := date.Format(dateLayout)

	horoscopes, err := s.horoscopeRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(horoscopes) == 0 {
		s.deps.Logger.Warn("No horoscopes to share", zap.String("date", day))
		return noop(JobShareHoroscope, fmt.Sprintf("no horoscopes for %s", day), map[string]any{"date": day}), nil
	}

	posted := 0
	var lastErr error
	for i, h := range horoscopes {
		if i > 0 {
			if err := sleep(ctx, s.deps.Delay); err != nil {
				return nil, err
			}
		}
		if err := s.shareOne(ctx, h, day); err != nil {
			lastErr = err
			s.deps.Logger.Error("Failed to share horoscope",
				zap.String("sign", string(h.ZodiacSign)), zap.String("date", day), zap.Error(err))
			continue
		}
		posted++
	}

	if posted == 0 {
		return nil, domain.NewPublishError(fmt.Errorf("all %d horoscope posts failed: %w", len(horoscopes), lastErr))
	}
	return &domain.JobResult{
		Job:     JobShareHoroscope,
		Status:  domain.JobStatusShared,
		Message: fmt.Sprintf("Shared %d of %d horoscopes for %s", posted, len(horoscopes), day),
		Details: map[string]any{"date": day, "posted": posted, "failed": len(horoscopes) - posted},
	}, nil
}

func (s *shareHoroscopeService) shareOne(ctx context.Context, h domain.Horoscope, day string) error {
	var buf bytes.Buffer
	if err := s.deps.Renderer.RenderHoroscope(&buf, h); err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	key := fmt.Sprintf("%s/%s/%s.png", s.deps.KeyPrefix, day, strings.ToLower(string(h.ZodiacSign)))
	url, err := s.deps.Storage.Put(ctx, key, &buf, "image/png")
	if err != nil {
		return err
	}
	return s.deps.Publisher.SendPhoto(ctx, url, HoroscopeCaption(h, s.deps.Site.BaseURL))
}

// HoroscopeCaption is the Markdown caption posted with a horoscope card.
func HoroscopeCaption(h domain.Horoscope, baseURL string) string {
	info, _ := h.ZodiacSign.Info()
	var b strings.Builder
	fmt.Fprintf(&b, "%s *%s - %s*\n\n", info.Symbol, h.ZodiacSign, h.Date.Format("January 2, 2006"))
	fmt.Fprintf(&b, "_%s_\n\n", h.Description)

	var extras []string
	if h.LuckyColor != "" {
		extras = append(extras, "🎨 *Lucky Color:* "+h.LuckyColor)
	}
	if h.LuckyNumber > 0 {
		extras = append(extras, fmt.Sprintf("🎰 *Lucky Number:* %d", h.LuckyNumber))
	}
	if h.Mood != "" {
		extras = append(extras, "😊 *Mood:* "+h.Mood)
	}
	if len(extras) > 0 {
		b.WriteString(strings.Join(extras, "\n"))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "🔮 [Read full horoscope for all signs](%s/horoscope)\n\n", baseURL)
	signTag := cases.Title(language.English).String(strings.ToLower(string(h.ZodiacSign)))
	fmt.Fprintf(&b, "#%s #Horoscope #DailyHoroscope #QuizZone", signTag)
	return b.String()
}

type shareQuizzesService struct {
	quizRepo domain.QuizRepository
	deps     ShareDeps
}

func NewShareQuizzesService(quizRepo domain.QuizRepository, deps ShareDeps) Job {
	return &shareQuizzesService{quizRepo: quizRepo, deps: deps}
}

func (s *shareQuizzesService) Name() string { return JobShareQuizzes }

// Run posts a digest of quizzes created in the previous 24 hours.
func (s *shareQuizzesService) Run(ctx context.Context, _ JobOptions) (*domain.JobResult, error) {
	now := s.deps.Now()
	quizzes, err := s.quizRepo.ListCreatedSince(ctx, now.Add(-shareQuizzesWindow))
	if err != nil {
		return nil, err
	}
	if len(quizzes) == 0 {
		s.deps.Logger.Info("No new quizzes to share")
		return noop(JobShareQuizzes, "no quizzes created in the last 24 hours", nil), nil
	}

	if err := s.deps.Publisher.SendMessage(ctx, QuizDigest(quizzes, now, s.deps.Site.BaseURL)); err != nil {
		return nil, err
	}
	listed := min(len(quizzes), shareQuizzesTop)
	return &domain.JobResult{
		Job:     JobShareQuizzes,
		Status:  domain.JobStatusShared,
		Message: fmt.Sprintf("Shared digest of %d quizzes", len(quizzes)),
		Details: map[string]any{"quizzes": len(quizzes), "listed": listed},
	}, nil
}

// QuizDigest is the Markdown message listing new quizzes.
func QuizDigest(quizzes []domain.Quiz, now time.Time, baseURL string) string {
	var b strings.Builder
	b.WriteString("🎉 *New Quizzes Just Dropped!* 🎉\n\n")
	fmt.Fprintf(&b, "*📅 %s*\n\n", now.Format("Jan 2, 2006"))
	b.WriteString("Here are today's top brain teasers:\n\n")

	for i, q := range quizzes {
		if i == shareQuizzesTop {
			break
		}
		fmt.Fprintf(&b, "%d. 🔥 [%s](%s/quiz/%s)\n", i+1, q.Title, baseURL, q.Slug)
	}

	if extra := len(quizzes) - shareQuizzesTop; extra > 0 {
		fmt.Fprintf(&b, "\n➕ *%d more quizzes* published yesterday!\n\n", extra)
		b.WriteString("🚀 *Don't miss out!* Test your knowledge now:\n")
	}
	fmt.Fprintf(&b, "\n👉 [Play all quizzes](%s)\n\n", baseURL)
	b.WriteString("#QuizZone #BrainTeasers #DailyChallenge")
	return b.String()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
