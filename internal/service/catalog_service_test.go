package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type catalogMocks struct {
	categories *MockCategoryRepository
	quizzes    *MockQuizRepository
	horoscopes *MockHoroscopeRepository
	pastEvents *MockPastEventRepository
	stats      *MockStatsRepository
}

func newTestCatalog(c domain.Cache) (CatalogService, catalogMocks) {
	m := catalogMocks{
		categories: new(MockCategoryRepository),
		quizzes:    new(MockQuizRepository),
		horoscopes: new(MockHoroscopeRepository),
		pastEvents: new(MockPastEventRepository),
		stats:      new(MockStatsRepository),
	}
	repos := CatalogRepositories{
		Categories: m.categories,
		Quizzes:    m.quizzes,
		Horoscopes: m.horoscopes,
		PastEvents: m.pastEvents,
		Stats:      m.stats,
	}
	return NewCatalogService(repos, c, &config.Config{}, zap.NewNop()), m
}

func TestCatalogHome_WithoutCache(t *testing.T) {
	svc, m := newTestCatalog(nil)

	m.categories.On("List", mock.Anything).Return([]domain.Category{
		{ID: "c1", Name: "History", Slug: "history"},
		{ID: "c2", Name: "Science", Slug: "science"},
	}, nil)
	m.quizzes.On("ListRecentPublishedByCategory", mock.Anything, 15).Return(map[string][]domain.Quiz{
		"c2": {{ID: "q1", Title: "Atoms", Slug: "atoms", Difficulty: domain.DifficultyEasy}},
	}, nil)
	m.stats.On("SiteStats", mock.Anything).Return(&domain.SiteStats{TotalQuizzes: 1, TotalCategories: 2}, nil)

	home, err := svc.Home(context.Background())

	require.NoError(t, err)
	require.Len(t, home.Categories, 2)
	assert.Empty(t, home.Categories[0].Quizzes)
	assert.Equal(t, "atoms", home.Categories[1].Quizzes[0].Slug)
	assert.Equal(t, 2, home.Stats.TotalCategories)
}

func TestCatalogHome_CacheHitSkipsRepositories(t *testing.T) {
	c := new(MockCache)
	svc, m := newTestCatalog(c)

	cachedHome := dto.HomeResponse{Categories: []dto.HomeCategory{{ID: "c1", Name: "History"}}}
	raw, err := json.Marshal(&cachedHome)
	require.NoError(t, err)
	c.On("Get", mock.Anything, "quizzone:catalog:home:all").Return(string(raw), nil).Once()

	home, err := svc.Home(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "History", home.Categories[0].Name)
	m.categories.AssertNotCalled(t, "List", mock.Anything)
}

func TestCatalogCategories_CacheMissFillsCache(t *testing.T) {
	c := new(MockCache)
	svc, m := newTestCatalog(c)

	summaries := []domain.CategorySummary{{Category: domain.Category{ID: "c1", Name: "History"}, QuizCount: 4}}
	key := "quizzone:catalog:categories:all"
	c.On("Get", mock.Anything, key).Return("", domain.ErrCacheMiss).Once()
	m.categories.On("ListWithCounts", mock.Anything).Return(summaries, nil).Once()
	c.On("Set", mock.Anything, key, mock.AnythingOfType("string"), time.Hour).Return(nil).Once()

	got, err := svc.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, got[0].QuizCount)
	c.AssertExpectations(t)
}

func TestCatalogCategoryPage(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()

	science := &domain.Category{ID: "c2", Name: "Science", Slug: "science"}
	physics := &domain.SubCategory{ID: "s1", CategoryID: "c2", Name: "Physics", Slug: "physics"}
	m.categories.On("GetBySlug", ctx, "science").Return(science, nil)
	m.categories.On("ListSubCategories", ctx, "c2").Return([]domain.SubCategory{*physics}, nil)
	m.categories.On("GetSubCategoryBySlug", ctx, "c2", "physics").Return(physics, nil)
	m.quizzes.On("ListPublishedByCategory", ctx, "c2", "s1", 2, 12).Return([]domain.Quiz{{Slug: "forces"}}, 25, nil)

	page, err := svc.CategoryPage(ctx, "science", "physics", 2)

	require.NoError(t, err)
	assert.Equal(t, domain.PageMeta{Total: 25, TotalPages: 3, CurrentPage: 2, PerPage: 12}, page.Meta)
	assert.Equal(t, "Physics", page.ActiveSubCategory.Name)
	assert.Len(t, page.Quizzes, 1)
}

func TestCatalogCategoryPage_EmptyStillHasOnePage(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()

	m.categories.On("GetBySlug", ctx, "art").Return(&domain.Category{ID: "c3", Slug: "art"}, nil)
	m.categories.On("ListSubCategories", ctx, "c3").Return([]domain.SubCategory{}, nil)
	m.quizzes.On("ListPublishedByCategory", ctx, "c3", "", 1, 12).Return([]domain.Quiz{}, 0, nil)

	page, err := svc.CategoryPage(ctx, "art", "", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.TotalPages)
	assert.Equal(t, 1, page.Meta.CurrentPage)
}

func threeQuestionQuiz(published bool) *domain.Quiz {
	return &domain.Quiz{
		ID:          "q1",
		Slug:        "capitals",
		CategoryID:  "c1",
		IsPublished: published,
		Questions: []domain.Question{
			{Text: "Peru?", Options: []string{"Lima", "Quito"}, CorrectIndex: 0, Explanation: "Lima since 1535."},
			{Text: "Chile?", Options: []string{"Santiago", "Lima"}, CorrectIndex: 0},
			{Text: "Kenya?", Options: []string{"Mombasa", "Nairobi"}, CorrectIndex: 1},
		},
	}
}

func TestCatalogQuiz_CountsViewAndLoadsRelated(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()
	quiz := threeQuestionQuiz(true)

	m.quizzes.On("GetBySlug", ctx, "capitals").Return(quiz, nil)
	m.quizzes.On("IncrementViews", ctx, "q1").Return(nil).Once()
	m.quizzes.On("ListRelated", ctx, quiz, 4).Return([]domain.Quiz{{Slug: "rivers"}}, nil)

	detail, err := svc.Quiz(ctx, "capitals")

	require.NoError(t, err)
	assert.Equal(t, "rivers", detail.Related[0].Slug)
	m.quizzes.AssertExpectations(t)
}

func TestCatalogQuiz_UnpublishedIsNotFound(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()
	m.quizzes.On("GetBySlug", ctx, "capitals").Return(threeQuestionQuiz(false), nil)

	_, err := svc.Quiz(ctx, "capitals")

	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	m.quizzes.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestCatalogScore(t *testing.T) {
	ctx := context.Background()

	t.Run("complete attempt reveals results", func(t *testing.T) {
		svc, m := newTestCatalog(nil)
		m.quizzes.On("GetBySlug", ctx, "capitals").Return(threeQuestionQuiz(true), nil)

		score, err := svc.Score(ctx, "capitals", map[int]int{0: 0, 1: 1, 2: 1})

		require.NoError(t, err)
		assert.Equal(t, 2, score.Correct)
		assert.Equal(t, 67, score.Percentage)
		assert.Equal(t, "Good job! Keep it up! 👍", score.Message)
		assert.True(t, score.Completed)
		require.Len(t, score.Results, 3)
		assert.False(t, score.Results[1].Correct)
		assert.Equal(t, 1, *score.Results[1].Selected)
		assert.Equal(t, "Lima since 1535.", score.Results[0].Explanation)
	})

	t.Run("partial attempt hides results", func(t *testing.T) {
		svc, m := newTestCatalog(nil)
		m.quizzes.On("GetBySlug", ctx, "capitals").Return(threeQuestionQuiz(true), nil)

		score, err := svc.Score(ctx, "capitals", map[int]int{0: 0})

		require.NoError(t, err)
		assert.False(t, score.Completed)
		assert.False(t, score.ShowResults)
		assert.Nil(t, score.Results)
		assert.InDelta(t, 33.33, score.Progress, 0.01)
	})

	t.Run("out of range option", func(t *testing.T) {
		svc, m := newTestCatalog(nil)
		m.quizzes.On("GetBySlug", ctx, "capitals").Return(threeQuestionQuiz(true), nil)

		_, err := svc.Score(ctx, "capitals", map[int]int{0: 5})

		assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
	})
}

func TestCatalogHoroscopes(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	m.horoscopes.On("ListByDate", ctx, date).Return([]domain.Horoscope{{ZodiacSign: domain.Leo, Date: date}}, nil)
	m.horoscopes.On("GetBySignAndDate", ctx, domain.Leo, date).Return(&domain.Horoscope{ZodiacSign: domain.Leo, Date: date}, nil)

	day, err := svc.HoroscopeDay(ctx, date.Add(13*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", day.Date)
	assert.Equal(t, "Fire", day.Horoscopes[0].Sign.Element)

	view, err := svc.Horoscope(ctx, "leo", date)
	require.NoError(t, err)
	assert.Equal(t, "♌️", view.Sign.Symbol)

	_, err = svc.Horoscope(ctx, "ophiuchus", date)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
}

func TestCatalogHistory(t *testing.T) {
	svc, m := newTestCatalog(nil)
	ctx := context.Background()

	m.pastEvents.On("ListByMonthDay", ctx, 2, 29).Return([]domain.PastEvent{{Title: "Leap"}}, nil)
	m.pastEvents.On("ListByCategory", ctx, domain.EventCategory("science"), 50).Return([]domain.PastEvent{}, nil)

	day, err := svc.HistoryDay(ctx, 2, 29)
	require.NoError(t, err)
	assert.Len(t, day.Events, 1)

	_, err = svc.HistoryDay(ctx, 2, 30)
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))

	_, err = svc.HistoryByCategory(ctx, "science")
	assert.NoError(t, err)
	_, err = svc.HistoryByCategory(ctx, "gossip")
	assert.True(t, domain.HasCode(err, domain.CodeInvalidInput))
}
