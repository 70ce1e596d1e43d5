package service

import (
	"context"
	"io"
	"time"

	"quiz-zone/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListWithCounts(ctx context.Context) ([]domain.CategorySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySummary), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) UpsertByName(ctx context.Context, category *domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetSubCategoryBySlug(ctx context.Context, categoryID, slug string) (*domain.SubCategory, error) {
	args := m.Called(ctx, categoryID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubCategory), args.Error(1)
}

func (m *MockCategoryRepository) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockCategoryRepository) UpsertSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockCategoryRepository) CountWithSubCategories(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) FindWithSubCategoriesAt(ctx context.Context, offset int) (*domain.Category, error) {
	args := m.Called(ctx, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) Update(ctx context.Context, quiz *domain.Quiz) error {
	return m.Called(ctx, quiz).Error(0)
}

func (m *MockQuizRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuizRepository) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) GetBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) List(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Quiz), args.Int(1), args.Error(2)
}

func (m *MockQuizRepository) ListRecentTitles(ctx context.Context, categoryID, subCategoryID string, limit int) ([]string, error) {
	args := m.Called(ctx, categoryID, subCategoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockQuizRepository) ListPublishedByCategory(ctx context.Context, categoryID, subCategoryID string, page, perPage int) ([]domain.Quiz, int, error) {
	args := m.Called(ctx, categoryID, subCategoryID, page, perPage)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Quiz), args.Int(1), args.Error(2)
}

func (m *MockQuizRepository) ListRecentPublishedByCategory(ctx context.Context, perCategory int) (map[string][]domain.Quiz, error) {
	args := m.Called(ctx, perCategory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListRelated(ctx context.Context, quiz *domain.Quiz, limit int) ([]domain.Quiz, error) {
	args := m.Called(ctx, quiz, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Quiz, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) ListPublishedSlugs(ctx context.Context) ([]domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) SetPublished(ctx context.Context, id string, published bool, at *time.Time) error {
	return m.Called(ctx, id, published, at).Error(0)
}

func (m *MockQuizRepository) IncrementViews(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockQuizRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

// --- MockTagRepository ---
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockTagRepository) FindOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

// --- MockHoroscopeRepository ---
type MockHoroscopeRepository struct {
	mock.Mock
}

func (m *MockHoroscopeRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func (m *MockHoroscopeRepository) CountByDate(ctx context.Context, date time.Time) (int, error) {
	args := m.Called(ctx, date)
	return args.Int(0), args.Error(1)
}

func (m *MockHoroscopeRepository) InsertSkipDuplicates(ctx context.Context, horoscopes []domain.Horoscope) (int, error) {
	args := m.Called(ctx, horoscopes)
	return args.Int(0), args.Error(1)
}

func (m *MockHoroscopeRepository) GetBySignAndDate(ctx context.Context, sign domain.ZodiacSign, date time.Time) (*domain.Horoscope, error) {
	args := m.Called(ctx, sign, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Horoscope), args.Error(1)
}

func (m *MockHoroscopeRepository) ListByDate(ctx context.Context, date time.Time) ([]domain.Horoscope, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Horoscope), args.Error(1)
}

// --- MockPastEventRepository ---
type MockPastEventRepository struct {
	mock.Mock
}

func (m *MockPastEventRepository) LastUpdated(ctx context.Context) (*domain.CalendarDay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalendarDay), args.Error(1)
}

func (m *MockPastEventRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPastEventRepository) Upsert(ctx context.Context, event *domain.PastEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPastEventRepository) ListByMonthDay(ctx context.Context, month, day int) ([]domain.PastEvent, error) {
	args := m.Called(ctx, month, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PastEvent), args.Error(1)
}

func (m *MockPastEventRepository) ListByCategory(ctx context.Context, category domain.EventCategory, limit int) ([]domain.PastEvent, error) {
	args := m.Called(ctx, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PastEvent), args.Error(1)
}

func (m *MockPastEventRepository) DistinctCategories(ctx context.Context) ([]domain.EventCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventCategory), args.Error(1)
}

// --- MockStatsRepository ---
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) SiteStats(ctx context.Context) (*domain.SiteStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SiteStats), args.Error(1)
}

func (m *MockStatsRepository) Analytics(ctx context.Context, recent int) (*domain.Analytics, error) {
	args := m.Called(ctx, recent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analytics), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *MockCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return m.Called(ctx, prefix).Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// --- MockContentGenerator ---
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateQuiz(ctx context.Context, req domain.QuizGenerationRequest) (*domain.GeneratedQuiz, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedQuiz), args.Error(1)
}

func (m *MockContentGenerator) GenerateHoroscopes(ctx context.Context, date time.Time) (domain.GeneratedHoroscopeDay, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.GeneratedHoroscopeDay), args.Error(1)
}

func (m *MockContentGenerator) GeneratePastEvent(ctx context.Context, req domain.PastEventGenerationRequest) (*domain.GeneratedPastEvent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedPastEvent), args.Error(1)
}

// --- MockObjectStorage ---
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, body, contentType)
	return args.String(0), args.Error(1)
}

// --- MockChannelPublisher ---
type MockChannelPublisher struct {
	mock.Mock
}

func (m *MockChannelPublisher) SendPhoto(ctx context.Context, photoURL, caption string) error {
	return m.Called(ctx, photoURL, caption).Error(0)
}

func (m *MockChannelPublisher) SendMessage(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

// --- MockCardRenderer ---
type MockCardRenderer struct {
	mock.Mock
}

func (m *MockCardRenderer) RenderHoroscope(w io.Writer, h domain.Horoscope) error {
	args := m.Called(w, h)
	_, _ = w.Write([]byte("png"))
	return args.Error(0)
}

func (m *MockCardRenderer) RenderQuiz(w io.Writer, q domain.Quiz) error {
	args := m.Called(w, q)
	_, _ = w.Write([]byte("png"))
	return args.Error(0)
}

// sequenceRand returns the queued values in order, then zeros.
type sequenceRand struct {
	values []int
	calls  []int
}

func (r *sequenceRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}
