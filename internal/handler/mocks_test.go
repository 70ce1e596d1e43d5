package handler_test

import (
	"context"
	"io"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
)

// --- Manual Mocks ---

type MockCatalogService struct {
	HomeFunc              func(ctx context.Context) (*dto.HomeResponse, error)
	CategoriesFunc        func(ctx context.Context) ([]domain.CategorySummary, error)
	CategoryPageFunc      func(ctx context.Context, slug, subSlug string, page int) (*dto.CategoryPageResponse, error)
	QuizFunc              func(ctx context.Context, slug string) (*dto.QuizDetailResponse, error)
	PublishedQuizFunc     func(ctx context.Context, slug string) (*domain.Quiz, error)
	ScoreFunc             func(ctx context.Context, slug string, answers map[int]int) (*dto.ScoreResponse, error)
	PublishedQuizzesFunc  func(ctx context.Context) ([]domain.Quiz, error)
	HoroscopeDayFunc      func(ctx context.Context, date time.Time) (*dto.HoroscopeDayResponse, error)
	HoroscopeFunc         func(ctx context.Context, sign string, date time.Time) (*dto.HoroscopeView, error)
	HistoryDayFunc        func(ctx context.Context, month, day int) (*dto.HistoryDayResponse, error)
	HistoryCategoriesFunc func(ctx context.Context) ([]domain.EventCategory, error)
	HistoryByCategoryFunc func(ctx context.Context, category string) ([]domain.PastEvent, error)
}

func (m *MockCatalogService) Home(ctx context.Context) (*dto.HomeResponse, error) {
	if m.HomeFunc != nil {
		return m.HomeFunc(ctx)
	}
	panic("MockCatalogService.HomeFunc not implemented")
}
func (m *MockCatalogService) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	if m.CategoriesFunc != nil {
		return m.CategoriesFunc(ctx)
	}
	panic("MockCatalogService.CategoriesFunc not implemented")
}
func (m *MockCatalogService) CategoryPage(ctx context.Context, slug, subSlug string, page int) (*dto.CategoryPageResponse, error) {
	if m.CategoryPageFunc != nil {
		return m.CategoryPageFunc(ctx, slug, subSlug, page)
	}
	panic("MockCatalogService.CategoryPageFunc not implemented")
}
func (m *MockCatalogService) Quiz(ctx context.Context, slug string) (*dto.QuizDetailResponse, error) {
	if m.QuizFunc != nil {
		return m.QuizFunc(ctx, slug)
	}
	panic("MockCatalogService.QuizFunc not implemented")
}
func (m *MockCatalogService) PublishedQuiz(ctx context.Context, slug string) (*domain.Quiz, error) {
	if m.PublishedQuizFunc != nil {
		return m.PublishedQuizFunc(ctx, slug)
	}
	panic("MockCatalogService.PublishedQuizFunc not implemented")
}
func (m *MockCatalogService) Score(ctx context.Context, slug string, answers map[int]int) (*dto.ScoreResponse, error) {
	if m.ScoreFunc != nil {
		return m.ScoreFunc(ctx, slug, answers)
	}
	panic("MockCatalogService.ScoreFunc not implemented")
}
func (m *MockCatalogService) PublishedQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	if m.PublishedQuizzesFunc != nil {
		return m.PublishedQuizzesFunc(ctx)
	}
	panic("MockCatalogService.PublishedQuizzesFunc not implemented")
}
func (m *MockCatalogService) HoroscopeDay(ctx context.Context, date time.Time) (*dto.HoroscopeDayResponse, error) {
	if m.HoroscopeDayFunc != nil {
		return m.HoroscopeDayFunc(ctx, date)
	}
	panic("MockCatalogService.HoroscopeDayFunc not implemented")
}
func (m *MockCatalogService) Horoscope(ctx context.Context, sign string, date time.Time) (*dto.HoroscopeView, error) {
	if m.HoroscopeFunc != nil {
		return m.HoroscopeFunc(ctx, sign, date)
	}
	panic("MockCatalogService.HoroscopeFunc not implemented")
}
func (m *MockCatalogService) HistoryDay(ctx context.Context, month, day int) (*dto.HistoryDayResponse, error) {
	if m.HistoryDayFunc != nil {
		return m.HistoryDayFunc(ctx, month, day)
	}
	panic("MockCatalogService.HistoryDayFunc not implemented")
}
func (m *MockCatalogService) HistoryCategories(ctx context.Context) ([]domain.EventCategory, error) {
	if m.HistoryCategoriesFunc != nil {
		return m.HistoryCategoriesFunc(ctx)
	}
	panic("MockCatalogService.HistoryCategoriesFunc not implemented")
}
func (m *MockCatalogService) HistoryByCategory(ctx context.Context, category string) ([]domain.PastEvent, error) {
	if m.HistoryByCategoryFunc != nil {
		return m.HistoryByCategoryFunc(ctx, category)
	}
	panic("MockCatalogService.HistoryByCategoryFunc not implemented")
}

type MockAdminService struct {
	AnalyticsFunc         func(ctx context.Context) (*domain.Analytics, error)
	ListQuizzesFunc       func(ctx context.Context, filter domain.QuizFilter) (*domain.QuizPage, error)
	GetQuizFunc           func(ctx context.Context, id string) (*domain.Quiz, error)
	CreateQuizFunc        func(ctx context.Context, in dto.QuizInput) (*domain.Quiz, error)
	UpdateQuizFunc        func(ctx context.Context, id string, in dto.QuizInput) (*domain.Quiz, error)
	DeleteQuizFunc        func(ctx context.Context, id string) error
	TogglePublishFunc     func(ctx context.Context, id string) (*domain.Quiz, error)
	ListCategoriesFunc    func(ctx context.Context) ([]domain.CategorySummary, error)
	CreateCategoryFunc    func(ctx context.Context, in dto.CategoryInput) (*domain.Category, error)
	UpdateCategoryFunc    func(ctx context.Context, id string, in dto.CategoryInput) (*domain.Category, error)
	DeleteCategoryFunc    func(ctx context.Context, id string) error
	ListSubCategoriesFunc func(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
	CreateSubCategoryFunc func(ctx context.Context, categoryID string, in dto.CategoryInput) (*domain.SubCategory, error)
	ListTagsFunc          func(ctx context.Context) ([]domain.Tag, error)
	CreateTagFunc         func(ctx context.Context, in dto.TagInput) (*domain.Tag, error)
}

func (m *MockAdminService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	if m.AnalyticsFunc != nil {
		return m.AnalyticsFunc(ctx)
	}
	panic("MockAdminService.AnalyticsFunc not implemented")
}
func (m *MockAdminService) ListQuizzes(ctx context.Context, filter domain.QuizFilter) (*domain.QuizPage, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx, filter)
	}
	panic("MockAdminService.ListQuizzesFunc not implemented")
}
func (m *MockAdminService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, id)
	}
	panic("MockAdminService.GetQuizFunc not implemented")
}
func (m *MockAdminService) CreateQuiz(ctx context.Context, in dto.QuizInput) (*domain.Quiz, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, in)
	}
	panic("MockAdminService.CreateQuizFunc not implemented")
}
func (m *MockAdminService) UpdateQuiz(ctx context.Context, id string, in dto.QuizInput) (*domain.Quiz, error) {
	if m.UpdateQuizFunc != nil {
		return m.UpdateQuizFunc(ctx, id, in)
	}
	panic("MockAdminService.UpdateQuizFunc not implemented")
}
func (m *MockAdminService) DeleteQuiz(ctx context.Context, id string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, id)
	}
	panic("MockAdminService.DeleteQuizFunc not implemented")
}
func (m *MockAdminService) TogglePublish(ctx context.Context, id string) (*domain.Quiz, error) {
	if m.TogglePublishFunc != nil {
		return m.TogglePublishFunc(ctx, id)
	}
	panic("MockAdminService.TogglePublishFunc not implemented")
}
func (m *MockAdminService) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx)
	}
	panic("MockAdminService.ListCategoriesFunc not implemented")
}
func (m *MockAdminService) CreateCategory(ctx context.Context, in dto.CategoryInput) (*domain.Category, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, in)
	}
	panic("MockAdminService.CreateCategoryFunc not implemented")
}
func (m *MockAdminService) UpdateCategory(ctx context.Context, id string, in dto.CategoryInput) (*domain.Category, error) {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, in)
	}
	panic("MockAdminService.UpdateCategoryFunc not implemented")
}
func (m *MockAdminService) DeleteCategory(ctx context.Context, id string) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	panic("MockAdminService.DeleteCategoryFunc not implemented")
}
func (m *MockAdminService) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	if m.ListSubCategoriesFunc != nil {
		return m.ListSubCategoriesFunc(ctx, categoryID)
	}
	panic("MockAdminService.ListSubCategoriesFunc not implemented")
}
func (m *MockAdminService) CreateSubCategory(ctx context.Context, categoryID string, in dto.CategoryInput) (*domain.SubCategory, error) {
	if m.CreateSubCategoryFunc != nil {
		return m.CreateSubCategoryFunc(ctx, categoryID, in)
	}
	panic("MockAdminService.CreateSubCategoryFunc not implemented")
}
func (m *MockAdminService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	if m.ListTagsFunc != nil {
		return m.ListTagsFunc(ctx)
	}
	panic("MockAdminService.ListTagsFunc not implemented")
}
func (m *MockAdminService) CreateTag(ctx context.Context, in dto.TagInput) (*domain.Tag, error) {
	if m.CreateTagFunc != nil {
		return m.CreateTagFunc(ctx, in)
	}
	panic("MockAdminService.CreateTagFunc not implemented")
}

type MockAuthService struct {
	LoginFunc           func(ctx context.Context, password string) (string, error)
	ValidateSessionFunc func(ctx context.Context, token string) (*dto.AdminClaims, error)
}

func (m *MockAuthService) Login(ctx context.Context, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, password)
	}
	panic("MockAuthService.LoginFunc not implemented")
}
func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (*dto.AdminClaims, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	panic("MockAuthService.ValidateSessionFunc not implemented")
}
func (m *MockAuthService) SessionTTL() time.Duration {
	return time.Hour
}

type MockRenderer struct {
	err error
}

func (m *MockRenderer) RenderHoroscope(w io.Writer, h domain.Horoscope) error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, "png:"+string(h.ZodiacSign))
	return err
}
func (m *MockRenderer) RenderQuiz(w io.Writer, q domain.Quiz) error {
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, "png:"+q.Slug)
	return err
}

type MockPinger struct {
	err error
}

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.err
}
