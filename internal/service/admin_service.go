package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-zone/internal/cache"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/util"
	"quiz-zone/internal/validation"

	"go.uber.org/zap"
)

const (
	adminPageSize      = 10
	adminRecentQuizzes = 5
)

// AdminService backs the admin panel. Every mutation drops the cached
// public catalog.
type AdminService interface {
	Analytics(ctx context.Context) (*domain.Analytics, error)

	ListQuizzes(ctx context.Context, filter domain.QuizFilter) (*domain.QuizPage, error)
	GetQuiz(ctx context.Context, id string) (*domain.Quiz, error)
	CreateQuiz(ctx context.Context, in dto.QuizInput) (*domain.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, in dto.QuizInput) (*domain.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error
	TogglePublish(ctx context.Context, id string) (*domain.Quiz, error)

	ListCategories(ctx context.Context) ([]domain.CategorySummary, error)
	CreateCategory(ctx context.Context, in dto.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in dto.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, categoryID string, in dto.CategoryInput) (*domain.SubCategory, error)

	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, in dto.TagInput) (*domain.Tag, error)
}

// AdminRepositories groups the write ports used by the admin panel.
type AdminRepositories struct {
	Categories domain.CategoryRepository
	Quizzes    domain.QuizRepository
	Tags       domain.TagRepository
	Stats      domain.StatsRepository
}

type adminService struct {
	repos     AdminRepositories
	cache     domain.Cache
	validator *validation.Validator
	now       domain.Clock
	logger    *zap.Logger
}

func NewAdminService(repos AdminRepositories, c domain.Cache, v *validation.Validator, now domain.Clock, logger *zap.Logger) AdminService {
	if now == nil {
		now = time.Now
	}
	return &adminService{repos: repos, cache: c, validator: v, now: now, logger: logger}
}

func (s *adminService) Analytics(ctx context.Context) (*domain.Analytics, error) {
	return s.repos.Stats.Analytics(ctx, adminRecentQuizzes)
}

func (s *adminService) ListQuizzes(ctx context.Context, filter domain.QuizFilter) (*domain.QuizPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = adminPageSize
	}
	if filter.Difficulty != "" && !filter.Difficulty.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown difficulty %q", filter.Difficulty))
	}
	quizzes, total, err := s.repos.Quizzes.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &domain.QuizPage{Quizzes: quizzes, Meta: domain.NewPageMeta(total, filter.Page, filter.Limit)}, nil
}

func (s *adminService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.repos.Quizzes.GetByID(ctx, id)
}

func (s *adminService) CreateQuiz(ctx context.Context, in dto.QuizInput) (*domain.Quiz, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	quiz := quizFromInput(in)
	if quiz.IsPublished {
		now := s.now().UTC()
		quiz.PublishedAt = &now
	}
	if err := s.repos.Quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	s.logger.Info("Quiz created", zap.String("quiz_id", quiz.ID), zap.String("slug", quiz.Slug))
	s.invalidateCatalog(ctx)
	return quiz, nil
}

// UpdateQuiz replaces the quiz with in. PublishedAt is set the first time the
// quiz becomes published and cleared when it is unpublished.
func (s *adminService) UpdateQuiz(ctx context.Context, id string, in dto.QuizInput) (*domain.Quiz, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	existing, err := s.repos.Quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	quiz := quizFromInput(in)
	quiz.ID = existing.ID
	quiz.Views = existing.Views
	quiz.CreatedAt = existing.CreatedAt
	switch {
	case !quiz.IsPublished:
		quiz.PublishedAt = nil
	case existing.IsPublished && existing.PublishedAt != nil:
		quiz.PublishedAt = existing.PublishedAt
	default:
		now := s.now().UTC()
		quiz.PublishedAt = &now
	}

	if err := s.repos.Quizzes.Update(ctx, quiz); err != nil {
		return nil, err
	}
	s.logger.Info("Quiz updated", zap.String("quiz_id", quiz.ID))
	s.invalidateCatalog(ctx)
	return quiz, nil
}

func (s *adminService) DeleteQuiz(ctx context.Context, id string) error {
	if err := s.repos.Quizzes.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Quiz deleted", zap.String("quiz_id", id))
	s.invalidateCatalog(ctx)
	return nil
}

func (s *adminService) TogglePublish(ctx context.Context, id string) (*domain.Quiz, error) {
	quiz, err := s.repos.Quizzes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	published := !quiz.IsPublished
	var at *time.Time
	if published {
		now := s.now().UTC()
		at = &now
	}
	if err := s.repos.Quizzes.SetPublished(ctx, id, published, at); err != nil {
		return nil, err
	}
	quiz.IsPublished = published
	quiz.PublishedAt = at

	s.logger.Info("Quiz publish state changed", zap.String("quiz_id", id), zap.Bool("published", published))
	s.invalidateCatalog(ctx)
	return quiz, nil
}

func (s *adminService) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	return s.repos.Categories.ListWithCounts(ctx)
}

func (s *adminService) CreateCategory(ctx context.Context, in dto.CategoryInput) (*domain.Category, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	category := &domain.Category{Name: strings.TrimSpace(in.Name), Slug: slugOrName(in)}
	if err := s.repos.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return category, nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id string, in dto.CategoryInput) (*domain.Category, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	category, err := s.repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(in.Name)
	category.Slug = slugOrName(in)
	if err := s.repos.Categories.Update(ctx, category); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return category, nil
}

// DeleteCategory refuses while any quiz still belongs to the category.
func (s *adminService) DeleteCategory(ctx context.Context, id string) error {
	count, err := s.repos.Quizzes.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewPreconditionFailedError(fmt.Sprintf("Cannot delete category with %d existing quizzes", count))
	}
	if err := s.repos.Categories.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *adminService) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	return s.repos.Categories.ListSubCategories(ctx, categoryID)
}

func (s *adminService) CreateSubCategory(ctx context.Context, categoryID string, in dto.CategoryInput) (*domain.SubCategory, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	if _, err := s.repos.Categories.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	sub := &domain.SubCategory{CategoryID: categoryID, Name: strings.TrimSpace(in.Name), Slug: slugOrName(in)}
	if err := s.repos.Categories.CreateSubCategory(ctx, sub); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	return sub, nil
}

func (s *adminService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.repos.Tags.List(ctx)
}

func (s *adminService) CreateTag(ctx context.Context, in dto.TagInput) (*domain.Tag, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}
	tag := &domain.Tag{Name: strings.TrimSpace(in.Name)}
	if err := s.repos.Tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// invalidateCatalog drops every cached catalog page. Failures are logged
// only; entries expire on their own.
func (s *adminService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, cache.ServicePrefix(cache.ServiceCatalog)); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

func slugOrName(in dto.CategoryInput) string {
	if in.Slug != "" {
		return in.Slug
	}
	return util.Slugify(in.Name)
}

func quizFromInput(in dto.QuizInput) *domain.Quiz {
	quiz := &domain.Quiz{
		Title:               strings.TrimSpace(in.Title),
		Description:         strings.TrimSpace(in.Description),
		Slug:                in.Slug,
		QuizPageTitle:       strings.TrimSpace(in.QuizPageTitle),
		QuizPageDescription: strings.TrimSpace(in.QuizPageDescription),
		Difficulty:          domain.Difficulty(in.Difficulty),
		IsPublished:         in.IsPublished,
		CategoryID:          in.CategoryID,
		SubCategoryID:       in.SubCategoryID,
		Questions:           make([]domain.Question, 0, len(in.Questions)),
		Tags:                make([]domain.Tag, 0, len(in.Tags)),
	}
	for _, q := range in.Questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			Text:         strings.TrimSpace(q.Text),
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	for _, name := range in.Tags {
		quiz.Tags = append(quiz.Tags, domain.Tag{Name: name})
	}
	return quiz
}
