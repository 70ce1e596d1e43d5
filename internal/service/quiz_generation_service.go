package service

import (
	"context"
	"fmt"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/util"

	"go.uber.org/zap"
)

// quizGenerationService creates one unpublished quiz per run for a random
// subcategory.
type quizGenerationService struct {
	categoryRepo domain.CategoryRepository
	quizRepo     domain.QuizRepository
	generator    domain.ContentGenerator
	rnd          domain.RandomSource
	cfg          config.GenerationConfig
	logger       *zap.Logger
}

func NewQuizGenerationService(
	categoryRepo domain.CategoryRepository,
	quizRepo domain.QuizRepository,
	generator domain.ContentGenerator,
	rnd domain.RandomSource,
	cfg config.GenerationConfig,
	logger *zap.Logger,
) Job {
	if cfg.MinQuestions <= 0 {
		cfg.MinQuestions = 5
	}
	if cfg.MaxQuestions < cfg.MinQuestions {
		cfg.MaxQuestions = cfg.MinQuestions
	}
	if cfg.ExistingTitlesLimit <= 0 {
		cfg.ExistingTitlesLimit = 10
	}
	return &quizGenerationService{
		categoryRepo: categoryRepo,
		quizRepo:     quizRepo,
		generator:    generator,
		rnd:          rnd,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *quizGenerationService) Name() string { return JobQuiz }

func (s *quizGenerationService) Run(ctx context.Context, _ JobOptions) (*domain.JobResult, error) {
	count, err := s.categoryRepo.CountWithSubCategories(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.NewPreconditionFailedError("no categories with subcategories found")
	}

	category, err := s.categoryRepo.FindWithSubCategoriesAt(ctx, s.rnd.IntN(count))
	if err != nil {
		return nil, err
	}
	if len(category.SubCategories) == 0 {
		return nil, domain.NewPreconditionFailedError(fmt.Sprintf("category %q has no subcategories", category.Name))
	}
	sub := category.SubCategories[s.rnd.IntN(len(category.SubCategories))]

	existing, err := s.quizRepo.ListRecentTitles(ctx, category.ID, sub.ID, s.cfg.ExistingTitlesLimit)
	if err != nil {
		return nil, err
	}

	req := domain.QuizGenerationRequest{
		CategoryName:    category.Name,
		SubCategoryName: sub.Name,
		Difficulty:      domain.Difficulties[s.rnd.IntN(len(domain.Difficulties))],
		QuestionCount:   util.IntBetween(s.rnd, s.cfg.MinQuestions, s.cfg.MaxQuestions),
		AvoidTitles:     existing,
	}
	s.logger.Info("Generating quiz",
		zap.String("category", category.Name),
		zap.String("sub_category", sub.Name),
		zap.String("difficulty", string(req.Difficulty)),
		zap.Int("questions", req.QuestionCount),
		zap.Int("avoid_titles", len(existing)),
	)

	doc, err := s.generator.GenerateQuiz(ctx, req)
	if err != nil {
		return nil, err
	}

	quiz := quizFromGenerated(doc, category.ID, sub.ID)
	if quiz.Slug == "" {
		return nil, domain.NewGenerationSchemaError(fmt.Errorf("quiz page title %q yields an empty slug", doc.QuizPageTitle))
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	s.logger.Info("Quiz saved", zap.String("quiz_id", quiz.ID), zap.String("slug", quiz.Slug))
	return &domain.JobResult{
		Job:     JobQuiz,
		Status:  domain.JobStatusCreated,
		Message: fmt.Sprintf("Created quiz %q in %s / %s", quiz.Title, category.Name, sub.Name),
		Details: map[string]any{
			"quizId":      quiz.ID,
			"slug":        quiz.Slug,
			"category":    category.Name,
			"subCategory": sub.Name,
			"difficulty":  string(quiz.Difficulty),
			"questions":   len(quiz.Questions),
		},
	}, nil
}

// quizFromGenerated maps a validated document to an unpublished quiz.
func quizFromGenerated(doc *domain.GeneratedQuiz, categoryID, subCategoryID string) *domain.Quiz {
	quiz := &domain.Quiz{
		Title:               doc.Title,
		Description:         doc.Description,
		Slug:                util.Slugify(doc.QuizPageTitle),
		QuizPageTitle:       doc.QuizPageTitle,
		QuizPageDescription: doc.QuizPageDescription,
		Difficulty:          doc.Difficulty,
		CategoryID:          categoryID,
		SubCategoryID:       subCategoryID,
		Questions:           make([]domain.Question, 0, len(doc.Questions)),
		Tags:                make([]domain.Tag, 0, len(doc.Tags)),
	}
	for _, q := range doc.Questions {
		quiz.Questions = append(quiz.Questions, domain.Question{
			Text:         q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}
	for _, t := range doc.Tags {
		quiz.Tags = append(quiz.Tags, domain.Tag{Name: t})
	}
	return quiz
}
