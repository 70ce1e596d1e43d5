package repository

import (
	"context"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// StatsDatabaseAdapter implements domain.StatsRepository using sqlx.DB
type StatsDatabaseAdapter struct {
	db *sqlx.DB
}

// NewStatsDatabaseAdapter creates a new instance of StatsDatabaseAdapter
func NewStatsDatabaseAdapter(db *sqlx.DB) domain.StatsRepository {
	return &StatsDatabaseAdapter{db: db}
}

func (a *StatsDatabaseAdapter) SiteStats(ctx context.Context) (*domain.SiteStats, error) {
	var row struct {
		TotalQuizzes       int `db:"total_quizzes"`
		TotalCategories    int `db:"total_categories"`
		TotalSubCategories int `db:"total_sub_categories"`
	}
	query := `SELECT
		(SELECT COUNT(*) FROM quizzes WHERE is_published = TRUE) AS total_quizzes,
		(SELECT COUNT(*) FROM categories) AS total_categories,
		(SELECT COUNT(*) FROM sub_categories) AS total_sub_categories`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query); err != nil {
		return nil, translateError(err, "stats")
	}
	return &domain.SiteStats{
		TotalQuizzes:       row.TotalQuizzes,
		TotalCategories:    row.TotalCategories,
		TotalSubCategories: row.TotalSubCategories,
	}, nil
}

func (a *StatsDatabaseAdapter) Analytics(ctx context.Context, recent int) (*domain.Analytics, error) {
	exec := GetExecutor(ctx, a.db)

	var row struct {
		TotalQuizzes       int `db:"total_quizzes"`
		PublishedQuizzes   int `db:"published_quizzes"`
		TotalViews         int `db:"total_views"`
		TotalCategories    int `db:"total_categories"`
		TotalSubCategories int `db:"total_sub_categories"`
	}
	query := `SELECT
		(SELECT COUNT(*) FROM quizzes) AS total_quizzes,
		(SELECT COUNT(*) FROM quizzes WHERE is_published = TRUE) AS published_quizzes,
		(SELECT COALESCE(SUM(views), 0) FROM quizzes) AS total_views,
		(SELECT COUNT(*) FROM categories) AS total_categories,
		(SELECT COUNT(*) FROM sub_categories) AS total_sub_categories`
	if err := exec.GetContext(ctx, &row, query); err != nil {
		return nil, translateError(err, "analytics")
	}

	var rows []models.QuizRow
	if err := exec.SelectContext(ctx, &rows, quizSelect+` ORDER BY q.created_at DESC LIMIT $1`, recent); err != nil {
		return nil, translateError(err, "analytics")
	}

	return &domain.Analytics{
		TotalQuizzes:       row.TotalQuizzes,
		PublishedQuizzes:   row.PublishedQuizzes,
		DraftQuizzes:       row.TotalQuizzes - row.PublishedQuizzes,
		TotalViews:         row.TotalViews,
		TotalCategories:    row.TotalCategories,
		TotalSubCategories: row.TotalSubCategories,
		RecentQuizzes:      toDomainQuizzes(rows),
	}, nil
}
