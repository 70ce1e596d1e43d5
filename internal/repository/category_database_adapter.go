package repository

import (
	"context"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"
	"quiz-zone/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	categoryColumns    = `id, name, slug, created_at, updated_at`
	subCategoryColumns = `id, category_id, name, slug, created_at, updated_at`

	hasSubCategories = `EXISTS (SELECT 1 FROM sub_categories s WHERE s.category_id = c.id)`
)

// CategoryDatabaseAdapter implements domain.CategoryRepository using sqlx.DB
type CategoryDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCategoryDatabaseAdapter creates a new instance of CategoryDatabaseAdapter
func NewCategoryDatabaseAdapter(db *sqlx.DB) domain.CategoryRepository {
	return &CategoryDatabaseAdapter{db: db}
}

func (a *CategoryDatabaseAdapter) List(ctx context.Context) ([]domain.Category, error) {
	var rows []models.Category
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY name ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, translateError(err, "categories")
	}
	result := make([]domain.Category, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainCategory(&rows[i]))
	}
	return result, nil
}

func (a *CategoryDatabaseAdapter) ListWithCounts(ctx context.Context) ([]domain.CategorySummary, error) {
	var rows []models.CategoryWithCounts
	query := `SELECT c.id, c.name, c.slug, c.created_at, c.updated_at,
		(SELECT COUNT(*) FROM sub_categories s WHERE s.category_id = c.id) AS sub_category_count,
		(SELECT COUNT(*) FROM quizzes q WHERE q.category_id = c.id) AS quiz_count
	FROM categories c
	ORDER BY c.name ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, translateError(err, "categories")
	}
	result := make([]domain.CategorySummary, 0, len(rows))
	for i := range rows {
		result = append(result, domain.CategorySummary{
			Category:         toDomainCategory(&rows[i].Category),
			SubCategoryCount: rows[i].SubCategoryCount,
			QuizCount:        rows[i].QuizCount,
		})
	}
	return result, nil
}

func (a *CategoryDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var row models.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, id); err != nil {
		return nil, translateError(err, "category")
	}
	c := toDomainCategory(&row)
	return &c, nil
}

func (a *CategoryDatabaseAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var row models.Category
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, slug); err != nil {
		return nil, translateError(err, "category")
	}
	c := toDomainCategory(&row)
	return &c, nil
}

func (a *CategoryDatabaseAdapter) Create(ctx context.Context, category *domain.Category) error {
	now := time.Now().UTC()
	if category.ID == "" {
		category.ID = util.NewULID()
	}
	category.CreatedAt, category.UpdatedAt = now, now

	query := `INSERT INTO categories (id, name, slug, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		category.ID, category.Name, category.Slug, category.CreatedAt, category.UpdatedAt)
	return translateError(err, "category")
}

func (a *CategoryDatabaseAdapter) Update(ctx context.Context, category *domain.Category) error {
	category.UpdatedAt = time.Now().UTC()
	query := `UPDATE categories SET name = $1, slug = $2, updated_at = $3 WHERE id = $4`
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		category.Name, category.Slug, category.UpdatedAt, category.ID)
	if err != nil {
		return translateError(err, "category")
	}
	return ensureAffected(res, "category")
}

func (a *CategoryDatabaseAdapter) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "category")
	}
	return ensureAffected(res, "category")
}

func (a *CategoryDatabaseAdapter) UpsertByName(ctx context.Context, category *domain.Category) error {
	now := time.Now().UTC()
	if category.ID == "" {
		category.ID = util.NewULID()
	}
	query := `INSERT INTO categories (id, name, slug, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (name) DO UPDATE SET updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at`
	err := GetExecutor(ctx, a.db).QueryRowxContext(ctx, query,
		category.ID, category.Name, category.Slug, now, now,
	).Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	return translateError(err, "category")
}

func (a *CategoryDatabaseAdapter) ListSubCategories(ctx context.Context, categoryID string) ([]domain.SubCategory, error) {
	var rows []models.SubCategory
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE category_id = $1 ORDER BY name ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, translateError(err, "sub categories")
	}
	result := make([]domain.SubCategory, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainSubCategory(&rows[i]))
	}
	return result, nil
}

func (a *CategoryDatabaseAdapter) GetSubCategoryBySlug(ctx context.Context, categoryID, slug string) (*domain.SubCategory, error) {
	var row models.SubCategory
	query := `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE category_id = $1 AND slug = $2`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, categoryID, slug); err != nil {
		return nil, translateError(err, "sub category")
	}
	s := toDomainSubCategory(&row)
	return &s, nil
}

func (a *CategoryDatabaseAdapter) CreateSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	now := time.Now().UTC()
	if sub.ID == "" {
		sub.ID = util.NewULID()
	}
	sub.CreatedAt, sub.UpdatedAt = now, now

	query := `INSERT INTO sub_categories (id, category_id, name, slug, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, query,
		sub.ID, sub.CategoryID, sub.Name, sub.Slug, sub.CreatedAt, sub.UpdatedAt)
	return translateError(err, "sub category")
}

func (a *CategoryDatabaseAdapter) UpsertSubCategory(ctx context.Context, sub *domain.SubCategory) error {
	now := time.Now().UTC()
	if sub.ID == "" {
		sub.ID = util.NewULID()
	}
	query := `INSERT INTO sub_categories (id, category_id, name, slug, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (category_id, name) DO UPDATE SET updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at`
	err := GetExecutor(ctx, a.db).QueryRowxContext(ctx, query,
		sub.ID, sub.CategoryID, sub.Name, sub.Slug, now, now,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	return translateError(err, "sub category")
}

func (a *CategoryDatabaseAdapter) CountWithSubCategories(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM categories c WHERE ` + hasSubCategories
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, query); err != nil {
		return 0, translateError(err, "categories")
	}
	return count, nil
}

func (a *CategoryDatabaseAdapter) FindWithSubCategoriesAt(ctx context.Context, offset int) (*domain.Category, error) {
	var row models.Category
	query := `SELECT c.id, c.name, c.slug, c.created_at, c.updated_at FROM categories c WHERE ` +
		hasSubCategories + ` ORDER BY c.id ASC OFFSET $1 LIMIT 1`
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &row, query, offset); err != nil {
		return nil, translateError(err, "category")
	}

	category := toDomainCategory(&row)
	subs, err := a.ListSubCategories(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	category.SubCategories = subs
	return &category, nil
}

func toDomainCategory(m *models.Category) domain.Category {
	return domain.Category{
		ID:        m.ID,
		Name:      m.Name,
		Slug:      m.Slug,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainSubCategory(m *models.SubCategory) domain.SubCategory {
	return domain.SubCategory{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Name:       m.Name,
		Slug:       m.Slug,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
