package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"quiz-zone/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryRowColumns = []string{"id", "name", "slug", "created_at", "updated_at"}

func TestCategoryList(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(categoryRowColumns).
		AddRow("c1", "Geography", "geography", now, now).
		AddRow("c2", "Science", "science", now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, slug, created_at, updated_at FROM categories ORDER BY name ASC`)).
		WillReturnRows(rows)

	result, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Geography", result[0].Name)
	assert.Equal(t, "science", result[1].Slug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryListWithCounts(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	now := time.Now()
	rows := sqlmock.NewRows(append(categoryRowColumns, "sub_category_count", "quiz_count")).
		AddRow("c1", "Science", "science", now, now, 3, 12)
	mock.ExpectQuery(regexp.QuoteMeta(`AS sub_category_count`)).WillReturnRows(rows)

	result, err := repo.ListWithCounts(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].SubCategoryCount)
	assert.Equal(t, 12, result[0].QuizCount)
	assert.Equal(t, "Science", result[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetBySlug_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE slug = $1`)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	result, err := repo.GetBySlug(context.Background(), "missing")

	assert.Nil(t, result)
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO categories (id, name, slug, created_at, updated_at)`)).
		WithArgs(sqlmock.AnyArg(), "Science", "science", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	err := repo.Create(context.Background(), &domain.Category{Name: "Science", Slug: "science"})

	assert.True(t, domain.HasCode(err, domain.CodeConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryDelete(t *testing.T) {
	t.Run("referenced by quizzes", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCategoryDatabaseAdapter(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
			WithArgs("c1").
			WillReturnError(&pq.Error{Code: pqForeignKeyViolation})

		err := repo.Delete(context.Background(), "c1")
		assert.True(t, domain.HasCode(err, domain.CodePreconditionFailed))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCategoryDatabaseAdapter(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
			WithArgs("nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "nope")
		assert.True(t, domain.HasCode(err, domain.CodeNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryUpsertByName_ReturnsExistingRow(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (name) DO UPDATE`)).
		WithArgs(sqlmock.AnyArg(), "Science", "science", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("existing-id", created, time.Now()))

	category := &domain.Category{Name: "Science", Slug: "science"}
	err := repo.UpsertByName(context.Background(), category)

	require.NoError(t, err)
	assert.Equal(t, "existing-id", category.ID)
	assert.Equal(t, created, category.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryFindWithSubCategoriesAt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY c.id ASC OFFSET $1 LIMIT 1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(categoryRowColumns).AddRow("c3", "Science", "science", now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM sub_categories WHERE category_id = $1 ORDER BY name ASC`)).
		WithArgs("c3").
		WillReturnRows(sqlmock.NewRows([]string{"id", "category_id", "name", "slug", "created_at", "updated_at"}).
			AddRow("s1", "c3", "Physics", "physics", now, now))

	category, err := repo.FindWithSubCategoriesAt(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Science", category.Name)
	require.Len(t, category.SubCategories, 1)
	assert.Equal(t, "Physics", category.SubCategories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryCountWithSubCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewCategoryDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM categories c WHERE EXISTS`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountWithSubCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
