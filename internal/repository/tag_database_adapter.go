package repository

import (
	"context"
	"strings"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"
	"quiz-zone/internal/util"

	"github.com/jmoiron/sqlx"
)

// TagDatabaseAdapter implements domain.TagRepository using sqlx.DB
type TagDatabaseAdapter struct {
	db *sqlx.DB
}

// NewTagDatabaseAdapter creates a new instance of TagDatabaseAdapter
func NewTagDatabaseAdapter(db *sqlx.DB) domain.TagRepository {
	return &TagDatabaseAdapter{db: db}
}

func (a *TagDatabaseAdapter) List(ctx context.Context) ([]domain.Tag, error) {
	var rows []models.Tag
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, `SELECT id, name, created_at FROM tags ORDER BY name ASC`); err != nil {
		return nil, translateError(err, "tags")
	}
	result := make([]domain.Tag, 0, len(rows))
	for _, r := range rows {
		result = append(result, domain.Tag{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt})
	}
	return result, nil
}

func (a *TagDatabaseAdapter) Create(ctx context.Context, tag *domain.Tag) error {
	if tag.ID == "" {
		tag.ID = util.NewULID()
	}
	tag.CreatedAt = time.Now().UTC()
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx,
		`INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)`,
		tag.ID, tag.Name, tag.CreatedAt)
	return translateError(err, "tag")
}

func (a *TagDatabaseAdapter) FindOrCreate(ctx context.Context, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewInvalidInputError("tag name is required")
	}
	return findOrCreateTag(ctx, GetExecutor(ctx, a.db), name)
}

// findOrCreateTag relies on the no-op DO UPDATE so RETURNING yields the
// existing row on conflict.
func findOrCreateTag(ctx context.Context, exec DBTX, name string) (*domain.Tag, error) {
	tag := domain.Tag{ID: util.NewULID(), Name: name}
	query := `INSERT INTO tags (id, name, created_at) VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
	RETURNING id, created_at`
	if err := exec.QueryRowxContext(ctx, query, tag.ID, tag.Name, time.Now().UTC()).Scan(&tag.ID, &tag.CreatedAt); err != nil {
		return nil, translateError(err, "tag")
	}
	return &tag, nil
}
