package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"
	"quiz-zone/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const pastEventColumns = `id, month, day, year, slug, title, description, category, tags, source_urls,
	event_date, is_published, created_at, updated_at`

// PastEventDatabaseAdapter implements domain.PastEventRepository using sqlx.DB
type PastEventDatabaseAdapter struct {
	db *sqlx.DB
}

// NewPastEventDatabaseAdapter creates a new instance of PastEventDatabaseAdapter
func NewPastEventDatabaseAdapter(db *sqlx.DB) domain.PastEventRepository {
	return &PastEventDatabaseAdapter{db: db}
}

func (a *PastEventDatabaseAdapter) LastUpdated(ctx context.Context) (*domain.CalendarDay, error) {
	var row struct {
		Month int `db:"month"`
		Day   int `db:"day"`
	}
	err := GetExecutor(ctx, a.db).GetContext(ctx, &row, `SELECT month, day FROM past_events ORDER BY updated_at DESC LIMIT 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err, "past events")
	}
	return &domain.CalendarDay{Month: row.Month, Day: row.Day}, nil
}

func (a *PastEventDatabaseAdapter) Count(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM past_events`); err != nil {
		return 0, translateError(err, "past events")
	}
	return count, nil
}

// Upsert keys on (month, day, year, slug); a repeated run refreshes the
// stored row and bumps updated_at, which moves the day cursor forward.
func (a *PastEventDatabaseAdapter) Upsert(ctx context.Context, event *domain.PastEvent) error {
	now := time.Now().UTC()
	if event.ID == "" {
		event.ID = util.NewULID()
	}
	if event.Tags == nil {
		event.Tags = []string{}
	}
	if event.SourceURLs == nil {
		event.SourceURLs = []string{}
	}

	query := `INSERT INTO past_events (` + pastEventColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (month, day, year, slug) DO UPDATE SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		category = EXCLUDED.category,
		tags = EXCLUDED.tags,
		source_urls = EXCLUDED.source_urls,
		event_date = EXCLUDED.event_date,
		is_published = EXCLUDED.is_published,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at`

	err := GetExecutor(ctx, a.db).QueryRowxContext(ctx, query,
		event.ID, event.Month, event.Day, event.Year, event.Slug, event.Title, event.Description,
		string(event.Category), pq.StringArray(event.Tags), pq.StringArray(event.SourceURLs),
		util.TimePtrToNullTime(event.EventDate), event.IsPublished, now, now,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	return translateError(err, "past event")
}

func (a *PastEventDatabaseAdapter) ListByMonthDay(ctx context.Context, month, day int) ([]domain.PastEvent, error) {
	query := `SELECT ` + pastEventColumns + ` FROM past_events
	WHERE month = $1 AND day = $2 AND is_published = TRUE
	ORDER BY year ASC`
	return a.list(ctx, query, month, day)
}

func (a *PastEventDatabaseAdapter) ListByCategory(ctx context.Context, category domain.EventCategory, limit int) ([]domain.PastEvent, error) {
	query := `SELECT ` + pastEventColumns + ` FROM past_events
	WHERE category = $1 AND is_published = TRUE
	ORDER BY year DESC LIMIT $2`
	return a.list(ctx, query, string(category), limit)
}

func (a *PastEventDatabaseAdapter) DistinctCategories(ctx context.Context) ([]domain.EventCategory, error) {
	var names []string
	query := `SELECT DISTINCT category FROM past_events WHERE is_published = TRUE ORDER BY category ASC`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &names, query); err != nil {
		return nil, translateError(err, "past events")
	}
	result := make([]domain.EventCategory, 0, len(names))
	for _, n := range names {
		result = append(result, domain.EventCategory(n))
	}
	return result, nil
}

func (a *PastEventDatabaseAdapter) list(ctx context.Context, query string, args ...any) ([]domain.PastEvent, error) {
	var rows []models.PastEvent
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, translateError(err, "past events")
	}
	result := make([]domain.PastEvent, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainPastEvent(&rows[i]))
	}
	return result, nil
}

func toDomainPastEvent(m *models.PastEvent) domain.PastEvent {
	return domain.PastEvent{
		ID:          m.ID,
		Month:       m.Month,
		Day:         m.Day,
		Year:        m.Year,
		Slug:        m.Slug,
		Title:       m.Title,
		Description: m.Description,
		Category:    domain.EventCategory(m.Category),
		Tags:        []string(m.Tags),
		SourceURLs:  []string(m.SourceURLs),
		EventDate:   util.NullTimeToPtr(m.EventDate),
		IsPublished: m.IsPublished,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
