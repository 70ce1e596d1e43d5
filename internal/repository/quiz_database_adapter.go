package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/repository/models"
	"quiz-zone/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	quizSelectColumns = `q.id, q.title, q.description, q.slug, q.quiz_page_title, q.quiz_page_description,
		q.difficulty, q.is_published, q.published_at, q.views, q.category_id, q.sub_category_id,
		q.created_at, q.updated_at,
		c.name AS category_name, c.slug AS category_slug,
		s.name AS sub_category_name, s.slug AS sub_category_slug`

	quizFrom = ` FROM quizzes q
	LEFT JOIN categories c ON c.id = q.category_id
	LEFT JOIN sub_categories s ON s.id = q.sub_category_id`

	quizRowColumns = `id, title, description, slug, quiz_page_title, quiz_page_description,
		difficulty, is_published, published_at, views, category_id, sub_category_id,
		created_at, updated_at, category_name, category_slug, sub_category_name, sub_category_slug`

	quizSelect = `SELECT ` + quizSelectColumns + quizFrom
)

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB. Writes
// touching children run in one transaction.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
	tx domain.TransactionManager
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db, tx: NewTransactionManagerAdapter(db)}
}

func (a *QuizDatabaseAdapter) Create(ctx context.Context, quiz *domain.Quiz) error {
	if err := validateQuestions(quiz.Questions); err != nil {
		return err
	}

	now := time.Now().UTC()
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	quiz.CreatedAt, quiz.UpdatedAt = now, now

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		query := `INSERT INTO quizzes (
			id, title, description, slug, quiz_page_title, quiz_page_description,
			difficulty, is_published, published_at, views, category_id, sub_category_id,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
		if _, err := exec.ExecContext(ctx, query,
			quiz.ID, quiz.Title, quiz.Description, quiz.Slug, quiz.QuizPageTitle, quiz.QuizPageDescription,
			string(quiz.Difficulty), quiz.IsPublished, util.TimePtrToNullTime(quiz.PublishedAt), quiz.Views,
			quiz.CategoryID, util.StringToNullString(quiz.SubCategoryID),
			quiz.CreatedAt, quiz.UpdatedAt,
		); err != nil {
			return translateError(err, "quiz")
		}

		if err := insertQuestions(ctx, exec, quiz); err != nil {
			return err
		}
		return linkTags(ctx, exec, quiz)
	})
}

func (a *QuizDatabaseAdapter) Update(ctx context.Context, quiz *domain.Quiz) error {
	if err := validateQuestions(quiz.Questions); err != nil {
		return err
	}
	quiz.UpdatedAt = time.Now().UTC()

	return a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)
		query := `UPDATE quizzes SET
			title = $1, description = $2, slug = $3, quiz_page_title = $4, quiz_page_description = $5,
			difficulty = $6, is_published = $7, published_at = $8, category_id = $9, sub_category_id = $10,
			updated_at = $11
		WHERE id = $12`
		res, err := exec.ExecContext(ctx, query,
			quiz.Title, quiz.Description, quiz.Slug, quiz.QuizPageTitle, quiz.QuizPageDescription,
			string(quiz.Difficulty), quiz.IsPublished, util.TimePtrToNullTime(quiz.PublishedAt),
			quiz.CategoryID, util.StringToNullString(quiz.SubCategoryID),
			quiz.UpdatedAt, quiz.ID,
		)
		if err != nil {
			return translateError(err, "quiz")
		}
		if err := ensureAffected(res, "quiz"); err != nil {
			return err
		}

		if _, err := exec.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = $1`, quiz.ID); err != nil {
			return translateError(err, "questions")
		}
		if _, err := exec.ExecContext(ctx, `DELETE FROM quiz_tags WHERE quiz_id = $1`, quiz.ID); err != nil {
			return translateError(err, "quiz tags")
		}

		if err := insertQuestions(ctx, exec, quiz); err != nil {
			return err
		}
		return linkTags(ctx, exec, quiz)
	})
}

// Delete removes the quiz; questions and tag links go with it through
// ON DELETE CASCADE while tags and categories stay.
func (a *QuizDatabaseAdapter) Delete(ctx context.Context, id string) error {
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, id)
	if err != nil {
		return translateError(err, "quiz")
	}
	return ensureAffected(res, "quiz")
}

func (a *QuizDatabaseAdapter) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return a.getOne(ctx, `q.id = $1`, id)
}

func (a *QuizDatabaseAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Quiz, error) {
	return a.getOne(ctx, `q.slug = $1`, slug)
}

func (a *QuizDatabaseAdapter) getOne(ctx context.Context, where string, arg any) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)

	var row models.QuizRow
	if err := exec.GetContext(ctx, &row, quizSelect+` WHERE `+where, arg); err != nil {
		return nil, translateError(err, "quiz")
	}
	quiz := toDomainQuiz(&row)

	var questions []models.Question
	questionQuery := `SELECT id, quiz_id, position, text, options, correct_index, explanation
	FROM questions WHERE quiz_id = $1 ORDER BY position ASC`
	if err := exec.SelectContext(ctx, &questions, questionQuery, quiz.ID); err != nil {
		return nil, translateError(err, "questions")
	}
	quiz.Questions = make([]domain.Question, 0, len(questions))
	for i := range questions {
		quiz.Questions = append(quiz.Questions, toDomainQuestion(&questions[i]))
	}

	var tags []models.QuizTag
	tagQuery := `SELECT qt.quiz_id, t.id AS tag_id, t.name
	FROM quiz_tags qt JOIN tags t ON t.id = qt.tag_id
	WHERE qt.quiz_id = $1 ORDER BY t.name ASC`
	if err := exec.SelectContext(ctx, &tags, tagQuery, quiz.ID); err != nil {
		return nil, translateError(err, "quiz tags")
	}
	quiz.Tags = make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		quiz.Tags = append(quiz.Tags, domain.Tag{ID: t.TagID, Name: t.Name})
	}

	return &quiz, nil
}

func (a *QuizDatabaseAdapter) List(ctx context.Context, filter domain.QuizFilter) ([]domain.Quiz, int, error) {
	var (
		conditions []string
		args       []any
	)
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(filter.Search); s != "" {
		p := addArg("%" + s + "%")
		conditions = append(conditions, "(q.title ILIKE "+p+" OR q.description ILIKE "+p+")")
	}
	if filter.CategorySlug != "" {
		conditions = append(conditions, "c.slug = "+addArg(filter.CategorySlug))
	}
	if filter.Difficulty != "" {
		conditions = append(conditions, "q.difficulty = "+addArg(string(filter.Difficulty)))
	}
	if filter.IsPublished != nil {
		conditions = append(conditions, "q.is_published = "+addArg(*filter.IsPublished))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	exec := GetExecutor(ctx, a.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*)`+quizFrom+where, args...); err != nil {
		return nil, 0, translateError(err, "quizzes")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	query := quizSelect + where + ` ORDER BY q.created_at DESC LIMIT ` + addArg(limit) + ` OFFSET ` + addArg(filter.Offset())

	var rows []models.QuizRow
	if err := exec.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, translateError(err, "quizzes")
	}
	return toDomainQuizzes(rows), total, nil
}

func (a *QuizDatabaseAdapter) ListRecentTitles(ctx context.Context, categoryID, subCategoryID string, limit int) ([]string, error) {
	var titles []string
	query := `SELECT title FROM quizzes WHERE category_id = $1 AND sub_category_id = $2 ORDER BY created_at DESC LIMIT $3`
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &titles, query, categoryID, subCategoryID, limit); err != nil {
		return nil, translateError(err, "quizzes")
	}
	return titles, nil
}

func (a *QuizDatabaseAdapter) ListPublishedByCategory(ctx context.Context, categoryID, subCategoryID string, page, perPage int) ([]domain.Quiz, int, error) {
	where := ` WHERE q.category_id = $1 AND q.is_published = TRUE`
	args := []any{categoryID}
	if subCategoryID != "" {
		where += ` AND q.sub_category_id = $2`
		args = append(args, subCategoryID)
	}

	exec := GetExecutor(ctx, a.db)

	var total int
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM quizzes q`+where, args...); err != nil {
		return nil, 0, translateError(err, "quizzes")
	}

	if page < 1 {
		page = 1
	}
	n := len(args)
	query := quizSelect + where + fmt.Sprintf(` ORDER BY q.created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, perPage, (page-1)*perPage)

	var rows []models.QuizRow
	if err := exec.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, translateError(err, "quizzes")
	}
	return toDomainQuizzes(rows), total, nil
}

func (a *QuizDatabaseAdapter) ListRecentPublishedByCategory(ctx context.Context, perCategory int) (map[string][]domain.Quiz, error) {
	query := `SELECT ` + quizRowColumns + ` FROM (
		SELECT ` + quizSelectColumns + `,
			ROW_NUMBER() OVER (PARTITION BY q.category_id ORDER BY q.created_at DESC) AS rn` + quizFrom + `
		WHERE q.is_published = TRUE
	) ranked
	WHERE ranked.rn <= $1
	ORDER BY category_id, created_at DESC`

	var rows []models.QuizRow
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, perCategory); err != nil {
		return nil, translateError(err, "quizzes")
	}

	result := make(map[string][]domain.Quiz)
	for i := range rows {
		q := toDomainQuiz(&rows[i])
		result[q.CategoryID] = append(result[q.CategoryID], q)
	}
	return result, nil
}

func (a *QuizDatabaseAdapter) ListRelated(ctx context.Context, quiz *domain.Quiz, limit int) ([]domain.Quiz, error) {
	query := quizSelect + ` WHERE q.category_id = $1 AND q.id <> $2 AND q.is_published = TRUE
	ORDER BY q.created_at DESC LIMIT $3`
	var rows []models.QuizRow
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, quiz.CategoryID, quiz.ID, limit); err != nil {
		return nil, translateError(err, "quizzes")
	}
	return toDomainQuizzes(rows), nil
}

func (a *QuizDatabaseAdapter) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Quiz, error) {
	query := quizSelect + ` WHERE q.created_at > $1 ORDER BY q.created_at DESC`
	var rows []models.QuizRow
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query, since); err != nil {
		return nil, translateError(err, "quizzes")
	}
	return toDomainQuizzes(rows), nil
}

func (a *QuizDatabaseAdapter) ListPublishedSlugs(ctx context.Context) ([]domain.Quiz, error) {
	query := quizSelect + ` WHERE q.is_published = TRUE ORDER BY q.updated_at DESC`
	var rows []models.QuizRow
	if err := GetExecutor(ctx, a.db).SelectContext(ctx, &rows, query); err != nil {
		return nil, translateError(err, "quizzes")
	}
	return toDomainQuizzes(rows), nil
}

func (a *QuizDatabaseAdapter) SetPublished(ctx context.Context, id string, published bool, at *time.Time) error {
	query := `UPDATE quizzes SET is_published = $1, published_at = $2, updated_at = $3 WHERE id = $4`
	res, err := GetExecutor(ctx, a.db).ExecContext(ctx, query, published, util.TimePtrToNullTime(at), time.Now().UTC(), id)
	if err != nil {
		return translateError(err, "quiz")
	}
	return ensureAffected(res, "quiz")
}

func (a *QuizDatabaseAdapter) IncrementViews(ctx context.Context, id string) error {
	_, err := GetExecutor(ctx, a.db).ExecContext(ctx, `UPDATE quizzes SET views = views + 1 WHERE id = $1`, id)
	return translateError(err, "quiz")
}

func (a *QuizDatabaseAdapter) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	if err := GetExecutor(ctx, a.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM quizzes WHERE category_id = $1`, categoryID); err != nil {
		return 0, translateError(err, "quizzes")
	}
	return count, nil
}

func validateQuestions(questions []domain.Question) error {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			return domain.NewInvalidInputError(fmt.Sprintf("question %d: %s", i+1, err.Error()))
		}
	}
	return nil
}

func insertQuestions(ctx context.Context, exec DBTX, quiz *domain.Quiz) error {
	query := `INSERT INTO questions (id, quiz_id, position, text, options, correct_index, explanation)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		q.QuizID = quiz.ID
		q.Position = i
		if _, err := exec.ExecContext(ctx, query,
			q.ID, q.QuizID, q.Position, q.Text, pq.StringArray(q.Options), q.CorrectIndex,
			util.StringToNullString(q.Explanation),
		); err != nil {
			return translateError(err, "question")
		}
	}
	return nil
}

// linkTags finds or creates every tag by name and links it to the quiz.
func linkTags(ctx context.Context, exec DBTX, quiz *domain.Quiz) error {
	seen := make(map[string]bool, len(quiz.Tags))
	linked := make([]domain.Tag, 0, len(quiz.Tags))
	for _, t := range quiz.Tags {
		name := strings.TrimSpace(t.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := findOrCreateTag(ctx, exec, name)
		if err != nil {
			return err
		}
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO quiz_tags (quiz_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			quiz.ID, tag.ID,
		); err != nil {
			return translateError(err, "quiz tag")
		}
		linked = append(linked, *tag)
	}
	quiz.Tags = linked
	return nil
}

func toDomainQuiz(m *models.QuizRow) domain.Quiz {
	q := domain.Quiz{
		ID:                  m.ID,
		Title:               m.Title,
		Description:         m.Description,
		Slug:                m.Slug,
		QuizPageTitle:       m.QuizPageTitle,
		QuizPageDescription: m.QuizPageDescription,
		Difficulty:          domain.Difficulty(m.Difficulty),
		IsPublished:         m.IsPublished,
		PublishedAt:         util.NullTimeToPtr(m.PublishedAt),
		Views:               m.Views,
		CategoryID:          m.CategoryID,
		SubCategoryID:       m.SubCategoryID.String,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.CategoryName.Valid {
		q.Category = &domain.Category{ID: m.CategoryID, Name: m.CategoryName.String, Slug: m.CategorySlug.String}
	}
	if m.SubCategoryID.Valid && m.SubCategoryName.Valid {
		q.SubCategory = &domain.SubCategory{
			ID:         m.SubCategoryID.String,
			CategoryID: m.CategoryID,
			Name:       m.SubCategoryName.String,
			Slug:       m.SubCategorySlug.String,
		}
	}
	return q
}

func toDomainQuizzes(rows []models.QuizRow) []domain.Quiz {
	result := make([]domain.Quiz, 0, len(rows))
	for i := range rows {
		result = append(result, toDomainQuiz(&rows[i]))
	}
	return result
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:           m.ID,
		QuizID:       m.QuizID,
		Position:     m.Position,
		Text:         m.Text,
		Options:      []string(m.Options),
		CorrectIndex: m.CorrectIndex,
		Explanation:  m.Explanation.String,
	}
}
