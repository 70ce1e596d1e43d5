package domain

import (
	"context"
	"fmt"
	"time"
)

// Difficulty of a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every valid difficulty in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}

const (
	MinQuestionOptions = 2
	MaxQuestionOptions = 6
)

// Quiz is a titled set of multiple-choice questions. Questions and tag links
// are owned by the quiz and replaced wholesale on edit.
type Quiz struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	Slug                string       `json:"slug"`
	QuizPageTitle       string       `json:"quizPageTitle"`
	QuizPageDescription string       `json:"quizPageDescription"`
	Difficulty          Difficulty   `json:"difficulty"`
	IsPublished         bool         `json:"isPublished"`
	PublishedAt         *time.Time   `json:"publishedAt"`
	Views               int          `json:"views"`
	CategoryID          string       `json:"categoryId"`
	SubCategoryID       string       `json:"subCategoryId,omitempty"`
	Category            *Category    `json:"category,omitempty"`
	SubCategory         *SubCategory `json:"subCategory,omitempty"`
	Questions           []Question   `json:"questions,omitempty"`
	Tags                []Tag        `json:"tags,omitempty"`
	CreatedAt           time.Time    `json:"createdAt"`
	UpdatedAt           time.Time    `json:"updatedAt"`
}

// Question is one multiple-choice item of a quiz.
type Question struct {
	ID           string   `json:"id"`
	QuizID       string   `json:"quizId"`
	Position     int      `json:"position"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Validate checks the option list and that CorrectIndex points into it.
func (q Question) Validate() error {
	if q.Text == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) < MinQuestionOptions || len(q.Options) > MaxQuestionOptions {
		return NewInvalidInputError(fmt.Sprintf("question must have between %d and %d options", MinQuestionOptions, MaxQuestionOptions))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return NewInvalidInputError(fmt.Sprintf("option %d is empty", i))
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return NewInvalidInputError(fmt.Sprintf("correct index %d is out of range for %d options", q.CorrectIndex, len(q.Options)))
	}
	return nil
}

// Tag is shared between quizzes and never deleted with them.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// QuizFilter drives the admin listing.
type QuizFilter struct {
	Search       string
	CategorySlug string
	Difficulty   Difficulty
	IsPublished  *bool
	Page         int
	Limit        int
}

// Offset returns the row offset for the filter's page.
func (f QuizFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Total       int `json:"total"`
	TotalPages  int `json:"totalPages"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
}

// NewPageMeta computes page counts; TotalPages is never below one.
func NewPageMeta(total, page, perPage int) PageMeta {
	totalPages := 1
	if perPage > 0 && total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return PageMeta{Total: total, TotalPages: totalPages, CurrentPage: page, PerPage: perPage}
}

// QuizPage is one page of quizzes with its metadata.
type QuizPage struct {
	Quizzes []Quiz   `json:"quizzes"`
	Meta    PageMeta `json:"meta"`
}

// QuizRepository defines persistence for quizzes with their owned children.
type QuizRepository interface {
	// Create stores the quiz, its questions and tag links; tags are found or created by name.
	Create(ctx context.Context, quiz *Quiz) error
	// Update replaces scalar fields, questions and tag links.
	Update(ctx context.Context, quiz *Quiz) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*Quiz, error)
	GetBySlug(ctx context.Context, slug string) (*Quiz, error)
	List(ctx context.Context, filter QuizFilter) ([]Quiz, int, error)
	ListRecentTitles(ctx context.Context, categoryID, subCategoryID string, limit int) ([]string, error)
	ListPublishedByCategory(ctx context.Context, categoryID, subCategoryID string, page, perPage int) ([]Quiz, int, error)
	ListRecentPublishedByCategory(ctx context.Context, perCategory int) (map[string][]Quiz, error)
	ListRelated(ctx context.Context, quiz *Quiz, limit int) ([]Quiz, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]Quiz, error)
	ListPublishedSlugs(ctx context.Context) ([]Quiz, error)
	SetPublished(ctx context.Context, id string, published bool, at *time.Time) error
	IncrementViews(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, categoryID string) (int, error)
}

// TagRepository defines persistence for tags.
type TagRepository interface {
	List(ctx context.Context) ([]Tag, error)
	Create(ctx context.Context, tag *Tag) error
	FindOrCreate(ctx context.Context, name string) (*Tag, error)
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
