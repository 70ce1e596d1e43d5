// Package models holds the row shapes scanned by the sqlx adapters.
package models

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Category struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CategoryWithCounts is a category row joined with child counts.
type CategoryWithCounts struct {
	Category
	SubCategoryCount int `db:"sub_category_count"`
	QuizCount        int `db:"quiz_count"`
}

type SubCategory struct {
	ID         string    `db:"id"`
	CategoryID string    `db:"category_id"`
	Name       string    `db:"name"`
	Slug       string    `db:"slug"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Quiz struct {
	ID                  string         `db:"id"`
	Title               string         `db:"title"`
	Description         string         `db:"description"`
	Slug                string         `db:"slug"`
	QuizPageTitle       string         `db:"quiz_page_title"`
	QuizPageDescription string         `db:"quiz_page_description"`
	Difficulty          string         `db:"difficulty"`
	IsPublished         bool           `db:"is_published"`
	PublishedAt         sql.NullTime   `db:"published_at"`
	Views               int            `db:"views"`
	CategoryID          string         `db:"category_id"`
	SubCategoryID       sql.NullString `db:"sub_category_id"`
	CreatedAt           time.Time      `db:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at"`
}

// QuizRow is a quiz joined with its category and subcategory names.
type QuizRow struct {
	Quiz
	CategoryName    sql.NullString `db:"category_name"`
	CategorySlug    sql.NullString `db:"category_slug"`
	SubCategoryName sql.NullString `db:"sub_category_name"`
	SubCategorySlug sql.NullString `db:"sub_category_slug"`
}

type Question struct {
	ID           string         `db:"id"`
	QuizID       string         `db:"quiz_id"`
	Position     int            `db:"position"`
	Text         string         `db:"text"`
	Options      pq.StringArray `db:"options"`
	CorrectIndex int            `db:"correct_index"`
	Explanation  sql.NullString `db:"explanation"`
}

type Tag struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// QuizTag is a tag joined through quiz_tags.
type QuizTag struct {
	QuizID string `db:"quiz_id"`
	TagID  string `db:"tag_id"`
	Name   string `db:"name"`
}

type Horoscope struct {
	ID          string         `db:"id"`
	ZodiacSign  string         `db:"zodiac_sign"`
	Date        time.Time      `db:"date"`
	Description string         `db:"description"`
	LuckyColor  sql.NullString `db:"lucky_color"`
	LuckyNumber sql.NullInt64  `db:"lucky_number"`
	Mood        sql.NullString `db:"mood"`
	CreatedAt   time.Time      `db:"created_at"`
}

type PastEvent struct {
	ID          string         `db:"id"`
	Month       int            `db:"month"`
	Day         int            `db:"day"`
	Year        int            `db:"year"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Category    string         `db:"category"`
	Tags        pq.StringArray `db:"tags"`
	SourceURLs  pq.StringArray `db:"source_urls"`
	EventDate   sql.NullTime   `db:"event_date"`
	IsPublished bool           `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
