package domain

import (
	"context"
	"time"
)

// EventCategory classifies a historical event.
type EventCategory string

// EventCategories is the fixed round-robin order used by generation.
var EventCategories = []EventCategory{
	"war",
	"discovery",
	"politics",
	"science",
	"art",
	"sports",
	"technology",
	"medicine",
	"exploration",
	"literature",
	"music",
	"economy",
	"religion",
	"disaster",
	"revolution",
	"invention",
}

func (c EventCategory) Valid() bool {
	for _, v := range EventCategories {
		if c == v {
			return true
		}
	}
	return false
}

// EventCategoryFor picks the category for the n-th stored event.
func EventCategoryFor(count int) EventCategory {
	if count < 0 {
		count = -count
	}
	return EventCategories[count%len(EventCategories)]
}

// PastEvent is a dated historical event. (Month, Day, Year, Slug) is unique.
type PastEvent struct {
	ID          string        `json:"id"`
	Month       int           `json:"month"`
	Day         int           `json:"day"`
	Year        int           `json:"year"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    EventCategory `json:"category"`
	Tags        []string      `json:"tags"`
	SourceURLs  []string      `json:"sourceUrls"`
	EventDate   *time.Time    `json:"eventDate,omitempty"`
	IsPublished bool          `json:"isPublished"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CalendarDay is a month/day pair without a year.
type CalendarDay struct {
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NextLeapDay returns the day after last on a leap-year calendar so Feb 29 is
// part of the cycle. A nil last starts the cycle at Jan 1.
func NextLeapDay(last *CalendarDay, leapYear int) CalendarDay {
	start := time.Date(leapYear, time.January, 0, 0, 0, 0, 0, time.UTC)
	if last != nil && last.Month > 0 && last.Day > 0 {
		start = time.Date(leapYear, time.Month(last.Month), last.Day, 0, 0, 0, 0, time.UTC)
	}
	next := start.AddDate(0, 0, 1)
	return CalendarDay{Month: int(next.Month()), Day: next.Day()}
}

// PastEventRepository defines persistence for historical events.
type PastEventRepository interface {
	// LastUpdated returns the calendar day of the most recently updated event, or nil.
	LastUpdated(ctx context.Context) (*CalendarDay, error)
	Count(ctx context.Context) (int, error)
	// Upsert inserts or updates on (month, day, year, slug) and fills ID and timestamps.
	Upsert(ctx context.Context, event *PastEvent) error
	ListByMonthDay(ctx context.Context, month, day int) ([]PastEvent, error)
	ListByCategory(ctx context.Context, category EventCategory, limit int) ([]PastEvent, error)
	DistinctCategories(ctx context.Context) ([]EventCategory, error)
}
