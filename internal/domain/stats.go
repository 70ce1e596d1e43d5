package domain

import "context"

// SiteStats are the public counters shown on the home page.
type SiteStats struct {
	TotalQuizzes       int `json:"totalQuizzes"`
	TotalCategories    int `json:"totalCategories"`
	TotalSubCategories int `json:"totalSubCategories"`
}

// Analytics is the admin dashboard summary.
type Analytics struct {
	TotalQuizzes       int    `json:"totalQuizzes"`
	PublishedQuizzes   int    `json:"publishedQuizzes"`
	DraftQuizzes       int    `json:"draftQuizzes"`
	TotalViews         int    `json:"totalViews"`
	TotalCategories    int    `json:"totalCategories"`
	TotalSubCategories int    `json:"totalSubCategories"`
	RecentQuizzes      []Quiz `json:"recentQuizzes"`
}

// StatsRepository aggregates counts across tables.
type StatsRepository interface {
	SiteStats(ctx context.Context) (*SiteStats, error)
	Analytics(ctx context.Context, recent int) (*Analytics, error)
}
