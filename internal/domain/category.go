package domain

import (
	"context"
	"time"
)

// Category groups quizzes at the top level.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// SubCategory belongs to exactly one Category; its name is unique within it.
type SubCategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CategorySummary is a category with its child counts, used by listings.
type CategorySummary struct {
	Category
	SubCategoryCount int `json:"subCategoryCount"`
	QuizCount        int `json:"quizCount"`
}

// CategoryRepository defines persistence for categories and subcategories.
type CategoryRepository interface {
	List(ctx context.Context) ([]Category, error)
	ListWithCounts(ctx context.Context) ([]CategorySummary, error)
	GetByID(ctx context.Context, id string) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
	// UpsertByName inserts the category or returns the stored one with the same name.
	UpsertByName(ctx context.Context, category *Category) error

	ListSubCategories(ctx context.Context, categoryID string) ([]SubCategory, error)
	GetSubCategoryBySlug(ctx context.Context, categoryID, slug string) (*SubCategory, error)
	CreateSubCategory(ctx context.Context, sub *SubCategory) error
	UpsertSubCategory(ctx context.Context, sub *SubCategory) error

	// CountWithSubCategories counts categories owning at least one subcategory.
	CountWithSubCategories(ctx context.Context) (int, error)
	// FindWithSubCategoriesAt returns the offset-th such category ordered by id,
	// with its subcategories loaded.
	FindWithSubCategoriesAt(ctx context.Context, offset int) (*Category, error)
}
