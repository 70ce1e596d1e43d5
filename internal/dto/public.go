package dto

import (
	"time"

	"quiz-zone/internal/domain"
)

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

// QuizCard is the compact quiz shape used in listings.
type QuizCard struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Slug            string     `json:"slug"`
	Difficulty      string     `json:"difficulty"`
	CategoryName    string     `json:"categoryName,omitempty"`
	CategorySlug    string     `json:"categorySlug,omitempty"`
	SubCategoryName string     `json:"subCategoryName,omitempty"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// NewQuizCard projects a quiz into a card.
func NewQuizCard(q domain.Quiz) QuizCard {
	card := QuizCard{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Slug:        q.Slug,
		Difficulty:  string(q.Difficulty),
		PublishedAt: q.PublishedAt,
		CreatedAt:   q.CreatedAt,
	}
	if q.Category != nil {
		card.CategoryName = q.Category.Name
		card.CategorySlug = q.Category.Slug
	}
	if q.SubCategory != nil {
		card.SubCategoryName = q.SubCategory.Name
	}
	return card
}

// NewQuizCards projects a slice of quizzes.
func NewQuizCards(qs []domain.Quiz) []QuizCard {
	cards := make([]QuizCard, 0, len(qs))
	for _, q := range qs {
		cards = append(cards, NewQuizCard(q))
	}
	return cards
}

// HomeCategory is one category section of the home page.
type HomeCategory struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Slug    string     `json:"slug"`
	Quizzes []QuizCard `json:"quizzes"`
}

// HomeResponse is the home page aggregate.
// @Description Home page aggregate
type HomeResponse struct {
	Categories []HomeCategory   `json:"categories"`
	Stats      domain.SiteStats `json:"stats"`
}

// CategoryPageResponse is one page of a category listing.
type CategoryPageResponse struct {
	Category          domain.Category      `json:"category"`
	SubCategories     []domain.SubCategory `json:"subCategories"`
	ActiveSubCategory *domain.SubCategory  `json:"activeSubCategory,omitempty"`
	Quizzes           []QuizCard           `json:"quizzes"`
	Meta              domain.PageMeta      `json:"meta"`
}

// QuizDetailResponse is a quiz page with related quizzes from its category.
type QuizDetailResponse struct {
	Quiz    domain.Quiz `json:"quiz"`
	Related []QuizCard  `json:"related"`
}

// ScoreRequest maps question index to the chosen option index.
// @Description Answers to score, keyed by question index
type ScoreRequest struct {
	Answers map[int]int `json:"answers" validate:"required"`
}

// QuestionResult reports one scored question.
type QuestionResult struct {
	Index        int    `json:"index"`
	Selected     *int   `json:"selected"`
	CorrectIndex int    `json:"correctIndex"`
	Correct      bool   `json:"correct"`
	Explanation  string `json:"explanation,omitempty"`
}

// ScoreResponse is the outcome of a quiz attempt.
type ScoreResponse struct {
	Correct     int              `json:"correct"`
	Total       int              `json:"total"`
	Percentage  int              `json:"percentage"`
	Message     string           `json:"message"`
	Completed   bool             `json:"completed"`
	ShowResults bool             `json:"showResults"`
	Progress    float64          `json:"progress"`
	Results     []QuestionResult `json:"results"`
}

// HoroscopeView is a reading with its sign's display data.
type HoroscopeView struct {
	domain.Horoscope
	Sign domain.ZodiacInfo `json:"sign"`
}

// HoroscopeDayResponse lists the readings of one date.
type HoroscopeDayResponse struct {
	Date       string          `json:"date"`
	Horoscopes []HoroscopeView `json:"horoscopes"`
}

// HistoryDayResponse lists events on a calendar day across years.
type HistoryDayResponse struct {
	Month  int                `json:"month"`
	Day    int                `json:"day"`
	Events []domain.PastEvent `json:"events"`
}
