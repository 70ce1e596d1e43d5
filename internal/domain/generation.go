package domain

import (
	"context"
	"time"
)

// QuizGenerationRequest is the target resolved by the quiz job.
type QuizGenerationRequest struct {
	CategoryName    string
	SubCategoryName string
	Difficulty      Difficulty
	QuestionCount   int
	AvoidTitles     []string
}

// GeneratedQuiz is the document a model must return for a quiz.
type GeneratedQuiz struct {
	QuizPageTitle       string              `json:"quizPageTitle" validate:"required,min=3,max=70"`
	QuizPageDescription string              `json:"quizPageDescription" validate:"required,min=20,max=300"`
	Tags                []string            `json:"tags" validate:"min=1,max=10,dive,required,max=50"`
	Difficulty          Difficulty          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Title               string              `json:"title" validate:"required,max=200"`
	Description         string              `json:"description" validate:"required"`
	Questions           []GeneratedQuestion `json:"questions" validate:"min=5,max=10,dive"`
}

// GeneratedQuestion is one question of a GeneratedQuiz.
type GeneratedQuestion struct {
	Prompt       string   `json:"prompt" validate:"required"`
	Options      []string `json:"options" validate:"min=2,max=6,dive,required"`
	CorrectIndex int      `json:"correctIndex" validate:"option_index"`
	Explanation  string   `json:"explanation,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// GeneratedHoroscope is the reading for one sign.
type GeneratedHoroscope struct {
	Description string `json:"description" validate:"required,min=60"`
	LuckyColor  string `json:"luckyColor,omitempty" validate:"omitempty,max=50"`
	LuckyNumber int    `json:"luckyNumber,omitempty" validate:"omitempty,min=1,max=99"`
	Mood        string `json:"mood,omitempty" validate:"omitempty,max=50"`
}

// GeneratedHoroscopeDay maps every sign to its reading. All twelve are required.
type GeneratedHoroscopeDay map[ZodiacSign]GeneratedHoroscope

// PastEventGenerationRequest is the target resolved by the past-event job.
type PastEventGenerationRequest struct {
	Day      CalendarDay
	Category EventCategory
}

// GeneratedPastEvent is the document a model must return for a historical event.
type GeneratedPastEvent struct {
	Month       int           `json:"month" validate:"min=1,max=12"`
	Day         int           `json:"day" validate:"min=1,max=31"`
	Year        int           `json:"year" validate:"gt=0"`
	Title       string        `json:"title" validate:"required,min=3,max=200"`
	Description string        `json:"description" validate:"required,min=20"`
	Category    EventCategory `json:"category" validate:"required,event_category"`
	Tags        []string      `json:"tags"`
	SourceURLs  []string      `json:"sourceUrls" validate:"dive,url"`
}

// ContentGenerator produces schema-validated documents from a language model.
// Implementations return a CodeGenerationSchema error when the model output
// does not validate and a CodeLLMServiceError when the call itself fails.
type ContentGenerator interface {
	GenerateQuiz(ctx context.Context, req QuizGenerationRequest) (*GeneratedQuiz, error)
	GenerateHoroscopes(ctx context.Context, date time.Time) (GeneratedHoroscopeDay, error)
	GeneratePastEvent(ctx context.Context, req PastEventGenerationRequest) (*GeneratedPastEvent, error)
}

// JobResult summarises one generation or share run.
type JobResult struct {
	Job     string         `json:"job"`
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

const (
	JobStatusCreated = "created"
	JobStatusNoop    = "noop"
	JobStatusShared  = "shared"
)

// RandomSource is the subset of math/rand used by selection steps.
type RandomSource interface {
	IntN(n int) int
}

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time
