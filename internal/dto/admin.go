package dto

// QuestionInput is one question of an admin quiz form.
type QuestionInput struct {
	Text         string   `json:"text" validate:"required"`
	Options      []string `json:"options" validate:"min=2,max=6,dive,required"`
	CorrectIndex int      `json:"correctIndex" validate:"min=0,max=5,option_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// QuizInput is the admin create/update form.
// @Description Quiz create or update payload
type QuizInput struct {
	Title               string          `json:"title" validate:"required,min=1,max=200"`
	Description         string          `json:"description" validate:"required,min=10,max=500"`
	Slug                string          `json:"slug" validate:"required,slug"`
	QuizPageTitle       string          `json:"quizPageTitle" validate:"required,min=1,max=200"`
	QuizPageDescription string          `json:"quizPageDescription" validate:"required,min=10"`
	Difficulty          string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	CategoryID          string          `json:"categoryId" validate:"required"`
	SubCategoryID       string          `json:"subCategoryId,omitempty"`
	IsPublished         bool            `json:"isPublished"`
	Questions           []QuestionInput `json:"questions" validate:"min=1,dive"`
	Tags                []string        `json:"tags" validate:"dive,required,max=50"`
}

// CategoryInput creates or renames a category or subcategory. An empty slug
// is derived from the name.
type CategoryInput struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Slug string `json:"slug,omitempty" validate:"omitempty,slug"`
}

type TagInput struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// LoginRequest is the admin login form.
type LoginRequest struct {
	Password string `json:"password" form:"password" validate:"required"`
}

// JobRequest optionally pins a generation job to a date (YYYY-MM-DD).
type JobRequest struct {
	Date string `json:"date,omitempty"`
}

// Result is the soft result envelope returned by every admin action.
// @Description Admin action result
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful Result.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps an error message in a failed Result.
func Fail(msg string) Result {
	return Result{Success: false, Error: msg}
}
