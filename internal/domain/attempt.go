package domain

import (
	"fmt"
	"math"
)

// QuizAttempt tracks one reader's answers to a quiz. It is not persisted.
type QuizAttempt struct {
	questions   []Question
	answers     map[int]int
	completed   bool
	showResults bool
}

// NewQuizAttempt starts an empty attempt over the given questions.
func NewQuizAttempt(questions []Question) *QuizAttempt {
	return &QuizAttempt{
		questions: questions,
		answers:   make(map[int]int),
	}
}

// SetAnswer records option for question. Re-selecting the current answer
// changes nothing. The attempt completes once every question is answered and
// results are revealed at that moment.
func (a *QuizAttempt) SetAnswer(question, option int) error {
	if question < 0 || question >= len(a.questions) {
		return NewInvalidInputError(fmt.Sprintf("question %d does not exist", question))
	}
	if option < 0 || option >= len(a.questions[question].Options) {
		return NewInvalidInputError(fmt.Sprintf("option %d does not exist for question %d", option, question))
	}
	if current, ok := a.answers[question]; ok && current == option {
		return nil
	}

	a.answers[question] = option
	total := len(a.questions)
	a.completed = total > 0 && len(a.answers) == total
	if a.completed {
		a.showResults = true
	}
	return nil
}

// Reset clears every answer and hides results.
func (a *QuizAttempt) Reset() {
	a.answers = make(map[int]int)
	a.completed = false
	a.showResults = false
}

// RevealResults shows the results of a completed attempt.
func (a *QuizAttempt) RevealResults() error {
	if !a.completed {
		return NewPreconditionFailedError("answer every question before revealing results")
	}
	a.showResults = true
	return nil
}

func (a *QuizAttempt) HideResults() {
	a.showResults = false
}

func (a *QuizAttempt) Completed() bool   { return a.completed }
func (a *QuizAttempt) ShowResults() bool { return a.showResults }
func (a *QuizAttempt) Answered() int     { return len(a.answers) }

// Answer returns the selected option for question.
func (a *QuizAttempt) Answer(question int) (int, bool) {
	v, ok := a.answers[question]
	return v, ok
}

// IsCorrect reports whether question was answered correctly.
func (a *QuizAttempt) IsCorrect(question int) bool {
	v, ok := a.answers[question]
	return ok && question < len(a.questions) && a.questions[question].CorrectIndex == v
}

// Progress is the answered share in percent.
func (a *QuizAttempt) Progress() float64 {
	if len(a.questions) == 0 {
		return 0
	}
	return float64(len(a.answers)) / float64(len(a.questions)) * 100
}

// Score of an attempt.
type Score struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func (a *QuizAttempt) Score() Score {
	correct := 0
	for q := range a.answers {
		if a.IsCorrect(q) {
			correct++
		}
	}
	total := len(a.questions)
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return Score{Correct: correct, Total: total, Percentage: pct}
}

// ScoreMessage returns the headline shown for a score percentage.
func ScoreMessage(percentage int) string {
	switch {
	case percentage == 100:
		return "Perfect! You're a master! 🏆"
	case percentage >= 80:
		return "Excellent work! 🌟"
	case percentage >= 60:
		return "Good job! Keep it up! 👍"
	case percentage >= 40:
		return "Not bad! Room for improvement! 📚"
	default:
		return "Keep practicing! You'll get better! 💪"
	}
}
