package llmgen

import (
	"fmt"
	"strings"
	"time"

	"quiz-zone/internal/domain"
)

const systemPrompt = "Return strict JSON only. No markdown, no prose outside JSON."

func quizPrompt(req domain.QuizGenerationRequest) string {
	var b strings.Builder
	b.WriteString("Create ONE complete, publish-ready quiz for a general audience.\n")
	fmt.Fprintf(&b, "Category: %s\n", req.CategoryName)
	if req.SubCategoryName != "" {
		fmt.Fprintf(&b, "Subcategory: %s\n", req.SubCategoryName)
	}
	b.WriteString(`
Hard rules:
- Be catchy, interesting or funny but accessible.
- SEO-friendly: provide "quizPageTitle" (3-70 chars), "quizPageDescription" (20-300 chars) and 1-10 "tags".
- The quiz must be TEXT-ONLY (no images or audio).
`)
	fmt.Fprintf(&b, "- Difficulty: %s.\n", req.Difficulty)
	fmt.Fprintf(&b, "- Provide exactly %d multiple-choice questions.\n", req.QuestionCount)
	b.WriteString(`- Each question has a "prompt", 2-6 text "options" and a zero-based "correctIndex" into options.
- Short "explanation" per question is optional.
- "title" and "description" can mirror the SEO fields or be concise display copies.
`)
	if len(req.AvoidTitles) > 0 {
		b.WriteString("\nDo not repeat or closely paraphrase these existing quizzes:\n")
		for _, t := range req.AvoidTitles {
			fmt.Fprintf(&b, "- %s\n", t)
		}
	}
	b.WriteString(`
Return ONLY a JSON object of this shape:
{"quizPageTitle": "", "quizPageDescription": "", "tags": [""], "difficulty": "easy|medium|hard",
 "title": "", "description": "",
 "questions": [{"prompt": "", "options": ["", ""], "correctIndex": 0, "explanation": ""}]}`)
	return b.String()
}

func horoscopePrompt(date time.Time, nonce string) string {
	signs := make([]string, 0, len(domain.ZodiacSigns))
	for _, info := range domain.ZodiacSigns {
		signs = append(signs, string(info.Sign))
	}
	return fmt.Sprintf(`Generate daily horoscopes for ALL zodiac signs for %s (UTC).
Return a JSON object where each key is a zodiac sign (%s).
Each sign must include:
- description: detailed description (at least 60 characters)
- luckyColor (optional)
- luckyNumber (optional integer 1-99)
- mood (optional)
Return only the JSON object. Include nonce: %s`,
		date.Format("2006-01-02"), strings.Join(signs, ", "), nonce)
}

func pastEventPrompt(req domain.PastEventGenerationRequest) string {
	return fmt.Sprintf(`You are an expert historical data generator.

Create exactly ONE concise, factual event that happened on %d/%d
in the Common Era (year > 0), belonging to the category "%s".

Requirements:
- The event must be historically accurate or widely documented.
- Choose any valid year between 1 CE and the present.
- Keep the title short and factual (no opinions).
- The description should be 2-3 clear sentences summarizing what happened and its significance.
- Include at least one credible source URL (Wikipedia or a well-known archive).
- Avoid duplication of previous events by varying year and region.
- Respond ONLY with a valid JSON object matching this format:
{"month": %d, "day": %d, "year": 0, "title": "", "description": "", "category": "%s", "tags": [""], "sourceUrls": [""]}`,
		req.Day.Month, req.Day.Day, req.Category, req.Day.Month, req.Day.Day, req.Category)
}
