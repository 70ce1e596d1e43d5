package llmgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/util"
	"quiz-zone/internal/validation"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// NewModel builds the langchaingo client for the configured provider.
func NewModel(cfg config.LLMConfig) (llms.Model, error) {
	switch strings.ToLower(cfg.Provider) {
	case "ollama":
		opts := []ollama.Option{ollama.WithModel(cfg.QuizModel), ollama.WithFormat("json")}
		if cfg.OllamaURL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.OllamaURL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return llm, nil
	case "openai", "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("llm api key cannot be empty for provider %q", cfg.Provider)
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey), openai.WithModel(cfg.QuizModel)}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}

// Generator implements domain.ContentGenerator over any langchaingo model.
// Every response is parsed as JSON and validated before it is returned.
type Generator struct {
	model     llms.Model
	cfg       config.LLMConfig
	validator *validation.Validator
	logger    *zap.Logger
	nonce     func() string
}

func NewGenerator(model llms.Model, cfg config.LLMConfig, v *validation.Validator, logger *zap.Logger) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &Generator{
		model:     model,
		cfg:       cfg,
		validator: v,
		logger:    logger,
		nonce:     util.NewULID,
	}
}

var _ domain.ContentGenerator = (*Generator)(nil)

func (g *Generator) GenerateQuiz(ctx context.Context, req domain.QuizGenerationRequest) (*domain.GeneratedQuiz, error) {
	var doc domain.GeneratedQuiz
	if err := g.generate(ctx, g.cfg.QuizModel, quizPrompt(req), &doc); err != nil {
		return nil, err
	}
	if err := g.validator.Struct(doc); err != nil {
		return nil, g.schemaError("quiz", err)
	}
	return &doc, nil
}

func (g *Generator) GenerateHoroscopes(ctx context.Context, date time.Time) (domain.GeneratedHoroscopeDay, error) {
	var raw map[string]domain.GeneratedHoroscope
	if err := g.generate(ctx, g.cfg.HoroscopeModel, horoscopePrompt(date, g.nonce()), &raw); err != nil {
		return nil, err
	}

	day := make(domain.GeneratedHoroscopeDay, len(raw))
	for key, reading := range raw {
		day[domain.ZodiacSign(strings.ToUpper(strings.TrimSpace(key)))] = reading
	}
	if err := g.validator.HoroscopeDay(day); err != nil {
		return nil, g.schemaError("horoscope", err)
	}
	return day, nil
}

func (g *Generator) GeneratePastEvent(ctx context.Context, req domain.PastEventGenerationRequest) (*domain.GeneratedPastEvent, error) {
	var doc domain.GeneratedPastEvent
	if err := g.generate(ctx, g.cfg.PastEventModel, pastEventPrompt(req), &doc); err != nil {
		return nil, err
	}
	if err := g.validator.Struct(doc); err != nil {
		return nil, g.schemaError("past event", err)
	}
	return &doc, nil
}

func (g *Generator) generate(ctx context.Context, modelName, prompt string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	g.logger.Info("Calling language model", zap.String("model", modelName))

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}
	opts := []llms.CallOption{llms.WithJSONMode(), llms.WithTemperature(g.cfg.Temperature)}
	if modelName != "" {
		opts = append(opts, llms.WithModel(modelName))
	}

	resp, err := g.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			g.logger.Error("LLM request timed out", zap.String("model", modelName), zap.Error(err))
			return domain.NewLLMServiceError(fmt.Errorf("LLM request timed out: %w", err))
		}
		g.logger.Error("Failed to get response from LLM", zap.String("model", modelName), zap.Error(err))
		return domain.NewLLMServiceError(err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return domain.NewLLMServiceError(errors.New("LLM returned no choices"))
	}

	content := resp.Choices[0].Content
	g.logger.Debug("Raw LLM response received", zap.String("raw_response", content))

	extracted, ok := extractJSON(content)
	if !ok {
		return domain.NewGenerationSchemaError(fmt.Errorf("no JSON object found in LLM response"))
	}
	if err := json.Unmarshal([]byte(extracted), out); err != nil {
		g.logger.Warn("Failed to unmarshal LLM JSON", zap.Error(err), zap.String("json", extracted))
		return domain.NewGenerationSchemaError(fmt.Errorf("failed to unmarshal JSON from LLM: %w", err))
	}
	return nil
}

func (g *Generator) schemaError(what string, err error) error {
	g.logger.Warn("Generated document failed validation", zap.String("document", what), zap.Error(err))
	return domain.NewGenerationSchemaError(err)
}

// extractJSON strips <think> blocks emitted by reasoning models and returns
// the outermost {...} span.
func extractJSON(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "<think>"); start != -1 {
		if end := strings.Index(s, "</think>"); end > start {
			s = strings.TrimSpace(s[:start] + s[end+len("</think>"):])
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
