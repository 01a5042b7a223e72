package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"quiz-forge/internal/domain"
	"strings"

	"go.uber.org/zap"
)

// SynthesizerConfig tunes quiz generation.
type SynthesizerConfig struct {
	// MaxTokens caps the completion; 0 sends no cap.
	MaxTokens int
	// Audience is used when the model leaves the audience empty.
	Audience string
}

// LLMQuizSynthesizer generates quizzes with a chat model and validates the
// result before it is handed out.
type LLMQuizSynthesizer struct {
	model     domain.ChatModel
	maxTokens int
	audience  string
	schema    *responseSchema
	logger    *zap.Logger
}

func NewLLMQuizSynthesizer(model domain.ChatModel, cfg SynthesizerConfig, logger *zap.Logger) (*LLMQuizSynthesizer, error) {
	if model == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	if cfg.MaxTokens < 0 {
		cfg.MaxTokens = 0
	}
	if strings.TrimSpace(cfg.Audience) == "" {
		cfg.Audience = domain.DefaultAudience
	}
	schema, err := loadSchema(quizResponseSchemaName, &quizResponseWire{})
	if err != nil {
		return nil, err
	}
	return &LLMQuizSynthesizer{
		model:     model,
		maxTokens: cfg.MaxTokens,
		audience:  cfg.Audience,
		schema:    schema,
		logger:    logger,
	}, nil
}

func (s *LLMQuizSynthesizer) Synthesize(ctx context.Context, cfg domain.QuizConfig) (*domain.QuizDraft, error) {
	resp, err := s.model.Complete(ctx, domain.ChatRequest{
		System: synthesizerSystemPrompt,
		Messages: []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Content: synthesizerUserPrompt(cfg, s.audience)},
		},
		MaxTokens: s.maxTokens,
		JSONMode:  true,
		Schema:    &s.schema.ResponseSchema,
	})
	if err != nil {
		return nil, err
	}

	content := resp.Content
	if strings.TrimSpace(content) == "" {
		content = "{}"
	}
	cleaned := cleanJSONResponse(content)

	var raw any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		s.logger.Error("Failed to parse quiz response",
			zap.Error(err),
			zap.String("stop_reason", resp.StopReason),
			zap.Int("content_length", len(resp.Content)),
			zap.String("content", resp.Content),
		)
		return nil, domain.NewQuizParseError(err)
	}

	if err := s.schema.validate(raw); err != nil {
		s.logger.Error("Quiz validation failed", zap.Error(err))
		return nil, domain.NewQuizMalformedError(err)
	}

	var wire quizResponseWire
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		// Schema-valid but outside the int32 range.
		s.logger.Error("Quiz validation failed", zap.Error(err))
		return nil, domain.NewQuizMalformedError(err)
	}

	if len(wire.Questions) != len(wire.Answers) {
		s.logger.Error("Question/answer count mismatch",
			zap.Int("questions", len(wire.Questions)),
			zap.Int("answers", len(wire.Answers)),
		)
		return nil, domain.NewQuizMismatchError(len(wire.Questions), len(wire.Answers))
	}
	if len(wire.Questions) < 1 {
		return nil, domain.NewQuizEmptyError()
	}

	draft := s.buildDraft(cfg, &wire)
	s.warnDanglingAnswers(draft)

	if draft.NumberOfQuestions != cfg.NumberOfQuestions {
		s.logger.Info("Model returned a different number of questions than requested",
			zap.Int("requested", cfg.NumberOfQuestions),
			zap.Int("generated", draft.NumberOfQuestions),
		)
	}
	return draft, nil
}

func (s *LLMQuizSynthesizer) buildDraft(cfg domain.QuizConfig, wire *quizResponseWire) *domain.QuizDraft {
	draft := &domain.QuizDraft{
		Topic:             cfg.Topic,
		LearningObjective: wire.LearningObjective,
		Audience:          wire.Audience,
		NumberOfQuestions: len(wire.Questions),
		DifficultyMode:    cfg.DifficultyMode,
		Questions:         make([]domain.QuizQuestion, 0, len(wire.Questions)),
		Answers:           make([]domain.QuizAnswer, 0, len(wire.Answers)),
	}
	if draft.LearningObjective == "" {
		draft.LearningObjective = "Learn about " + cfg.Topic
	}
	if draft.Audience == "" {
		draft.Audience = s.audience
	}

	for _, q := range wire.Questions {
		options := make([]domain.QuizOption, 0, len(q.Options))
		for _, opt := range q.Options {
			options = append(options, domain.QuizOption{
				Letter: domain.OptionLetter(opt.Letter),
				Text:   opt.Text,
			})
		}
		draft.Questions = append(draft.Questions, domain.QuizQuestion{
			ID:         int(q.ID),
			Type:       domain.QuestionType(q.Type),
			Difficulty: domain.DifficultyLevel(q.Difficulty),
			Question:   q.Question,
			Scenario:   q.Scenario,
			Options:    options,
		})
	}

	for _, a := range wire.Answers {
		refs := a.References
		if refs == nil {
			refs = []string{}
		}
		draft.Answers = append(draft.Answers, domain.QuizAnswer{
			QuestionID:    int(a.QuestionID),
			CorrectAnswer: domain.OptionLetter(a.CorrectAnswer),
			Explanation:   a.Explanation,
			LearningNote:  a.LearningNote,
			References:    refs,
		})
	}
	return draft
}

// warnDanglingAnswers logs answers that point at no question. They are kept.
func (s *LLMQuizSynthesizer) warnDanglingAnswers(draft *domain.QuizDraft) {
	for _, a := range draft.Answers {
		if _, ok := draft.Question(a.QuestionID); !ok {
			s.logger.Warn("Answer references unknown question",
				zap.String("topic", draft.Topic),
				zap.Int("question_id", a.QuestionID),
			)
		}
	}
}

var _ domain.QuizSynthesizer = (*LLMQuizSynthesizer)(nil)
