package service

import (
	"context"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/logger"
	"time"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz-related operations
type QuizService interface {
	// GenerateQuiz validates the topic, synthesizes a quiz and stores it.
	GenerateQuiz(ctx context.Context, cfg domain.QuizConfig) (*domain.Quiz, error)
	GetQuiz(ctx context.Context, id string) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]*domain.Quiz, error)
	// ExportQuiz renders a stored quiz as a downloadable text document.
	ExportQuiz(ctx context.Context, id string) (*QuizExport, error)
}

// quizService implements QuizService
type quizService struct {
	gate  domain.TopicGate
	synth domain.QuizSynthesizer
	repo  domain.QuizRepository
	now   func() time.Time
}

// NewQuizService creates a new instance of quizService
func NewQuizService(gate domain.TopicGate, synth domain.QuizSynthesizer, repo domain.QuizRepository) QuizService {
	return &quizService{
		gate:  gate,
		synth: synth,
		repo:  repo,
		now:   time.Now,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, cfg domain.QuizConfig) (*domain.Quiz, error) {
	l := logger.Get().With(
		zap.String("topic", cfg.Topic),
		zap.Int("number_of_questions", cfg.NumberOfQuestions),
		zap.String("difficulty_mode", string(cfg.DifficultyMode)),
	)
	start := s.now()

	verdict, err := s.gate.CheckTopic(ctx, cfg.Topic)
	if err != nil {
		l.Error("Topic validation failed", zap.Error(err))
		return nil, asServiceError(err)
	}
	if !verdict.IsValid {
		l.Info("Topic rejected",
			zap.String("reason", verdict.Reason),
			zap.Bool("inconclusive", verdict.Inconclusive),
		)
		return nil, domain.NewInvalidTopicError(verdict.Reason)
	}

	draft, err := s.synth.Synthesize(ctx, cfg)
	if err != nil {
		l.Error("Quiz generation failed", zap.Error(err))
		return nil, asServiceError(err)
	}
	if err := draft.Validate(); err != nil {
		return nil, domain.NewInternalError("Generated quiz failed validation", err)
	}

	quiz, err := s.repo.Create(ctx, draft)
	if err != nil {
		return nil, domain.NewInternalError("Failed to store quiz", err)
	}

	l.Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.Int("generated_questions", quiz.NumberOfQuestions),
		zap.Duration("duration", s.now().Sub(start)),
	)
	return quiz, nil
}

// GetQuiz implements QuizService
func (s *quizService) GetQuiz(ctx context.Context, id string) (*domain.Quiz, error) {
	quiz, err := s.repo.Get(ctx, id)
	if err != nil {
		if domain.HasCode(err, domain.CodeQuizNotFound) {
			return nil, err
		}
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	return quiz, nil
}

// ListQuizzes implements QuizService
func (s *quizService) ListQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	quizzes, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return quizzes, nil
}

// ExportQuiz implements QuizService
func (s *quizService) ExportQuiz(ctx context.Context, id string) (*QuizExport, error) {
	quiz, err := s.GetQuiz(ctx, id)
	if err != nil {
		return nil, err
	}
	return &QuizExport{
		FileName: ExportFileName(quiz.Topic, s.now()),
		Content:  RenderQuizText(quiz),
	}, nil
}

// asServiceError keeps domain errors as they are and treats anything else
// coming out of the LLM pipeline as an upstream failure.
func asServiceError(err error) error {
	if _, ok := domain.AsDomainError(err); ok {
		return err
	}
	return domain.NewLLMServiceError(err)
}
