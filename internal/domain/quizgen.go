package domain

import "context"

// TopicGate decides whether a topic is suitable for quiz generation.
type TopicGate interface {
	// CheckTopic classifies topic. Unparseable model output yields an
	// invalid, inconclusive verdict rather than an error; only transport
	// failures are returned as errors.
	CheckTopic(ctx context.Context, topic string) (TopicVerdict, error)
}

// QuizSynthesizer generates a validated quiz draft for a configuration.
type QuizSynthesizer interface {
	Synthesize(ctx context.Context, cfg QuizConfig) (*QuizDraft, error)
}

// QuizRepository stores generated quizzes
type QuizRepository interface {
	// Create assigns an id and creation time and stores the quiz
	Create(ctx context.Context, draft *QuizDraft) (*Quiz, error)

	// Get returns the quiz with id or a QUIZ_NOT_FOUND error
	Get(ctx context.Context, id string) (*Quiz, error)

	// List returns every quiz, newest first
	List(ctx context.Context) ([]*Quiz, error)
}
