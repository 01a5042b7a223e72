package service

import (
	"context"
	"time"

	"quiz-forge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockTopicGate ---
type MockTopicGate struct {
	CheckTopicFunc func(ctx context.Context, topic string) (domain.TopicVerdict, error)
}

func (m *MockTopicGate) CheckTopic(ctx context.Context, topic string) (domain.TopicVerdict, error) {
	if m.CheckTopicFunc != nil {
		return m.CheckTopicFunc(ctx, topic)
	}
	return domain.TopicVerdict{IsValid: true}, nil
}

// --- MockQuizSynthesizer ---
type MockQuizSynthesizer struct {
	mock.Mock
}

func (m *MockQuizSynthesizer) Synthesize(ctx context.Context, cfg domain.QuizConfig) (*domain.QuizDraft, error) {
	args := m.Called(ctx, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizDraft), args.Error(1)
}

// --- MockQuizRepository ---
type MockQuizRepository struct {
	mock.Mock
}

func (m *MockQuizRepository) Create(ctx context.Context, draft *domain.QuizDraft) (*domain.Quiz, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) Get(ctx context.Context, id string) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepository) List(ctx context.Context) ([]*domain.Quiz, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var (
	_ domain.TopicGate       = (*MockTopicGate)(nil)
	_ domain.QuizSynthesizer = (*MockQuizSynthesizer)(nil)
	_ domain.QuizRepository  = (*MockQuizRepository)(nil)
	_ domain.Cache           = (*MockCache)(nil)
)

func testDraft() *domain.QuizDraft {
	return &domain.QuizDraft{
		Topic:             "Singapore ABSD rules",
		LearningObjective: "Explain how Additional Buyer's Stamp Duty applies.",
		Audience:          domain.DefaultAudience,
		NumberOfQuestions: 2,
		DifficultyMode:    domain.DifficultyModeMixed,
		Questions: []domain.QuizQuestion{
			{
				ID:         1,
				Type:       domain.QuestionTypeMultipleChoice,
				Difficulty: domain.DifficultyEasy,
				Question:   "Who administers ABSD?",
				Options: []domain.QuizOption{
					{Letter: domain.OptionA, Text: "IRAS"},
					{Letter: domain.OptionB, Text: "URA"},
					{Letter: domain.OptionC, Text: "HDB"},
					{Letter: domain.OptionD, Text: "MAS"},
				},
			},
			{
				ID:         2,
				Type:       domain.QuestionTypeCaseStudy,
				Difficulty: domain.DifficultyHard,
				Question:   "What rate applies to the buyer's second property?",
				Scenario:   "A Singapore citizen already owns one condominium.",
				Options: []domain.QuizOption{
					{Letter: domain.OptionA, Text: "0%"},
					{Letter: domain.OptionB, Text: "5%"},
					{Letter: domain.OptionC, Text: "20%"},
					{Letter: domain.OptionD, Text: "30%"},
				},
			},
		},
		Answers: []domain.QuizAnswer{
			{
				QuestionID:    1,
				CorrectAnswer: domain.OptionA,
				Explanation:   "IRAS collects stamp duties.",
				LearningNote:  "Point clients to IRAS calculators.",
				References:    []string{"https://www.iras.gov.sg/taxes/stamp-duty", "https://example.com/absd"},
			},
			{
				QuestionID:    2,
				CorrectAnswer: domain.OptionC,
				Explanation:   "Citizens pay 20% on a second residential property.",
				LearningNote:  "Affects affordability conversations.",
				References:    []string{},
			},
		},
	}
}

func testQuiz() *domain.Quiz {
	return &domain.Quiz{
		ID:        "01JAR5Q4ZC6D7S3Y8W9X0V1T2M",
		QuizDraft: *testDraft(),
		CreatedAt: time.Date(2025, 6, 30, 8, 15, 0, 0, time.UTC),
	}
}
