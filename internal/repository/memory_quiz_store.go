package repository

import (
	"context"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
	"sort"
	"sync"
	"time"
)

// MemoryQuizStore implements domain.QuizRepository in process memory.
// Records live until the process exits.
type MemoryQuizStore struct {
	mu      sync.RWMutex
	quizzes map[string]*domain.Quiz
	// order holds ids in insertion order.
	order []string
	now   func() time.Time
}

// NewMemoryQuizStore creates an empty store
func NewMemoryQuizStore() *MemoryQuizStore {
	return &MemoryQuizStore{
		quizzes: make(map[string]*domain.Quiz),
		now:     time.Now,
	}
}

// Create implements domain.QuizRepository
func (s *MemoryQuizStore) Create(ctx context.Context, draft *domain.QuizDraft) (*domain.Quiz, error) {
	if draft == nil {
		return nil, domain.NewInvalidInputError("quiz draft is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UTC()
	quiz := &domain.Quiz{
		ID:        util.NewULID(createdAt),
		QuizDraft: cloneDraft(*draft),
		CreatedAt: createdAt,
	}
	s.quizzes[quiz.ID] = quiz
	s.order = append(s.order, quiz.ID)

	return cloneQuiz(quiz), nil
}

// Get implements domain.QuizRepository
func (s *MemoryQuizStore) Get(ctx context.Context, id string) (*domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quiz, ok := s.quizzes[id]
	if !ok {
		return nil, domain.NewQuizNotFoundError(id)
	}
	return cloneQuiz(quiz), nil
}

// List implements domain.QuizRepository. Quizzes created at the same
// instant keep their insertion order.
func (s *MemoryQuizStore) List(ctx context.Context) ([]*domain.Quiz, error) {
	s.mu.RLock()
	out := make([]*domain.Quiz, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, cloneQuiz(s.quizzes[id]))
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneQuiz(q *domain.Quiz) *domain.Quiz {
	return &domain.Quiz{
		ID:        q.ID,
		QuizDraft: cloneDraft(q.QuizDraft),
		CreatedAt: q.CreatedAt,
	}
}

func cloneDraft(d domain.QuizDraft) domain.QuizDraft {
	out := d
	out.Questions = make([]domain.QuizQuestion, len(d.Questions))
	for i, q := range d.Questions {
		q.Options = append([]domain.QuizOption(nil), q.Options...)
		out.Questions[i] = q
	}
	out.Answers = make([]domain.QuizAnswer, len(d.Answers))
	for i, a := range d.Answers {
		refs := make([]string, len(a.References))
		copy(refs, a.References)
		a.References = refs
		out.Answers[i] = a
	}
	return out
}

var _ domain.QuizRepository = (*MemoryQuizStore)(nil)
