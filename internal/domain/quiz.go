package domain

import (
	"fmt"
	"time"
)

// DifficultyMode is the difficulty requested for a whole quiz
type DifficultyMode string

const (
	DifficultyModeMixed  DifficultyMode = "mixed"
	DifficultyModeEasy   DifficultyMode = "easy"
	DifficultyModeMedium DifficultyMode = "medium"
	DifficultyModeHard   DifficultyMode = "hard"
)

// DifficultyModes lists every accepted mode in display order.
var DifficultyModes = []DifficultyMode{
	DifficultyModeMixed,
	DifficultyModeEasy,
	DifficultyModeMedium,
	DifficultyModeHard,
}

// IsValid reports whether m is one of the known modes
func (m DifficultyMode) IsValid() bool {
	for _, known := range DifficultyModes {
		if m == known {
			return true
		}
	}
	return false
}

// DifficultyLevel is the difficulty of a single question
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// QuestionType distinguishes plain questions from scenario-based ones
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeCaseStudy      QuestionType = "case_study"
)

// OptionLetter labels one of the four options of a question
type OptionLetter string

const (
	OptionA OptionLetter = "A"
	OptionB OptionLetter = "B"
	OptionC OptionLetter = "C"
	OptionD OptionLetter = "D"
)

// Quiz configuration bounds and defaults
const (
	MinTopicLength           = 5
	MaxTopicLength           = 200
	MinNumberOfQuestions     = 3
	MaxNumberOfQuestions     = 20
	DefaultNumberOfQuestions = 10
	DefaultDifficultyMode    = DifficultyModeMixed
	DefaultAudience          = "99 Group employees"
)

// QuizConfig is a validated generation request
type QuizConfig struct {
	Topic             string
	NumberOfQuestions int
	DifficultyMode    DifficultyMode
}

// QuizOption is one answer choice of a question
type QuizOption struct {
	Letter OptionLetter `json:"letter"`
	Text   string       `json:"text"`
}

// QuizQuestion is a single multiple-choice question
type QuizQuestion struct {
	ID         int             `json:"id"`
	Type       QuestionType    `json:"type"`
	Difficulty DifficultyLevel `json:"difficulty"`
	Question   string          `json:"question"`
	Scenario   string          `json:"scenario,omitempty"`
	Options    []QuizOption    `json:"options"`
}

// Option returns the option labelled with letter, if present.
func (q QuizQuestion) Option(letter OptionLetter) (QuizOption, bool) {
	for _, opt := range q.Options {
		if opt.Letter == letter {
			return opt, true
		}
	}
	return QuizOption{}, false
}

// QuizAnswer is the answer key entry for one question
type QuizAnswer struct {
	QuestionID    int          `json:"questionId"`
	CorrectAnswer OptionLetter `json:"correctAnswer"`
	Explanation   string       `json:"explanation"`
	LearningNote  string       `json:"learningNote"`
	References    []string     `json:"references"`
}

// QuizDraft is a generated quiz that has not been stored yet
type QuizDraft struct {
	Topic             string         `json:"topic"`
	LearningObjective string         `json:"learningObjective"`
	Audience          string         `json:"audience"`
	NumberOfQuestions int            `json:"numberOfQuestions"`
	DifficultyMode    DifficultyMode `json:"difficultyMode"`
	Questions         []QuizQuestion `json:"questions"`
	Answers           []QuizAnswer   `json:"answers"`
}

// Validate checks the invariants every stored quiz must hold
func (d *QuizDraft) Validate() error {
	if len(d.Questions) != len(d.Answers) {
		return fmt.Errorf("question/answer count mismatch: %d questions, %d answers", len(d.Questions), len(d.Answers))
	}
	if len(d.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	if d.NumberOfQuestions != len(d.Questions) {
		return fmt.Errorf("numberOfQuestions %d does not match %d questions", d.NumberOfQuestions, len(d.Questions))
	}
	return nil
}

// Question returns the question with the given id, if present.
func (d *QuizDraft) Question(id int) (QuizQuestion, bool) {
	for _, q := range d.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return QuizQuestion{}, false
}

// Quiz is a stored quiz
type Quiz struct {
	ID string `json:"id"`
	QuizDraft
	CreatedAt time.Time `json:"createdAt"`
}

// TopicVerdict is the outcome of the topic gate
type TopicVerdict struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
	// Inconclusive is set when the model answer could not be parsed.
	Inconclusive bool `json:"-"`
}
