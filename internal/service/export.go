package service

import (
	"fmt"
	"quiz-forge/internal/domain"
	"strings"
	"time"
	"unicode"
)

const (
	exportRuleWidth     = 60
	exportSubRuleWidth  = 40
	exportSlugMaxLength = 30
	exportTimeLayout    = "2006-01-02 15:04:05 MST"
)

// QuizExport is a rendered quiz ready for download
type QuizExport struct {
	FileName string
	Content  string
}

// RenderQuizText formats a quiz with its answer key as plain text.
func RenderQuizText(quiz *domain.Quiz) string {
	rule := strings.Repeat("=", exportRuleWidth)
	subRule := strings.Repeat("-", exportSubRuleWidth)

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line(rule)
	line("PROPERTY INDUSTRY QUIZ - 99 GROUP")
	line(rule)
	line("")

	line("INTRODUCTION")
	line(subRule)
	line("Topic: %s", quiz.Topic)
	line("Learning Objective: %s", quiz.LearningObjective)
	line("Intended Audience: %s", quiz.Audience)
	line("Number of Questions: %d", quiz.NumberOfQuestions)
	line("Difficulty Mode: %s", capitalize(string(quiz.DifficultyMode)))
	line("")

	line(rule)
	line("QUIZ QUESTIONS")
	line(rule)
	line("")

	for i, q := range quiz.Questions {
		header := fmt.Sprintf("QUESTION %d [%s]", i+1, strings.ToUpper(string(q.Difficulty)))
		if q.Type == domain.QuestionTypeCaseStudy {
			header += " - CASE STUDY"
		}
		line(header)
		line(subRule)
		if q.Scenario != "" {
			line("")
			line("Scenario:")
			line(q.Scenario)
			line("")
		}
		line(q.Question)
		line("")
		for _, opt := range q.Options {
			line("%s. %s", opt.Letter, opt.Text)
		}
		line("")
		line("")
	}

	line(rule)
	line("ANSWER KEY & LEARNING SECTION")
	line(rule)
	line("")

	for _, a := range quiz.Answers {
		var correctText string
		if q, ok := quiz.Question(a.QuestionID); ok {
			if opt, ok := q.Option(a.CorrectAnswer); ok {
				correctText = opt.Text
			}
		}

		line("QUESTION %d", a.QuestionID)
		line(subRule)
		line("Correct Answer: %s. %s", a.CorrectAnswer, correctText)
		line("")
		line("Explanation:")
		line(a.Explanation)
		line("")
		line("Why This Matters (Practical Learning Note):")
		line(a.LearningNote)
		if len(a.References) > 0 {
			line("")
			line("References:")
			for i, ref := range a.References {
				line("%d. %s", i+1, ref)
			}
		}
		line("")
		line("")
	}

	line(rule)
	line("END OF QUIZ")
	line(rule)
	line("")
	line("This quiz is for learning and assessment, not opinion or prediction.")
	line("Accuracy, clarity, and relevance to the property industry are mandatory.")
	line("")
	b.WriteString("Generated: " + quiz.CreatedAt.UTC().Format(exportTimeLayout))

	return b.String()
}

// ExportFileName builds "quiz-<slug>-<unix millis>.txt". The slug is the
// lower-cased topic with whitespace runs turned into dashes, limited to
// ASCII letters, digits and dashes so it is safe in a header.
func ExportFileName(topic string, at time.Time) string {
	return fmt.Sprintf("quiz-%s-%d.txt", topicSlug(topic), at.UnixMilli())
}

func topicSlug(topic string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(topic)), "-")
	var b strings.Builder
	for _, r := range slug {
		if r == '-' || (r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if len(out) > exportSlugMaxLength {
		out = out[:exportSlugMaxLength]
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
