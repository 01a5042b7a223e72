package quizgen

import (
	"fmt"
	"quiz-forge/internal/domain"
)

const topicGateSystemPrompt = `You are a topic validator for a property industry quiz generator. Your job is to determine if a topic is related to the property/real estate industry and is specific enough to generate a quiz.

VALID topics include:
- Property market trends, updates, analysis
- Property agent skills, training, best practices
- Real estate transactions, processes, regulations
- Property valuation, pricing strategies
- Residential, commercial, industrial property
- Property investment, financing, mortgages
- Property laws, contracts, documentation
- Property marketing, sales techniques
- Property management, maintenance
- Urban development, zoning, land use
- Property technology (proptech)
- Regional property markets (Indonesia, Singapore, Malaysia, etc.)

INVALID topics include:
- Topics not related to property/real estate industry
- Too vague topics like just "property" or "real estate"
- Topics about specific individuals unless related to property industry
- Entertainment, sports, general news unrelated to property
- Personal advice or opinion-based topics

Respond with JSON in this format: { "isValid": boolean, "reason": string }
If invalid, explain why briefly in the reason field.`

const synthesizerSystemPrompt = "You are an expert property industry knowledge quiz generator. You create factual, professional quizzes for corporate learning and assessment. Always respond with valid JSON."

func topicGateUserPrompt(topic string) string {
	return fmt.Sprintf("Topic: %q", topic)
}

// difficultyInstruction tells the model how to spread question difficulty.
func difficultyInstruction(mode domain.DifficultyMode) string {
	if mode == domain.DifficultyModeMixed {
		return "Generate a mix of easy, medium, and hard questions (roughly equal distribution)."
	}
	return fmt.Sprintf("Generate all questions at %s difficulty level.", mode)
}

func synthesizerUserPrompt(cfg domain.QuizConfig, audience string) string {
	return fmt.Sprintf(`You are an automated quiz generation system for 99 Group, a leading property technology company in Southeast Asia.

Generate a professional, factual, property-industry knowledge quiz based on the following topic:

TOPIC: %q
NUMBER OF QUESTIONS: %d
DIFFICULTY MODE: %s
%s

VALIDATION RULES (STRICT):
- Do not speculate or make up facts
- Do not use outdated information
- All content must be factual and evidence-based
- Align terminology with professional property industry standards
- Focus on Indonesia/Southeast Asia context where relevant, but include global best practices

QUIZ STRUCTURE:
1. Provide a brief learning objective (1-2 sentences)
2. Generate %d questions using:
   - Multiple choice questions (standard format)
   - Scenario-based questions labeled as "case_study" (about 30%% of questions)
3. Each question must have exactly 4 options (A, B, C, D)
4. For each question, provide:
   - The correct answer
   - A clear explanation
   - A practical learning note (why this matters in real property work)
   - 1-2 reference links to credible sources when possible

Respond with JSON in this exact format:
{
  "learningObjective": "string describing what the quiz teaches",
  "audience": %q,
  "questions": [
    {
      "id": 1,
      "type": "multiple_choice" | "case_study",
      "difficulty": "easy" | "medium" | "hard",
      "question": "The question text",
      "scenario": "Optional scenario text for case studies only",
      "options": [
        { "letter": "A", "text": "Option A text" },
        { "letter": "B", "text": "Option B text" },
        { "letter": "C", "text": "Option C text" },
        { "letter": "D", "text": "Option D text" }
      ]
    }
  ],
  "answers": [
    {
      "questionId": 1,
      "correctAnswer": "A" | "B" | "C" | "D",
      "explanation": "Why this is correct",
      "learningNote": "Practical application in property work",
      "references": ["https://example.com/source1"]
    }
  ]
}`,
		cfg.Topic,
		cfg.NumberOfQuestions,
		cfg.DifficultyMode,
		difficultyInstruction(cfg.DifficultyMode),
		cfg.NumberOfQuestions,
		audience,
	)
}
