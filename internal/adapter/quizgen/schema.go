package quizgen

import (
	"encoding/json"
	"fmt"
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Wire types mirror the JSON document the model is asked for. Fields without
// omitempty are required by the reflected schema.

type topicVerdictWire struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason,omitempty"`
}

type quizOptionWire struct {
	Letter string `json:"letter" jsonschema:"enum=A,enum=B,enum=C,enum=D"`
	Text   string `json:"text"`
}

type quizQuestionWire struct {
	ID         util.WholeNumber `json:"id"`
	Type       string           `json:"type" jsonschema:"enum=multiple_choice,enum=case_study"`
	Difficulty string           `json:"difficulty" jsonschema:"enum=easy,enum=medium,enum=hard"`
	Question   string           `json:"question"`
	Scenario   string           `json:"scenario,omitempty"`
	Options    []quizOptionWire `json:"options" jsonschema:"minItems=4,maxItems=4"`
}

type quizAnswerWire struct {
	QuestionID    util.WholeNumber `json:"questionId"`
	CorrectAnswer string           `json:"correctAnswer" jsonschema:"enum=A,enum=B,enum=C,enum=D"`
	Explanation   string           `json:"explanation"`
	LearningNote  string           `json:"learningNote"`
	References    []string         `json:"references,omitempty"`
}

type quizResponseWire struct {
	LearningObjective string             `json:"learningObjective"`
	Audience          string             `json:"audience,omitempty"`
	Questions         []quizQuestionWire `json:"questions"`
	Answers           []quizAnswerWire   `json:"answers"`
}

const (
	topicVerdictSchemaName = "topic_verdict"
	quizResponseSchemaName = "quiz_response"
)

// responseSchema pairs the definition sent to providers with its compiled
// validator.
type responseSchema struct {
	domain.ResponseSchema
	compiled *jsonschema.Schema
}

// schemaCache caches reflected and compiled schemas by name.
var schemaCache sync.Map // map[string]*responseSchema

// loadSchema reflects v into a JSON Schema and compiles it once per name.
func loadSchema(name string, v any) (*responseSchema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*responseSchema), nil
	}

	r := &invopop.Reflector{
		Anonymous:                 true,
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	defBytes, err := json.Marshal(r.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", name, err)
	}

	var definition map[string]any
	if err := json.Unmarshal(defBytes, &definition); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}
	// The compiler wants a generic JSON value, not the typed map.
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema %q: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add schema resource %q: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", name, err)
	}

	s := &responseSchema{
		ResponseSchema: domain.ResponseSchema{Name: name, Definition: definition},
		compiled:       compiled,
	}
	actual, _ := schemaCache.LoadOrStore(name, s)
	return actual.(*responseSchema), nil
}

// validate checks a decoded JSON value against the schema.
func (s *responseSchema) validate(v any) error {
	if err := s.compiled.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
