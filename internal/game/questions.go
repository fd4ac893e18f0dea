package game

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aaronzipp/sus-math/internal/models"
)

//go:embed questions.yaml
var defaultQuestionData []byte

// DefaultQuestions returns the bundled question bank
func DefaultQuestions() []models.Question {
	questions, err := parseQuestions(defaultQuestionData)
	if err != nil {
		panic(fmt.Sprintf("bundled question bank: %v", err))
	}
	return questions
}

// LoadQuestions reads a question bank from a YAML or JSON file
func LoadQuestions(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	questions, err := parseQuestions(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return questions, nil
}

func parseQuestions(data []byte) ([]models.Question, error) {
	var questions []models.Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	if err := ValidateQuestions(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// ValidateQuestions rejects banks the task generator cannot draw from
func ValidateQuestions(questions []models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("question bank is empty")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d: empty prompt", i+1)
		}
		if n := countOf(q.Distractors, q.Answer); n > 1 {
			return fmt.Errorf("question %d: answer %d listed %d times", i+1, q.Answer, n)
		}
	}
	return nil
}

func countOf(values []int, v int) int {
	n := 0
	for i := range values {
		if values[i] == v {
			n++
		}
	}
	return n
}

// containsAnswer reports whether the record already lists its answer among the options
func containsAnswer(q models.Question) bool {
	return slices.Contains(q.Distractors, q.Answer)
}
