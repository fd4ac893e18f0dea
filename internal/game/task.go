package game

import (
	"slices"

	"github.com/aaronzipp/sus-math/internal/models"
)

// TaskGenerator draws tasks from a question bank
type TaskGenerator struct {
	bank []models.Question
	rng  Rand
}

// NewTaskGenerator creates a generator over bank. The bank must be non-empty.
func NewTaskGenerator(bank []models.Question, rng Rand) *TaskGenerator {
	return &TaskGenerator{bank: bank, rng: rng}
}

// Generate picks one question uniformly at random and returns it with shuffled options
func (g *TaskGenerator) Generate() models.Task {
	q := g.bank[g.rng.IntN(len(g.bank))]

	options := slices.Clone(q.Distractors)
	if !containsAnswer(q) {
		options = append(options, q.Answer)
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return models.NewTask(q.Prompt, q.Answer, options)
}
