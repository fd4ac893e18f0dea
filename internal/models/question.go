package models

import "slices"

// Question is one record of the question bank
type Question struct {
	Prompt      string `yaml:"prompt" json:"prompt"`
	Answer      int    `yaml:"answer" json:"answer"`
	Distractors []int  `yaml:"options" json:"options"`
}

// Task is a question handed to one crew member for one turn. It is immutable once built.
type Task struct {
	question string
	answer   int
	options  []int
}

// NewTask creates a task. The options slice is copied.
func NewTask(question string, answer int, options []int) Task {
	return Task{
		question: question,
		answer:   answer,
		options:  slices.Clone(options),
	}
}

// Question returns the prompt text
func (t Task) Question() string {
	return t.question
}

// Answer returns the correct answer
func (t Task) Answer() int {
	return t.answer
}

// Options returns a copy of the candidate answers in presentation order
func (t Task) Options() []int {
	return slices.Clone(t.options)
}

// OptionCount returns the number of candidate answers
func (t Task) OptionCount() int {
	return len(t.options)
}

// Check reports whether the option at index (0-based) is the correct answer
func (t Task) Check(index int) bool {
	if index < 0 || index >= len(t.options) {
		return false
	}
	return t.options[index] == t.answer
}
