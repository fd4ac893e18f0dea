// Package calc implements the four-function calculator behind `sus calc`.
package calc

import (
	"errors"
	"fmt"
)

var (
	ErrDivisionByZero  = errors.New("cannot divide by zero")
	ErrUnknownOperator = errors.New("unknown operator")
)

// Operator is one of the four supported operations
type Operator int

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Operators lists the operations in menu order
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// Symbol returns the operator sign used when printing an expression
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return "?"
	}
}

// Name returns the menu label
func (o Operator) Name() string {
	switch o {
	case Add:
		return "Addition"
	case Subtract:
		return "Subtraction"
	case Multiply:
		return "Multiplication"
	case Divide:
		return "Division"
	default:
		return "Unknown"
	}
}

// ParseMenuChoice maps a menu entry ("1".."4") to an operator
func ParseMenuChoice(choice string) (Operator, error) {
	switch choice {
	case "1":
		return Add, nil
	case "2":
		return Subtract, nil
	case "3":
		return Multiply, nil
	case "4":
		return Divide, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, choice)
	}
}

// Apply evaluates a op b
func Apply(op Operator, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}
}
