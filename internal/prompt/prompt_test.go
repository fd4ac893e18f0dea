package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

func TestInt(t *testing.T) {
	t.Run("re-prompts until in range", func(t *testing.T) {
		p, out := newPrompter("abc\n0\n16\n 7 \n")
		n, err := p.Int("Players (3-15): ", 3, 15)
		require.NoError(t, err)
		assert.Equal(t, 7, n)

		assert.Equal(t, 4, strings.Count(out.String(), "Players (3-15): "))
		assert.Contains(t, out.String(), "Please enter a valid number.")
		assert.Equal(t, 2, strings.Count(out.String(), "Please choose between 3 and 15."))
	})

	t.Run("input closed", func(t *testing.T) {
		p, _ := newPrompter("x\n")
		_, err := p.Int("> ", 1, 4)
		assert.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestLine(t *testing.T) {
	p, _ := newPrompter("  Ana  \n\n")
	s, err := p.Line("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", s)

	s, err = p.Line("Name: ")
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = p.Line("Name: ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestFloat(t *testing.T) {
	p, out := newPrompter("one\n2.5\n")
	f, err := p.Float("Number: ")
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)
	assert.Contains(t, out.String(), "Please enter a valid number.")
}

func TestYesNo(t *testing.T) {
	p, out := newPrompter("maybe\nY\nn\n")
	yes, err := p.YesNo("Again? ")
	require.NoError(t, err)
	assert.True(t, yes)

	yes, err = p.YesNo("Again? ")
	require.NoError(t, err)
	assert.False(t, yes)
	assert.Contains(t, out.String(), "Please answer y or n.")
}

func TestPause(t *testing.T) {
	p, _ := newPrompter("\n")
	assert.NoError(t, p.Pause("Press ENTER"))
	assert.ErrorIs(t, p.Pause("Press ENTER"), ErrInputClosed)
}
