package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Confirmation
	}{
		{"yes short", "y\n", UserAccepted},
		{"yes long", "yes\n", UserAccepted},
		{"yes uppercase", "YES\n", UserAccepted},
		{"yes padded", "  y  \n", UserAccepted},
		{"no short", "n\n", UserDeclined},
		{"no long", "no\n", UserDeclined},
		{"empty line", "\n", EmptyDefaulted},
		{"closed input", "", EmptyDefaulted},
		{"gibberish", "maybe\n", InvalidDefaulted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			g := NewGate(strings.NewReader(tt.input), &out, false)
			assert.Equal(t, tt.want, g.Confirm("Proceed?"))
			assert.Contains(t, out.String(), "Proceed?")
		})
	}
}

func TestGate_DefaultedOutcomesExplainThemselves(t *testing.T) {
	var out bytes.Buffer
	g := NewGate(strings.NewReader("\n"), &out, false)
	g.Confirm("Proceed?")
	assert.Contains(t, out.String(), "defaulting to No")

	out.Reset()
	g = NewGate(strings.NewReader("hmm\n"), &out, false)
	g.Confirm("Proceed?")
	assert.Contains(t, out.String(), "treating as No")
}

func TestGate_AutoYesSkipsInput(t *testing.T) {
	var out bytes.Buffer
	// Input would decline; AutoYes must never read it.
	g := NewGate(strings.NewReader("n\n"), &out, true)
	assert.Equal(t, AutoAccepted, g.Confirm("Proceed?"))
	assert.Empty(t, out.String())
	// The pending line is still there for the next prompt.
	g.AutoYes = false
	assert.Equal(t, UserDeclined, g.Confirm("Again?"))
}

func TestConfirmation_Accepted(t *testing.T) {
	assert.True(t, AutoAccepted.Accepted())
	assert.True(t, UserAccepted.Accepted())
	assert.False(t, UserDeclined.Accepted())
	assert.False(t, EmptyDefaulted.Accepted())
	assert.False(t, InvalidDefaulted.Accepted())
}

func TestConfirmation_String(t *testing.T) {
	assert.Equal(t, "declined", UserDeclined.String())
	assert.Equal(t, "auto-accepted", AutoAccepted.String())
	assert.Equal(t, "unknown", Confirmation(99).String())
}
