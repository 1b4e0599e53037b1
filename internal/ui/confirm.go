package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmation classifies the reply to a yes/no prompt.
type Confirmation int

const (
	// AutoAccepted means --yes was in effect and no input was read.
	AutoAccepted Confirmation = iota
	// UserAccepted is an explicit yes.
	UserAccepted
	// UserDeclined is an explicit no.
	UserDeclined
	// EmptyDefaulted means no input was given; treated as no.
	EmptyDefaulted
	// InvalidDefaulted means the input was unrecognized; treated as no.
	InvalidDefaulted
)

// Accepted reports whether the outcome allows destructive work to proceed.
func (c Confirmation) Accepted() bool {
	return c == AutoAccepted || c == UserAccepted
}

func (c Confirmation) String() string {
	switch c {
	case AutoAccepted:
		return "auto-accepted"
	case UserAccepted:
		return "accepted"
	case UserDeclined:
		return "declined"
	case EmptyDefaulted:
		return "empty-defaulted"
	case InvalidDefaulted:
		return "invalid-defaulted"
	default:
		return "unknown"
	}
}

// Gate asks yes/no questions on a fixed input stream. One gate serves the
// whole run; prompts block until a line arrives.
type Gate struct {
	in  *bufio.Reader
	out io.Writer

	// AutoYes answers every prompt affirmatively without reading input.
	AutoYes bool
}

// NewGate returns a gate reading replies from in and writing prompts to out.
func NewGate(in io.Reader, out io.Writer, autoYes bool) *Gate {
	return &Gate{in: bufio.NewReader(in), out: out, AutoYes: autoYes}
}

// Confirm presents prompt and reduces a single line of input to an outcome.
// Empty input and unrecognized input both decline; there is no retry loop,
// so one malformed reply skips the work rather than re-asking.
func (g *Gate) Confirm(prompt string) Confirmation {
	if g.AutoYes {
		return AutoAccepted
	}

	fmt.Fprintf(g.out, "%s (y/N): ", StyleTitle.Render(prompt))

	line, err := g.in.ReadString('\n')
	reply := strings.ToLower(strings.TrimSpace(line))
	if err != nil && reply == "" {
		// Closed stdin counts the same as an empty reply.
		fmt.Fprintln(g.out, StyleMuted.Render("no answer, defaulting to No"))
		return EmptyDefaulted
	}

	switch reply {
	case "":
		fmt.Fprintln(g.out, StyleMuted.Render("no answer, defaulting to No"))
		return EmptyDefaulted
	case "y", "yes":
		return UserAccepted
	case "n", "no":
		return UserDeclined
	default:
		fmt.Fprintln(g.out, StyleMuted.Render("unrecognized answer, treating as No"))
		return InvalidDefaulted
	}
}
