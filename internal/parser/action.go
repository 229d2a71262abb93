package parser

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Action is the parsed form of a client action ID. Actions are
// colon-joined segment paths such as "town", "shop:buy:w:2" or
// "guess:14": a head verb followed by qualifier and index segments.
type Action struct {
	Head string    `parser:"@Ident"`
	Args []Segment `parser:"( Colon @@ )*"`
}

// Segment is one path element after the head: either a qualifier word
// or a numeric index.
type Segment struct {
	Ident  *string `parser:"  @Ident"`
	Number *int    `parser:"| @Int"`
	Sign   *string `parser:"| @Sign"`
}

// actionLexer tokenizes the small action-ID alphabet.
var actionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Sign", Pattern: `[+-][0-9]+`},
	{Name: "Colon", Pattern: `:`},
})

var actionParser = participle.MustBuild[Action](
	participle.Lexer(actionLexer),
)

// Parse turns a raw action ID into its Action AST.
func Parse(raw string) (*Action, error) {
	raw = strings.TrimSpace(raw)
	act, err := actionParser.ParseString("", raw)
	if err != nil {
		return nil, MapError(raw, err)
	}
	return act, nil
}

// At returns the i-th argument segment as a string, or "" when absent.
func (a *Action) At(i int) string {
	if i < 0 || i >= len(a.Args) {
		return ""
	}
	s := a.Args[i]
	switch {
	case s.Ident != nil:
		return *s.Ident
	case s.Number != nil:
		return strconv.Itoa(*s.Number)
	case s.Sign != nil:
		return *s.Sign
	}
	return ""
}

// IntAt returns the i-th argument as an integer index.
func (a *Action) IntAt(i int) (int, bool) {
	if i < 0 || i >= len(a.Args) {
		return 0, false
	}
	s := a.Args[i]
	if s.Number != nil {
		return *s.Number, true
	}
	if s.Sign != nil {
		n, err := strconv.Atoi(*s.Sign)
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// Len reports the number of argument segments after the head.
func (a *Action) Len() int {
	return len(a.Args)
}

// Is matches the head and leading argument segments exactly.
func (a *Action) Is(head string, args ...string) bool {
	if a.Head != head || len(a.Args) != len(args) {
		return false
	}
	for i, want := range args {
		if a.At(i) != want {
			return false
		}
	}
	return true
}

// HasPrefix matches the head and a leading subset of argument segments.
func (a *Action) HasPrefix(head string, args ...string) bool {
	if a.Head != head || len(a.Args) < len(args) {
		return false
	}
	for i, want := range args {
		if a.At(i) != want {
			return false
		}
	}
	return true
}

// String reassembles the canonical action ID.
func (a *Action) String() string {
	var sb strings.Builder
	sb.WriteString(a.Head)
	for i := range a.Args {
		sb.WriteByte(':')
		sb.WriteString(a.At(i))
	}
	return sb.String()
}
