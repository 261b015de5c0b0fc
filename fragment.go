package magicregexp

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.dw1.io/magicregexp/regexp"
)

// Fragment is an immutable piece of a pattern. The set of fragments is
// closed: Kind, and the values returned by Literal, Raw, Repeated,
// OneOrMore, Optional, Named, Sequence and Alternation, plus Builder.
type Fragment interface {
	String() string
	isFragment()
}

type (
	literal string
	raw     string

	repeated struct {
		of    Fragment
		count uint
	}

	oneOrMore struct{ of Fragment }
	optional  struct{ of Fragment }

	named struct {
		of   Fragment
		name string
	}

	sequence    struct{ left, right Fragment }
	alternation struct{ left, right Fragment }
)

// Literal matches text exactly. Metacharacters in text are escaped.
func Literal(text string) Fragment { return literal(text) }

// Raw inserts pattern verbatim. It is not escaped or grouped, so an
// alternation inside it should be wrapped by the caller.
func Raw(pattern string) Fragment { return raw(pattern) }

// Repeated matches f exactly count times. Repeated(f, 0) matches the empty
// string; counts above the engine's limit are reported by Compile.
func Repeated(f Fragment, count uint) Fragment { return repeated{of: f, count: count} }

// OneOrMore matches f at least once.
func OneOrMore(f Fragment) Fragment { return oneOrMore{of: f} }

// Optional matches f zero or one time.
func Optional(f Fragment) Fragment { return optional{of: f} }

// Named captures f in a group called name. The name is not checked here; an
// illegal one is reported by Compile.
func Named(f Fragment, name string) Fragment { return named{of: f, name: name} }

// Sequence matches a followed by b.
func Sequence(a, b Fragment) Fragment { return sequence{left: a, right: b} }

// Alternation matches either a or b.
func Alternation(a, b Fragment) Fragment { return alternation{left: a, right: b} }

// Concat chains fs with Sequence, left to right. Concat() matches the empty
// string.
func Concat(fs ...Fragment) Fragment {
	if len(fs) == 0 {
		return literal("")
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out = Sequence(out, f)
	}
	return out
}

// AnyOf chains fs with Alternation, left to right. AnyOf() matches the empty
// string.
func AnyOf(fs ...Fragment) Fragment {
	if len(fs) == 0 {
		return literal("")
	}
	out := fs[0]
	for _, f := range fs[1:] {
		out = Alternation(out, f)
	}
	return out
}

func (l literal) String() string     { return Render(l) }
func (r raw) String() string         { return Render(r) }
func (r repeated) String() string    { return Render(r) }
func (o oneOrMore) String() string   { return Render(o) }
func (o optional) String() string    { return Render(o) }
func (n named) String() string       { return Render(n) }
func (s sequence) String() string    { return Render(s) }
func (a alternation) String() string { return Render(a) }

func (literal) isFragment()     {}
func (raw) isFragment()         {}
func (repeated) isFragment()    {}
func (oneOrMore) isFragment()   {}
func (optional) isFragment()    {}
func (named) isFragment()       {}
func (sequence) isFragment()    {}
func (alternation) isFragment() {}

// Render returns the pattern for f in the syntax accepted by the regexp
// package. It is deterministic and never fails; a nil Fragment renders to "".
func Render(f Fragment) string {
	var sb strings.Builder
	render(&sb, f)
	return sb.String()
}

func render(sb *strings.Builder, f Fragment) {
	switch f := f.(type) {
	case nil:
	case Kind:
		if f.valid() {
			sb.WriteString(kinds[f].pattern)
		}
	case literal:
		sb.WriteString(regexp.QuoteMeta(string(f)))
	case raw:
		sb.WriteString(string(f))
	case repeated:
		quantify(sb, f.of, "{"+strconv.FormatUint(uint64(f.count), 10)+"}")
	case oneOrMore:
		quantify(sb, f.of, "+")
	case optional:
		quantify(sb, f.of, "?")
	case named:
		sb.WriteString("(?P<")
		sb.WriteString(f.name)
		sb.WriteByte('>')
		render(sb, f.of)
		sb.WriteByte(')')
	case sequence:
		render(sb, f.left)
		render(sb, f.right)
	case alternation:
		sb.WriteString("(?:")
		renderBranches(sb, f)
		sb.WriteByte(')')
	case Builder:
		render(sb, f.f)
	default:
		panic("magicregexp: unknown fragment type")
	}
}

// renderBranches flattens directly nested alternations into one group.
func renderBranches(sb *strings.Builder, f Fragment) {
	switch a := unwrap(f).(type) {
	case alternation:
		renderBranches(sb, a.left)
		sb.WriteByte('|')
		renderBranches(sb, a.right)
	default:
		render(sb, f)
	}
}

// quantify appends f followed by q, grouping f unless it is an atom.
func quantify(sb *strings.Builder, f Fragment, q string) {
	if isAtom(f) {
		render(sb, f)
	} else {
		sb.WriteString("(?:")
		render(sb, f)
		sb.WriteByte(')')
	}
	sb.WriteString(q)
}

// isAtom reports whether f renders to a single unit a quantifier can bind
// to without changing its meaning.
func isAtom(f Fragment) bool {
	switch f := unwrap(f).(type) {
	case Kind:
		return f.valid() && kinds[f].atom
	case literal:
		return utf8.RuneCountInString(string(f)) == 1
	case named, alternation:
		return true
	default:
		return false
	}
}

func unwrap(f Fragment) Fragment {
	for {
		b, ok := f.(Builder)
		if !ok {
			return f
		}
		f = b.f
	}
}
