package magicregexp

// Builder chains fragments fluently:
//
//	From(Repeated(Digit, 4)).GroupedAs("year").And(Literal("-"))
//
// Every method returns a new Builder and leaves the receiver untouched. A
// Builder is itself a Fragment that renders like the fragment it wraps; the
// zero Builder renders to "".
type Builder struct {
	f Fragment
}

// From starts a chain at f.
func From(f Fragment) Builder {
	return Builder{f: f}
}

// Fragment returns the wrapped fragment.
func (b Builder) Fragment() Fragment {
	return b.f
}

// And appends next.
func (b Builder) And(next Fragment) Builder {
	return Builder{f: Sequence(b.f, next)}
}

// Or offers alt as an alternative to everything chained so far.
func (b Builder) Or(alt Fragment) Builder {
	return Builder{f: Alternation(b.f, alt)}
}

// Optionally makes everything chained so far optional.
func (b Builder) Optionally() Builder {
	return Builder{f: Optional(b.f)}
}

// GroupedAs captures everything chained so far as name.
func (b Builder) GroupedAs(name string) Builder {
	return Builder{f: Named(b.f, name)}
}

// Times repeats everything chained so far exactly n times.
func (b Builder) Times(n uint) Builder {
	return Builder{f: Repeated(b.f, n)}
}

// OneOrMore repeats everything chained so far at least once.
func (b Builder) OneOrMore() Builder {
	return Builder{f: OneOrMore(b.f)}
}

func (b Builder) String() string {
	return Render(b)
}

func (Builder) isFragment() {}
