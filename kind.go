package magicregexp

// Kind is a character class or assertion that matches at a single position.
// Every Kind is also a Fragment.
type Kind int

const (
	Digit Kind = iota
	NotDigit
	WordChar
	NotWordChar
	Whitespace
	NotWhitespace
	Letter
	NotLetter
	LetterLowercase
	NotLetterLowercase
	LetterUppercase
	NotLetterUppercase
	Tab
	NotTab
	Linefeed
	NotLinefeed
	CarriageReturn
	NotCarriageReturn
	WordBoundary
	NotWordBoundary

	// Char matches any character except a newline. It has no complement.
	Char
	// Word matches a whole run of word characters between boundaries. It has
	// no complement.
	Word

	numKinds
)

type kindInfo struct {
	name    string
	pattern string
	// complement is the negated kind, or the kind itself.
	complement Kind
	// atom reports whether a quantifier can follow pattern directly.
	atom bool
}

var kinds = [numKinds]kindInfo{
	Digit:              {"Digit", `\d`, NotDigit, true},
	NotDigit:           {"NotDigit", `\D`, Digit, true},
	WordChar:           {"WordChar", `\w`, NotWordChar, true},
	NotWordChar:        {"NotWordChar", `\W`, WordChar, true},
	Whitespace:         {"Whitespace", `\s`, NotWhitespace, true},
	NotWhitespace:      {"NotWhitespace", `\S`, Whitespace, true},
	Letter:             {"Letter", `[a-zA-Z]`, NotLetter, true},
	NotLetter:          {"NotLetter", `[^a-zA-Z]`, Letter, true},
	LetterLowercase:    {"LetterLowercase", `[a-z]`, NotLetterLowercase, true},
	NotLetterLowercase: {"NotLetterLowercase", `[^a-z]`, LetterLowercase, true},
	LetterUppercase:    {"LetterUppercase", `[A-Z]`, NotLetterUppercase, true},
	NotLetterUppercase: {"NotLetterUppercase", `[^A-Z]`, LetterUppercase, true},
	Tab:                {"Tab", `\t`, NotTab, true},
	NotTab:             {"NotTab", `[^\t]`, Tab, true},
	Linefeed:           {"Linefeed", `\n`, NotLinefeed, true},
	NotLinefeed:        {"NotLinefeed", `[^\n]`, Linefeed, true},
	CarriageReturn:     {"CarriageReturn", `\r`, NotCarriageReturn, true},
	NotCarriageReturn:  {"NotCarriageReturn", `[^\r]`, CarriageReturn, true},
	WordBoundary:       {"WordBoundary", `\b`, NotWordBoundary, false},
	NotWordBoundary:    {"NotWordBoundary", `\B`, WordBoundary, false},
	Char:               {"Char", `.`, Char, true},
	Word:               {"Word", `\b\w+\b`, Word, false},
}

// Not returns the complement of k: Digit becomes NotDigit and NotDigit
// becomes Digit. Kinds without a complement (Char, Word) and unknown values
// are returned unchanged, so Not(Not(k)) == k always holds.
func Not(k Kind) Kind {
	if !k.valid() {
		return k
	}
	return kinds[k].complement
}

// Negatable reports whether Not changes k.
func (k Kind) Negatable() bool {
	return Not(k) != k
}

// Name returns the identifier of k, e.g. "NotDigit".
func (k Kind) Name() string {
	if !k.valid() {
		return "Kind(?)"
	}
	return kinds[k].name
}

// String renders k.
func (k Kind) String() string {
	return Render(k)
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		out = append(out, k)
	}
	return out
}

// KindByName looks a Kind up by its Name.
func KindByName(name string) (Kind, bool) {
	for k := Kind(0); k < numKinds; k++ {
		if kinds[k].name == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) valid() bool {
	return k >= 0 && k < numKinds
}

func (Kind) isFragment() {}
