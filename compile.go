package magicregexp

import (
	"regexp/syntax"

	"go.dw1.io/magicregexp/regexp"
)

// EngineError is returned when the regexp engine rejects a rendered pattern.
// Its message is the engine's own diagnostic.
type EngineError struct {
	// Pattern is the rendered pattern that failed to compile.
	Pattern string
	// Err is the engine's error.
	Err error
}

func (e *EngineError) Error() string {
	return e.Err.Error()
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// Compile renders f and compiles the result. Any error comes from the engine
// and is returned as an *EngineError.
//
// A group name the engine would read differently than it was written, such
// as one containing '>', is reported as syntax.ErrInvalidNamedCapture.
func Compile(f Fragment) (*regexp.Regexp, error) {
	pattern := Render(f)

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &EngineError{Pattern: pattern, Err: err}
	}

	if name, ok := misreadGroup(f, re.SubexpNames()); ok {
		return nil, &EngineError{
			Pattern: pattern,
			Err:     &syntax.Error{Code: syntax.ErrInvalidNamedCapture, Expr: "(?P<" + name + ">"},
		}
	}

	return re, nil
}

// MustCompile is like Compile but panics if the engine rejects the pattern.
func MustCompile(f Fragment) *regexp.Regexp {
	re, err := Compile(f)
	if err != nil {
		panic(err)
	}
	return re
}

// misreadGroup returns the first group name in f that is missing from the
// names the engine parsed.
func misreadGroup(f Fragment, parsed []string) (string, bool) {
	seen := make(map[string]bool, len(parsed))
	for _, name := range parsed {
		seen[name] = true
	}

	for _, name := range groupNames(f, nil) {
		if !seen[name] {
			return name, true
		}
	}
	return "", false
}

// groupNames appends the Named group names of f in render order.
func groupNames(f Fragment, names []string) []string {
	switch f := f.(type) {
	case repeated:
		return groupNames(f.of, names)
	case oneOrMore:
		return groupNames(f.of, names)
	case optional:
		return groupNames(f.of, names)
	case named:
		return groupNames(f.of, append(names, f.name))
	case sequence:
		return groupNames(f.right, groupNames(f.left, names))
	case alternation:
		return groupNames(f.right, groupNames(f.left, names))
	case Builder:
		return groupNames(f.f, names)
	default:
		return names
	}
}
