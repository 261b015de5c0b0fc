package regexp

import "strings"

// pcreOnly lists constructs RE2 rejects but regexp2 accepts, after
// pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreOnly = []string{
	// lookaround
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	"(?*", "(*napla:", "(?<*", "(*naplb:",
	// atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// recursion and subroutine calls
	"(?R)", "(?P>", "(?&", "(?P=",
	// backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
}

// pcreEscapes are the letters that, after an unescaped backslash, form an
// escape only regexp2 understands: horizontal and vertical space classes,
// newline sequences, graphemes, match-start resets, anchors and named
// backreferences.
const pcreEscapes = "hHVRXKeGZkg"

// needsPCRE reports whether pattern uses a construct only regexp2 can run.
func needsPCRE(pattern string) bool {
	for _, tok := range pcreOnly {
		if strings.Contains(pattern, tok) {
			return true
		}
	}

	if hasPCREEscape(pattern) {
		return true
	}

	// Go accepts (?P<name>...) and (?<name>...) but not (?'name'...).
	return strings.Contains(pattern, "(?'")
}

// hasPCREEscape reports an unescaped backreference (\1 through \9) or one
// of pcreEscapes. Escaped backslashes, as produced by QuoteMeta, are skipped.
func hasPCREEscape(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '\\' {
			continue
		}
		next := pattern[i+1]
		if (next >= '1' && next <= '9') || strings.IndexByte(pcreEscapes, next) >= 0 {
			return true
		}
		// skip the escaped character, backslash included
		i++
	}
	return false
}

// captureNames lists the capturing groups of pattern in the order their
// opening parentheses appear, with "" for unnamed groups. Escapes and
// character classes are skipped.
func captureNames(pattern string) []string {
	var names []string
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a ']' right after '[' or '[^' is a literal member
			if strings.HasPrefix(pattern[i+1:], "^") {
				i++
			}
			if strings.HasPrefix(pattern[i+1:], "]") {
				i++
			}
		case c == '(':
			if name, ok := groupName(pattern[i+1:]); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

// groupName inspects the text after '(' and reports whether it opens a
// capturing group, and under which name.
func groupName(rest string) (string, bool) {
	if !strings.HasPrefix(rest, "?") {
		return "", !strings.HasPrefix(rest, "*")
	}

	var opener, closer string
	switch {
	case strings.HasPrefix(rest, "?P<"):
		opener, closer = "?P<", ">"
	case strings.HasPrefix(rest, "?<") && !strings.HasPrefix(rest, "?<=") && !strings.HasPrefix(rest, "?<!"):
		opener, closer = "?<", ">"
	case strings.HasPrefix(rest, "?'"):
		opener, closer = "?'", "'"
	default:
		return "", false
	}

	rest = rest[len(opener):]
	end := strings.Index(rest, closer)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// runeRangeToByte converts a regexp2 rune offset and length into byte
// offsets within s.
func runeRangeToByte(s string, startRune, length int) (int, int) {
	if startRune < 0 || length < 0 {
		return -1, -1
	}

	return runeToByteOffset(s, startRune), runeToByteOffset(s, startRune+length)
}

func runeToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}

	count := 0
	for i := range s {
		if count == runeIndex {
			return i
		}
		count++
	}

	return len(s)
}
