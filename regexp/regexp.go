package regexp

import (
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Engine identifies the backend a Regexp was compiled with.
type Engine int

const (
	// EngineCore is coregex, the RE2-compatible default.
	EngineCore Engine = iota
	// EnginePCRE is regexp2, used for patterns RE2 cannot express.
	EnginePCRE
)

// String returns the backend name.
func (e Engine) String() string {
	switch e {
	case EngineCore:
		return "coregex"
	case EnginePCRE:
		return "regexp2"
	default:
		return "unknown"
	}
}

// Regexp is a compiled pattern backed by either coregex or regexp2.
type Regexp struct {
	pattern string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
	// groups maps a group's position in pattern to its regexp2 number.
	groups []int
}

// Compile parses pattern with coregex, or with regexp2 when it uses
// constructs only a backtracking engine supports (see needsPCRE). regexp2
// runs in RE2 compatibility mode so both backends agree on the meaning of
// the shared syntax, (?P<name>...) groups included.
func Compile(pattern string) (*Regexp, error) {
	if needsPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.RE2)
		if err != nil {
			return nil, err
		}
		return &Regexp{pattern: pattern, pcre: re, groups: sourceOrder(re, pattern)}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source pattern.
func (r *Regexp) String() string {
	return r.pattern
}

// Engine reports which backend compiled r.
func (r *Regexp) Engine() Engine {
	if r.core != nil {
		return EngineCore
	}
	return EnginePCRE
}

// MatchString reports whether s contains any match of r.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of r in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindStringIndex returns the byte offsets of the leftmost match in s.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	start, end := runeRangeToByte(s, m.Index, m.Length)
	return []int{start, end}
}

// FindStringSubmatch returns the leftmost match of r in s followed by the
// text of each capture group.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	return r.groupsToStrings(s, m)
}

// FindAllString returns up to n successive matches of r in s; n < 0 means
// all of them.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	var matches []string
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		matches = append(matches, m.String())
		m, err = r.pcre.FindNextMatch(m)
	}
	return matches
}

// FindAllStringSubmatch is the all-matches version of FindStringSubmatch.
func (r *Regexp) FindAllStringSubmatch(s string, n int) [][]string {
	if r.core != nil {
		return r.core.FindAllStringSubmatch(s, n)
	}

	var matches [][]string
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		matches = append(matches, r.groupsToStrings(s, m))
		m, err = r.pcre.FindNextMatch(m)
	}
	return matches
}

// NumSubexp returns the number of capture groups in r.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return len(r.groups) - 1
}

// SubexpNames returns the names of the capture groups in r, indexed by group
// number. names[0] is always "" and unnamed groups are "".
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	names := make([]string, len(r.groups))
	for i := 1; i < len(r.groups); i++ {
		num := r.groups[i]
		name := r.pcre.GroupNameFromNumber(num)
		// regexp2 reports unnamed groups by their number.
		if name != strconv.Itoa(num) {
			names[i] = name
		}
	}

	return names
}

// SubexpIndex returns the index of the first group called name, or -1.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range r.SubexpNames() {
		if n == name {
			return i
		}
	}
	return -1
}

// NamedSubmatches returns the named groups of the leftmost match in s. The
// second result is false when s does not match.
func (r *Regexp) NamedSubmatches(s string) (map[string]string, bool) {
	sm := r.FindStringSubmatch(s)
	if sm == nil {
		return nil, false
	}

	out := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if name == "" || i >= len(sm) {
			continue
		}
		if _, seen := out[name]; seen {
			continue
		}
		out[name] = sm[i]
	}
	return out, true
}

// sourceOrder numbers the groups of re the way coregex does, by the position
// of their opening parenthesis. regexp2 numbers unnamed groups first and
// named groups after them. If the two views disagree, regexp2's own
// numbering is kept.
func sourceOrder(re *regexp2.Regexp, pattern string) []int {
	highest := 0
	for _, n := range re.GetGroupNumbers() {
		if n > highest {
			highest = n
		}
	}

	names := captureNames(pattern)
	if len(names) == highest {
		order := make([]int, 1, highest+1)
		unnamed := 0
		for _, name := range names {
			if name == "" {
				unnamed++
				order = append(order, unnamed)
				continue
			}
			num := re.GroupNumberFromName(name)
			if num < 1 {
				break
			}
			order = append(order, num)
		}
		if len(order) == highest+1 {
			return order
		}
	}

	order := make([]int, highest+1)
	for i := range order {
		order[i] = i
	}
	return order
}

// groupsToStrings lays out regexp2 groups in source order, the way coregex
// reports submatches. Unmatched groups are "".
func (r *Regexp) groupsToStrings(s string, m *regexp2.Match) []string {
	out := make([]string, len(r.groups))
	runes := []rune(s)
	for i, num := range r.groups {
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}
	return out
}
