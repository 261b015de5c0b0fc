package regexp

import (
	"slices"
	"testing"
)

func TestCompileEngineSelection(t *testing.T) {
	coreRe, err := Compile(`\d{4}-\d{2}`)
	if err != nil {
		t.Fatalf("compile core: %v", err)
	}
	if coreRe.Engine() != EngineCore {
		t.Fatalf("expected coregex backend, got %s", coreRe.Engine())
	}

	pcreRe, err := Compile("(?<=a)b")
	if err != nil {
		t.Fatalf("compile pcre: %v", err)
	}
	if pcreRe.Engine() != EnginePCRE {
		t.Fatalf("expected regexp2 backend, got %s", pcreRe.Engine())
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`(?P<bad name>\d)`); err == nil {
		t.Fatalf("expected error for invalid group name")
	}
	if _, err := Compile(`(\d`); err == nil {
		t.Fatalf("expected error for missing closing parenthesis")
	}
}

func TestCoreNamedSubmatches(t *testing.T) {
	re := MustCompile(`(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`)

	if !re.MatchString("2014-01-01") {
		t.Fatalf("MatchString core: expected true")
	}

	got, ok := re.NamedSubmatches("on 2014-01-01")
	if !ok {
		t.Fatalf("NamedSubmatches core: expected match")
	}
	want := map[string]string{"year": "2014", "month": "01", "day": "01"}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("NamedSubmatches core[%q]: got %q want %q", k, got[k], v)
		}
	}

	if idx := re.SubexpIndex("month"); idx != 2 {
		t.Fatalf("SubexpIndex core: got %d", idx)
	}
	if idx := re.SubexpIndex("missing"); idx != -1 {
		t.Fatalf("SubexpIndex core missing: got %d", idx)
	}
	if n := re.NumSubexp(); n != 3 {
		t.Fatalf("NumSubexp core: got %d", n)
	}

	if _, ok := re.NamedSubmatches("no date"); ok {
		t.Fatalf("NamedSubmatches core: expected no match")
	}
}

func TestCoreFindAll(t *testing.T) {
	re := MustCompile(`\d{4}-\d{2}-\d{2}`)
	const text = "On 2010-03-14, foo happened. On 2014-10-14, bar happened."

	all := re.FindAllString(text, -1)
	if len(all) != 2 || all[0] != "2010-03-14" || all[1] != "2014-10-14" {
		t.Fatalf("FindAllString core: got %v", all)
	}

	if one := re.FindAllString(text, 1); len(one) != 1 {
		t.Fatalf("FindAllString core n=1: got %v", one)
	}
}

func TestPCREBackreference(t *testing.T) {
	re := MustCompile(`(\w+)\s+\1`)

	if re.Engine() != EnginePCRE {
		t.Fatalf("expected regexp2 backend for backreference pattern")
	}

	if !re.MatchString("go go") {
		t.Fatalf("MatchString pcre backref: expected true")
	}

	sm := re.FindStringSubmatch("go go")
	if len(sm) != 2 || sm[0] != "go go" || sm[1] != "go" {
		t.Fatalf("FindStringSubmatch pcre backref: got %v", sm)
	}

	names := re.SubexpNames()
	if len(names) != 2 || names[1] != "" {
		t.Fatalf("SubexpNames pcre unnamed: got %q", names)
	}
}

func TestPCRENamedGroup(t *testing.T) {
	re := MustCompile(`(?<=@)(?<user>\w+)`)

	got, ok := re.NamedSubmatches("mail @gopher now")
	if !ok {
		t.Fatalf("NamedSubmatches pcre: expected match")
	}
	if got["user"] != "gopher" {
		t.Fatalf("NamedSubmatches pcre: got %v", got)
	}
}

func TestPCRESubmatchSourceOrder(t *testing.T) {
	const groups = `(?P<amt>\d+)(x)?(?P<l>[a-zA-Z])`
	const input = "cost $42xq"

	core := MustCompile(`\$` + groups)
	pcre := MustCompile(`(?<=\$)` + groups)
	if core.Engine() != EngineCore || pcre.Engine() != EnginePCRE {
		t.Fatalf("unexpected backends: %s, %s", core.Engine(), pcre.Engine())
	}

	wantNames := []string{"", "amt", "", "l"}
	for _, re := range []*Regexp{core, pcre} {
		if got := re.SubexpNames(); !slices.Equal(got, wantNames) {
			t.Fatalf("SubexpNames %s: got %q want %q", re.Engine(), got, wantNames)
		}
		if n := re.NumSubexp(); n != 3 {
			t.Fatalf("NumSubexp %s: got %d", re.Engine(), n)
		}
		if idx := re.SubexpIndex("l"); idx != 3 {
			t.Fatalf("SubexpIndex %s: got %d", re.Engine(), idx)
		}
	}

	sm := pcre.FindStringSubmatch(input)
	if want := []string{"42xq", "42", "x", "q"}; !slices.Equal(sm, want) {
		t.Fatalf("FindStringSubmatch pcre: got %q want %q", sm, want)
	}
	if core := core.FindStringSubmatch(input); !slices.Equal(sm[1:], core[1:]) {
		t.Fatalf("submatch groups differ: pcre %q, core %q", sm, core)
	}

	all := pcre.FindAllStringSubmatch("$1a $2xb", -1)
	if len(all) != 2 || !slices.Equal(all[1], []string{"2xb", "2", "x", "b"}) {
		t.Fatalf("FindAllStringSubmatch pcre: got %q", all)
	}
	if all[0][2] != "" {
		t.Fatalf("unmatched optional group should be empty, got %q", all[0][2])
	}
}

func TestPCRELookbehindRuneOffsets(t *testing.T) {
	// Emoji is 4 bytes; ensures rune-to-byte conversion is correct.
	re := MustCompile("(?<=🙂)a")

	idxs := re.FindStringIndex("🙂a🙂a")
	if len(idxs) != 2 || idxs[0] != 4 || idxs[1] != 5 {
		t.Fatalf("FindStringIndex pcre lookbehind: got %v", idxs)
	}

	all := re.FindAllString("🙂a🙂a", -1)
	if len(all) != 2 {
		t.Fatalf("FindAllString pcre lookbehind: got %v", all)
	}
}

func TestQuoteMeta(t *testing.T) {
	const lit = `1.5+(x)*[y]?{z}|^$\`
	re := MustCompile("^" + QuoteMeta(lit) + "$")
	if !re.MatchString(lit) {
		t.Fatalf("QuoteMeta: %q does not match itself", QuoteMeta(lit))
	}
}
