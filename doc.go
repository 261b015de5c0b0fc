// Package magicregexp builds regular expressions out of typed fragments
// instead of raw syntax.
//
// A pattern is composed from [Literal] text, character-class [Kind] values
// such as [Digit] or [Whitespace], and combinators ([Repeated], [Optional],
// [OneOrMore], [Named], [Sequence], [Alternation]). [Render] turns the
// result into a pattern string and [Compile] hands that string to the
// [go.dw1.io/magicregexp/regexp] package, which picks coregex or regexp2 to
// run it.
//
// Fragments are immutable values and may be shared between goroutines.
//
//	date := From(Repeated(Digit, 4)).GroupedAs("year").
//		And(Literal("-")).
//		And(From(Repeated(Digit, 2)).GroupedAs("month")).
//		And(Literal("-")).
//		And(From(Repeated(Digit, 2)).GroupedAs("day"))
//
//	re, err := Compile(date) // (?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})
package magicregexp
