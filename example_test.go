package magicregexp_test

import (
	"fmt"

	"go.dw1.io/magicregexp"
)

func ExampleRender() {
	date := magicregexp.Concat(
		magicregexp.Repeated(magicregexp.Digit, 4),
		magicregexp.Literal("-"),
		magicregexp.Repeated(magicregexp.Digit, 2),
		magicregexp.Literal("-"),
		magicregexp.Repeated(magicregexp.Digit, 2),
	)
	fmt.Println(magicregexp.Render(date))
	// Output:
	// \d{4}-\d{2}-\d{2}
}

func ExampleCompile() {
	date := magicregexp.From(magicregexp.Repeated(magicregexp.Digit, 4)).GroupedAs("year").
		And(magicregexp.Literal("-")).
		And(magicregexp.From(magicregexp.Repeated(magicregexp.Digit, 2)).GroupedAs("month")).
		And(magicregexp.Literal("-")).
		And(magicregexp.From(magicregexp.Repeated(magicregexp.Digit, 2)).GroupedAs("day"))

	re, err := magicregexp.Compile(date)
	if err != nil {
		return
	}
	fmt.Println(re)

	for _, m := range re.FindAllStringSubmatch("On 2010-03-14, foo happened. On 2014-10-14, bar happened.", -1) {
		fmt.Printf("year: %s, month: %s, day: %s\n", m[1], m[2], m[3])
	}
	// Output:
	// (?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})
	// year: 2010, month: 03, day: 14
	// year: 2014, month: 10, day: 14
}

func ExampleNot() {
	fmt.Println(magicregexp.Not(magicregexp.Digit))
	fmt.Println(magicregexp.Not(magicregexp.Not(magicregexp.Digit)))
	fmt.Println(magicregexp.Not(magicregexp.Char))
	// Output:
	// \D
	// \d
	// .
}
