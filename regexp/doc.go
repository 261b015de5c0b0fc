// Package regexp compiles rendered patterns with the fastest engine that can
// run them.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine)
// by default. When a pattern needs constructs RE2 cannot execute, such as
// lookaround or backreferences, the package falls back to [regexp2]. Both
// backends expose the same string-oriented API, including named capture
// groups in the (?P<name>...) form.
package regexp
