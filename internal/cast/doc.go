// Package cast coerces loosely typed values decoded from pattern files.
//
// Integer inputs go through [safemath] so that a value which does not fit
// the target type is reported instead of silently wrapping. Everything else
// is handled by [cast].
package cast
