// Package phonemask formats phone-number input into a progressive display
// mask such as "(DDD) DDD-DD-DD".
//
// Formatting is a total function over arbitrary text: every non-digit is
// discarded, the digits are truncated to the mask capacity, and the literal
// prefix of each digit group is emitted only once that group holds at least
// one digit. The display value is the single source of truth; the digit
// buffer is always recomputed from it.
//
// Field models one input element and the two events the browser runtime
// binds: input (reformat the whole value) and keydown for Backspace (drop a
// trailing separator). Cursor position is not tracked, so edits anywhere in
// the value behave like edits at the end.
package phonemask
