// Package strutil holds string helpers used when building user-facing text:
// positional and named placeholder formatting, rune-safe insertion and blank
// checks.
//
// Placeholders use the brace syntax of resource bundles rather than fmt verbs:
//
//	strutil.Format("Hello {0}, you are {1}", "Bob", 30) // "Hello Bob, you are 30"
//	strutil.Format("Val: {5}", "x")                    // "Val: {5}"
//
// A placeholder without a matching argument is kept verbatim, so partially
// formatted templates can be formatted again later.
//
// None of the helpers returns an error or panics on odd input.
package strutil
