// Package dictionary provides word sources for password generation and the
// filter that reduces a raw word list to the pool usable under a length and
// accent policy.
//
// A WordSource is anything that can hand over a list of words: the built-in
// English list, a slice, or a file with one word per line. The generator
// never selects from a raw source directly; it selects from the filtered
// pool produced by Filter, which keeps only words whose rune length falls
// within the configured bounds and, unless accented output is allowed,
// strips diacritics from the survivors (é becomes e, ñ becomes n). An empty
// pool is a fatal condition at load time, not at generation time.
package dictionary
