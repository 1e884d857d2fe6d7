// Package assembler turns a validated config, a filtered word pool, and a
// stream of random draws into a single password string.
//
// Assembly is a fixed pipeline: select words, apply the case transform,
// apply character substitutions, resolve the separator, join, attach digit
// groups, and apply padding. Random draws are consumed in a fixed order:
// word indices first, then case bits (RANDOM case only), then the separator,
// then the padding character, then the digits. The number and order of
// draws for a given config is fully predictable and matches
// entropy.ConfigStats.
//
// Word selection is with replacement: repeated words are possible and are
// not filtered out. Adaptive padding forces an exact final length, extending
// with the padding character or truncating from the end. Truncation may cut
// mid-word or through a digit group, which is accepted lossy behavior.
package assembler
