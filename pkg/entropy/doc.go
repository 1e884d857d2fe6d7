// Package entropy reports the strength of a password configuration under
// two attacker models, without reference to any single generated password.
//
// ConfigStats derives structural facts from a config alone: the minimum and
// maximum password length it can produce, and the exact number of random
// draws one assembly consumes.
//
// Calculate estimates permutation counts with arbitrary-precision integers:
//
//   - Blind: a brute-force attacker who knows nothing, modeled as
//     alphabet^length over a generic alphabet inferred from the config
//     (lowercase always; uppercase, digits, and symbols added when the
//     config guarantees them in the output).
//   - Seen: an attacker with full knowledge of the dictionary and the
//     config, who only has to search the space the generator actually
//     selects from.
//
// Entropy in bits is the base-2 logarithm of each count. Calculate also
// raises non-fatal warnings when either entropy falls below its configured
// floor, and when multi-character substitutions make the computed maximum
// length unreliable.
package entropy
