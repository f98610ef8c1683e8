// Package cipher implements the six-digit number transformation at the
// heart of sixshift.
//
// The transformation is a bijection over the 10^6 possible six-digit
// strings, built from two steps:
//
//  1. A fixed additive shift: each digit d becomes (d+7) mod 10.
//  2. A fixed permutation of positions: 1↔3, 2↔4, 5↔6 (1-indexed).
//
// Decoding applies the inverse in reverse order: the permutation is
// composed of disjoint transpositions and therefore undoes itself, and
// (d+3) mod 10 undoes the shift.
//
// The transformation is trivially invertible by inspection. It is an
// obfuscation gadget, not a security primitive, and no cryptographic
// property is claimed.
//
// # Representation
//
// Values are fixed-width six-character ASCII digit strings. Leading
// zeros are significant ("000007" and "7" are different values), so
// the string form is canonical; converting through an integer would
// lose width.
//
// # Validity
//
// Encode and Decode are total over the valid-input domain and fail
// fast with *InvalidInputError on anything that is not exactly six
// ASCII digits. There is no truncation, padding, or coercion.
//
// Both functions are pure and safe for concurrent use; no state is
// shared across calls.
package cipher
