// Package raw provides the unchecked bit-trick primitives behind subint.
//
// These functions sit on the hot path and do not validate their inputs.
// Callers that cannot guarantee the documented preconditions should use the
// checked wrappers in the subint package instead.
//
// Reference: https://graphics.stanford.edu/~seander/bithacks.html#NextBitPermutation
package raw
