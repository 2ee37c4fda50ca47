// SPDX-License-Identifier: MIT
// Package: hexworm/levelgen
//
// errors.go: sentinel errors for the levelgen package.
//
// Callers branch with errors.Is. Option constructors panic on meaningless
// values instead of returning these.

package levelgen

import "errors"

// ErrNeedRandSource indicates that Generate was called without WithRand or
// WithSeed. The generator never falls back to a global source.
var ErrNeedRandSource = errors.New("levelgen: random source required (use WithRand or WithSeed)")
