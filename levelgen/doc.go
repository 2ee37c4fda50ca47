// Package levelgen generates random worm levels.
//
// A level is a random walk from the origin over a restricted direction set
// with occasional short branches scattered around the walker. The goal is
// wherever the walk ends. Randomness is always injected (WithSeed or
// WithRand) so every level can be reproduced from its seed.
//
//	b, err := levelgen.Generate(levelgen.WithSeed(7), levelgen.WithSteps(30))
//
// Generated levels are not guaranteed to be solvable; pair Generate with
// solver.Solve (as session.WithSolvableOnly does) to reject dead ends.
package levelgen
