package sampler

import (
	"math/rand"

	"github.com/pkg/errors"
)

// File-local constants mirroring the teacher's file-local-constants style
// (see builder/impl_random_regular.go).
const (
	methodSample = "Sample"
	minN         = 2
)

// Sentinel errors for the sampler package.
var (
	// ErrNeedRandSource indicates Options.Rand was nil; the sampler needs an
	// injected RNG for determinism-per-seed, same contract as the teacher's
	// builder constructors.
	ErrNeedRandSource = errors.New("sampler: rand source is required")

	// ErrTooFewVertices indicates n < 2, the smallest n for which a
	// triangulation with a distinguishable root edge exists.
	ErrTooFewVertices = errors.New("sampler: n must be at least 2")
)

// Options configures Sample.
type Options struct {
	// Rand is the injected RNG; must be non-nil.
	Rand *rand.Rand
	// TwoCycles is accepted but has no effect: Sample returns the same simple
	// triangulation whether it is set or not.
	TwoCycles bool
}
