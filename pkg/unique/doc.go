// Package unique implements uniqueness-preserving random selection over
// string pools. It is the engine behind every generator in this module:
// repeated picks within a session never return the same value until the
// whole pool has been handed out, at which point the cycle silently starts
// over.
//
// # Architecture
//
// Two layers share the work:
//
//   - Picker holds only a randomness strategy and implements the selection
//     algorithm: subtract the used values from the distinct pool values,
//     pick uniformly from what remains, and reset the used Set in place when
//     nothing remains.
//   - Tracker keys caller-owned sessions by category name ("degree",
//     "first_name:igbo", ...) so independent generation streams cycle
//     through their pools without affecting each other, and records every
//     pick automatically.
//
// Selection is uniform over distinct values, so a value listed twice in a
// pool is not twice as likely to appear. Randomness is injectable through
// the IntN strategy, which makes every behavior reproducible in tests.
//
// Neither type locks: a Picker or Tracker must be confined to a single
// goroutine, the same contract as math/rand.Rand.
//
// # Usage
//
//	picker := unique.New(unique.WithSeed(42))
//	used := unique.NewSet()
//
//	for range 3 {
//		v, err := picker.Pick([]string{"red", "green", "blue"}, used)
//		if err != nil {
//			// handle error
//		}
//		used.Add(v) // Pick never records; the caller does
//	}
//	// used now holds all three colors; the next Pick resets the cycle.
//
// Or let a Tracker do the bookkeeping:
//
//	tracker := unique.NewTracker(unique.New())
//	v, err := tracker.Pick("color", []string{"red", "green", "blue"})
//
// # Error Handling
//
// Pick fails only when the pool itself holds no values, reported as
// ErrEmptyPool and comparable with errors.Is.
package unique
