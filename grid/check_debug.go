//go:build griddebug

package grid

// debugChecks enables precondition assertions on hot paths.
const debugChecks = true
