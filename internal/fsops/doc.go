// Package fsops is the filesystem capability surface consumed by the
// reconciliation logic.
//
// Mutations go through the Executor interface so dry-run mode can swap in a
// no-op implementation while every decision path stays identical. Errors are
// tagged with sentinel markers for top-level classification; none of these
// operations are retried.
package fsops
