// Package reconcile keeps the library tree's hardlinks synchronized with the
// scanned source inventory.
//
// A run has three strictly ordered phases: reclaim stale links (target files
// whose inode no longer appears in the source media set), create missing
// links for classified entries, and prune directories the reclaim emptied.
// Phase decisions overlay the planned actions on the observed filesystem
// state so a dry-run executor yields the exact action set of a real run.
package reconcile
