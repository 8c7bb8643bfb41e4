// Package scan enumerates the source tree and assembles the classified
// inventory a reconciliation run works from. The inventory is a
// point-in-time snapshot: entries are collected in walk order, resolved to
// inodes once, and never re-validated mid-run.
package scan
