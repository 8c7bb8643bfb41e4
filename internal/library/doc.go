// Package library computes the canonical target-tree locations for
// classified media. The naming convention is fixed:
//
//	<library>/<shows>/<series>/Season <N>/episode <E>.<ext>
//	<library>/<movies>/<title> (<year>)/movie.<ext>
//	<library>/<movies>/<title>/movie.<ext>          (year unknown)
package library
