// Package pipeline applies an ordered list of tensor reorderings described
// by a YAML configuration:
//
//	steps:
//	  - op: move_first
//	    axes: [cell]
//	  - op: sort_axes
//	  - op: sort_entries
//	    descending: true
//
// Ops: permute (perm), move_first (axes), sort_axes (descending),
// sort_entries (descending). Each step is logged at Debug level through the
// supplied zap logger; the resulting axis order is logged at Info.
package pipeline
