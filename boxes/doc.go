// Package boxes implements the pure state behind a segmented code input: the
// ordered registry of single-character boxes with their transient keyboard
// flags, and the synchronizer that maps one logical code onto the boxes.
//
// Indices are 0-based and stable for a box's lifetime. A "character" is one
// grapheme cluster.
package boxes
