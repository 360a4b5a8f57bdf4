// Package codeinput provides a Bubble Tea one-time-code input: a row of
// single-character boxes that behaves like one text field.
//
// The package owns keyboard, paste and click handling, focus movement between
// boxes, the composition-key backspace probe, and delayed emission of change
// and completion events. Box state lives in the boxes package.
package codeinput
