package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in visual order.
//
// One cluster is one user-perceived character, which is the unit a single
// code box holds.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal cell width of a cluster.
//
// runewidth reports 0 for some emoji sequences; uniseg is used as a fallback
// so such clusters still reserve space.
func Width(cluster string) int {
	if cluster == "" {
		return 0
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// MaxWidth returns the widest cell width among values, and at least floor.
func MaxWidth(values []string, floor int) int {
	w := floor
	for _, v := range values {
		if vw := Width(v); vw > w {
			w = vw
		}
	}
	return w
}
