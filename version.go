// Package codebox provides a segmented one-time-code input for Bubble Tea
// programs.
//
// The widget lives in package codeinput; package boxes holds the
// render-independent box model it drives.
package codebox

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

var releaseRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?$`)

// Version returns the release version, without a leading v.
func Version() string { return strings.TrimSpace(rawVersion) }

// Tag returns the git tag of the release.
func Tag() string { return "v" + Version() }

// ValidRelease reports whether v is a SemVer 2.0.0 release string.
func ValidRelease(v string) bool {
	return releaseRE.MatchString(strings.TrimSpace(v))
}
