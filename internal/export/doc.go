// Package export writes finished runs to files: still frames as PNG or SVG,
// a distance and velocity chart, and the raw trace as JSON.
package export
