// Package viz is the terminal frontend.
//
// The track is drawn on a Braille [Canvas], two by four dots per cell, with
// text labels written over the dots. The side panel holds the input form,
// the live readouts and a velocity trace.
//
// # Key Bindings
//
//	Enter      - Start a run with the form values
//	Space      - Stop or resume
//	?          - Show the run summary
//	Tab        - Next field (leaving Total applies a new track length)
//	Ctrl+T     - Cycle color themes
//	Q          - Quit
package viz
