// Package web serves the simulation to a browser. Each websocket connection
// gets its own driver; frames travel as recorded canvas calls that the page
// replays onto a <canvas>.
package web
