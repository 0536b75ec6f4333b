package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/mrua/internal/motion"
)

// Run is the JSON document written for a finished run.
type Run struct {
	Config   motion.Config   `json:"config"`
	TimeStep float64         `json:"time_step"`
	Frames   int             `json:"frames"`
	Summary  motion.Summary  `json:"summary"`
	Samples  []motion.Sample `json:"samples"`
	Events   []motion.Event  `json:"events"`
}

func WriteJSON(w io.Writer, run Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}

// ExportJSON writes run to path, or to stdout when path is "-".
func ExportJSON(path string, run Run) error {
	if path == "-" {
		return WriteJSON(os.Stdout, run)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, run)
}
