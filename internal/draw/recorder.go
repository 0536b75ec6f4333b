package draw

// Op names a recorded drawing call. The names match the HTML canvas API so a
// browser can replay a recording directly.
type Op string

const (
	OpClear       Op = "clear"
	OpSave        Op = "save"
	OpRestore     Op = "restore"
	OpTranslate   Op = "translate"
	OpBeginPath   Op = "beginPath"
	OpMoveTo      Op = "moveTo"
	OpLineTo      Op = "lineTo"
	OpArc         Op = "arc"
	OpClosePath   Op = "closePath"
	OpStroke      Op = "stroke"
	OpFill        Op = "fill"
	OpStrokeStyle Op = "strokeStyle"
	OpFillStyle   Op = "fillStyle"
	OpLineWidth   Op = "lineWidth"
	OpFont        Op = "font"
	OpFillText    Op = "fillText"
	OpFillRect    Op = "fillRect"
	OpStrokeRect  Op = "strokeRect"
)

// Command is one recorded call.
type Command struct {
	Op    Op        `json:"op"`
	Args  []float64 `json:"a,omitempty"`
	Text  string    `json:"t,omitempty"`
	Color Color     `json:"c,omitempty"`
	Font  *Font     `json:"f,omitempty"`
}

// Recorder is a Surface that keeps the calls made on it.
type Recorder struct {
	width, height float64
	cmds          []Command
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// Commands returns the calls recorded since the last Reset.
func (r *Recorder) Commands() []Command { return r.cmds }

// Reset forgets the recorded calls and keeps the allocation.
func (r *Recorder) Reset() { r.cmds = r.cmds[:0] }

// Take returns the recording and starts a fresh one.
func (r *Recorder) Take() []Command {
	cmds := r.cmds
	r.cmds = nil
	return cmds
}

// arity is the argument count of each op that takes arguments.
var arity = map[Op]int{
	OpTranslate:  2,
	OpMoveTo:     2,
	OpLineTo:     2,
	OpArc:        5,
	OpLineWidth:  1,
	OpFillText:   2,
	OpFillRect:   4,
	OpStrokeRect: 4,
}

// Replay issues cmds on s in order. Commands with too few arguments are
// skipped.
func Replay(cmds []Command, s Surface) {
	for _, c := range cmds {
		a := c.Args
		if len(a) < arity[c.Op] {
			continue
		}
		switch c.Op {
		case OpClear:
			s.Clear()
		case OpSave:
			s.Save()
		case OpRestore:
			s.Restore()
		case OpTranslate:
			s.Translate(a[0], a[1])
		case OpBeginPath:
			s.BeginPath()
		case OpMoveTo:
			s.MoveTo(a[0], a[1])
		case OpLineTo:
			s.LineTo(a[0], a[1])
		case OpArc:
			s.Arc(a[0], a[1], a[2], a[3], a[4])
		case OpClosePath:
			s.ClosePath()
		case OpStroke:
			s.Stroke()
		case OpFill:
			s.Fill()
		case OpStrokeStyle:
			s.SetStrokeColor(c.Color)
		case OpFillStyle:
			s.SetFillColor(c.Color)
		case OpLineWidth:
			s.SetLineWidth(a[0])
		case OpFont:
			if c.Font != nil {
				s.SetFont(*c.Font)
			}
		case OpFillText:
			s.FillText(c.Text, a[0], a[1])
		case OpFillRect:
			s.FillRect(a[0], a[1], a[2], a[3])
		case OpStrokeRect:
			s.StrokeRect(a[0], a[1], a[2], a[3])
		}
	}
}

func (r *Recorder) add(op Op, args ...float64) {
	r.cmds = append(r.cmds, Command{Op: op, Args: args})
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

func (r *Recorder) Clear()                   { r.add(OpClear) }
func (r *Recorder) Save()                    { r.add(OpSave) }
func (r *Recorder) Restore()                 { r.add(OpRestore) }
func (r *Recorder) Translate(dx, dy float64) { r.add(OpTranslate, dx, dy) }
func (r *Recorder) BeginPath()               { r.add(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64)      { r.add(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64)      { r.add(OpLineTo, x, y) }
func (r *Recorder) ClosePath()               { r.add(OpClosePath) }
func (r *Recorder) Stroke()                  { r.add(OpStroke) }
func (r *Recorder) Fill()                    { r.add(OpFill) }
func (r *Recorder) SetLineWidth(w float64)   { r.add(OpLineWidth, w) }

func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.add(OpArc, x, y, radius, start, end)
}

func (r *Recorder) SetStrokeColor(c Color) {
	r.cmds = append(r.cmds, Command{Op: OpStrokeStyle, Color: c})
}

func (r *Recorder) SetFillColor(c Color) {
	r.cmds = append(r.cmds, Command{Op: OpFillStyle, Color: c})
}

func (r *Recorder) SetFont(f Font) {
	r.cmds = append(r.cmds, Command{Op: OpFont, Font: &f})
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.cmds = append(r.cmds, Command{Op: OpFillText, Args: []float64{x, y}, Text: text})
}

func (r *Recorder) FillRect(x, y, w, h float64)   { r.add(OpFillRect, x, y, w, h) }
func (r *Recorder) StrokeRect(x, y, w, h float64) { r.add(OpStrokeRect, x, y, w, h) }
