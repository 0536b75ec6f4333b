package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/draw"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
	"github.com/san-kum/mrua/internal/render"
)

const panelHeight = 130

var (
	ColBg      = rl.NewColor(245, 245, 245, 255)
	ColText    = rl.NewColor(51, 51, 51, 255)
	ColTextDim = rl.NewColor(140, 140, 140, 255)
	ColSelect  = rl.NewColor(0, 119, 190, 255)
	ColError   = rl.NewColor(255, 0, 0, 255)
	ColBanner  = rl.NewColor(76, 175, 80, 255)
)

var fieldLabels = [4]string{"Velocity (m/s)", "Acceleration (m/s^2)", "Target (m)", "Total (m)"}

const totalField = 3

// Options configures the window. A nil Config means the defaults.
type Options struct {
	Config    *config.Config
	Observers []loop.Observer
	Dialogs   Dialogs
}

type App struct {
	cfg     *config.Config
	queue   *loop.FrameQueue
	driver  *loop.Driver
	surface *Surface
	board   *notify.Board
	dialogs Dialogs
	font    rl.Font

	fields    [4]string
	focus     int
	lastTotal string
	err       string
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Display.Width), int32(cfg.Display.Height)+panelHeight, "mrua")
	rl.SetTargetFPS(int32(cfg.Display.FPS))
}

func NewApp(opts Options) *App {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	dialogs := opts.Dialogs
	if dialogs == nil {
		dialogs = zenityDialogs{}
	}

	font := rl.GetFontDefault()
	surface := NewSurface(font, cfg.Display.Width, cfg.Display.Height)
	layout := render.DefaultLayout
	layout.Width, layout.Height = cfg.Display.Width, cfg.Display.Height

	queue := loop.NewFrameQueue()
	driver := loop.NewDriver(loop.Options{
		Scheduler:     queue,
		Renderer:      render.New(layout),
		Surface:       surface,
		TimeStep:      cfg.Simulation.TimeStep,
		ViewportWidth: cfg.Display.Width,
	}, cfg.Motion())

	board := notify.NewBoardWithTiming(nil, cfg.Notify.Visible, cfg.Notify.Fade)
	driver.AddObserver(board)
	for _, o := range opts.Observers {
		driver.AddObserver(o)
	}

	in := motion.InputOf(cfg.Motion())
	return &App{
		cfg:       cfg,
		queue:     queue,
		driver:    driver,
		surface:   surface,
		board:     board,
		dialogs:   dialogs,
		font:      font,
		fields:    [4]string{in.Velocity, in.Acceleration, in.Target, in.Total},
		lastTotal: in.Total,
	}
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
		opts.Config = cfg
	}
	initWindow(cfg)
	defer rl.CloseWindow()
	NewApp(opts).RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if a.Update() {
			return
		}
		a.Draw()
	}
}

func (a *App) input() motion.Input {
	return motion.Input{Velocity: a.fields[0], Acceleration: a.fields[1], Target: a.fields[2], Total: a.fields[3]}
}

// Update handles the keyboard. It reports whether the user asked to quit.
func (a *App) Update() bool {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		if strings.ContainsRune("0123456789.-+eE", rune(r)) && len(a.fields[a.focus]) < 16 {
			a.fields[a.focus] += string(rune(r))
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyQ) && rl.IsKeyDown(rl.KeyLeftControl):
		return true
	case rl.IsKeyPressed(rl.KeyBackspace):
		if f := a.fields[a.focus]; len(f) > 0 {
			a.fields[a.focus] = f[:len(f)-1]
		}
	case rl.IsKeyPressed(rl.KeyTab), rl.IsKeyPressed(rl.KeyDown):
		a.moveFocus(1)
	case rl.IsKeyPressed(rl.KeyUp):
		a.moveFocus(-1)
	case rl.IsKeyPressed(rl.KeyEnter):
		a.start()
	case rl.IsKeyPressed(rl.KeySpace):
		a.driver.Toggle()
	case rl.IsKeyPressed(rl.KeyF1), rl.IsKeyPressed(rl.KeyS) && rl.IsKeyDown(rl.KeyLeftControl):
		a.dialogs.Summary(notify.SummaryText(a.driver.Summary()))
	}
	return false
}

func (a *App) moveFocus(delta int) {
	if a.focus == totalField {
		a.configure()
	}
	a.focus = (a.focus + delta + len(a.fields)) % len(a.fields)
}

func (a *App) start() {
	if err := a.driver.StartInput(a.input()); err != nil {
		a.fail(err)
		return
	}
	a.err = ""
	a.lastTotal = a.fields[totalField]
}

func (a *App) configure() {
	total := a.fields[totalField]
	if total == a.lastTotal {
		return
	}
	if err := a.driver.ConfigureInput(total); err != nil {
		a.fields[totalField] = a.lastTotal
		a.fail(err)
		return
	}
	a.err = ""
	a.lastTotal = total
}

func (a *App) fail(err error) {
	a.err = err.Error()
	a.dialogs.Alert(a.err)
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	// idle frames still have to repaint the back buffer
	if a.queue.Flush() == 0 {
		a.driver.Redraw()
	}
	a.drawBanners()
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawBanners() {
	x := int(a.cfg.Display.Width) - 520
	for i, bn := range a.board.Active() {
		y := 20 + i*44
		alpha := float32(bn.Opacity)
		rl.DrawRectangle(int32(x), int32(y), 500, 36, rl.Fade(ColBanner, alpha))
		a.drawText(bn.Text, x+12, y+10, 16, rl.Fade(rl.White, alpha))
	}
}

func (a *App) drawPanel() {
	top := int(a.cfg.Display.Height)
	rl.DrawLine(0, int32(top), int32(a.cfg.Display.Width), int32(top), color(draw.LineGray))

	for i, label := range fieldLabels {
		x := 30 + i*280
		col, val := ColText, a.fields[i]
		if i == a.focus {
			col, val = ColSelect, val+"_"
		}
		if i == 2 && a.fields[i] == "" && i != a.focus {
			val = "none"
		}
		a.drawText(label, x, top+18, 14, ColTextDim)
		a.drawText(val, x, top+40, 22, col)
	}

	status := strings.ToUpper(a.driver.Phase().String())
	a.drawText(status, int(a.cfg.Display.Width)-130, top+18, 16, ColSelect)

	if cfg, err := motion.ParseConfig(a.input()); err == nil {
		if est, ok := motion.EstimateRun(cfg); ok {
			a.drawText(fmt.Sprintf("Estimated time: %.2f s", est), 30, top+76, 14, ColTextDim)
		}
	}
	if a.err != "" {
		a.drawText(a.err, 330, top+76, 14, ColError)
	}
	a.drawText("[ENTER] START  [SPACE] STOP/RESUME  [TAB] NEXT FIELD  [F1] SUMMARY  [ESC] QUIT", 30, top+104, 14, ColTextDim)
}
