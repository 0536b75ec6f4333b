package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/notify"
	"github.com/san-kum/mrua/internal/render"
)

const (
	fieldVelocity = iota
	fieldAcceleration
	fieldTarget
	fieldTotal
	fieldCount
)

var fieldLabels = [fieldCount]string{"Velocity", "Acceleration", "Target", "Total"}

const (
	minCanvasW   = 20
	minCanvasH   = 6
	panelWidth   = 48
	chromeHeight = 6
	graphSamples = 120
)

type TickMsg time.Time

// Options configures the TUI. A nil Config means the defaults.
type Options struct {
	Config    *config.Config
	Clock     motion.Clock
	Observers []loop.Observer
}

type bannerFade struct {
	spring   harmonica.Spring
	pos, vel float64
}

// Model is the Bubble Tea model hosting one driver.
type Model struct {
	cfg      *config.Config
	queue    *loop.FrameQueue
	driver   *loop.Driver
	canvas   *Canvas
	surface  *Surface
	board    *notify.Board
	trace    *loop.Trace
	fades    map[int]*bannerFade
	interval time.Duration

	inputs    []textinput.Model
	focus     int
	lastTotal string
	keys      keyMap
	help      help.Model
	theme     Theme
	st        styles
	err       string
	summary   *motion.Summary

	width, height int
}

func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	clock := opts.Clock
	if clock == nil {
		clock = motion.SystemClock
	}

	canvas := NewCanvas(80, 20)
	surface := NewSurface(canvas, cfg.Display.Width, cfg.Display.Height)
	layout := render.DefaultLayout
	layout.Width, layout.Height = cfg.Display.Width, cfg.Display.Height

	queue := loop.NewFrameQueue()
	driver := loop.NewDriver(loop.Options{
		Scheduler:     queue,
		Clock:         clock,
		Renderer:      render.New(layout),
		Surface:       surface,
		TimeStep:      cfg.Simulation.TimeStep,
		ViewportWidth: cfg.Display.Width,
	}, cfg.Motion())

	board := notify.NewBoardWithTiming(clock, cfg.Notify.Visible, cfg.Notify.Fade)
	trace := &loop.Trace{Every: 4}
	driver.AddObserver(board)
	driver.AddObserver(trace)
	for _, o := range opts.Observers {
		driver.AddObserver(o)
	}

	theme := GetTheme(cfg.Display.Theme)
	m := Model{
		cfg:      cfg,
		queue:    queue,
		driver:   driver,
		canvas:   canvas,
		surface:  surface,
		board:    board,
		trace:    trace,
		fades:    make(map[int]*bannerFade),
		interval: cfg.FrameInterval(),
		keys:     defaultKeys(),
		help:     help.New(),
		theme:    theme,
		st:       newStyles(theme),
		width:    120,
		height:   32,
	}

	values := motion.InputOf(cfg.Motion())
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldVelocity].SetValue(values.Velocity)
	m.inputs[fieldAcceleration].SetValue(values.Acceleration)
	m.inputs[fieldTarget].SetValue(values.Target)
	m.inputs[fieldTarget].Placeholder = "none"
	m.inputs[fieldTotal].SetValue(values.Total)
	m.lastTotal = values.Total
	m.inputs[fieldVelocity].Focus()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), textinput.Blink)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case TickMsg:
		m.queue.Flush()
		m.animateBanners()
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.summary != nil {
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Summary):
			m.summary = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.start()
	case key.Matches(msg, m.keys.Toggle):
		m.driver.Toggle()
	case key.Matches(msg, m.keys.Summary):
		s := m.driver.Summary()
		m.summary = &s
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme)
		m.st = newStyles(m.theme)
	default:
		if !editKey(msg) {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// editKey admits the keys that can build a number.
func editKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if !strings.ContainsRune("0123456789.-+eE", r) {
				return false
			}
		}
		return true
	}
	return false
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	if m.focus == fieldTotal {
		m.configure()
	}
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

func (m *Model) input() motion.Input {
	return motion.Input{
		Velocity:     m.inputs[fieldVelocity].Value(),
		Acceleration: m.inputs[fieldAcceleration].Value(),
		Target:       m.inputs[fieldTarget].Value(),
		Total:        m.inputs[fieldTotal].Value(),
	}
}

func (m *Model) start() {
	if err := m.driver.StartInput(m.input()); err != nil {
		m.err = err.Error()
		return
	}
	m.err = ""
	m.lastTotal = m.inputs[fieldTotal].Value()
	m.trace.Reset()
}

// configure applies an edited total distance. A rejected value is put back.
func (m *Model) configure() {
	total := m.inputs[fieldTotal].Value()
	if total == m.lastTotal {
		return
	}
	if err := m.driver.ConfigureInput(total); err != nil {
		m.err = err.Error()
		m.inputs[fieldTotal].SetValue(m.lastTotal)
		return
	}
	m.err = ""
	m.lastTotal = total
	m.trace.Reset()
}

func (m *Model) resize() {
	w := max(m.width-panelWidth-4, minCanvasW)
	h := max(m.height-chromeHeight, minCanvasH)
	m.help.Width = m.width
	if w == m.canvas.Width && h == m.canvas.Height {
		return
	}
	m.canvas = NewCanvas(w, h)
	m.surface = NewSurface(m.canvas, m.cfg.Display.Width, m.cfg.Display.Height)
	m.driver.SetSurface(m.surface)
}

func (m *Model) animateBanners() {
	active := m.board.Active()
	seen := make(map[int]bool, len(active))
	for _, bn := range active {
		seen[bn.ID] = true
		f, ok := m.fades[bn.ID]
		if !ok {
			f = &bannerFade{spring: harmonica.NewSpring(harmonica.FPS(m.cfg.Display.FPS), 8.0, 1.0)}
			m.fades[bn.ID] = f
		}
		f.pos, f.vel = f.spring.Update(f.pos, f.vel, bn.Opacity)
	}
	for id := range m.fades {
		if !seen[id] {
			delete(m.fades, id)
		}
	}
}

func (m Model) View() string {
	var header strings.Builder
	header.WriteString(GradientText("MRUA", m.theme.Title, m.theme.Accent))
	header.WriteString("  " + m.st.status.Render(strings.ToUpper(m.driver.Phase().String())))

	canvas := m.st.canvas.Render(strings.TrimRight(m.canvas.String(), "\n"))
	main := lipgloss.JoinHorizontal(lipgloss.Top, canvas, m.st.panel.Render(m.viewPanel()))

	var b strings.Builder
	b.WriteString(header.String() + "\n")
	b.WriteString(m.viewBanners())
	b.WriteString(main + "\n")
	b.WriteString(m.help.View(m.keys))

	if m.summary != nil {
		return m.viewSummary() + "\n\n" + b.String()
	}
	return b.String()
}

func (m Model) viewPanel() string {
	var s strings.Builder
	s.WriteString(m.st.heading.Render("PARAMETERS") + "\n\n")
	for i, in := range m.inputs {
		label := m.st.label.Render(fieldLabels[i])
		if i == m.focus {
			label = m.st.focused.Render("▸ " + fieldLabels[i])
		}
		s.WriteString(label + m.st.value.Render(in.View()) + "\n")
	}

	s.WriteString("\n")
	if cfg, err := motion.ParseConfig(m.input()); err == nil {
		if est, ok := motion.EstimateRun(cfg); ok {
			s.WriteString(m.st.muted.Render(fmt.Sprintf("Estimated time: %.2f s", est)) + "\n")
		}
	}
	if m.err != "" {
		s.WriteString(m.st.err.Render(m.err) + "\n")
	}

	st := m.driver.State()
	s.WriteString("\n" + m.st.label.Render("Time") + m.st.value.Render(fmt.Sprintf("%.2f s", st.Elapsed)) + "\n")
	s.WriteString(m.st.label.Render("Progress") + m.st.value.Render(fmt.Sprintf("%.1f%%", render.Progress(st, m.driver.Config())*100)) + "\n")

	if v := m.trace.Velocities(); len(v) > 1 {
		if len(v) > graphSamples {
			v = v[len(v)-graphSamples:]
		}
		chart := asciigraph.Plot(v, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Velocity (m/s)"))
		s.WriteString(m.st.graph.Render(chart) + "\n")
	}
	return s.String()
}

func (m Model) viewBanners() string {
	var b strings.Builder
	for _, bn := range m.board.Active() {
		op := bn.Opacity
		if f, ok := m.fades[bn.ID]; ok {
			op = f.pos
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(Blend(m.theme.Background, m.theme.Success, op))
		b.WriteString(style.Render("● "+bn.Text) + "\n")
	}
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder
	b.WriteString(m.st.heading.Render("RUN SUMMARY") + "\n")
	b.WriteString(m.st.muted.Render(Separator(36)) + "\n")
	for _, sec := range notify.SummarySections(*m.summary) {
		b.WriteString("\n" + m.st.status.Render(sec.Title) + "\n")
		for _, l := range sec.Lines {
			b.WriteString("  " + l + "\n")
		}
	}
	b.WriteString("\n" + m.st.muted.Render("esc to close"))
	return m.st.modal.Render(b.String())
}

// Run starts the TUI and blocks until it quits.
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
