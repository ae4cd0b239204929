package viz

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"

	"github.com/san-kum/quadviz/internal/anim"
	"github.com/san-kum/quadviz/internal/render"
)

const (
	width           = 64
	height          = 24
	minWidth        = 20
	minHeight       = 8
	panelWidth      = 46
	historyCapacity = 300
	minGridGap      = 6
)

type TickMsg time.Time

// Options configures the terminal backend.
type Options struct {
	Width, Height int
	GridStep      float64
	Theme         string
	Logger        *zerolog.Logger
}

// Model is the bubbletea backend: it owns the timer and the canvas and feeds
// every frame index to the animation driver.
type Model struct {
	driver       *anim.Driver
	frame        render.Frame
	next         int
	canvas       *Canvas
	gridStep     float64
	theme        Theme
	running      bool
	showHelp     bool
	traceHistory []float64
	log          zerolog.Logger
}

func NewModel(d *anim.Driver, opts Options) Model {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = width
	}
	if h <= 0 {
		h = height
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	m := Model{
		driver:       d,
		frame:        render.Frame{Bounds: d.Config().Viewport},
		canvas:       NewCanvas(max(w, minWidth), max(h, minHeight)),
		gridStep:     opts.GridStep,
		theme:        GetTheme(opts.Theme),
		running:      true,
		traceHistory: make([]float64, 0, historyCapacity),
		log:          log,
	}
	m.draw()
	return m
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Init initializes the driver and starts the timer.
func (m Model) Init() tea.Cmd {
	m.driver.Initialize()
	return tick(m.driver.Interval())
}

// Update handles input events and steps the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.log.Info().Int("frame", m.next).Msg("window closed")
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.theme = NextTheme(m.theme)
			m.draw()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick(m.driver.Interval())
	}
	return m, nil
}

// step runs one driver tick and redraws.
func (m *Model) step() {
	m.frame = m.driver.OnTick(m.next)
	m.next++
	m.traceHistory = append(m.traceHistory, float64(len(m.frame.Traces)))
	if len(m.traceHistory) > historyCapacity {
		m.traceHistory = m.traceHistory[1:]
	}
	m.draw()
}

func (m *Model) resize(w, h int) {
	cw := (w - panelWidth - 8)
	ch := h - 4
	m.canvas = NewCanvas(max(cw, minWidth), max(ch, minHeight))
	m.draw()
}

func (m *Model) draw() {
	DrawFrame(m.canvas, m.frame, m.gridStep, m.theme)
}

// DrawFrame rasterizes f onto c: grid, traces, arms, motors, labels.
func DrawFrame(c *Canvas, f render.Frame, gridStep float64, theme Theme) {
	c.Clear()
	if !f.Bounds.Valid() {
		return
	}
	p := newProjector(f.Bounds, c)

	if step := p.gridStep(gridStep, minGridGap); step > 0 {
		c.SetPen(theme.Grid)
		b := f.Bounds
		for gx := math.Ceil(b.XMin/step) * step; gx <= b.XMax; gx += step {
			for gy := math.Ceil(b.YMin/step) * step; gy <= b.YMax; gy += step {
				c.Set(p.point(render.Point{X: gx, Y: gy}))
			}
		}
	}

	for _, s := range f.Traces {
		c.SetPen(theme.Ink(s.Color))
		line(c, p, s)
	}
	for _, s := range f.Arms {
		c.SetPen(theme.Ink(s.Color))
		line(c, p, s)
	}
	for _, body := range f.Bodies {
		c.SetPen(theme.Ink(body.Edge))
		x, y := p.point(body.Center)
		c.DrawCircle(x, y, max(p.length(body.Radius), 1))
	}
	c.SetPen(theme.Text)
	for _, l := range f.Labels {
		x, y := p.point(l.At)
		c.Text(x/2-utf8.RuneCountInString(l.Content)/2, y/4, l.Content)
	}
	c.SetPen("")
}

func line(c *Canvas, p projector, s render.Segment) {
	x0, y0 := p.point(s.From)
	x1, y1 := p.point(s.To)
	c.DrawLine(x0, y0, x1, y1)
}

// View renders the canvas beside the status panel.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle(m.theme).Render("QUADVIZ "+AnimatedSpinner(m.next)) + "\n\n")

	status := m.driver.Phase().String()
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(statusStyle(m.theme, m.running).Render(status) + "\n\n")

	cfg := m.driver.Config()
	s.WriteString(labelStyle.Render("Frame") + valueStyle.Render(fmt.Sprintf("%d", m.frame.Index)) + "\n")
	s.WriteString(labelStyle.Render("Interval") + valueStyle.Render(cfg.Interval.String()) + "\n")
	s.WriteString(labelStyle.Render("Traces") + valueStyle.Render(fmt.Sprintf("%d / %d", len(m.frame.Traces), cfg.TraceCeiling)) + "\n")
	if cfg.TraceCeiling > 0 {
		s.WriteString(labelStyle.Render("") + ProgressBar(float64(len(m.frame.Traces))/float64(cfg.TraceCeiling), 20, m.theme) + "\n")
	}
	s.WriteString(labelStyle.Render("Trims") + valueStyle.Render(fmt.Sprintf("%d", m.driver.Trims())) + "\n")

	s.WriteString("\nVEHICLES\n")
	for _, v := range m.driver.Vehicles() {
		name := lipgloss.NewStyle().Foreground(m.theme.Ink(v.TraceColor())).Render("● " + v.Label())
		where := "waiting"
		if p := v.Position(); p != nil {
			where = p.String()
		}
		s.WriteString(name + " " + valueStyle.Render(where) + "\n")
	}

	if len(m.traceHistory) > 1 {
		chart := asciigraph.Plot(m.traceHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Trace length"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause T:Theme\n?:Help   Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume animation   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q / Esc  - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Frame returns the most recent frame handed over by the driver.
func (m Model) Frame() render.Frame { return m.frame }

func (m Model) Running() bool { return m.running }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Canvas() *Canvas { return m.canvas }

// Run opens the terminal window and blocks until it is closed.
func Run(d *anim.Driver, opts Options) error {
	p := tea.NewProgram(NewModel(d, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
