package anim

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/san-kum/quadviz/internal/render"
	"github.com/san-kum/quadviz/internal/vehicle"
)

type Phase int

const (
	PhaseInit Phase = iota
	PhaseWarmup
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "INIT"
	case PhaseWarmup:
		return "WARMUP"
	case PhaseRunning:
		return "RUNNING"
	}
	return "UNKNOWN"
}

// scene is the driver-owned drawing surface. Only traces persist between
// running ticks.
type scene struct {
	bounds render.Rect
	bodies []render.Circle
	arms   []render.Segment
	labels []render.Text
	traces []render.Segment
}

func (s *scene) clearTransient() {
	s.bodies = s.bodies[:0]
	s.arms = s.arms[:0]
	s.labels = s.labels[:0]
}

func (s *scene) snapshot(index int) render.Frame {
	return render.Frame{
		Index:  index,
		Bounds: s.bounds,
		Bodies: append([]render.Circle(nil), s.bodies...),
		Arms:   append([]render.Segment(nil), s.arms...),
		Labels: append([]render.Text(nil), s.labels...),
		Traces: append([]render.Segment(nil), s.traces...),
	}
}

type Option func(*Driver)

func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// Driver advances every vehicle once per running tick and maintains the
// scene. It is not safe for concurrent use; the backend timer is its only
// caller.
type Driver struct {
	cfg      Config
	vehicles []*vehicle.Vehicle
	scene    scene
	phase    Phase
	trims    int
	log      zerolog.Logger
}

func New(cfg Config, vehicles []*vehicle.Vehicle, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i, v := range vehicles {
		if v == nil {
			return nil, fmt.Errorf("%w: vehicle %d is nil", ErrInvalidConfig, i)
		}
	}
	d := &Driver{
		cfg:      cfg,
		vehicles: append([]*vehicle.Vehicle(nil), vehicles...),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Initialize applies the viewport and enters warmup. Repeated calls only
// return the current scene.
func (d *Driver) Initialize() render.Frame {
	if d.phase == PhaseInit {
		d.scene.bounds = d.cfg.Viewport
		d.phase = PhaseWarmup
		d.log.Info().
			Int("vehicles", len(d.vehicles)).
			Int("warmup_frames", d.cfg.WarmupFrames).
			Dur("interval", d.cfg.Interval).
			Msg("animation initialized")
	}
	return d.scene.snapshot(0)
}

// OnTick runs one animation step for frame and returns the resulting scene.
func (d *Driver) OnTick(frame int) render.Frame {
	if d.phase == PhaseInit {
		d.Initialize()
	}
	if frame <= d.cfg.WarmupFrames {
		return d.scene.snapshot(frame)
	}
	if d.phase != PhaseRunning {
		d.phase = PhaseRunning
		d.log.Info().Int("frame", frame).Msg("warmup complete, vehicles moving")
	}

	d.scene.clearTransient()
	for _, v := range d.vehicles {
		d.draw(v)
		d.scene.bounds = d.cfg.Viewport
	}
	d.trimTraces(frame)

	return d.scene.snapshot(frame)
}

func (d *Driver) draw(v *vehicle.Vehicle) {
	v.Advance()
	cur := *v.Position()
	layout := render.MotorLayout(cur, v.Radius())

	d.scene.bodies = append(d.scene.bodies, render.Body(layout, v.Radius())...)
	d.scene.arms = append(d.scene.arms, render.Arms(layout)...)
	d.scene.labels = append(d.scene.labels, render.Label(cur, v.Radius(), v.Label()))
	d.scene.traces = append(d.scene.traces, render.TraceSegment(v.Previous(), cur, v.TraceColor())...)
}

// trimTraces drops the oldest block once the ceiling is exceeded.
func (d *Driver) trimTraces(frame int) {
	n := len(d.scene.traces)
	if n <= d.cfg.TraceCeiling {
		return
	}
	drop := min(d.cfg.TrimBlock, n)
	d.scene.traces = append(d.scene.traces[:0], d.scene.traces[drop:]...)
	d.trims++
	d.log.Debug().
		Int("frame", frame).
		Int("before", n).
		Int("after", len(d.scene.traces)).
		Msg("trace trimmed")
}

func (d *Driver) Interval() time.Duration      { return d.cfg.Interval }
func (d *Driver) Config() Config               { return d.cfg }
func (d *Driver) Phase() Phase                 { return d.phase }
func (d *Driver) TraceLen() int                { return len(d.scene.traces) }
func (d *Driver) Trims() int                   { return d.trims }
func (d *Driver) Vehicles() []*vehicle.Vehicle { return append([]*vehicle.Vehicle(nil), d.vehicles...) }
