package anim_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quadviz/internal/anim"
	"github.com/san-kum/quadviz/internal/pose"
	"github.com/san-kum/quadviz/internal/render"
	"github.com/san-kum/quadviz/internal/vehicle"
)

func newVehicle(label string, poses ...pose.Pose) *vehicle.Vehicle {
	seq, err := pose.NewSequence(poses)
	Expect(err).NotTo(HaveOccurred())
	v, err := vehicle.New(seq, vehicle.DefaultRadius, "#008000", label)
	Expect(err).NotTo(HaveOccurred())
	return v
}

func centerOf(f render.Frame, vehicleIdx int) render.Point {
	body := f.Bodies[vehicleIdx*4 : vehicleIdx*4+4]
	return render.Point{
		X: (body[0].Center.X + body[1].Center.X) / 2,
		Y: (body[0].Center.Y + body[1].Center.Y) / 2,
	}
}

var _ = Describe("Config", func() {
	It("accepts the defaults", func() {
		Expect(anim.DefaultConfig().Validate()).To(Succeed())
	})

	DescribeTable("rejects bad settings",
		func(mutate func(*anim.Config)) {
			cfg := anim.DefaultConfig()
			mutate(&cfg)
			Expect(cfg.Validate()).To(MatchError(anim.ErrInvalidConfig))
			_, err := anim.New(cfg, nil)
			Expect(err).To(MatchError(anim.ErrInvalidConfig))
		},
		Entry("zero interval", func(c *anim.Config) { c.Interval = 0 }),
		Entry("negative warmup", func(c *anim.Config) { c.WarmupFrames = -1 }),
		Entry("negative ceiling", func(c *anim.Config) { c.TraceCeiling = -5 }),
		Entry("zero trim block", func(c *anim.Config) { c.TrimBlock = 0 }),
		Entry("flat viewport", func(c *anim.Config) { c.Viewport.YMax = c.Viewport.YMin }),
	)

	It("rejects nil vehicles", func() {
		vehicles := []*vehicle.Vehicle{newVehicle("q1", pose.Pose{}), nil}
		_, err := anim.New(anim.DefaultConfig(), vehicles)
		Expect(err).To(MatchError(anim.ErrInvalidConfig))
	})
})

var _ = Describe("Driver", func() {
	var (
		cfg anim.Config
		d   *anim.Driver
	)

	BeforeEach(func() {
		cfg = anim.DefaultConfig()
	})

	Describe("phases", func() {
		BeforeEach(func() {
			var err error
			d, err = anim.New(cfg, []*vehicle.Vehicle{newVehicle("q", pose.Pose{})})
			Expect(err).NotTo(HaveOccurred())
		})

		It("starts in INIT and enters WARMUP on Initialize", func() {
			Expect(d.Phase()).To(Equal(anim.PhaseInit))
			f := d.Initialize()
			Expect(d.Phase()).To(Equal(anim.PhaseWarmup))
			Expect(f.Bounds).To(Equal(cfg.Viewport))
			Expect(f.Len()).To(BeZero())
		})

		It("is idempotent on repeated Initialize", func() {
			d.Initialize()
			d.Initialize()
			Expect(d.Phase()).To(Equal(anim.PhaseWarmup))
		})

		It("treats frames up to the warmup threshold as no-ops", func() {
			d.Initialize()
			for i := 0; i <= cfg.WarmupFrames; i++ {
				f := d.OnTick(i)
				Expect(f.Len()).To(BeZero())
				Expect(f.Index).To(Equal(i))
			}
			Expect(d.Phase()).To(Equal(anim.PhaseWarmup))
			Expect(d.Vehicles()[0].Ticks()).To(BeZero())
		})

		It("runs once past the threshold", func() {
			f := d.OnTick(cfg.WarmupFrames + 1)
			Expect(d.Phase()).To(Equal(anim.PhaseRunning))
			Expect(f.Bodies).To(HaveLen(4))
			Expect(f.Arms).To(HaveLen(2))
			Expect(f.Labels).To(HaveLen(1))
			Expect(f.Traces).To(BeEmpty())
		})

		It("reports its interval", func() {
			Expect(d.Interval()).To(Equal(50 * time.Millisecond))
		})
	})

	Describe("three-pose scenario", func() {
		seq := []pose.Pose{{X: 0, Y: 0, Heading: 0}, {X: 1, Y: 0, Heading: 0.1}, {X: 2, Y: 0, Heading: 0.2}}

		It("visits poses cyclically and builds one trace per tick after the first", func() {
			v := newVehicle("q", seq...)
			var err error
			d, err = anim.New(cfg, []*vehicle.Vehicle{v})
			Expect(err).NotTo(HaveOccurred())
			d.Initialize()

			var visited []pose.Pose
			var last render.Frame
			for i := 1; i <= 5; i++ {
				last = d.OnTick(cfg.WarmupFrames + i)
				visited = append(visited, *v.Position())
			}

			Expect(visited).To(Equal([]pose.Pose{seq[0], seq[1], seq[2], seq[0], seq[1]}))
			Expect(last.Traces).To(HaveLen(4))
			Expect(last.Traces[3].From).To(Equal(render.Point{X: 0, Y: 0}))
			Expect(last.Traces[3].To).To(Equal(render.Point{X: 1, Y: 0}))
			Expect(v.Cursor()).To(Equal(5 % 3))
		})
	})

	Describe("primitive freshness", func() {
		It("keeps only the current tick's bodies, arms and labels", func() {
			a := newVehicle("a", pose.Pose{X: 0}, pose.Pose{X: 5})
			b := newVehicle("b", pose.Pose{Y: 3}, pose.Pose{Y: -3})
			var err error
			d, err = anim.New(cfg, []*vehicle.Vehicle{a, b})
			Expect(err).NotTo(HaveOccurred())

			for i := 1; i <= 4; i++ {
				f := d.OnTick(cfg.WarmupFrames + i)
				Expect(f.Bodies).To(HaveLen(8))
				Expect(f.Arms).To(HaveLen(4))
				Expect(f.Labels).To(HaveLen(2))

				pa, pb := a.Position(), b.Position()
				ca, cb := centerOf(f, 0), centerOf(f, 1)
				Expect(ca.X).To(BeNumerically("~", pa.X, 1e-9))
				Expect(ca.Y).To(BeNumerically("~", pa.Y, 1e-9))
				Expect(cb.X).To(BeNumerically("~", pb.X, 1e-9))
				Expect(cb.Y).To(BeNumerically("~", pb.Y, 1e-9))
				Expect(f.Labels[0].Content).To(Equal("a"))
				Expect(f.Labels[1].Content).To(Equal("b"))
				Expect(f.Traces).To(HaveLen(2 * (i - 1)))
			}
		})

		It("hands out frames the driver no longer mutates", func() {
			d, _ = anim.New(cfg, []*vehicle.Vehicle{newVehicle("q", pose.Pose{X: 0}, pose.Pose{X: 1})})
			d.OnTick(cfg.WarmupFrames + 1)
			f := d.OnTick(cfg.WarmupFrames + 2)
			Expect(f.Traces).To(HaveLen(1))

			f.Traces[0].Color = "mutated"
			f.Bodies[0].Radius = 99
			next := d.OnTick(cfg.WarmupFrames + 3)
			Expect(next.Traces[0].Color).To(Equal("#008000"))
			Expect(next.Bodies[0].Radius).To(BeNumerically("~", 0.2, 1e-12))
		})
	})

	Describe("trace trimming", func() {
		tickUntil := func(traces int) render.Frame {
			var f render.Frame
			frame := cfg.WarmupFrames + 1
			for d.TraceLen() < traces {
				f = d.OnTick(frame)
				frame++
			}
			return f
		}

		It("drops a block once the ceiling is exceeded", func() {
			d, _ = anim.New(cfg, []*vehicle.Vehicle{newVehicle("q", pose.DefaultSweep().Poses()...)})

			f := tickUntil(cfg.TraceCeiling)
			Expect(f.Traces).To(HaveLen(100))
			Expect(d.Trims()).To(BeZero())

			f = d.OnTick(1000)
			Expect(f.Traces).To(HaveLen(91))
			Expect(d.Trims()).To(Equal(1))
		})

		It("trims in coarse blocks that can leave the count above the ceiling", func() {
			cfg.TraceCeiling = 10
			cfg.TrimBlock = 1
			vs := []*vehicle.Vehicle{
				newVehicle("a", pose.Pose{X: 0}, pose.Pose{X: 1}),
				newVehicle("b", pose.Pose{Y: 0}, pose.Pose{Y: 1}),
				newVehicle("c", pose.Pose{X: 2}, pose.Pose{Y: 2}),
			}
			d, _ = anim.New(cfg, vs)

			frame := cfg.WarmupFrames + 1
			for i := 0; i < 5; i++ {
				d.OnTick(frame)
				frame++
			}
			// 12 segments accumulated, the trim on the fifth tick removed one.
			Expect(d.TraceLen()).To(Equal(11))
			Expect(d.TraceLen()).To(BeNumerically(">", cfg.TraceCeiling))
		})

		It("never goes negative when the block exceeds the count", func() {
			cfg.TraceCeiling = 0
			cfg.TrimBlock = 50
			d, _ = anim.New(cfg, []*vehicle.Vehicle{newVehicle("q", pose.Pose{X: 0}, pose.Pose{X: 1})})
			d.OnTick(cfg.WarmupFrames + 1)
			f := d.OnTick(cfg.WarmupFrames + 2)
			Expect(f.Traces).To(BeEmpty())
			Expect(d.Trims()).To(Equal(1))
		})

		It("drops the oldest segments first", func() {
			cfg.TraceCeiling = 3
			cfg.TrimBlock = 2
			poses := []pose.Pose{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}}
			d, _ = anim.New(cfg, []*vehicle.Vehicle{newVehicle("q", poses...)})
			var f render.Frame
			for i := 1; i <= 5; i++ {
				f = d.OnTick(cfg.WarmupFrames + i)
			}
			// segments 0-1,1-2,2-3,3-4 -> 4 > 3 -> keep the last two
			Expect(f.Traces).To(HaveLen(2))
			Expect(f.Traces[0].From.X).To(Equal(2.0))
			Expect(f.Traces[1].To.X).To(Equal(4.0))
		})
	})
})
