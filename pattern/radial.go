package pattern

import (
	"math"

	"shooter-ebiten/core"
)

type RadialConfig struct {
	Ways           int
	Speed          float64
	IntervalFrames int
	Volleys        int     // volleys per cycle
	Spin           float64 // radians added to the ring after each volley
}

// Radial fires rings of Ways bullets. A cycle is Volleys rings IntervalFrames apart,
// after which the player stops until restarted.
type Radial struct {
	firer   core.Firer
	cfg     RadialConfig
	running bool
	frame   int
	volleys int
	offset  float64
}

func NewRadial(firer core.Firer, cfg RadialConfig) *Radial {
	if cfg.Ways < 1 {
		cfg.Ways = 1
	}
	if cfg.IntervalFrames < 1 {
		cfg.IntervalFrames = 1
	}
	if cfg.Volleys < 1 {
		cfg.Volleys = 1
	}
	return &Radial{firer: firer, cfg: cfg}
}

func (r *Radial) Start() {
	r.running = true
	r.frame = 0
	r.volleys = 0
}

func (r *Radial) Tick() {
	if !r.running {
		return
	}
	if r.frame%r.cfg.IntervalFrames == 0 {
		step := 2 * math.Pi / float64(r.cfg.Ways)
		for i := range r.cfg.Ways {
			shot(r.firer, HeadingDown+r.offset+step*float64(i), r.cfg.Speed)
		}
		r.offset += r.cfg.Spin
		r.volleys++
		if r.volleys >= r.cfg.Volleys {
			r.running = false
		}
	}
	r.frame++
}

func (r *Radial) IsRunning() bool { return r.running }
