package pattern

import "shooter-ebiten/core"

type StreamConfig struct {
	Heading        float64
	Speed          float64
	IntervalFrames int
	// Aim, when set, replaces Heading with the direction to the target at each shot.
	Aim Target
}

// Stream fires a single shot every IntervalFrames ticks for as long as it runs.
type Stream struct {
	firer   core.Firer
	cfg     StreamConfig
	running bool
	frame   int
}

func NewStream(firer core.Firer, cfg StreamConfig) *Stream {
	if cfg.IntervalFrames < 1 {
		cfg.IntervalFrames = 1
	}
	return &Stream{firer: firer, cfg: cfg}
}

func (s *Stream) Start() {
	s.running = true
	s.frame = 0
}

func (s *Stream) Tick() {
	if !s.running {
		return
	}
	if s.frame%s.cfg.IntervalFrames == 0 {
		heading := s.cfg.Heading
		if s.cfg.Aim != nil {
			if target, ok := s.cfg.Aim(); ok {
				heading = headingTo(s.firer.PosInArea(), target)
			}
		}
		shot(s.firer, heading, s.cfg.Speed)
	}
	s.frame++
}

func (s *Stream) IsRunning() bool { return s.running }
