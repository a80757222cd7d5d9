package system

import "shooter-ebiten/core"

// Weapon quantizes frame deltas into fixed ticks of a pattern player.
// Firing continues until the current cycle ends unless stopped immediately.
type Weapon struct {
	player    core.PatternPlayer
	requested bool
	firing    bool
	pooledMs  float64
}

func NewWeapon(player core.PatternPlayer) *Weapon {
	return &Weapon{player: player}
}

func (w *Weapon) StartFiring() {
	w.requested = true
	if w.firing {
		return
	}
	w.pooledMs = 0
	w.firing = true
	w.player.Start()
}

func (w *Weapon) StopFiring(immediately bool) {
	w.requested = false
	if immediately {
		w.firing = false
	}
}

func (w *Weapon) Tick(deltaMs float64) {
	if !w.firing {
		return
	}
	w.pooledMs += deltaMs
	for w.pooledMs >= core.FrameDurationMs {
		w.pooledMs -= core.FrameDurationMs
		if !w.player.IsRunning() {
			if w.requested {
				w.player.Start()
			}
		} else {
			w.player.Tick()
		}
	}
	if !w.requested && !w.player.IsRunning() {
		w.firing = false
	}
}

func (w *Weapon) IsFiring() bool    { return w.firing }
func (w *Weapon) IsRequested() bool { return w.requested }
