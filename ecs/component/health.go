package component

import (
	"fmt"

	"shooter-ebiten/event"
)

// HealthComponent tracks health, damage, heal and death independent of positioning.
// Health stays within [0, maxHealth]; death fires once.
type HealthComponent struct {
	health    float64
	maxHealth float64
	dead      bool

	Damaged *event.Dispatcher[float64]
	Healed  *event.Dispatcher[float64]
	Died    *event.Dispatcher[event.Signal]
}

// NewHealthComponent panics unless 0 < initialHealth <= maxHealth.
func NewHealthComponent(initialHealth, maxHealth float64) *HealthComponent {
	if maxHealth <= 0 {
		panic(fmt.Sprintf("health: maxHealth must be positive, got %v", maxHealth))
	}
	if initialHealth <= 0 {
		panic(fmt.Sprintf("health: initialHealth must be positive, got %v", initialHealth))
	}
	if initialHealth > maxHealth {
		panic(fmt.Sprintf("health: initialHealth %v exceeds maxHealth %v", initialHealth, maxHealth))
	}
	return &HealthComponent{
		health:    initialHealth,
		maxHealth: maxHealth,
		Damaged:   event.NewDispatcher[float64](),
		Healed:    event.NewDispatcher[float64](),
		Died:      event.NewDispatcher[event.Signal](),
	}
}

func (h *HealthComponent) Health() float64    { return h.health }
func (h *HealthComponent) MaxHealth() float64 { return h.maxHealth }
func (h *HealthComponent) IsDead() bool       { return h.dead }

// Damage reduces health by amount. Amounts <= 0 are ignored.
// Damage after death is still reported but health stays at 0.
func (h *HealthComponent) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	h.health -= amount
	if h.health < 0 {
		h.health = 0
	}
	h.Damaged.Dispatch(amount)
	if h.health == 0 {
		h.die()
	}
}

// Heal restores up to amount without exceeding maxHealth and returns what was actually healed.
// It is rejected while dead; every call dispatches the healed amount, possibly zero.
func (h *HealthComponent) Heal(amount float64) float64 {
	if h.dead || amount <= 0 {
		h.Healed.Dispatch(0)
		return 0
	}
	healed := amount
	if room := h.maxHealth - h.health; healed > room {
		healed = room
	}
	h.health += healed
	h.Healed.Dispatch(healed)
	return healed
}

// Kill drops health to zero. Killing a dead component does nothing.
func (h *HealthComponent) Kill() {
	if h.dead {
		return
	}
	h.health = 0
	h.die()
}

func (h *HealthComponent) die() {
	if h.dead {
		return
	}
	h.dead = true
	h.Died.Dispatch(event.Signal{})
}
