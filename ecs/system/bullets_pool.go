package system

import "shooter-ebiten/core"

// BulletsPool is a LIFO stack of inactive bullets shared by all muzzles of one side.
type BulletsPool struct {
	side  core.Side
	stack []*Bullet
	owned []*Bullet
}

// NewBulletsPool creates capacity bullets up front and stores them all.
func NewBulletsPool(ctx *SimContext, side core.Side, capacity int, radius float64) *BulletsPool {
	p := &BulletsPool{
		side:  side,
		stack: make([]*Bullet, 0, capacity),
		owned: make([]*Bullet, 0, capacity),
	}
	for range capacity {
		b := NewBullet(ctx, p, radius)
		p.owned = append(p.owned, b)
		p.Push(b)
	}
	return p
}

func (p *BulletsPool) Push(b *Bullet) {
	p.stack = append(p.stack, b)
}

// Pop returns the most recently pushed bullet, or false when the pool is empty.
func (p *BulletsPool) Pop() (*Bullet, bool) {
	n := len(p.stack)
	if n == 0 {
		return nil, false
	}
	b := p.stack[n-1]
	p.stack[n-1] = nil
	p.stack = p.stack[:n-1]
	return b, true
}

// Bullets returns a snapshot of the bullets currently stored in the pool.
func (p *BulletsPool) Bullets() []*Bullet {
	out := make([]*Bullet, len(p.stack))
	copy(out, p.stack)
	return out
}

// Owned lists every bullet created for this pool, stored or active.
func (p *BulletsPool) Owned() []*Bullet { return p.owned }

func (p *BulletsPool) Len() int        { return len(p.stack) }
func (p *BulletsPool) Side() core.Side { return p.side }
