package system

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"shooter-ebiten/core"
)

const meterName = "shooter-ebiten/ecs/system"

// Metrics counts simulation events. A nil *Metrics records nothing.
type Metrics struct {
	enemiesSpawned metric.Int64Counter
	bulletsFired   metric.Int64Counter
	shotsDropped   metric.Int64Counter
	squadsFinished metric.Int64Counter
}

// NewMetrics registers the counters on the global meter provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithMeter(otel.Meter(meterName))
}

func NewMetricsWithMeter(meter metric.Meter) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	if m.enemiesSpawned, err = meter.Int64Counter("shooter.enemies.spawned",
		metric.WithDescription("Enemies created by squad builders")); err != nil {
		return nil, err
	}
	if m.bulletsFired, err = meter.Int64Counter("shooter.bullets.fired",
		metric.WithDescription("Bullets taken from a pool by a muzzle")); err != nil {
		return nil, err
	}
	if m.shotsDropped, err = meter.Int64Counter("shooter.bullets.dropped",
		metric.WithDescription("Shots skipped because the pool was empty")); err != nil {
		return nil, err
	}
	if m.squadsFinished, err = meter.Int64Counter("shooter.squads.finished",
		metric.WithDescription("Squads resolved, by finish reason")); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Metrics) EnemySpawned() {
	if m == nil {
		return
	}
	m.enemiesSpawned.Add(context.Background(), 1)
}

func (m *Metrics) BulletFired(side core.Side) {
	if m == nil {
		return
	}
	m.bulletsFired.Add(context.Background(), 1, metric.WithAttributes(attribute.String("side", side.String())))
}

func (m *Metrics) ShotDropped(side core.Side) {
	if m == nil {
		return
	}
	m.shotsDropped.Add(context.Background(), 1, metric.WithAttributes(attribute.String("side", side.String())))
}

func (m *Metrics) SquadFinished(reason core.SquadFinishReason) {
	if m == nil {
		return
	}
	m.squadsFinished.Add(context.Background(), 1, metric.WithAttributes(attribute.String("reason", string(reason))))
}
