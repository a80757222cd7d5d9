package scene

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"shooter-ebiten/core"
	"shooter-ebiten/ecs/component"
	"shooter-ebiten/ecs/system"
	"shooter-ebiten/stage"
)

const (
	playerSizeInArea = 0.04
	bulletRadius     = 3 // canvas units
)

var (
	backgroundColor   = color.RGBA{R: 0x10, G: 0x12, B: 0x1c, A: 0xff}
	visualAreaColor   = color.RGBA{R: 0x30, G: 0x34, B: 0x48, A: 0xff}
	playerBulletColor = color.RGBA{R: 0xa0, G: 0xf0, B: 0xff, A: 0xff}
	enemyBulletColor  = color.RGBA{R: 0xff, G: 0x70, B: 0x90, A: 0xff}

	drawQuery = query.NewQuery(filter.Contains(component.BodyComponent, component.AppearanceComponent))
)

// StageScene plays one stage: cursor moves the player, mouse button or space fires.
type StageScene struct {
	resources *Resources
	manager   *Manager
	session   *stage.Session

	lastCursor [2]int
	posted     bool
}

func NewStageScene(res *Resources, manager *Manager, stageID string, seed int64) (*StageScene, error) {
	cfg := res.Config
	conv := core.NewCoordinatesConverter(
		cfg.Area.SizeInCanvas,
		core.Vec2{X: cfg.Area.VisualWidth, Y: cfg.Area.VisualHeight},
		core.CanvasPoint{X: float64(cfg.Screen.Width) / 2, Y: float64(cfg.Screen.Height) / 2},
	)
	logger := res.Log.With().Str("stage", stageID).Int64("seed", seed).Logger()
	ctx := system.NewSimContext(conv, res.Collision, res.Metrics, logger)
	ctx.RecycleDelayMs = cfg.Bullet.RecycleDelayMs

	session, err := stage.NewSession(ctx, res.Catalog, stage.SessionParams{
		StageID:       stageID,
		Seed:          seed,
		PlayerBullets: cfg.Pool.PlayerBullets,
		EnemyBullets:  cfg.Pool.EnemyBullets,
		BulletRadius:  bulletRadius,
		Player: stage.PlayerParams{
			MaxHealth:  cfg.Player.MaxHealth,
			ShotSpeed:  cfg.Player.ShotSpeed,
			ShotDamage: cfg.Player.ShotDamage,
			SizeInArea: playerSizeInArea,
			Start:      core.AreaPoint{X: -0.35},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start stage %q: %w", stageID, err)
	}

	x, y := ebiten.CursorPosition()
	return &StageScene{
		resources:  res,
		manager:    manager,
		session:    session,
		lastCursor: [2]int{x, y},
	}, nil
}

func (s *StageScene) Update() error {
	if s.posted {
		return nil
	}

	// Follow the cursor only after it moved.
	if x, y := ebiten.CursorPosition(); x != s.lastCursor[0] || y != s.lastCursor[1] {
		s.lastCursor = [2]int{x, y}
		s.session.MovePlayerTo(core.CanvasPoint{X: float64(x), Y: float64(y)})
	}
	s.session.SetFiring(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || ebiten.IsKeyPressed(ebiten.KeySpace))

	s.session.Step(1000 / float64(ebiten.TPS()))

	if ev := s.session.Outcome(); ev != nil {
		s.posted = true
		s.manager.Handle(ev)
	}
	return nil
}

func (s *StageScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	conv := s.session.Context().Converter
	center := conv.CenterInCanvas()
	visual := conv.VisualAreaSizeInCanvas()
	vector.StrokeRect(screen,
		float32(center.X-visual.X/2), float32(center.Y-visual.Y/2),
		float32(visual.X), float32(visual.Y),
		1, visualAreaColor, false)

	var bodies []*component.Body
	var looks []*component.Appearance
	drawQuery.Each(s.session.Context().World, func(entry *donburi.Entry) {
		body := component.BodyComponent.Get(entry)
		if entry.HasComponent(component.BulletTag) && !body.Active {
			return
		}
		bodies = append(bodies, body)
		looks = append(looks, component.AppearanceComponent.Get(entry))
	})
	order := make([]int, len(bodies))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return bodies[a].ZIndex - bodies[b].ZIndex })

	for _, i := range order {
		b := bodies[i]
		vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Radius), bodyColor(b, looks[i]), true)
	}

	s.drawDebug(screen)
}

func (s *StageScene) drawDebug(screen *ebiten.Image) {
	res := s.session.Result()
	pools := s.session.Pools()
	msg := fmt.Sprintf("stage %s  %.1fs\nhp %.0f/%.0f  kills %d  escapes %d\nenemies %d  squads done %d/%d\nbullets free P:%d E:%d",
		res.StageID, res.ElapsedMs/1000,
		s.session.Player().Health().Health(), s.session.Player().Health().MaxHealth(),
		res.Kills, res.Escapes,
		len(s.session.Enemies()), len(res.FinishReasons), len(s.session.Run().Squads),
		pools[0].Len(), pools[1].Len(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (s *StageScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.resources.Config.Screen.Width, s.resources.Config.Screen.Height
}

func bodyColor(b *component.Body, app *component.Appearance) color.Color {
	switch b.Group {
	case core.GroupPlayerBullet:
		return playerBulletColor
	case core.GroupEnemyBullet:
		return enemyBulletColor
	}
	if c, ok := parseHexColor(app.Texture.Color); ok {
		return c
	}
	return color.White
}

// parseHexColor reads "#rrggbb".
func parseHexColor(s string) (color.RGBA, bool) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
}
