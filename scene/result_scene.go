package scene

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shooter-ebiten/core"
	"shooter-ebiten/event"
)

var hintColor = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xff}

// ResultScene shows the outcome of a stage. A click restarts it with the same seed.
type ResultScene struct {
	resources *Resources
	manager   *Manager
	ui        *ebitenui.UI
}

func NewResultScene(res *Resources, manager *Manager, title string, result event.StageResult) *ResultScene {
	r := &ResultScene{
		resources: res,
		manager:   manager,
	}

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	rootContainer.AddChild(panel)

	for _, line := range resultLines(title, result) {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, res.Font, color.White),
		))
	}
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("click to retry", res.Font, hintColor),
	))

	r.ui = &ebitenui.UI{Container: rootContainer}
	return r
}

// resultLines formats the result for display.
func resultLines(title string, result event.StageResult) []string {
	lines := []string{
		title,
		fmt.Sprintf("stage   %s", result.StageID),
		fmt.Sprintf("time    %.1fs", result.ElapsedMs/1000),
		fmt.Sprintf("kills   %d", result.Kills),
		fmt.Sprintf("escapes %d", result.Escapes),
	}
	counts := map[core.SquadFinishReason]int{}
	for _, reason := range result.FinishReasons {
		counts[reason]++
	}
	var squads []string
	for _, reason := range []core.SquadFinishReason{core.FinishAllMemberDied, core.FinishAllMemberDiedOrEscaped} {
		if n := counts[reason]; n > 0 {
			squads = append(squads, fmt.Sprintf("%s x%d", reason, n))
		}
	}
	if len(squads) > 0 {
		lines = append(lines, "squads  "+strings.Join(squads, ", "))
	}
	return lines
}

func (r *ResultScene) Update() error {
	r.ui.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		r.manager.Handle(event.RetryRequestedGameEvent{})
	}
	return nil
}

func (r *ResultScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	r.ui.Draw(screen)
}

func (r *ResultScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.resources.Config.Screen.Width, r.resources.Config.Screen.Height
}
