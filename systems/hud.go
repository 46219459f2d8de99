package systems

import (
	"fmt"

	"github.com/automoto/photowall/components"
	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD overlays streaming stats and the focused photo id.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.HUD.Enabled {
		return
	}
	streamEntry, ok := components.Stream.First(e.World)
	if !ok {
		return
	}
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	stats := components.Stream.Get(streamEntry).Manager.Stats()

	line := fmt.Sprintf("photos %d/%d  loading %d  failed %d  queued %d  zoom %.2f",
		stats.Loaded, stats.Total, stats.Loading, stats.Failed, stats.Queued, vp.Zoom)

	var caption string
	if ptrEntry, ok := components.Pointer.First(e.World); ok {
		if id := components.Pointer.Get(ptrEntry).FocusedID; id != "" {
			caption = fmt.Sprintf("focused: %s", id)
		}
	}

	m := cfg.HUD.Margin
	if fonts.Loaded(fonts.HUD) {
		face := fonts.HUD.Get()
		text.Draw(screen, line, face, m, m+int(cfg.HUD.FontSize), cfg.HUD.TextColor)
		if caption != "" {
			text.Draw(screen, caption, face, m, m+2*int(cfg.HUD.FontSize)+4, cfg.HUD.TextColor)
		}
		return
	}
	ebitenutil.DebugPrintAt(screen, line, m, m)
	if caption != "" {
		ebitenutil.DebugPrintAt(screen, caption, m, m+16)
	}
}
