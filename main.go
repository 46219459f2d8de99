package main

import (
	"flag"
	"log"

	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/fonts"
	"github.com/automoto/photowall/scenes"
	"github.com/automoto/photowall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	flag.BoolVar(&cfg.Batch.Enabled, "batched", cfg.Batch.Enabled,
		"load photos in quorum batches instead of per-tick polling")
	flag.BoolVar(&cfg.Debug.DrawBoxes, "boxes", cfg.Debug.DrawBoxes,
		"outline photo world boxes")
	flag.StringVar(&cfg.Gallery.CatalogPath, "catalog", cfg.Gallery.CatalogPath,
		"gallery catalog TMX path inside the embedded gallery FS")
	flag.StringVar(&cfg.HUD.FontPath, "hud-font", cfg.HUD.FontPath,
		"TTF font file for the HUD overlay")
	flag.Parse()

	if cfg.HUD.FontPath != "" {
		if err := fonts.LoadFontFile(fonts.HUD, cfg.HUD.FontPath, cfg.HUD.FontSize); err != nil {
			log.Printf("Warning: Could not load HUD font: %v", err)
		}
	}

	// Initialize persistence and restore the last camera position
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	session, _ := systems.LoadSession()

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle("photowall")

	if err := ebiten.RunGame(&Game{scene: scenes.NewGalleryScene(session)}); err != nil {
		log.Fatal(err)
	}
}
