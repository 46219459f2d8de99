package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// ViewportConfig contains camera/viewport tuning values
type ViewportConfig struct {
	// Zoom
	MinZoom   float64
	MaxZoom   float64
	ZoomSpeed float64 // wheel delta multiplier

	// Pan
	PanSpeed     float64 // scaled by 1/zoom so drags feel uniform at any zoom
	Damping      float64 // momentum decay per tick
	RestVelocity float64 // velocity magnitude below which momentum stops

	// Click vs drag
	ClickThreshold float64 // total Manhattan movement in screen px
}

// StreamingConfig contains photo load/evict tuning values
type StreamingConfig struct {
	PreloadMargin float64 // world units beyond the viewport to load eagerly
	EvictMargin   float64 // larger than PreloadMargin: hysteresis band
	MaxConcurrent int     // in-flight load ceiling (immediate mode)
	FadeDuration  float64 // seconds for the fade-in after a load completes
	LoadTimeout   float64 // seconds before a stuck load is marked failed
}

// BatchConfig contains batched-mode streaming configuration
type BatchConfig struct {
	Enabled     bool
	Size        int     // photos per batch
	SettleDelay float64 // seconds between batches
}

// HUDConfig contains overlay configuration
type HUDConfig struct {
	Enabled   bool
	FontPath  string // optional TTF; debug text is used when empty
	FontSize  float64
	TextColor color.RGBA
	Margin    int
}

// GalleryConfig contains catalog/session configuration
type GalleryConfig struct {
	CatalogPath     string // TMX catalog inside the embedded gallery FS
	Quality         string // quality tier requested for visible photos
	AutosaveTicks   int    // ticks between session autosaves
	BackgroundColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	DrawBoxes bool // outline photo world boxes
}

// Config holds general application configuration
type Config struct {
	Width  int
	Height int
}

// Default is the ECS layer all entities and renderers use.
var Default = ecs.LayerDefault

// Global configuration instances
var C *Config
var Viewport ViewportConfig
var Streaming StreamingConfig
var Batch BatchConfig
var HUD HUDConfig
var Gallery GalleryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkGray     = color.RGBA{R: 60, G: 60, B: 66, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Viewport = ViewportConfig{
		MinZoom:        0.25,
		MaxZoom:        4.0,
		ZoomSpeed:      0.1,
		PanSpeed:       1.0,
		Damping:        0.92,
		RestVelocity:   0.01,
		ClickThreshold: 5.0,
	}

	Streaming = StreamingConfig{
		PreloadMargin: 5.0,
		EvictMargin:   64.0, // much larger than preload: hysteresis against edge thrash
		MaxConcurrent: 4,
		FadeDuration:  0.6,
		LoadTimeout:   15.0,
	}

	Batch = BatchConfig{
		Enabled:     false,
		Size:        3,
		SettleDelay: 0.1,
	}

	HUD = HUDConfig{
		Enabled:   true,
		FontSize:  14,
		TextColor: White,
		Margin:    8,
	}

	Gallery = GalleryConfig{
		CatalogPath:     "galleries/wall.tmx",
		Quality:         "full",
		AutosaveTicks:   300, // 5 seconds at 60fps
		BackgroundColor: color.RGBA{R: 18, G: 18, B: 22, A: 255},
	}

	Debug = DebugConfig{
		DrawBoxes: false,
	}
}
