package scenes

import (
	"sync"

	"github.com/automoto/photowall/assets"
	"github.com/automoto/photowall/components"
	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/shared/viewmath"
	"github.com/automoto/photowall/streaming"
	"github.com/automoto/photowall/systems"
	"github.com/automoto/photowall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type GalleryScene struct {
	ecs     *ecs.ECS
	session *systems.SavedSession
	once    sync.Once
}

// NewGalleryScene creates the photo wall scene, optionally restoring the
// camera from a previous session.
func NewGalleryScene(session *systems.SavedSession) *GalleryScene {
	return &GalleryScene{session: session}
}

func (gs *GalleryScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GalleryScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background
	screen.Fill(cfg.Gallery.BackgroundColor)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GalleryScene) configure() {
	catalog, err := assets.LoadCatalog(cfg.Gallery.CatalogPath)
	if err != nil {
		panic("failed to load gallery catalog: " + err.Error())
	}

	world := ecs.NewECS(donburi.NewWorld())

	world.AddSystem(systems.UpdatePointer)
	world.AddSystem(systems.UpdateViewport)
	world.AddSystem(systems.UpdateStreaming)
	world.AddSystem(systems.UpdateSessionAutosave)

	world.AddRenderer(cfg.Default, systems.DrawPhotos)
	world.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.ecs = world

	// Spatial index for click hit-testing, sized to the wall.
	factory.CreateSpace(world, int(catalog.Width), int(catalog.Height), 64, 64)

	bounds := viewmath.Bounds{MinX: 0, MaxX: catalog.Width, MinY: 0, MaxY: catalog.Height}
	vpEntry := factory.CreateViewport(world, float64(cfg.C.Width), float64(cfg.C.Height), bounds)
	systems.ApplySavedSession(components.Viewport.Get(vpEntry), gs.session)

	mgr := streaming.NewManager(assets.NewHTTPLoader(), streaming.Options{
		PreloadMargin: cfg.Streaming.PreloadMargin,
		EvictMargin:   cfg.Streaming.EvictMargin,
		MaxConcurrent: cfg.Streaming.MaxConcurrent,
		FadeDuration:  cfg.Streaming.FadeDuration,
		LoadTimeout:   cfg.Streaming.LoadTimeout,
		Batched:       cfg.Batch.Enabled,
		BatchSize:     cfg.Batch.Size,
		SettleDelay:   cfg.Batch.SettleDelay,
	})
	factory.CreateStream(world, mgr)

	for _, p := range catalog.Photos {
		factory.CreatePhoto(world, p)
		mgr.Track(p.ID, viewmath.NewRect(p.X, p.Y, p.W, p.H), p.URL(cfg.Gallery.Quality))
	}
}
