package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/photowall/components"
	cfg "github.com/automoto/photowall/config"
	"github.com/automoto/photowall/shared/viewmath"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSession represents the camera state stored on disk
type SavedSession struct {
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
	Zoom float64 `json:"zoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for session storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "photowall",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSession loads the last saved camera state from disk
func LoadSession() (*SavedSession, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("session")
	if err != nil {
		log.Printf("Warning: Could not load session: %v", err)
		return nil, nil
	}
	if data == nil {
		// First run, start at the wall center
		return nil, nil
	}

	var session SavedSession
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("Warning: Could not parse saved session: %v", err)
		return nil, err
	}

	return &session, nil
}

// SaveSession saves the camera state to disk
func SaveSession(s *SavedSession) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize session: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("session", data); err != nil {
		log.Printf("Warning: Could not save session: %v", err)
		return err
	}
	return nil
}

// ApplySavedSession restores the camera, clamped to the current bounds.
func ApplySavedSession(vp *components.ViewportData, s *SavedSession) {
	if s == nil {
		return
	}
	vp.Zoom = viewmath.Clamp(s.Zoom, vp.MinZoom, vp.MaxZoom)
	vp.Pan.X, vp.Pan.Y = vp.Bounds.ClampPoint(s.PanX, s.PanY)
}

var autosaveTick int
var lastSaved SavedSession

// UpdateSessionAutosave persists the camera every few seconds when it moved.
func UpdateSessionAutosave(e *ecs.ECS) {
	if cfg.Gallery.AutosaveTicks <= 0 {
		return
	}
	autosaveTick++
	if autosaveTick%cfg.Gallery.AutosaveTicks != 0 {
		return
	}
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	s := SavedSession{PanX: vp.Pan.X, PanY: vp.Pan.Y, Zoom: vp.Zoom}
	if s == lastSaved {
		return
	}
	if err := SaveSession(&s); err == nil {
		lastSaved = s
	}
}
