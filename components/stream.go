package components

import (
	"github.com/automoto/photowall/streaming"
	"github.com/yohamta/donburi"
)

// StreamData holds the streaming manager singleton for the world.
type StreamData struct {
	Manager *streaming.Manager
}

var Stream = donburi.NewComponentType[StreamData]()
