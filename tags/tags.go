package tags

import "github.com/yohamta/donburi"

var (
	Photo = donburi.NewTag().SetName("Photo")
)

// Resolv tags for spatial queries
const (
	ResolvPhoto = "photo"
)
