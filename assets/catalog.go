package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed all:galleries
var galleryFS embed.FS

// Quality tiers understood by catalog URL templates.
const (
	QualityThumb = "thumb"
	QualityFull  = "full"
)

var qualities = []string{QualityThumb, QualityFull}

// Photo is one catalog entry: a stable id, a static world-space box and the
// fetch URL per quality tier. Placement comes from the catalog author; the
// viewer never computes positions.
type Photo struct {
	ID         string
	X, Y, W, H float64
	URLs       map[string]string
}

// URL returns the photo's URL for a quality tier, falling back to full.
func (p Photo) URL(quality string) string {
	if u, ok := p.URLs[quality]; ok {
		return u
	}
	return p.URLs[QualityFull]
}

// Catalog is the ordered photo list plus the world extent of the wall.
type Catalog struct {
	Photos []Photo
	Width  float64
	Height float64
}

// LoadCatalog loads a catalog from the embedded gallery filesystem.
func LoadCatalog(tmxPath string) (*Catalog, error) {
	return LoadCatalogFS(galleryFS, tmxPath)
}

// LoadCatalogFS parses a Tiled map whose "photos" object group supplies the
// photo rectangles. The URL template comes from a map-level "urlTemplate"
// property, overridable per object with a "url" property; "{id}" and
// "{quality}" placeholders are expanded.
func LoadCatalogFS(fsys fs.FS, tmxPath string) (*Catalog, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", tmxPath, err)
	}

	template := m.Properties.GetString("urlTemplate")
	c := &Catalog{
		Width:  float64(m.Width * m.TileWidth),
		Height: float64(m.Height * m.TileHeight),
	}

	for _, og := range m.ObjectGroups {
		if og.Name != "photos" {
			continue
		}
		for _, o := range og.Objects {
			id := o.Name
			if id == "" {
				id = fmt.Sprintf("photo-%d", o.ID)
			}
			tpl := o.Properties.GetString("url")
			if tpl == "" {
				tpl = template
			}
			if tpl == "" {
				return nil, fmt.Errorf("catalog %s: photo %s has no url template", tmxPath, id)
			}
			urls := make(map[string]string, len(qualities))
			for _, q := range qualities {
				u := strings.ReplaceAll(tpl, "{id}", id)
				urls[q] = strings.ReplaceAll(u, "{quality}", q)
			}
			c.Photos = append(c.Photos, Photo{
				ID: id,
				X:  o.X, Y: o.Y, W: o.Width, H: o.Height,
				URLs: urls,
			})
		}
	}

	if len(c.Photos) == 0 {
		return nil, fmt.Errorf("catalog %s: no photos object group", tmxPath)
	}
	return c, nil
}
