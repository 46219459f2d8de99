package assets

import "testing"

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("galleries/wall.tmx")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if len(c.Photos) != 12 {
		t.Fatalf("got %d photos, want 12", len(c.Photos))
	}
	if c.Width != 120*16 || c.Height != 68*16 {
		t.Errorf("wall extent = %vx%v, want 1920x1088", c.Width, c.Height)
	}

	p := c.Photos[0]
	if p.ID != "p001" {
		t.Errorf("first photo id = %q, want p001", p.ID)
	}
	if p.X != 64 || p.Y != 64 || p.W != 240 || p.H != 160 {
		t.Errorf("first photo box = (%v,%v,%v,%v), want (64,64,240,160)", p.X, p.Y, p.W, p.H)
	}
}

func TestCatalogURLTemplate(t *testing.T) {
	c, err := LoadCatalog("galleries/wall.tmx")
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	p := c.Photos[0]
	if got := p.URL(QualityFull); got != "https://photos.example.com/p001_full.jpg" {
		t.Errorf("full URL = %q", got)
	}
	if got := p.URL(QualityThumb); got != "https://photos.example.com/p001_thumb.jpg" {
		t.Errorf("thumb URL = %q", got)
	}
	// Unknown tiers fall back to full.
	if got := p.URL("huge"); got != "https://photos.example.com/p001_full.jpg" {
		t.Errorf("fallback URL = %q", got)
	}
}
