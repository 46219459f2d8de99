package assets

import (
	"fmt"
	"net/http"
	"time"

	"github.com/automoto/photowall/streaming"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageHandle is the concrete resource handle the render layer draws.
type ImageHandle struct {
	Image *ebiten.Image
}

func (h *ImageHandle) Dispose() {
	if h.Image != nil {
		h.Image.Deallocate()
		h.Image = nil
	}
}

// HTTPLoader fetches photo URLs with one goroutine per request and delivers
// decoded images on its results channel. The manager drains the channel every
// tick, so the application of results stays on the tick goroutine.
type HTTPLoader struct {
	client  *http.Client
	results chan streaming.Result
}

func NewHTTPLoader() *HTTPLoader {
	return &HTTPLoader{
		client:  &http.Client{Timeout: 30 * time.Second},
		results: make(chan streaming.Result, 64),
	}
}

func (l *HTTPLoader) Load(req streaming.Request) {
	go func() {
		img, err := l.fetch(req.URL)
		res := streaming.Result{ID: req.ID, Gen: req.Gen, Err: err}
		if err == nil {
			res.Handle = &ImageHandle{Image: img}
		}
		l.results <- res
	}()
}

func (l *HTTPLoader) Results() <-chan streaming.Result {
	return l.results
}

func (l *HTTPLoader) fetch(url string) (*ebiten.Image, error) {
	resp, err := l.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %s", url, resp.Status)
	}
	img, _, err := ebitenutil.NewImageFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}
