package renderer

import (
	"image"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/HuynhNguyenPhuc/laurel/log"
	"github.com/HuynhNguyenPhuc/laurel/pkg/core"
)

// Default edge length of a render tile in pixels
const defaultTileSize = 64

var logger = log.New("renderer")

// Integrator evaluates the radiance arriving along a primary ray. The random
// stream belongs to the calling tile; integrators that are deterministic
// simply ignore it.
type Integrator interface {
	Li(ray core.Ray, random *rand.Rand) core.Vec3
}

// Tile is a rectangular region of the image rendered by exactly one worker.
// Each tile owns a random stream seeded from its index, which keeps the
// output reproducible regardless of worker scheduling.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// Renderer drives an integrator over every pixel, distributing tiles across
// a pool of workers
type Renderer struct {
	camera     *Camera
	width      int
	height     int
	tileSize   int
	numWorkers int
}

// New creates a renderer with one worker per CPU
func New(camera *Camera, width, height int) *Renderer {
	return &Renderer{
		camera:     camera,
		width:      width,
		height:     height,
		tileSize:   defaultTileSize,
		numWorkers: runtime.NumCPU(),
	}
}

// SetNumWorkers overrides the worker count (values < 1 restore the default)
func (r *Renderer) SetNumWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	r.numWorkers = n
}

// tiles partitions the image into disjoint tiles covering every pixel
func (r *Renderer) tiles() []*Tile {
	var tiles []*Tile
	id := 0
	for y := 0; y < r.height; y += r.tileSize {
		for x := 0; x < r.width; x += r.tileSize {
			tiles = append(tiles, &Tile{
				ID:     id,
				Bounds: image.Rect(x, y, min(x+r.tileSize, r.width), min(y+r.tileSize, r.height)),
				Random: rand.New(rand.NewSource(int64(id)*7919 + 1)),
			})
			id++
		}
	}
	return tiles
}

// Render evaluates the integrator for every pixel and returns the completed
// framebuffer along with aggregate statistics
func (r *Renderer) Render(integ Integrator) (*Framebuffer, RenderStats) {
	fb := NewFramebuffer(r.width, r.height)
	tiles := r.tiles()

	tasks := make(chan *Tile, len(tiles))
	results := make(chan TileStats, len(tiles))

	start := time.Now()
	var wg sync.WaitGroup
	for w := 0; w < r.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tasks {
				results <- r.renderTile(tile, fb, integ)
			}
		}()
	}

	for _, tile := range tiles {
		tasks <- tile
	}
	close(tasks)
	wg.Wait()
	close(results)

	stats := RenderStats{
		Width:   r.width,
		Height:  r.height,
		Workers: r.numWorkers,
	}
	for ts := range results {
		stats.addTile(ts)
	}
	stats.Duration = time.Since(start)

	logger.Infof("rendered %dx%d (%d tiles, %d workers) in %s",
		r.width, r.height, stats.Tiles, stats.Workers, stats.Duration)
	return fb, stats
}

// renderTile shades every pixel in the tile's bounds. Tiles are disjoint, so
// the shared framebuffer needs no synchronization.
func (r *Renderer) renderTile(tile *Tile, fb *Framebuffer, integ Integrator) TileStats {
	start := time.Now()
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			ray := r.camera.GetRay(x, y)
			fb.Set(x, y, integ.Li(ray, tile.Random))
		}
	}
	return TileStats{
		ID:       tile.ID,
		Pixels:   tile.Bounds.Dx() * tile.Bounds.Dy(),
		Duration: time.Since(start),
	}
}
