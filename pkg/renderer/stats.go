package renderer

import "time"

// TileStats describes the work done for a single tile
type TileStats struct {
	ID       int
	Pixels   int
	Duration time.Duration
}

// RenderStats aggregates tile statistics for a completed frame
type RenderStats struct {
	Width       int
	Height      int
	Tiles       int
	Workers     int
	TotalPixels int
	Duration    time.Duration
	SlowestTile time.Duration
	FastestTile time.Duration
}

func (s *RenderStats) addTile(ts TileStats) {
	s.Tiles++
	s.TotalPixels += ts.Pixels
	if ts.Duration > s.SlowestTile {
		s.SlowestTile = ts.Duration
	}
	if s.FastestTile == 0 || ts.Duration < s.FastestTile {
		s.FastestTile = ts.Duration
	}
}
