package renderer

import (
	"image"

	"github.com/df07/go-motionblur-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID      int             // Unique tile identifier
	Bounds  image.Rectangle // Pixel bounds in frame coordinates (y = 0 is the top row)
	Sampler core.Sampler    // Tile-specific random stream for reproducible results
}

// NewTile creates a tile whose sampler is seeded from baseSeed and the tile id
func NewTile(id int, bounds image.Rectangle, baseSeed int64) *Tile {
	return &Tile{
		ID:      id,
		Bounds:  bounds,
		Sampler: core.NewSeededSampler(baseSeed + int64(id)),
	}
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, baseSeed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), baseSeed))
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders individual tiles of a frame
type TileRenderer struct {
	pixels pixelRenderer
}

// NewTileRenderer creates a tile renderer for the given camera, world and sampling settings
func NewTileRenderer(camera *Camera, hittable Hittable, config SamplingConfig) *TileRenderer {
	return &TileRenderer{
		pixels: pixelRenderer{
			camera:   camera,
			hittable: hittable,
			config:   config,
		},
	}
}

// RenderTile renders every pixel inside the tile bounds into frame using the
// tile's own sampler and returns the number of pixels written
func (tr *TileRenderer) RenderTile(tile *Tile, frame *Frame) int {
	height := tr.pixels.config.Height

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		j := height - 1 - y
		for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
			frame.Set(i, y, tr.pixels.samplePixel(i, j, tile.Sampler))
		}
	}

	return tile.Bounds.Dx() * tile.Bounds.Dy()
}
