package renderer

import "testing"

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, tileSize int
	}{
		{"uneven", 400, 225, 64},
		{"exact", 128, 128, 64},
		{"single tile", 10, 10, 64},
		{"one pixel tiles", 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize)

			expectedTilesX := (tt.width + tt.tileSize - 1) / tt.tileSize
			expectedTilesY := (tt.height + tt.tileSize - 1) / tt.tileSize
			if len(tiles) != expectedTilesX*expectedTilesY {
				t.Errorf("Expected %d tiles, got %d", expectedTilesX*expectedTilesY, len(tiles))
			}

			// Tiles must cover the image without gaps or overlaps
			covered := make([][]bool, tt.height)
			for y := range covered {
				covered[y] = make([]bool, tt.width)
			}

			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						if x >= tt.width || y >= tt.height {
							t.Fatalf("Tile %d extends beyond image bounds at (%d,%d)", tile.ID, x, y)
						}
						if covered[y][x] {
							t.Errorf("Pixel (%d,%d) is covered by multiple tiles", x, y)
						}
						covered[y][x] = true
					}
				}
			}

			for y := 0; y < tt.height; y++ {
				for x := 0; x < tt.width; x++ {
					if !covered[y][x] {
						t.Errorf("Pixel (%d,%d) is not covered by any tile", x, y)
					}
				}
			}
		})
	}
}
