package render

import (
	"os"

	"github.com/dshills/smartbelt/pkg/grid"
)

// SaveToFile renders g with r and writes the result to path.
func SaveToFile(r TileRenderer, g *grid.TileGrid, path string) error {
	data, err := r.Render(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
