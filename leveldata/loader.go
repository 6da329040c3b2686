package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// terrainLayer is the tile layer holding collision tiles. Tiles with a
// "slope" property become 45-degree ramps; anything else is a solid block.
const terrainLayer = "terrain"

// Load parses a TMX file into collision data. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != terrainLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var slope string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					slope = tilesetTile.Properties.GetString("slope")
				}

				// Flip the tile row into y-up world units.
				data.Solids = append(data.Solids, Solid{
					X:     float64(x),
					Y:     float64(levelMap.Height - y - 1),
					W:     1,
					H:     1,
					Slope: slope,
				})
			}
		}
		break
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			data.Spawns = append(data.Spawns, SpawnPoint{
				X:     o.X / tileW,
				Y:     data.Height - o.Y/tileH,
				Index: o.Properties.GetInt("spawnIndex"),
			})
		}
	}

	sort.Slice(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	return data, nil
}
