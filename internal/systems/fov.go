package systems

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"dungeon-engine/internal/core/ecs"
	"dungeon-engine/internal/domain"
	"dungeon-engine/pkg/logger"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Visibility пересчитывает поле зрения. Для игрока дополнительно обновляет
// Visible/Revealed карты.
type Visibility struct{}

func (Visibility) Name() string { return "visibility" }

func (Visibility) Access() ecs.Access {
	return ecs.Access{
		Reads:  kinds(ecs.KindOf[domain.Position](), ecs.KindOf[domain.Player]()),
		Writes: kinds(ecs.KindOf[domain.Viewshed]()),
	}
}

func (Visibility) Run(ctx *Context) {
	players := ecs.Read[domain.Player](ctx.World)

	for row := range ecs.Join2(ecs.Write[domain.Viewshed](ctx.World), ecs.Read[domain.Position](ctx.World)) {
		vs, pos := row.A, *row.B
		if !vs.NeedsRecompute(pos) {
			continue
		}

		tiles := ComputeVisibleTiles(ctx.Map, pos, vs.Range)
		vs.SetVisible(pos, tiles)

		if players.Has(row.ID) {
			ctx.Map.SetVisibleTiles(tiles)
		}
	}
}

// ComputeVisibleTiles возвращает отсортированные индексы клеток, видимых из pos.
// Рекурсивный shadowcasting по 8 октантам; стены видны, но закрывают обзор.
func ComputeVisibleTiles(m *domain.Map, pos domain.Position, radius int) []int {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component":    "fov_system",
		"observer_pos": pos,
	})

	if radius <= 0 || !m.InBounds(pos.X, pos.Y) {
		fovLogger.WithField("radius", radius).Debug("FOV skipped for blind or misplaced observer.")
		return nil
	}

	visible := mapset.New[int]()
	visible.Put(m.XYIdx(pos.X, pos.Y))

	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	tiles := make([]int, 0, visible.Size())
	visible.Each(func(idx int) {
		tiles = append(tiles, idx)
	})
	slices.Sort(tiles)

	fovLogger.WithField("visible_tiles", len(tiles)).Debug("FOV calculation complete.")
	return tiles
}

func castLight(m *domain.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible mapset.Set[int]) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy

			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				visible.Put(m.XYIdx(x, y))
			}

			if blocked {
				if m.IsOpaque(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.IsOpaque(x, y) && j < radius {
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
