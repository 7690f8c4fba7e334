package domain

import (
	"dungeon-engine/internal/core/types"
	"dungeon-engine/internal/core/types/enums"
)

// Map - сетка тайлов, row-major, начало координат в левом верхнем углу.
//
// Tiles и Rooms не меняются после генерации. Revealed, Visible, Blocked и
// TileContent пересчитываются системами каждый проход.
type Map struct {
	Width  int              `json:"width"`
	Height int              `json:"height"`
	Tiles  []enums.TileType `json:"tiles"`
	Rooms  []Rect           `json:"rooms"`

	Revealed []bool `json:"revealed"`
	Visible  []bool `json:"visible"`
	Blocked  []bool `json:"-"`

	// TileContent: индекс клетки -> сущности на ней.
	TileContent [][]types.EntityID `json:"-"`
}

// NewMap создаёт карту, целиком заполненную стенами.
func NewMap(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]enums.TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]types.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = enums.TileWall
	}
	return m
}

// XYIdx - индекс клетки в плоских массивах.
func (m *Map) XYIdx(x, y int) int {
	return y*m.Width + x
}

func (m *Map) IdxXY(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsOpaque: стены и всё за границей карты блокируют обзор.
func (m *Map) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[m.XYIdx(x, y)] == enums.TileWall
}

// IsBlocked - клетка непроходима (стена, граница или занята).
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.XYIdx(x, y)]
}

func (m *Map) IsFloor(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.XYIdx(x, y)] == enums.TileFloor
}

// FloodFill обходит пол по 4 направлениям от (x, y) и возвращает
// достижимые клетки.
func (m *Map) FloodFill(x, y int) []bool {
	reached := make([]bool, len(m.Tiles))
	if !m.IsFloor(x, y) {
		return reached
	}

	start := m.XYIdx(x, y)
	reached[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cx, cy := m.IdxXY(idx)
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cx+d[0], cy+d[1]
			if !m.IsFloor(nx, ny) {
				continue
			}
			n := m.XYIdx(nx, ny)
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}
	return reached
}
